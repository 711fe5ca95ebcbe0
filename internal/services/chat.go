package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"cafehub/internal/upstream"
	"cafehub/pkg/models"

	"github.com/rs/zerolog/log"
)

// DefaultPollInterval is how often an open chat panel polls for new messages
const DefaultPollInterval = 2 * time.Second

// ChatPoller polls the shop API for new support-chat messages while a chat
// panel is open. Messages are deduplicated by the numeric suffix of their id
// ("MS42" -> 42): only ids above the highest one seen are delivered to the
// sink. Start is idempotent to re-arm; any running timer is cancelled before a
// new one starts.
type ChatPoller struct {
	client     *upstream.Client
	token      string
	customerID string
	interval   time.Duration
	onMessage  func(models.ChatMessage)

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	lastNum  int
}

// NewChatPoller creates a poller for one customer's chat session
func NewChatPoller(client *upstream.Client, token, customerID string, onMessage func(models.ChatMessage)) *ChatPoller {
	if onMessage == nil {
		onMessage = func(models.ChatMessage) {}
	}
	return &ChatPoller{
		client:     client,
		token:      token,
		customerID: customerID,
		interval:   DefaultPollInterval,
		onMessage:  onMessage,
	}
}

// History loads the full message list, resetting the dedup watermark. Used
// when the chat panel opens.
func (p *ChatPoller) History(ctx context.Context) ([]models.ChatMessage, error) {
	messages, err := p.client.FetchMessages(ctx, p.token, p.customerID)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.lastNum = 0
	for _, msg := range messages {
		if num, ok := messageNum(msg.MessageID); ok && num > p.lastNum {
			p.lastNum = num
		}
	}
	p.mu.Unlock()

	return messages, nil
}

// Send delivers one outgoing message and advances the dedup watermark so the
// next poll does not replay it
func (p *ChatPoller) Send(ctx context.Context, content string) (models.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.ChatMessage{}, &ValidationError{Reason: "empty message"}
	}

	msg, err := p.client.SendMessage(ctx, p.token, p.customerID, content)
	if err != nil {
		return models.ChatMessage{}, err
	}

	p.mu.Lock()
	if num, ok := messageNum(msg.MessageID); ok && num > p.lastNum {
		p.lastNum = num
	}
	p.mu.Unlock()

	return msg, nil
}

// Start begins polling. Calling Start while a poll loop is running replaces
// the running loop with a fresh one.
func (p *ChatPoller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		close(p.stopChan)
	}
	p.stopChan = make(chan struct{})
	p.running = true
	stop := p.stopChan
	p.mu.Unlock()

	go p.loop(ctx, stop)
}

// Stop cancels the poll loop. Safe to call when nothing is running.
func (p *ChatPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		close(p.stopChan)
		p.running = false
	}
}

func (p *ChatPoller) loop(ctx context.Context, stop <-chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.pollOnce(ctx)

	for {
		select {
		case <-ticker.C:
			p.pollOnce(ctx)
		case <-stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (p *ChatPoller) pollOnce(ctx context.Context) {
	messages, err := p.client.FetchMessages(ctx, p.token, p.customerID)
	if err != nil {
		log.Error().Err(err).Str("customer_id", p.customerID).Msg("Chat poll failed")
		return
	}

	for _, msg := range messages {
		num, ok := messageNum(msg.MessageID)
		if !ok {
			continue
		}

		p.mu.Lock()
		fresh := num > p.lastNum
		if fresh {
			p.lastNum = num
		}
		p.mu.Unlock()

		if fresh {
			p.onMessage(msg)
		}
	}
}

// messageNum extracts the numeric suffix of a "MS<number>" message id
func messageNum(id string) (int, bool) {
	num, err := strconv.Atoi(strings.TrimPrefix(id, "MS"))
	if err != nil {
		return 0, false
	}
	return num, true
}
