package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"cafehub/internal/services"
	"cafehub/internal/upstream"
	"cafehub/pkg/models"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ChatHandler serves the support-chat widget: message history, sending, and a
// WebSocket that pushes messages picked up by the 2-second poller while the
// panel is open
type ChatHandler struct {
	client   *upstream.Client
	upgrader websocket.Upgrader
}

// NewChatHandler creates a new chat handler
func NewChatHandler(client *upstream.Client) *ChatHandler {
	return &ChatHandler{
		client: client,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Same-origin storefront widget; echo's CORS middleware owns the policy
				return true
			},
		},
	}
}

func customerID(c echo.Context) string {
	if id, ok := c.Get("customer_id").(string); ok {
		return id
	}
	return ""
}

// GetMessages godoc
// @Summary Get chat history
// @Tags chat
// @Produce json
// @Success 200 {array} models.ChatMessage
// @Failure 401 {object} map[string]string
// @Router /chat/messages [get]
func (h *ChatHandler) GetMessages(c echo.Context) error {
	messages, err := h.client.FetchMessages(c.Request().Context(), sessionToken(c), customerID(c))
	if err != nil {
		return respondError(c, err, "messages")
	}
	return c.JSON(http.StatusOK, messages)
}

// SendMessage godoc
// @Summary Send chat message
// @Tags chat
// @Accept json
// @Produce json
// @Param message body models.SendMessageRequest true "Message"
// @Success 200 {object} models.ChatMessage
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /chat/messages [post]
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	msg, err := h.client.SendMessage(c.Request().Context(), sessionToken(c), customerID(c), req.Content)
	if err != nil {
		return respondError(c, err, "messages")
	}
	return c.JSON(http.StatusOK, msg)
}

// wsEnvelope is the frame pushed to the chat widget
type wsEnvelope struct {
	Type    string             `json:"type"`
	Message models.ChatMessage `json:"message,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// HandleWS upgrades the connection and streams chat messages while the panel
// is open. The poller starts when the socket connects and stops when it
// closes, matching the widget's open/close lifecycle.
func (h *ChatHandler) HandleWS(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	var writeMu sync.Mutex
	push := func(env wsEnvelope) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(env); err != nil {
			log.Debug().Err(err).Msg("Chat websocket write failed")
		}
	}

	poller := services.NewChatPoller(h.client, sessionToken(c), customerID(c), func(msg models.ChatMessage) {
		push(wsEnvelope{Type: "message", Message: msg})
	})

	// Full history on open, then poll for new messages only
	history, err := poller.History(c.Request().Context())
	if err != nil {
		push(wsEnvelope{Type: "error", Error: "could not load messages"})
		return nil
	}
	for _, msg := range history {
		push(wsEnvelope{Type: "message", Message: msg})
	}

	poller.Start(c.Request().Context())
	defer poller.Stop()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return nil
		}

		var req models.SendMessageRequest
		if err := json.Unmarshal(raw, &req); err != nil || req.Content == "" {
			continue
		}

		msg, err := poller.Send(c.Request().Context(), req.Content)
		if err != nil {
			push(wsEnvelope{Type: "error", Error: "could not send message"})
			continue
		}
		push(wsEnvelope{Type: "message", Message: msg})
	}
}
