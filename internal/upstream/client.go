package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cafehub/pkg/models"
)

// Client talks to the shop API (products, cart, checkout, reviews, chat).
// All state lives server-side; the client only decodes payloads and maps
// failures onto the error taxonomy in errors.go.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a shop API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchProducts retrieves the full product catalog. The endpoint answers
// either a bare array or an object wrapping it under "products"; anything
// else is a FormatError.
func (c *Client) FetchProducts(ctx context.Context) ([]models.ProductRecord, error) {
	body, err := c.get(ctx, "/api/products", "")
	if err != nil {
		return nil, err
	}
	return decodeProductList(body, "/api/products")
}

// FetchTop10 retrieves the top-10 best sellers list
func (c *Client) FetchTop10(ctx context.Context) ([]models.ProductRecord, error) {
	body, err := c.get(ctx, "/api/top10products", "")
	if err != nil {
		return nil, err
	}
	var records []models.ProductRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &FormatError{Endpoint: "/api/top10products", Detail: "expected a product array"}
	}
	return records, nil
}

// FetchReviews retrieves the reviews of one product
func (c *Client) FetchReviews(ctx context.Context, productID string) ([]models.Review, error) {
	endpoint := fmt.Sprintf("/api/reviews/product/%s", productID)
	body, err := c.get(ctx, endpoint, "")
	if err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := json.Unmarshal(body, &reviews); err != nil {
		return nil, &FormatError{Endpoint: endpoint, Detail: "expected a review array"}
	}
	return reviews, nil
}

// FetchCart retrieves the authoritative cart lines for the session
func (c *Client) FetchCart(ctx context.Context, token string) ([]models.CartLine, error) {
	body, err := c.get(ctx, "/api/cart", token)
	if err != nil {
		return nil, err
	}
	var lines []models.CartLine
	if err := json.Unmarshal(body, &lines); err != nil {
		return nil, &FormatError{Endpoint: "/api/cart", Detail: "expected a cart line array"}
	}
	return lines, nil
}

// AddCartItem adds a product+size to the cart. A 401 maps to
// ErrNotAuthenticated so callers can redirect to login.
func (c *Client) AddCartItem(ctx context.Context, token string, req models.AddCartRequest) error {
	_, err := c.post(ctx, "/api/cart", token, req)
	return err
}

// RemoveCartItem removes one cart line
func (c *Client) RemoveCartItem(ctx context.Context, token, cartID string) error {
	_, err := c.post(ctx, "/api/cart/remove", token, models.RemoveCartRequest{CartID: cartID})
	return err
}

// Checkout submits the selected cart lines for checkout
func (c *Client) Checkout(ctx context.Context, token string, items []models.CheckoutItem) error {
	_, err := c.post(ctx, "/api/checkout", token, items)
	return err
}

// messagesResponse is the chat history envelope from the shop API
type messagesResponse struct {
	Success  bool                 `json:"success"`
	Message  string               `json:"message"`
	Messages []models.ChatMessage `json:"messages"`
}

// FetchMessages retrieves the chat history for a customer
func (c *Client) FetchMessages(ctx context.Context, token, customerID string) ([]models.ChatMessage, error) {
	endpoint := fmt.Sprintf("/user_messages/%s", customerID)
	body, err := c.get(ctx, endpoint, token)
	if err != nil {
		return nil, err
	}
	var resp messagesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &FormatError{Endpoint: endpoint, Detail: "expected a messages envelope"}
	}
	if !resp.Success {
		return nil, fmt.Errorf("shop API rejected message fetch: %s", resp.Message)
	}
	return resp.Messages, nil
}

// sendMessageResponse is the ack for an outgoing chat message
type sendMessageResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"message_id"`
	Time      string `json:"time"`
}

// SendMessage sends one chat message on behalf of a customer and returns the
// stored message as the shop API acknowledged it
func (c *Client) SendMessage(ctx context.Context, token, customerID, content string) (models.ChatMessage, error) {
	payload := map[string]string{
		"customer_id": customerID,
		"content":     content,
	}
	body, err := c.post(ctx, "/send_message", token, payload)
	if err != nil {
		return models.ChatMessage{}, err
	}
	var resp sendMessageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.ChatMessage{}, &FormatError{Endpoint: "/send_message", Detail: "expected a send ack"}
	}
	if !resp.Success {
		return models.ChatMessage{}, fmt.Errorf("shop API rejected message: %s", resp.Message)
	}
	return models.ChatMessage{
		MessageID: resp.MessageID,
		Content:   content,
		Direction: "user_to_admin",
		Time:      resp.Time,
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, endpoint, token)
}

func (c *Client) post(ctx context.Context, endpoint, token string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, token)
}

func (c *Client) do(req *http.Request, endpoint, token string) ([]byte, error) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach shop API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrNotAuthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}

// decodeProductList accepts both payload shapes the products endpoint is known
// to answer with
func decodeProductList(body []byte, endpoint string) ([]models.ProductRecord, error) {
	var records []models.ProductRecord
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var wrapped struct {
		Products json.RawMessage `json:"products"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil || wrapped.Products == nil {
		return nil, &FormatError{Endpoint: endpoint, Detail: "payload is not a product list"}
	}
	if err := json.Unmarshal(wrapped.Products, &records); err != nil {
		return nil, &FormatError{Endpoint: endpoint, Detail: "products field is not a list"}
	}
	return records, nil
}
