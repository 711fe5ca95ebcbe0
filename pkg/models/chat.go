package models

// ChatMessage represents one support-chat message from the shop API.
// Message IDs follow the "MS<number>" convention; the numeric suffix is
// monotonically increasing and drives polling dedup.
type ChatMessage struct {
	MessageID  string `json:"message_id"`
	Content    string `json:"content"`
	Direction  string `json:"direction"` // user_to_admin or admin_to_user
	SenderName string `json:"sender_name"`
	Time       string `json:"time"`
}

// SendMessageRequest represents an outgoing chat message
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}
