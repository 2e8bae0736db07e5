package models

// NotificationRequest is the payload of POST /api/notify. Delivery is
// best-effort; failure never blocks the message-send flow that triggered it.
type NotificationRequest struct {
	RecipientEmail  string `json:"recipientEmail"`
	RecipientName   string `json:"recipientName"`
	SenderName      string `json:"senderName"`
	MessagePreview  string `json:"messagePreview"`
	ConversationURL string `json:"conversationUrl"`
}
