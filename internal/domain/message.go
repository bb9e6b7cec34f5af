package domain

import "time"

// Message is a user-to-user message, optionally tied to an item
type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	ItemID      *string   `json:"item_id,omitempty"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}
