package models

import "time"

// Message represents a direct message between two users. Rows are immutable
// once created except for the Read flag, which only the receiver side flips.
type Message struct {
	ID         string    `json:"id" db:"id"`
	SenderID   string    `json:"senderId" db:"sender_id"`
	ReceiverID string    `json:"receiverId" db:"receiver_id"`
	Body       string    `json:"message" db:"message"`
	Read       bool      `json:"read" db:"read"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
