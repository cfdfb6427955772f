package ws

import "time"

// EventType identifies a notification pushed to a connected client
type EventType string

const (
	// EventMessageNew tells the receiver a new message landed in one of
	// their threads.
	EventMessageNew EventType = "message:new"

	// EventBookingCreated tells a business owner a booking request arrived.
	EventBookingCreated EventType = "booking:created"

	// EventBookingStatus tells a customer their booking was confirmed or
	// cancelled.
	EventBookingStatus EventType = "booking:status"
)

// Event is the wire structure pushed over the WebSocket. Events are advisory;
// the REST endpoints remain the source of truth.
type Event struct {
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// MessagePayload accompanies EventMessageNew
type MessagePayload struct {
	MessageID string    `json:"messageId"`
	SenderID  string    `json:"senderId"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingPayload accompanies the booking events
type BookingPayload struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}
