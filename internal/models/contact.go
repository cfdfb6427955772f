package models

import "time"

// Contact is a derived conversation entry on a dashboard: the counterpart a
// viewer has exchanged messages with, plus how many of their messages are
// still unread. Not stored; computed from the message log on demand.
type Contact struct {
	CounterpartID string `json:"counterpartId"`
	DisplayName   string `json:"displayName"`
	// Detail carries the secondary line shown under the name: the owner's
	// full name for a business contact, the email for a customer contact.
	Detail        string    `json:"detail,omitempty"`
	BusinessID    string    `json:"businessId,omitempty"`
	UnreadCount   int       `json:"unreadCount"`
	LastMessageAt time.Time `json:"lastMessageAt"`
}
