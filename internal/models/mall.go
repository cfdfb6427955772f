package models

import "time"

// Mall represents a mall location where appointments take place
type Mall struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Location  string    `json:"location" db:"location"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
