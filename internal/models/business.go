package models

import "time"

// Business represents a service business owned by a business account
type Business struct {
	ID           string    `json:"id" db:"id"`
	OwnerID      string    `json:"ownerId" db:"owner_id"`
	BusinessName string    `json:"businessName" db:"business_name"`
	Username     string    `json:"username" db:"username"`
	Description  string    `json:"description" db:"description"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// BusinessWithOwner includes the owner's display name, used when customers
// browse businesses or resolve conversation counterparts.
type BusinessWithOwner struct {
	Business
	OwnerName string `json:"ownerName"`
}
