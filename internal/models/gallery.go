package models

import "time"

// GalleryImage is portfolio image metadata for a business. The image bytes
// themselves live in an external object store; only the URL is kept here.
type GalleryImage struct {
	ID         string    `json:"id" db:"id"`
	BusinessID string    `json:"businessId" db:"business_id"`
	ImageURL   string    `json:"imageUrl" db:"image_url"`
	Caption    *string   `json:"caption,omitempty" db:"caption"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
