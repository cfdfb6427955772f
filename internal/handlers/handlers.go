package handlers

import (
	"context"

	"github.com/Aristide-Izab/mani-meetups/internal/booking"
	"github.com/Aristide-Izab/mani-meetups/internal/messaging"
	"github.com/Aristide-Izab/mani-meetups/internal/models"
	"github.com/Aristide-Izab/mani-meetups/internal/ws"
)

// ProfileStore is what the auth and profile handlers need from the profiles
// table. *database.ProfileRepository is the production implementation.
type ProfileStore interface {
	Create(ctx context.Context, email, fullName, phone, passwordHash, userType string) (models.Profile, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ByEmail(ctx context.Context, email string) (models.Profile, error)
	ByID(ctx context.Context, id string) (models.Profile, error)
	Update(ctx context.Context, id, fullName, phone string) (models.Profile, error)
}

// BusinessStore is what the business handlers need from the businesses table.
type BusinessStore interface {
	Create(ctx context.Context, ownerID, businessName, username string) (models.Business, error)
	ByOwner(ctx context.Context, ownerID string) (models.Business, error)
	ByID(ctx context.Context, id string) (models.BusinessWithOwner, error)
	List(ctx context.Context, search string) ([]models.BusinessWithOwner, error)
	Update(ctx context.Context, ownerID, businessName, description string) (models.Business, error)
}

// MallStore is what the mall handlers need from the malls table.
type MallStore interface {
	List(ctx context.Context) ([]models.Mall, error)
	ByID(ctx context.Context, id string) (models.Mall, error)
}

// GalleryStore is what the gallery handlers need from the business_gallery table.
type GalleryStore interface {
	ForBusiness(ctx context.Context, businessID string) ([]models.GalleryImage, error)
	Add(ctx context.Context, businessID, imageURL string, caption *string) (models.GalleryImage, error)
	Remove(ctx context.Context, imageID, businessID string) (bool, error)
}

// Deps wires the handler package to its services and stores.
type Deps struct {
	Messaging  *messaging.Service
	Bookings   *booking.Service
	Profiles   ProfileStore
	Businesses BusinessStore
	Malls      MallStore
	Gallery    GalleryStore
	Hub        *ws.Hub
}

var deps Deps

// Init must be called once at startup before any route is served.
func Init(d Deps) {
	deps = d
}
