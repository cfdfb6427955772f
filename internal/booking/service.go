package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Aristide-Izab/mani-meetups/internal/models"
)

// ErrMissingFields is returned when a booking request lacks required fields.
// Validation happens before any store call.
var ErrMissingFields = errors.New("business, mall, date and time are required")

// ErrInvalidTransition is returned when a status update targets a booking
// that is not pending, or one the caller's business does not own.
var ErrInvalidTransition = errors.New("booking is not pending or not owned by this business")

// BookingStore is the slice of the bookings table the service needs.
// *database.BookingRepository is the production implementation.
type BookingStore interface {
	Create(ctx context.Context, b models.Booking) (models.Booking, error)
	ForBusiness(ctx context.Context, businessID string) ([]models.BookingWithMall, error)
	ForCustomer(ctx context.Context, customerID string) ([]models.BookingWithMall, error)
	UpdateStatus(ctx context.Context, bookingID, ownerID, status string) (models.Booking, error)
}

// MessageAppender appends the customer→owner notification message.
type MessageAppender interface {
	Append(ctx context.Context, senderID, receiverID, body string) (models.Message, error)
}

// ProfileLookup loads the booking customer's contact fields.
type ProfileLookup interface {
	ByID(ctx context.Context, id string) (models.Profile, error)
}

// BusinessLookup resolves the booked business and its owner identity.
type BusinessLookup interface {
	ByID(ctx context.Context, id string) (models.BusinessWithOwner, error)
	ByOwner(ctx context.Context, ownerID string) (models.Business, error)
}

// MallLookup resolves the mall named in the notification.
type MallLookup interface {
	ByID(ctx context.Context, id string) (models.Mall, error)
}

// Service creates bookings and moves them through their status lifecycle.
type Service struct {
	bookings   BookingStore
	messages   MessageAppender
	profiles   ProfileLookup
	businesses BusinessLookup
	malls      MallLookup
	log        *slog.Logger
}

func NewService(bookings BookingStore, messages MessageAppender, profiles ProfileLookup,
	businesses BusinessLookup, malls MallLookup, log *slog.Logger) *Service {
	return &Service{
		bookings:   bookings,
		messages:   messages,
		profiles:   profiles,
		businesses: businesses,
		malls:      malls,
		log:        log,
	}
}

// CreateInput carries a customer's booking request.
type CreateInput struct {
	CustomerID  string
	BusinessID  string
	MallID      string
	BookingDate string // YYYY-MM-DD
	BookingTime string // HH:MM
}

// Create inserts the booking and then sends the notification message from the
// customer to the business owner. The two writes are deliberately not atomic:
// a failed notification is logged and the booking still stands.
func (s *Service) Create(ctx context.Context, in CreateInput) (models.Booking, error) {
	if in.BusinessID == "" || in.MallID == "" || in.BookingDate == "" || in.BookingTime == "" {
		return models.Booking{}, ErrMissingFields
	}

	customer, err := s.profiles.ByID(ctx, in.CustomerID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to load customer profile: %w", err)
	}
	business, err := s.businesses.ByID(ctx, in.BusinessID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to load business: %w", err)
	}
	mall, err := s.malls.ByID(ctx, in.MallID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to load mall: %w", err)
	}

	booking, err := s.bookings.Create(ctx, models.Booking{
		CustomerID:    in.CustomerID,
		BusinessID:    in.BusinessID,
		MallID:        in.MallID,
		BookingDate:   in.BookingDate,
		BookingTime:   in.BookingTime,
		CustomerName:  customer.FullName,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
	})
	if err != nil {
		return models.Booking{}, err
	}

	body := ComposeNotification(customer, booking, mall)
	if _, err := s.messages.Append(ctx, in.CustomerID, business.OwnerID, body); err != nil {
		s.log.Error("booking notification message failed",
			"booking", booking.ID, "owner", business.OwnerID, "error", err)
	}

	return booking, nil
}

// UpdateStatus moves a pending booking owned by the viewer's business to
// confirmed or cancelled. The store rejects any other transition.
func (s *Service) UpdateStatus(ctx context.Context, viewerID, bookingID, status string) (models.Booking, error) {
	if status != models.BookingConfirmed && status != models.BookingCancelled {
		return models.Booking{}, fmt.Errorf("invalid status %q", status)
	}
	return s.bookings.UpdateStatus(ctx, bookingID, viewerID, status)
}

// ListForViewer returns the bookings visible to the viewer: a business sees
// the requests made to it, a customer sees their own.
func (s *Service) ListForViewer(ctx context.Context, viewerID, role string) ([]models.BookingWithMall, error) {
	if role == models.UserTypeBusiness {
		business, err := s.businesses.ByOwner(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		return s.bookings.ForBusiness(ctx, business.ID)
	}
	return s.bookings.ForCustomer(ctx, viewerID)
}
