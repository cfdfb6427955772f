package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/booking"
	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookingRepository provides access to the bookings table
type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts a booking. Status is always pending at creation.
func (r *BookingRepository) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO bookings (id, customer_id, business_id, mall_id, booking_date, booking_time,
			status, customer_name, customer_email, customer_phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', $7, $8, $9, $10)
		RETURNING id, status, created_at
	`, uuid.NewString(), b.CustomerID, b.BusinessID, b.MallID, b.BookingDate, b.BookingTime,
		b.CustomerName, b.CustomerEmail, b.CustomerPhone, time.Now()).
		Scan(&b.ID, &b.Status, &b.CreatedAt)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return b, nil
}

// ForBusiness returns all bookings for a business with mall details, newest first.
func (r *BookingRepository) ForBusiness(ctx context.Context, businessID string) ([]models.BookingWithMall, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT bk.id, bk.customer_id, bk.business_id, bk.mall_id, bk.booking_date, bk.booking_time,
			bk.status, bk.customer_name, bk.customer_email, bk.customer_phone, bk.created_at,
			m.name, m.location
		FROM bookings bk
		INNER JOIN malls m ON bk.mall_id = m.id
		WHERE bk.business_id = $1
		ORDER BY bk.created_at DESC
	`, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list business bookings: %w", err)
	}
	defer rows.Close()

	return scanBookingsWithMall(rows)
}

// ForCustomer returns a customer's own bookings with mall details, newest first.
func (r *BookingRepository) ForCustomer(ctx context.Context, customerID string) ([]models.BookingWithMall, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT bk.id, bk.customer_id, bk.business_id, bk.mall_id, bk.booking_date, bk.booking_time,
			bk.status, bk.customer_name, bk.customer_email, bk.customer_phone, bk.created_at,
			m.name, m.location
		FROM bookings bk
		INNER JOIN malls m ON bk.mall_id = m.id
		WHERE bk.customer_id = $1
		ORDER BY bk.created_at DESC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer bookings: %w", err)
	}
	defer rows.Close()

	return scanBookingsWithMall(rows)
}

// UpdateStatus moves a pending booking to confirmed or cancelled. The WHERE
// clause enforces both the transition closure (only pending rows move) and
// ownership (only the owning business's rows match).
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID, ownerID, status string) (models.Booking, error) {
	var b models.Booking
	err := r.pool.QueryRow(ctx, `
		UPDATE bookings SET status = $1
		WHERE id = $2
			AND status = 'pending'
			AND business_id IN (SELECT id FROM businesses WHERE owner_id = $3)
		RETURNING id, customer_id, business_id, mall_id, booking_date, booking_time,
			status, customer_name, customer_email, customer_phone, created_at
	`, status, bookingID, ownerID).
		Scan(&b.ID, &b.CustomerID, &b.BusinessID, &b.MallID, &b.BookingDate, &b.BookingTime,
			&b.Status, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Booking{}, booking.ErrInvalidTransition
	}
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to update booking status: %w", err)
	}
	return b, nil
}

func scanBookingsWithMall(rows pgx.Rows) ([]models.BookingWithMall, error) {
	var bookings []models.BookingWithMall
	for rows.Next() {
		var b models.BookingWithMall
		if err := rows.Scan(&b.ID, &b.CustomerID, &b.BusinessID, &b.MallID, &b.BookingDate, &b.BookingTime,
			&b.Status, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.CreatedAt,
			&b.MallName, &b.MallLocation); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
