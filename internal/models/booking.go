package models

import "time"

// Booking status values. A booking starts pending and is moved exactly once
// by the owning business to confirmed or cancelled.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking represents an appointment request at a mall location
type Booking struct {
	ID            string    `json:"id" db:"id"`
	CustomerID    string    `json:"customerId" db:"customer_id"`
	BusinessID    string    `json:"businessId" db:"business_id"`
	MallID        string    `json:"mallId" db:"mall_id"`
	BookingDate   string    `json:"bookingDate" db:"booking_date"` // YYYY-MM-DD
	BookingTime   string    `json:"bookingTime" db:"booking_time"` // HH:MM
	Status        string    `json:"status" db:"status"`
	CustomerName  string    `json:"customerName" db:"customer_name"`
	CustomerEmail string    `json:"customerEmail" db:"customer_email"`
	CustomerPhone string    `json:"customerPhone" db:"customer_phone"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// BookingWithMall includes the mall's display fields for dashboard listings
type BookingWithMall struct {
	Booking
	MallName     string `json:"mallName"`
	MallLocation string `json:"mallLocation"`
}
