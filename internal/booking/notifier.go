package booking

import (
	"fmt"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/models"
)

const notificationTemplate = "📅 New Booking Request!\n\n" +
	"Customer: %s\nEmail: %s\nPhone: %s\n\n" +
	"Date: %s\nTime: %s\nMall: %s\n\n" +
	"Please confirm or decline this booking from your dashboard."

// ComposeNotification builds the message body a business owner receives when
// a customer books them. The date is rendered long-form ("Saturday, 01 March
// 2025"); an unparseable date falls back to the raw string.
func ComposeNotification(customer models.Profile, booking models.Booking, mall models.Mall) string {
	formattedDate := booking.BookingDate
	if d, err := time.Parse("2006-01-02", booking.BookingDate); err == nil {
		formattedDate = d.Format("Monday, 02 January 2006")
	}

	return fmt.Sprintf(notificationTemplate,
		orNA(customer.FullName), orNA(customer.Email), orNA(customer.Phone),
		formattedDate, booking.BookingTime, orNA(mall.Name))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
