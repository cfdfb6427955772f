package booking

import (
	"strings"
	"testing"

	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComposeNotification(t *testing.T) {
	customer := models.Profile{
		FullName: "Carol Mokoena",
		Email:    "carol@example.com",
		Phone:    "082 555 0101",
	}
	bk := models.Booking{
		BookingDate: "2025-03-01",
		BookingTime: "14:00",
	}
	mall := models.Mall{Name: "Sandton City"}

	body := ComposeNotification(customer, bk, mall)

	assert.True(t, strings.HasPrefix(body, "📅 New Booking Request!"))
	assert.Contains(t, body, "Customer: Carol Mokoena")
	assert.Contains(t, body, "Email: carol@example.com")
	assert.Contains(t, body, "Phone: 082 555 0101")
	assert.Contains(t, body, "Date: Saturday, 01 March 2025")
	assert.Contains(t, body, "Time: 14:00")
	assert.Contains(t, body, "Mall: Sandton City")
	assert.Contains(t, body, "confirm or decline")
}

func TestComposeNotificationFillsMissingFields(t *testing.T) {
	customer := models.Profile{FullName: "Carol Mokoena"}
	bk := models.Booking{BookingDate: "2025-03-01", BookingTime: "14:00"}

	body := ComposeNotification(customer, bk, models.Mall{})

	assert.Contains(t, body, "Email: N/A")
	assert.Contains(t, body, "Phone: N/A")
	assert.Contains(t, body, "Mall: N/A")
}

func TestComposeNotificationUnparseableDateFallsBack(t *testing.T) {
	bk := models.Booking{BookingDate: "next saturday", BookingTime: "14:00"}

	body := ComposeNotification(models.Profile{FullName: "Carol"}, bk, models.Mall{Name: "Sandton City"})

	assert.Contains(t, body, "Date: next saturday")
}
