package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/booking"
	"github.com/Aristide-Izab/mani-meetups/internal/messaging"
	"github.com/Aristide-Izab/mani-meetups/internal/middleware"
	"github.com/Aristide-Izab/mani-meetups/internal/models"
	"github.com/Aristide-Izab/mani-meetups/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore backs both the messaging and booking services in handler tests.
type memStore struct {
	messages []models.Message
	bookings []models.Booking
}

func (s *memStore) Append(ctx context.Context, senderID, receiverID, body string) (models.Message, error) {
	msg := models.Message{
		ID:         fmt.Sprintf("m%d", len(s.messages)+1),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		CreatedAt:  time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg, nil
}

func (s *memStore) ListForUser(ctx context.Context, userID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range s.messages {
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memStore) Thread(ctx context.Context, userA, userB string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range s.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) MarkRead(ctx context.Context, receiverID, senderID string) (int64, error) {
	var n int64
	for i := range s.messages {
		m := &s.messages[i]
		if m.ReceiverID == receiverID && m.SenderID == senderID && !m.Read {
			m.Read = true
			n++
		}
	}
	return n, nil
}

func (s *memStore) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.ID = fmt.Sprintf("bk%d", len(s.bookings)+1)
	b.Status = models.BookingPending
	s.bookings = append(s.bookings, b)
	return b, nil
}

func (s *memStore) ForBusiness(ctx context.Context, businessID string) ([]models.BookingWithMall, error) {
	var out []models.BookingWithMall
	for _, b := range s.bookings {
		if b.BusinessID == businessID {
			out = append(out, models.BookingWithMall{Booking: b})
		}
	}
	return out, nil
}

func (s *memStore) ForCustomer(ctx context.Context, customerID string) ([]models.BookingWithMall, error) {
	var out []models.BookingWithMall
	for _, b := range s.bookings {
		if b.CustomerID == customerID {
			out = append(out, models.BookingWithMall{Booking: b})
		}
	}
	return out, nil
}

func (s *memStore) UpdateStatus(ctx context.Context, bookingID, ownerID, status string) (models.Booking, error) {
	for i := range s.bookings {
		b := &s.bookings[i]
		if b.ID == bookingID && b.Status == models.BookingPending {
			b.Status = status
			return *b, nil
		}
	}
	return models.Booking{}, booking.ErrInvalidTransition
}

// memDirectory serves the profile, business and mall lookups.
type memDirectory struct {
	profiles   map[string]models.Profile
	businesses map[string]models.BusinessWithOwner
	malls      map[string]models.Mall
}

func (d *memDirectory) CustomersByIDs(ctx context.Context, ids []string) ([]models.Profile, error) {
	var out []models.Profile
	for _, id := range ids {
		if p, ok := d.profiles[id]; ok && p.UserType == models.UserTypeCustomer {
			out = append(out, p)
		}
	}
	return out, nil
}

func (d *memDirectory) ByOwnerIDs(ctx context.Context, ownerIDs []string) ([]models.BusinessWithOwner, error) {
	var out []models.BusinessWithOwner
	for _, id := range ownerIDs {
		for _, b := range d.businesses {
			if b.OwnerID == id {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

func (d *memDirectory) ByID(ctx context.Context, id string) (models.Profile, error) {
	p, ok := d.profiles[id]
	if !ok {
		return models.Profile{}, errors.New("profile not found")
	}
	return p, nil
}

type bizLookup struct{ dir *memDirectory }

func (l bizLookup) ByID(ctx context.Context, id string) (models.BusinessWithOwner, error) {
	b, ok := l.dir.businesses[id]
	if !ok {
		return models.BusinessWithOwner{}, errors.New("business not found")
	}
	return b, nil
}

func (l bizLookup) ByOwner(ctx context.Context, ownerID string) (models.Business, error) {
	for _, b := range l.dir.businesses {
		if b.OwnerID == ownerID {
			return b.Business, nil
		}
	}
	return models.Business{}, errors.New("business not found")
}

type mallLookup struct{ dir *memDirectory }

func (l mallLookup) ByID(ctx context.Context, id string) (models.Mall, error) {
	m, ok := l.dir.malls[id]
	if !ok {
		return models.Mall{}, errors.New("mall not found")
	}
	return m, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) (*fiber.App, *memStore) {
	t.Helper()
	utils.InitJWT("handler-test-secret")

	store := &memStore{}
	dir := &memDirectory{
		profiles: map[string]models.Profile{
			"cust1": {
				ID: "cust1", FullName: "Carol Mokoena",
				Email: "carol@example.com", Phone: "082 555 0101",
				UserType: models.UserTypeCustomer,
			},
			"owner1": {ID: "owner1", FullName: "Thandi Dlamini", UserType: models.UserTypeBusiness},
		},
		businesses: map[string]models.BusinessWithOwner{
			"biz1": {
				Business:  models.Business{ID: "biz1", OwnerID: "owner1", BusinessName: "Polished by Thandi"},
				OwnerName: "Thandi Dlamini",
			},
		},
		malls: map[string]models.Mall{
			"mall1": {ID: "mall1", Name: "Sandton City", Location: "Sandton"},
		},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	Init(Deps{
		Messaging: messaging.NewService(store, dir, dir, log),
		Bookings:  booking.NewService(store, store, dir, bizLookup{dir}, mallLookup{dir}, log),
	})

	app := fiber.New()
	api := app.Group("/api/v1")

	messages := api.Group("/messages", middleware.AuthMiddleware)
	messages.Get("/contacts", GetContacts)
	messages.Post("/", SendMessage)
	messages.Get("/:counterpartId", OpenThread)

	bookings := api.Group("/bookings", middleware.AuthMiddleware)
	bookings.Post("/", CreateBooking)
	bookings.Get("/", GetBookings)
	bookings.Patch("/:bookingId/status", UpdateBookingStatus)

	return app, store
}

func doRequest(t *testing.T, app *fiber.App, method, path, userID, userType string, body any) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	if userID != "" {
		token, err := utils.GenerateToken(userID, userID+"@example.com", userType)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/messages/contacts", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestSendMessageEmptyBodyRejected(t *testing.T) {
	app, store := newTestApp(t)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/messages/", "cust1", "customer",
		fiber.Map{"receiverId": "owner1", "message": "   "})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Message cannot be empty", env.Error)
	assert.Empty(t, store.messages)
}

func TestSendMessageReturnsUpdatedThread(t *testing.T) {
	app, store := newTestApp(t)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/messages/", "cust1", "customer",
		fiber.Map{"receiverId": "owner1", "message": "Hi, any openings on Saturday?"})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)

	var thread []models.Message
	require.NoError(t, json.Unmarshal(env.Data, &thread))
	require.Len(t, thread, 1)
	assert.Equal(t, "Hi, any openings on Saturday?", thread[0].Body)
	assert.Len(t, store.messages, 1)
}

func TestContactsReportTotalUnreadAndOpenClearsIt(t *testing.T) {
	app, _ := newTestApp(t)

	_, env := doRequest(t, app, http.MethodPost, "/api/v1/messages/", "cust1", "customer",
		fiber.Map{"receiverId": "owner1", "message": "Hi"})
	require.True(t, env.Success)

	var contactsData struct {
		Contacts    []models.Contact `json:"contacts"`
		TotalUnread int              `json:"totalUnread"`
	}

	resp, env := doRequest(t, app, http.MethodGet, "/api/v1/messages/contacts", "owner1", "business", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &contactsData))
	require.Len(t, contactsData.Contacts, 1)
	assert.Equal(t, 1, contactsData.TotalUnread)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/v1/messages/cust1", "owner1", "business", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, env = doRequest(t, app, http.MethodGet, "/api/v1/messages/contacts", "owner1", "business", nil)
	require.NoError(t, json.Unmarshal(env.Data, &contactsData))
	assert.Equal(t, 0, contactsData.TotalUnread)
}

func TestCreateBookingAndNotification(t *testing.T) {
	app, store := newTestApp(t)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/bookings/", "cust1", "customer", fiber.Map{
		"businessId": "biz1", "mallId": "mall1",
		"bookingDate": "2025-03-01", "bookingTime": "14:00",
	})

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, env.Success)

	var created models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, models.BookingPending, created.Status)

	// The owner received the booking notification as a chat message.
	require.Len(t, store.messages, 1)
	assert.Equal(t, "cust1", store.messages[0].SenderID)
	assert.Equal(t, "owner1", store.messages[0].ReceiverID)
}

func TestCreateBookingMissingFields(t *testing.T) {
	app, store := newTestApp(t)

	resp, env := doRequest(t, app, http.MethodPost, "/api/v1/bookings/", "cust1", "customer", fiber.Map{
		"businessId": "biz1",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Please fill in all fields", env.Error)
	assert.Empty(t, store.bookings)
}

func TestUpdateBookingStatusLifecycle(t *testing.T) {
	app, _ := newTestApp(t)

	_, env := doRequest(t, app, http.MethodPost, "/api/v1/bookings/", "cust1", "customer", fiber.Map{
		"businessId": "biz1", "mallId": "mall1",
		"bookingDate": "2025-03-01", "bookingTime": "14:00",
	})
	require.True(t, env.Success)
	var created models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env := doRequest(t, app, http.MethodPatch, "/api/v1/bookings/"+created.ID+"/status",
		"owner1", "business", fiber.Map{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.BookingConfirmed, updated.Status)

	// A settled booking cannot be moved again.
	resp, env = doRequest(t, app, http.MethodPatch, "/api/v1/bookings/"+created.ID+"/status",
		"owner1", "business", fiber.Map{"status": "cancelled"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Success)

	// Only confirmed/cancelled are accepted at all.
	resp, _ = doRequest(t, app, http.MethodPatch, "/api/v1/bookings/"+created.ID+"/status",
		"owner1", "business", fiber.Map{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetBookingsByRole(t *testing.T) {
	app, _ := newTestApp(t)

	_, env := doRequest(t, app, http.MethodPost, "/api/v1/bookings/", "cust1", "customer", fiber.Map{
		"businessId": "biz1", "mallId": "mall1",
		"bookingDate": "2025-03-01", "bookingTime": "14:00",
	})
	require.True(t, env.Success)

	var list []models.BookingWithMall

	_, env = doRequest(t, app, http.MethodGet, "/api/v1/bookings/", "owner1", "business", nil)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	_, env = doRequest(t, app, http.MethodGet, "/api/v1/bookings/", "cust1", "customer", nil)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)
}
