package messaging

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/models"
)

// MessageStore is the slice of the message log the messaging service needs.
// *database.MessageRepository is the production implementation.
type MessageStore interface {
	Append(ctx context.Context, senderID, receiverID, body string) (models.Message, error)
	ListForUser(ctx context.Context, userID string) ([]models.Message, error)
	Thread(ctx context.Context, userA, userB string) ([]models.Message, error)
	MarkRead(ctx context.Context, receiverID, senderID string) (int64, error)
}

// CustomerDirectory resolves user ids against customer profiles. Ids that do
// not belong to a customer account are absent from the result.
type CustomerDirectory interface {
	CustomersByIDs(ctx context.Context, ids []string) ([]models.Profile, error)
}

// BusinessDirectory resolves owner user ids to their businesses. Owners with
// no business are absent from the result.
type BusinessDirectory interface {
	ByOwnerIDs(ctx context.Context, ownerIDs []string) ([]models.BusinessWithOwner, error)
}

// Service derives conversation state from the flat message log. Threads are
// never stored; everything here is computed per request.
type Service struct {
	store      MessageStore
	customers  CustomerDirectory
	businesses BusinessDirectory
	log        *slog.Logger
}

func NewService(store MessageStore, customers CustomerDirectory, businesses BusinessDirectory, log *slog.Logger) *Service {
	return &Service{store: store, customers: customers, businesses: businesses, log: log}
}

// Contacts returns the viewer's conversation partners with per-partner unread
// counts, most recent conversation first.
//
// Resolution depends on the viewer's role: a business sees customer profiles,
// a customer sees businesses (resolved through the owner id used for message
// routing). Counterparts that fail role resolution are dropped from the list;
// a business messaging another business is invisible on both dashboards.
//
// Any fetch or resolution failure degrades to an empty list so the dashboard
// still renders.
func (s *Service) Contacts(ctx context.Context, viewerID, role string) []models.Contact {
	messages, err := s.store.ListForUser(ctx, viewerID)
	if err != nil {
		s.log.Warn("contact derivation: message fetch failed", "viewer", viewerID, "error", err)
		return []models.Contact{}
	}
	if len(messages) == 0 {
		return []models.Contact{}
	}

	counterparts, lastAt := collectCounterparts(messages, viewerID)

	var contacts []models.Contact
	if role == models.UserTypeBusiness {
		contacts, err = s.resolveCustomers(ctx, counterparts)
	} else {
		contacts, err = s.resolveBusinesses(ctx, counterparts)
	}
	if err != nil {
		s.log.Warn("contact derivation: resolution failed", "viewer", viewerID, "role", role, "error", err)
		return []models.Contact{}
	}

	if dropped := len(counterparts) - len(contacts); dropped > 0 {
		s.log.Debug("contact derivation: counterparts dropped by role filter",
			"viewer", viewerID, "role", role, "dropped", dropped)
	}

	for i := range contacts {
		contacts[i].UnreadCount = unreadFrom(messages, contacts[i].CounterpartID, viewerID)
		contacts[i].LastMessageAt = lastAt[contacts[i].CounterpartID]
	}

	sort.SliceStable(contacts, func(i, j int) bool {
		return contacts[i].LastMessageAt.After(contacts[j].LastMessageAt)
	})
	return contacts
}

// TotalUnread sums per-contact unread counts for the dashboard badge.
func TotalUnread(contacts []models.Contact) int {
	total := 0
	for _, c := range contacts {
		total += c.UnreadCount
	}
	return total
}

func (s *Service) resolveCustomers(ctx context.Context, ids []string) ([]models.Contact, error) {
	profiles, err := s.customers.CustomersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	contacts := make([]models.Contact, 0, len(profiles))
	for _, p := range profiles {
		contacts = append(contacts, models.Contact{
			CounterpartID: p.ID,
			DisplayName:   p.FullName,
			Detail:        p.Email,
		})
	}
	return contacts, nil
}

func (s *Service) resolveBusinesses(ctx context.Context, ownerIDs []string) ([]models.Contact, error) {
	businesses, err := s.businesses.ByOwnerIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}

	contacts := make([]models.Contact, 0, len(businesses))
	for _, b := range businesses {
		// Display name is the business, routing identity stays the owner.
		contacts = append(contacts, models.Contact{
			CounterpartID: b.OwnerID,
			DisplayName:   b.BusinessName,
			Detail:        b.OwnerName,
			BusinessID:    b.ID,
		})
	}
	return contacts, nil
}

// collectCounterparts returns the distinct other-party ids in the viewer's
// messages, in first-seen order, plus each counterpart's latest message time.
func collectCounterparts(messages []models.Message, viewerID string) ([]string, map[string]time.Time) {
	seen := make(map[string]bool)
	lastAt := make(map[string]time.Time)
	var ids []string

	for _, msg := range messages {
		otherID := msg.SenderID
		if msg.SenderID == viewerID {
			otherID = msg.ReceiverID
		}
		if !seen[otherID] {
			seen[otherID] = true
			ids = append(ids, otherID)
		}
		if msg.CreatedAt.After(lastAt[otherID]) {
			lastAt[otherID] = msg.CreatedAt
		}
	}
	return ids, lastAt
}

func unreadFrom(messages []models.Message, senderID, receiverID string) int {
	count := 0
	for _, msg := range messages {
		if msg.SenderID == senderID && msg.ReceiverID == receiverID && !msg.Read {
			count++
		}
	}
	return count
}
