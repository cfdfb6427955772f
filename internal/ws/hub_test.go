package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newConnectedClient(t *testing.T, h *Hub, userID string) *Client {
	t.Helper()
	c := NewClient(userID, nil, h)
	h.Register <- c
	assert.Eventually(t, func() bool {
		h.mu.RLock()
		defer h.mu.RUnlock()
		return h.Clients[userID] == c
	}, time.Second, time.Millisecond)
	return c
}

func TestPublishDeliversToConnectedUser(t *testing.T) {
	h := NewHub()
	go h.Run()

	c := newConnectedClient(t, h, "owner1")

	h.Publish("owner1", EventBookingCreated, BookingPayload{BookingID: "bk1", Status: "pending"})

	data := <-c.Send
	var event Event
	assert.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, EventBookingCreated, event.Type)
	assert.False(t, event.Timestamp.IsZero())
}

func TestPublishToOfflineUserIsNoOp(t *testing.T) {
	h := NewHub()
	go h.Run()

	// Nobody connected; must not block or panic.
	h.Publish("ghost", EventMessageNew, MessagePayload{MessageID: "m1"})
	assert.Equal(t, 0, h.OnlineCount())
}

func TestRegisterReplacesExistingConnection(t *testing.T) {
	h := NewHub()
	go h.Run()

	old := newConnectedClient(t, h, "owner1")
	replacement := newConnectedClient(t, h, "owner1")

	// The old client's channel is closed on replacement.
	_, open := <-old.Send
	assert.False(t, open)
	assert.Equal(t, 1, h.OnlineCount())

	h.Publish("owner1", EventMessageNew, MessagePayload{MessageID: "m1"})
	select {
	case data := <-replacement.Send:
		assert.NotEmpty(t, data)
	default:
		t.Fatal("replacement client did not receive the event")
	}
}

func TestStaleUnregisterKeepsReplacement(t *testing.T) {
	h := NewHub()
	go h.Run()

	old := newConnectedClient(t, h, "owner1")
	newConnectedClient(t, h, "owner1")

	// A late unregister from the replaced connection must not evict the
	// replacement.
	h.Unregister <- old
	newConnectedClient(t, h, "other")

	assert.Equal(t, 2, h.OnlineCount())
}
