package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOpenThreadReturnsAscendingHistory(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeMessageStore{messages: []models.Message{
		msgAt("m2", "owner1", "cust1", "reply", base.Add(time.Minute), false),
		msgAt("m1", "cust1", "owner1", "Hi", base, false),
	}}

	svc := newTestService(store, nil, nil)
	messages, err := svc.OpenThread(context.Background(), "cust1", "owner1")

	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)
}

func TestOpenThreadSymmetricForBothParticipants(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeMessageStore{messages: []models.Message{
		msgAt("m1", "cust1", "owner1", "Hi", base, true),
		msgAt("m2", "owner1", "cust1", "Hello", base.Add(time.Minute), true),
		msgAt("m3", "cust1", "other", "unrelated", base.Add(2*time.Minute), false),
	}}

	svc := newTestService(store, nil, nil)

	asCustomer, err := svc.OpenThread(context.Background(), "cust1", "owner1")
	assert.NoError(t, err)
	asOwner, err := svc.OpenThread(context.Background(), "owner1", "cust1")
	assert.NoError(t, err)

	assert.Equal(t, asCustomer, asOwner)
	assert.Len(t, asCustomer, 2)
}

func TestOpenThreadMarksOnlyIncomingRead(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeMessageStore{messages: []models.Message{
		msgAt("m1", "cust1", "owner1", "Hi", base, false),
		msgAt("m2", "owner1", "cust1", "Hello", base.Add(time.Minute), false),
	}}

	svc := newTestService(store, nil, nil)
	_, err := svc.OpenThread(context.Background(), "owner1", "cust1")
	assert.NoError(t, err)

	// The customer's message to the owner is now read; the owner's own
	// outgoing message is untouched.
	assert.True(t, store.messages[0].Read)
	assert.False(t, store.messages[1].Read)
}

func TestOpenThreadMarkReadIdempotent(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeMessageStore{messages: []models.Message{
		msgAt("m1", "cust1", "owner1", "Hi", base, false),
	}}

	svc := newTestService(store, nil, nil)

	_, err := svc.OpenThread(context.Background(), "owner1", "cust1")
	assert.NoError(t, err)
	first, err := store.MarkRead(context.Background(), "owner1", "cust1")
	assert.NoError(t, err)
	assert.Zero(t, first, "second mark-read should be a no-op")

	_, err = svc.OpenThread(context.Background(), "owner1", "cust1")
	assert.NoError(t, err)
	assert.True(t, store.messages[0].Read)
}

func TestSendRejectsEmptyBodyWithoutStoreCalls(t *testing.T) {
	store := &fakeMessageStore{}
	svc := newTestService(store, nil, nil)

	for _, body := range []string{"", "   ", "\n\t"} {
		_, err := svc.Send(context.Background(), "cust1", "owner1", body)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
	assert.Zero(t, store.appendCalls)
}

func TestSendAppendsAndRefetchesThread(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeMessageStore{messages: []models.Message{
		msgAt("m1", "owner1", "cust1", "Hello", base, false),
	}}

	svc := newTestService(store, nil, nil)
	messages, err := svc.Send(context.Background(), "cust1", "owner1", "  Hi there  ")

	assert.NoError(t, err)
	assert.Equal(t, 1, store.appendCalls)
	assert.Len(t, messages, 2)
	assert.Equal(t, "Hi there", messages[1].Body, "body is trimmed before sending")
	assert.False(t, messages[1].Read, "new messages start unread")
}
