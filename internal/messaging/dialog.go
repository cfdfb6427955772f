package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Aristide-Izab/mani-meetups/internal/models"
)

// ErrEmptyMessage is returned by Send for empty or whitespace-only bodies.
// No store call is made in that case.
var ErrEmptyMessage = errors.New("message body is empty")

// OpenThread loads the full history between viewer and counterpart, oldest
// first, and marks the counterpart's unread messages to the viewer as read.
// The mark-read is idempotent: reopening an unchanged thread changes nothing.
func (s *Service) OpenThread(ctx context.Context, viewerID, counterpartID string) ([]models.Message, error) {
	messages, err := s.store.Thread(ctx, viewerID, counterpartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load thread: %w", err)
	}

	if _, err := s.store.MarkRead(ctx, viewerID, counterpartID); err != nil {
		// The history still renders; the unread flags catch up on the
		// next open.
		s.log.Warn("mark-read failed", "viewer", viewerID, "counterpart", counterpartID, "error", err)
	}

	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// Send validates and appends a message from viewer to counterpart, then
// refetches the thread so the caller sees the authoritative history.
func (s *Service) Send(ctx context.Context, viewerID, counterpartID, body string) ([]models.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.store.Append(ctx, viewerID, counterpartID, body); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	messages, err := s.store.Thread(ctx, viewerID, counterpartID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload thread: %w", err)
	}
	return messages, nil
}
