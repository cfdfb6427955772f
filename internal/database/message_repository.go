package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Aristide-Izab/mani-meetups/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepository provides access to the messages table. Messages are an
// append-only log; the only mutation is the receiver-side read flag.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

// Append inserts a new unread message from sender to receiver.
func (r *MessageRepository) Append(ctx context.Context, senderID, receiverID, body string) (models.Message, error) {
	var msg models.Message
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, message, read, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		RETURNING id, sender_id, receiver_id, message, read, created_at
	`, uuid.NewString(), senderID, receiverID, body, time.Now()).
		Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Body, &msg.Read, &msg.CreatedAt)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to insert message: %w", err)
	}
	return msg, nil
}

// ListForUser returns every message the user sent or received. The fetch is
// deliberately unbounded; contact derivation needs the full log.
func (r *MessageRepository) ListForUser(ctx context.Context, userID string) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, sender_id, receiver_id, message, read, created_at
		FROM messages
		WHERE sender_id = $1 OR receiver_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// Thread returns the full history between two users, oldest first. The pair
// is unordered: the same rows come back regardless of argument order.
func (r *MessageRepository) Thread(ctx context.Context, userA, userB string) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, sender_id, receiver_id, message, read, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC
	`, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thread: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// MarkRead flips the read flag on every unread message from sender to
// receiver. The receiver_id filter means a user can only ever mark messages
// addressed to them; the read=false guard makes repeated calls no-ops.
func (r *MessageRepository) MarkRead(ctx context.Context, receiverID, senderID string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE messages SET read = true
		WHERE receiver_id = $1 AND sender_id = $2 AND read = false
	`, receiverID, senderID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark messages read: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanMessages(rows pgx.Rows) ([]models.Message, error) {
	var messages []models.Message
	for rows.Next() {
		var msg models.Message
		if err := rows.Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Body, &msg.Read, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
