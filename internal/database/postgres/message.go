package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/repository"
)

type messageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new PostgreSQL message repository
func NewMessageRepository(db *pgxpool.Pool) repository.Message {
	return &messageRepository{db: db}
}

const messageColumns = `id, sender_id, recipient_id, item_id, subject, body, is_read, created_at`

func scanMessage(row interface{ Scan(dest ...any) error }) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.ItemID,
		&m.Subject, &m.Body, &m.IsRead, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *messageRepository) InsertMessage(ctx context.Context, message *domain.Message) error {
	message.ID = newID(message.ID)

	query := `
		INSERT INTO messages (id, sender_id, recipient_id, item_id, subject, body, is_read)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.ID, message.SenderID, message.RecipientID, message.ItemID,
		message.Subject, message.Body, message.IsRead,
	).Scan(&message.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *messageRepository) GetMessageByID(ctx context.Context, messageID string) (*domain.Message, error) {
	if _, err := parseUUID(messageID, "message"); err != nil {
		return nil, domain.ErrMessageNotFound
	}

	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	message, err := scanMessage(r.db.QueryRow(ctx, query, messageID))
	if err != nil {
		return nil, notFound(err, domain.ErrMessageNotFound)
	}
	return message, nil
}

func (r *messageRepository) ListInbox(ctx context.Context, recipientID string) ([]domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE recipient_id = $1 ORDER BY created_at DESC`
	return r.listMessages(ctx, query, recipientID)
}

func (r *messageRepository) ListSent(ctx context.Context, senderID string) ([]domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE sender_id = $1 ORDER BY created_at DESC`
	return r.listMessages(ctx, query, senderID)
}

func (r *messageRepository) listMessages(ctx context.Context, query, userID string) ([]domain.Message, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []domain.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, messageID string) error {
	// Idempotent: re-marking a read message is a no-op.
	query := `UPDATE messages SET is_read = TRUE WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, messageID)
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}
