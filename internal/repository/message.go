package repository

import (
	"context"

	"github.com/shareshelf/shareshelf/internal/domain"
)

// Message defines the interface for message persistence
type Message interface {
	InsertMessage(ctx context.Context, message *domain.Message) error
	GetMessageByID(ctx context.Context, messageID string) (*domain.Message, error)
	ListInbox(ctx context.Context, recipientID string) ([]domain.Message, error)
	ListSent(ctx context.Context, senderID string) ([]domain.Message, error)
	MarkRead(ctx context.Context, messageID string) error
}
