package messaging

import (
	"context"
	"fmt"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/repository"
)

// SendInput carries the fields accepted when sending a message
type SendInput struct {
	RecipientID string
	ItemID      *string
	Subject     string
	Body        string
}

// Service defines the interface for user-to-user messaging
type Service interface {
	Send(ctx context.Context, actor *domain.User, input SendInput) (*domain.Message, error)
	Inbox(ctx context.Context, actor *domain.User) ([]domain.Message, error)
	Sent(ctx context.Context, actor *domain.User) ([]domain.Message, error)
	MarkRead(ctx context.Context, actor *domain.User, messageID string) (*domain.Message, error)
}

// service implements the Service interface
type service struct {
	repo  repository.Message
	users repository.User
}

// NewService creates a new messaging service
func NewService(repo repository.Message, users repository.User) Service {
	return &service{repo: repo, users: users}
}

// Send delivers a message to an existing recipient
func (s *service) Send(ctx context.Context, actor *domain.User, input SendInput) (*domain.Message, error) {
	log := logger.FromContext(ctx)
	log.Info("Send called", "recipient_id", input.RecipientID)

	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if input.Body == "" {
		return nil, fmt.Errorf("%w: body is required", domain.ErrInvalidInput)
	}

	if _, err := s.users.GetUserByID(ctx, input.RecipientID); err != nil {
		log.Warn("Recipient lookup failed", "error", err, "recipient_id", input.RecipientID)
		return nil, err
	}

	message := &domain.Message{
		SenderID:    actor.ID,
		RecipientID: input.RecipientID,
		ItemID:      input.ItemID,
		Subject:     input.Subject,
		Body:        input.Body,
	}
	if err := s.repo.InsertMessage(ctx, message); err != nil {
		log.Error("Failed to insert message", "error", err, "sender_id", actor.ID)
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}

	log.Info("Message sent", "message_id", message.ID, "sender_id", actor.ID, "recipient_id", input.RecipientID)
	return message, nil
}

// Inbox lists the actor's received messages, newest first
func (s *service) Inbox(ctx context.Context, actor *domain.User) ([]domain.Message, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ListInbox(ctx, actor.ID)
}

// Sent lists the actor's sent messages, newest first
func (s *service) Sent(ctx context.Context, actor *domain.User) ([]domain.Message, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ListSent(ctx, actor.ID)
}

// MarkRead flips is_read to true. Recipient only; already-read messages are
// left alone so repeated calls are no-ops.
func (s *service) MarkRead(ctx context.Context, actor *domain.User, messageID string) (*domain.Message, error) {
	log := logger.FromContext(ctx)

	if actor == nil {
		return nil, domain.ErrUnauthorized
	}

	message, err := s.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.RecipientID != actor.ID {
		log.Warn("MarkRead attempted by non-recipient", "message_id", messageID, "actor_id", actor.ID)
		return nil, domain.ErrNotRecipient
	}

	if !message.IsRead {
		if err := s.repo.MarkRead(ctx, messageID); err != nil {
			log.Error("Failed to mark message read", "error", err, "message_id", messageID)
			return nil, fmt.Errorf("failed to mark message read: %w", err)
		}
		message.IsRead = true
	}

	return message, nil
}
