package eventlog

import (
	"context"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
	"github.com/shareshelf/shareshelf/internal/logger"
)

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new event logging service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		event.Type(domain.EventTypeItemSubmitted),
		event.Type(domain.EventTypeItemInspected),
		event.Type(domain.EventTypeItemApproved),
		event.Type(domain.EventTypeItemRejected),
		event.Type(domain.EventTypeBorrowRequested),
		event.Type(domain.EventTypeBorrowApproved),
		event.Type(domain.EventTypeBorrowDenied),
		event.Type(domain.EventTypeBorrowReturned),
		event.Type(domain.EventTypeBorrowOverdue),
		event.Type(domain.EventTypePointsCredited),
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent processes and logs events to the database
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Typed payloads are flattened to a map for the jsonb column.
	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		log.Debug(LogMsgEventPayloadNotMap, LogFieldType, evt.Type)
		return nil
	}

	// Extract user_id if present
	var userID *string
	if uid, ok := payload[PayloadKeyUserID].(string); ok && uid != "" {
		userID = &uid
	} else if uid, ok := payload[PayloadKeyOwnerID].(string); ok && uid != "" {
		// Item lifecycle events attribute to the item owner.
		userID = &uid
	}

	var metadata map[string]interface{}
	if m, ok := evt.Metadata.(map[string]interface{}); ok {
		metadata = m
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldUserID, userID)
	return nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
