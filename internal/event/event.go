package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shareshelf/shareshelf/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Lifecycle event types
const (
	ItemSubmitted   = Type(domain.EventTypeItemSubmitted)
	ItemInspected   = Type(domain.EventTypeItemInspected)
	ItemApproved    = Type(domain.EventTypeItemApproved)
	ItemRejected    = Type(domain.EventTypeItemRejected)
	BorrowRequested = Type(domain.EventTypeBorrowRequested)
	BorrowApproved  = Type(domain.EventTypeBorrowApproved)
	BorrowDenied    = Type(domain.EventTypeBorrowDenied)
	BorrowReturned  = Type(domain.EventTypeBorrowReturned)
	BorrowOverdue   = Type(domain.EventTypeBorrowOverdue)
	PointsCredited  = Type(domain.EventTypePointsCredited)
)

// Type-safe event constructors

// NewItemLifecycleEvent creates an event for an item status transition
func NewItemLifecycleEvent(eventType Type, item *domain.Item, actorID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.ItemLifecyclePayload{
			ItemID:    item.ID,
			OwnerID:   item.OwnerID,
			ActorID:   actorID,
			Status:    item.Status,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBorrowLifecycleEvent creates an event for a borrow request transition
func NewBorrowLifecycleEvent(eventType Type, request *domain.BorrowRequest, actorID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.BorrowLifecyclePayload{
			RequestID:  request.ID,
			ItemID:     request.ItemID,
			BorrowerID: request.BorrowerID,
			ActorID:    actorID,
			Status:     request.Status,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewBorrowOverdueEvent creates an event for a loan that passed its due date
func NewBorrowOverdueEvent(request *domain.BorrowRequest) Event {
	var dueDate int64
	if request.DueDate != nil {
		dueDate = request.DueDate.Unix()
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    BorrowOverdue,
		Payload: domain.BorrowOverduePayload{
			RequestID:  request.ID,
			ItemID:     request.ItemID,
			BorrowerID: request.BorrowerID,
			DueDate:    dueDate,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewPointsCreditedEvent creates an event for a rewards ledger credit
func NewPointsCreditedEvent(txn *domain.PointTransaction) Event {
	var itemID string
	if txn.ItemID != nil {
		itemID = *txn.ItemID
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    PointsCredited,
		Payload: domain.PointsCreditedPayload{
			UserID:    txn.UserID,
			Points:    txn.Points,
			Action:    txn.Action,
			ItemID:    itemID,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously; a failing subscriber is reported but does
	// not stop the others.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
