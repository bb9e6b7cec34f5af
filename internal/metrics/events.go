package metrics

import (
	"context"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
	"github.com/shareshelf/shareshelf/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.ItemSubmitted,
		event.ItemInspected,
		event.ItemApproved,
		event.ItemRejected,
		event.BorrowRequested,
		event.BorrowApproved,
		event.BorrowDenied,
		event.BorrowReturned,
		event.BorrowOverdue,
		event.PointsCredited,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ItemSubmitted:
		ItemsSubmitted.Inc()

	case event.ItemInspected:
		// Inspection resolves the item either way; the resulting status tells
		// us which counter to bump.
		payload, ok := evt.Payload.(domain.ItemLifecyclePayload)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		switch payload.Status {
		case domain.ItemStatusApproved:
			ItemsApproved.Inc()
		case domain.ItemStatusRejected:
			ItemsRejected.Inc()
		}

	case event.ItemApproved:
		ItemsApproved.Inc()

	case event.ItemRejected:
		ItemsRejected.Inc()

	case event.BorrowRequested:
		BorrowRequestsOpened.Inc()

	case event.BorrowApproved:
		// Approval keeps the request active; closure happens on deny/return.

	case event.BorrowDenied:
		BorrowRequestsClosed.WithLabelValues(domain.BorrowStatusDenied).Inc()

	case event.BorrowReturned:
		BorrowRequestsClosed.WithLabelValues(domain.BorrowStatusReturned).Inc()

	case event.BorrowOverdue:
		BorrowRequestsOverdue.Inc()

	case event.PointsCredited:
		payload, ok := evt.Payload.(domain.PointsCreditedPayload)
		if !ok {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
			return nil
		}
		PointsCreditedEntries.WithLabelValues(payload.Action).Inc()
		// Counters cannot decrease; redemptions show up as entries only
		if payload.Points > 0 {
			PointsCreditedTotal.Add(float64(payload.Points))
		}
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
