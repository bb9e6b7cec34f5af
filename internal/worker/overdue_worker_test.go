package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
)

// stubOverdueLister returns a fixed set of overdue loans
type stubOverdueLister struct {
	overdue []domain.BorrowRequest
	err     error
}

func (s *stubOverdueLister) ListOverdueRequests(ctx context.Context, asOf time.Time) ([]domain.BorrowRequest, error) {
	return s.overdue, s.err
}

func overdueRequest(id string) domain.BorrowRequest {
	due := time.Now().Add(-24 * time.Hour)
	return domain.BorrowRequest{
		ID:         id,
		ItemID:     "item-1",
		BorrowerID: "user-1",
		Status:     domain.BorrowStatusApproved,
		DueDate:    &due,
	}
}

func TestOverdueSweep(t *testing.T) {
	t.Run("announces each overdue loan once", func(t *testing.T) {
		lister := &stubOverdueLister{overdue: []domain.BorrowRequest{
			overdueRequest("req-1"),
			overdueRequest("req-2"),
		}}

		bus := event.NewMemoryBus()
		var published []event.Event
		bus.Subscribe(event.BorrowOverdue, func(ctx context.Context, evt event.Event) error {
			published = append(published, evt)
			return nil
		})

		sweep := NewOverdueSweep(lister, bus)

		require.NoError(t, sweep.Process(context.Background()))
		assert.Len(t, published, 2)

		// Second sweep sees the same loans; nothing new is announced
		require.NoError(t, sweep.Process(context.Background()))
		assert.Len(t, published, 2)
	})

	t.Run("returned loan is re-announced if overdue again", func(t *testing.T) {
		lister := &stubOverdueLister{overdue: []domain.BorrowRequest{overdueRequest("req-1")}}

		bus := event.NewMemoryBus()
		var published []event.Event
		bus.Subscribe(event.BorrowOverdue, func(ctx context.Context, evt event.Event) error {
			published = append(published, evt)
			return nil
		})

		sweep := NewOverdueSweep(lister, bus)
		require.NoError(t, sweep.Process(context.Background()))
		assert.Len(t, published, 1)

		// Loan returned: drops out of the overdue set, flag is freed
		lister.overdue = nil
		require.NoError(t, sweep.Process(context.Background()))

		lister.overdue = []domain.BorrowRequest{overdueRequest("req-1")}
		require.NoError(t, sweep.Process(context.Background()))
		assert.Len(t, published, 2)
	})

	t.Run("payload carries loan identifiers", func(t *testing.T) {
		lister := &stubOverdueLister{overdue: []domain.BorrowRequest{overdueRequest("req-9")}}

		bus := event.NewMemoryBus()
		var got event.Event
		bus.Subscribe(event.BorrowOverdue, func(ctx context.Context, evt event.Event) error {
			got = evt
			return nil
		})

		sweep := NewOverdueSweep(lister, bus)
		require.NoError(t, sweep.Process(context.Background()))

		payload, ok := got.Payload.(domain.BorrowOverduePayload)
		require.True(t, ok)
		assert.Equal(t, "req-9", payload.RequestID)
		assert.Equal(t, "item-1", payload.ItemID)
		assert.Equal(t, "user-1", payload.BorrowerID)
		assert.NotZero(t, payload.DueDate)
	})

	t.Run("repository failure surfaces as error", func(t *testing.T) {
		lister := &stubOverdueLister{err: assert.AnError}

		sweep := NewOverdueSweep(lister, nil)
		assert.Error(t, sweep.Process(context.Background()))
	})
}
