package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
	"github.com/shareshelf/shareshelf/internal/logger"
)

// OverdueLister is the slice of the borrow repository the sweep needs
type OverdueLister interface {
	ListOverdueRequests(ctx context.Context, asOf time.Time) ([]domain.BorrowRequest, error)
}

// OverdueSweep scans for approved loans past their due date and publishes a
// borrow.overdue event for each, once per loan. It implements Job so the
// scheduler can run it at a fixed interval through the pool.
type OverdueSweep struct {
	repo OverdueLister
	bus  event.Bus

	mu      sync.Mutex
	flagged map[string]struct{}
}

// NewOverdueSweep creates a new overdue loan sweep
func NewOverdueSweep(repo OverdueLister, bus event.Bus) *OverdueSweep {
	return &OverdueSweep{
		repo:    repo,
		bus:     bus,
		flagged: make(map[string]struct{}),
	}
}

// Process runs one sweep. A loan stays flagged across sweeps so it is only
// announced once; returning the item drops it from the overdue set and frees
// the flag.
func (s *OverdueSweep) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgOverdueSweepStarting)

	overdue, err := s.repo.ListOverdueRequests(ctx, time.Now())
	if err != nil {
		log.Error(LogMsgOverdueSweepFailed, "error", err)
		return fmt.Errorf("failed to list overdue loans: %w", err)
	}

	s.mu.Lock()
	stillFlagged := make(map[string]struct{}, len(overdue))
	var fresh []domain.BorrowRequest
	for _, request := range overdue {
		stillFlagged[request.ID] = struct{}{}
		if _, seen := s.flagged[request.ID]; !seen {
			fresh = append(fresh, request)
		}
	}
	s.flagged = stillFlagged
	s.mu.Unlock()

	for i := range fresh {
		request := fresh[i]
		log.Warn(LogMsgLoanOverdue,
			"request_id", request.ID,
			"item_id", request.ItemID,
			"borrower_id", request.BorrowerID,
			"due_date", request.DueDate)

		if s.bus != nil {
			if err := s.bus.Publish(ctx, event.NewBorrowOverdueEvent(&request)); err != nil {
				log.Warn("Failed to publish event", "error", err, "type", event.BorrowOverdue)
			}
		}
	}

	log.Debug(LogMsgOverdueSweepComplete, "overdue", len(overdue), "newly_flagged", len(fresh))
	return nil
}
