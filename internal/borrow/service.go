package borrow

import (
	"context"
	"fmt"
	"time"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/policy"
	"github.com/shareshelf/shareshelf/internal/repository"
)

// DefaultBorrowPeriod is how long an approved borrow lasts before it is due
const DefaultBorrowPeriod = 7 * 24 * time.Hour

// ItemGetter is the slice of the item repository the borrow engine needs
type ItemGetter interface {
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)
}

// Service defines the interface for borrow lifecycle operations
type Service interface {
	Request(ctx context.Context, actor *domain.User, itemID string) (*domain.BorrowRequest, error)
	Approve(ctx context.Context, actor *domain.User, requestID string) (*domain.BorrowRequest, error)
	Deny(ctx context.Context, actor *domain.User, requestID string) (*domain.BorrowRequest, error)
	Return(ctx context.Context, actor *domain.User, requestID string) (*domain.BorrowRequest, error)

	Get(ctx context.Context, actor *domain.User, requestID string) (*domain.BorrowRequest, error)
	List(ctx context.Context, actor *domain.User) ([]domain.BorrowRequest, error)
}

// service implements the Service interface
type service struct {
	repo         repository.Borrow
	items        ItemGetter
	bus          event.Bus
	borrowPeriod time.Duration
}

// NewService creates a new borrow lifecycle service
func NewService(repo repository.Borrow, items ItemGetter, bus event.Bus, borrowPeriod time.Duration) Service {
	if borrowPeriod <= 0 {
		borrowPeriod = DefaultBorrowPeriod
	}
	return &service{repo: repo, items: items, bus: bus, borrowPeriod: borrowPeriod}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "error", err, "type", evt.Type)
	}
}

// Request opens a PENDING borrow request for an item. At most one active
// request per (borrower, item); the in-transaction check and the partial
// unique index both guard the race.
func (s *service) Request(ctx context.Context, actor *domain.User, itemID string) (*domain.BorrowRequest, error) {
	log := logger.FromContext(ctx)
	log.Info("Request called", "item_id", itemID)

	if !policy.IsCustomer(actor) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.items.GetItemByID(ctx, itemID); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	active, err := tx.HasActiveRequest(ctx, actor.ID, itemID)
	if err != nil {
		log.Error("Failed to check for active request", "error", err, "item_id", itemID)
		return nil, fmt.Errorf("failed to check for active request: %w", err)
	}
	if active {
		log.Warn("Active request already exists", "item_id", itemID, "borrower_id", actor.ID)
		return nil, domain.ErrActiveRequestExists
	}

	request := &domain.BorrowRequest{
		ItemID:     itemID,
		BorrowerID: actor.ID,
		Status:     domain.BorrowStatusPending,
	}
	if err := tx.InsertRequest(ctx, request); err != nil {
		log.Warn("Failed to insert request", "error", err, "item_id", itemID)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, event.NewBorrowLifecycleEvent(event.BorrowRequested, request, actor.ID))

	log.Info("Borrow request created", "request_id", request.ID, "item_id", itemID, "borrower_id", actor.ID)
	return request, nil
}

// Approve grants a pending request. Owner only; sets the due date and
// reserves the item, all in one transaction with the request row locked.
func (s *service) Approve(ctx context.Context, actor *domain.User, requestID string) (*domain.BorrowRequest, error) {
	log := logger.FromContext(ctx)
	log.Info("Approve called", "request_id", requestID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	request, it, err := s.lockRequestAsOwner(ctx, tx, actor, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.BorrowStatusPending {
		log.Warn("Request already processed", "request_id", requestID, "status", request.Status)
		return nil, domain.ErrRequestAlreadyProcessed
	}

	due := time.Now().Add(s.borrowPeriod)
	request.Status = domain.BorrowStatusApproved
	request.DueDate = &due

	if err := tx.UpdateRequest(ctx, request); err != nil {
		log.Error("Failed to update request", "error", err, "request_id", requestID)
		return nil, fmt.Errorf("failed to update request: %w", err)
	}
	if err := tx.UpdateItemStatus(ctx, it.ID, domain.ItemStatusReserved, nil); err != nil {
		log.Error("Failed to reserve item", "error", err, "item_id", it.ID)
		return nil, fmt.Errorf("failed to reserve item: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, event.NewBorrowLifecycleEvent(event.BorrowApproved, request, actor.ID))

	log.Info("Borrow request approved", "request_id", requestID, "due_date", due)
	return request, nil
}

// Deny declines a pending request. Owner only; the item is untouched.
func (s *service) Deny(ctx context.Context, actor *domain.User, requestID string) (*domain.BorrowRequest, error) {
	log := logger.FromContext(ctx)
	log.Info("Deny called", "request_id", requestID)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	request, _, err := s.lockRequestAsOwner(ctx, tx, actor, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.BorrowStatusPending {
		log.Warn("Request already processed", "request_id", requestID, "status", request.Status)
		return nil, domain.ErrRequestAlreadyProcessed
	}

	request.Status = domain.BorrowStatusDenied
	if err := tx.UpdateRequest(ctx, request); err != nil {
		log.Error("Failed to update request", "error", err, "request_id", requestID)
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, event.NewBorrowLifecycleEvent(event.BorrowDenied, request, actor.ID))

	log.Info("Borrow request denied", "request_id", requestID)
	return request, nil
}

// Return closes out an approved loan. Borrower only; stamps the return date
// and marks the item RETURNED.
func (s *service) Return(ctx context.Context, actor *domain.User, requestID string) (*domain.BorrowRequest, error) {
	log := logger.FromContext(ctx)
	log.Info("Return called", "request_id", requestID)

	if actor == nil {
		return nil, domain.ErrUnauthorized
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	request, err := tx.GetRequestForUpdate(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.BorrowerID != actor.ID {
		log.Warn("Return attempted by non-borrower", "request_id", requestID, "actor_id", actor.ID)
		return nil, domain.ErrNotBorrower
	}
	if request.Status != domain.BorrowStatusApproved {
		log.Warn("Request is not an active loan", "request_id", requestID, "status", request.Status)
		return nil, domain.ErrRequestNotBorrowed
	}

	now := time.Now()
	request.Status = domain.BorrowStatusReturned
	request.ReturnDate = &now

	if err := tx.UpdateRequest(ctx, request); err != nil {
		log.Error("Failed to update request", "error", err, "request_id", requestID)
		return nil, fmt.Errorf("failed to update request: %w", err)
	}
	if err := tx.UpdateItemStatus(ctx, request.ItemID, domain.ItemStatusReturned, nil); err != nil {
		log.Error("Failed to mark item returned", "error", err, "item_id", request.ItemID)
		return nil, fmt.Errorf("failed to mark item returned: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.publish(ctx, event.NewBorrowLifecycleEvent(event.BorrowReturned, request, actor.ID))

	log.Info("Borrow request returned", "request_id", requestID)
	return request, nil
}

// Get returns one request, visible to its borrower, the item's owner, and staff
func (s *service) Get(ctx context.Context, actor *domain.User, requestID string) (*domain.BorrowRequest, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}

	request, err := s.repo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if policy.IsStaff(actor) || request.BorrowerID == actor.ID {
		return request, nil
	}

	it, err := s.items.GetItemByID(ctx, request.ItemID)
	if err != nil {
		return nil, err
	}
	if !policy.IsOwner(actor, it.OwnerID) {
		return nil, domain.ErrRequestNotFound
	}
	return request, nil
}

// List returns the requests visible to the actor: their own as borrower,
// those on their items as owner, everything for staff.
func (s *service) List(ctx context.Context, actor *domain.User) ([]domain.BorrowRequest, error) {
	log := logger.FromContext(ctx)

	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if policy.IsStaff(actor) {
		return s.repo.ListAllRequests(ctx)
	}

	asBorrower, err := s.repo.ListRequestsByBorrower(ctx, actor.ID)
	if err != nil {
		log.Error("Failed to list requests by borrower", "error", err, "user_id", actor.ID)
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	asOwner, err := s.repo.ListRequestsByItemOwner(ctx, actor.ID)
	if err != nil {
		log.Error("Failed to list requests by item owner", "error", err, "user_id", actor.ID)
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	seen := make(map[string]bool, len(asBorrower))
	for _, r := range asBorrower {
		seen[r.ID] = true
	}
	for _, r := range asOwner {
		if !seen[r.ID] {
			asBorrower = append(asBorrower, r)
		}
	}

	return asBorrower, nil
}

// lockRequestAsOwner locks the request and its item and verifies the actor
// owns the item.
func (s *service) lockRequestAsOwner(ctx context.Context, tx repository.BorrowTx, actor *domain.User, requestID string) (*domain.BorrowRequest, *domain.Item, error) {
	if actor == nil {
		return nil, nil, domain.ErrUnauthorized
	}

	request, err := tx.GetRequestForUpdate(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	it, err := tx.GetItemForUpdate(ctx, request.ItemID)
	if err != nil {
		return nil, nil, err
	}
	if !policy.IsOwner(actor, it.OwnerID) {
		logger.FromContext(ctx).Warn("Actor does not own the requested item", "request_id", requestID, "actor_id", actor.ID)
		return nil, nil, domain.ErrNotItemOwner
	}

	return request, it, nil
}
