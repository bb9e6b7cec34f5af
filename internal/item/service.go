package item

import (
	"context"
	"fmt"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/policy"
	"github.com/shareshelf/shareshelf/internal/repository"
)

// SubmitInput carries the fields accepted when listing a new item
type SubmitInput struct {
	Name          string
	Category      string
	Description   string
	OwnershipType string
}

// UpdateInput replaces the owner-editable fields of an item
type UpdateInput struct {
	Name          string
	Category      string
	Description   string
	OwnershipType string
}

// ListFilter narrows item listings from the read path
type ListFilter struct {
	Category string
	Status   string
}

// Detail is the full read model for a single item. Report and Rating are
// populated only for the owner and staff.
type Detail struct {
	Item   domain.Item              `json:"item"`
	Report *domain.InspectionReport `json:"inspection_report,omitempty"`
	Rating *domain.Rating           `json:"rating,omitempty"`
}

// Service defines the interface for item lifecycle operations
type Service interface {
	Submit(ctx context.Context, actor *domain.User, input SubmitInput) (*domain.Item, error)
	Inspect(ctx context.Context, actor *domain.User, itemID string, rating int, notes string) (*domain.Item, error)
	Approve(ctx context.Context, actor *domain.User, itemID string, stars *int, comment string) (*domain.Item, error)
	Reject(ctx context.Context, actor *domain.User, itemID string, comment string) (*domain.Item, error)
	SetStatus(ctx context.Context, actor *domain.User, itemID, status string) (*domain.Item, error)

	Get(ctx context.Context, actor *domain.User, itemID string) (*Detail, error)
	List(ctx context.Context, actor *domain.User, filter ListFilter) ([]domain.Item, error)
	ListPending(ctx context.Context, actor *domain.User) ([]domain.Item, error)

	Update(ctx context.Context, actor *domain.User, itemID string, input UpdateInput) (*domain.Item, error)
	Delete(ctx context.Context, actor *domain.User, itemID string) error
}

// service implements the Service interface
type service struct {
	repo repository.Item
	bus  event.Bus
}

// NewService creates a new item lifecycle service
func NewService(repo repository.Item, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

// publish sends a lifecycle event best-effort; a failing subscriber never
// fails the operation that triggered it.
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish event", "error", err, "type", evt.Type)
	}
}

// Submit lists a new item for verification
func (s *service) Submit(ctx context.Context, actor *domain.User, input SubmitInput) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info("Submit called", "name", input.Name, "ownership_type", input.OwnershipType)

	if !policy.IsCustomer(actor) {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !domain.IsValidOwnershipType(input.OwnershipType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidOwnershipType, input.OwnershipType)
	}

	it := &domain.Item{
		OwnerID:       actor.ID,
		Name:          input.Name,
		Category:      input.Category,
		Description:   input.Description,
		OwnershipType: input.OwnershipType,
		Status:        domain.ItemStatusPendingVerification,
	}

	if err := s.repo.InsertItem(ctx, it); err != nil {
		log.Error("Failed to insert item", "error", err, "owner_id", actor.ID)
		return nil, fmt.Errorf("failed to insert item: %w", err)
	}

	s.publish(ctx, event.NewItemLifecycleEvent(event.ItemSubmitted, it, actor.ID))

	log.Info("Item submitted", "item_id", it.ID, "owner_id", it.OwnerID)
	return it, nil
}

// Inspect files the one-per-item inspection report and resolves the item to
// APPROVED or REJECTED based on the condition rating.
func (s *service) Inspect(ctx context.Context, actor *domain.User, itemID string, rating int, notes string) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info("Inspect called", "item_id", itemID, "rating", rating)

	if !policy.IsStaff(actor) {
		return nil, domain.ErrForbidden
	}
	if rating < domain.MinConditionRating || rating > domain.MaxConditionRating {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidRating, rating)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	it, err := s.lockPendingItem(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}

	report := &domain.InspectionReport{
		ItemID:          itemID,
		StaffID:         actor.ID,
		ConditionRating: rating,
		Notes:           notes,
	}
	if err := tx.InsertInspectionReport(ctx, report); err != nil {
		log.Warn("Failed to insert inspection report", "error", err, "item_id", itemID)
		return nil, err
	}

	// The rating decides the outcome: condition_score is recorded only on
	// approval.
	newStatus := domain.ItemStatusRejected
	var conditionScore *int
	if rating >= domain.MinApprovalRating {
		newStatus = domain.ItemStatusApproved
		conditionScore = &rating
	}

	if err := tx.UpdateItemStatus(ctx, itemID, newStatus, conditionScore); err != nil {
		log.Error("Failed to update item status", "error", err, "item_id", itemID)
		return nil, fmt.Errorf("failed to update item status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	it.Status = newStatus
	it.ConditionScore = conditionScore
	s.publish(ctx, event.NewItemLifecycleEvent(event.ItemInspected, it, actor.ID))

	log.Info("Item inspected", "item_id", itemID, "status", newStatus, "rating", rating)
	return it, nil
}

// Approve transitions a pending item to APPROVED and credits the owner's
// reward points in the same transaction. An optional star rating is recorded
// but never changes the outcome.
func (s *service) Approve(ctx context.Context, actor *domain.User, itemID string, stars *int, comment string) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info("Approve called", "item_id", itemID)

	if !policy.IsStaff(actor) {
		return nil, domain.ErrForbidden
	}
	if stars != nil && (*stars < domain.MinStars || *stars > domain.MaxStars) {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidStars, *stars)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	it, err := s.lockPendingItem(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}

	if stars != nil {
		rating := &domain.Rating{
			ItemID:  itemID,
			StaffID: actor.ID,
			Stars:   *stars,
			Comment: comment,
		}
		if err := tx.UpsertRating(ctx, rating); err != nil {
			log.Error("Failed to upsert rating", "error", err, "item_id", itemID)
			return nil, fmt.Errorf("failed to upsert rating: %w", err)
		}
	}

	if err := tx.UpdateItemStatus(ctx, itemID, domain.ItemStatusApproved, nil); err != nil {
		log.Error("Failed to update item status", "error", err, "item_id", itemID)
		return nil, fmt.Errorf("failed to update item status: %w", err)
	}

	// Credit the owner inside the approval transaction so the ledger and the
	// status transition land together or not at all.
	txn := &domain.PointTransaction{
		UserID:      it.OwnerID,
		Points:      domain.PointsItemApproved,
		Action:      domain.ActionItemApproved,
		ItemID:      &itemID,
		Description: fmt.Sprintf("Item %q approved", it.Name),
	}
	if err := tx.InsertPointTransaction(ctx, txn); err != nil {
		log.Error("Failed to insert point transaction", "error", err, "user_id", it.OwnerID)
		return nil, fmt.Errorf("failed to insert point transaction: %w", err)
	}
	if _, err := tx.AddPoints(ctx, it.OwnerID, domain.PointsItemApproved); err != nil {
		log.Error("Failed to add points", "error", err, "user_id", it.OwnerID)
		return nil, fmt.Errorf("failed to add points: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	it.Status = domain.ItemStatusApproved
	s.publish(ctx, event.NewItemLifecycleEvent(event.ItemApproved, it, actor.ID))
	s.publish(ctx, event.NewPointsCreditedEvent(txn))

	log.Info("Item approved", "item_id", itemID, "owner_id", it.OwnerID, "points", domain.PointsItemApproved)
	return it, nil
}

// Reject transitions a pending item to REJECTED, recording a zero-star rating
// with the staff comment.
func (s *service) Reject(ctx context.Context, actor *domain.User, itemID string, comment string) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info("Reject called", "item_id", itemID)

	if !policy.IsStaff(actor) {
		return nil, domain.ErrForbidden
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	it, err := s.lockPendingItem(ctx, tx, itemID)
	if err != nil {
		return nil, err
	}

	rating := &domain.Rating{
		ItemID:  itemID,
		StaffID: actor.ID,
		Stars:   domain.MinStars,
		Comment: "REJECTED: " + comment,
	}
	if err := tx.UpsertRating(ctx, rating); err != nil {
		log.Error("Failed to upsert rating", "error", err, "item_id", itemID)
		return nil, fmt.Errorf("failed to upsert rating: %w", err)
	}

	if err := tx.UpdateItemStatus(ctx, itemID, domain.ItemStatusRejected, nil); err != nil {
		log.Error("Failed to update item status", "error", err, "item_id", itemID)
		return nil, fmt.Errorf("failed to update item status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	it.Status = domain.ItemStatusRejected
	s.publish(ctx, event.NewItemLifecycleEvent(event.ItemRejected, it, actor.ID))

	log.Info("Item rejected", "item_id", itemID)
	return it, nil
}

// SetStatus is the staff override: any known status, no transition checks.
func (s *service) SetStatus(ctx context.Context, actor *domain.User, itemID, status string) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info("SetStatus called", "item_id", itemID, "status", status)

	if !policy.IsStaff(actor) {
		return nil, domain.ErrForbidden
	}
	if !domain.IsValidItemStatus(status) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, status)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	it, err := tx.GetItemForUpdate(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := tx.UpdateItemStatus(ctx, itemID, status, nil); err != nil {
		log.Error("Failed to update item status", "error", err, "item_id", itemID)
		return nil, fmt.Errorf("failed to update item status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	it.Status = status
	log.Info("Item status overridden", "item_id", itemID, "status", status)
	return it, nil
}

// Get returns the item detail, honoring the visibility rule. The inspection
// report and rating are attached for the owner and staff only.
func (s *service) Get(ctx context.Context, actor *domain.User, itemID string) (*Detail, error) {
	it, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewItem(actor, it) {
		// Hidden items are indistinguishable from absent ones.
		return nil, domain.ErrItemNotFound
	}

	detail := &Detail{Item: *it}

	if policy.IsStaff(actor) || policy.IsOwner(actor, it.OwnerID) {
		report, err := s.repo.GetInspectionReport(ctx, itemID)
		if err != nil {
			return nil, err
		}
		rating, err := s.repo.GetRating(ctx, itemID)
		if err != nil {
			return nil, err
		}
		detail.Report = report
		detail.Rating = rating
	}

	return detail, nil
}

// List returns items visible to the actor: approved items for everyone, the
// actor's own items regardless of status, everything for staff.
func (s *service) List(ctx context.Context, actor *domain.User, filter ListFilter) ([]domain.Item, error) {
	log := logger.FromContext(ctx)

	if policy.IsStaff(actor) {
		return s.repo.ListItems(ctx, repository.ItemFilter{
			Status:   filter.Status,
			Category: filter.Category,
		})
	}

	approved, err := s.repo.ListItems(ctx, repository.ItemFilter{
		Status:   domain.ItemStatusApproved,
		Category: filter.Category,
	})
	if err != nil {
		log.Error("Failed to list items", "error", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	if actor == nil {
		return approved, nil
	}

	own, err := s.repo.ListItems(ctx, repository.ItemFilter{
		OwnerID:  actor.ID,
		Category: filter.Category,
	})
	if err != nil {
		log.Error("Failed to list own items", "error", err, "owner_id", actor.ID)
		return nil, fmt.Errorf("failed to list own items: %w", err)
	}

	// Own approved items are in both sets; keep each item once.
	seen := make(map[string]bool, len(approved))
	for _, it := range approved {
		seen[it.ID] = true
	}
	for _, it := range own {
		if !seen[it.ID] {
			approved = append(approved, it)
		}
	}

	return approved, nil
}

// ListPending returns the staff verification queue
func (s *service) ListPending(ctx context.Context, actor *domain.User) ([]domain.Item, error) {
	if !policy.IsStaff(actor) {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListItems(ctx, repository.ItemFilter{Status: domain.ItemStatusPendingVerification})
}

// Update replaces the owner-editable fields of an item
func (s *service) Update(ctx context.Context, actor *domain.User, itemID string, input UpdateInput) (*domain.Item, error) {
	log := logger.FromContext(ctx)
	log.Info("Update called", "item_id", itemID)

	it, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !policy.IsOwner(actor, it.OwnerID) {
		return nil, domain.ErrNotItemOwner
	}
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !domain.IsValidOwnershipType(input.OwnershipType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidOwnershipType, input.OwnershipType)
	}

	it.Name = input.Name
	it.Category = input.Category
	it.Description = input.Description
	it.OwnershipType = input.OwnershipType

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		log.Error("Failed to update item", "error", err, "item_id", itemID)
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	log.Info("Item updated", "item_id", itemID)
	return it, nil
}

// Delete removes an item. Owner only.
func (s *service) Delete(ctx context.Context, actor *domain.User, itemID string) error {
	log := logger.FromContext(ctx)
	log.Info("Delete called", "item_id", itemID)

	it, err := s.repo.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if !policy.IsOwner(actor, it.OwnerID) {
		return domain.ErrNotItemOwner
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		log.Error("Failed to delete item", "error", err, "item_id", itemID)
		return fmt.Errorf("failed to delete item: %w", err)
	}

	log.Info("Item deleted", "item_id", itemID)
	return nil
}

// lockPendingItem fetches the item under FOR UPDATE and verifies it is still
// awaiting verification. Absent items and items past verification both report
// ErrItemNotFound.
func (s *service) lockPendingItem(ctx context.Context, tx repository.ItemTx, itemID string) (*domain.Item, error) {
	it, err := tx.GetItemForUpdate(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if it.Status != domain.ItemStatusPendingVerification {
		logger.FromContext(ctx).Warn("Item not awaiting verification", "item_id", itemID, "status", it.Status)
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemID)
	}
	return it, nil
}
