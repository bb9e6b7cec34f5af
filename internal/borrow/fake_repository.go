package borrow

import (
	"context"
	"fmt"
	"time"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of repository.Borrow
// plus the item lookup slice the service needs, for integration-style unit
// tests.
type FakeRepository struct {
	requests map[string]*domain.BorrowRequest
	items    map[string]*domain.Item
	seq      int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		requests: make(map[string]*domain.BorrowRequest),
		items:    make(map[string]*domain.Item),
	}
}

// AddItem seeds an item the borrow engine can operate against
func (f *FakeRepository) AddItem(it domain.Item) {
	f.items[it.ID] = &it
}

// Item returns the current state of a seeded item
func (f *FakeRepository) Item(itemID string) domain.Item {
	return *f.items[itemID]
}

func (f *FakeRepository) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	if it, ok := f.items[itemID]; ok {
		copied := *it
		return &copied, nil
	}
	return nil, domain.ErrItemNotFound
}

func (f *FakeRepository) GetRequestByID(ctx context.Context, requestID string) (*domain.BorrowRequest, error) {
	if r, ok := f.requests[requestID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, domain.ErrRequestNotFound
}

func (f *FakeRepository) ListRequestsByBorrower(ctx context.Context, borrowerID string) ([]domain.BorrowRequest, error) {
	var out []domain.BorrowRequest
	for _, r := range f.requests {
		if r.BorrowerID == borrowerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *FakeRepository) ListRequestsByItemOwner(ctx context.Context, ownerID string) ([]domain.BorrowRequest, error) {
	var out []domain.BorrowRequest
	for _, r := range f.requests {
		if it, ok := f.items[r.ItemID]; ok && it.OwnerID == ownerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *FakeRepository) ListAllRequests(ctx context.Context) ([]domain.BorrowRequest, error) {
	var out []domain.BorrowRequest
	for _, r := range f.requests {
		out = append(out, *r)
	}
	return out, nil
}

func (f *FakeRepository) ListOverdueRequests(ctx context.Context, asOf time.Time) ([]domain.BorrowRequest, error) {
	var out []domain.BorrowRequest
	for _, r := range f.requests {
		if r.Status == domain.BorrowStatusApproved && r.DueDate != nil && r.DueDate.Before(asOf) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.BorrowTx, error) {
	return &fakeBorrowTx{repo: f}, nil
}

// fakeBorrowTx applies writes directly; Commit and Rollback are no-ops.
type fakeBorrowTx struct {
	repo *FakeRepository
}

func (t *fakeBorrowTx) Commit(ctx context.Context) error   { return nil }
func (t *fakeBorrowTx) Rollback(ctx context.Context) error { return nil }

func (t *fakeBorrowTx) HasActiveRequest(ctx context.Context, borrowerID, itemID string) (bool, error) {
	for _, r := range t.repo.requests {
		if r.BorrowerID == borrowerID && r.ItemID == itemID && r.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (t *fakeBorrowTx) InsertRequest(ctx context.Context, request *domain.BorrowRequest) error {
	// Mirror the partial unique index on active requests
	active, _ := t.HasActiveRequest(ctx, request.BorrowerID, request.ItemID)
	if active {
		return domain.ErrActiveRequestExists
	}
	if request.ID == "" {
		t.repo.seq++
		request.ID = fmt.Sprintf("request-%d", t.repo.seq)
	}
	request.CreatedAt = time.Now()
	stored := *request
	t.repo.requests[request.ID] = &stored
	return nil
}

func (t *fakeBorrowTx) GetRequestForUpdate(ctx context.Context, requestID string) (*domain.BorrowRequest, error) {
	return t.repo.GetRequestByID(ctx, requestID)
}

func (t *fakeBorrowTx) UpdateRequest(ctx context.Context, request *domain.BorrowRequest) error {
	if _, ok := t.repo.requests[request.ID]; !ok {
		return domain.ErrRequestNotFound
	}
	stored := *request
	t.repo.requests[request.ID] = &stored
	return nil
}

func (t *fakeBorrowTx) GetItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error) {
	return t.repo.GetItemByID(ctx, itemID)
}

func (t *fakeBorrowTx) UpdateItemStatus(ctx context.Context, itemID, status string, conditionScore *int) error {
	it, ok := t.repo.items[itemID]
	if !ok {
		return domain.ErrItemNotFound
	}
	it.Status = status
	if conditionScore != nil {
		score := *conditionScore
		it.ConditionScore = &score
	}
	return nil
}
