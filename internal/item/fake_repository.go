package item

import (
	"context"
	"fmt"
	"time"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of repository.Item
// for integration-style unit tests. It also tracks reward writes so tests
// can assert the approval credit landed.
type FakeRepository struct {
	items        map[string]*domain.Item
	reports      map[string]*domain.InspectionReport // keyed by item ID
	ratings      map[string]*domain.Rating           // keyed by item ID
	points       map[string]*domain.UserPoints
	transactions []domain.PointTransaction
	seq          int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		items:   make(map[string]*domain.Item),
		reports: make(map[string]*domain.InspectionReport),
		ratings: make(map[string]*domain.Rating),
		points:  make(map[string]*domain.UserPoints),
	}
}

func (f *FakeRepository) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d", prefix, f.seq)
}

func (f *FakeRepository) InsertItem(ctx context.Context, it *domain.Item) error {
	if it.ID == "" {
		it.ID = f.nextID("item")
	}
	it.CreatedAt = time.Now()
	stored := *it
	f.items[it.ID] = &stored
	return nil
}

func (f *FakeRepository) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	if it, ok := f.items[itemID]; ok {
		copied := *it
		return &copied, nil
	}
	return nil, domain.ErrItemNotFound
}

func (f *FakeRepository) ListItems(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	var out []domain.Item
	for _, it := range f.items {
		if filter.Status != "" && it.Status != filter.Status {
			continue
		}
		if filter.OwnerID != "" && it.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		out = append(out, *it)
	}
	return out, nil
}

func (f *FakeRepository) UpdateItem(ctx context.Context, it *domain.Item) error {
	if _, ok := f.items[it.ID]; !ok {
		return domain.ErrItemNotFound
	}
	stored := *it
	f.items[it.ID] = &stored
	return nil
}

func (f *FakeRepository) DeleteItem(ctx context.Context, itemID string) error {
	if _, ok := f.items[itemID]; !ok {
		return domain.ErrItemNotFound
	}
	delete(f.items, itemID)
	return nil
}

func (f *FakeRepository) GetInspectionReport(ctx context.Context, itemID string) (*domain.InspectionReport, error) {
	if rep, ok := f.reports[itemID]; ok {
		copied := *rep
		return &copied, nil
	}
	return nil, nil
}

func (f *FakeRepository) GetRating(ctx context.Context, itemID string) (*domain.Rating, error) {
	if r, ok := f.ratings[itemID]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.ItemTx, error) {
	return &fakeItemTx{repo: f}, nil
}

// Transactions returns a copy of the appended ledger entries
func (f *FakeRepository) Transactions() []domain.PointTransaction {
	return append([]domain.PointTransaction(nil), f.transactions...)
}

// Points returns the running balance for a user (zero value if none)
func (f *FakeRepository) Points(userID string) domain.UserPoints {
	if p, ok := f.points[userID]; ok {
		return *p
	}
	return domain.UserPoints{UserID: userID}
}

// fakeItemTx applies writes directly to the repository; Commit and Rollback
// are no-ops, matching the level the service tests care about.
type fakeItemTx struct {
	repo *FakeRepository
}

func (t *fakeItemTx) Commit(ctx context.Context) error   { return nil }
func (t *fakeItemTx) Rollback(ctx context.Context) error { return nil }

func (t *fakeItemTx) GetItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error) {
	return t.repo.GetItemByID(ctx, itemID)
}

func (t *fakeItemTx) UpdateItemStatus(ctx context.Context, itemID, status string, conditionScore *int) error {
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

func (t *fakeItemTx) InsertInspectionReport(ctx context.Context, report *domain.InspectionReport) error {
	if _, exists := t.repo.reports[report.ItemID]; exists {
		return domain.ErrItemAlreadyInspected
	}
	if report.ID == "" {
		report.ID = t.repo.nextID("report")
	}
	report.InspectedAt = time.Now()
	stored := *report
	t.repo.reports[report.ItemID] = &stored
	return nil
}

func (t *fakeItemTx) UpsertRating(ctx context.Context, rating *domain.Rating) error {
	if existing, ok := t.repo.ratings[rating.ItemID]; ok {
		rating.ID = existing.ID
	} else if rating.ID == "" {
		rating.ID = t.repo.nextID("rating")
	}
	stored := *rating
	t.repo.ratings[rating.ItemID] = &stored
	return nil
}

func (t *fakeItemTx) InsertPointTransaction(ctx context.Context, txn *domain.PointTransaction) error {
	if txn.ID == "" {
		txn.ID = t.repo.nextID("txn")
	}
	txn.CreatedAt = time.Now()
	t.repo.transactions = append(t.repo.transactions, *txn)
	return nil
}

func (t *fakeItemTx) AddPoints(ctx context.Context, userID string, delta int) (*domain.UserPoints, error) {
	p, ok := t.repo.points[userID]
	if !ok {
		p = &domain.UserPoints{UserID: userID}
		t.repo.points[userID] = p
	}
	p.TotalPoints += delta
	p.UpdatedAt = time.Now()
	copied := *p
	return &copied, nil
}
