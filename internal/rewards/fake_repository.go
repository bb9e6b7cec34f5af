package rewards

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/repository"
)

// FakeRepository is a stateful in-memory implementation of repository.Rewards
// for integration-style unit tests.
type FakeRepository struct {
	points       map[string]*domain.UserPoints
	transactions []domain.PointTransaction
	seq          int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{points: make(map[string]*domain.UserPoints)}
}

func (f *FakeRepository) GetUserPoints(ctx context.Context, userID string) (*domain.UserPoints, error) {
	if p, ok := f.points[userID]; ok {
		copied := *p
		return &copied, nil
	}
	// No credits yet reads as a zero balance
	return &domain.UserPoints{UserID: userID}, nil
}

func (f *FakeRepository) ListTransactions(ctx context.Context, userID string) ([]domain.PointTransaction, error) {
	var out []domain.PointTransaction
	for _, txn := range f.transactions {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *FakeRepository) BeginTx(ctx context.Context) (repository.RewardsTx, error) {
	return &fakeRewardsTx{repo: f}, nil
}

type fakeRewardsTx struct {
	repo *FakeRepository
}

func (t *fakeRewardsTx) Commit(ctx context.Context) error   { return nil }
func (t *fakeRewardsTx) Rollback(ctx context.Context) error { return nil }

func (t *fakeRewardsTx) InsertPointTransaction(ctx context.Context, txn *domain.PointTransaction) error {
	if txn.ID == "" {
		t.repo.seq++
		txn.ID = fmt.Sprintf("txn-%d", t.repo.seq)
	}
	txn.CreatedAt = time.Now().Add(time.Duration(t.repo.seq) * time.Microsecond)
	t.repo.transactions = append(t.repo.transactions, *txn)
	return nil
}

func (t *fakeRewardsTx) AddPoints(ctx context.Context, userID string, delta int) (*domain.UserPoints, error) {
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
