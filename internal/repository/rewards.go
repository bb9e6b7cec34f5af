package repository

import (
	"context"

	"github.com/shareshelf/shareshelf/internal/domain"
)

// Rewards defines the interface for the points ledger
type Rewards interface {
	GetUserPoints(ctx context.Context, userID string) (*domain.UserPoints, error)
	ListTransactions(ctx context.Context, userID string) ([]domain.PointTransaction, error)

	BeginTx(ctx context.Context) (RewardsTx, error)
}

// RewardsTx defines the interface for ledger transactions: an append plus
// the matching balance increment commit or roll back together.
type RewardsTx interface {
	Tx
	InsertPointTransaction(ctx context.Context, txn *domain.PointTransaction) error
	AddPoints(ctx context.Context, userID string, delta int) (*domain.UserPoints, error)
}
