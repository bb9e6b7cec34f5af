package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/repository"
)

type rewardsRepository struct {
	db *pgxpool.Pool
}

// NewRewardsRepository creates a new PostgreSQL rewards ledger repository
func NewRewardsRepository(db *pgxpool.Pool) repository.Rewards {
	return &rewardsRepository{db: db}
}

func (r *rewardsRepository) GetUserPoints(ctx context.Context, userID string) (*domain.UserPoints, error) {
	query := `SELECT user_id, total_points, updated_at FROM user_points WHERE user_id = $1`

	var up domain.UserPoints
	err := r.db.QueryRow(ctx, query, userID).Scan(&up.UserID, &up.TotalPoints, &up.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No credits yet: a zero balance, not an error.
			return &domain.UserPoints{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get user points: %w", err)
	}
	return &up, nil
}

func (r *rewardsRepository) ListTransactions(ctx context.Context, userID string) ([]domain.PointTransaction, error) {
	query := `
		SELECT id, user_id, points, action, item_id, description, created_at
		FROM point_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list point transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.PointTransaction{}
	for rows.Next() {
		var txn domain.PointTransaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Points, &txn.Action,
			&txn.ItemID, &txn.Description, &txn.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan point transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read point transactions: %w", err)
	}
	return transactions, nil
}

func (r *rewardsRepository) BeginTx(ctx context.Context) (repository.RewardsTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &rewardsTx{tx: tx}, nil
}

type rewardsTx struct {
	tx pgx.Tx
}

func (t *rewardsTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *rewardsTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *rewardsTx) InsertPointTransaction(ctx context.Context, txn *domain.PointTransaction) error {
	return insertPointTransaction(ctx, t.tx, txn)
}

func (t *rewardsTx) AddPoints(ctx context.Context, userID string, delta int) (*domain.UserPoints, error) {
	return addPoints(ctx, t.tx, userID, delta)
}
