package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareshelf/shareshelf/internal/domain"
)

func TestRewardsRepository_ZeroBalanceForNewUser(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewRewardsRepository(testPool)

	user := createTestUser(t, domain.RoleCustomer)

	points, err := repo.GetUserPoints(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, points.UserID)
	assert.Zero(t, points.TotalPoints)

	transactions, err := repo.ListTransactions(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestRewardsTx_CreditAccumulates(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewRewardsRepository(testPool)

	user := createTestUser(t, domain.RoleCustomer)

	credit := func(points int, action string) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		require.NoError(t, tx.InsertPointTransaction(ctx, &domain.PointTransaction{
			UserID:      user.ID,
			Points:      points,
			Action:      action,
			Description: "integration credit",
		}))
		_, err = tx.AddPoints(ctx, user.ID, points)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))
	}

	credit(10, domain.ActionItemApproved)
	credit(5, domain.ActionItemReturned)

	points, err := repo.GetUserPoints(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, points.TotalPoints)

	transactions, err := repo.ListTransactions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	// Newest first
	assert.Equal(t, domain.ActionItemReturned, transactions[0].Action)
	assert.Equal(t, 5, transactions[0].Points)
	assert.Equal(t, domain.ActionItemApproved, transactions[1].Action)
}

func TestRewardsTx_RollbackLeavesBalanceUntouched(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewRewardsRepository(testPool)

	user := createTestUser(t, domain.RoleCustomer)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.AddPoints(ctx, user.ID, 100)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	points, err := repo.GetUserPoints(ctx, user.ID)
	require.NoError(t, err)
	assert.Zero(t, points.TotalPoints)
}
