package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/repository"
)

func TestItemRepository_InsertAndList(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewItemRepository(testPool)

	owner := createTestUser(t, domain.RoleCustomer)
	item := createTestItem(t, owner.ID, domain.ItemStatusPendingVerification)

	got, err := repo.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, domain.ItemStatusPendingVerification, got.Status)
	assert.Nil(t, got.ConditionScore)

	listed, err := repo.ListItems(ctx, repository.ItemFilter{OwnerID: owner.ID})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, item.ID, listed[0].ID)

	listed, err = repo.ListItems(ctx, repository.ItemFilter{
		OwnerID: owner.ID,
		Status:  domain.ItemStatusApproved,
	})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestItemRepository_UpdateAndDelete(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewItemRepository(testPool)

	owner := createTestUser(t, domain.RoleCustomer)
	item := createTestItem(t, owner.ID, domain.ItemStatusPendingVerification)

	item.Name = "renamed item"
	item.Category = "games"
	require.NoError(t, repo.UpdateItem(ctx, item))

	got, err := repo.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed item", got.Name)
	assert.Equal(t, "games", got.Category)

	require.NoError(t, repo.DeleteItem(ctx, item.ID))
	_, err = repo.GetItemByID(ctx, item.ID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	assert.ErrorIs(t, repo.DeleteItem(ctx, item.ID), domain.ErrItemNotFound)
}

// TestItemTx_ApprovalFlow exercises the full transactional approval: lock the
// row, record the inspection, flip the status, rate the item and credit the
// owner, all atomically.
func TestItemTx_ApprovalFlow(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewItemRepository(testPool)
	rewardsRepo := NewRewardsRepository(testPool)

	owner := createTestUser(t, domain.RoleCustomer)
	staff := createTestUser(t, domain.RoleStaff)
	item := createTestItem(t, owner.ID, domain.ItemStatusPendingVerification)

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	locked, err := tx.GetItemForUpdate(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusPendingVerification, locked.Status)

	report := &domain.InspectionReport{
		ItemID:          item.ID,
		StaffID:         staff.ID,
		ConditionRating: 4,
		Notes:           "minor wear",
	}
	require.NoError(t, tx.InsertInspectionReport(ctx, report))
	assert.False(t, report.InspectedAt.IsZero())

	score := 4
	require.NoError(t, tx.UpdateItemStatus(ctx, item.ID, domain.ItemStatusApproved, &score))

	require.NoError(t, tx.UpsertRating(ctx, &domain.Rating{
		ItemID:  item.ID,
		StaffID: staff.ID,
		Stars:   4,
		Comment: "solid",
	}))

	require.NoError(t, tx.InsertPointTransaction(ctx, &domain.PointTransaction{
		UserID: owner.ID,
		Points: domain.PointsItemApproved,
		Action: domain.ActionItemApproved,
		ItemID: &item.ID,
	}))
	points, err := tx.AddPoints(ctx, owner.ID, domain.PointsItemApproved)
	require.NoError(t, err)
	assert.Equal(t, domain.PointsItemApproved, points.TotalPoints)

	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusApproved, got.Status)
	require.NotNil(t, got.ConditionScore)
	assert.Equal(t, 4, *got.ConditionScore)

	storedReport, err := repo.GetInspectionReport(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, storedReport)
	assert.Equal(t, staff.ID, storedReport.StaffID)

	rating, err := repo.GetRating(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, rating)
	assert.Equal(t, 4, rating.Stars)

	balance, err := rewardsRepo.GetUserPoints(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PointsItemApproved, balance.TotalPoints)
}

func TestItemTx_DuplicateInspection(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewItemRepository(testPool)

	owner := createTestUser(t, domain.RoleCustomer)
	staff := createTestUser(t, domain.RoleStaff)
	item := createTestItem(t, owner.ID, domain.ItemStatusPendingVerification)

	insert := func() error {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer tx.Rollback(ctx)

		if err := tx.InsertInspectionReport(ctx, &domain.InspectionReport{
			ItemID:          item.ID,
			StaffID:         staff.ID,
			ConditionRating: 3,
		}); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	require.NoError(t, insert())
	assert.ErrorIs(t, insert(), domain.ErrItemAlreadyInspected)
}

func TestItemRepository_NoInspectionYet(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewItemRepository(testPool)

	owner := createTestUser(t, domain.RoleCustomer)
	item := createTestItem(t, owner.ID, domain.ItemStatusPendingVerification)

	report, err := repo.GetInspectionReport(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, report)

	rating, err := repo.GetRating(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, rating)
}
