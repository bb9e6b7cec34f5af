package rewards

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
)

var testActor = &domain.User{ID: "user-1", Username: "alice", Role: domain.RoleCustomer}

func TestCredit(t *testing.T) {
	ctx := context.Background()

	t.Run("appends ledger entry and moves balance", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := NewService(repo, nil)

		itemID := "item-1"
		txn, err := svc.Credit(ctx, CreditInput{
			UserID:      testActor.ID,
			Points:      domain.PointsItemApproved,
			Action:      domain.ActionItemApproved,
			ItemID:      &itemID,
			Description: "Item approved",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, txn.ID)

		balance, err := svc.Balance(ctx, testActor)
		require.NoError(t, err)
		assert.Equal(t, domain.PointsItemApproved, balance.TotalPoints)
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		svc := NewService(NewFakeRepository(), nil)

		_, err := svc.Credit(ctx, CreditInput{
			UserID: testActor.ID,
			Points: 5,
			Action: "JACKPOT",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRewardAction)
	})

	t.Run("negative points redeem", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := NewService(repo, nil)

		_, err := svc.Credit(ctx, CreditInput{UserID: testActor.ID, Points: 10, Action: domain.ActionItemApproved})
		require.NoError(t, err)
		_, err = svc.Credit(ctx, CreditInput{UserID: testActor.ID, Points: -4, Action: domain.ActionRedeemed})
		require.NoError(t, err)

		balance, err := svc.Balance(ctx, testActor)
		require.NoError(t, err)
		assert.Equal(t, 6, balance.TotalPoints)
	})

	t.Run("balance equals transaction sum after each credit", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := NewService(repo, nil)

		deltas := []int{10, 10, -5, 3}
		for _, d := range deltas {
			action := domain.ActionItemApproved
			if d < 0 {
				action = domain.ActionRedeemed
			}
			_, err := svc.Credit(ctx, CreditInput{UserID: testActor.ID, Points: d, Action: action})
			require.NoError(t, err)

			txns, err := svc.Transactions(ctx, testActor)
			require.NoError(t, err)
			sum := 0
			for _, txn := range txns {
				sum += txn.Points
			}
			balance, err := svc.Balance(ctx, testActor)
			require.NoError(t, err)
			assert.Equal(t, sum, balance.TotalPoints)
		}
	})

	t.Run("publishes points.credited", func(t *testing.T) {
		bus := event.NewMemoryBus()
		var seen []event.Event
		bus.Subscribe(event.PointsCredited, func(ctx context.Context, evt event.Event) error {
			seen = append(seen, evt)
			return nil
		})
		svc := NewService(NewFakeRepository(), bus)

		_, err := svc.Credit(ctx, CreditInput{UserID: testActor.ID, Points: 10, Action: domain.ActionItemApproved})
		require.NoError(t, err)
		require.Len(t, seen, 1)

		payload, ok := seen[0].Payload.(domain.PointsCreditedPayload)
		require.True(t, ok)
		assert.Equal(t, testActor.ID, payload.UserID)
		assert.Equal(t, 10, payload.Points)
	})
}

func TestBalance(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewFakeRepository(), nil)

	t.Run("zero before first credit", func(t *testing.T) {
		balance, err := svc.Balance(ctx, testActor)
		require.NoError(t, err)
		assert.Zero(t, balance.TotalPoints)
		assert.Equal(t, testActor.ID, balance.UserID)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		_, err := svc.Balance(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestTransactions(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewFakeRepository(), nil)

	for i := 0; i < 3; i++ {
		_, err := svc.Credit(ctx, CreditInput{
			UserID:      testActor.ID,
			Points:      10,
			Action:      domain.ActionItemApproved,
			Description: "credit",
		})
		require.NoError(t, err)
	}

	txns, err := svc.Transactions(ctx, testActor)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	// Newest first
	for i := 1; i < len(txns); i++ {
		assert.False(t, txns[i].CreatedAt.After(txns[i-1].CreatedAt))
	}

	t.Run("anonymous unauthorized", func(t *testing.T) {
		_, err := svc.Transactions(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
