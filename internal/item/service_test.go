package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
)

var (
	testCustomer = &domain.User{ID: "user-customer", Username: "alice", Role: domain.RoleCustomer}
	testOwner    = &domain.User{ID: "user-owner", Username: "bob", Role: domain.RoleCustomer}
	testStaff    = &domain.User{ID: "user-staff", Username: "inspector", Role: domain.RoleStaff}
)

// eventRecorder captures published events for assertions
type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) record(ctx context.Context, evt event.Event) error {
	r.events = append(r.events, evt)
	return nil
}

func (r *eventRecorder) typesSeen() []event.Type {
	var types []event.Type
	for _, evt := range r.events {
		types = append(types, evt.Type)
	}
	return types
}

func newTestService(t *testing.T) (Service, *FakeRepository, *eventRecorder) {
	t.Helper()
	repo := NewFakeRepository()
	bus := event.NewMemoryBus()
	recorder := &eventRecorder{}
	for _, et := range []event.Type{
		event.ItemSubmitted, event.ItemInspected, event.ItemApproved,
		event.ItemRejected, event.PointsCredited,
	} {
		bus.Subscribe(et, recorder.record)
	}
	return NewService(repo, bus), repo, recorder
}

func submitTestItem(t *testing.T, svc Service, owner *domain.User) *domain.Item {
	t.Helper()
	it, err := svc.Submit(context.Background(), owner, SubmitInput{
		Name:          "Mountain Bike",
		Category:      "sports",
		Description:   "A sturdy trail bike",
		OwnershipType: domain.OwnershipShare,
	})
	require.NoError(t, err)
	return it
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending item", func(t *testing.T) {
		svc, _, recorder := newTestService(t)

		it := submitTestItem(t, svc, testOwner)
		assert.Equal(t, domain.ItemStatusPendingVerification, it.Status)
		assert.Equal(t, testOwner.ID, it.OwnerID)
		assert.NotEmpty(t, it.ID)
		assert.Equal(t, []event.Type{event.ItemSubmitted}, recorder.typesSeen())
	})

	t.Run("staff cannot submit", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Submit(ctx, testStaff, SubmitInput{Name: "x", OwnershipType: domain.OwnershipSell})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("anonymous cannot submit", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Submit(ctx, nil, SubmitInput{Name: "x", OwnershipType: domain.OwnershipSell})
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("invalid ownership type", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Submit(ctx, testCustomer, SubmitInput{Name: "x", OwnershipType: "RENT"})
		assert.ErrorIs(t, err, domain.ErrInvalidOwnershipType)
	})
}

func TestInspect(t *testing.T) {
	ctx := context.Background()

	t.Run("rating at threshold approves and records condition", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		inspected, err := svc.Inspect(ctx, testStaff, it.ID, domain.MinApprovalRating, "good condition")
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusApproved, inspected.Status)
		require.NotNil(t, inspected.ConditionScore)
		assert.Equal(t, domain.MinApprovalRating, *inspected.ConditionScore)

		report, err := repo.GetInspectionReport(ctx, it.ID)
		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, testStaff.ID, report.StaffID)
		assert.Equal(t, "good condition", report.Notes)

		assert.Contains(t, recorder.typesSeen(), event.ItemInspected)
	})

	t.Run("rating below threshold rejects without condition score", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		inspected, err := svc.Inspect(ctx, testStaff, it.ID, domain.MinApprovalRating-1, "broken gears")
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusRejected, inspected.Status)
		assert.Nil(t, inspected.ConditionScore)
	})

	t.Run("second inspection conflicts", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		// Force the item back to pending so only the report uniqueness is in play
		_, err := svc.Inspect(ctx, testStaff, it.ID, 4, "first pass")
		require.NoError(t, err)
		_, err = svc.SetStatus(ctx, testStaff, it.ID, domain.ItemStatusPendingVerification)
		require.NoError(t, err)

		_, err = svc.Inspect(ctx, testStaff, it.ID, 4, "second pass")
		assert.ErrorIs(t, err, domain.ErrItemAlreadyInspected)
	})

	t.Run("item past verification looks absent", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.Inspect(ctx, testStaff, it.ID, 5, "")
		require.NoError(t, err)

		_, err = svc.Inspect(ctx, testStaff, it.ID, 5, "")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("rating out of range", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.Inspect(ctx, testStaff, it.ID, 0, "")
		assert.ErrorIs(t, err, domain.ErrInvalidRating)

		_, err = svc.Inspect(ctx, testStaff, it.ID, 6, "")
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	})

	t.Run("customer cannot inspect", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.Inspect(ctx, testCustomer, it.ID, 5, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("approves and credits owner", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		approved, err := svc.Approve(ctx, testStaff, it.ID, nil, "")
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusApproved, approved.Status)

		assert.Equal(t, domain.PointsItemApproved, repo.Points(testOwner.ID).TotalPoints)
		txns := repo.Transactions()
		require.Len(t, txns, 1)
		assert.Equal(t, domain.ActionItemApproved, txns[0].Action)
		assert.Equal(t, testOwner.ID, txns[0].UserID)
		require.NotNil(t, txns[0].ItemID)
		assert.Equal(t, it.ID, *txns[0].ItemID)

		assert.Contains(t, recorder.typesSeen(), event.ItemApproved)
		assert.Contains(t, recorder.typesSeen(), event.PointsCredited)
	})

	t.Run("low stars still approve", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		one := 1
		approved, err := svc.Approve(ctx, testStaff, it.ID, &one, "scuffed but works")
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusApproved, approved.Status)

		rating, err := repo.GetRating(ctx, it.ID)
		require.NoError(t, err)
		require.NotNil(t, rating)
		assert.Equal(t, 1, rating.Stars)
		assert.Equal(t, "scuffed but works", rating.Comment)
	})

	t.Run("no stars means no rating row", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.Approve(ctx, testStaff, it.ID, nil, "ignored")
		require.NoError(t, err)

		rating, err := repo.GetRating(ctx, it.ID)
		require.NoError(t, err)
		assert.Nil(t, rating)
	})

	t.Run("stars out of range", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		six := 6
		_, err := svc.Approve(ctx, testStaff, it.ID, &six, "")
		assert.ErrorIs(t, err, domain.ErrInvalidStars)
	})

	t.Run("already resolved item looks absent", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.Approve(ctx, testStaff, it.ID, nil, "")
		require.NoError(t, err)

		_, err = svc.Approve(ctx, testStaff, it.ID, nil, "")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("customer cannot approve", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.Approve(ctx, testOwner, it.ID, nil, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestReject(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects with zero-star rating", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		rejected, err := svc.Reject(ctx, testStaff, it.ID, "missing wheel")
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusRejected, rejected.Status)

		rating, err := repo.GetRating(ctx, it.ID)
		require.NoError(t, err)
		require.NotNil(t, rating)
		assert.Equal(t, 0, rating.Stars)
		assert.Equal(t, "REJECTED: missing wheel", rating.Comment)

		// No points for rejections
		assert.Zero(t, repo.Points(testOwner.ID).TotalPoints)
		assert.Contains(t, recorder.typesSeen(), event.ItemRejected)
	})

	t.Run("customer cannot reject", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.Reject(ctx, testCustomer, it.ID, "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("overrides without transition checks", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		updated, err := svc.SetStatus(ctx, testStaff, it.ID, domain.ItemStatusCheckedOut)
		require.NoError(t, err)
		assert.Equal(t, domain.ItemStatusCheckedOut, updated.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.SetStatus(ctx, testStaff, it.ID, "LOST")
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("staff only", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.SetStatus(ctx, testOwner, it.ID, domain.ItemStatusAvailable)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestGet_Visibility(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	pending := submitTestItem(t, svc, testOwner)
	approved := submitTestItem(t, svc, testOwner)
	_, err := svc.Inspect(ctx, testStaff, approved.ID, 4, "fine")
	require.NoError(t, err)

	t.Run("anonymous sees approved only", func(t *testing.T) {
		detail, err := svc.Get(ctx, nil, approved.ID)
		require.NoError(t, err)
		assert.Equal(t, approved.ID, detail.Item.ID)
		assert.Nil(t, detail.Report)

		_, err = svc.Get(ctx, nil, pending.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("other customers cannot see pending", func(t *testing.T) {
		_, err := svc.Get(ctx, testCustomer, pending.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("owner sees own pending item", func(t *testing.T) {
		detail, err := svc.Get(ctx, testOwner, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, pending.ID, detail.Item.ID)
	})

	t.Run("owner gets inspection detail", func(t *testing.T) {
		detail, err := svc.Get(ctx, testOwner, approved.ID)
		require.NoError(t, err)
		require.NotNil(t, detail.Report)
		assert.Equal(t, 4, detail.Report.ConditionRating)
	})

	t.Run("staff sees everything", func(t *testing.T) {
		detail, err := svc.Get(ctx, testStaff, pending.ID)
		require.NoError(t, err)
		assert.Equal(t, pending.ID, detail.Item.ID)
	})
}

func TestList_Visibility(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	pendingOwn := submitTestItem(t, svc, testOwner)
	approvedOwn := submitTestItem(t, svc, testOwner)
	_, err := svc.Inspect(ctx, testStaff, approvedOwn.ID, 5, "")
	require.NoError(t, err)
	pendingOther := submitTestItem(t, svc, testCustomer)

	idsOf := func(items []domain.Item) []string {
		var ids []string
		for _, it := range items {
			ids = append(ids, it.ID)
		}
		return ids
	}

	t.Run("anonymous", func(t *testing.T) {
		items, err := svc.List(ctx, nil, ListFilter{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{approvedOwn.ID}, idsOf(items))
	})

	t.Run("owner sees approved plus own, deduplicated", func(t *testing.T) {
		items, err := svc.List(ctx, testOwner, ListFilter{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{approvedOwn.ID, pendingOwn.ID}, idsOf(items))
	})

	t.Run("staff sees all", func(t *testing.T) {
		items, err := svc.List(ctx, testStaff, ListFilter{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{approvedOwn.ID, pendingOwn.ID, pendingOther.ID}, idsOf(items))
	})

	t.Run("category filter applies", func(t *testing.T) {
		items, err := svc.List(ctx, nil, ListFilter{Category: "electronics"})
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestListPending(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	it := submitTestItem(t, svc, testOwner)

	items, err := svc.ListPending(ctx, testStaff)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, it.ID, items[0].ID)

	_, err = svc.ListPending(ctx, testOwner)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("owner updates fields", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		updated, err := svc.Update(ctx, testOwner, it.ID, UpdateInput{
			Name:          "Mountain Bike (tuned)",
			Category:      "sports",
			Description:   "Now with new brakes",
			OwnershipType: domain.OwnershipExchange,
		})
		require.NoError(t, err)
		assert.Equal(t, "Mountain Bike (tuned)", updated.Name)
		assert.Equal(t, domain.OwnershipExchange, updated.OwnershipType)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		_, err := svc.Update(ctx, testCustomer, it.ID, UpdateInput{
			Name:          "hijacked",
			OwnershipType: domain.OwnershipSell,
		})
		assert.ErrorIs(t, err, domain.ErrNotItemOwner)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deletes", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		require.NoError(t, svc.Delete(ctx, testOwner, it.ID))

		_, err := svc.Get(ctx, testOwner, it.ID)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		it := submitTestItem(t, svc, testOwner)

		err := svc.Delete(ctx, testStaff, it.ID)
		assert.ErrorIs(t, err, domain.ErrNotItemOwner)
	})
}
