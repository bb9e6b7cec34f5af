package borrow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
)

var (
	testOwner    = &domain.User{ID: "user-owner", Username: "olivia", Role: domain.RoleCustomer}
	testBorrower = &domain.User{ID: "user-borrower", Username: "ben", Role: domain.RoleCustomer}
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
		event.BorrowRequested, event.BorrowApproved, event.BorrowDenied, event.BorrowReturned,
	} {
		bus.Subscribe(et, recorder.record)
	}
	return NewService(repo, repo, bus, DefaultBorrowPeriod), repo, recorder
}

func seedApprovedItem(repo *FakeRepository, id string) domain.Item {
	it := domain.Item{
		ID:            id,
		OwnerID:       testOwner.ID,
		Name:          "Mountain Bike",
		Category:      "sports",
		OwnershipType: domain.OwnershipShare,
		Status:        domain.ItemStatusApproved,
	}
	repo.AddItem(it)
	return it
}

func TestRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending request without touching the item", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)
		assert.Equal(t, domain.BorrowStatusPending, request.Status)
		assert.Equal(t, testBorrower.ID, request.BorrowerID)
		assert.Nil(t, request.DueDate)

		assert.Equal(t, domain.ItemStatusApproved, repo.Item("item-1").Status)
		assert.Equal(t, []event.Type{event.BorrowRequested}, recorder.typesSeen())
	})

	t.Run("duplicate active request conflicts", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seedApprovedItem(repo, "item-1")

		_, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)

		_, err = svc.Request(ctx, testBorrower, "item-1")
		assert.ErrorIs(t, err, domain.ErrActiveRequestExists)
	})

	t.Run("denied request frees the slot", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seedApprovedItem(repo, "item-1")

		first, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)
		_, err = svc.Deny(ctx, testOwner, first.ID)
		require.NoError(t, err)

		_, err = svc.Request(ctx, testBorrower, "item-1")
		assert.NoError(t, err)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Request(ctx, testBorrower, "item-missing")
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("staff cannot borrow", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seedApprovedItem(repo, "item-1")

		_, err := svc.Request(ctx, testStaff, "item-1")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("owner approves, item reserved, due date set", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)

		before := time.Now()
		approved, err := svc.Approve(ctx, testOwner, request.ID)
		require.NoError(t, err)

		assert.Equal(t, domain.BorrowStatusApproved, approved.Status)
		require.NotNil(t, approved.DueDate)
		expected := before.Add(DefaultBorrowPeriod)
		assert.WithinDuration(t, expected, *approved.DueDate, 5*time.Second)

		assert.Equal(t, domain.ItemStatusReserved, repo.Item("item-1").Status)
		assert.Contains(t, recorder.typesSeen(), event.BorrowApproved)
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)

		_, err = svc.Approve(ctx, testBorrower, request.ID)
		assert.ErrorIs(t, err, domain.ErrNotItemOwner)
	})

	t.Run("second approval conflicts", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)
		_, err = svc.Approve(ctx, testOwner, request.ID)
		require.NoError(t, err)

		_, err = svc.Approve(ctx, testOwner, request.ID)
		assert.ErrorIs(t, err, domain.ErrRequestAlreadyProcessed)
	})

	t.Run("unknown request", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Approve(ctx, testOwner, "request-missing")
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})
}

func TestDeny(t *testing.T) {
	ctx := context.Background()

	t.Run("owner denies, item untouched", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)

		denied, err := svc.Deny(ctx, testOwner, request.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BorrowStatusDenied, denied.Status)
		assert.Nil(t, denied.DueDate)

		assert.Equal(t, domain.ItemStatusApproved, repo.Item("item-1").Status)
		assert.Contains(t, recorder.typesSeen(), event.BorrowDenied)
	})

	t.Run("deny after approve conflicts", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)
		_, err = svc.Approve(ctx, testOwner, request.ID)
		require.NoError(t, err)

		_, err = svc.Deny(ctx, testOwner, request.ID)
		assert.ErrorIs(t, err, domain.ErrRequestAlreadyProcessed)
	})
}

func TestReturn(t *testing.T) {
	ctx := context.Background()

	t.Run("borrower returns, item marked returned", func(t *testing.T) {
		svc, repo, recorder := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)
		_, err = svc.Approve(ctx, testOwner, request.ID)
		require.NoError(t, err)

		returned, err := svc.Return(ctx, testBorrower, request.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BorrowStatusReturned, returned.Status)
		require.NotNil(t, returned.ReturnDate)
		assert.WithinDuration(t, time.Now(), *returned.ReturnDate, 5*time.Second)

		// Returned items stay RETURNED until staff relist them
		assert.Equal(t, domain.ItemStatusReturned, repo.Item("item-1").Status)
		assert.Contains(t, recorder.typesSeen(), event.BorrowReturned)
	})

	t.Run("owner cannot return on borrower's behalf", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)
		_, err = svc.Approve(ctx, testOwner, request.ID)
		require.NoError(t, err)

		_, err = svc.Return(ctx, testOwner, request.ID)
		assert.ErrorIs(t, err, domain.ErrNotBorrower)
	})

	t.Run("pending request is not borrowed", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)

		_, err = svc.Return(ctx, testBorrower, request.ID)
		assert.ErrorIs(t, err, domain.ErrRequestNotBorrowed)
	})

	t.Run("double return conflicts", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		seedApprovedItem(repo, "item-1")

		request, err := svc.Request(ctx, testBorrower, "item-1")
		require.NoError(t, err)
		_, err = svc.Approve(ctx, testOwner, request.ID)
		require.NoError(t, err)
		_, err = svc.Return(ctx, testBorrower, request.ID)
		require.NoError(t, err)

		_, err = svc.Return(ctx, testBorrower, request.ID)
		assert.ErrorIs(t, err, domain.ErrRequestNotBorrowed)
	})
}

func TestGetAndList_Visibility(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)
	seedApprovedItem(repo, "item-1")

	other := &domain.User{ID: "user-other", Username: "carol", Role: domain.RoleCustomer}

	request, err := svc.Request(ctx, testBorrower, "item-1")
	require.NoError(t, err)

	t.Run("borrower sees own request", func(t *testing.T) {
		got, err := svc.Get(ctx, testBorrower, request.ID)
		require.NoError(t, err)
		assert.Equal(t, request.ID, got.ID)
	})

	t.Run("item owner sees request", func(t *testing.T) {
		got, err := svc.Get(ctx, testOwner, request.ID)
		require.NoError(t, err)
		assert.Equal(t, request.ID, got.ID)
	})

	t.Run("unrelated customer does not", func(t *testing.T) {
		_, err := svc.Get(ctx, other, request.ID)
		assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	})

	t.Run("list by role", func(t *testing.T) {
		forBorrower, err := svc.List(ctx, testBorrower)
		require.NoError(t, err)
		assert.Len(t, forBorrower, 1)

		forOwner, err := svc.List(ctx, testOwner)
		require.NoError(t, err)
		assert.Len(t, forOwner, 1)

		forOther, err := svc.List(ctx, other)
		require.NoError(t, err)
		assert.Empty(t, forOther)

		forStaff, err := svc.List(ctx, testStaff)
		require.NoError(t, err)
		assert.Len(t, forStaff, 1)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		_, err := svc.List(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

// TestBikeLendingScenario walks one item through the whole loan: request,
// approval with due date, and return, checking item state at each step.
func TestBikeLendingScenario(t *testing.T) {
	ctx := context.Background()
	svc, repo, recorder := newTestService(t)
	seedApprovedItem(repo, "bike")

	request, err := svc.Request(ctx, testBorrower, "bike")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusApproved, repo.Item("bike").Status)

	approved, err := svc.Approve(ctx, testOwner, request.ID)
	require.NoError(t, err)
	require.NotNil(t, approved.DueDate)
	assert.Equal(t, domain.ItemStatusReserved, repo.Item("bike").Status)

	returned, err := svc.Return(ctx, testBorrower, request.ID)
	require.NoError(t, err)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, domain.ItemStatusReturned, repo.Item("bike").Status)

	assert.Equal(t, []event.Type{
		event.BorrowRequested, event.BorrowApproved, event.BorrowReturned,
	}, recorder.typesSeen())

	// The slot is free again once the loan closed
	_, err = svc.Request(ctx, testBorrower, "bike")
	assert.NoError(t, err)
}
