package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/eventlog"
)

func TestEventLogRepository_LogAndQuery(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewEventLogRepository(testPool)

	user := createTestUser(t, domain.RoleCustomer)

	payload := map[string]interface{}{
		"item_id": "item-1",
		"status":  domain.ItemStatusApproved,
	}
	metadata := map[string]interface{}{"source": "integration_test"}

	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeItemApproved, &user.ID, payload, metadata))
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeBorrowRequested, &user.ID, payload, nil))
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeItemSubmitted, nil, payload, nil))

	byUser, err := repo.GetEventsByUser(ctx, user.ID, 10)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	// Newest first
	assert.Equal(t, domain.EventTypeBorrowRequested, byUser[0].EventType)
	assert.Equal(t, "item-1", byUser[1].Payload["item_id"])
	assert.Equal(t, "integration_test", byUser[1].Metadata["source"])

	byType, err := repo.GetEventsByType(ctx, domain.EventTypeItemApproved, 10)
	require.NoError(t, err)
	require.NotEmpty(t, byType)
	for _, evt := range byType {
		assert.Equal(t, domain.EventTypeItemApproved, evt.EventType)
	}
}

func TestEventLogRepository_Filter(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewEventLogRepository(testPool)

	user := createTestUser(t, domain.RoleCustomer)
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypePointsCredited, &user.ID,
		map[string]interface{}{"points": 10}, nil))

	eventType := domain.EventTypePointsCredited
	since := time.Now().Add(-time.Minute)

	events, err := repo.GetEvents(ctx, eventlog.EventFilter{
		UserID:    &user.ID,
		EventType: &eventType,
		Since:     &since,
		Limit:     5,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.EqualValues(t, 10, events[0].Payload["points"])

	until := time.Now().Add(-time.Hour)
	events, err = repo.GetEvents(ctx, eventlog.EventFilter{
		UserID: &user.ID,
		Until:  &until,
	})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestEventLogRepository_Cleanup(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewEventLogRepository(testPool)

	user := createTestUser(t, domain.RoleCustomer)
	require.NoError(t, repo.LogEvent(ctx, domain.EventTypeItemRejected, &user.ID,
		map[string]interface{}{}, nil))

	// Nothing is older than a year
	deleted, err := repo.CleanupOldEvents(ctx, 365)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	// Retention of zero days sweeps everything written so far
	deleted, err = repo.CleanupOldEvents(ctx, 0)
	require.NoError(t, err)
	assert.Positive(t, deleted)
}
