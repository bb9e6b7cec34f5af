package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shareshelf/shareshelf/internal/domain"
)

var (
	testSender    = &domain.User{ID: "user-sender", Username: "alice", Role: domain.RoleCustomer}
	testRecipient = &domain.User{ID: "user-recipient", Username: "bob", Role: domain.RoleCustomer}
)

func newTestService(t *testing.T) (Service, *FakeRepository) {
	t.Helper()
	repo := NewFakeRepository()
	repo.AddUser(*testSender)
	repo.AddUser(*testRecipient)
	return NewService(repo, repo), repo
}

func TestSend(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to existing recipient", func(t *testing.T) {
		svc, _ := newTestService(t)

		itemID := "item-1"
		message, err := svc.Send(ctx, testSender, SendInput{
			RecipientID: testRecipient.ID,
			ItemID:      &itemID,
			Subject:     "About your bike",
			Body:        "Is it still available?",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, message.ID)
		assert.Equal(t, testSender.ID, message.SenderID)
		assert.False(t, message.IsRead)
	})

	t.Run("unknown recipient", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Send(ctx, testSender, SendInput{RecipientID: "user-ghost", Body: "hello"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("empty body", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Send(ctx, testSender, SendInput{RecipientID: testRecipient.ID})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Send(ctx, nil, SendInput{RecipientID: testRecipient.ID, Body: "hi"})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestInboxAndSent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	for _, body := range []string{"first", "second", "third"} {
		_, err := svc.Send(ctx, testSender, SendInput{RecipientID: testRecipient.ID, Body: body})
		require.NoError(t, err)
	}

	inbox, err := svc.Inbox(ctx, testRecipient)
	require.NoError(t, err)
	require.Len(t, inbox, 3)
	assert.Equal(t, "third", inbox[0].Body)

	sent, err := svc.Sent(ctx, testSender)
	require.NoError(t, err)
	assert.Len(t, sent, 3)

	empty, err := svc.Inbox(ctx, testSender)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("recipient flips unread to read", func(t *testing.T) {
		svc, _ := newTestService(t)

		message, err := svc.Send(ctx, testSender, SendInput{RecipientID: testRecipient.ID, Body: "hi"})
		require.NoError(t, err)

		read, err := svc.MarkRead(ctx, testRecipient, message.ID)
		require.NoError(t, err)
		assert.True(t, read.IsRead)

		// Repeat is a no-op
		again, err := svc.MarkRead(ctx, testRecipient, message.ID)
		require.NoError(t, err)
		assert.True(t, again.IsRead)
	})

	t.Run("sender cannot mark read", func(t *testing.T) {
		svc, _ := newTestService(t)

		message, err := svc.Send(ctx, testSender, SendInput{RecipientID: testRecipient.ID, Body: "hi"})
		require.NoError(t, err)

		_, err = svc.MarkRead(ctx, testSender, message.ID)
		assert.ErrorIs(t, err, domain.ErrNotRecipient)
	})

	t.Run("unknown message", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.MarkRead(ctx, testRecipient, "message-ghost")
		assert.ErrorIs(t, err, domain.ErrMessageNotFound)
	})
}
