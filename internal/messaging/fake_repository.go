package messaging

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shareshelf/shareshelf/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.Message
// and the user lookup the service needs, for integration-style unit tests.
type FakeRepository struct {
	messages map[string]*domain.Message
	users    map[string]*domain.User
	seq      int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		messages: make(map[string]*domain.Message),
		users:    make(map[string]*domain.User),
	}
}

// AddUser seeds a user the messaging service can resolve recipients against
func (f *FakeRepository) AddUser(u domain.User) {
	f.users[u.ID] = &u
}

func (f *FakeRepository) InsertUser(ctx context.Context, u *domain.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *FakeRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if u, ok := f.users[userID]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) InsertMessage(ctx context.Context, message *domain.Message) error {
	if message.ID == "" {
		f.seq++
		message.ID = fmt.Sprintf("message-%d", f.seq)
	}
	message.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Microsecond)
	stored := *message
	f.messages[message.ID] = &stored
	return nil
}

func (f *FakeRepository) GetMessageByID(ctx context.Context, messageID string) (*domain.Message, error) {
	if m, ok := f.messages[messageID]; ok {
		copied := *m
		return &copied, nil
	}
	return nil, domain.ErrMessageNotFound
}

func (f *FakeRepository) ListInbox(ctx context.Context, recipientID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range f.messages {
		if m.RecipientID == recipientID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *FakeRepository) ListSent(ctx context.Context, senderID string) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range f.messages {
		if m.SenderID == senderID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *FakeRepository) MarkRead(ctx context.Context, messageID string) error {
	m, ok := f.messages[messageID]
	if !ok {
		return domain.ErrMessageNotFound
	}
	m.IsRead = true
	return nil
}
