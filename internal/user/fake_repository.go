package user

import (
	"context"
	"fmt"

	"github.com/shareshelf/shareshelf/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.User
// for integration-style unit tests.
type FakeRepository struct {
	users map[string]*domain.User // keyed by normalized username
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{users: make(map[string]*domain.User)}
}

func (f *FakeRepository) InsertUser(ctx context.Context, u *domain.User) error {
	if _, exists := f.users[u.Username]; exists {
		return domain.ErrUsernameTaken
	}
	if u.ID == "" {
		u.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	}
	stored := *u
	f.users[u.Username] = &stored
	return nil
}

func (f *FakeRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if u, ok := f.users[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, domain.ErrUserNotFound
}
