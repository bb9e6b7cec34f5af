package repository

import (
	"context"

	"github.com/shareshelf/shareshelf/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	InsertUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}
