package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shareshelf/shareshelf/internal/database/postgres"
	"github.com/shareshelf/shareshelf/internal/eventlog"
	"github.com/shareshelf/shareshelf/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User     repository.User
	Item     repository.Item
	Borrow   repository.Borrow
	Rewards  repository.Rewards
	Message  repository.Message
	EventLog eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:     postgres.NewUserRepository(dbPool),
		Item:     postgres.NewItemRepository(dbPool),
		Borrow:   postgres.NewBorrowRepository(dbPool),
		Rewards:  postgres.NewRewardsRepository(dbPool),
		Message:  postgres.NewMessageRepository(dbPool),
		EventLog: postgres.NewEventLogRepository(dbPool),
	}
}
