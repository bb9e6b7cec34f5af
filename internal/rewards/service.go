package rewards

import (
	"context"
	"fmt"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/event"
	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/repository"
)

// CreditInput describes one ledger credit
type CreditInput struct {
	UserID      string
	Points      int
	Action      string
	ItemID      *string
	Description string
}

// Service defines the interface for the points reward ledger
type Service interface {
	// Credit appends a transaction and moves the balance in one database
	// transaction.
	Credit(ctx context.Context, input CreditInput) (*domain.PointTransaction, error)

	Balance(ctx context.Context, actor *domain.User) (*domain.UserPoints, error)
	Transactions(ctx context.Context, actor *domain.User) ([]domain.PointTransaction, error)
}

// service implements the Service interface
type service struct {
	repo repository.Rewards
	bus  event.Bus
}

// NewService creates a new rewards ledger service
func NewService(repo repository.Rewards, bus event.Bus) Service {
	return &service{repo: repo, bus: bus}
}

// Credit validates the action and records the signed point movement. The
// ledger append and the balance increment share one transaction so the
// balance always equals the transaction sum.
func (s *service) Credit(ctx context.Context, input CreditInput) (*domain.PointTransaction, error) {
	log := logger.FromContext(ctx)
	log.Info("Credit called", "user_id", input.UserID, "points", input.Points, "action", input.Action)

	if !domain.IsValidRewardAction(input.Action) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRewardAction, input.Action)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	txn := &domain.PointTransaction{
		UserID:      input.UserID,
		Points:      input.Points,
		Action:      input.Action,
		ItemID:      input.ItemID,
		Description: input.Description,
	}
	if err := tx.InsertPointTransaction(ctx, txn); err != nil {
		log.Error("Failed to insert point transaction", "error", err, "user_id", input.UserID)
		return nil, fmt.Errorf("failed to insert point transaction: %w", err)
	}

	if _, err := tx.AddPoints(ctx, input.UserID, input.Points); err != nil {
		log.Error("Failed to add points", "error", err, "user_id", input.UserID)
		return nil, fmt.Errorf("failed to add points: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", "error", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewPointsCreditedEvent(txn)); err != nil {
			log.Warn("Failed to publish event", "error", err, "type", event.PointsCredited)
		}
	}

	log.Info("Points credited", "user_id", input.UserID, "points", input.Points, "action", input.Action)
	return txn, nil
}

// Balance returns the actor's running total, zero-valued before any credit
func (s *service) Balance(ctx context.Context, actor *domain.User) (*domain.UserPoints, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.GetUserPoints(ctx, actor.ID)
}

// Transactions returns the actor's ledger entries, newest first
func (s *service) Transactions(ctx context.Context, actor *domain.User) ([]domain.PointTransaction, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	return s.repo.ListTransactions(ctx, actor.ID)
}
