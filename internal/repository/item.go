package repository

import (
	"context"

	"github.com/shareshelf/shareshelf/internal/domain"
)

// ItemFilter narrows item listings. Zero values mean "no filter".
type ItemFilter struct {
	Status   string
	OwnerID  string
	Category string
}

// Item defines the interface for item persistence
type Item interface {
	InsertItem(ctx context.Context, item *domain.Item) error
	GetItemByID(ctx context.Context, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, itemID string) error

	GetInspectionReport(ctx context.Context, itemID string) (*domain.InspectionReport, error)
	GetRating(ctx context.Context, itemID string) (*domain.Rating, error)

	BeginTx(ctx context.Context) (ItemTx, error)
}

// ItemTx defines the interface for item lifecycle transactions. Status
// transitions re-check state on the locked row before writing.
type ItemTx interface {
	Tx
	GetItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error)
	UpdateItemStatus(ctx context.Context, itemID, status string, conditionScore *int) error
	InsertInspectionReport(ctx context.Context, report *domain.InspectionReport) error
	UpsertRating(ctx context.Context, rating *domain.Rating) error

	// Reward crediting runs inside the same transaction as the approval
	// that earns it.
	InsertPointTransaction(ctx context.Context, txn *domain.PointTransaction) error
	AddPoints(ctx context.Context, userID string, delta int) (*domain.UserPoints, error)
}
