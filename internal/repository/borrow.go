package repository

import (
	"context"
	"time"

	"github.com/shareshelf/shareshelf/internal/domain"
)

// Borrow defines the interface for borrow request persistence
type Borrow interface {
	GetRequestByID(ctx context.Context, requestID string) (*domain.BorrowRequest, error)
	ListRequestsByBorrower(ctx context.Context, borrowerID string) ([]domain.BorrowRequest, error)
	ListRequestsByItemOwner(ctx context.Context, ownerID string) ([]domain.BorrowRequest, error)
	ListAllRequests(ctx context.Context) ([]domain.BorrowRequest, error)
	ListOverdueRequests(ctx context.Context, asOf time.Time) ([]domain.BorrowRequest, error)

	BeginTx(ctx context.Context) (BorrowTx, error)
}

// BorrowTx defines the interface for borrow lifecycle transactions
type BorrowTx interface {
	Tx
	HasActiveRequest(ctx context.Context, borrowerID, itemID string) (bool, error)
	InsertRequest(ctx context.Context, request *domain.BorrowRequest) error
	GetRequestForUpdate(ctx context.Context, requestID string) (*domain.BorrowRequest, error)
	UpdateRequest(ctx context.Context, request *domain.BorrowRequest) error
	GetItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error)
	UpdateItemStatus(ctx context.Context, itemID, status string, conditionScore *int) error
}
