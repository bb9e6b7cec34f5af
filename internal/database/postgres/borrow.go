package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/repository"
)

type borrowRepository struct {
	db *pgxpool.Pool
}

// NewBorrowRepository creates a new PostgreSQL borrow request repository
func NewBorrowRepository(db *pgxpool.Pool) repository.Borrow {
	return &borrowRepository{db: db}
}

const borrowColumns = `id, item_id, borrower_id, status, due_date, return_date, created_at`

func scanBorrowRequest(row interface{ Scan(dest ...any) error }) (*domain.BorrowRequest, error) {
	var br domain.BorrowRequest
	err := row.Scan(&br.ID, &br.ItemID, &br.BorrowerID, &br.Status,
		&br.DueDate, &br.ReturnDate, &br.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &br, nil
}

func scanBorrowRequests(rows pgx.Rows) ([]domain.BorrowRequest, error) {
	defer rows.Close()

	requests := []domain.BorrowRequest{}
	for rows.Next() {
		br, err := scanBorrowRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan borrow request: %w", err)
		}
		requests = append(requests, *br)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read borrow requests: %w", err)
	}
	return requests, nil
}

func (r *borrowRepository) GetRequestByID(ctx context.Context, requestID string) (*domain.BorrowRequest, error) {
	if _, err := parseUUID(requestID, "borrow request"); err != nil {
		return nil, domain.ErrRequestNotFound
	}

	query := `SELECT ` + borrowColumns + ` FROM borrow_requests WHERE id = $1`

	request, err := scanBorrowRequest(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		return nil, notFound(err, domain.ErrRequestNotFound)
	}
	return request, nil
}

func (r *borrowRepository) ListRequestsByBorrower(ctx context.Context, borrowerID string) ([]domain.BorrowRequest, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_requests WHERE borrower_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrow requests: %w", err)
	}
	return scanBorrowRequests(rows)
}

func (r *borrowRepository) ListRequestsByItemOwner(ctx context.Context, ownerID string) ([]domain.BorrowRequest, error) {
	query := `
		SELECT br.id, br.item_id, br.borrower_id, br.status, br.due_date, br.return_date, br.created_at
		FROM borrow_requests br
		JOIN items i ON i.id = br.item_id
		WHERE i.owner_id = $1
		ORDER BY br.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrow requests by owner: %w", err)
	}
	return scanBorrowRequests(rows)
}

func (r *borrowRepository) ListAllRequests(ctx context.Context) ([]domain.BorrowRequest, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_requests ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrow requests: %w", err)
	}
	return scanBorrowRequests(rows)
}

func (r *borrowRepository) ListOverdueRequests(ctx context.Context, asOf time.Time) ([]domain.BorrowRequest, error) {
	query := `SELECT ` + borrowColumns + ` FROM borrow_requests
		WHERE status = $1 AND due_date < $2 ORDER BY due_date ASC`

	rows, err := r.db.Query(ctx, query, domain.BorrowStatusApproved, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue borrow requests: %w", err)
	}
	return scanBorrowRequests(rows)
}

func (r *borrowRepository) BeginTx(ctx context.Context) (repository.BorrowTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &borrowTx{tx: tx}, nil
}

type borrowTx struct {
	tx pgx.Tx
}

func (t *borrowTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *borrowTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *borrowTx) HasActiveRequest(ctx context.Context, borrowerID, itemID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM borrow_requests
			WHERE borrower_id = $1 AND item_id = $2 AND status IN ('PENDING', 'APPROVED')
		)
	`

	var exists bool
	if err := t.tx.QueryRow(ctx, query, borrowerID, itemID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active requests: %w", err)
	}
	return exists, nil
}

func (t *borrowTx) InsertRequest(ctx context.Context, request *domain.BorrowRequest) error {
	request.ID = newID(request.ID)

	query := `
		INSERT INTO borrow_requests (id, item_id, borrower_id, status, due_date, return_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := t.tx.QueryRow(ctx, query,
		request.ID, request.ItemID, request.BorrowerID, request.Status,
		request.DueDate, request.ReturnDate,
	).Scan(&request.CreatedAt)
	if err != nil {
		// The partial unique index backs up the in-transaction existence check.
		if isUniqueViolation(err, "uq_borrow_requests_active") {
			return domain.ErrActiveRequestExists
		}
		return fmt.Errorf("failed to insert borrow request: %w", err)
	}
	return nil
}

func (t *borrowTx) GetRequestForUpdate(ctx context.Context, requestID string) (*domain.BorrowRequest, error) {
	if _, err := parseUUID(requestID, "borrow request"); err != nil {
		return nil, domain.ErrRequestNotFound
	}

	query := `SELECT ` + borrowColumns + ` FROM borrow_requests WHERE id = $1 FOR UPDATE`

	request, err := scanBorrowRequest(t.tx.QueryRow(ctx, query, requestID))
	if err != nil {
		return nil, notFound(err, domain.ErrRequestNotFound)
	}
	return request, nil
}

func (t *borrowTx) UpdateRequest(ctx context.Context, request *domain.BorrowRequest) error {
	query := `
		UPDATE borrow_requests
		SET status = $2, due_date = $3, return_date = $4
		WHERE id = $1
	`

	tag, err := t.tx.Exec(ctx, query,
		request.ID, request.Status, request.DueDate, request.ReturnDate)
	if err != nil {
		return fmt.Errorf("failed to update borrow request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (t *borrowTx) GetItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error) {
	return getItemForUpdate(ctx, t.tx, itemID)
}

func (t *borrowTx) UpdateItemStatus(ctx context.Context, itemID, status string, conditionScore *int) error {
	return updateItemStatus(ctx, t.tx, itemID, status, conditionScore)
}
