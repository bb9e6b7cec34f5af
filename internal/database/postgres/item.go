package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/repository"
)

type itemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository creates a new PostgreSQL item repository
func NewItemRepository(db *pgxpool.Pool) repository.Item {
	return &itemRepository{db: db}
}

const itemColumns = `id, owner_id, name, category, description, ownership_type, condition_score, status, created_at`

func scanItem(row interface{ Scan(dest ...any) error }) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.OwnerID, &it.Name, &it.Category, &it.Description,
		&it.OwnershipType, &it.ConditionScore, &it.Status, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) InsertItem(ctx context.Context, item *domain.Item) error {
	item.ID = newID(item.ID)

	query := `
		INSERT INTO items (id, owner_id, name, category, description, ownership_type, condition_score, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		item.ID, item.OwnerID, item.Name, item.Category, item.Description,
		item.OwnershipType, item.ConditionScore, item.Status,
	).Scan(&item.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

func (r *itemRepository) GetItemByID(ctx context.Context, itemID string) (*domain.Item, error) {
	if _, err := parseUUID(itemID, "item"); err != nil {
		return nil, domain.ErrItemNotFound
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	item, err := scanItem(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		return nil, notFound(err, domain.ErrItemNotFound)
	}
	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + itemColumns + ` FROM items WHERE 1=1`)

	args := []any{}
	argNum := 1

	if filter.Status != "" {
		fmt.Fprintf(&queryBuilder, " AND status = $%d", argNum)
		args = append(args, filter.Status)
		argNum++
	}

	if filter.OwnerID != "" {
		fmt.Fprintf(&queryBuilder, " AND owner_id = $%d", argNum)
		args = append(args, filter.OwnerID)
		argNum++
	}

	if filter.Category != "" {
		fmt.Fprintf(&queryBuilder, " AND category = $%d", argNum)
		args = append(args, filter.Category)
		argNum++
	}

	queryBuilder.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return scanItems(rows)
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	query := `
		UPDATE items
		SET name = $2, category = $3, description = $4, ownership_type = $5
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.Description, item.OwnershipType)
	if err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, itemID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *itemRepository) GetInspectionReport(ctx context.Context, itemID string) (*domain.InspectionReport, error) {
	query := `
		SELECT id, item_id, staff_id, condition_rating, notes, inspected_at
		FROM inspection_reports
		WHERE item_id = $1
	`

	var rep domain.InspectionReport
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&rep.ID, &rep.ItemID, &rep.StaffID, &rep.ConditionRating, &rep.Notes, &rep.InspectedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Not inspected yet
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", domain.ErrMsgDatabaseError, err)
	}
	return &rep, nil
}

func (r *itemRepository) GetRating(ctx context.Context, itemID string) (*domain.Rating, error) {
	query := `SELECT id, item_id, staff_id, stars, comment FROM ratings WHERE item_id = $1`

	var rating domain.Rating
	err := r.db.QueryRow(ctx, query, itemID).Scan(
		&rating.ID, &rating.ItemID, &rating.StaffID, &rating.Stars, &rating.Comment)
	if errors.Is(err, pgx.ErrNoRows) {
		// Never rated
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", domain.ErrMsgDatabaseError, err)
	}
	return &rating, nil
}

func (r *itemRepository) BeginTx(ctx context.Context) (repository.ItemTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &itemTx{tx: tx}, nil
}

type itemTx struct {
	tx pgx.Tx
}

func (t *itemTx) Commit(ctx context.Context) error   { return t.tx.Commit(ctx) }
func (t *itemTx) Rollback(ctx context.Context) error { return t.tx.Rollback(ctx) }

func (t *itemTx) GetItemForUpdate(ctx context.Context, itemID string) (*domain.Item, error) {
	return getItemForUpdate(ctx, t.tx, itemID)
}

func (t *itemTx) UpdateItemStatus(ctx context.Context, itemID, status string, conditionScore *int) error {
	return updateItemStatus(ctx, t.tx, itemID, status, conditionScore)
}

func (t *itemTx) InsertInspectionReport(ctx context.Context, report *domain.InspectionReport) error {
	report.ID = newID(report.ID)

	query := `
		INSERT INTO inspection_reports (id, item_id, staff_id, condition_rating, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING inspected_at
	`

	err := t.tx.QueryRow(ctx, query,
		report.ID, report.ItemID, report.StaffID, report.ConditionRating, report.Notes,
	).Scan(&report.InspectedAt)
	if err != nil {
		if isUniqueViolation(err, "inspection_reports_item_id_key") {
			return domain.ErrItemAlreadyInspected
		}
		return fmt.Errorf("failed to insert inspection report: %w", err)
	}
	return nil
}

func (t *itemTx) UpsertRating(ctx context.Context, rating *domain.Rating) error {
	rating.ID = newID(rating.ID)

	query := `
		INSERT INTO ratings (id, item_id, staff_id, stars, comment)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_id) DO UPDATE
		SET staff_id = EXCLUDED.staff_id, stars = EXCLUDED.stars, comment = EXCLUDED.comment
	`

	if _, err := t.tx.Exec(ctx, query,
		rating.ID, rating.ItemID, rating.StaffID, rating.Stars, rating.Comment); err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	return nil
}

func (t *itemTx) InsertPointTransaction(ctx context.Context, txn *domain.PointTransaction) error {
	return insertPointTransaction(ctx, t.tx, txn)
}

func (t *itemTx) AddPoints(ctx context.Context, userID string, delta int) (*domain.UserPoints, error) {
	return addPoints(ctx, t.tx, userID, delta)
}

// ---- Shared row helpers (used by item and borrow transactions) ----

func getItemForUpdate(ctx context.Context, q dbtx, itemID string) (*domain.Item, error) {
	if _, err := parseUUID(itemID, "item"); err != nil {
		return nil, domain.ErrItemNotFound
	}

	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1 FOR UPDATE`

	item, err := scanItem(q.QueryRow(ctx, query, itemID))
	if err != nil {
		return nil, notFound(err, domain.ErrItemNotFound)
	}
	return item, nil
}

func updateItemStatus(ctx context.Context, q dbtx, itemID, status string, conditionScore *int) error {
	// A nil conditionScore leaves the stored score untouched.
	query := `
		UPDATE items
		SET status = $2, condition_score = COALESCE($3, condition_score)
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, itemID, status, conditionScore)
	if err != nil {
		return fmt.Errorf("failed to update item status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func insertPointTransaction(ctx context.Context, q dbtx, txn *domain.PointTransaction) error {
	txn.ID = newID(txn.ID)

	query := `
		INSERT INTO point_transactions (id, user_id, points, action, item_id, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		txn.ID, txn.UserID, txn.Points, txn.Action, txn.ItemID, txn.Description,
	).Scan(&txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert point transaction: %w", err)
	}
	return nil
}

func addPoints(ctx context.Context, q dbtx, userID string, delta int) (*domain.UserPoints, error) {
	query := `
		INSERT INTO user_points (user_id, total_points, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET total_points = user_points.total_points + EXCLUDED.total_points, updated_at = NOW()
		RETURNING user_id, total_points, updated_at
	`

	var up domain.UserPoints
	err := q.QueryRow(ctx, query, userID, delta).Scan(&up.UserID, &up.TotalPoints, &up.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add points: %w", err)
	}
	return &up, nil
}
