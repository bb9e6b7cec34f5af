package domain

import "time"

// Borrow request status constants
const (
	BorrowStatusPending  = "PENDING"
	BorrowStatusApproved = "APPROVED"
	BorrowStatusDenied   = "DENIED"
	BorrowStatusReturned = "RETURNED"
)

// BorrowRequest represents one borrower's request for one item
type BorrowRequest struct {
	ID         string     `json:"id"`
	ItemID     string     `json:"item_id"`
	BorrowerID string     `json:"borrower_id"`
	Status     string     `json:"status"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsActive reports whether the request still occupies the borrower's slot
// for this item (PENDING or APPROVED).
func (r *BorrowRequest) IsActive() bool {
	return r.Status == BorrowStatusPending || r.Status == BorrowStatusApproved
}
