package domain

import "time"

// Reward action constants. Unused actions are reserved for future flows,
// not errors.
const (
	ActionItemApproved     = "ITEM_APPROVED"
	ActionItemBorrowed     = "ITEM_BORROWED"
	ActionItemReturned     = "ITEM_RETURNED"
	ActionProductSold      = "PRODUCT_SOLD"
	ActionProductExchanged = "PRODUCT_EXCHANGED"
	ActionProductShared    = "PRODUCT_SHARED"
	ActionRedeemed         = "REDEEMED"
)

// UserPoints is the per-user running balance, maintained incrementally as
// transactions are appended.
type UserPoints struct {
	UserID      string    `json:"user_id"`
	TotalPoints int       `json:"total_points"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PointTransaction is one append-only ledger entry. Points are signed:
// credits positive, redemptions negative.
type PointTransaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Points      int       `json:"points"`
	Action      string    `json:"action"`
	ItemID      *string   `json:"item_id,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsValidRewardAction checks if an action string is one of the enumerated actions
func IsValidRewardAction(action string) bool {
	switch action {
	case ActionItemApproved, ActionItemBorrowed, ActionItemReturned,
		ActionProductSold, ActionProductExchanged, ActionProductShared, ActionRedeemed:
		return true
	}
	return false
}
