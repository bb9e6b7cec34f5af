package domain

import "time"

// Ownership type constants - how an item is offered to other users
const (
	OwnershipSell     = "SELL"
	OwnershipExchange = "EXCHANGE"
	OwnershipShare    = "SHARE"
)

// Item status constants - the item lifecycle
const (
	ItemStatusPendingVerification = "PENDING_VERIFICATION"
	ItemStatusApproved            = "APPROVED"
	ItemStatusAvailable           = "AVAILABLE"
	ItemStatusReserved            = "RESERVED"
	ItemStatusCheckedOut          = "CHECKED_OUT"
	ItemStatusReturned            = "RETURNED"
	ItemStatusRejected            = "REJECTED"
)

// Item represents a listed item
type Item struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Description    string    `json:"description"`
	OwnershipType  string    `json:"ownership_type"`
	ConditionScore *int      `json:"condition_score,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// InspectionReport records a staff member's inspection of an item.
// At most one report exists per item.
type InspectionReport struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	StaffID         string    `json:"staff_id"`
	ConditionRating int       `json:"condition_rating"`
	Notes           string    `json:"notes"`
	InspectedAt     time.Time `json:"inspected_at"`
}

// Rating is a staff quality rating attached to an item during approval or
// rejection. One per item; re-rating replaces the previous entry.
type Rating struct {
	ID      string `json:"id"`
	ItemID  string `json:"item_id"`
	StaffID string `json:"staff_id"`
	Stars   int    `json:"stars"`
	Comment string `json:"comment"`
}

// IsValidOwnershipType checks if an ownership type string is valid
func IsValidOwnershipType(t string) bool {
	return t == OwnershipSell || t == OwnershipExchange || t == OwnershipShare
}

// IsValidItemStatus checks if a status string is one of the known item statuses
func IsValidItemStatus(status string) bool {
	switch status {
	case ItemStatusPendingVerification, ItemStatusApproved, ItemStatusAvailable,
		ItemStatusReserved, ItemStatusCheckedOut, ItemStatusReturned, ItemStatusRejected:
		return true
	}
	return false
}
