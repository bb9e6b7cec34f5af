// Package policy holds the access rules as pure predicates over an acting
// user and the resource in question. Services evaluate these explicitly at
// the top of each operation; the actor is always an argument, never pulled
// from ambient state.
package policy

import "github.com/shareshelf/shareshelf/internal/domain"

// IsCustomer reports whether the actor holds the customer role.
func IsCustomer(actor *domain.User) bool {
	return actor != nil && actor.Role == domain.RoleCustomer
}

// IsStaff reports whether the actor holds the staff role.
func IsStaff(actor *domain.User) bool {
	return actor != nil && actor.Role == domain.RoleStaff
}

// IsOwner reports whether the actor owns the resource identified by ownerID.
func IsOwner(actor *domain.User, ownerID string) bool {
	return actor != nil && actor.ID == ownerID
}

// CanViewItem implements the read-path visibility rule: everyone sees
// approved items, owners see their own regardless of status, staff see all.
func CanViewItem(actor *domain.User, item *domain.Item) bool {
	if item == nil {
		return false
	}
	if item.Status == domain.ItemStatusApproved {
		return true
	}
	if actor == nil {
		return false
	}
	return IsStaff(actor) || IsOwner(actor, item.OwnerID)
}
