package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.approved")
const (
	// EventTypeItemSubmitted is published when a customer lists a new item
	EventTypeItemSubmitted = "item.submitted"

	// EventTypeItemInspected is published when staff files an inspection report
	EventTypeItemInspected = "item.inspected"

	// EventTypeItemApproved is published when an item passes verification
	EventTypeItemApproved = "item.approved"

	// EventTypeItemRejected is published when an item fails verification
	EventTypeItemRejected = "item.rejected"

	// EventTypeBorrowRequested is published when a borrower files a request
	EventTypeBorrowRequested = "borrow.requested"

	// EventTypeBorrowApproved is published when an owner approves a request
	EventTypeBorrowApproved = "borrow.approved"

	// EventTypeBorrowDenied is published when an owner denies a request
	EventTypeBorrowDenied = "borrow.denied"

	// EventTypeBorrowReturned is published when a borrower returns an item
	EventTypeBorrowReturned = "borrow.returned"

	// EventTypeBorrowOverdue is published by the sweep when an approved loan
	// passes its due date without being returned
	EventTypeBorrowOverdue = "borrow.overdue"

	// EventTypePointsCredited is published when the rewards ledger records a credit
	EventTypePointsCredited = "points.credited"
)
