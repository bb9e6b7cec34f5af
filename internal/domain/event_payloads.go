package domain

// ItemLifecyclePayload is the event payload for item.* lifecycle events
type ItemLifecyclePayload struct {
	ItemID    string `json:"item_id"`
	OwnerID   string `json:"owner_id"`
	ActorID   string `json:"actor_id"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// BorrowLifecyclePayload is the event payload for borrow.* lifecycle events
type BorrowLifecyclePayload struct {
	RequestID  string `json:"request_id"`
	ItemID     string `json:"item_id"`
	BorrowerID string `json:"borrower_id"`
	ActorID    string `json:"actor_id"`
	Status     string `json:"status"`
	Timestamp  int64  `json:"timestamp"`
}

// BorrowOverduePayload is the event payload for borrow.overdue events
type BorrowOverduePayload struct {
	RequestID  string `json:"request_id"`
	ItemID     string `json:"item_id"`
	BorrowerID string `json:"borrower_id"`
	DueDate    int64  `json:"due_date"`
	Timestamp  int64  `json:"timestamp"`
}

// PointsCreditedPayload is the event payload for points.credited events
type PointsCreditedPayload struct {
	UserID    string `json:"user_id"`
	Points    int    `json:"points"`
	Action    string `json:"action"`
	ItemID    string `json:"item_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
