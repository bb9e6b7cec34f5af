package domain

// Reward amounts credited by lifecycle transitions
const (
	// PointsItemApproved is credited to the owner when their item passes
	// verification.
	PointsItemApproved = 10
)

// Inspection thresholds
const (
	// MinApprovalRating is the lowest inspection rating that approves an item.
	// Anything below rejects it.
	MinApprovalRating = 3

	// Rating bounds
	MinConditionRating = 1
	MaxConditionRating = 5
	MinStars           = 0
	MaxStars           = 5
)
