package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound   = "user not found"
	ErrMsgUsernameTaken  = "username already taken"
	ErrMsgBadCredentials = "invalid username or password"

	// Authorization errors
	ErrMsgUnauthorized = "authentication required"
	ErrMsgForbidden    = "operation not permitted for this role"
	ErrMsgNotItemOwner = "only the item owner may do this"
	ErrMsgNotBorrower  = "only the borrower may do this"

	// Item errors
	ErrMsgItemNotFound         = "item not found"
	ErrMsgItemAlreadyInspected = "item has already been inspected"
	ErrMsgInvalidStatus        = "invalid item status"
	ErrMsgInvalidOwnershipType = "invalid ownership type"
	ErrMsgInvalidRating        = "rating must be between 1 and 5"
	ErrMsgInvalidStars         = "stars must be between 0 and 5"

	// Borrow errors
	ErrMsgRequestNotFound         = "borrow request not found"
	ErrMsgRequestAlreadyProcessed = "request already processed"
	ErrMsgRequestNotBorrowed      = "request is not currently borrowed"
	ErrMsgActiveRequestExists     = "an active request for this item already exists"

	// Rewards errors
	ErrMsgInvalidRewardAction = "invalid reward action"

	// Messaging errors
	ErrMsgMessageNotFound = "message not found"
	ErrMsgNotRecipient    = "only the recipient may do this"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound   = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken  = errors.New(ErrMsgUsernameTaken)
	ErrBadCredentials = errors.New(ErrMsgBadCredentials)

	// Authorization errors
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)
	ErrForbidden    = errors.New(ErrMsgForbidden)
	ErrNotItemOwner = errors.New(ErrMsgNotItemOwner)
	ErrNotBorrower  = errors.New(ErrMsgNotBorrower)

	// Item errors. Absent items and items in the wrong state both surface as
	// ErrItemNotFound so callers cannot probe other users' pipelines.
	ErrItemNotFound         = errors.New(ErrMsgItemNotFound)
	ErrItemAlreadyInspected = errors.New(ErrMsgItemAlreadyInspected)
	ErrInvalidStatus        = errors.New(ErrMsgInvalidStatus)
	ErrInvalidOwnershipType = errors.New(ErrMsgInvalidOwnershipType)
	ErrInvalidRating        = errors.New(ErrMsgInvalidRating)
	ErrInvalidStars         = errors.New(ErrMsgInvalidStars)

	// Borrow errors
	ErrRequestNotFound         = errors.New(ErrMsgRequestNotFound)
	ErrRequestAlreadyProcessed = errors.New(ErrMsgRequestAlreadyProcessed)
	ErrRequestNotBorrowed      = errors.New(ErrMsgRequestNotBorrowed)
	ErrActiveRequestExists     = errors.New(ErrMsgActiveRequestExists)

	// Rewards errors
	ErrInvalidRewardAction = errors.New(ErrMsgInvalidRewardAction)

	// Messaging errors
	ErrMessageNotFound = errors.New(ErrMsgMessageNotFound)
	ErrNotRecipient    = errors.New(ErrMsgNotRecipient)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
