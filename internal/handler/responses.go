package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped
// HTTP response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Warn(opName+" failed", "error", err)
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Account messages
	ErrMsgUserNotFoundError  = "User not found"
	ErrMsgUsernameTakenError = "That username is already taken"
	ErrMsgBadCredentialsErr  = "Invalid username or password"
	ErrMsgUnauthorizedError  = "Authentication required"
	ErrMsgForbiddenError     = "You are not allowed to do that"

	// Item messages
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgAlreadyInspectedError = "Item has already been inspected"
	ErrMsgInvalidStatusError    = "Unknown item status"
	ErrMsgInvalidOwnershipError = "Unknown ownership type"
	ErrMsgInvalidRatingError    = "Condition rating must be between 1 and 5"
	ErrMsgInvalidStarsError     = "Stars must be between 0 and 5"
	ErrMsgNotItemOwnerError     = "Only the item owner can do that"

	// Borrow messages
	ErrMsgRequestNotFoundError   = "Borrow request not found"
	ErrMsgAlreadyProcessedError  = "That request has already been processed"
	ErrMsgNotBorrowedError       = "That request is not an active loan"
	ErrMsgActiveRequestError     = "You already have an active request for this item"
	ErrMsgNotBorrowerError       = "Only the borrower can do that"

	// Rewards messages
	ErrMsgInvalidActionError = "Unknown reward action"

	// Messaging messages
	ErrMsgMessageNotFoundError = "Message not found"
	ErrMsgNotRecipientError    = "Only the recipient can do that"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// user-facing messages: validation 400, unauthenticated 401, forbidden 403,
// not found 404, conflict 409, everything else 500.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	// Validation
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, ErrMsgInvalidStatusError
	case errors.Is(err, domain.ErrInvalidOwnershipType):
		return http.StatusBadRequest, ErrMsgInvalidOwnershipError
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, ErrMsgInvalidRatingError
	case errors.Is(err, domain.ErrInvalidStars):
		return http.StatusBadRequest, ErrMsgInvalidStarsError
	case errors.Is(err, domain.ErrInvalidRewardAction):
		return http.StatusBadRequest, ErrMsgInvalidActionError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, ErrMsgUsernameTakenError

	// Authentication
	case errors.Is(err, domain.ErrBadCredentials):
		return http.StatusUnauthorized, ErrMsgBadCredentialsErr
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgUnauthorizedError

	// Authorization
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrMsgForbiddenError
	case errors.Is(err, domain.ErrNotItemOwner):
		return http.StatusForbidden, ErrMsgNotItemOwnerError
	case errors.Is(err, domain.ErrNotBorrower):
		return http.StatusForbidden, ErrMsgNotBorrowerError
	case errors.Is(err, domain.ErrNotRecipient):
		return http.StatusForbidden, ErrMsgNotRecipientError

	// Not found
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrRequestNotFound):
		return http.StatusNotFound, ErrMsgRequestNotFoundError
	case errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, ErrMsgMessageNotFoundError

	// Conflict
	case errors.Is(err, domain.ErrItemAlreadyInspected):
		return http.StatusConflict, ErrMsgAlreadyInspectedError
	case errors.Is(err, domain.ErrRequestAlreadyProcessed):
		return http.StatusConflict, ErrMsgAlreadyProcessedError
	case errors.Is(err, domain.ErrRequestNotBorrowed):
		return http.StatusConflict, ErrMsgNotBorrowedError
	case errors.Is(err, domain.ErrActiveRequestExists):
		return http.StatusConflict, ErrMsgActiveRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
