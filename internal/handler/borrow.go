package handler

import (
	"net/http"

	"github.com/shareshelf/shareshelf/internal/borrow"
	"github.com/shareshelf/shareshelf/internal/logger"
)

// BorrowRequestRequest represents the request to borrow an item.
type BorrowRequestRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// HandleCreateBorrowRequest opens a borrow request for an item
// @Summary Request to borrow an item
// @Description Customers request an item. One active request per borrower per item.
// @Tags borrow
// @Accept json
// @Produce json
// @Param request body BorrowRequestRequest true "Item to borrow"
// @Success 201 {object} domain.BorrowRequest
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /borrow-requests [post]
func HandleCreateBorrowRequest(svc borrow.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}

		var req BorrowRequestRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create borrow request"); err != nil {
			return
		}

		created, err := svc.Request(r.Context(), actor, req.ItemID)
		if err != nil {
			respondServiceError(w, r, "Create borrow request", err)
			return
		}

		log.Info("Borrow request created", "request_id", created.ID, "item_id", req.ItemID, "borrower_id", actor.ID)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetBorrowRequest returns one borrow request
// @Summary Get a borrow request
// @Description Visible to the borrower, the item owner, and staff
// @Tags borrow
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} domain.BorrowRequest
// @Failure 404 {object} ErrorResponse
// @Router /borrow-requests/{requestID} [get]
func HandleGetBorrowRequest(svc borrow.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		requestID, ok := GetPathParam(r, w, "requestID")
		if !ok {
			return
		}

		request, err := svc.Get(r.Context(), actor, requestID)
		if err != nil {
			respondServiceError(w, r, "Get borrow request", err)
			return
		}

		respondJSON(w, http.StatusOK, request)
	}
}

// HandleListBorrowRequests lists the borrow requests visible to the caller
// @Summary List borrow requests
// @Description Customers see requests they made plus requests for their items; staff see everything.
// @Tags borrow
// @Produce json
// @Success 200 {object} DataResponse
// @Router /borrow-requests [get]
func HandleListBorrowRequests(svc borrow.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}

		requests, err := svc.List(r.Context(), actor)
		if err != nil {
			respondServiceError(w, r, "List borrow requests", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: requests})
	}
}

// HandleApproveBorrowRequest approves a pending borrow request
// @Summary Approve a borrow request
// @Description The item owner approves a pending request. The item becomes RESERVED and a due date is set.
// @Tags borrow
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} domain.BorrowRequest
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /borrow-requests/{requestID}/approve [post]
func HandleApproveBorrowRequest(svc borrow.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		requestID, ok := GetPathParam(r, w, "requestID")
		if !ok {
			return
		}

		approved, err := svc.Approve(r.Context(), actor, requestID)
		if err != nil {
			respondServiceError(w, r, "Approve borrow request", err)
			return
		}

		log.Info("Borrow request approved", "request_id", requestID, "owner_id", actor.ID)
		respondJSON(w, http.StatusOK, approved)
	}
}

// HandleDenyBorrowRequest denies a pending borrow request
// @Summary Deny a borrow request
// @Description The item owner denies a pending request. The item is untouched.
// @Tags borrow
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} domain.BorrowRequest
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /borrow-requests/{requestID}/deny [post]
func HandleDenyBorrowRequest(svc borrow.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		requestID, ok := GetPathParam(r, w, "requestID")
		if !ok {
			return
		}

		denied, err := svc.Deny(r.Context(), actor, requestID)
		if err != nil {
			respondServiceError(w, r, "Deny borrow request", err)
			return
		}

		log.Info("Borrow request denied", "request_id", requestID, "owner_id", actor.ID)
		respondJSON(w, http.StatusOK, denied)
	}
}

// HandleReturnBorrowRequest closes out an active loan
// @Summary Return a borrowed item
// @Description The borrower returns the item. The item moves to RETURNED and the slot frees up.
// @Tags borrow
// @Produce json
// @Param requestID path string true "Request ID"
// @Success 200 {object} domain.BorrowRequest
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /borrow-requests/{requestID}/return [post]
func HandleReturnBorrowRequest(svc borrow.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		requestID, ok := GetPathParam(r, w, "requestID")
		if !ok {
			return
		}

		returned, err := svc.Return(r.Context(), actor, requestID)
		if err != nil {
			respondServiceError(w, r, "Return borrowed item", err)
			return
		}

		log.Info("Borrowed item returned", "request_id", requestID, "borrower_id", actor.ID)
		respondJSON(w, http.StatusOK, returned)
	}
}
