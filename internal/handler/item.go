package handler

import (
	"net/http"

	"github.com/shareshelf/shareshelf/internal/item"
	"github.com/shareshelf/shareshelf/internal/logger"
)

// SubmitItemRequest represents the request to list a new item.
type SubmitItemRequest struct {
	Name          string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Category      string `json:"category" validate:"required,max=50"`
	Description   string `json:"description" validate:"max=2000"`
	OwnershipType string `json:"ownership_type" validate:"required,ownership_type"`
}

// UpdateItemRequest represents the request to edit an item's listing details.
type UpdateItemRequest struct {
	Name          string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Category      string `json:"category" validate:"required,max=50"`
	Description   string `json:"description" validate:"max=2000"`
	OwnershipType string `json:"ownership_type" validate:"required,ownership_type"`
}

// InspectItemRequest records an inspection outcome.
type InspectItemRequest struct {
	ConditionRating int    `json:"condition_rating" validate:"required,gte=1,lte=5"`
	Notes           string `json:"notes" validate:"max=2000"`
}

// ApproveItemRequest approves an item, optionally attaching a star rating.
type ApproveItemRequest struct {
	Stars   *int   `json:"stars,omitempty" validate:"omitempty,gte=0,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// RejectItemRequest rejects an item with a reason.
type RejectItemRequest struct {
	Comment string `json:"comment" validate:"required,max=2000"`
}

// SetItemStatusRequest overrides an item's status.
type SetItemStatusRequest struct {
	Status string `json:"status" validate:"required,item_status"`
}

// HandleSubmitItem handles listing a new item for verification
// @Summary Submit an item
// @Description List a new item. It enters the verification queue as PENDING_VERIFICATION.
// @Tags items
// @Accept json
// @Produce json
// @Param request body SubmitItemRequest true "Item details"
// @Success 201 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /items [post]
func HandleSubmitItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}

		var req SubmitItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit item"); err != nil {
			return
		}

		created, err := svc.Submit(r.Context(), actor, item.SubmitInput{
			Name:          req.Name,
			Category:      req.Category,
			Description:   req.Description,
			OwnershipType: req.OwnershipType,
		})
		if err != nil {
			respondServiceError(w, r, "Submit item", err)
			return
		}

		log.Info("Item submitted", "item_id", created.ID, "owner_id", actor.ID)
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetItem returns one item with its inspection report and rating when
// the caller may see them
// @Summary Get an item
// @Tags items
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 200 {object} item.Detail
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [get]
func HandleGetItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		detail, err := svc.Get(r.Context(), ActorFromContext(r.Context()), itemID)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}

		respondJSON(w, http.StatusOK, detail)
	}
}

// HandleListItems lists the items visible to the caller
// @Summary List items
// @Description Customers see approved items plus their own; staff see everything.
// @Tags items
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by status (staff only)"
// @Success 200 {object} DataResponse
// @Router /items [get]
func HandleListItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := item.ListFilter{
			Category: GetOptionalQueryParam(r, "category", ""),
			Status:   GetOptionalQueryParam(r, "status", ""),
		}

		items, err := svc.List(r.Context(), ActorFromContext(r.Context()), filter)
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleListPendingItems lists the verification queue
// @Summary List pending items
// @Description Staff-only view of items awaiting inspection
// @Tags items
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 403 {object} ErrorResponse
// @Router /items/pending [get]
func HandleListPendingItems(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}

		items, err := svc.ListPending(r.Context(), actor)
		if err != nil {
			respondServiceError(w, r, "List pending items", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

// HandleUpdateItem edits a listing. Owner only.
// @Summary Update an item
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param request body UpdateItemRequest true "Updated details"
// @Success 200 {object} domain.Item
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [put]
func HandleUpdateItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		var req UpdateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
			return
		}

		updated, err := svc.Update(r.Context(), actor, itemID, item.UpdateInput{
			Name:          req.Name,
			Category:      req.Category,
			Description:   req.Description,
			OwnershipType: req.OwnershipType,
		})
		if err != nil {
			respondServiceError(w, r, "Update item", err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteItem removes a listing. Owner only.
// @Summary Delete an item
// @Tags items
// @Produce json
// @Param itemID path string true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID} [delete]
func HandleDeleteItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), actor, itemID); err != nil {
			respondServiceError(w, r, "Delete item", err)
			return
		}

		log.Info("Item deleted", "item_id", itemID, "actor_id", actor.ID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item deleted"})
	}
}

// HandleInspectItem records an inspection and resolves the item
// @Summary Inspect an item
// @Description Staff record a condition rating; the item is approved or rejected based on it.
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param request body InspectItemRequest true "Inspection outcome"
// @Success 200 {object} domain.Item
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /items/{itemID}/inspect [post]
func HandleInspectItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		var req InspectItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Inspect item"); err != nil {
			return
		}

		inspected, err := svc.Inspect(r.Context(), actor, itemID, req.ConditionRating, req.Notes)
		if err != nil {
			respondServiceError(w, r, "Inspect item", err)
			return
		}

		log.Info("Item inspected", "item_id", itemID, "status", inspected.Status, "staff_id", actor.ID)
		respondJSON(w, http.StatusOK, inspected)
	}
}

// HandleApproveItem approves a pending item directly
// @Summary Approve an item
// @Description Staff approve a pending item, optionally rating it. The owner is credited reward points.
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param request body ApproveItemRequest true "Approval details"
// @Success 200 {object} domain.Item
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID}/approve [post]
func HandleApproveItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		var req ApproveItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Approve item"); err != nil {
			return
		}

		approved, err := svc.Approve(r.Context(), actor, itemID, req.Stars, req.Comment)
		if err != nil {
			respondServiceError(w, r, "Approve item", err)
			return
		}

		log.Info("Item approved", "item_id", itemID, "staff_id", actor.ID)
		respondJSON(w, http.StatusOK, approved)
	}
}

// HandleRejectItem rejects a pending item
// @Summary Reject an item
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param request body RejectItemRequest true "Rejection reason"
// @Success 200 {object} domain.Item
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /items/{itemID}/reject [post]
func HandleRejectItem(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		var req RejectItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Reject item"); err != nil {
			return
		}

		rejected, err := svc.Reject(r.Context(), actor, itemID, req.Comment)
		if err != nil {
			respondServiceError(w, r, "Reject item", err)
			return
		}

		log.Info("Item rejected", "item_id", itemID, "staff_id", actor.ID)
		respondJSON(w, http.StatusOK, rejected)
	}
}

// HandleSetItemStatus overrides an item's status. Staff only.
// @Summary Set item status
// @Tags items
// @Accept json
// @Produce json
// @Param itemID path string true "Item ID"
// @Param request body SetItemStatusRequest true "New status"
// @Success 200 {object} domain.Item
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /items/{itemID}/status [put]
func HandleSetItemStatus(svc item.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		itemID, ok := GetPathParam(r, w, "itemID")
		if !ok {
			return
		}

		var req SetItemStatusRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set item status"); err != nil {
			return
		}

		updated, err := svc.SetStatus(r.Context(), actor, itemID, req.Status)
		if err != nil {
			respondServiceError(w, r, "Set item status", err)
			return
		}

		log.Info("Item status set", "item_id", itemID, "status", req.Status, "staff_id", actor.ID)
		respondJSON(w, http.StatusOK, updated)
	}
}
