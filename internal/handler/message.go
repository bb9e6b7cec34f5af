package handler

import (
	"net/http"

	"github.com/shareshelf/shareshelf/internal/logger"
	"github.com/shareshelf/shareshelf/internal/messaging"
)

// SendMessageRequest represents the request to send a message.
type SendMessageRequest struct {
	RecipientID string  `json:"recipient_id" validate:"required"`
	ItemID      *string `json:"item_id,omitempty"`
	Subject     string  `json:"subject" validate:"max=200"`
	Body        string  `json:"body" validate:"required,max=5000"`
}

// HandleSendMessage delivers a message to another user
// @Summary Send a message
// @Description Send a message to another user, optionally referencing an item.
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} domain.Message
// @Failure 404 {object} ErrorResponse
// @Router /messages [post]
func HandleSendMessage(svc messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}

		var req SendMessageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Send message"); err != nil {
			return
		}

		message, err := svc.Send(r.Context(), actor, messaging.SendInput{
			RecipientID: req.RecipientID,
			ItemID:      req.ItemID,
			Subject:     req.Subject,
			Body:        req.Body,
		})
		if err != nil {
			respondServiceError(w, r, "Send message", err)
			return
		}

		log.Info("Message sent", "message_id", message.ID, "recipient_id", req.RecipientID)
		respondJSON(w, http.StatusCreated, message)
	}
}

// HandleListInbox returns the caller's received messages, newest first
// @Summary List inbox
// @Tags messages
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Router /messages [get]
func HandleListInbox(svc messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}

		messages, err := svc.Inbox(r.Context(), actor)
		if err != nil {
			respondServiceError(w, r, "List inbox", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: messages})
	}
}

// HandleListSent returns the caller's sent messages, newest first
// @Summary List sent messages
// @Tags messages
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 401 {object} ErrorResponse
// @Router /messages/sent [get]
func HandleListSent(svc messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}

		messages, err := svc.Sent(r.Context(), actor)
		if err != nil {
			respondServiceError(w, r, "List sent messages", err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: messages})
	}
}

// HandleMarkMessageRead marks a received message as read
// @Summary Mark message read
// @Description Recipient-only. Marking an already-read message is a no-op.
// @Tags messages
// @Produce json
// @Param messageID path string true "Message ID"
// @Success 200 {object} domain.Message
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages/{messageID}/read [post]
func HandleMarkMessageRead(svc messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := RequireActor(w, r)
		if !ok {
			return
		}
		messageID, ok := GetPathParam(r, w, "messageID")
		if !ok {
			return
		}

		message, err := svc.MarkRead(r.Context(), actor, messageID)
		if err != nil {
			respondServiceError(w, r, "Mark message read", err)
			return
		}

		respondJSON(w, http.StatusOK, message)
	}
}
