package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/mocks"
)

func TestHandleCreateBorrowRequest(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockBorrowService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: BorrowRequestRequest{ItemID: "item-1"},
			setupMock: func(m *mocks.MockBorrowService) {
				m.On("Request", mock.Anything, testActorCustomer, "item-1").
					Return(&domain.BorrowRequest{ID: "request-1", ItemID: "item-1", Status: domain.BorrowStatusPending}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"PENDING"`,
		},
		{
			name:        "Duplicate Active Request",
			requestBody: BorrowRequestRequest{ItemID: "item-1"},
			setupMock: func(m *mocks.MockBorrowService) {
				m.On("Request", mock.Anything, testActorCustomer, "item-1").
					Return(nil, domain.ErrActiveRequestExists)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgActiveRequestError,
		},
		{
			name:           "Invalid Request - Missing Item",
			requestBody:    BorrowRequestRequest{},
			setupMock:      func(m *mocks.MockBorrowService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "item_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockBorrowService(t)
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/borrow-requests", bytes.NewBuffer(body))
			req = req.WithContext(WithActor(req.Context(), testActorCustomer))
			w := httptest.NewRecorder()

			HandleCreateBorrowRequest(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleApproveBorrowRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockBorrowService(t)
		mockSvc.On("Approve", mock.Anything, testActorCustomer, "request-1").
			Return(&domain.BorrowRequest{ID: "request-1", Status: domain.BorrowStatusApproved}, nil)

		req := httptest.NewRequest("POST", "/borrow-requests/request-1/approve", nil)
		req = req.WithContext(WithActor(req.Context(), testActorCustomer))
		req = withChiParam(req, "requestID", "request-1")
		w := httptest.NewRecorder()

		HandleApproveBorrowRequest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"APPROVED"`)
	})

	t.Run("Not Owner", func(t *testing.T) {
		mockSvc := mocks.NewMockBorrowService(t)
		mockSvc.On("Approve", mock.Anything, testActorCustomer, "request-1").
			Return(nil, domain.ErrNotItemOwner)

		req := httptest.NewRequest("POST", "/borrow-requests/request-1/approve", nil)
		req = req.WithContext(WithActor(req.Context(), testActorCustomer))
		req = withChiParam(req, "requestID", "request-1")
		w := httptest.NewRecorder()

		HandleApproveBorrowRequest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotItemOwnerError)
	})

	t.Run("Already Processed", func(t *testing.T) {
		mockSvc := mocks.NewMockBorrowService(t)
		mockSvc.On("Approve", mock.Anything, testActorCustomer, "request-1").
			Return(nil, domain.ErrRequestAlreadyProcessed)

		req := httptest.NewRequest("POST", "/borrow-requests/request-1/approve", nil)
		req = req.WithContext(WithActor(req.Context(), testActorCustomer))
		req = withChiParam(req, "requestID", "request-1")
		w := httptest.NewRecorder()

		HandleApproveBorrowRequest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleReturnBorrowRequest(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockBorrowService(t)
		mockSvc.On("Return", mock.Anything, testActorCustomer, "request-1").
			Return(&domain.BorrowRequest{ID: "request-1", Status: domain.BorrowStatusReturned}, nil)

		req := httptest.NewRequest("POST", "/borrow-requests/request-1/return", nil)
		req = req.WithContext(WithActor(req.Context(), testActorCustomer))
		req = withChiParam(req, "requestID", "request-1")
		w := httptest.NewRecorder()

		HandleReturnBorrowRequest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"RETURNED"`)
	})

	t.Run("Not Borrower", func(t *testing.T) {
		mockSvc := mocks.NewMockBorrowService(t)
		mockSvc.On("Return", mock.Anything, testActorCustomer, "request-1").
			Return(nil, domain.ErrNotBorrower)

		req := httptest.NewRequest("POST", "/borrow-requests/request-1/return", nil)
		req = req.WithContext(WithActor(req.Context(), testActorCustomer))
		req = withChiParam(req, "requestID", "request-1")
		w := httptest.NewRecorder()

		HandleReturnBorrowRequest(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotBorrowerError)
	})
}

func TestHandleListBorrowRequests(t *testing.T) {
	mockSvc := mocks.NewMockBorrowService(t)
	mockSvc.On("List", mock.Anything, testActorCustomer).
		Return([]domain.BorrowRequest{{ID: "request-1"}, {ID: "request-2"}}, nil)

	req := httptest.NewRequest("GET", "/borrow-requests", nil)
	req = req.WithContext(WithActor(req.Context(), testActorCustomer))
	w := httptest.NewRecorder()

	HandleListBorrowRequests(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"request-2"`)
}
