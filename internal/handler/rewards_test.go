package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shareshelf/shareshelf/internal/domain"
	"github.com/shareshelf/shareshelf/mocks"
)

func TestHandleGetPoints(t *testing.T) {
	t.Run("Authenticated", func(t *testing.T) {
		mockSvc := mocks.NewMockRewardsService(t)
		mockSvc.On("Balance", mock.Anything, testActorCustomer).
			Return(&domain.UserPoints{UserID: testActorCustomer.ID, TotalPoints: 25}, nil)

		req := httptest.NewRequest("GET", "/points", nil)
		req = req.WithContext(WithActor(req.Context(), testActorCustomer))
		w := httptest.NewRecorder()

		HandleGetPoints(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_points":25`)
	})

	t.Run("Anonymous", func(t *testing.T) {
		mockSvc := mocks.NewMockRewardsService(t)

		req := httptest.NewRequest("GET", "/points", nil)
		w := httptest.NewRecorder()

		HandleGetPoints(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleListPointTransactions(t *testing.T) {
	mockSvc := mocks.NewMockRewardsService(t)
	mockSvc.On("Transactions", mock.Anything, testActorCustomer).
		Return([]domain.PointTransaction{
			{ID: "txn-2", Points: 10, Action: domain.ActionItemApproved},
			{ID: "txn-1", Points: 10, Action: domain.ActionItemApproved},
		}, nil)

	req := httptest.NewRequest("GET", "/points/transactions", nil)
	req = req.WithContext(WithActor(req.Context(), testActorCustomer))
	w := httptest.NewRecorder()

	HandleListPointTransactions(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"txn-2"`)
	assert.Contains(t, w.Body.String(), domain.ActionItemApproved)
}
