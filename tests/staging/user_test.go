//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestUserEndpoints(t *testing.T) {
	userID, token := registerAndLogin(t, "CUSTOMER")

	t.Run("Me", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/user/me", nil, token)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var me struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		}
		if err := json.Unmarshal(body, &me); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if me.ID != userID {
			t.Errorf("Expected user ID %s, got %s", userID, me.ID)
		}
		if me.Role != "CUSTOMER" {
			t.Errorf("Expected role CUSTOMER, got %s", me.Role)
		}
	})

	t.Run("MeWithoutToken", func(t *testing.T) {
		resp, _ := makeRequest(t, "GET", "/api/v1/user/me", nil, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", resp.StatusCode)
		}
	})

	t.Run("LoginWrongPassword", func(t *testing.T) {
		resp, _ := makeRequest(t, "POST", "/api/v1/auth/login", map[string]string{
			"username": "does_not_exist_either_way",
			"password": "wrong-password",
		}, "")
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected status 401, got %d", resp.StatusCode)
		}
	})

	t.Run("PointsStartAtZero", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/points", nil, token)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var points struct {
			TotalPoints int `json:"total_points"`
		}
		if err := json.Unmarshal(body, &points); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if points.TotalPoints != 0 {
			t.Errorf("Expected 0 points for a fresh account, got %d", points.TotalPoints)
		}
	})
}
