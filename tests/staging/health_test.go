//go:build staging

package staging

import (
	"net/http"
	"strings"
	"testing"
)

func TestHealthCheck(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/healthz", nil, "")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestReadiness(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/readyz", nil, "")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}
}

func TestVersion(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/version", nil, "")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "version") {
		t.Errorf("Expected version field in body, got %s", string(body))
	}
}

func TestMetricsExposed(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/metrics", nil, "")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "http_requests_total") {
		t.Error("Expected http_requests_total in metrics output")
	}
}
