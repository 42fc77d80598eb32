package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandler_Health(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response) != 4 {
		t.Errorf("expected exactly 4 fields, got %v", response)
	}

	if response["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %s", response["status"])
	}

	if response["environment"] != "development" {
		t.Errorf("expected environment 'development', got %s", response["environment"])
	}

	if response["version"] != "1.0.0" {
		t.Errorf("expected version '1.0.0', got %s", response["version"])
	}

	if !timestampPattern.MatchString(response["timestamp"]) {
		t.Errorf("timestamp %q is not ISO-8601 UTC with trailing Z", response["timestamp"])
	}
}
