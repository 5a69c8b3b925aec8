package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"learnpath-backend/internal/models"
	"learnpath-backend/internal/services"
)

// ─── Error Mapping Tests ───

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", &services.ValidationError{Fields: map[string]string{"email": "bad"}}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"conflict", &services.ConflictError{Message: "Email already registered"}, http.StatusConflict, "CONFLICT"},
		{"not found", &services.NotFoundError{Message: "Resource not found"}, http.StatusNotFound, "NOT_FOUND"},
		{"unauthorized", &services.UnauthorizedError{Message: "Invalid credentials"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", &services.ForbiddenError{Message: "Not yours"}, http.StatusForbidden, "FORBIDDEN"},
		{"rate limited", &services.RateLimitError{Message: "Slow down"}, http.StatusTooManyRequests, "RATE_LIMITED"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-ID", "req-123")

			handleServiceError(rr, req, tc.err)

			if rr.Code != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, rr.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}
			if resp.Error.Code != tc.wantCode {
				t.Errorf("Expected code %q, got %q", tc.wantCode, resp.Error.Code)
			}
			if resp.Error.RequestID != "req-123" {
				t.Errorf("Expected request id to be echoed, got %q", resp.Error.RequestID)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	writeJSON(rr, http.StatusCreated, map[string]string{"message": "ok"})

	if rr.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type 'application/json', got %q", ct)
	}

	var result map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&result); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if result["message"] != "ok" {
		t.Errorf("Expected message 'ok', got %q", result["message"])
	}
}

// ─── Request Validation Tests ───

func TestValidateActivityRequest(t *testing.T) {
	start := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	before := start.Add(-time.Hour)
	after := start.Add(time.Hour)

	tests := []struct {
		name       string
		req        models.ActivityRequest
		wantFields []string
	}{
		{
			"valid open ended",
			models.ActivityRequest{ActivityName: "Read chapter 3", ActivityType: "reading", StartTime: start},
			nil,
		},
		{
			"valid closed",
			models.ActivityRequest{ActivityName: "Lab", ActivityType: "research", StartTime: start, EndTime: &after},
			nil,
		},
		{
			"missing name and type",
			models.ActivityRequest{StartTime: start},
			[]string{"activity_name", "activity_type"},
		},
		{
			"missing start time",
			models.ActivityRequest{ActivityName: "Lab", ActivityType: "research"},
			[]string{"start_time"},
		},
		{
			"end before start",
			models.ActivityRequest{ActivityName: "Lab", ActivityType: "research", StartTime: start, EndTime: &before},
			[]string{"end_time"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := validateActivityRequest(tc.req)
			if len(fields) != len(tc.wantFields) {
				t.Fatalf("Expected %d field errors, got %d: %v", len(tc.wantFields), len(fields), fields)
			}
			for _, f := range tc.wantFields {
				if _, ok := fields[f]; !ok {
					t.Errorf("Expected error on field %q, got %v", f, fields)
				}
			}
		})
	}
}

func TestValidateGoalRequest(t *testing.T) {
	if fields := validateGoalRequest(models.GoalRequest{GoalName: "Finish thesis", Priority: 2}); len(fields) != 0 {
		t.Errorf("Expected valid request, got %v", fields)
	}

	fields := validateGoalRequest(models.GoalRequest{Priority: -1})
	if _, ok := fields["goal_name"]; !ok {
		t.Errorf("Expected error on goal_name, got %v", fields)
	}
	if _, ok := fields["priority"]; !ok {
		t.Errorf("Expected error on priority, got %v", fields)
	}
}

func TestValidateResourceRequest(t *testing.T) {
	valid := models.ResourceRequest{
		ResourceName: "Go by Example",
		ResourceType: models.ResourceArticle,
		ResourceURL:  "https://gobyexample.com",
	}
	if fields := validateResourceRequest(valid); len(fields) != 0 {
		t.Errorf("Expected valid request, got %v", fields)
	}

	fields := validateResourceRequest(models.ResourceRequest{})
	for _, f := range []string{"resource_name", "resource_type", "resource_url"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("Expected error on field %q, got %v", f, fields)
		}
	}
}

// ─── Ranked Count Param Tests ───

func TestCountParam(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"absent uses fallback", "", 4},
		{"valid override", "count=7", 7},
		{"not a number", "count=lots", 4},
		{"zero", "count=0", 4},
		{"negative", "count=-3", 4},
		{"clamped", "count=500", maxRankedCount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/resources/popular?"+tc.query, nil)
			if got := countParam(req, 4); got != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, got)
			}
		})
	}
}
