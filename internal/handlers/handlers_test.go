package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/Alidiabb/quickcounsel/internal/database"
)

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	resp := performRequest(t, env.app, http.MethodGet, "/health", nil, nil)
	body := decodeJSONMap(t, resp)
	assertStatus(t, resp, http.StatusOK)
	if ok, _ := body["ok"].(bool); !ok {
		t.Fatalf("expected ok=true, got %+v", body)
	}
}

func TestMatchingScenario(t *testing.T) {
	env := setupTestEnv(t)

	lawyerID := registerUser(t, env.app, lawyerPayload("l@x.com", "B1", "Tax"))

	t.Run("new lawyer is listed with a zero average", func(t *testing.T) {
		resp := performRequest(t, env.app, http.MethodGet, "/lawyers?specialization=Tax", nil, nil)
		assertStatus(t, resp, http.StatusOK)
		lawyers := decodeJSONArray(t, resp)
		if len(lawyers) != 1 {
			t.Fatalf("expected one lawyer, got %+v", lawyers)
		}
		if id, _ := lawyers[0]["id"].(float64); uint(id) != lawyerID {
			t.Fatalf("expected lawyer %d, got %+v", lawyerID, lawyers[0])
		}
		avg, present := lawyers[0]["avg_rating"]
		if !present || avg != float64(0) {
			t.Fatalf("expected avg_rating 0, got %v", avg)
		}
	})

	t.Run("second rating by the same client replaces the first", func(t *testing.T) {
		for _, rating := range []any{4, 2} {
			resp := performJSONRequest(t, env.app, http.MethodPost, "/rate", map[string]any{
				"lawyer_user_id": lawyerID,
				"client_user_id": 5,
				"rating":         rating,
			}, nil)
			body := decodeJSONMap(t, resp)
			assertStatus(t, resp, http.StatusOK)
			assertMessage(t, body, "Rated")
		}

		resp := performRequest(t, env.app, http.MethodGet, idPath("/lawyer/profile?user_id=%d", lawyerID), nil, nil)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusOK)
		if body["avg_rating"] != float64(2) {
			t.Fatalf("expected avg_rating 2, got %v", body["avg_rating"])
		}
	})

	t.Run("metrics count the registration and ratings", func(t *testing.T) {
		exposition := scrapeMetrics(t, env.app)
		for _, needle := range []string{
			`quickcounsel_registrations_total{role="lawyer"} 1`,
			`quickcounsel_ratings_total 2`,
		} {
			if !strings.Contains(exposition, needle) {
				t.Errorf("expected exposition to contain %q", needle)
			}
		}
	})
}

func TestInvalidRequestBody(t *testing.T) {
	env := setupTestEnv(t)

	for _, path := range []string{"/register", "/login", "/rate", "/lawyer/cases"} {
		t.Run(path, func(t *testing.T) {
			resp := performRawJSONRequest(t, env.app, http.MethodPost, path, `{"email":`)
			body := decodeJSONMap(t, resp)
			assertStatus(t, resp, http.StatusBadRequest)
			assertMessage(t, body, "Invalid request body")
		})
	}

	t.Run("object values are rejected", func(t *testing.T) {
		resp := performRawJSONRequest(t, env.app, http.MethodPut, "/lawyer/description", `{"user_id":{"id":1}}`)
		body := decodeJSONMap(t, resp)
		assertStatus(t, resp, http.StatusBadRequest)
		assertMessage(t, body, "Invalid request body")
	})
}

func TestStorageFailureIsReportedGenerically(t *testing.T) {
	env := setupTestEnv(t)
	if err := database.Close(env.db); err != nil {
		t.Fatalf("failed closing database: %v", err)
	}

	resp := performRequest(t, env.app, http.MethodGet, "/lawyers?specialization=Tax", nil, nil)
	body := decodeJSONMap(t, resp)
	assertStatus(t, resp, http.StatusInternalServerError)
	assertMessage(t, body, "Server error")

	if !strings.Contains(env.logs.String(), "lawyer_search_failed") {
		t.Fatal("expected the cause to be logged")
	}
}

func TestMetricsLabelsSurviveMixedMethods(t *testing.T) {
	env := setupTestEnv(t)

	lawyerID := registerUser(t, env.app, lawyerPayload("mixed@x.com", "B1", "Tax"))
	assertStatus(t, performRequest(t, env.app, http.MethodGet, idPath("/lawyer/profile?user_id=%d", lawyerID), nil, nil), http.StatusOK)
	assertStatus(t, performJSONRequest(t, env.app, http.MethodPut, "/lawyer/description", map[string]any{
		"user_id":     lawyerID,
		"description": "Tax",
	}, nil), http.StatusOK)
	assertStatus(t, performRequest(t, env.app, http.MethodGet, idPath("/lawyer/cases?user_id=%d", lawyerID), nil, nil), http.StatusOK)

	exposition := scrapeMetrics(t, env.app)
	for _, want := range []string{
		`quickcounsel_http_requests_total{method="POST",route="/register",status_code="201"} 1`,
		`quickcounsel_http_requests_total{method="GET",route="/lawyer/profile",status_code="200"} 1`,
		`quickcounsel_http_requests_total{method="PUT",route="/lawyer/description",status_code="200"} 1`,
		`quickcounsel_http_requests_total{method="GET",route="/lawyer/cases",status_code="200"} 1`,
	} {
		if !strings.Contains(exposition, want) {
			t.Errorf("expected exposition to contain %q", want)
		}
	}
}
