package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Alidiabb/quickcounsel/internal/config"
	"github.com/Alidiabb/quickcounsel/internal/database"
	"github.com/Alidiabb/quickcounsel/internal/router"
	"github.com/Alidiabb/quickcounsel/internal/services"
	"github.com/Alidiabb/quickcounsel/pkg/logger"
	"github.com/Alidiabb/quickcounsel/pkg/metrics"
	"github.com/Alidiabb/quickcounsel/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	app   *fiber.App
	db    *gorm.DB
	cases *services.CaseService
	logs  *bytes.Buffer
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logs := &bytes.Buffer{}
	logger.SetOutput(logs)
	t.Cleanup(logger.Init)
	utils.ConfigurePasswordCost(bcrypt.MinCost)

	db, err := database.Connect(config.DBConfig{
		Driver:       config.DriverSQLite,
		SQLitePath:   ":memory:",
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite database: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close(db)
	})

	cfg := &config.Config{
		Server: config.ServerConfig{CORSAllowOrigins: "*"},
	}
	svc := router.NewServices(db)
	app := router.NewWithServices(cfg, svc, metrics.NewManager(metrics.WithGoCollector(false)))

	return &testEnv{app: app, db: db, cases: svc.Cases, logs: logs}
}

func clientPayload(email string) map[string]any {
	return map[string]any{
		"name":          "Casey Client",
		"email":         email,
		"password":      "password123",
		"date_of_birth": "1991-04-12",
		"gender":        "female",
		"role":          "client",
	}
}

func lawyerPayload(email, barNumber, specialization string) map[string]any {
	return map[string]any{
		"name":             "Lou Lawyer",
		"email":            email,
		"password":         "password123",
		"date_of_birth":    "1975-09-30",
		"gender":           "male",
		"role":             "lawyer",
		"bar_number":       barNumber,
		"member_since":     "2004-06-01",
		"specialization_1": specialization,
	}
}

// registerUser registers payload and returns the new user id.
func registerUser(t *testing.T, app *fiber.App, payload map[string]any) uint {
	t.Helper()

	resp := performJSONRequest(t, app, http.MethodPost, "/register", payload, nil)
	body := decodeJSONMap(t, resp)
	assertStatus(t, resp, http.StatusCreated)

	id, ok := body["user_id"].(float64)
	if !ok || id <= 0 {
		t.Fatalf("expected positive user_id, got %+v", body)
	}
	return uint(id)
}

func performRequest(t *testing.T, app *fiber.App, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}

	return resp
}

func performJSONRequest(t *testing.T, app *fiber.App, method, path string, payload any, headers map[string]string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	requestHeaders := map[string]string{}
	for key, value := range headers {
		requestHeaders[key] = value
	}
	if payload != nil {
		requestHeaders["Content-Type"] = "application/json"
	}

	return performRequest(t, app, method, path, body, requestHeaders)
}

func performRawJSONRequest(t *testing.T, app *fiber.App, method, path, raw string) *http.Response {
	t.Helper()
	return performRequest(t, app, method, path, strings.NewReader(raw), map[string]string{"Content-Type": "application/json"})
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading response body: %v", err)
	}
	return raw
}

func decodeJSONMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw := readBody(t, resp)
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed decoding JSON response: %v body=%q", err, string(raw))
	}

	return payload
}

func decodeJSONArray(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()

	raw := readBody(t, resp)
	var payload []map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed decoding JSON array response: %v body=%q", err, string(raw))
	}
	if payload == nil {
		t.Fatalf("expected a JSON array, got %q", string(raw))
	}

	return payload
}

func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

func assertMessage(t *testing.T, body map[string]any, expected string) {
	t.Helper()
	if got, _ := body["message"].(string); got != expected {
		t.Fatalf("expected message %q, got %+v", expected, body)
	}
}

// scrapeMetrics reads the exposition served by the app's /metrics route.
func scrapeMetrics(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := performRequest(t, app, http.MethodGet, "/metrics", nil, nil)
	assertStatus(t, resp, http.StatusOK)
	return string(readBody(t, resp))
}

func idPath(format string, id uint) string {
	return fmt.Sprintf(format, id)
}
