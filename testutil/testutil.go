// Copyright (c) 2026 Hatpick.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/hatpick/hatpick/cliparse"
	"github.com/hatpick/hatpick/db"
	"github.com/hatpick/hatpick/space"
	"github.com/hatpick/hatpick/store"
)

// SetupTestDB creates a fresh sqlite database in a per-test temp dir with
// the full schema. No external daemon needed; WAL mode still allows the
// concurrency tests to run real parallel writers.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "hatpick_test.db")

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3419,
		DatabaseURL:  "hatpick_test.db",
		DatabaseType: "sqlite",
		RateLimitRPS: 0, // disabled so tests can hammer the handlers
	}
}

// NewService wires a Service over a fresh test database
func NewService(t *testing.T) *space.Service {
	t.Helper()
	return space.NewService(store.New(SetupTestDB(t)))
}

// SeedItems adds items to a space through the service so all invariants hold
func SeedItems(t *testing.T, svc *space.Service, key string, items []string) {
	t.Helper()
	for _, item := range items {
		if _, err := svc.AddItem(t.Context(), key, item); err != nil {
			t.Fatalf("Failed to seed item %q: %v", item, err)
		}
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
