package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/katmcmillan/pick-me-randomly/cliparse"
	"github.com/katmcmillan/pick-me-randomly/db"
	"github.com/katmcmillan/pick-me-randomly/models"
)

var dbCounter atomic.Int64

// SetupTestDB creates a fresh in-memory sqlite database with the votes
// schema. Each call gets its own database, so tests stay independent.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:votes_test_%d?mode=memory&cache=shared", dbCounter.Add(1))
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A shared-cache memory database lives as long as one connection does;
	// pin the pool to a single connection so it never disappears mid-test.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           8501,
		DatabaseURL:    "file:test?mode=memory",
		DatabaseType:   "sqlite",
		CollectionFile: "testdata/NPS.xlsx",
		SelectionsFile: "testdata/NPS_Selections.xlsx",
		SampleSize:     5,
	}
}

// TestPolishes returns a small fixed catalog for tests.
func TestPolishes() []models.Polish {
	return []models.Polish{
		{Number: "A1", Brand: "Essie", ShadeName: "Ballet Slippers", Description: "Sheer pink", Finish: "Creme"},
		{Number: "B1", Brand: "OPI", ShadeName: "Bubble Bath", Description: "Soft pink", Finish: "Creme"},
		{Number: "C1", Brand: "ILNP", ShadeName: "Birefringence", Description: "Shifting multichrome", Finish: "Holographic"},
		{Number: "D1", Brand: "Essie", ShadeName: "Wicked", Description: "Deep red", Finish: "Creme"},
		{Number: "E1", Brand: "Holo Taco", ShadeName: "Royal-Tea", Description: "Blue holo", Finish: "Holographic"},
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
