// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/4mubarak/alx-polly/auth"
	"github.com/4mubarak/alx-polly/cliparse"
	"github.com/4mubarak/alx-polly/db"
	"github.com/4mubarak/alx-polly/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// One connection only: every handler sees the same in-memory database and
// there is nothing to clean up afterwards.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open("sqlite", "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  "file::memory:",
		DatabaseType: "sqlite",
		JWTSecret:    "test-jwt-secret",
		TokenTTL:     time.Hour,
	}
}

// CreateTestUser inserts a user and returns it. The password hash is a fixed
// bcrypt hash of "password123" so sign-in tests can use that password.
func CreateTestUser(t *testing.T, conn *sql.DB, email, displayName string) models.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	user := models.User{
		ID:           auth.NewID(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	_, err = conn.Exec(`
		INSERT INTO users (id, email, display_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// CreateTestPoll inserts a poll owned by userID and returns its ID.
func CreateTestPoll(t *testing.T, conn *sql.DB, userID, question string, options []string) string {
	t.Helper()

	encoded, err := json.Marshal(options)
	if err != nil {
		t.Fatalf("Failed to encode test options: %v", err)
	}

	pollID := auth.NewID()
	_, err = conn.Exec(`
		INSERT INTO polls (id, user_id, question, options, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, pollID, userID, question, string(encoded), time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	return pollID
}

// CreateTestVote inserts a vote and returns its ID.
func CreateTestVote(t *testing.T, conn *sql.DB, pollID, userID string, optionIndex int) string {
	t.Helper()

	voteID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO votes (id, poll_id, user_id, option_index, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, pollID, userID, optionIndex, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// MintTestToken creates a session token accepted by GetTestConfig's secret.
func MintTestToken(t *testing.T, userID string) string {
	t.Helper()

	token, err := auth.MintSessionToken(userID, GetTestConfig().JWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to mint test token: %v", err)
	}
	return token
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
