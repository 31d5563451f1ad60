// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/4mubarak/alx-polly/auth"
	"github.com/4mubarak/alx-polly/models"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateVote  = errors.New("duplicate vote")
	ErrDuplicateEmail = errors.New("email already registered")
)

// Store performs row-level operations on the users, polls, and votes tables.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// isUniqueViolation matches the constraint-violation message of both backing
// drivers (lib/pq and modernc.org/sqlite).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// Users

func (s *Store) CreateUser(email, displayName, passwordHash string) (models.User, error) {
	user := models.User{
		ID:           auth.NewID(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.Exec(`
		INSERT INTO users (id, email, display_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

func (s *Store) GetUserByID(id string) (models.User, error) {
	var user models.User
	err := s.db.QueryRow(`
		SELECT id, email, display_name, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Email, &user.DisplayName, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// Polls

func (s *Store) InsertPoll(userID, question string, options []string) (models.Poll, error) {
	poll := models.Poll{
		ID:        auth.NewID(),
		UserID:    userID,
		Question:  question,
		Options:   options,
		CreatedAt: time.Now().UTC(),
	}

	encoded, err := json.Marshal(poll.Options)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to encode options: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO polls (id, user_id, question, options, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, poll.ID, poll.UserID, poll.Question, string(encoded), poll.CreatedAt)
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to insert poll: %w", err)
	}

	return poll, nil
}

func (s *Store) GetPollByID(id string) (models.Poll, error) {
	var poll models.Poll
	var encoded string
	err := s.db.QueryRow(`
		SELECT id, user_id, question, options, created_at
		FROM polls
		WHERE id = $1
	`, id).Scan(&poll.ID, &poll.UserID, &poll.Question, &encoded, &poll.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Poll{}, ErrNotFound
	}
	if err != nil {
		return models.Poll{}, fmt.Errorf("failed to query poll: %w", err)
	}

	if err := json.Unmarshal([]byte(encoded), &poll.Options); err != nil {
		return models.Poll{}, fmt.Errorf("failed to decode options for poll %s: %w", poll.ID, err)
	}
	return poll, nil
}

// ListPollsByOwner returns the owner's polls, newest first.
func (s *Store) ListPollsByOwner(userID string) ([]models.Poll, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, question, options, created_at
		FROM polls
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	for rows.Next() {
		var poll models.Poll
		var encoded string
		if err := rows.Scan(&poll.ID, &poll.UserID, &poll.Question, &encoded, &poll.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &poll.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options for poll %s: %w", poll.ID, err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate polls: %w", err)
	}
	return polls, nil
}

// UpdatePollOwned updates a poll only if ownerID matches its owner. Returns
// false when no row matched; a missing poll and a foreign poll are
// indistinguishable by construction.
func (s *Store) UpdatePollOwned(pollID, ownerID, question string, options []string) (bool, error) {
	encoded, err := json.Marshal(options)
	if err != nil {
		return false, fmt.Errorf("failed to encode options: %w", err)
	}

	result, err := s.db.Exec(`
		UPDATE polls
		SET question = $1, options = $2
		WHERE id = $3 AND user_id = $4
	`, question, string(encoded), pollID, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to update poll: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read update count: %w", err)
	}
	return affected > 0, nil
}

// DeletePollOwned deletes a poll only if ownerID matches its owner. Returns
// false when no row matched.
func (s *Store) DeletePollOwned(pollID, ownerID string) (bool, error) {
	result, err := s.db.Exec(`
		DELETE FROM polls
		WHERE id = $1 AND user_id = $2
	`, pollID, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete poll: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete count: %w", err)
	}
	return affected > 0, nil
}

// Votes

// InsertVote records a vote. The UNIQUE (poll_id, user_id) constraint closes
// the window between any prior HasVoted check and this insert; a violation is
// reported as ErrDuplicateVote.
func (s *Store) InsertVote(pollID, userID string, optionIndex int) (models.Vote, error) {
	vote := models.Vote{
		ID:          auth.NewID(),
		PollID:      pollID,
		UserID:      userID,
		OptionIndex: optionIndex,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := s.db.Exec(`
		INSERT INTO votes (id, poll_id, user_id, option_index, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.PollID, vote.UserID, vote.OptionIndex, vote.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Vote{}, ErrDuplicateVote
		}
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	return vote, nil
}

// HasVoted reports whether the user already voted on the poll.
func (s *Store) HasVoted(pollID, userID string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM votes
			WHERE poll_id = $1 AND user_id = $2
		)
	`, pollID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vote: %w", err)
	}
	return exists, nil
}

// CountVotes tallies votes per option index for a poll. Indexes absent from
// the result map have zero votes.
func (s *Store) CountVotes(pollID string) (map[int]int, error) {
	rows, err := s.db.Query(`
		SELECT option_index, COUNT(*)
		FROM votes
		WHERE poll_id = $1
		GROUP BY option_index
	`, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var index, count int
		if err := rows.Scan(&index, &count); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[index] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vote counts: %w", err)
	}
	return counts, nil
}
