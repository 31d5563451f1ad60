// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type SignUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type UpdatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type SubmitVoteRequest struct {
	OptionIndex int `json:"option_index"`
}

// Response envelopes
//
// Every action response carries a payload field plus an error field that is
// null on success and a human-readable message on failure. The caller decides
// how to render the message.

type PollResult struct {
	Poll  *PollSummary `json:"poll"`
	Error *string      `json:"error"`
}

type PollsResult struct {
	Polls []PollSummary `json:"polls"`
	Error *string       `json:"error"`
}

type VoteResult struct {
	Vote  *Vote   `json:"vote"`
	Error *string `json:"error"`
}

type DeleteResult struct {
	Error *string `json:"error"`
}

type ResultsResult struct {
	Results []OptionCount `json:"results"`
	Error   *string       `json:"error"`
}

type AuthResult struct {
	Token string  `json:"token,omitempty"`
	User  *User   `json:"user,omitempty"`
	Error *string `json:"error"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Poll struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"created_at"`
}

// PollSummary is a Poll decorated for API responses.
type PollSummary struct {
	Poll
	CreatedAgo string `json:"created_ago"`
}

type Vote struct {
	ID          string    `json:"id"`
	PollID      string    `json:"poll_id"`
	UserID      string    `json:"-"` // Never expose other voters' identities
	OptionIndex int       `json:"option_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// OptionCount is the tally for a single option in a poll's results.
type OptionCount struct {
	OptionIndex int    `json:"option_index"`
	Label       string `json:"label"`
	Count       int    `json:"count"`
}
