// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package actions

import (
	"errors"
	"log/slog"

	"github.com/4mubarak/alx-polly/models"
	"github.com/4mubarak/alx-polly/store"
	"github.com/4mubarak/alx-polly/validation"
)

// Actions is the application's behavioral surface. Each method is a single
// sequential procedure: check identity, validate input, apply ownership and
// vote-integrity preconditions, issue exactly one primary persistence
// mutation or query, and return the result or a typed *Error.
//
// Identity is passed explicitly by the caller (resolved per request, never
// read from shared state); an empty userID means the caller is anonymous.
type Actions struct {
	store *store.Store
}

func New(st *store.Store) *Actions {
	return &Actions{store: st}
}

// pollInputError maps a validation failure to a user-facing message.
func pollInputError(err error) *Error {
	if errors.Is(err, validation.ErrQuestionTooLong) {
		return invalidInput(msgQuestionTooLong)
	}
	return invalidInput(msgBadQuestion)
}

// CreatePoll validates input and inserts a poll owned by userID.
func (a *Actions) CreatePoll(userID, question string, options []string) (models.Poll, *Error) {
	if userID == "" {
		return models.Poll{}, unauthenticated(msgLoginToCreate)
	}

	q, opts, err := validation.NormalizePollInput(question, options)
	if err != nil {
		return models.Poll{}, pollInputError(err)
	}

	poll, err := a.store.InsertPoll(userID, q, opts)
	if err != nil {
		slog.Error("failed to create poll", "user_id", userID, "error", err)
		return models.Poll{}, providerError(err)
	}

	slog.Info("poll created", "poll_id", poll.ID, "user_id", userID)
	return poll, nil
}

// GetUserPolls lists the polls owned by userID, newest first.
func (a *Actions) GetUserPolls(userID string) ([]models.Poll, *Error) {
	if userID == "" {
		return nil, unauthenticated(msgLoginToView)
	}

	polls, err := a.store.ListPollsByOwner(userID)
	if err != nil {
		slog.Error("failed to list polls", "user_id", userID, "error", err)
		return nil, providerError(err)
	}
	return polls, nil
}

// GetPollByID fetches a single poll. Reading a poll requires no identity.
func (a *Actions) GetPollByID(pollID string) (models.Poll, *Error) {
	poll, err := a.store.GetPollByID(pollID)
	if err == store.ErrNotFound {
		return models.Poll{}, notFound()
	}
	if err != nil {
		slog.Error("failed to get poll", "poll_id", pollID, "error", err)
		return models.Poll{}, providerError(err)
	}
	return poll, nil
}

// UpdatePoll validates input and updates a poll only if userID owns it.
// A missing poll and another user's poll produce the same error.
func (a *Actions) UpdatePoll(userID, pollID, question string, options []string) (models.Poll, *Error) {
	if userID == "" {
		return models.Poll{}, unauthenticated(msgLoginToModify)
	}

	q, opts, err := validation.NormalizePollInput(question, options)
	if err != nil {
		return models.Poll{}, pollInputError(err)
	}

	updated, err := a.store.UpdatePollOwned(pollID, userID, q, opts)
	if err != nil {
		slog.Error("failed to update poll", "poll_id", pollID, "user_id", userID, "error", err)
		return models.Poll{}, providerError(err)
	}
	if !updated {
		return models.Poll{}, notFoundOrForbidden()
	}

	poll, err := a.store.GetPollByID(pollID)
	if err != nil {
		slog.Error("failed to reload poll after update", "poll_id", pollID, "error", err)
		return models.Poll{}, providerError(err)
	}

	slog.Info("poll updated", "poll_id", pollID, "user_id", userID)
	return poll, nil
}

// DeletePoll deletes a poll only if userID owns it.
func (a *Actions) DeletePoll(userID, pollID string) *Error {
	if userID == "" {
		return unauthenticated(msgLoginToModify)
	}

	deleted, err := a.store.DeletePollOwned(pollID, userID)
	if err != nil {
		slog.Error("failed to delete poll", "poll_id", pollID, "user_id", userID, "error", err)
		return providerError(err)
	}
	if !deleted {
		return notFoundOrForbidden()
	}

	slog.Info("poll deleted", "poll_id", pollID, "user_id", userID)
	return nil
}

// SubmitVote records userID's vote on a poll. The HasVoted check is a
// friendly fast path; the votes table's UNIQUE (poll_id, user_id) constraint
// closes the window between the check and the insert, and a violation there
// is reported identically.
func (a *Actions) SubmitVote(userID, pollID string, optionIndex int) (models.Vote, *Error) {
	if userID == "" {
		return models.Vote{}, unauthenticated(msgLoginToVote)
	}

	poll, err := a.store.GetPollByID(pollID)
	if err == store.ErrNotFound {
		return models.Vote{}, notFound()
	}
	if err != nil {
		slog.Error("failed to get poll for vote", "poll_id", pollID, "error", err)
		return models.Vote{}, providerError(err)
	}

	if err := validation.ValidateOptionIndex(optionIndex, len(poll.Options)); err != nil {
		return models.Vote{}, invalidInput(msgBadOption)
	}

	voted, err := a.store.HasVoted(pollID, userID)
	if err != nil {
		slog.Error("failed to check prior vote", "poll_id", pollID, "user_id", userID, "error", err)
		return models.Vote{}, providerError(err)
	}
	if voted {
		return models.Vote{}, conflict()
	}

	vote, err := a.store.InsertVote(pollID, userID, optionIndex)
	if err == store.ErrDuplicateVote {
		return models.Vote{}, conflict()
	}
	if err != nil {
		slog.Error("failed to insert vote", "poll_id", pollID, "user_id", userID, "error", err)
		return models.Vote{}, providerError(err)
	}

	slog.Info("vote recorded", "poll_id", pollID, "user_id", userID, "option_index", optionIndex)
	return vote, nil
}

// GetResults tallies votes per option for a poll. Indexes with no votes are
// included with a zero count so callers can render the full option list.
func (a *Actions) GetResults(pollID string) ([]models.OptionCount, *Error) {
	poll, err := a.store.GetPollByID(pollID)
	if err == store.ErrNotFound {
		return nil, notFound()
	}
	if err != nil {
		slog.Error("failed to get poll for results", "poll_id", pollID, "error", err)
		return nil, providerError(err)
	}

	counts, err := a.store.CountVotes(pollID)
	if err != nil {
		slog.Error("failed to count votes", "poll_id", pollID, "error", err)
		return nil, providerError(err)
	}

	results := make([]models.OptionCount, len(poll.Options))
	for i, label := range poll.Options {
		results[i] = models.OptionCount{
			OptionIndex: i,
			Label:       label,
			Count:       counts[i],
		}
	}
	return results, nil
}
