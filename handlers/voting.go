// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/4mubarak/alx-polly/actions"
	"github.com/4mubarak/alx-polly/middleware"
	"github.com/4mubarak/alx-polly/models"
)

type VotingHandler struct {
	actions *actions.Actions
}

func NewVotingHandler(a *actions.Actions) *VotingHandler {
	return &VotingHandler{actions: a}
}

// SubmitVote handles POST /polls/{id}/vote
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.VoteResult{Error: errString("poll id is required")})
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.VoteResult{Error: errString("Invalid JSON")})
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	vote, aerr := h.actions.SubmitVote(userID, pollID, req.OptionIndex)
	if aerr != nil {
		middleware.JSONResponse(w, statusFor(aerr), models.VoteResult{Error: errString(aerr.Message)})
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResult{Vote: &vote})
}

// GetResults handles GET /polls/{id}/results
func (h *VotingHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.ResultsResult{Error: errString("poll id is required")})
		return
	}

	results, aerr := h.actions.GetResults(pollID)
	if aerr != nil {
		middleware.JSONResponse(w, statusFor(aerr), models.ResultsResult{Error: errString(aerr.Message)})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResult{Results: results})
}
