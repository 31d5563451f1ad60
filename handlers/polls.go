// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/4mubarak/alx-polly/actions"
	"github.com/4mubarak/alx-polly/middleware"
	"github.com/4mubarak/alx-polly/models"
)

type PollHandler struct {
	actions *actions.Actions
}

func NewPollHandler(a *actions.Actions) *PollHandler {
	return &PollHandler{actions: a}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.PollResult{Error: errString("Invalid JSON")})
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	poll, aerr := h.actions.CreatePoll(userID, req.Question, req.Options)
	if aerr != nil {
		middleware.JSONResponse(w, statusFor(aerr), models.PollResult{Error: errString(aerr.Message)})
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.PollResult{Poll: summarize(poll)})
}

// GetMyPolls handles GET /polls/my-polls
func (h *PollHandler) GetMyPolls(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	polls, aerr := h.actions.GetUserPolls(userID)
	if aerr != nil {
		middleware.JSONResponse(w, statusFor(aerr), models.PollsResult{Error: errString(aerr.Message)})
		return
	}

	summaries := make([]models.PollSummary, len(polls))
	for i, poll := range polls {
		summaries[i] = *summarize(poll)
	}
	middleware.JSONResponse(w, http.StatusOK, models.PollsResult{Polls: summaries})
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.PollResult{Error: errString("poll id is required")})
		return
	}

	poll, aerr := h.actions.GetPollByID(pollID)
	if aerr != nil {
		middleware.JSONResponse(w, statusFor(aerr), models.PollResult{Error: errString(aerr.Message)})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResult{Poll: summarize(poll)})
}

// UpdatePoll handles PUT /polls/{id}
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.PollResult{Error: errString("poll id is required")})
		return
	}

	var req models.UpdatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.JSONResponse(w, http.StatusBadRequest, models.PollResult{Error: errString("Invalid JSON")})
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	poll, aerr := h.actions.UpdatePoll(userID, pollID, req.Question, req.Options)
	if aerr != nil {
		middleware.JSONResponse(w, statusFor(aerr), models.PollResult{Error: errString(aerr.Message)})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResult{Poll: summarize(poll)})
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")
	if pollID == "" {
		middleware.JSONResponse(w, http.StatusBadRequest, models.DeleteResult{Error: errString("poll id is required")})
		return
	}

	userID := middleware.UserIDFromContext(r.Context())
	if aerr := h.actions.DeletePoll(userID, pollID); aerr != nil {
		middleware.JSONResponse(w, statusFor(aerr), models.DeleteResult{Error: errString(aerr.Message)})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResult{})
}
