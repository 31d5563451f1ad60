// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/4mubarak/alx-polly/actions"
	"github.com/4mubarak/alx-polly/models"
)

// statusFor maps an action error kind to an HTTP status code. The envelope
// carries the user-facing message either way; the status is advisory.
func statusFor(aerr *actions.Error) int {
	switch aerr.Kind {
	case actions.KindUnauthenticated:
		return http.StatusUnauthorized
	case actions.KindInvalidInput:
		return http.StatusBadRequest
	case actions.KindNotFound, actions.KindNotFoundOrForbidden:
		return http.StatusNotFound
	case actions.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func errString(message string) *string {
	return &message
}

func summarize(poll models.Poll) *models.PollSummary {
	return &models.PollSummary{
		Poll:       poll,
		CreatedAgo: humanize.Time(poll.CreatedAt),
	}
}
