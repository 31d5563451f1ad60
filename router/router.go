// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/4mubarak/alx-polly/actions"
	"github.com/4mubarak/alx-polly/cliparse"
	"github.com/4mubarak/alx-polly/handlers"
	"github.com/4mubarak/alx-polly/middleware"
	"github.com/4mubarak/alx-polly/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	st := store.New(db)
	a := actions.New(st)
	authHandler := handlers.NewAuthHandler(st, cfg)
	pollHandler := handlers.NewPollHandler(a)
	votingHandler := handlers.NewVotingHandler(a)

	// Credential and vote endpoints get a per-IP rate limit
	limited := middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: 5,
		Burst:             10,
	})

	// withIdentity resolves the bearer token before the handler runs
	withIdentity := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithIdentity(cfg.JWTSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /auth/signup", middleware.WithLogging(limited(authHandler.SignUp)))
	mux.HandleFunc("POST /auth/signin", middleware.WithLogging(limited(authHandler.SignIn)))
	mux.HandleFunc("POST /auth/signout", middleware.WithLogging(authHandler.SignOut))
	mux.HandleFunc("GET /auth/me", withIdentity(authHandler.Me))

	// Poll management
	mux.HandleFunc("POST /polls", withIdentity(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/my-polls", withIdentity(pollHandler.GetMyPolls))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("PUT /polls/{id}", withIdentity(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", withIdentity(pollHandler.DeletePoll))

	// Voting
	mux.HandleFunc("POST /polls/{id}/vote", withIdentity(limited(votingHandler.SubmitVote)))
	mux.HandleFunc("GET /polls/{id}/results", middleware.WithLogging(votingHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("alx-polly API v1"))
	})

	return mux
}
