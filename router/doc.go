// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the alx-polly API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Authentication:

	POST /auth/signup  - Create account, returns session token
	POST /auth/signin  - Exchange credentials for session token
	POST /auth/signout - Acknowledge sign-out (tokens are stateless)
	GET  /auth/me      - Current account from bearer token

Poll management (bearer token required):

	POST   /polls          - Create poll
	GET    /polls/my-polls - List own polls, newest first
	PUT    /polls/{id}     - Update own poll
	DELETE /polls/{id}     - Delete own poll

Public reads:

	GET /polls/{id}         - Poll question and options
	GET /polls/{id}/results - Per-option vote counts

Voting (bearer token required):

	POST /polls/{id}/vote - Cast a vote, once per poll

# Middleware Stacking

Every route is wrapped in request logging. Routes that accept a bearer token
additionally get identity resolution, and the credential and vote endpoints
get a per-IP rate limit:

	mux.HandleFunc("POST /polls/{id}/vote",
		middleware.WithLogging(middleware.WithIdentity(secret, limited(handler))))

# Handler Initialization

The router builds the dependency chain itself:

	st := store.New(db)
	a := actions.New(st)
	pollHandler := handlers.NewPollHandler(a)
*/
package router
