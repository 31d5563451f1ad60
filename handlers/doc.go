// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the alx-polly API.

# Handler Types

  - AuthHandler: sign-up, sign-in, sign-out, current user
  - PollHandler: poll CRUD and the owner's poll listing
  - VotingHandler: vote submission and results

AuthHandler works against the store and config directly; poll and voting
handlers go through the actions facade:

	authHandler := handlers.NewAuthHandler(st, cfg)
	pollHandler := handlers.NewPollHandler(a)

# Response Shape

Every endpoint responds with a two-field envelope: the payload (poll, polls,
vote, results, token/user) and an error field that is null on success or a
human-readable message on failure. HTTP status codes mirror the error kind
(401 unauthenticated, 400 invalid input, 404 not found or not owner, 409
conflict, 500 provider failure) but clients only need the envelope.

# Identity

Handlers read the current user from the request context, where the identity
middleware placed it after parsing the Authorization bearer token. An
anonymous request reaches the action with an empty user ID and gets that
action's own unauthenticated message back.

# Poll Flow

	POST   /polls             → CreatePoll
	GET    /polls/my-polls    → GetMyPolls
	GET    /polls/{id}        → GetPoll
	PUT    /polls/{id}        → UpdatePoll
	DELETE /polls/{id}        → DeletePoll
	POST   /polls/{id}/vote   → SubmitVote
	GET    /polls/{id}/results → GetResults

Votes are create-only: there is no endpoint that mutates or deletes a vote.
*/
package handlers
