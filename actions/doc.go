// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package actions is the application's behavioral surface: the callable
operations that sequence identity checks, input validation, ownership and
vote-integrity rules, and persistence.

# Operations

	a := actions.New(store.New(dbConn))

	poll, aerr := a.CreatePoll(userID, question, options)
	polls, aerr := a.GetUserPolls(userID)
	poll, aerr := a.GetPollByID(pollID)
	poll, aerr := a.UpdatePoll(userID, pollID, question, options)
	aerr := a.DeletePoll(userID, pollID)
	vote, aerr := a.SubmitVote(userID, pollID, optionIndex)
	results, aerr := a.GetResults(pollID)

Each operation is one sequential procedure ending in exactly one primary
persistence mutation or query; it either fully succeeds or reports a typed
error with no partial mutation.

# Identity

Identity is an explicit parameter, resolved per request by the caller (the
HTTP layer reads it from the bearer token). There is no process-wide current
user. An empty userID means anonymous and fails any operation that needs an
identity.

# Errors

Failures are *Error values with a Kind (Unauthenticated, InvalidInput,
NotFound, NotFoundOrForbidden, Conflict, Provider) and a message fit for
direct display. Update and delete deliberately merge "poll does not exist"
with "poll belongs to someone else" so the API does not leak which polls
exist. Errors never propagate as panics, and no operation retries.
*/
package actions
