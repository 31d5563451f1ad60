// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignUpRequest: email, password, display_name
  - SignInRequest: email, password
  - CreatePollRequest: question, options
  - UpdatePollRequest: question, options
  - SubmitVoteRequest: option_index

# Response Envelopes

Every action response is a two-field envelope: a payload field (poll, polls,
vote, results, ...) and an error field that is null on success or a
human-readable message on failure:

  - PollResult: poll, error
  - PollsResult: polls, error
  - VoteResult: vote, error
  - DeleteResult: error
  - ResultsResult: results, error
  - AuthResult: token, user, error

# Domain Types

Internal data structures:

  - User: account record (password hash never serialized)
  - Poll: question with an ordered option list, owned by one user
  - Vote: one user's choice on one poll, unique per (poll, user)
  - OptionCount: per-option tally for results
*/
package models
