// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store performs row-level persistence for users, polls, and votes.

# Construction

	st := store.New(dbConn)

All methods issue plain SQL through database/sql with $n placeholders, which
both backing drivers (lib/pq and modernc.org/sqlite) accept.

# Ownership-Filtered Mutations

UpdatePollOwned and DeletePollOwned filter on both the poll ID and the owner:

	UPDATE polls SET ... WHERE id = $3 AND user_id = $4

and report only whether a row was affected. A caller therefore cannot tell a
missing poll from another user's poll — that merging is deliberate and callers
must not try to split the two cases.

# Vote Integrity

InsertVote maps a UNIQUE (poll_id, user_id) violation to ErrDuplicateVote.
HasVoted exists as a fast-path check; the constraint is what actually closes
the race between two concurrent votes from the same user.

# Sentinel Errors

  - ErrNotFound: select-by-id matched no row
  - ErrDuplicateVote: second vote by the same user on a poll
  - ErrDuplicateEmail: sign-up with an email that is already registered

Any other error wraps the underlying driver failure.
*/
package store
