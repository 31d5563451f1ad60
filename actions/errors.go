// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package actions

// Kind classifies an action failure. Every error crossing the facade boundary
// is an *Error carrying one of these kinds plus a user-presentable message.
type Kind int

const (
	// KindUnauthenticated: no resolvable identity for the request.
	KindUnauthenticated Kind = iota + 1
	// KindInvalidInput: question, options, or option index out of bounds.
	KindInvalidInput
	// KindNotFound: referenced poll absent.
	KindNotFound
	// KindNotFoundOrForbidden: merged case for update/delete. A missing poll
	// and another user's poll are deliberately indistinguishable so callers
	// cannot probe for the existence of other users' polls.
	KindNotFoundOrForbidden
	// KindConflict: duplicate vote.
	KindConflict
	// KindProvider: opaque persistence or identity failure, message passed
	// through verbatim.
	KindProvider
)

// Error is the typed failure returned by every action. It is always returned
// as a value, never panicked past the facade boundary.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// User-visible messages.
const (
	msgLoginToCreate   = "You must be logged in to create a poll."
	msgLoginToView     = "You must be logged in to view your polls."
	msgLoginToModify   = "You must be logged in to modify a poll."
	msgLoginToVote     = "You must be logged in to vote."
	msgBadQuestion     = "Please provide a question and at least two options."
	msgQuestionTooLong = "Question must be 300 characters or fewer."
	msgBadOption       = "Invalid option selected."
	msgPollNotFound    = "Poll not found."
	msgNotOwner        = "Poll not found or you do not have permission to modify it."
	msgAlreadyVoted    = "You have already voted on this poll."
)

func unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func invalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func notFound() *Error {
	return &Error{Kind: KindNotFound, Message: msgPollNotFound}
}

func notFoundOrForbidden() *Error {
	return &Error{Kind: KindNotFoundOrForbidden, Message: msgNotOwner}
}

func conflict() *Error {
	return &Error{Kind: KindConflict, Message: msgAlreadyVoted}
}

// providerError surfaces a persistence failure verbatim. No retries.
func providerError(err error) *Error {
	return &Error{Kind: KindProvider, Message: err.Error()}
}
