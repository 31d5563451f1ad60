// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package validation normalizes and bounds-checks poll input.

# Poll Input

NormalizePollInput produces a normalized (question, options) pair or a
validation error:

	question, options, err := validation.NormalizePollInput(rawQuestion, rawOptions)

Rules:

  - Question is trimmed; empty or >300 characters fails.
  - Each option is trimmed; empty options are dropped.
  - Lists longer than 10 options are truncated to the first 10.
  - Fewer than 2 surviving options fails.

# Option Index

ValidateOptionIndex checks the half-open range [0, optionCount):

	err := validation.ValidateOptionIndex(index, len(poll.Options))

# Errors

All failures wrap ErrInvalid and carry a user-presentable message:

	if errors.Is(err, validation.ErrInvalid) { ... }

Both functions are pure: no database access, no global state.
*/
package validation
