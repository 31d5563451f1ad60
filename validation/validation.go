// Copyright (c) 2025 4mubarak.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Bounds for poll input after normalization.
const (
	MaxQuestionLen = 300
	MinOptions     = 2
	MaxOptions     = 10
)

// ErrInvalid is the sentinel wrapped by every validation failure; match the
// broad class with errors.Is(err, ErrInvalid) or a specific rule with the
// named sentinels below.
var (
	ErrInvalid         = errors.New("invalid input")
	ErrQuestionEmpty   = fmt.Errorf("%w: question is empty after trimming", ErrInvalid)
	ErrQuestionTooLong = fmt.Errorf("%w: question exceeds %d characters", ErrInvalid, MaxQuestionLen)
	ErrTooFewOptions   = fmt.Errorf("%w: fewer than %d non-empty options", ErrInvalid, MinOptions)
	ErrOptionIndex     = fmt.Errorf("%w: option index out of range", ErrInvalid)
)

// NormalizePollInput trims and bounds-checks raw poll input, returning the
// normalized question and option list. Options that are empty after trimming
// are dropped; lists longer than MaxOptions are truncated to the first
// MaxOptions entries. Pure function, no side effects.
func NormalizePollInput(question string, options []string) (string, []string, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		return "", nil, ErrQuestionEmpty
	}
	if len(q) > MaxQuestionLen {
		return "", nil, ErrQuestionTooLong
	}

	normalized := make([]string, 0, len(options))
	for _, opt := range options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			continue
		}
		normalized = append(normalized, trimmed)
		if len(normalized) == MaxOptions {
			break
		}
	}

	if len(normalized) < MinOptions {
		return "", nil, ErrTooFewOptions
	}

	return q, normalized, nil
}

// ValidateOptionIndex checks that index selects one of optionCount options.
func ValidateOptionIndex(index, optionCount int) error {
	if index < 0 || index >= optionCount {
		return ErrOptionIndex
	}
	return nil
}
