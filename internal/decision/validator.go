// Package decision presents numbered choices and validates the player's answer.
package decision

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInputClosed means the input source ended before a valid answer.
	ErrInputClosed = errors.New("input closed")
	// ErrTooManyAttempts means a bounded validator ran out of retries.
	ErrTooManyAttempts = errors.New("too many invalid attempts")

	ErrNotNumber  = errors.New("not a number")
	ErrOutOfRange = errors.New("out of range")
)

// Prompter asks one question and returns the raw answer.
type Prompter interface {
	Prompt(question string) (string, error)
}

// Validator re-prompts until Parse accepts an answer. Every rejected answer
// calls Penalty before the next prompt.
type Validator[T any] struct {
	Parse   func(answer string) (T, error)
	Penalty func(attempt int, answer string, err error)
	// MaxAttempts bounds the number of prompts; 0 means unbounded.
	MaxAttempts int
}

// Ask prompts in until a valid answer arrives. It returns the parsed value
// and the number of prompts issued.
func (v Validator[T]) Ask(in Prompter, question string) (T, int, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		answer, err := in.Prompt(question)
		if err != nil {
			return zero, attempt, fmt.Errorf("%w: %v", ErrInputClosed, err)
		}

		value, err := v.Parse(answer)
		if err == nil {
			return value, attempt, nil
		}

		if v.Penalty != nil {
			v.Penalty(attempt, answer, err)
		}
		if v.MaxAttempts > 0 && attempt >= v.MaxAttempts {
			return zero, attempt, fmt.Errorf("%w: last answer %q: %v", ErrTooManyAttempts, answer, err)
		}
	}
}

// IntRange parses a base-10 integer in [min, max].
func IntRange(min, max int) func(string) (int, error) {
	return func(answer string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumber, answer)
		}
		if n < min || n > max {
			return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, n, min, max)
		}
		return n, nil
	}
}
