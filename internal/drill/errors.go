package drill

import (
	"errors"
	"fmt"
)

// ErrAnswerIsDistractor indicates the correct answer was also passed as a
// distractor to AddOptions.
var ErrAnswerIsDistractor = errors.New("answer included in distractor set")

// ErrEmptyOptionValue indicates an empty string among the option values.
var ErrEmptyOptionValue = errors.New("all option values must be non-empty")

// ErrEmptyTestSet indicates a scoring operation on a set with no questions.
var ErrEmptyTestSet = errors.New("test set has no questions")

// InvalidPivotError indicates a pivot value that violates the invariant
// for its kind (a kanji pivot must be a single character or written
// entirely in the kanji script; a word pivot must be non-empty).
type InvalidPivotError struct {
	Value string
	Kind  PivotKind
}

func (e *InvalidPivotError) Error() string {
	return fmt.Sprintf("invalid %s pivot %q", e.Kind.Label(), e.Value)
}

// DuplicateOptionError indicates the same value appeared twice among a
// question's option values.
type DuplicateOptionError struct {
	Value string
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("duplicate option value %q", e.Value)
}

// InsufficientDistractorsError indicates a factory could not gather enough
// distinct distractor values for a question. It marks candidate-pool
// exhaustion: the caller may try a different factory, never the same one
// again with the same pool.
type InsufficientDistractorsError struct {
	Need int
	Got  int
}

func (e *InsufficientDistractorsError) Error() string {
	return fmt.Sprintf("insufficient distractors: need %d, got %d", e.Need, e.Got)
}

// IncompleteCoverageError indicates OrderedResponses was called before
// every question in the set had a recorded response.
type IncompleteCoverageError struct {
	Questions int
	Responses int
}

func (e *IncompleteCoverageError) Error() string {
	return fmt.Sprintf("incomplete coverage: %d responses for %d questions", e.Responses, e.Questions)
}
