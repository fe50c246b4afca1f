// Package plugins holds the question factories and the registry that
// resolves the configured factory set at startup.
package plugins

import (
	"context"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
	"github.com/ayasuda/kanjidrill/internal/usermodel"
)

// Factory produces a fully-formed multiple-choice question for a concept.
// Implementations declare which pivot kinds they can drill; the registry
// filters on these flags when dispatching a concept.
type Factory interface {
	// Name is the identifier used in configuration.
	Name() string

	// Description is a one-line summary shown by the plugins command.
	Description() string

	SupportsKanji() bool
	SupportsWords() bool

	// GetQuestion builds a question for item. The returned question always
	// satisfies the option invariants (exactly one correct, all values
	// distinct and non-empty). When the factory cannot gather enough
	// distinct distractors it fails with a
	// *drill.InsufficientDistractorsError instead of retrying against the
	// same exhausted pool.
	GetQuestion(ctx context.Context, item syllabus.Item, userID string) (*drill.MultipleChoiceQuestion, error)
}

// gatherDistractors samples candidates from src and filters them down to
// exactly need usable values: non-empty, distinct, and not in exclude.
// The exclude list carries every value that counts as correct for the
// item, so a true answer can never appear as a distractor even when the
// error model proposes one. A short result after filtering is reported as
// exhaustion; there is no retry loop here.
func gatherDistractors(ctx context.Context, src usermodel.DistractorSource, userID string, item syllabus.Item, domain syllabus.Domain, need int, exclude []string) ([]string, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, v := range exclude {
		excluded[v] = true
	}

	// Ask for headroom: some candidates will be filtered as correct values.
	candidates, err := src.SampleDistractors(ctx, userID, item, domain, need+len(exclude))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, need)
	for _, v := range candidates {
		if v == "" || excluded[v] || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == need {
			return out, nil
		}
	}

	return nil, &drill.InsufficientDistractorsError{Need: need, Got: len(out)}
}
