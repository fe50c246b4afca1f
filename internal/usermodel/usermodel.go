// Package usermodel supplies per-learner distractor candidates based on
// the learner's observed error distribution. How the distribution is
// estimated is not this package's business; it only defines the sampling
// capability question factories consume and a store-backed sampler that
// prefers values the learner has actually confused before.
package usermodel

import (
	"context"

	"github.com/ayasuda/kanjidrill/internal/syllabus"
)

// DistractorSource samples up to k candidate distractor values for an
// item in the given domain, preferring values this learner is likely to
// confuse. It may return fewer than k distinct values; callers must treat
// a short result as candidate-pool exhaustion, not retry against it.
type DistractorSource interface {
	SampleDistractors(ctx context.Context, userID string, item syllabus.Item, domain syllabus.Domain, k int) ([]string, error)
}
