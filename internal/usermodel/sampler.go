package usermodel

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ayasuda/kanjidrill/internal/syllabus"
)

// ResponseHistory exposes the learner's past mistakes: the option values
// they wrongly selected for questions in a given distractor domain, most
// frequent first. Implemented by the store.
type ResponseHistory interface {
	WrongValues(ctx context.Context, userID string, domain syllabus.Domain, limit int) ([]string, error)
}

// PoolProvider supplies the syllabus-wide value pool for a domain, used to
// pad samples when the learner's error history is thin.
type PoolProvider interface {
	Pool(domain syllabus.Domain) []string
}

// Sampler is a DistractorSource that draws from the learner's recorded
// wrong answers first and pads from the syllabus pool. It never filters
// against the item's correct values; that is the factory's job, since
// only the factory knows the full set of values that count as correct.
type Sampler struct {
	history ResponseHistory
	pool    PoolProvider
	rng     *rand.Rand
}

// NewSampler builds a Sampler. Pass a nil rng for a time-seeded source.
func NewSampler(history ResponseHistory, pool PoolProvider, rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Sampler{history: history, pool: pool, rng: rng}
}

// SampleDistractors returns up to k distinct candidates for item in
// domain. The result excludes the item's own pivot value but may still
// contain values that are correct for the item in this domain; callers
// filter those out.
func (s *Sampler) SampleDistractors(ctx context.Context, userID string, item syllabus.Item, domain syllabus.Domain, k int) ([]string, error) {
	seen := map[string]bool{item.Pivot: true}
	out := make([]string, 0, k)

	take := func(v string) {
		if len(out) < k && v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	if s.history != nil {
		wrong, err := s.history.WrongValues(ctx, userID, domain, k)
		if err != nil {
			return nil, fmt.Errorf("query error history: %w", err)
		}
		for _, v := range wrong {
			take(v)
		}
	}

	if len(out) < k && s.pool != nil {
		pool := s.pool.Pool(domain)
		for _, i := range s.rng.Perm(len(pool)) {
			if len(out) == k {
				break
			}
			take(pool[i])
		}
	}

	return out, nil
}
