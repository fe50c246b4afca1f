// Package session builds test sets: it samples concepts from the
// learner's syllabus, dispatches each to an eligible question factory,
// and assembles the durable set the drill loop runs over.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/plugins"
	"github.com/ayasuda/kanjidrill/internal/store"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
)

// Builder assembles test sets for a learner.
type Builder struct {
	registry *plugins.Registry
	syllabus syllabus.Syllabus
	sets     store.TestSetRepo
	perSet   int
	rng      *rand.Rand
}

// NewBuilder wires a Builder. questionsPerSet is the concept batch size;
// rng drives seed generation and factory choice (nil for time-seeded).
func NewBuilder(registry *plugins.Registry, syl syllabus.Syllabus, sets store.TestSetRepo, questionsPerSet int, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Builder{
		registry: registry,
		syllabus: syl,
		sets:     sets,
		perSet:   questionsPerSet,
		rng:      rng,
	}
}

// Skip records one concept the builder could not produce a question for.
type Skip struct {
	Item   syllabus.Item
	Reason error
}

// Report is the partial-success account of a build: how many concepts
// were requested, how many questions were produced, and which concepts
// were skipped and why.
type Report struct {
	Requested int
	Built     int
	Skipped   []Skip
}

// BuildTestSet creates and persists a new test set for userID.
//
// The set row and its seed are persisted before any question is
// generated, so even a build that fails midway leaves a replayable set.
// Per concept, one factory is chosen uniformly among the eligible ones;
// if it reports distractor exhaustion the builder retries once with a
// different eligible factory, then skips the concept. Exhaustion is never
// retried against the same factory: the candidate pool that ran dry once
// runs dry every time. Any other factory error aborts the build, since it
// signals a plugin bug rather than thin data.
func (b *Builder) BuildTestSet(ctx context.Context, userID string) (*drill.TestSet, *Report, error) {
	seed := int64(b.rng.Intn(drill.SeedRange))
	set, err := b.sets.Create(ctx, userID, seed, drill.ShuffleVersion)
	if err != nil {
		return nil, nil, fmt.Errorf("persist test set: %w", err)
	}

	items := b.syllabus.RandomItems(b.perSet)
	report := &Report{Requested: len(items)}

	var questions []*drill.MultipleChoiceQuestion
	for _, item := range items {
		q, err := b.questionFor(ctx, item, userID)
		if err != nil {
			var exhausted *drill.InsufficientDistractorsError
			if errors.As(err, &exhausted) || errors.Is(err, errNoEligibleFactory) {
				report.Skipped = append(report.Skipped, Skip{Item: item, Reason: err})
				continue
			}
			return nil, nil, fmt.Errorf("question for %q: %w", item.Pivot, err)
		}
		questions = append(questions, q)
	}

	if len(questions) > 0 {
		if err := b.sets.AttachQuestions(ctx, set.ID, questions); err != nil {
			return nil, nil, fmt.Errorf("attach questions: %w", err)
		}
	}
	set.Questions = questions
	report.Built = len(questions)
	return set, report, nil
}

var errNoEligibleFactory = errors.New("no eligible question factory")

// questionFor dispatches one concept to a factory, with the bounded
// exhaustion retry described on BuildTestSet.
func (b *Builder) questionFor(ctx context.Context, item syllabus.Item, userID string) (*drill.MultipleChoiceQuestion, error) {
	eligible := b.registry.Eligible(item.HasKanji())
	if len(eligible) == 0 {
		return nil, errNoEligibleFactory
	}

	first := b.rng.Intn(len(eligible))
	q, err := eligible[first].GetQuestion(ctx, item, userID)
	if err == nil {
		return q, nil
	}

	var exhausted *drill.InsufficientDistractorsError
	if !errors.As(err, &exhausted) || len(eligible) == 1 {
		return nil, err
	}

	// One alternate factory, chosen uniformly among the rest.
	alt := b.rng.Intn(len(eligible) - 1)
	if alt >= first {
		alt++
	}
	return eligible[alt].GetQuestion(ctx, item, userID)
}

// RecordResponse appends userID's answer to the set and mirrors it into
// the in-memory set so coverage and accuracy reflect it immediately.
func RecordResponse(ctx context.Context, sets store.TestSetRepo, set *drill.TestSet, questionID, optionID int, userID string) (drill.Response, error) {
	resp, err := sets.AppendResponse(ctx, set.ID, questionID, optionID, userID)
	if err != nil {
		return drill.Response{}, err
	}
	set.Responses = append(set.Responses, resp)
	return resp, nil
}
