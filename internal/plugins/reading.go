package plugins

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
	"github.com/ayasuda/kanjidrill/internal/usermodel"
)

// ReadingQuestionFactory drills pivot→reading: the stimulus is the kanji
// or word, the learner picks its reading.
type ReadingQuestionFactory struct {
	distractors usermodel.DistractorSource
	optionCount int
	rng         *rand.Rand
}

// NewReadingQuestionFactory builds the factory from registry deps.
func NewReadingQuestionFactory(deps Deps) *ReadingQuestionFactory {
	return &ReadingQuestionFactory{
		distractors: deps.Distractors,
		optionCount: deps.OptionCount,
		rng:         deps.Rand,
	}
}

func (f *ReadingQuestionFactory) Name() string        { return "reading" }
func (f *ReadingQuestionFactory) Description() string { return "pick the reading for a kanji or word" }
func (f *ReadingQuestionFactory) SupportsKanji() bool { return true }
func (f *ReadingQuestionFactory) SupportsWords() bool { return true }

func (f *ReadingQuestionFactory) GetQuestion(ctx context.Context, item syllabus.Item, userID string) (*drill.MultipleChoiceQuestion, error) {
	if len(item.Readings) == 0 {
		return nil, fmt.Errorf("item %q has no readings", item.Pivot)
	}
	answer := item.Readings[f.rng.Intn(len(item.Readings))]

	// Every true reading of the item is excluded from the distractor pool,
	// not just the one chosen as the answer. Otherwise a question could
	// carry two options that are both genuinely correct.
	distractors, err := gatherDistractors(ctx, f.distractors, userID, item,
		syllabus.DomainReading, f.optionCount-1, item.Readings)
	if err != nil {
		return nil, err
	}

	q, err := drill.NewMultipleChoiceQuestion(item.Pivot, item.Kind, drill.PivotToReading, f.Name(), item.Pivot)
	if err != nil {
		return nil, err
	}
	if err := q.AddOptions(distractors, answer); err != nil {
		return nil, err
	}
	return q, nil
}
