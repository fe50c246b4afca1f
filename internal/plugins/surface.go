package plugins

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
	"github.com/ayasuda/kanjidrill/internal/usermodel"
)

// SurfaceQuestionFactory drills reading→pivot: the stimulus is a reading,
// the learner picks the written form it belongs to. Word-only: a bare
// kanji's readings are shared by too many characters for a single written
// form to be the one defensible answer.
type SurfaceQuestionFactory struct {
	distractors usermodel.DistractorSource
	optionCount int
	rng         *rand.Rand
}

// NewSurfaceQuestionFactory builds the factory from registry deps.
func NewSurfaceQuestionFactory(deps Deps) *SurfaceQuestionFactory {
	return &SurfaceQuestionFactory{
		distractors: deps.Distractors,
		optionCount: deps.OptionCount,
		rng:         deps.Rand,
	}
}

func (f *SurfaceQuestionFactory) Name() string        { return "surface" }
func (f *SurfaceQuestionFactory) Description() string { return "pick the written form for a reading" }
func (f *SurfaceQuestionFactory) SupportsKanji() bool { return false }
func (f *SurfaceQuestionFactory) SupportsWords() bool { return true }

func (f *SurfaceQuestionFactory) GetQuestion(ctx context.Context, item syllabus.Item, userID string) (*drill.MultipleChoiceQuestion, error) {
	if len(item.Readings) == 0 {
		return nil, fmt.Errorf("item %q has no readings", item.Pivot)
	}
	stimulus := item.Readings[f.rng.Intn(len(item.Readings))]

	distractors, err := gatherDistractors(ctx, f.distractors, userID, item,
		syllabus.DomainSurface, f.optionCount-1, []string{item.Pivot})
	if err != nil {
		return nil, err
	}

	q, err := drill.NewMultipleChoiceQuestion(item.Pivot, item.Kind, drill.ReadingToPivot, f.Name(), stimulus)
	if err != nil {
		return nil, err
	}
	if err := q.AddOptions(distractors, item.Pivot); err != nil {
		return nil, err
	}
	return q, nil
}
