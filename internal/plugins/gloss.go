package plugins

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
	"github.com/ayasuda/kanjidrill/internal/usermodel"
)

// GlossQuestionFactory drills pivot→gloss: the stimulus is the kanji or
// word, the learner picks its English gloss.
type GlossQuestionFactory struct {
	distractors usermodel.DistractorSource
	optionCount int
	rng         *rand.Rand
}

// NewGlossQuestionFactory builds the factory from registry deps.
func NewGlossQuestionFactory(deps Deps) *GlossQuestionFactory {
	return &GlossQuestionFactory{
		distractors: deps.Distractors,
		optionCount: deps.OptionCount,
		rng:         deps.Rand,
	}
}

func (f *GlossQuestionFactory) Name() string        { return "gloss" }
func (f *GlossQuestionFactory) Description() string { return "pick the gloss for a kanji or word" }
func (f *GlossQuestionFactory) SupportsKanji() bool { return true }
func (f *GlossQuestionFactory) SupportsWords() bool { return true }

func (f *GlossQuestionFactory) GetQuestion(ctx context.Context, item syllabus.Item, userID string) (*drill.MultipleChoiceQuestion, error) {
	if len(item.Glosses) == 0 {
		return nil, fmt.Errorf("item %q has no glosses", item.Pivot)
	}
	answer := item.Glosses[f.rng.Intn(len(item.Glosses))]

	// All of the item's glosses are excluded, not just the chosen answer.
	distractors, err := gatherDistractors(ctx, f.distractors, userID, item,
		syllabus.DomainGloss, f.optionCount-1, item.Glosses)
	if err != nil {
		return nil, err
	}

	q, err := drill.NewMultipleChoiceQuestion(item.Pivot, item.Kind, drill.PivotToGloss, f.Name(), item.Pivot)
	if err != nil {
		return nil, err
	}
	if err := q.AddOptions(distractors, answer); err != nil {
		return nil, err
	}
	return q, nil
}
