package drill

import "fmt"

// QuestionType identifies which attribute of the pivot is given and which
// the learner must determine.
type QuestionType string

const (
	ReadingToPivot QuestionType = "rp" // given a reading, pick the written form
	GlossToPivot   QuestionType = "gp" // given a gloss, pick the written form
	PivotToGloss   QuestionType = "pg" // given the pivot, pick its gloss
	PivotToReading QuestionType = "pr" // given the pivot, pick its reading
)

// instructionTemplates map each question type to its display template.
// The %s slot takes the pivot kind's label ("kanji" or "word").
var instructionTemplates = map[QuestionType]string{
	ReadingToPivot: "Choose the %s which matches the given reading.",
	GlossToPivot:   "Choose the %s which matches the given gloss.",
	PivotToGloss:   "Choose the gloss which matches the given %s.",
	PivotToReading: "Choose the reading which matches the given %s.",
}

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	_, ok := instructionTemplates[t]
	return ok
}

// Question identifies a pivot and what is being asked about it. It is
// produced by exactly one factory and immutable after creation except for
// the options attached to its multiple-choice specialization.
type Question struct {
	ID     int
	Pivot  Pivot
	Type   QuestionType
	Plugin string // name of the factory that produced the question
}

// Instructions renders the human-readable instruction line for the
// question, e.g. "Choose the reading which matches the given kanji."
func (q *Question) Instructions() string {
	return fmt.Sprintf(instructionTemplates[q.Type], q.Pivot.Kind.Label())
}

// Option is a single choice offered for a question. Option values are
// unique within their question; exactly one carries IsCorrect.
type Option struct {
	ID        int
	Value     string
	IsCorrect bool
}

// MultipleChoiceQuestion is a question presented as a stimulus plus a set
// of options, exactly one of which is correct.
type MultipleChoiceQuestion struct {
	Question
	Stimulus string
	Options  []Option
}

// NewMultipleChoiceQuestion constructs a question with no options yet.
// The pivot is validated; the question type and stimulus must be set by
// the producing factory.
func NewMultipleChoiceQuestion(pivotValue string, kind PivotKind, typ QuestionType, plugin, stimulus string) (*MultipleChoiceQuestion, error) {
	pivot, err := NewPivot(pivotValue, kind)
	if err != nil {
		return nil, err
	}
	if !typ.Valid() {
		return nil, fmt.Errorf("unknown question type %q", typ)
	}
	return &MultipleChoiceQuestion{
		Question: Question{Pivot: pivot, Type: typ, Plugin: plugin},
		Stimulus: stimulus,
	}, nil
}

// AddOptions is the single allowed way to populate a question's options.
// All three invariants are checked before any option is created, so a
// failure leaves the question without partial state:
//
//   - answer must not be among the distractors (ErrAnswerIsDistractor)
//   - every value must be non-empty (ErrEmptyOptionValue)
//   - all values must be pairwise distinct (DuplicateOptionError)
//
// On success one option is appended per distractor plus one correct option
// for answer. Insertion order is not meaningful; presentation layers may
// shuffle for display.
func (q *MultipleChoiceQuestion) AddOptions(distractors []string, answer string) error {
	if answer == "" {
		return ErrEmptyOptionValue
	}
	seen := make(map[string]bool, len(distractors)+1)
	for _, v := range distractors {
		if v == "" {
			return ErrEmptyOptionValue
		}
		if v == answer {
			return ErrAnswerIsDistractor
		}
		if seen[v] {
			return &DuplicateOptionError{Value: v}
		}
		seen[v] = true
	}

	for _, v := range distractors {
		q.Options = append(q.Options, Option{Value: v, IsCorrect: false})
	}
	q.Options = append(q.Options, Option{Value: answer, IsCorrect: true})
	return nil
}

// Answer returns the correct option. The second return is false if the
// question has no options yet.
func (q *MultipleChoiceQuestion) Answer() (Option, bool) {
	for _, o := range q.Options {
		if o.IsCorrect {
			return o, true
		}
	}
	return Option{}, false
}
