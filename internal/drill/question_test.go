package drill

import (
	"errors"
	"testing"
)

func newTestQuestion(t *testing.T) *MultipleChoiceQuestion {
	t.Helper()
	q, err := NewMultipleChoiceQuestion("家", PivotKanji, PivotToReading, "reading", "家")
	if err != nil {
		t.Fatalf("NewMultipleChoiceQuestion: %v", err)
	}
	return q
}

func TestInstructions(t *testing.T) {
	tests := []struct {
		typ  QuestionType
		kind PivotKind
		want string
	}{
		{PivotToReading, PivotKanji, "Choose the reading which matches the given kanji."},
		{PivotToGloss, PivotWord, "Choose the gloss which matches the given word."},
		{ReadingToPivot, PivotWord, "Choose the word which matches the given reading."},
		{GlossToPivot, PivotKanji, "Choose the kanji which matches the given gloss."},
	}
	for _, tt := range tests {
		q := Question{Pivot: Pivot{Value: "家", Kind: tt.kind}, Type: tt.typ}
		if got := q.Instructions(); got != tt.want {
			t.Errorf("Instructions(%s, %s) = %q, want %q", tt.typ, tt.kind, got, tt.want)
		}
	}
}

func TestNewMultipleChoiceQuestionRejectsUnknownType(t *testing.T) {
	if _, err := NewMultipleChoiceQuestion("家", PivotKanji, QuestionType("zz"), "p", "家"); err == nil {
		t.Error("expected error for unknown question type")
	}
}

func TestAddOptions(t *testing.T) {
	q := newTestQuestion(t)
	if err := q.AddOptions([]string{"みず", "ひ", "やま"}, "いえ"); err != nil {
		t.Fatalf("AddOptions: %v", err)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	correct := 0
	for _, o := range q.Options {
		if o.IsCorrect {
			correct++
			if o.Value != "いえ" {
				t.Errorf("correct option value = %q, want いえ", o.Value)
			}
		}
	}
	if correct != 1 {
		t.Errorf("expected exactly 1 correct option, got %d", correct)
	}
}

func TestAddOptionsRejectsAnswerAsDistractor(t *testing.T) {
	q := newTestQuestion(t)
	err := q.AddOptions([]string{"みず", "いえ"}, "いえ")
	if !errors.Is(err, ErrAnswerIsDistractor) {
		t.Errorf("expected ErrAnswerIsDistractor, got %v", err)
	}
}

func TestAddOptionsRejectsEmptyValues(t *testing.T) {
	q := newTestQuestion(t)
	if err := q.AddOptions([]string{"みず", ""}, "いえ"); !errors.Is(err, ErrEmptyOptionValue) {
		t.Errorf("empty distractor: expected ErrEmptyOptionValue, got %v", err)
	}
	if err := q.AddOptions([]string{"みず"}, ""); !errors.Is(err, ErrEmptyOptionValue) {
		t.Errorf("empty answer: expected ErrEmptyOptionValue, got %v", err)
	}
}

func TestAddOptionsRejectsDuplicates(t *testing.T) {
	q := newTestQuestion(t)
	err := q.AddOptions([]string{"みず", "ひ", "みず"}, "いえ")
	var dupErr *DuplicateOptionError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateOptionError, got %v", err)
	}
	if dupErr.Value != "みず" {
		t.Errorf("duplicate value = %q, want みず", dupErr.Value)
	}
}

func TestAddOptionsLeavesNoPartialState(t *testing.T) {
	q := newTestQuestion(t)
	if err := q.AddOptions([]string{"みず", "みず"}, "いえ"); err == nil {
		t.Fatal("expected error")
	}
	if len(q.Options) != 0 {
		t.Errorf("failed AddOptions left %d options behind", len(q.Options))
	}
}

func TestAnswer(t *testing.T) {
	q := newTestQuestion(t)
	if _, ok := q.Answer(); ok {
		t.Error("Answer() on empty question should report not found")
	}
	if err := q.AddOptions([]string{"みず"}, "いえ"); err != nil {
		t.Fatalf("AddOptions: %v", err)
	}
	ans, ok := q.Answer()
	if !ok || ans.Value != "いえ" {
		t.Errorf("Answer() = %+v, %v; want いえ, true", ans, ok)
	}
}
