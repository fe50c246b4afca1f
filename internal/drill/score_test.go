package drill

import (
	"errors"
	"testing"
)

func TestCoverage(t *testing.T) {
	set := buildSet(t, 1, 4)
	cov, err := set.Coverage()
	if err != nil {
		t.Fatalf("Coverage: %v", err)
	}
	if cov != 0 {
		t.Errorf("coverage with no responses = %v, want 0", cov)
	}

	set.Responses = []Response{
		{QuestionID: 1, Option: Option{IsCorrect: true}},
		{QuestionID: 2, Option: Option{IsCorrect: false}},
	}
	cov, err = set.Coverage()
	if err != nil {
		t.Fatalf("Coverage: %v", err)
	}
	if cov != 0.5 {
		t.Errorf("coverage = %v, want 0.5", cov)
	}
}

func TestAccuracy(t *testing.T) {
	set := buildSet(t, 1, 4)
	set.Responses = []Response{
		{QuestionID: 1, Option: Option{IsCorrect: true}},
		{QuestionID: 2, Option: Option{IsCorrect: false}},
		{QuestionID: 3, Option: Option{IsCorrect: true}},
	}
	acc, err := set.Accuracy()
	if err != nil {
		t.Fatalf("Accuracy: %v", err)
	}
	if acc != 0.5 {
		t.Errorf("accuracy = %v, want 0.5 (2 correct of 4 questions)", acc)
	}
}

func TestScoringEmptySet(t *testing.T) {
	set := &TestSet{ID: 1, UserID: "u1"}
	if _, err := set.Coverage(); !errors.Is(err, ErrEmptyTestSet) {
		t.Errorf("Coverage on empty set: expected ErrEmptyTestSet, got %v", err)
	}
	if _, err := set.Accuracy(); !errors.Is(err, ErrEmptyTestSet) {
		t.Errorf("Accuracy on empty set: expected ErrEmptyTestSet, got %v", err)
	}
}
