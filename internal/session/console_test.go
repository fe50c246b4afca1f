package session

import (
	"context"
	"strings"
	"testing"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
)

func TestRunConsoleRecordsEveryAnswer(t *testing.T) {
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Readings: []string{"ひ"}, Glosses: []string{"sun"}},
		syllabus.Item{Pivot: "口", Kind: drill.PivotKanji, Readings: []string{"くち"}, Glosses: []string{"mouth"}},
	)
	repo := newMemRepo()
	b := newTestBuilder(t, syl, repo, []string{"reading"}, richSource())

	set, report, err := b.BuildTestSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuildTestSet: %v", err)
	}

	// Always pick option 1; it is a valid option regardless of the
	// per-question display shuffle.
	in := strings.NewReader("1\n1\n")
	var out strings.Builder
	if err := RunConsole(context.Background(), repo, set, report, "u1", in, &out); err != nil {
		t.Fatalf("RunConsole: %v", err)
	}

	if len(set.Responses) != len(set.Questions) {
		t.Errorf("recorded %d responses for %d questions", len(set.Responses), len(set.Questions))
	}
	cov, err := set.Coverage()
	if err != nil {
		t.Fatalf("Coverage: %v", err)
	}
	if cov != 1 {
		t.Errorf("coverage = %v, want 1", cov)
	}
	if !strings.Contains(out.String(), "Answered 100%") {
		t.Errorf("summary missing from output:\n%s", out.String())
	}
}

func TestRunConsoleRepromptsOnBadInput(t *testing.T) {
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Readings: []string{"ひ"}, Glosses: []string{"sun"}},
	)
	repo := newMemRepo()
	b := newTestBuilder(t, syl, repo, []string{"reading"}, richSource())

	set, report, err := b.BuildTestSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuildTestSet: %v", err)
	}

	// Garbage, out-of-range, then a valid pick.
	in := strings.NewReader("x\n9\n2\n")
	var out strings.Builder
	if err := RunConsole(context.Background(), repo, set, report, "u1", in, &out); err != nil {
		t.Fatalf("RunConsole: %v", err)
	}
	if len(set.Responses) != 1 {
		t.Errorf("recorded %d responses, want 1", len(set.Responses))
	}
	if !strings.Contains(out.String(), "Enter a number between 1 and 4.") {
		t.Errorf("expected re-prompt hint in output:\n%s", out.String())
	}
}

func TestRunConsoleFailsOnClosedInput(t *testing.T) {
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Readings: []string{"ひ"}, Glosses: []string{"sun"}},
	)
	repo := newMemRepo()
	b := newTestBuilder(t, syl, repo, []string{"reading"}, richSource())

	set, report, err := b.BuildTestSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuildTestSet: %v", err)
	}

	var out strings.Builder
	if err := RunConsole(context.Background(), repo, set, report, "u1", strings.NewReader(""), &out); err == nil {
		t.Error("expected error when input closes before the set is answered")
	}
}

func TestRunConsoleEmptySetPrintsSkips(t *testing.T) {
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Readings: []string{"ひ"}, Glosses: []string{"sun"}},
	)
	repo := newMemRepo()
	empty := &fixedSource{byDomain: map[syllabus.Domain][]string{}}
	b := newTestBuilder(t, syl, repo, []string{"reading"}, empty)

	set, report, err := b.BuildTestSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuildTestSet: %v", err)
	}

	var out strings.Builder
	if err := RunConsole(context.Background(), repo, set, report, "u1", strings.NewReader(""), &out); err != nil {
		t.Fatalf("RunConsole: %v", err)
	}
	if !strings.Contains(out.String(), "No questions could be generated") {
		t.Errorf("missing empty-set notice:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "日") {
		t.Errorf("skip report missing the skipped concept:\n%s", out.String())
	}
}
