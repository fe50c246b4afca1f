package plugins

import (
	"context"
	"errors"
	"testing"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
)

var waterItem = syllabus.Item{
	Pivot:    "水",
	Kind:     drill.PivotKanji,
	Readings: []string{"みず", "スイ"},
	Glosses:  []string{"water"},
}

func TestReadingFactoryBuildsValidQuestion(t *testing.T) {
	src := &stubSource{values: []string{"ひ", "やま", "かわ", "つき", "ひと"}}
	f := NewReadingQuestionFactory(testDeps(src))

	q, err := f.GetQuestion(context.Background(), waterItem, "u1")
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if q.Type != drill.PivotToReading {
		t.Errorf("type = %s, want pr", q.Type)
	}
	if q.Stimulus != "水" {
		t.Errorf("stimulus = %q, want 水", q.Stimulus)
	}
	if len(q.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(q.Options))
	}
	ans, ok := q.Answer()
	if !ok {
		t.Fatal("question has no correct option")
	}
	if ans.Value != "みず" && ans.Value != "スイ" {
		t.Errorf("answer %q is not a reading of 水", ans.Value)
	}
}

func TestReadingFactoryExcludesAllTrueReadings(t *testing.T) {
	// The candidate list leads with both true readings of the item. Neither
	// may surface as a distractor, even the one not chosen as the answer.
	src := &stubSource{values: []string{"みず", "スイ", "ひ", "やま", "かわ", "つき", "ひと"}}
	f := NewReadingQuestionFactory(testDeps(src))

	q, err := f.GetQuestion(context.Background(), waterItem, "u1")
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	for _, o := range q.Options {
		if o.IsCorrect {
			continue
		}
		if o.Value == "みず" || o.Value == "スイ" {
			t.Errorf("true reading %q offered as distractor", o.Value)
		}
	}
}

func TestFactoryReportsExhaustion(t *testing.T) {
	// Only one usable candidate after filtering; three are needed.
	src := &stubSource{values: []string{"みず", "スイ", "ひ"}}
	f := NewReadingQuestionFactory(testDeps(src))

	_, err := f.GetQuestion(context.Background(), waterItem, "u1")
	var exhErr *drill.InsufficientDistractorsError
	if !errors.As(err, &exhErr) {
		t.Fatalf("expected InsufficientDistractorsError, got %v", err)
	}
	if exhErr.Need != 3 || exhErr.Got != 1 {
		t.Errorf("got need=%d got=%d, want need=3 got=1", exhErr.Need, exhErr.Got)
	}
}

func TestFactoryPropagatesSourceError(t *testing.T) {
	srcErr := errors.New("history unavailable")
	f := NewGlossQuestionFactory(testDeps(&stubSource{err: srcErr}))

	_, err := f.GetQuestion(context.Background(), waterItem, "u1")
	if !errors.Is(err, srcErr) {
		t.Errorf("expected source error to propagate, got %v", err)
	}
}

func TestSurfaceFactory(t *testing.T) {
	item := syllabus.Item{
		Pivot:    "学校",
		Kind:     drill.PivotWord,
		Readings: []string{"がっこう"},
		Glosses:  []string{"school"},
	}
	src := &stubSource{values: []string{"先生", "電車", "時間", "天気"}}
	f := NewSurfaceQuestionFactory(testDeps(src))

	q, err := f.GetQuestion(context.Background(), item, "u1")
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	if q.Type != drill.ReadingToPivot {
		t.Errorf("type = %s, want rp", q.Type)
	}
	if q.Stimulus != "がっこう" {
		t.Errorf("stimulus = %q, want がっこう", q.Stimulus)
	}
	ans, _ := q.Answer()
	if ans.Value != "学校" {
		t.Errorf("answer = %q, want 学校", ans.Value)
	}
}

func TestGlossFactoryExcludesAllGlosses(t *testing.T) {
	item := syllabus.Item{
		Pivot:    "家",
		Kind:     drill.PivotKanji,
		Readings: []string{"いえ"},
		Glosses:  []string{"house", "home"},
	}
	src := &stubSource{values: []string{"house", "home", "water", "fire", "mountain", "river", "sun"}}
	f := NewGlossQuestionFactory(testDeps(src))

	q, err := f.GetQuestion(context.Background(), item, "u1")
	if err != nil {
		t.Fatalf("GetQuestion: %v", err)
	}
	for _, o := range q.Options {
		if o.IsCorrect {
			continue
		}
		if o.Value == "house" || o.Value == "home" {
			t.Errorf("true gloss %q offered as distractor", o.Value)
		}
	}
}

func TestGatherDistractorsFiltersEmptyAndDuplicates(t *testing.T) {
	src := &stubSource{values: []string{"", "a", "a", "b", "c", "d"}}
	got, err := gatherDistractors(context.Background(), src, "u1", waterItem, syllabus.DomainGloss, 3, []string{"x", "y", "z"})
	if err != nil {
		t.Fatalf("gatherDistractors: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}
