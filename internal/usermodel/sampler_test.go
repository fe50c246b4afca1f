package usermodel

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
)

type stubHistory struct {
	wrong []string
	err   error
}

func (s *stubHistory) WrongValues(context.Context, string, syllabus.Domain, int) ([]string, error) {
	return s.wrong, s.err
}

type stubPool struct {
	values []string
}

func (s *stubPool) Pool(syllabus.Domain) []string { return s.values }

var homeItem = syllabus.Item{
	Pivot:    "家",
	Kind:     drill.PivotKanji,
	Readings: []string{"いえ"},
	Glosses:  []string{"house"},
}

func TestSamplerPrefersErrorHistory(t *testing.T) {
	s := NewSampler(
		&stubHistory{wrong: []string{"みず", "ひ"}},
		&stubPool{values: []string{"やま", "かわ", "つき"}},
		rand.New(rand.NewSource(1)),
	)

	got, err := s.SampleDistractors(context.Background(), "u1", homeItem, syllabus.DomainReading, 3)
	if err != nil {
		t.Fatalf("SampleDistractors: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %v, want 3 values", got)
	}
	if got[0] != "みず" || got[1] != "ひ" {
		t.Errorf("history values should lead: got %v", got)
	}
}

func TestSamplerPadsFromPool(t *testing.T) {
	s := NewSampler(
		&stubHistory{},
		&stubPool{values: []string{"a", "b", "c", "d"}},
		rand.New(rand.NewSource(1)),
	)

	got, err := s.SampleDistractors(context.Background(), "u1", homeItem, syllabus.DomainGloss, 3)
	if err != nil {
		t.Fatalf("SampleDistractors: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %v, want 3 pool values", got)
	}
}

func TestSamplerExcludesPivotAndDuplicates(t *testing.T) {
	s := NewSampler(
		&stubHistory{wrong: []string{"家", "水", "水"}},
		&stubPool{values: []string{"家", "火"}},
		rand.New(rand.NewSource(1)),
	)

	got, err := s.SampleDistractors(context.Background(), "u1", homeItem, syllabus.DomainSurface, 4)
	if err != nil {
		t.Fatalf("SampleDistractors: %v", err)
	}
	seen := make(map[string]bool)
	for _, v := range got {
		if v == "家" {
			t.Error("sampler returned the item's own pivot")
		}
		if seen[v] {
			t.Errorf("duplicate value %q", v)
		}
		seen[v] = true
	}
	if len(got) != 2 {
		t.Errorf("got %v, want [水 火] in some order", got)
	}
}

func TestSamplerMayReturnShort(t *testing.T) {
	s := NewSampler(&stubHistory{}, &stubPool{values: []string{"a"}}, rand.New(rand.NewSource(1)))

	got, err := s.SampleDistractors(context.Background(), "u1", homeItem, syllabus.DomainGloss, 5)
	if err != nil {
		t.Fatalf("SampleDistractors: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("got %v, want the single pool value", got)
	}
}

func TestSamplerPropagatesHistoryError(t *testing.T) {
	histErr := errors.New("db locked")
	s := NewSampler(&stubHistory{err: histErr}, &stubPool{}, rand.New(rand.NewSource(1)))

	_, err := s.SampleDistractors(context.Background(), "u1", homeItem, syllabus.DomainReading, 3)
	if !errors.Is(err, histErr) {
		t.Errorf("expected history error to propagate, got %v", err)
	}
}
