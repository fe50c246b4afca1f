package plugins

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/ayasuda/kanjidrill/internal/syllabus"
	"github.com/ayasuda/kanjidrill/internal/usermodel"
)

// stubSource returns a fixed candidate list regardless of item or domain.
type stubSource struct {
	values []string
	err    error
}

func (s *stubSource) SampleDistractors(_ context.Context, _ string, _ syllabus.Item, _ syllabus.Domain, k int) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	if k > len(s.values) {
		k = len(s.values)
	}
	return s.values[:k], nil
}

var _ usermodel.DistractorSource = (*stubSource)(nil)

func testDeps(src usermodel.DistractorSource) Deps {
	return Deps{
		Distractors: src,
		OptionCount: 4,
		Rand:        rand.New(rand.NewSource(1)),
	}
}

func TestLoadPreservesOrder(t *testing.T) {
	reg, err := Load([]string{"gloss", "reading"}, testDeps(&stubSource{}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := reg.Factories()
	if len(got) != 2 {
		t.Fatalf("expected 2 factories, got %d", len(got))
	}
	if got[0].Name() != "gloss" || got[1].Name() != "reading" {
		t.Errorf("order = [%s %s], want [gloss reading]", got[0].Name(), got[1].Name())
	}
}

func TestLoadUnknownPlugin(t *testing.T) {
	_, err := Load([]string{"reading", "nope"}, testDeps(&stubSource{}))
	var loadErr *PluginLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected PluginLoadError, got %v", err)
	}
	if loadErr.Name != "nope" {
		t.Errorf("error names plugin %q, want nope", loadErr.Name)
	}
}

func TestConcurrentGetQuestion(t *testing.T) {
	// The registry is read-only after Load and its factories must be
	// callable from many request goroutines at once; run under -race.
	src := &stubSource{values: []string{"a", "b", "c", "d", "e", "f"}}
	reg, err := Load([]string{"reading", "gloss"}, testDeps(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				for _, f := range reg.Eligible(true) {
					if _, err := f.GetQuestion(context.Background(), waterItem, "u1"); err != nil {
						t.Errorf("GetQuestion: %v", err)
						return
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestEligible(t *testing.T) {
	reg, err := Load([]string{"reading", "surface", "gloss"}, testDeps(&stubSource{}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	names := func(fs []Factory) []string {
		out := make([]string, len(fs))
		for i, f := range fs {
			out[i] = f.Name()
		}
		return out
	}

	kanji := names(reg.Eligible(true))
	if len(kanji) != 2 || kanji[0] != "reading" || kanji[1] != "gloss" {
		t.Errorf("kanji-eligible = %v, want [reading gloss]", kanji)
	}

	words := names(reg.Eligible(false))
	if len(words) != 3 {
		t.Errorf("word-eligible = %v, want all three", words)
	}
}
