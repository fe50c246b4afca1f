package syllabus

import (
	"math/rand"
	"testing"

	"github.com/ayasuda/kanjidrill/internal/drill"
)

func TestItemHasKanji(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"kanji item", Item{Pivot: "家", Kind: drill.PivotKanji}, true},
		{"word with kanji", Item{Pivot: "九つ", Kind: drill.PivotWord}, true},
		{"kana-only word", Item{Pivot: "りんご", Kind: drill.PivotWord}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.HasKanji(); got != tt.want {
				t.Errorf("HasKanji(%q) = %v, want %v", tt.item.Pivot, got, tt.want)
			}
		})
	}
}

func TestRandomItemsWithoutReplacement(t *testing.T) {
	lex := Builtin(rand.New(rand.NewSource(1)))
	total := len(lex.Items())

	got := lex.RandomItems(total)
	if len(got) != total {
		t.Fatalf("expected %d items, got %d", total, len(got))
	}
	seen := make(map[string]bool, total)
	for _, it := range got {
		if seen[it.Pivot] {
			t.Errorf("item %q sampled twice", it.Pivot)
		}
		seen[it.Pivot] = true
	}
}

func TestRandomItemsClampsToSize(t *testing.T) {
	lex := NewLexicon("tiny", []Item{
		{Pivot: "家", Kind: drill.PivotKanji},
		{Pivot: "水", Kind: drill.PivotKanji},
	}, rand.New(rand.NewSource(1)))

	if got := lex.RandomItems(10); len(got) != 2 {
		t.Errorf("expected 2 items from a 2-item lexicon, got %d", len(got))
	}
}

func TestRandomItemsDoesNotMutateLexicon(t *testing.T) {
	lex := Builtin(rand.New(rand.NewSource(7)))
	before := make([]string, len(lex.Items()))
	for i, it := range lex.Items() {
		before[i] = it.Pivot
	}

	lex.RandomItems(5)

	for i, it := range lex.Items() {
		if it.Pivot != before[i] {
			t.Fatalf("RandomItems reordered the lexicon at %d: %q -> %q", i, before[i], it.Pivot)
		}
	}
}

func TestPool(t *testing.T) {
	lex := NewLexicon("test", []Item{
		{Pivot: "家", Kind: drill.PivotKanji, Readings: []string{"いえ", "カ"}, Glosses: []string{"house"}},
		{Pivot: "水", Kind: drill.PivotKanji, Readings: []string{"みず"}, Glosses: []string{"water"}},
		{Pivot: "川", Kind: drill.PivotKanji, Readings: []string{"かわ"}, Glosses: []string{"river", "water"}},
	}, rand.New(rand.NewSource(1)))

	readings := lex.Pool(DomainReading)
	if len(readings) != 4 {
		t.Errorf("reading pool = %v, want 4 distinct readings", readings)
	}

	surfaces := lex.Pool(DomainSurface)
	if len(surfaces) != 3 {
		t.Errorf("surface pool = %v, want 3 pivots", surfaces)
	}

	// "water" appears under two items; the pool holds distinct values.
	glosses := lex.Pool(DomainGloss)
	if len(glosses) != 3 {
		t.Errorf("gloss pool = %v, want 3 distinct glosses", glosses)
	}
}
