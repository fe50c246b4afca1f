// Package syllabus provides the set of kanji and words a learner is
// studying, from which drill concepts are sampled.
package syllabus

import (
	"math/rand"

	"github.com/ayasuda/kanjidrill/internal/drill"
)

// Item is a single studiable concept: a kanji with its readings and
// glosses, or a word with its surface form, readings, and glosses.
type Item struct {
	Pivot    string
	Kind     drill.PivotKind
	Readings []string
	Glosses  []string
}

// HasKanji reports whether drilling this item requires kanji knowledge:
// either the item is itself a kanji, or it is a word whose surface form
// contains kanji.
func (it Item) HasKanji() bool {
	if it.Kind == drill.PivotKanji {
		return true
	}
	return drill.ContainsKanji(it.Pivot)
}

// Syllabus exposes the concepts available for drilling.
type Syllabus interface {
	// Name identifies the syllabus (e.g. "builtin", a lexicon file path).
	Name() string

	// RandomItems returns up to n items sampled without replacement.
	// Fewer than n are returned when the syllabus is smaller than n.
	RandomItems(n int) []Item
}

// Lexicon is an in-memory Syllabus backed by a flat item list.
type Lexicon struct {
	name  string
	items []Item
	rng   *rand.Rand
}

// NewLexicon builds a Lexicon over items. The rng drives sampling; pass
// nil to use a time-seeded source.
func NewLexicon(name string, items []Item, rng *rand.Rand) *Lexicon {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Lexicon{name: name, items: items, rng: rng}
}

func (l *Lexicon) Name() string { return l.name }

// RandomItems samples without replacement via a partial Fisher–Yates over
// a copy of the item list.
func (l *Lexicon) RandomItems(n int) []Item {
	if n > len(l.items) {
		n = len(l.items)
	}
	pool := make([]Item, len(l.items))
	copy(pool, l.items)
	for i := 0; i < n; i++ {
		j := i + l.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Items returns the full item list.
func (l *Lexicon) Items() []Item { return l.items }

// Pool collects all distinct values in the given distractor domain across
// the whole lexicon. Factories and the error model pad exhausted candidate
// pools from here.
func (l *Lexicon) Pool(domain Domain) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, it := range l.items {
		switch domain {
		case DomainReading:
			for _, r := range it.Readings {
				add(r)
			}
		case DomainSurface:
			add(it.Pivot)
		case DomainGloss:
			for _, g := range it.Glosses {
				add(g)
			}
		}
	}
	return out
}

// Domain names the space a distractor value is drawn from.
type Domain string

const (
	DomainReading Domain = "reading"
	DomainSurface Domain = "surface"
	DomainGloss   Domain = "gloss"
)
