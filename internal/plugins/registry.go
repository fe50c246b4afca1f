package plugins

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/ayasuda/kanjidrill/internal/usermodel"
)

// Deps carries the collaborators every factory is built with.
type Deps struct {
	// Distractors is the learner error model consulted for wrong options.
	Distractors usermodel.DistractorSource

	// OptionCount is the number of options per question, answer included.
	OptionCount int

	// Rand seeds answer selection within the factories. Nil means a
	// time-seeded source. Load re-bases it on a lock-guarded source, so
	// the loaded factories may serve GetQuestion concurrently.
	Rand *rand.Rand
}

// lockedSource serializes draws from a rand source. The registry is
// immutable after Load; this keeps its factories safe for concurrent
// GetQuestion calls as well.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// builtins maps configuration identifiers to factory constructors.
var builtins = map[string]func(Deps) Factory{
	"reading": func(d Deps) Factory { return NewReadingQuestionFactory(d) },
	"surface": func(d Deps) Factory { return NewSurfaceQuestionFactory(d) },
	"gloss":   func(d Deps) Factory { return NewGlossQuestionFactory(d) },
}

// PluginLoadError indicates a configured plugin identifier could not be
// resolved. It is fatal at startup, never a per-request error.
type PluginLoadError struct {
	Name string
}

func (e *PluginLoadError) Error() string {
	return fmt.Sprintf("unknown question plugin %q", e.Name)
}

// Registry is the resolved factory set. It is built once at startup from
// the configured identifier list and immutable afterwards, so concurrent
// readers need no synchronization.
type Registry struct {
	factories []Factory
}

// Load resolves names against the builtin factory table, preserving the
// configured order. An unresolvable name fails fast with a
// *PluginLoadError.
func Load(names []string, deps Deps) (*Registry, error) {
	seed := rand.Int63()
	if deps.Rand != nil {
		seed = deps.Rand.Int63()
	}
	deps.Rand = rand.New(&lockedSource{src: rand.NewSource(seed)})
	factories := make([]Factory, 0, len(names))
	for _, name := range names {
		construct, ok := builtins[name]
		if !ok {
			return nil, &PluginLoadError{Name: name}
		}
		factories = append(factories, construct(deps))
	}
	return &Registry{factories: factories}, nil
}

// Factories returns every loaded factory in configuration order.
func (r *Registry) Factories() []Factory {
	out := make([]Factory, len(r.factories))
	copy(out, r.factories)
	return out
}

// Eligible returns the factories able to drill a concept: kanji-capable
// ones when the concept requires kanji knowledge, word-capable ones
// otherwise.
func (r *Registry) Eligible(requiresKanji bool) []Factory {
	var out []Factory
	for _, f := range r.factories {
		if requiresKanji && f.SupportsKanji() {
			out = append(out, f)
		} else if !requiresKanji && f.SupportsWords() {
			out = append(out, f)
		}
	}
	return out
}
