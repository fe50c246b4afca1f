package syllabus

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/ayasuda/kanjidrill/internal/drill"
)

// lexiconFile is the on-disk shape of a lexicon.
type lexiconFile struct {
	Name  string     `json:"name"`
	Items []itemJSON `json:"items"`
}

type itemJSON struct {
	Pivot    string   `json:"pivot"`
	Kind     string   `json:"kind"` // "kanji" or "word"
	Readings []string `json:"readings"`
	Glosses  []string `json:"glosses"`
}

// LoadLexicon reads a lexicon from a JSON file. Every item's pivot is
// validated on load, so a malformed lexicon fails here rather than midway
// through a drill session.
func LoadLexicon(path string, rng *rand.Rand) (*Lexicon, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var lf lexiconFile
	if err := json.Unmarshal(raw, &lf); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}

	items := make([]Item, 0, len(lf.Items))
	for i, it := range lf.Items {
		var kind drill.PivotKind
		switch it.Kind {
		case "kanji":
			kind = drill.PivotKanji
		case "word":
			kind = drill.PivotWord
		default:
			return nil, fmt.Errorf("lexicon %s item %d: unknown kind %q", path, i, it.Kind)
		}
		if _, err := drill.NewPivot(it.Pivot, kind); err != nil {
			return nil, fmt.Errorf("lexicon %s item %d: %w", path, i, err)
		}
		items = append(items, Item{
			Pivot:    it.Pivot,
			Kind:     kind,
			Readings: it.Readings,
			Glosses:  it.Glosses,
		})
	}

	name := lf.Name
	if name == "" {
		name = path
	}
	return NewLexicon(name, items, rng), nil
}
