package drill

import "unicode"

// PivotKind distinguishes the two things a question can test.
type PivotKind string

const (
	PivotKanji PivotKind = "k"
	PivotWord  PivotKind = "w"
)

// Label returns the human-readable name used in instruction templates.
func (k PivotKind) Label() string {
	switch k {
	case PivotKanji:
		return "kanji"
	case PivotWord:
		return "word"
	}
	return string(k)
}

// Valid reports whether k is a known pivot kind.
func (k PivotKind) Valid() bool {
	return k == PivotKanji || k == PivotWord
}

// Pivot is the thing being tested: a single kanji or a word.
type Pivot struct {
	Value string
	Kind  PivotKind
}

// NewPivot validates value against the invariant for kind. A kanji pivot
// must either be a single character (defensive fallback) or consist
// entirely of kanji-script characters. A word pivot must be non-empty.
// The check runs here, at construction time, so a malformed pivot can
// never exist even transiently.
func NewPivot(value string, kind PivotKind) (Pivot, error) {
	switch kind {
	case PivotKanji:
		runes := []rune(value)
		if len(runes) == 0 {
			return Pivot{}, &InvalidPivotError{Value: value, Kind: kind}
		}
		if len(runes) != 1 && !allKanji(runes) {
			return Pivot{}, &InvalidPivotError{Value: value, Kind: kind}
		}
	case PivotWord:
		if len(value) == 0 {
			return Pivot{}, &InvalidPivotError{Value: value, Kind: kind}
		}
	default:
		return Pivot{}, &InvalidPivotError{Value: value, Kind: kind}
	}
	return Pivot{Value: value, Kind: kind}, nil
}

// ContainsKanji reports whether any rune of s is in the kanji script.
func ContainsKanji(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

func allKanji(runes []rune) bool {
	for _, r := range runes {
		if !unicode.Is(unicode.Han, r) {
			return false
		}
	}
	return true
}
