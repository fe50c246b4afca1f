package drill

import (
	"errors"
	"testing"
)

func TestNewPivotKanji(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"single kanji", "家", false},
		{"single non-kanji rune", "a", false}, // single-char fallback
		{"multi-char all kanji", "日本", false},
		{"multi-char mixed script", "日a", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPivot(tt.value, PivotKanji)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewPivot(%q, kanji): expected error, got %+v", tt.value, p)
				}
				var invErr *InvalidPivotError
				if !errors.As(err, &invErr) {
					t.Errorf("expected InvalidPivotError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPivot(%q, kanji): %v", tt.value, err)
			}
			if p.Value != tt.value || p.Kind != PivotKanji {
				t.Errorf("got %+v, want value=%q kind=k", p, tt.value)
			}
		})
	}
}

func TestNewPivotWord(t *testing.T) {
	if _, err := NewPivot("九つ", PivotWord); err != nil {
		t.Errorf("NewPivot(九つ, word): %v", err)
	}
	if _, err := NewPivot("りんご", PivotWord); err != nil {
		t.Errorf("NewPivot(りんご, word): %v", err)
	}
	if _, err := NewPivot("", PivotWord); err == nil {
		t.Error("expected error for empty word pivot")
	}
}

func TestNewPivotUnknownKind(t *testing.T) {
	if _, err := NewPivot("家", PivotKind("x")); err == nil {
		t.Error("expected error for unknown pivot kind")
	}
}

func TestPivotKindLabel(t *testing.T) {
	if got := PivotKanji.Label(); got != "kanji" {
		t.Errorf("PivotKanji.Label() = %q, want kanji", got)
	}
	if got := PivotWord.Label(); got != "word" {
		t.Errorf("PivotWord.Label() = %q, want word", got)
	}
}

func TestContainsKanji(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"学校", true},
		{"九つ", true},
		{"りんご", false},
		{"", false},
		{"abc", false},
	}
	for _, tt := range tests {
		if got := ContainsKanji(tt.s); got != tt.want {
			t.Errorf("ContainsKanji(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
