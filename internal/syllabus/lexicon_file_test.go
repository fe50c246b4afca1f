package syllabus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ayasuda/kanjidrill/internal/drill"
)

func writeLexicon(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexicon.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write lexicon: %v", err)
	}
	return path
}

func TestLoadLexicon(t *testing.T) {
	path := writeLexicon(t, `{
		"name": "n5",
		"items": [
			{"pivot": "家", "kind": "kanji", "readings": ["いえ"], "glosses": ["house"]},
			{"pivot": "りんご", "kind": "word", "readings": ["りんご"], "glosses": ["apple"]}
		]
	}`)

	lex, err := LoadLexicon(path, nil)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if lex.Name() != "n5" {
		t.Errorf("name = %q, want n5", lex.Name())
	}
	items := lex.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Kind != drill.PivotKanji || items[1].Kind != drill.PivotWord {
		t.Errorf("kinds = %s/%s, want k/w", items[0].Kind, items[1].Kind)
	}
}

func TestLoadLexiconDefaultsNameToPath(t *testing.T) {
	path := writeLexicon(t, `{"items": []}`)
	lex, err := LoadLexicon(path, nil)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}
	if lex.Name() != path {
		t.Errorf("name = %q, want file path", lex.Name())
	}
}

func TestLoadLexiconRejectsUnknownKind(t *testing.T) {
	path := writeLexicon(t, `{"items": [{"pivot": "家", "kind": "radical"}]}`)
	if _, err := LoadLexicon(path, nil); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestLoadLexiconValidatesPivots(t *testing.T) {
	path := writeLexicon(t, `{"items": [{"pivot": "日a", "kind": "kanji"}]}`)
	if _, err := LoadLexicon(path, nil); err == nil {
		t.Error("expected error for malformed kanji pivot")
	}
}

func TestLoadLexiconRejectsMalformedJSON(t *testing.T) {
	path := writeLexicon(t, `{"items": [`)
	if _, err := LoadLexicon(path, nil); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
