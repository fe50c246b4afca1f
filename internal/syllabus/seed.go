package syllabus

import (
	"math/rand"

	"github.com/ayasuda/kanjidrill/internal/drill"
)

// Builtin returns the compiled-in starter lexicon: a small beginner set of
// kanji and words so the app is usable before any lexicon file is
// configured.
func Builtin(rng *rand.Rand) *Lexicon {
	return NewLexicon("builtin", seedItems(), rng)
}

func seedItems() []Item {
	k := drill.PivotKanji
	w := drill.PivotWord
	return []Item{
		{Pivot: "家", Kind: k, Readings: []string{"いえ", "カ", "ヤ"}, Glosses: []string{"house", "home"}},
		{Pivot: "水", Kind: k, Readings: []string{"みず", "スイ"}, Glosses: []string{"water"}},
		{Pivot: "火", Kind: k, Readings: []string{"ひ", "カ"}, Glosses: []string{"fire"}},
		{Pivot: "山", Kind: k, Readings: []string{"やま", "サン"}, Glosses: []string{"mountain"}},
		{Pivot: "川", Kind: k, Readings: []string{"かわ", "セン"}, Glosses: []string{"river"}},
		{Pivot: "日", Kind: k, Readings: []string{"ひ", "ニチ", "ジツ"}, Glosses: []string{"day", "sun"}},
		{Pivot: "月", Kind: k, Readings: []string{"つき", "ゲツ", "ガツ"}, Glosses: []string{"moon", "month"}},
		{Pivot: "人", Kind: k, Readings: []string{"ひと", "ジン", "ニン"}, Glosses: []string{"person"}},
		{Pivot: "口", Kind: k, Readings: []string{"くち", "コウ"}, Glosses: []string{"mouth"}},
		{Pivot: "手", Kind: k, Readings: []string{"て", "シュ"}, Glosses: []string{"hand"}},
		{Pivot: "九つ", Kind: w, Readings: []string{"ここのつ"}, Glosses: []string{"nine"}},
		{Pivot: "学校", Kind: w, Readings: []string{"がっこう"}, Glosses: []string{"school"}},
		{Pivot: "先生", Kind: w, Readings: []string{"せんせい"}, Glosses: []string{"teacher"}},
		{Pivot: "電車", Kind: w, Readings: []string{"でんしゃ"}, Glosses: []string{"electric train"}},
		{Pivot: "時間", Kind: w, Readings: []string{"じかん"}, Glosses: []string{"time", "hour"}},
		{Pivot: "天気", Kind: w, Readings: []string{"てんき"}, Glosses: []string{"weather"}},
		{Pivot: "友達", Kind: w, Readings: []string{"ともだち"}, Glosses: []string{"friend"}},
		{Pivot: "りんご", Kind: w, Readings: []string{"りんご"}, Glosses: []string{"apple"}},
	}
}
