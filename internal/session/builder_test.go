package session

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/plugins"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
)

// memRepo is an in-memory TestSetRepo sufficient for builder tests.
type memRepo struct {
	sets      map[int]*drill.TestSet
	nextSetID int
	nextID    int
	createErr error
}

func newMemRepo() *memRepo {
	return &memRepo{sets: make(map[int]*drill.TestSet), nextSetID: 1, nextID: 1}
}

func (m *memRepo) Create(_ context.Context, userID string, seed int64, shuffleVersion int) (*drill.TestSet, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	set := &drill.TestSet{
		ID:             m.nextSetID,
		UserID:         userID,
		Seed:           seed,
		ShuffleVersion: shuffleVersion,
		CreatedAt:      time.Now(),
	}
	m.nextSetID++
	m.sets[set.ID] = set
	return set, nil
}

func (m *memRepo) AttachQuestions(_ context.Context, setID int, questions []*drill.MultipleChoiceQuestion) error {
	set, ok := m.sets[setID]
	if !ok {
		return errors.New("no such set")
	}
	for _, q := range questions {
		q.ID = m.nextID
		m.nextID++
		for i := range q.Options {
			q.Options[i].ID = m.nextID
			m.nextID++
		}
	}
	set.Questions = append(set.Questions, questions...)
	return nil
}

func (m *memRepo) AppendResponse(_ context.Context, setID, questionID, optionID int, userID string) (drill.Response, error) {
	set, ok := m.sets[setID]
	if !ok {
		return drill.Response{}, errors.New("no such set")
	}
	for _, q := range set.Questions {
		if q.ID != questionID {
			continue
		}
		for _, o := range q.Options {
			if o.ID == optionID {
				resp := drill.Response{ID: m.nextID, QuestionID: questionID, Option: o, UserID: userID, At: time.Now()}
				m.nextID++
				return resp, nil
			}
		}
		return drill.Response{}, errors.New("option not in question")
	}
	return drill.Response{}, errors.New("question not in set")
}

func (m *memRepo) Get(_ context.Context, id int) (*drill.TestSet, error) {
	set, ok := m.sets[id]
	if !ok {
		return nil, errors.New("no such set")
	}
	return set, nil
}

func (m *memRepo) List(context.Context, string) ([]*drill.TestSet, error) { return nil, nil }
func (m *memRepo) Purge(context.Context, string) error                    { return nil }

// fixedSource serves distractor candidates per domain.
type fixedSource struct {
	byDomain map[syllabus.Domain][]string
}

func (f *fixedSource) SampleDistractors(_ context.Context, _ string, _ syllabus.Item, domain syllabus.Domain, k int) ([]string, error) {
	vals := f.byDomain[domain]
	if k > len(vals) {
		k = len(vals)
	}
	return vals[:k], nil
}

func testSyllabus(items ...syllabus.Item) *syllabus.Lexicon {
	return syllabus.NewLexicon("test", items, rand.New(rand.NewSource(1)))
}

func richSource() *fixedSource {
	return &fixedSource{byDomain: map[syllabus.Domain][]string{
		syllabus.DomainReading: {"いえ", "みず", "ひ", "やま", "かわ", "つき", "ひと"},
		syllabus.DomainSurface: {"家", "水", "火", "山", "川", "月", "人"},
		syllabus.DomainGloss:   {"house", "water", "fire", "mountain", "river", "moon", "person"},
	}}
}

func newTestBuilder(t *testing.T, syl syllabus.Syllabus, repo *memRepo, names []string, src *fixedSource) *Builder {
	t.Helper()
	reg, err := plugins.Load(names, plugins.Deps{
		Distractors: src,
		OptionCount: 4,
		Rand:        rand.New(rand.NewSource(2)),
	})
	if err != nil {
		t.Fatalf("load plugins: %v", err)
	}
	return NewBuilder(reg, syl, repo, 2, rand.New(rand.NewSource(3)))
}

func TestBuildTestSet(t *testing.T) {
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Readings: []string{"ひ"}, Glosses: []string{"sun"}},
		syllabus.Item{Pivot: "口", Kind: drill.PivotKanji, Readings: []string{"くち"}, Glosses: []string{"mouth"}},
	)
	repo := newMemRepo()
	b := newTestBuilder(t, syl, repo, []string{"reading", "gloss"}, richSource())

	set, report, err := b.BuildTestSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuildTestSet: %v", err)
	}
	if report.Requested != 2 || report.Built != 2 || len(report.Skipped) != 0 {
		t.Errorf("report = %+v, want 2 requested, 2 built, 0 skipped", report)
	}
	if set.Seed < 0 || set.Seed >= drill.SeedRange {
		t.Errorf("seed %d outside [0, %d)", set.Seed, int64(drill.SeedRange))
	}
	if set.ShuffleVersion != drill.ShuffleVersion {
		t.Errorf("shuffle version = %d, want %d", set.ShuffleVersion, drill.ShuffleVersion)
	}

	for _, q := range set.Questions {
		if q.ID == 0 {
			t.Error("question persisted without an id")
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			t.Errorf("question %d has %d correct options, want exactly 1", q.ID, correct)
		}
	}
}

func TestBuildTestSetPersistsSeedBeforeQuestions(t *testing.T) {
	// Exhausted candidate pools skip every concept, but the set row with its
	// seed must exist regardless.
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Readings: []string{"ひ"}, Glosses: []string{"sun"}},
	)
	repo := newMemRepo()
	empty := &fixedSource{byDomain: map[syllabus.Domain][]string{}}
	b := newTestBuilder(t, syl, repo, []string{"reading"}, empty)

	set, report, err := b.BuildTestSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuildTestSet: %v", err)
	}
	if report.Built != 0 || len(report.Skipped) != 1 {
		t.Errorf("report = %+v, want 0 built, 1 skipped", report)
	}
	stored, err := repo.Get(context.Background(), set.ID)
	if err != nil {
		t.Fatalf("set row was not persisted: %v", err)
	}
	if stored.Seed != set.Seed {
		t.Errorf("stored seed %d != returned seed %d", stored.Seed, set.Seed)
	}
}

func TestBuildTestSetSkipsOnExhaustion(t *testing.T) {
	// Distractor pools are empty in every domain, so each factory reports
	// exhaustion. The builder must skip with a report entry and terminate,
	// never retry the same exhausted pool.
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Readings: []string{"ひ"}, Glosses: []string{"sun"}},
		syllabus.Item{Pivot: "口", Kind: drill.PivotKanji, Readings: []string{"くち"}, Glosses: []string{"mouth"}},
	)
	repo := newMemRepo()
	empty := &fixedSource{byDomain: map[syllabus.Domain][]string{}}
	b := newTestBuilder(t, syl, repo, []string{"reading", "gloss"}, empty)

	done := make(chan struct{})
	var report *Report
	var err error
	go func() {
		_, report, err = b.BuildTestSet(context.Background(), "u1")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("BuildTestSet did not terminate with exhausted distractor pools")
	}

	if err != nil {
		t.Fatalf("BuildTestSet: %v", err)
	}
	if len(report.Skipped) != 2 {
		t.Fatalf("expected 2 skips, got %d", len(report.Skipped))
	}
	for _, skip := range report.Skipped {
		var exhausted *drill.InsufficientDistractorsError
		if !errors.As(skip.Reason, &exhausted) {
			t.Errorf("skip reason = %v, want InsufficientDistractorsError", skip.Reason)
		}
	}
}

func TestBuildTestSetSkipsWhenNoEligibleFactory(t *testing.T) {
	// The surface factory is word-only; a kanji concept has no eligible
	// factory and is skipped rather than failing the build.
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Readings: []string{"ひ"}, Glosses: []string{"sun"}},
	)
	repo := newMemRepo()
	b := newTestBuilder(t, syl, repo, []string{"surface"}, richSource())

	_, report, err := b.BuildTestSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuildTestSet: %v", err)
	}
	if report.Built != 0 || len(report.Skipped) != 1 {
		t.Errorf("report = %+v, want 0 built, 1 skipped", report)
	}
}

func TestBuildTestSetAbortsOnFactoryBug(t *testing.T) {
	// An item with no readings makes the reading factory fail with a plain
	// error, which must abort the build rather than be skipped.
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Glosses: []string{"sun"}},
	)
	repo := newMemRepo()
	b := newTestBuilder(t, syl, repo, []string{"reading"}, richSource())

	_, _, err := b.BuildTestSet(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected build to abort on non-exhaustion factory error")
	}
}

func TestRecordResponse(t *testing.T) {
	syl := testSyllabus(
		syllabus.Item{Pivot: "日", Kind: drill.PivotKanji, Readings: []string{"ひ"}, Glosses: []string{"sun"}},
		syllabus.Item{Pivot: "口", Kind: drill.PivotKanji, Readings: []string{"くち"}, Glosses: []string{"mouth"}},
	)
	repo := newMemRepo()
	b := newTestBuilder(t, syl, repo, []string{"reading"}, richSource())

	set, _, err := b.BuildTestSet(context.Background(), "u1")
	if err != nil {
		t.Fatalf("BuildTestSet: %v", err)
	}

	// Answer every question with its correct option. Until the last answer
	// lands, response ordering must refuse to pair a partial response set
	// against the questions.
	ordered := set.OrderedQuestions()
	for i, q := range ordered {
		if i > 0 {
			var covErr *drill.IncompleteCoverageError
			if _, err := set.OrderedResponses(); !errors.As(err, &covErr) {
				t.Errorf("OrderedResponses with %d/%d answers: want IncompleteCoverageError, got %v", i, len(ordered), err)
			}
		}
		ans, ok := q.Answer()
		if !ok {
			t.Fatalf("question %d has no answer", q.ID)
		}
		resp, err := RecordResponse(context.Background(), repo, set, q.ID, ans.ID, "u1")
		if err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
		if !resp.IsCorrect() {
			t.Errorf("response to question %d with its answer scored incorrect", q.ID)
		}
	}

	cov, err := set.Coverage()
	if err != nil {
		t.Fatalf("Coverage: %v", err)
	}
	if cov != 1 {
		t.Errorf("coverage = %v, want 1", cov)
	}
	acc, err := set.Accuracy()
	if err != nil {
		t.Fatalf("Accuracy: %v", err)
	}
	if acc != 1 {
		t.Errorf("accuracy = %v, want 1", acc)
	}

	responses, err := set.OrderedResponses()
	if err != nil {
		t.Fatalf("OrderedResponses: %v", err)
	}
	for i := range ordered {
		if responses[i].QuestionID != ordered[i].ID {
			t.Errorf("position %d: response for question %d, presented question %d", i, responses[i].QuestionID, ordered[i].ID)
		}
	}
}
