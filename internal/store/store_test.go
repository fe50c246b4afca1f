package store

import (
	"context"
	"testing"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newStoredQuestion(t *testing.T, pivot string, typ drill.QuestionType, distractors []string, answer string) *drill.MultipleChoiceQuestion {
	t.Helper()
	q, err := drill.NewMultipleChoiceQuestion(pivot, drill.PivotKanji, typ, "reading", pivot)
	if err != nil {
		t.Fatalf("new question: %v", err)
	}
	if err := q.AddOptions(distractors, answer); err != nil {
		t.Fatalf("add options: %v", err)
	}
	return q
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sets()
	ctx := context.Background()

	set, err := repo.Create(ctx, "u1", 12345, drill.ShuffleVersion)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if set.ID == 0 {
		t.Fatal("expected assigned set id")
	}

	got, err := repo.Get(ctx, set.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Seed != 12345 {
		t.Errorf("seed = %d, want 12345", got.Seed)
	}
	if got.ShuffleVersion != drill.ShuffleVersion {
		t.Errorf("shuffle version = %d, want %d", got.ShuffleVersion, drill.ShuffleVersion)
	}
	if got.UserID != "u1" {
		t.Errorf("user id = %q, want u1", got.UserID)
	}
}

func TestAttachQuestionsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sets()
	ctx := context.Background()

	set, err := repo.Create(ctx, "u1", 1, drill.ShuffleVersion)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	questions := []*drill.MultipleChoiceQuestion{
		newStoredQuestion(t, "家", drill.PivotToReading, []string{"みず", "ひ", "やま"}, "いえ"),
		newStoredQuestion(t, "水", drill.PivotToReading, []string{"いえ", "ひ", "やま"}, "みず"),
	}
	if err := repo.AttachQuestions(ctx, set.ID, questions); err != nil {
		t.Fatalf("attach: %v", err)
	}
	for _, q := range questions {
		if q.ID == 0 {
			t.Error("question id not written back")
		}
		for _, o := range q.Options {
			if o.ID == 0 {
				t.Error("option id not written back")
			}
		}
	}

	got, err := repo.Get(ctx, set.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(got.Questions))
	}
	for _, q := range got.Questions {
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
		if _, ok := q.Answer(); !ok {
			t.Errorf("question %d lost its correct option", q.ID)
		}
	}
}

func TestDuplicateOptionValueRejectedByStorage(t *testing.T) {
	// The domain layer rejects duplicates up front; the unique index on
	// (question, value) is the storage backstop. Exercise it directly.
	s := openTestStore(t)
	ctx := context.Background()

	q, err := s.Client().Question.Create().
		SetPivot("家").
		SetPivotKind("k").
		SetQuestionType("pr").
		SetPlugin("reading").
		SetStimulus("家").
		Save(ctx)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if _, err := s.Client().ChoiceOption.Create().
		SetValue("いえ").SetIsCorrect(true).SetQuestion(q).Save(ctx); err != nil {
		t.Fatalf("create option: %v", err)
	}
	if _, err := s.Client().ChoiceOption.Create().
		SetValue("いえ").SetIsCorrect(false).SetQuestion(q).Save(ctx); err == nil {
		t.Error("expected unique constraint violation for duplicate option value")
	}
}

func TestAppendResponse(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sets()
	ctx := context.Background()

	set, err := repo.Create(ctx, "u1", 1, drill.ShuffleVersion)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	q := newStoredQuestion(t, "家", drill.PivotToReading, []string{"みず", "ひ", "やま"}, "いえ")
	if err := repo.AttachQuestions(ctx, set.ID, []*drill.MultipleChoiceQuestion{q}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	ans, _ := q.Answer()
	resp, err := repo.AppendResponse(ctx, set.ID, q.ID, ans.ID, "u1")
	if err != nil {
		t.Fatalf("append response: %v", err)
	}
	if !resp.IsCorrect() {
		t.Error("response with the correct option scored incorrect")
	}
	if resp.At.IsZero() {
		t.Error("response timestamp not set")
	}

	got, err := repo.Get(ctx, set.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(got.Responses))
	}
	if got.Responses[0].QuestionID != q.ID {
		t.Errorf("response question = %d, want %d", got.Responses[0].QuestionID, q.ID)
	}
}

func TestAppendResponseRejectsNonMemberQuestion(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sets()
	ctx := context.Background()

	set1, err := repo.Create(ctx, "u1", 1, drill.ShuffleVersion)
	if err != nil {
		t.Fatalf("create set1: %v", err)
	}
	set2, err := repo.Create(ctx, "u1", 2, drill.ShuffleVersion)
	if err != nil {
		t.Fatalf("create set2: %v", err)
	}

	q := newStoredQuestion(t, "家", drill.PivotToReading, []string{"みず", "ひ", "やま"}, "いえ")
	if err := repo.AttachQuestions(ctx, set1.ID, []*drill.MultipleChoiceQuestion{q}); err != nil {
		t.Fatalf("attach: %v", err)
	}

	ans, _ := q.Answer()
	if _, err := repo.AppendResponse(ctx, set2.ID, q.ID, ans.ID, "u1"); err == nil {
		t.Error("expected error answering a question outside the set")
	}
}

func TestListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sets()
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		if _, err := repo.Create(ctx, "u1", i, drill.ShuffleVersion); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	if _, err := repo.Create(ctx, "other", 99, drill.ShuffleVersion); err != nil {
		t.Fatalf("create other: %v", err)
	}

	sets, err := repo.List(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("expected 3 sets for u1, got %d", len(sets))
	}
	for i := 1; i < len(sets); i++ {
		if sets[i].CreatedAt.After(sets[i-1].CreatedAt) {
			t.Error("sets not ordered newest first")
		}
	}
}

func TestPurge(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sets()
	ctx := context.Background()

	set, err := repo.Create(ctx, "u1", 1, drill.ShuffleVersion)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	q := newStoredQuestion(t, "家", drill.PivotToReading, []string{"みず", "ひ", "やま"}, "いえ")
	if err := repo.AttachQuestions(ctx, set.ID, []*drill.MultipleChoiceQuestion{q}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	ans, _ := q.Answer()
	if _, err := repo.AppendResponse(ctx, set.ID, q.ID, ans.ID, "u1"); err != nil {
		t.Fatalf("append response: %v", err)
	}

	if err := repo.Purge(ctx, "u1"); err != nil {
		t.Fatalf("purge: %v", err)
	}

	for table, query := range map[string]func() (int, error){
		"test sets": func() (int, error) { return s.Client().TestSet.Query().Count(ctx) },
		"questions": func() (int, error) { return s.Client().Question.Query().Count(ctx) },
		"responses": func() (int, error) { return s.Client().Response.Query().Count(ctx) },
		"options":   func() (int, error) { return s.Client().ChoiceOption.Query().Count(ctx) },
	} {
		n, err := query()
		if err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n != 0 {
			t.Errorf("%d %s left after purge", n, table)
		}
	}
}

func TestWrongValuesFrequencyOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sets()
	ctx := context.Background()

	// Three sets over the same confusable readings. みず is wrongly picked
	// twice, やま once, the correct answers never count.
	for i, wrong := range []string{"みず", "みず", "やま"} {
		set, err := repo.Create(ctx, "u1", int64(i), drill.ShuffleVersion)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		q := newStoredQuestion(t, "家", drill.PivotToReading, []string{"みず", "ひ", "やま"}, "いえ")
		if err := repo.AttachQuestions(ctx, set.ID, []*drill.MultipleChoiceQuestion{q}); err != nil {
			t.Fatalf("attach %d: %v", i, err)
		}
		var optID int
		for _, o := range q.Options {
			if o.Value == wrong {
				optID = o.ID
			}
		}
		if _, err := repo.AppendResponse(ctx, set.ID, q.ID, optID, "u1"); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	values, err := s.History().WrongValues(ctx, "u1", syllabus.DomainReading, 10)
	if err != nil {
		t.Fatalf("wrong values: %v", err)
	}
	if len(values) != 2 {
		t.Fatalf("got %v, want [みず やま]", values)
	}
	if values[0] != "みず" || values[1] != "やま" {
		t.Errorf("got %v, want most-confused first: [みず やま]", values)
	}
}

func TestWrongValuesScopedToDomain(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sets()
	ctx := context.Background()

	set, err := repo.Create(ctx, "u1", 1, drill.ShuffleVersion)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	q := newStoredQuestion(t, "家", drill.PivotToReading, []string{"みず", "ひ", "やま"}, "いえ")
	if err := repo.AttachQuestions(ctx, set.ID, []*drill.MultipleChoiceQuestion{q}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	var optID int
	for _, o := range q.Options {
		if o.Value == "みず" {
			optID = o.ID
		}
	}
	if _, err := repo.AppendResponse(ctx, set.ID, q.ID, optID, "u1"); err != nil {
		t.Fatalf("append: %v", err)
	}

	// The mistake lives in the reading domain; gloss history stays empty.
	glosses, err := s.History().WrongValues(ctx, "u1", syllabus.DomainGloss, 10)
	if err != nil {
		t.Fatalf("wrong values: %v", err)
	}
	if len(glosses) != 0 {
		t.Errorf("gloss history = %v, want empty", glosses)
	}
}
