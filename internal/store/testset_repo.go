package store

import (
	"context"
	"fmt"

	"github.com/ayasuda/kanjidrill/ent"
	entchoiceoption "github.com/ayasuda/kanjidrill/ent/choiceoption"
	entquestion "github.com/ayasuda/kanjidrill/ent/question"
	entresponse "github.com/ayasuda/kanjidrill/ent/response"
	enttestset "github.com/ayasuda/kanjidrill/ent/testset"
	"github.com/ayasuda/kanjidrill/internal/drill"
)

// testSetRepo implements TestSetRepo using the ent client.
type testSetRepo struct {
	client *ent.Client
}

func (r *testSetRepo) Create(ctx context.Context, userID string, seed int64, shuffleVersion int) (*drill.TestSet, error) {
	row, err := r.client.TestSet.Create().
		SetUserID(userID).
		SetRandomSeed(seed).
		SetShuffleVersion(shuffleVersion).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create test set: %w", err)
	}
	return &drill.TestSet{
		ID:             row.ID,
		UserID:         row.UserID,
		Seed:           row.RandomSeed,
		ShuffleVersion: row.ShuffleVersion,
		CreatedAt:      row.CreatedAt,
	}, nil
}

func (r *testSetRepo) AttachQuestions(ctx context.Context, setID int, questions []*drill.MultipleChoiceQuestion) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	rows := make([]*ent.Question, 0, len(questions))
	for _, q := range questions {
		qrow, err := tx.Question.Create().
			SetPivot(q.Pivot.Value).
			SetPivotKind(string(q.Pivot.Kind)).
			SetQuestionType(string(q.Type)).
			SetPlugin(q.Plugin).
			SetStimulus(q.Stimulus).
			Save(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("create question: %w", err))
		}
		q.ID = qrow.ID

		for i := range q.Options {
			orow, err := tx.ChoiceOption.Create().
				SetValue(q.Options[i].Value).
				SetIsCorrect(q.Options[i].IsCorrect).
				SetQuestion(qrow).
				Save(ctx)
			if err != nil {
				return rollback(tx, fmt.Errorf("create option: %w", err))
			}
			q.Options[i].ID = orow.ID
		}
		rows = append(rows, qrow)
	}

	if err := tx.TestSet.UpdateOneID(setID).AddQuestions(rows...).Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("attach questions: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *testSetRepo) AppendResponse(ctx context.Context, setID, questionID, optionID int, userID string) (drill.Response, error) {
	member, err := r.client.TestSet.Query().
		Where(
			enttestset.ID(setID),
			enttestset.HasQuestionsWith(entquestion.ID(questionID)),
		).
		Exist(ctx)
	if err != nil {
		return drill.Response{}, fmt.Errorf("check set membership: %w", err)
	}
	if !member {
		return drill.Response{}, fmt.Errorf("question %d is not part of test set %d", questionID, setID)
	}

	opt, err := r.client.ChoiceOption.Query().
		Where(
			entchoiceoption.ID(optionID),
			entchoiceoption.HasQuestionWith(entquestion.ID(questionID)),
		).
		Only(ctx)
	if err != nil {
		return drill.Response{}, fmt.Errorf("option %d for question %d: %w", optionID, questionID, err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return drill.Response{}, fmt.Errorf("begin tx: %w", err)
	}

	row, err := tx.Response.Create().
		SetUserID(userID).
		SetQuestionID(questionID).
		SetOptionID(optionID).
		Save(ctx)
	if err != nil {
		return drill.Response{}, rollback(tx, fmt.Errorf("create response: %w", err))
	}
	if err := tx.TestSet.UpdateOneID(setID).AddResponses(row).Exec(ctx); err != nil {
		return drill.Response{}, rollback(tx, fmt.Errorf("attach response: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return drill.Response{}, fmt.Errorf("commit: %w", err)
	}

	return drill.Response{
		ID:         row.ID,
		QuestionID: questionID,
		Option: drill.Option{
			ID:        opt.ID,
			Value:     opt.Value,
			IsCorrect: opt.IsCorrect,
		},
		UserID: userID,
		At:     row.AnsweredAt,
	}, nil
}

func (r *testSetRepo) Get(ctx context.Context, id int) (*drill.TestSet, error) {
	row, err := r.client.TestSet.Query().
		Where(enttestset.ID(id)).
		WithQuestions(func(q *ent.QuestionQuery) {
			q.WithOptions().Order(ent.Asc(entquestion.FieldID))
		}).
		WithResponses(func(q *ent.ResponseQuery) {
			q.WithOption().WithQuestion()
		}).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("load test set %d: %w", id, err)
	}
	return entTestSetToTestSet(row), nil
}

func (r *testSetRepo) List(ctx context.Context, userID string) ([]*drill.TestSet, error) {
	rows, err := r.client.TestSet.Query().
		Where(enttestset.UserID(userID)).
		WithQuestions().
		WithResponses(func(q *ent.ResponseQuery) {
			q.WithOption().WithQuestion()
		}).
		Order(ent.Desc(enttestset.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list test sets: %w", err)
	}
	out := make([]*drill.TestSet, 0, len(rows))
	for _, row := range rows {
		out = append(out, entTestSetToTestSet(row))
	}
	return out, nil
}

func (r *testSetRepo) Purge(ctx context.Context, userID string) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Response.Delete().
		Where(entresponse.UserID(userID)).
		Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("purge responses: %w", err))
	}
	if _, err := tx.TestSet.Delete().
		Where(enttestset.UserID(userID)).
		Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("purge test sets: %w", err))
	}
	// Questions no longer referenced by any set are dead; their options
	// cascade at the storage layer.
	if _, err := tx.Question.Delete().
		Where(entquestion.Not(entquestion.HasTestSets())).
		Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("purge orphan questions: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// entTestSetToTestSet maps an ent row with loaded edges to the domain type.
func entTestSetToTestSet(row *ent.TestSet) *drill.TestSet {
	set := &drill.TestSet{
		ID:             row.ID,
		UserID:         row.UserID,
		Seed:           row.RandomSeed,
		ShuffleVersion: row.ShuffleVersion,
		CreatedAt:      row.CreatedAt,
	}
	for _, q := range row.Edges.Questions {
		set.Questions = append(set.Questions, entQuestionToQuestion(q))
	}
	for _, resp := range row.Edges.Responses {
		if resp.Edges.Question == nil || resp.Edges.Option == nil {
			continue
		}
		set.Responses = append(set.Responses, drill.Response{
			ID:         resp.ID,
			QuestionID: resp.Edges.Question.ID,
			Option: drill.Option{
				ID:        resp.Edges.Option.ID,
				Value:     resp.Edges.Option.Value,
				IsCorrect: resp.Edges.Option.IsCorrect,
			},
			UserID: resp.UserID,
			At:     resp.AnsweredAt,
		})
	}
	return set
}

func entQuestionToQuestion(row *ent.Question) *drill.MultipleChoiceQuestion {
	q := &drill.MultipleChoiceQuestion{
		Question: drill.Question{
			ID: row.ID,
			Pivot: drill.Pivot{
				Value: row.Pivot,
				Kind:  drill.PivotKind(row.PivotKind),
			},
			Type:   drill.QuestionType(row.QuestionType),
			Plugin: row.Plugin,
		},
		Stimulus: row.Stimulus,
	}
	for _, o := range row.Edges.Options {
		q.Options = append(q.Options, drill.Option{
			ID:        o.ID,
			Value:     o.Value,
			IsCorrect: o.IsCorrect,
		})
	}
	return q
}

// rollback rolls tx back and returns err, preferring err over any
// rollback failure.
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
