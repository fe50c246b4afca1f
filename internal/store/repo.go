package store

import (
	"context"

	"github.com/ayasuda/kanjidrill/internal/drill"
)

// TestSetRepo manages durable test sets. The builder and the drill loop
// depend on this interface, not on the ent client, so they are testable
// with in-memory fakes.
type TestSetRepo interface {
	// Create persists a new, empty test set with its seed. The seed is
	// durable before any question exists so a partially-built set is
	// still replayable.
	Create(ctx context.Context, userID string, seed int64, shuffleVersion int) (*drill.TestSet, error)

	// AttachQuestions persists the questions with their options and links
	// them to the set, all inside one transaction; a concurrent reader
	// never observes a question with a partial option list. Assigned row
	// ids are written back into the passed questions.
	AttachQuestions(ctx context.Context, setID int, questions []*drill.MultipleChoiceQuestion) error

	// AppendResponse records that userID answered questionID with
	// optionID within the set. The question must be a member of the set
	// and the option a member of the question.
	AppendResponse(ctx context.Context, setID, questionID, optionID int, userID string) (drill.Response, error)

	// Get loads a set with its questions, options and responses.
	Get(ctx context.Context, id int) (*drill.TestSet, error)

	// List returns the user's sets, newest first, without question bodies.
	List(ctx context.Context, userID string) ([]*drill.TestSet, error)

	// Purge removes the user's sets, responses, and any questions no
	// longer referenced by a set (their options cascade).
	Purge(ctx context.Context, userID string) error
}
