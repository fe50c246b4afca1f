package drill

import "time"

// SeedRange is the exclusive upper bound for freshly drawn test set seeds.
// Seeds are drawn uniformly from [0, SeedRange) and fixed for the life of
// the set; previously stored sets depend on this range staying put.
const SeedRange = 1 << 30

// Response records that a user answered a question by selecting an option
// at a point in time. Historical re-answers of the same question are
// permitted when timestamps differ, but a test set's scoring assumes at
// most one response per question within the set.
type Response struct {
	ID         int
	QuestionID int
	Option     Option
	UserID     string
	At         time.Time
}

// IsCorrect reports whether the selected option was the correct one.
func (r Response) IsCorrect() bool {
	return r.Option.IsCorrect
}

// TestSet owns a user's drill session: a fixed random seed, the questions
// chosen for the session, and the responses recorded so far. The seed is
// assigned at creation and never changes; it is the sole source of the
// set's reproducible presentation order.
type TestSet struct {
	ID             int
	UserID         string
	Seed           int64
	ShuffleVersion int
	CreatedAt      time.Time
	Questions      []*MultipleChoiceQuestion
	Responses      []Response
}
