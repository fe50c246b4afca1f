package drill

// Coverage returns the fraction of the set's questions that have a
// recorded response. A set with no questions fails with ErrEmptyTestSet
// rather than reporting a meaningless zero.
func (s *TestSet) Coverage() (float64, error) {
	if len(s.Questions) == 0 {
		return 0, ErrEmptyTestSet
	}
	return float64(len(s.Responses)) / float64(len(s.Questions)), nil
}

// Accuracy returns the fraction of the set's questions answered correctly.
// Unanswered questions count against accuracy, so the value is always in
// [0, coverage]. A set with no questions fails with ErrEmptyTestSet.
func (s *TestSet) Accuracy() (float64, error) {
	if len(s.Questions) == 0 {
		return 0, ErrEmptyTestSet
	}
	correct := 0
	for _, r := range s.Responses {
		if r.IsCorrect() {
			correct++
		}
	}
	return float64(correct) / float64(len(s.Questions)), nil
}
