package drill

import (
	"math/rand"
	"sort"
)

// ShuffleVersion identifies the permutation algorithm below. Stored test
// sets record the version they were built with; if the algorithm ever has
// to change, bump this and keep the old path for replaying old sets.
const ShuffleVersion = 1

// seededShuffle permutes n elements with an explicit Fisher–Yates pass
// driven by a seeded source. The exchange loop is written out rather than
// delegated to rand.Shuffle so the permutation for a given seed is pinned
// by this file, not by library internals.
func seededShuffle(seed int64, n int, swap func(i, j int)) {
	r := rand.New(rand.NewSource(seed))
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// OrderedQuestions returns the set's questions in their presentation
// order: a pure function of (seed, question ids sorted by creation order).
// Calling it any number of times, in any process, yields the same
// permutation for the life of the set.
func (s *TestSet) OrderedQuestions() []*MultipleChoiceQuestion {
	ordered := make([]*MultipleChoiceQuestion, len(s.Questions))
	copy(ordered, s.Questions)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	seededShuffle(s.Seed, len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered
}

// OrderedResponses returns the set's responses permuted identically to
// OrderedQuestions, so that ordered[i] answers OrderedQuestions()[i].
// Full coverage is a precondition: with fewer (or more) responses than
// questions the pairing would silently misalign, so the call fails with
// an IncompleteCoverageError instead.
func (s *TestSet) OrderedResponses() ([]Response, error) {
	if len(s.Responses) != len(s.Questions) {
		return nil, &IncompleteCoverageError{
			Questions: len(s.Questions),
			Responses: len(s.Responses),
		}
	}

	ordered := make([]Response, len(s.Responses))
	copy(ordered, s.Responses)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].QuestionID < ordered[j].QuestionID })

	seededShuffle(s.Seed, len(ordered), func(i, j int) {
		ordered[i], ordered[j] = ordered[j], ordered[i]
	})
	return ordered, nil
}
