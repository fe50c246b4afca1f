package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/ayasuda/kanjidrill/ent"
	entchoiceoption "github.com/ayasuda/kanjidrill/ent/choiceoption"
	entquestion "github.com/ayasuda/kanjidrill/ent/question"
	entresponse "github.com/ayasuda/kanjidrill/ent/response"
	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/syllabus"
)

// ResponseHistory reads the learner's past mistakes out of the store. It
// satisfies usermodel.ResponseHistory, feeding the distractor sampler with
// values the learner has actually confused before.
type ResponseHistory struct {
	client *ent.Client
}

// domainQuestionTypes maps a distractor domain to the question types whose
// options live in that domain.
func domainQuestionTypes(domain syllabus.Domain) []string {
	switch domain {
	case syllabus.DomainReading:
		return []string{string(drill.PivotToReading)}
	case syllabus.DomainSurface:
		return []string{string(drill.ReadingToPivot), string(drill.GlossToPivot)}
	case syllabus.DomainGloss:
		return []string{string(drill.PivotToGloss)}
	}
	return nil
}

// WrongValues returns up to limit option values the user wrongly selected
// for questions in the given domain, most frequently confused first.
func (h *ResponseHistory) WrongValues(ctx context.Context, userID string, domain syllabus.Domain, limit int) ([]string, error) {
	types := domainQuestionTypes(domain)
	if len(types) == 0 {
		return nil, fmt.Errorf("unknown distractor domain %q", domain)
	}

	rows, err := h.client.Response.Query().
		Where(
			entresponse.UserID(userID),
			entresponse.HasOptionWith(entchoiceoption.IsCorrect(false)),
			entresponse.HasQuestionWith(entquestion.QuestionTypeIn(types...)),
		).
		QueryOption().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query wrong responses: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, o := range rows {
		counts[o.Value]++
	}
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		if counts[values[i]] != counts[values[j]] {
			return counts[values[i]] > counts[values[j]]
		}
		return values[i] < values[j]
	})

	if limit > 0 && len(values) > limit {
		values = values[:limit]
	}
	return values, nil
}
