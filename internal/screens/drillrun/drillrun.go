// Package drillrun runs one test set end to end: build, present each
// question in the seed-determined order, record responses, then show the
// session summary.
package drillrun

import (
	"context"
	"fmt"
	"math/rand"

	"charm.land/bubbles/v2/progress"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/router"
	"github.com/ayasuda/kanjidrill/internal/screen"
	"github.com/ayasuda/kanjidrill/internal/session"
	"github.com/ayasuda/kanjidrill/internal/store"
	"github.com/ayasuda/kanjidrill/internal/ui/components"
	"github.com/ayasuda/kanjidrill/internal/ui/layout"
	"github.com/ayasuda/kanjidrill/internal/ui/theme"
)

type phase int

const (
	phaseBuilding phase = iota
	phaseAsking
	phaseSummary
	phaseFailed
)

// Screen drives a single drill session.
type Screen struct {
	builder *session.Builder
	sets    store.TestSetRepo
	userID  string

	phase   phase
	set     *drill.TestSet
	report  *session.Report
	ordered []*drill.MultipleChoiceQuestion
	idx     int
	choice  components.MultiChoice
	display []drill.Option
	prog    progress.Model
	err     error
}

var _ screen.Screen = (*Screen)(nil)

// New creates a drill screen; the test set is built asynchronously in Init.
func New(builder *session.Builder, sets store.TestSetRepo, userID string) *Screen {
	p := progress.New(progress.WithDefaultBlend())
	p.SetWidth(48)
	return &Screen{
		builder: builder,
		sets:    sets,
		userID:  userID,
		prog:    p,
	}
}

type builtMsg struct {
	set    *drill.TestSet
	report *session.Report
}

type buildFailedMsg struct {
	err error
}

type recordFailedMsg struct {
	err error
}

func (s *Screen) Init() tea.Cmd {
	builder, userID := s.builder, s.userID
	return func() tea.Msg {
		set, report, err := builder.BuildTestSet(context.Background(), userID)
		if err != nil {
			return buildFailedMsg{err: err}
		}
		return builtMsg{set: set, report: report}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case builtMsg:
		s.set = msg.set
		s.report = msg.report
		s.ordered = s.set.OrderedQuestions()
		if len(s.ordered) == 0 {
			s.phase = phaseSummary
			return s, nil
		}
		s.phase = phaseAsking
		s.present(0)
		return s, nil

	case buildFailedMsg:
		s.phase = phaseFailed
		s.err = msg.err
		return s, nil

	case recordFailedMsg:
		s.phase = phaseFailed
		s.err = msg.err
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case phaseAsking:
		if !s.choice.Submitted {
			wasSubmitted := s.choice.Submitted
			choice, cmd := s.choice.Update(msg)
			s.choice = choice
			if !wasSubmitted && s.choice.Submitted {
				return s, s.recordCmd()
			}
			return s, cmd
		}
		if msg.String() == "enter" {
			s.idx++
			if s.idx >= len(s.ordered) {
				s.phase = phaseSummary
				return s, nil
			}
			s.present(s.idx)
			return s, nil
		}

	case phaseSummary, phaseFailed:
		if msg.String() == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, nil
}

// present loads question i into the choice component, shuffling the
// stored options for display. Stored order is meaningless by design, so
// this shuffle is free to be nondeterministic.
func (s *Screen) present(i int) {
	q := s.ordered[i]
	s.display = make([]drill.Option, len(q.Options))
	copy(s.display, q.Options)
	rand.Shuffle(len(s.display), func(a, b int) {
		s.display[a], s.display[b] = s.display[b], s.display[a]
	})

	values := make([]string, len(s.display))
	correct := 0
	for j, o := range s.display {
		values[j] = o.Value
		if o.IsCorrect {
			correct = j
		}
	}
	s.choice = components.NewMultiChoice(q.Instructions(), q.Stimulus, values, correct)
}

// recordCmd persists the just-submitted answer.
func (s *Screen) recordCmd() tea.Cmd {
	set := s.set
	question := s.ordered[s.idx]
	option := s.display[s.choice.ChosenIndex]
	sets, userID := s.sets, s.userID
	return func() tea.Msg {
		if _, err := session.RecordResponse(context.Background(), sets, set, question.ID, option.ID, userID); err != nil {
			return recordFailedMsg{err: err}
		}
		return nil
	}
}

func (s *Screen) View(width, height int) string {
	switch s.phase {
	case phaseBuilding:
		return "\n\n" + theme.Subtitle.Width(width).Render("Preparing your questions…")
	case phaseAsking:
		return s.viewQuestion(width)
	case phaseSummary:
		return s.viewSummary(width)
	default:
		return "\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("Drill failed: %v", s.err))
	}
}

func (s *Screen) viewQuestion(width int) string {
	counter := theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.idx+1, len(s.ordered)))
	bar := s.prog.ViewAs(float64(s.idx) / float64(len(s.ordered)))

	body := counter + "\n" + bar + "\n\n" + s.choice.View()
	if s.choice.Submitted {
		verdict := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Not quite.")
		if s.choice.IsCorrect() {
			verdict = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Correct!")
		}
		body += "\n" + verdict + "  " + theme.Hint.Render("Enter to continue")
	}

	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(body)
}

func (s *Screen) viewSummary(width int) string {
	if s.set == nil || len(s.set.Questions) == 0 {
		body := theme.Subtitle.Render("No questions could be generated for this set.")
		if s.report != nil {
			for _, skip := range s.report.Skipped {
				body += "\n" + theme.Hint.Render(fmt.Sprintf("%s — %v", skip.Item.Pivot, skip.Reason))
			}
		}
		return lipgloss.NewStyle().Padding(2, 4).Width(width).Render(body)
	}

	coverage, err := s.set.Coverage()
	if err != nil {
		return theme.Subtitle.Render(err.Error())
	}
	accuracy, _ := s.set.Accuracy()

	body := theme.Title.Render("Session complete") + "\n\n"
	body += theme.Body.Render(fmt.Sprintf("Answered   %3.0f%%", coverage*100)) + "\n"
	body += theme.Body.Render(fmt.Sprintf("Correct    %3.0f%%", accuracy*100)) + "\n"
	if s.report != nil && len(s.report.Skipped) > 0 {
		body += "\n" + theme.Hint.Render(fmt.Sprintf("%d concept(s) skipped:", len(s.report.Skipped))) + "\n"
		for _, skip := range s.report.Skipped {
			body += theme.Hint.Render(fmt.Sprintf("  %s — %v", skip.Item.Pivot, skip.Reason)) + "\n"
		}
	}

	return lipgloss.NewStyle().Padding(2, 4).Width(width).Render(body)
}

func (s *Screen) Title() string {
	return "Drill"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAsking:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Answer"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back"},
		}
	}
}
