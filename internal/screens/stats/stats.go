// Package stats shows the learner's historical test sets with their
// coverage and accuracy.
package stats

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayasuda/kanjidrill/internal/drill"
	"github.com/ayasuda/kanjidrill/internal/screen"
	"github.com/ayasuda/kanjidrill/internal/store"
	"github.com/ayasuda/kanjidrill/internal/ui/layout"
	"github.com/ayasuda/kanjidrill/internal/ui/theme"
)

// Screen lists past test sets, newest first.
type Screen struct {
	sets   store.TestSetRepo
	userID string

	loaded []*drill.TestSet
	err    error
}

var _ screen.Screen = (*Screen)(nil)

// New creates the results screen; sets are loaded in Init.
func New(sets store.TestSetRepo, userID string) *Screen {
	return &Screen{sets: sets, userID: userID}
}

type loadedMsg struct {
	sets []*drill.TestSet
	err  error
}

func (s *Screen) Init() tea.Cmd {
	repo, userID := s.sets, s.userID
	return func() tea.Msg {
		sets, err := repo.List(context.Background(), userID)
		return loadedMsg{sets: sets, err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		s.loaded = m.sets
		s.err = m.err
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.err != nil {
		return "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("  load results: %v", s.err))
	}
	if len(s.loaded) == 0 {
		return "\n" + theme.Subtitle.Width(width).Render("No drills taken yet.")
	}

	header := fmt.Sprintf("  %-6s %-18s %-10s %-10s %s", "SET", "DATE", "ANSWERED", "CORRECT", "QUESTIONS")
	body := theme.Hint.Render(header) + "\n"
	for _, set := range s.loaded {
		body += theme.Body.Render("  "+formatSet(set)) + "\n"
	}
	return "\n" + body
}

// formatSet renders one row. Sets persisted before any question was
// attached are labelled rather than scored; coverage and accuracy are
// undefined for them.
func formatSet(set *drill.TestSet) string {
	date := set.CreatedAt.Format("2006-01-02 15:04")
	coverage, err := set.Coverage()
	if err != nil {
		return fmt.Sprintf("#%-5d %-18s %-10s %-10s %d", set.ID, date, "—", "—", 0)
	}
	accuracy, _ := set.Accuracy()
	return fmt.Sprintf("#%-5d %-18s %-10s %-10s %d",
		set.ID, date,
		fmt.Sprintf("%.0f%%", coverage*100),
		fmt.Sprintf("%.0f%%", accuracy*100),
		len(set.Questions))
}

func (s *Screen) Title() string {
	return "Results"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}
