package home

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ayasuda/kanjidrill/internal/router"
	"github.com/ayasuda/kanjidrill/internal/screen"
	"github.com/ayasuda/kanjidrill/internal/screens/drillrun"
	"github.com/ayasuda/kanjidrill/internal/screens/stats"
	"github.com/ayasuda/kanjidrill/internal/session"
	"github.com/ayasuda/kanjidrill/internal/store"
	"github.com/ayasuda/kanjidrill/internal/ui/components"
	"github.com/ayasuda/kanjidrill/internal/ui/layout"
	"github.com/ayasuda/kanjidrill/internal/ui/theme"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The builder and set repo are handed down
// to the screens the menu opens.
func New(builder *session.Builder, sets store.TestSetRepo, userID string) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START DRILL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drillrun.New(builder, sets, userID)}
			}
		}},
		{Label: "RESULTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(sets, userID)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	menu, cmd := s.menu.Update(msg)
	s.menu = menu
	return s, cmd
}

func (s *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("漢字 drill")
	subtitle := theme.Subtitle.Width(width).Render("adaptive kanji and vocabulary testing")
	return "\n\n" + title + "\n" + subtitle + "\n\n\n" + s.menu.View()
}

func (s *HomeScreen) Title() string {
	return "Home"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
