package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — ink and washi, calm enough for long drill sessions
var (
	Primary = lipgloss.Color("#E11D48") // Hanko red
	Accent  = lipgloss.Color("#F59E0B") // Amber
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#FAF7F0") // Washi white
	TextDim = lipgloss.Color("#9CA3AF") // Gray
	BgCard  = lipgloss.Color("#1F2937") // Lighter ink
	Border  = lipgloss.Color("#374151") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	// Stimulus renders the kanji or word under test, centered.
	Stimulus = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			Align(lipgloss.Center)
)
