package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mmynk/splitneat/internal/view"
)

// Palette
var (
	Primary  = lipgloss.Color("#3B82F6")
	Selected = lipgloss.Color("#DBEAFE")
	Muted    = lipgloss.Color("#6B7280")
	Warning  = lipgloss.Color("#EF4444")
	Success  = lipgloss.Color("#16A34A")
)

// Styles holds the lipgloss styles used by the model.
type Styles struct {
	Title    lipgloss.Style
	Name     lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
	Heading  lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Tones    map[view.Tone]lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1),
		Name:     lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Selected: lipgloss.NewStyle().Background(Selected).Foreground(lipgloss.Color("#1E3A8A")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1).
			MarginTop(1),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Label:   lipgloss.NewStyle().Foreground(Muted),
		Focused: lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Help:    lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
		Error:   lipgloss.NewStyle().Foreground(Warning),
		Tones: map[view.Tone]lipgloss.Style{
			view.ToneWarning:  lipgloss.NewStyle().Foreground(Warning),
			view.TonePositive: lipgloss.NewStyle().Foreground(Success),
			view.ToneNeutral:  lipgloss.NewStyle().Foreground(Muted),
		},
	}
}

// Tone returns the style for a balance tone.
func (s Styles) Tone(t view.Tone) lipgloss.Style {
	if style, ok := s.Tones[t]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
