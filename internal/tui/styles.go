// Package tui provides the terminal user interface for rocin.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/rocin/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorDone        lipgloss.Color
	colorOverdue     lipgloss.Color
	colorTag         lipgloss.Color
	colorWarning     lipgloss.Color
	colorHeaderBg    lipgloss.Color

	// Title bar
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	CountStyle  lipgloss.Style

	// Task rows
	RowStyle         lipgloss.Style
	RowSelectedStyle lipgloss.Style
	NumberStyle      lipgloss.Style
	DoneStyle        lipgloss.Style
	OverdueStyle     lipgloss.Style
	TagStyle         lipgloss.Style

	// Priority letters
	PriorityAStyle     lipgloss.Style
	PriorityBStyle     lipgloss.Style
	PriorityCStyle     lipgloss.Style
	PriorityOtherStyle lipgloss.Style

	// Empty list placeholder
	EmptyStyle lipgloss.Style

	// Input prompt (add, filter)
	InputPromptStyle      lipgloss.Style
	InputTextStyle        lipgloss.Style
	InputPlaceholderStyle lipgloss.Style
	InputCursorStyle      lipgloss.Style

	// Status message and destructive confirmation
	StatusStyle  lipgloss.Style
	ConfirmStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	// Convert theme colors to lipgloss colors
	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorDone = palette.Done
	s.colorOverdue = palette.Overdue
	s.colorTag = palette.Tag
	s.colorWarning = palette.Warning
	s.colorHeaderBg = palette.HeaderBg

	// Title bar
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Padding(0, 1)

	s.HeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorHeaderBg)

	s.CountStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorHeaderBg)

	// Task rows
	s.RowStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.RowSelectedStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSelection).
		Background(s.colorBgSelection).
		Bold(true)

	s.NumberStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Completed tasks keep their text readable but clearly out of the way
	s.DoneStyle = lipgloss.NewStyle().
		Foreground(s.colorDone).
		Background(s.colorBg).
		Strikethrough(true)

	s.OverdueStyle = lipgloss.NewStyle().
		Foreground(s.colorOverdue).
		Background(s.colorBg).
		Bold(true)

	s.TagStyle = lipgloss.NewStyle().
		Foreground(s.colorTag).
		Background(s.colorBg)

	// Priority letters
	s.PriorityAStyle = lipgloss.NewStyle().
		Foreground(palette.PriorityA).
		Background(s.colorBg).
		Bold(true)

	s.PriorityBStyle = lipgloss.NewStyle().
		Foreground(palette.PriorityB).
		Background(s.colorBg).
		Bold(true)

	s.PriorityCStyle = lipgloss.NewStyle().
		Foreground(palette.PriorityC).
		Background(s.colorBg).
		Bold(true)

	s.PriorityOtherStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Bold(true)

	// Empty list placeholder
	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Italic(true)

	// Input prompt
	s.InputPromptStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.InputPlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.InputCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	// Status message
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	// Confirmations sit on the highlight background so they stand out
	// from ordinary status messages
	s.ConfirmStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBgHighlight).
		Bold(true)

	// Help text
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	return s
}

// PriorityStyle returns the style for a priority letter.
func (s *Styles) PriorityStyle(letter string) lipgloss.Style {
	switch letter {
	case "A":
		return s.PriorityAStyle
	case "B":
		return s.PriorityBStyle
	case "C":
		return s.PriorityCStyle
	default:
		return s.PriorityOtherStyle
	}
}
