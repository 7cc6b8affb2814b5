// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Header bar, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor row
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Task numbers, help line
	Accent      string `toml:"accent"`       // Title, primary accent
	Done        string `toml:"done"`         // Completed tasks
	Overdue     string `toml:"overdue"`      // Tasks dated before today
	Tag         string `toml:"tag"`          // @context and +project tags
	Warning     string `toml:"warning"`      // Status messages, confirmations

	// Priority letters (can override derived defaults)
	PriorityA string `toml:"priority_a"`
	PriorityB string `toml:"priority_b"`
	PriorityC string `toml:"priority_c"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to squire if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "squire"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		// Fallback to squire
		if name != "squire" {
			return Load("squire")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// PriorityPalette provides the colors for priority letters derived from the theme.
type PriorityPalette struct {
	A string
	B string
	C string
}

// Priorities returns the priority palette, falling back to base theme colors when needed.
func (t *Theme) Priorities() PriorityPalette {
	return PriorityPalette{
		A: coalesce(t.PriorityA, t.Warning, t.Accent),
		B: coalesce(t.PriorityB, t.Accent),
		C: coalesce(t.PriorityC, t.Fg),
	}
}

func (t *Theme) applyDefaults() {
	if t.Done == "" {
		t.Done = t.FgMuted
	}
	if t.Overdue == "" {
		t.Overdue = t.Warning
	}
	if t.Tag == "" {
		t.Tag = t.Accent
	}
	if t.PriorityA == "" {
		t.PriorityA = coalesce(t.Warning, t.Accent)
	}
	if t.PriorityB == "" {
		t.PriorityB = t.Accent
	}
	if t.PriorityC == "" {
		t.PriorityC = t.Fg
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"squire", "hidalgo", "parchment"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
