package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_CarriesThemeColors(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Done:        "#444444",
		Overdue:     "#cc2222",
		Tag:         "#2288cc",
		Warning:     "#ccaa22",
		PriorityA:   "#ee6633",
		PriorityB:   "#66aa44",
		PriorityC:   "#4488bb",
	}

	palette := NewPalette(base)

	if palette.Overdue != lipgloss.Color(base.Overdue) {
		t.Fatalf("Overdue = %q, want %q", palette.Overdue, base.Overdue)
	}
	if palette.PriorityA != lipgloss.Color(base.PriorityA) {
		t.Fatalf("PriorityA = %q, want %q", palette.PriorityA, base.PriorityA)
	}
	if palette.Tag != lipgloss.Color(base.Tag) {
		t.Fatalf("Tag = %q, want %q", palette.Tag, base.Tag)
	}
}

func TestNewPalette_HeaderBgIsTinted(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
	}

	palette := NewPalette(base)
	if palette.HeaderBg == palette.Bg {
		t.Fatalf("HeaderBg = %q, want a tint distinct from Bg", palette.HeaderBg)
	}
	if relativeLuminance(string(palette.HeaderBg)) <= relativeLuminance(base.Bg) {
		t.Fatalf("HeaderBg luminance = %f, want greater than Bg", relativeLuminance(string(palette.HeaderBg)))
	}
}

func TestNewPalette_SelectionTextReadable(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
	}

	palette := NewPalette(base)
	if palette.TextOnSelection != lipgloss.Color(base.Fg) {
		t.Fatalf("TextOnSelection = %q, want %q", palette.TextOnSelection, base.Fg)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}

func TestBlendColors(t *testing.T) {
	if got := blendColors("#000000", "#ffffff", 0.5); got != "#7f7f7f" {
		t.Fatalf("blendColors(black, white, 0.5) = %q, want %q", got, "#7f7f7f")
	}
	if got := blendColors("#112233", "#ffffff", 0); got != "#112233" {
		t.Fatalf("blendColors(a, b, 0) = %q, want %q", got, "#112233")
	}
	if got := blendColors("bad", "#ffffff", 0.5); got != "bad" {
		t.Fatalf("blendColors(bad, b, 0.5) = %q, want input unchanged", got)
	}
}
