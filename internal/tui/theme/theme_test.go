package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
		wantErr   bool
	}{
		{
			name:      "load squire theme",
			themeName: "squire",
			wantName:  "squire",
			wantErr:   false,
		},
		{
			name:      "load hidalgo theme",
			themeName: "hidalgo",
			wantName:  "hidalgo",
			wantErr:   false,
		},
		{
			name:      "load parchment theme",
			themeName: "parchment",
			wantName:  "parchment",
			wantErr:   false,
		},
		{
			name:      "empty name defaults to squire",
			themeName: "",
			wantName:  "squire",
			wantErr:   false,
		},
		{
			name:      "invalid theme falls back to squire",
			themeName: "nonexistent",
			wantName:  "squire",
			wantErr:   false,
		},
		{
			name:      "mixed case resolves",
			themeName: "Hidalgo",
			wantName:  "hidalgo",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Load(%q) expected error, got nil", tt.themeName)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_ThemeColors(t *testing.T) {
	theme, err := Load("squire")
	if err != nil {
		t.Fatalf("Load(squire) unexpected error: %v", err)
	}

	// Verify all required colors are present and valid hex format
	colors := map[string]string{
		"Bg":          theme.Bg,
		"BgHighlight": theme.BgHighlight,
		"BgSelection": theme.BgSelection,
		"Fg":          theme.Fg,
		"FgMuted":     theme.FgMuted,
		"Accent":      theme.Accent,
		"Done":        theme.Done,
		"Overdue":     theme.Overdue,
		"Tag":         theme.Tag,
		"Warning":     theme.Warning,
		"PriorityA":   theme.PriorityA,
		"PriorityB":   theme.PriorityB,
		"PriorityC":   theme.PriorityC,
	}

	for name, hex := range colors {
		if len(hex) != 7 {
			t.Errorf("theme.%s = %q, want 7-char hex string", name, hex)
			continue
		}
		if hex[0] != '#' {
			t.Errorf("theme.%s = %q, want hex string starting with #", name, hex)
		}
	}
}

func TestPriorities_Fallbacks(t *testing.T) {
	base := &Theme{
		Bg:      "#101010",
		Fg:      "#ffffff",
		Accent:  "#ff0000",
		Warning: "#ffaa00",
	}

	pri := base.Priorities()
	if pri.A != base.Warning {
		t.Errorf("Priorities().A = %q, want %q", pri.A, base.Warning)
	}
	if pri.B != base.Accent {
		t.Errorf("Priorities().B = %q, want %q", pri.B, base.Accent)
	}
	if pri.C != base.Fg {
		t.Errorf("Priorities().C = %q, want %q", pri.C, base.Fg)
	}
}

func TestAvailable(t *testing.T) {
	available := Available()

	expected := []string{"squire", "hidalgo", "parchment"}
	if len(available) != len(expected) {
		t.Errorf("Available() returned %d themes, want %d", len(available), len(expected))
	}

	for i, want := range expected {
		if i >= len(available) {
			break
		}
		if available[i] != want {
			t.Errorf("Available()[%d] = %q, want %q", i, available[i], want)
		}
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{name: "exact match", theme: "squire", expected: true},
		{name: "case insensitive", theme: "Parchment", expected: true},
		{name: "missing theme", theme: "unknown", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.theme); got != tt.expected {
				t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
			}
		})
	}
}

func TestColor(t *testing.T) {
	hex := "#c9a227"
	c := Color(hex)
	if string(c) != hex {
		t.Errorf("Color(%q) = %q, want %q", hex, string(c), hex)
	}
}
