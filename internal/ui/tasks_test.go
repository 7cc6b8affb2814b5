package ui

import (
	"strings"
	"testing"

	"github.com/javiermolinar/rocin/internal/todotxt"
)

func newTestList(t *testing.T, lines ...string) *todotxt.List {
	t.Helper()
	list, err := todotxt.ParseList(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	return list
}

func TestTaskAt(t *testing.T) {
	list := newTestList(t, "First thing", "Second thing", "Third thing")

	task, i, err := taskAt(list, "2")
	if err != nil {
		t.Fatalf("taskAt failed: %v", err)
	}
	if i != 1 {
		t.Errorf("index = %d, want 1", i)
	}
	if got := task.Text(); got != "Second thing" {
		t.Errorf("text = %q, want %q", got, "Second thing")
	}
}

func TestTaskAt_Invalid(t *testing.T) {
	list := newTestList(t, "Only task")

	tests := []struct {
		name string
		arg  string
	}{
		{"not a number", "abc"},
		{"zero", "0"},
		{"negative", "-1"},
		{"past the end", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := taskAt(list, tt.arg); err == nil {
				t.Errorf("taskAt(%q) succeeded, want error", tt.arg)
			}
		})
	}
}

func TestLineWithPriority(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		letter string
		want   string
	}{
		{
			name:   "set on plain task",
			line:   "Feed the horse",
			letter: "A",
			want:   "(A) Feed the horse",
		},
		{
			name:   "replace existing",
			line:   "(C) Feed the horse",
			letter: "A",
			want:   "(A) Feed the horse",
		},
		{
			name:   "remove",
			line:   "(B) Feed the horse",
			letter: "",
			want:   "Feed the horse",
		},
		{
			name:   "keeps date and tags",
			line:   "2025-04-01 Feed the horse @stable +care",
			letter: "B",
			want:   "(B) 2025-04-01 Feed the horse @stable +care",
		},
		{
			name:   "keeps done marker",
			line:   "x 2025-04-01 Feed the horse",
			letter: "",
			want:   "x 2025-04-01 Feed the horse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := todotxt.New(tt.line)
			if got := lineWithPriority(task, tt.letter); got != tt.want {
				t.Errorf("lineWithPriority(%q, %q) = %q, want %q", tt.line, tt.letter, got, tt.want)
			}
		})
	}
}

func TestParsePriorityLetter(t *testing.T) {
	tests := []struct {
		arg     string
		want    string
		wantErr bool
	}{
		{arg: "A", want: "A"},
		{arg: "z", want: "Z"},
		{arg: " b ", want: "B"},
		{arg: "", wantErr: true},
		{arg: "AA", wantErr: true},
		{arg: "1", wantErr: true},
		{arg: "(A)", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parsePriorityLetter(tt.arg)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parsePriorityLetter(%q) succeeded, want error", tt.arg)
			}
			continue
		}
		if err != nil {
			t.Errorf("parsePriorityLetter(%q) failed: %v", tt.arg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePriorityLetter(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}
