package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/javiermolinar/rocin/internal/todotxt"
)

// priorityColors maps the top priorities to distinct colors. Lower
// priorities share a bold default.
var priorityColors = map[string]*color.Color{
	"A": color.New(color.FgYellow, color.Bold),
	"B": color.New(color.FgGreen),
	"C": color.New(color.FgCyan),
}

// FormatTask renders a task line with color cues: completed tasks are
// dimmed, overdue tasks are red, prioritized tasks take their
// priority's color.
func FormatTask(t *todotxt.Task) string {
	line := t.Line()
	switch {
	case t.Done():
		return formatMuted(line)
	case isOverdue(t):
		return formatOverdue(line)
	default:
		if p, ok := t.Priority(); ok {
			if c, ok := priorityColors[p]; ok {
				return c.Sprint(line)
			}
			return formatHeader(line)
		}
		return line
	}
}

// isOverdue reports whether a pending task is dated before today.
// Completed tasks are never flagged: their date is the completion stamp.
func isOverdue(t *todotxt.Task) bool {
	if t.Done() {
		return false
	}
	overdue, ok := t.Overdue()
	return ok && overdue
}

// PrintTaskRow prints a single task row with its list number.
func PrintTaskRow(n int, t *todotxt.Task) {
	fmt.Printf("%s %s\n", formatMuted(fmt.Sprintf("%3d", n)), FormatTask(t))
}

// ProgressBar creates an ASCII bar showing how much of the list is done.
func ProgressBar(done, total, width int) string {
	if total == 0 {
		return "[" + strings.Repeat("░", width) + "] 0% done"
	}

	pct := (done * 100) / total
	filled := (done * width) / total

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatStats(bar), formatStats(fmt.Sprintf("%d%% done", pct)))
}

// HistogramBar scales count against max into a bar of at most width
// cells. A non-zero count always shows at least one cell.
func HistogramBar(count, max, width int) string {
	if max <= 0 || count <= 0 {
		return ""
	}
	filled := (count * width) / max
	if filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled)
}
