package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/rocin/internal/todotxt"
)

// Lines taken by the header bar, spacers, status line and help line.
const chromeLines = 5

const helpText = " j/k move • x done • a add • / filter • p/P pri • D delete • A archive • q quit"

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	bg := m.styles.colorBg
	statusBg := bg
	if m.mode == ModeConfirm {
		statusBg = m.styles.colorBgHighlight
	}

	lines := make([]string, 0, m.height)
	lines = append(lines, padLine(m.renderHeader(), m.width, m.styles.colorHeaderBg))
	lines = append(lines, padLine("", m.width, bg))
	lines = append(lines, m.renderTaskRows()...)
	lines = append(lines, padLine("", m.width, bg))
	lines = append(lines, padLine(m.renderStatusLine(), m.width, statusBg))
	lines = append(lines, padLine(m.styles.HelpStyle.Render(helpText), m.width, bg))
	return strings.Join(lines, "\n")
}

// renderHeader renders the title bar with the todo file name and counts.
func (m Model) renderHeader() string {
	title := m.styles.TitleStyle.Render("rocin")
	file := m.styles.HeaderStyle.Render(" " + filepath.Base(m.config.Files.Todo))
	left := title + file

	pending := len(m.list.Pending())
	done := len(m.list.Completed())
	counts := fmt.Sprintf("%d pending | %d done", pending, done)
	if overdue := m.overdueCount(); overdue > 0 {
		counts += fmt.Sprintf(" | %d overdue", overdue)
	}
	right := m.styles.CountStyle.Render(counts + " ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + m.styles.HeaderStyle.Render(strings.Repeat(" ", gap)) + right
}

func (m Model) overdueCount() int {
	count := 0
	for _, t := range m.list.Pending() {
		if overdue, ok := t.Overdue(); ok && overdue {
			count++
		}
	}
	return count
}

// renderTaskRows renders the visible window of task rows, padded to fill
// the space between header and footer.
func (m Model) renderTaskRows() []string {
	rows := m.visibleRows()
	bg := m.styles.colorBg
	lines := make([]string, 0, rows)

	switch {
	case m.loading:
		lines = append(lines, padLine(m.styles.EmptyStyle.Render(" Loading tasks..."), m.width, bg))
	case len(m.visible) == 0:
		empty := " No tasks. Press a to add one."
		if m.filter != "" {
			empty = " No tasks match the filter."
		}
		lines = append(lines, padLine(m.styles.EmptyStyle.Render(empty), m.width, bg))
	default:
		end := m.scroll + rows
		if end > len(m.visible) {
			end = len(m.visible)
		}
		for row := m.scroll; row < end; row++ {
			lines = append(lines, m.renderRow(row))
		}
	}

	for len(lines) < rows {
		lines = append(lines, padLine("", m.width, bg))
	}
	return lines
}

// renderRow renders a single task row, already padded to the full width.
func (m Model) renderRow(row int) string {
	idx := m.visible[row]
	t, err := m.list.Get(idx)
	if err != nil {
		return padLine("", m.width, m.styles.colorBg)
	}

	num := fmt.Sprintf(" %3d ", idx+1)
	if row == m.cursor {
		// The selection bar overrides per-token colors so the cursor stays
		// readable over any task state
		line := m.styles.RowSelectedStyle.Render(num + t.Line())
		return padLine(line, m.width, m.styles.colorBgSelection)
	}

	line := m.styles.NumberStyle.Render(num) + m.renderTaskLine(t)
	return padLine(line, m.width, m.styles.colorBg)
}

// renderTaskLine styles the verbatim task line token by token.
func (m Model) renderTaskLine(t *todotxt.Task) string {
	if t.Done() {
		return m.styles.DoneStyle.Render(t.Line())
	}

	base := m.styles.RowStyle
	if overdue, ok := t.Overdue(); ok && overdue {
		base = m.styles.OverdueStyle
	}

	fields := strings.Fields(t.Line())
	parts := make([]string, 0, len(fields))
	for i, f := range fields {
		switch {
		case i == 0 && isPriorityToken(f):
			letter := strings.ToUpper(string(f[1]))
			parts = append(parts, m.styles.PriorityStyle(letter).Render(f))
		case len(f) > 1 && (f[0] == '@' || f[0] == '+'):
			parts = append(parts, m.styles.TagStyle.Render(f))
		default:
			parts = append(parts, base.Render(f))
		}
	}
	return strings.Join(parts, base.Render(" "))
}

func isPriorityToken(f string) bool {
	return len(f) == 3 && f[0] == '(' && f[2] == ')' &&
		((f[1] >= 'A' && f[1] <= 'Z') || (f[1] >= 'a' && f[1] <= 'z'))
}

// renderStatusLine renders the input prompt, a pending confirmation, or the
// current status message.
func (m Model) renderStatusLine() string {
	switch m.mode {
	case ModeInput, ModeFilter:
		return " " + m.input.View()
	case ModeConfirm:
		return m.styles.ConfirmStyle.Render(" " + m.confirmMsg)
	}
	if m.statusMsg != "" {
		return m.styles.StatusStyle.Render(" " + m.statusMsg)
	}
	if m.filter != "" {
		return m.styles.HelpStyle.Render(fmt.Sprintf(" filter: %s (esc to clear)", m.filter))
	}
	return " "
}

// padLine pads or trims a rendered line to the given width, filling the
// remainder with the background color.
func padLine(line string, width int, bg lipgloss.Color) string {
	w := lipgloss.Width(line)
	if w > width {
		return ansi.Cut(line, 0, width)
	}
	if w == width {
		return line
	}
	pad := lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", width-w))
	return line + pad
}
