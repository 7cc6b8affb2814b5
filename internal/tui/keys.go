package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rocin/internal/journal"
	"github.com/javiermolinar/rocin/internal/todotxt"
	"github.com/javiermolinar/rocin/internal/tui/commands"
)

// handleKeyMsg routes key presses to the handler for the current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global quit
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeInput:
		return m.handleInputKeys(msg)
	case ModeFilter:
		return m.handleFilterKeys(msg)
	case ModeConfirm:
		return m.handleConfirmKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal browsing mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		m.moveCursor(1)
		return m, nil

	case "k", "up":
		m.moveCursor(-1)
		return m, nil

	case "g", "home":
		m.cursor = 0
		m.ensureCursorVisible()
		return m, nil

	case "G", "end":
		m.cursor = len(m.visible) - 1
		m.clampCursor()
		return m, nil

	case "ctrl+d", "pgdown":
		m.moveCursor(m.visibleRows())
		return m, nil

	case "ctrl+u", "pgup":
		m.moveCursor(-m.visibleRows())
		return m, nil

	case " ", "x":
		return m.toggleCurrent()

	case "J":
		return m.moveTask(1)

	case "K":
		return m.moveTask(-1)

	case "p":
		return m.raisePriority()

	case "P":
		return m.clearPriority()

	case "a":
		LogModeChange(m.mode, ModeInput, "add task")
		m.mode = ModeInput
		m.input.Prompt = "add> "
		m.input.Placeholder = "(A) Mend the saddle @stable +errands"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "/":
		LogModeChange(m.mode, ModeFilter, "filter")
		m.mode = ModeFilter
		m.input.Prompt = "filter> "
		m.input.Placeholder = "text to match"
		m.input.SetValue(m.filter)
		m.input.Focus()
		return m, textinput.Blink

	case "d":
		m.showDone = !m.showDone
		m.refreshVisible()
		if m.showDone {
			return m, commands.Status("Showing completed tasks")
		}
		return m, commands.Status("Hiding completed tasks")

	case "y":
		return m.yankCurrent()

	case "s":
		return m, tea.Batch(commands.SaveTasks(m.repo, m.list), commands.Status("Saved"))

	case "A":
		return m.archiveDone()

	case "D":
		t, idx, ok := m.cursorTask()
		if !ok {
			return m, nil
		}
		LogModeChange(m.mode, ModeConfirm, "delete task")
		m.mode = ModeConfirm
		m.confirmIndex = idx
		m.confirmMsg = fmt.Sprintf("Delete task %d: %s? (y/n)", idx+1, truncateStr(t.Line(), 40))
		return m, nil

	case "r":
		m.loading = true
		return m, commands.LoadTasks(m.repo)

	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.refreshVisible()
			return m, commands.Status("Filter cleared")
		}
		return m, nil
	}

	return m, nil
}

// handleInputKeys handles keys while typing a new task line.
func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		LogModeChange(m.mode, ModeNormal, "add cancelled")
		m.mode = ModeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		line := strings.TrimSpace(m.input.Value())
		LogModeChange(m.mode, ModeNormal, "add submitted")
		m.mode = ModeNormal
		m.input.Blur()
		if line == "" {
			return m, nil
		}
		t := m.list.Add(line)
		m.refreshVisible()
		// Follow the new task when it passes the current filter
		if n := len(m.visible); n > 0 && m.visible[n-1] == m.list.Len()-1 {
			m.cursor = n - 1
			m.ensureCursorVisible()
		}
		LogListState(m.list, "add")
		return m, tea.Batch(
			commands.SaveTasks(m.repo, m.list),
			commands.RecordEvent(m.journal, journal.EventAdded, t),
			commands.Status(fmt.Sprintf("Added task %d", m.list.Len())),
		)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleFilterKeys handles keys while typing a filter query. The filter is
// applied on every keystroke.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		LogModeChange(m.mode, ModeNormal, "filter cancelled")
		m.mode = ModeNormal
		m.input.Blur()
		m.filter = ""
		m.refreshVisible()
		return m, nil

	case "enter":
		LogModeChange(m.mode, ModeNormal, "filter applied")
		m.mode = ModeNormal
		m.input.Blur()
		m.filter = strings.TrimSpace(m.input.Value())
		m.refreshVisible()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filter = strings.TrimSpace(m.input.Value())
	m.refreshVisible()
	return m, cmd
}

// handleConfirmKeys handles the y/n answer for a pending deletion. Any key
// other than yes cancels.
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		idx := m.confirmIndex
		LogModeChange(m.mode, ModeNormal, "delete confirmed")
		m.mode = ModeNormal
		m.confirmMsg = ""
		t, err := m.list.Remove(idx)
		if err != nil {
			return m, nil
		}
		m.refreshVisible()
		LogListState(m.list, "delete")
		return m, tea.Batch(
			commands.SaveTasks(m.repo, m.list),
			commands.Status(fmt.Sprintf("Deleted: %s", truncateStr(t.Text(), 40))),
		)
	}

	LogModeChange(m.mode, ModeNormal, "delete cancelled")
	m.mode = ModeNormal
	m.confirmMsg = ""
	return m, commands.Status("Cancelled")
}

// toggleCurrent flips the done state of the task under the cursor and
// records what actually happened.
func (m Model) toggleCurrent() (tea.Model, tea.Cmd) {
	t, idx, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	wasDone := t.Done()
	t.Toggle()
	kind := journal.EventCompleted
	status := fmt.Sprintf("Completed task %d", idx+1)
	if wasDone {
		kind = journal.EventReopened
		status = fmt.Sprintf("Reopened task %d", idx+1)
	}
	m.refreshVisible()
	LogListState(m.list, "toggle")
	return m, tea.Batch(
		commands.SaveTasks(m.repo, m.list),
		commands.RecordEvent(m.journal, kind, t),
		commands.Status(status),
	)
}

// moveTask moves the task under the cursor one visible row up or down.
func (m Model) moveTask(delta int) (tea.Model, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return m, nil
	}
	target := m.cursor + delta
	if target < 0 || target >= len(m.visible) {
		return m, nil
	}
	from := m.visible[m.cursor]
	to := m.visible[target]
	if err := m.list.Move(from, to); err != nil {
		return m, nil
	}
	m.refreshVisible()
	m.cursor = target
	m.ensureCursorVisible()
	LogListState(m.list, "move")
	return m, commands.SaveTasks(m.repo, m.list)
}

// raisePriority bumps the task under the cursor one letter towards A.
// Unprioritized tasks start at C.
func (m Model) raisePriority() (tea.Model, tea.Cmd) {
	t, idx, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	if t.Done() {
		return m, commands.Status("Completed tasks have no priority")
	}
	letter := "C"
	if p, hasPri := t.Priority(); hasPri {
		p = strings.ToUpper(p)
		if p == "A" {
			return m, nil
		}
		letter = string(p[0] - 1)
	}
	if _, err := m.list.Replace(idx, lineWithPriority(t, letter)); err != nil {
		return m, nil
	}
	m.refreshVisible()
	LogListState(m.list, "priority")
	return m, tea.Batch(
		commands.SaveTasks(m.repo, m.list),
		commands.Status(fmt.Sprintf("Task %d priority (%s)", idx+1, letter)),
	)
}

// clearPriority removes the priority from the task under the cursor.
func (m Model) clearPriority() (tea.Model, tea.Cmd) {
	t, idx, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	if _, hasPri := t.Priority(); !hasPri {
		return m, nil
	}
	if _, err := m.list.Replace(idx, lineWithPriority(t, "")); err != nil {
		return m, nil
	}
	m.refreshVisible()
	LogListState(m.list, "priority")
	return m, tea.Batch(
		commands.SaveTasks(m.repo, m.list),
		commands.Status(fmt.Sprintf("Task %d priority cleared", idx+1)),
	)
}

// yankCurrent copies the task line under the cursor to the clipboard.
func (m Model) yankCurrent() (tea.Model, tea.Cmd) {
	t, idx, ok := m.cursorTask()
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(t.Line()); err != nil {
		LogError("yank", err)
		return m, commands.Status(fmt.Sprintf("Clipboard: %v", err))
	}
	return m, commands.Status(fmt.Sprintf("Yanked task %d", idx+1))
}

// archiveDone moves completed tasks out of the list. The mutation happens
// here so the view updates immediately; persistence runs in the command.
func (m Model) archiveDone() (tea.Model, tea.Cmd) {
	archived := m.list.Archive()
	if len(archived) == 0 {
		return m, commands.Status("No completed tasks to archive")
	}
	m.refreshVisible()
	LogListState(m.list, "archive")
	return m, commands.ArchiveTasks(m.repo, m.list, archived)
}

// matchesFilter reports whether the task line contains the query,
// case-insensitively.
func matchesFilter(t *todotxt.Task, query string) bool {
	return strings.Contains(strings.ToLower(t.Line()), strings.ToLower(query))
}

// lineWithPriority rebuilds a task line with the given priority letter. An
// empty letter removes the priority.
func lineWithPriority(t *todotxt.Task, letter string) string {
	var parts []string
	if t.Done() {
		parts = append(parts, "x")
	}
	if letter != "" {
		parts = append(parts, "("+letter+")")
	}
	if d, ok := t.Date(); ok {
		parts = append(parts, d.Format("2006-01-02"))
	}
	if text := t.Text(); text != "" {
		parts = append(parts, text)
	}
	parts = append(parts, t.Contexts()...)
	parts = append(parts, t.Projects()...)
	return strings.Join(parts, " ")
}
