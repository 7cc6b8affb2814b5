// Package tui provides the terminal user interface for rocin.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rocin/internal/config"
	"github.com/javiermolinar/rocin/internal/journal"
	"github.com/javiermolinar/rocin/internal/todotxt"
	"github.com/javiermolinar/rocin/internal/tui/commands"
	"github.com/javiermolinar/rocin/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeInput        // Typing a new task line, parsed on enter
	ModeFilter       // Typing a filter query, applied live
	ModeConfirm      // Waiting for y/n before deleting a task
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo    todotxt.Repository
	journal *journal.Journal // nil when the journal database is unavailable
	config  *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	list     *todotxt.List
	visible  []int // Indexes into list for rows passing filter and showDone
	cursor   int   // Row index into visible
	scroll   int   // First rendered row
	mode     Mode
	filter   string
	showDone bool
	loading  bool

	// Confirm state
	confirmMsg   string
	confirmIndex int // List index of the task pending deletion

	// Components
	input textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// New creates a new TUI model.
func New(repo todotxt.Repository, jrnl *journal.Journal, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "(A) Mend the saddle @stable +errands"
	ti.CharLimit = 256
	ti.Prompt = "> "

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to squire on error
		t, _ = theme.Load("squire")
	}

	// Create styles from theme
	styles := NewStyles(t)

	ti.PromptStyle = styles.InputPromptStyle
	ti.TextStyle = styles.InputTextStyle
	ti.PlaceholderStyle = styles.InputPlaceholderStyle
	ti.Cursor.Style = styles.InputCursorStyle
	ti.Cursor.TextStyle = styles.InputTextStyle

	return &Model{
		repo:     repo,
		journal:  jrnl,
		config:   cfg,
		theme:    t,
		styles:   styles,
		list:     todotxt.NewList(),
		mode:     ModeNormal,
		showDone: true,
		loading:  true,
		input:    ti,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadTasks(m.repo)
}

// Run starts the TUI.
func Run(repo todotxt.Repository, jrnl *journal.Journal, cfg *config.Config) error {
	return RunWithDebug(repo, jrnl, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo todotxt.Repository, jrnl *journal.Journal, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, jrnl, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refreshVisible rebuilds the visible row index from the list, the filter
// and the showDone flag, keeping the cursor in range.
func (m *Model) refreshVisible() {
	m.visible = m.visible[:0]
	for i, t := range m.list.All() {
		if !m.showDone && t.Done() {
			continue
		}
		if m.filter != "" && !matchesFilter(t, m.filter) {
			continue
		}
		m.visible = append(m.visible, i)
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// ensureCursorVisible adjusts the scroll offset so the cursor row is rendered.
func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+rows {
		m.scroll = m.cursor - rows + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
	LogCursorMove(m.cursor, len(m.visible))
}

// cursorTask returns the task under the cursor and its index in the list.
func (m *Model) cursorTask() (*todotxt.Task, int, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil, 0, false
	}
	idx := m.visible[m.cursor]
	t, err := m.list.Get(idx)
	if err != nil {
		return nil, 0, false
	}
	return t, idx, true
}

// visibleRows returns how many task rows fit between header and footer.
func (m *Model) visibleRows() int {
	rows := m.height - chromeLines
	if rows < 1 {
		rows = 1
	}
	return rows
}
