// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/rocin/internal/journal"
	"github.com/javiermolinar/rocin/internal/todotxt"
)

// TasksLoadedMsg is sent when the task list is loaded from disk.
type TasksLoadedMsg struct {
	List *todotxt.List
}

// SavedMsg is sent when the task list is written back to disk.
type SavedMsg struct{}

// ArchivedMsg is sent when completed tasks were moved to the archive.
type ArchivedMsg struct {
	Count int
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadTasks loads the task list from the repository.
func LoadTasks(repo todotxt.Repository) tea.Cmd {
	return func() tea.Msg {
		list, err := repo.Load(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading tasks: %w", err)}
		}
		return TasksLoadedMsg{List: list}
	}
}

// SaveTasks writes the task list back to the repository.
func SaveTasks(repo todotxt.Repository, list *todotxt.List) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Save(context.Background(), list); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving tasks: %w", err)}
		}
		return SavedMsg{}
	}
}

// ArchiveTasks appends the already-removed completed tasks to the archive,
// then writes the remaining list. Append runs first so a failure cannot
// lose completed tasks.
func ArchiveTasks(repo todotxt.Repository, list *todotxt.List, archived []*todotxt.Task) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := repo.AppendArchive(ctx, archived); err != nil {
			return ErrMsg{Err: fmt.Errorf("archiving tasks: %w", err)}
		}
		if err := repo.Save(ctx, list); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving tasks: %w", err)}
		}
		return ArchivedMsg{Count: len(archived)}
	}
}

// RecordEvent writes a journal event in the background. Journal failures
// surface as a status message, never as an error.
func RecordEvent(jrnl *journal.Journal, kind journal.EventKind, t *todotxt.Task) tea.Cmd {
	return func() tea.Msg {
		if jrnl == nil {
			return nil
		}
		if err := jrnl.Record(context.Background(), kind, t, time.Now()); err != nil {
			return StatusMsgCmd{Msg: fmt.Sprintf("journal: %v", err)}
		}
		return nil
	}
}

// Status shows a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
