package ui

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/javiermolinar/rocin/internal/journal"
	"github.com/javiermolinar/rocin/internal/todotxt"
)

// loadList reads the active task list.
func (a *App) loadList(ctx context.Context) (*todotxt.List, error) {
	list, err := a.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return list, nil
}

// saveList writes the active task list back.
func (a *App) saveList(ctx context.Context, list *todotxt.List) error {
	if err := a.repo.Save(ctx, list); err != nil {
		return fmt.Errorf("saving tasks: %w", err)
	}
	return nil
}

// taskAt resolves a 1-based task number argument to the task and its
// zero-based list index.
func taskAt(list *todotxt.List, arg string) (*todotxt.Task, int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return nil, 0, fmt.Errorf("invalid task number %q", arg)
	}
	t, err := list.Get(n - 1)
	if err != nil {
		return nil, 0, fmt.Errorf("no task numbered %d", n)
	}
	return t, n - 1, nil
}

// lineWithPriority rebuilds a task line carrying the given priority
// letter, or no priority when letter is empty. Everything else on the
// line is preserved.
func lineWithPriority(t *todotxt.Task, letter string) string {
	parts := make([]string, 0, 6)
	if t.Done() {
		parts = append(parts, "x")
	}
	if letter != "" {
		parts = append(parts, "("+letter+")")
	}
	if date, ok := t.Date(); ok {
		parts = append(parts, date.Format("2006-01-02"))
	}
	if text := t.Text(); text != "" {
		parts = append(parts, text)
	}
	parts = append(parts, t.Contexts()...)
	parts = append(parts, t.Projects()...)
	return strings.Join(parts, " ")
}

// parsePriorityLetter validates a priority argument and returns it
// uppercased.
func parsePriorityLetter(arg string) (string, error) {
	letter := strings.ToUpper(strings.TrimSpace(arg))
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return "", fmt.Errorf("invalid priority %q: must be a single letter A-Z", arg)
	}
	return letter, nil
}

// record writes a journal event. Journal failures are reported but do
// not fail the command: the task file itself is already saved.
func (a *App) record(ctx context.Context, kind journal.EventKind, t *todotxt.Task) {
	if a.journal == nil {
		return
	}
	if err := a.journal.Record(ctx, kind, t, time.Now()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording journal event: %v\n", err)
	}
}
