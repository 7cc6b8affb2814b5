// Package store persists task lists as plain todo.txt files.
package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javiermolinar/rocin/internal/todotxt"
)

// FileStore implements todotxt.Repository over a pair of plain text
// files: the active list and the archive of completed tasks.
type FileStore struct {
	todoPath string
	donePath string
	clock    todotxt.Clock
}

// New returns a FileStore reading and writing the given paths.
func New(todoPath, donePath string) *FileStore {
	return NewWithClock(todoPath, donePath, todotxt.SystemClock())
}

// NewWithClock returns a FileStore whose parsed tasks use clock.
func NewWithClock(todoPath, donePath string, clock todotxt.Clock) *FileStore {
	if clock == nil {
		clock = todotxt.SystemClock()
	}
	return &FileStore{todoPath: todoPath, donePath: donePath, clock: clock}
}

// TodoPath returns the active list location.
func (s *FileStore) TodoPath() string { return s.todoPath }

// DonePath returns the archive location.
func (s *FileStore) DonePath() string { return s.donePath }

// Load reads the active task list. A missing file yields an empty
// list, not an error.
func (s *FileStore) Load(ctx context.Context) (*todotxt.List, error) {
	return s.loadFile(ctx, s.todoPath)
}

// LoadArchive reads the archived task list. A missing file yields an
// empty list.
func (s *FileStore) LoadArchive(ctx context.Context) (*todotxt.List, error) {
	return s.loadFile(ctx, s.donePath)
}

func (s *FileStore) loadFile(ctx context.Context, path string) (*todotxt.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return todotxt.NewListWithClock(s.clock), nil
		}
		return nil, fmt.Errorf("reading task file: %w", err)
	}
	list, err := todotxt.ParseListWithClock(bytes.NewReader(data), s.clock)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return list, nil
}

// Save writes the active task list, creating parent directories as
// needed.
func (s *FileStore) Save(ctx context.Context, list *todotxt.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.todoPath), 0o755); err != nil {
		return fmt.Errorf("creating task directory: %w", err)
	}
	if err := os.WriteFile(s.todoPath, []byte(list.Render()), 0o644); err != nil {
		return fmt.Errorf("writing task file: %w", err)
	}
	return nil
}

// AppendArchive appends tasks to the archive file, creating it if
// needed.
func (s *FileStore) AppendArchive(ctx context.Context, tasks []*todotxt.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.donePath), 0o755); err != nil {
		return fmt.Errorf("creating archive directory: %w", err)
	}

	f, err := os.OpenFile(s.donePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening archive file: %w", err)
	}

	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(t.Line())
		sb.WriteByte('\n')
	}
	if _, err := f.WriteString(sb.String()); err != nil {
		_ = f.Close()
		return fmt.Errorf("appending to archive file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing archive file: %w", err)
	}
	return nil
}
