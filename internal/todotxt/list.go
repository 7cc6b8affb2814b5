package todotxt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrIndexOutOfRange is returned when a task index does not exist.
var ErrIndexOutOfRange = errors.New("task index out of range")

// List is an ordered collection of tasks, one per todo.txt line.
type List struct {
	tasks []*Task
	clock Clock
}

// NewList returns an empty list using the system clock.
func NewList() *List {
	return NewListWithClock(SystemClock())
}

// NewListWithClock returns an empty list whose tasks use clock.
func NewListWithClock(clock Clock) *List {
	if clock == nil {
		clock = SystemClock()
	}
	return &List{clock: clock}
}

// ParseList reads one task per line from r, skipping blank lines.
func ParseList(r io.Reader) (*List, error) {
	return ParseListWithClock(r, SystemClock())
}

// ParseListWithClock reads one task per line from r using clock as the
// time source for every task. Blank lines are skipped.
func ParseListWithClock(r io.Reader, clock Clock) (*List, error) {
	list := NewListWithClock(clock)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		list.tasks = append(list.tasks, NewWithClock(line, list.clock))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading task lines: %w", err)
	}
	return list, nil
}

// Len returns the number of tasks.
func (l *List) Len() int { return len(l.tasks) }

// Add parses line into a task, appends it, and returns it.
func (l *List) Add(line string) *Task {
	t := NewWithClock(line, l.clock)
	l.tasks = append(l.tasks, t)
	return t
}

// AddTask appends an existing task.
func (l *List) AddTask(t *Task) {
	l.tasks = append(l.tasks, t)
}

// Get returns the task at index i.
func (l *List) Get(i int) (*Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return l.tasks[i], nil
}

// Remove deletes and returns the task at index i.
func (l *List) Remove(i int) (*Task, error) {
	t, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return t, nil
}

// Replace swaps the task at index i for one parsed from line and
// returns the new task.
func (l *List) Replace(i int, line string) (*Task, error) {
	if _, err := l.Get(i); err != nil {
		return nil, err
	}
	t := NewWithClock(line, l.clock)
	l.tasks[i] = t
	return t, nil
}

// Move relocates the task at index from to index to, shifting the
// tasks in between.
func (l *List) Move(from, to int) error {
	if _, err := l.Get(from); err != nil {
		return err
	}
	if _, err := l.Get(to); err != nil {
		return err
	}
	t := l.tasks[from]
	l.tasks = append(l.tasks[:from], l.tasks[from+1:]...)
	rest := append([]*Task(nil), l.tasks[to:]...)
	l.tasks = append(append(l.tasks[:to], t), rest...)
	return nil
}

// All returns the tasks in order. The returned slice is a copy.
func (l *List) All() []*Task {
	return append([]*Task(nil), l.tasks...)
}

// Filter returns the tasks for which keep returns true, in order.
func (l *List) Filter(keep func(*Task) bool) []*Task {
	out := make([]*Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// Pending returns the tasks not yet completed.
func (l *List) Pending() []*Task {
	return l.Filter(func(t *Task) bool { return !t.Done() })
}

// Completed returns the completed tasks.
func (l *List) Completed() []*Task {
	return l.Filter(func(t *Task) bool { return t.Done() })
}

// WithContext returns the tasks carrying the context tag. A bare word
// is prefixed with @ before matching.
func (l *List) WithContext(tag string) []*Task {
	want := normalizeTag(tag, "@")
	return l.Filter(func(t *Task) bool { return containsTag(t.contexts, want) })
}

// WithProject returns the tasks carrying the project tag. A bare word
// is prefixed with + before matching.
func (l *List) WithProject(tag string) []*Task {
	want := normalizeTag(tag, "+")
	return l.Filter(func(t *Task) bool { return containsTag(t.projects, want) })
}

func containsTag(tags []string, tag string) bool {
	for _, existing := range tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// SortByPriority stable-sorts the list from highest priority to
// lowest. Tasks without a priority keep their relative order after
// the prioritized ones.
func (l *List) SortByPriority() {
	sort.SliceStable(l.tasks, func(i, j int) bool {
		return l.tasks[i].ComparePriority(l.tasks[j]) > 0
	})
}

// Contexts returns the distinct context tags across the list, sorted.
func (l *List) Contexts() []string {
	return sortedKeys(l.ContextCounts())
}

// Projects returns the distinct project tags across the list, sorted.
func (l *List) Projects() []string {
	return sortedKeys(l.ProjectCounts())
}

// ContextCounts returns the number of tasks carrying each context tag.
func (l *List) ContextCounts() map[string]int {
	return l.tagCounts(func(t *Task) []string { return t.contexts })
}

// ProjectCounts returns the number of tasks carrying each project tag.
func (l *List) ProjectCounts() map[string]int {
	return l.tagCounts(func(t *Task) []string { return t.projects })
}

// tagCounts counts tasks, not occurrences: a task repeating a tag
// still counts once for it.
func (l *List) tagCounts(tags func(*Task) []string) map[string]int {
	counts := make(map[string]int)
	for _, t := range l.tasks {
		seen := make(map[string]bool)
		for _, tag := range tags(t) {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			counts[tag]++
		}
	}
	return counts
}

func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Archive removes the completed tasks from the list and returns them
// in order.
func (l *List) Archive() []*Task {
	done := make([]*Task, 0)
	kept := make([]*Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.Done() {
			done = append(done, t)
		} else {
			kept = append(kept, t)
		}
	}
	l.tasks = kept
	return done
}

// Render returns the list as todo.txt lines, one task per line, with
// a trailing newline when the list is non-empty. Untouched tasks keep
// their verbatim original line.
func (l *List) Render() string {
	if len(l.tasks) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, t := range l.tasks {
		sb.WriteString(t.Line())
		sb.WriteByte('\n')
	}
	return sb.String()
}
