// Package todotxt implements the todo.txt single-line task format:
// parsing, rendering, and completion-state transitions.
package todotxt

import (
	"regexp"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	doneRe     = regexp.MustCompile(`^x\s+`)
	priorityRe = regexp.MustCompile(`^\(([A-Za-z])\)\s+`)
	dateRe     = regexp.MustCompile(`(^|\s)(\d{4}-\d{2}-\d{2})`)
	contextRe  = regexp.MustCompile(`(^|\s)@\w+`)
	projectRe  = regexp.MustCompile(`(^|\s)\+\w+`)
)

// Task is a single todo.txt line and its parsed state.
//
// The original line is kept verbatim and never changes. Priority,
// date, and done state start at their parsed values and move only
// through Complete, Uncomplete, and Toggle. Context and project tags
// are owned by the task and mutable through the Add/Remove methods;
// tag mutations show up in Render but never touch Text or Original.
type Task struct {
	original string
	priority string
	date     time.Time
	hasDate  bool
	done     bool
	contexts []string
	projects []string

	text    string
	textSet bool
	dirty   bool
	clock   Clock
}

// New parses line into a Task using the system clock. Construction is
// total: any input, including the empty string, yields a usable task.
func New(line string) *Task {
	return NewWithClock(line, SystemClock())
}

// NewWithClock parses line using clock as the time source for
// completion stamps and overdue checks.
func NewWithClock(line string, clock Clock) *Task {
	if clock == nil {
		clock = SystemClock()
	}
	t := &Task{original: line, clock: clock}
	t.done = doneRe.MatchString(line)
	t.priority = parsePriority(line)
	t.date, t.hasDate = parseDate(line)
	t.contexts = parseTags(line, contextRe)
	t.projects = parseTags(line, projectRe)
	return t
}

func parsePriority(line string) string {
	m := priorityRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

// parseDate takes the first textual date match and validates it as a
// calendar date. An impossible date (month 56 and the like) counts as
// no date at all.
func parseDate(line string) (time.Time, bool) {
	m := dateRe.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, m[2])
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func parseTags(line string, re *regexp.Regexp) []string {
	matches := re.FindAllString(line, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, strings.TrimSpace(m))
	}
	return tags
}

// dayOf normalizes t to midnight UTC so date comparisons are day-exact
// regardless of the clock's location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Original returns the verbatim line the task was parsed from.
func (t *Task) Original() string { return t.original }

// Text returns the task's free text: the original line stripped of
// the done marker, then the date, then the priority marker, then all
// context and project tags, trimmed of surrounding whitespace. The
// value is derived from the original once and is immune to mutation.
func (t *Task) Text() string {
	if !t.textSet {
		t.text = deriveText(t.original)
		t.textSet = true
	}
	return t.text
}

// deriveText strips markers in a fixed order. The order matters: a
// done marker hides a priority marker behind it, so it goes first.
func deriveText(line string) string {
	s := doneRe.ReplaceAllString(line, "")
	if loc := dateRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + s[loc[1]:]
	}
	s = priorityRe.ReplaceAllString(s, "")
	s = contextRe.ReplaceAllString(s, "")
	s = projectRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Priority returns the current priority letter. ok is false when the
// task has none.
func (t *Task) Priority() (priority string, ok bool) {
	return t.priority, t.priority != ""
}

// Date returns the task's date. ok is false when the task has none.
func (t *Task) Date() (date time.Time, ok bool) {
	return t.date, t.hasDate
}

// Done reports whether the task is completed.
func (t *Task) Done() bool { return t.done }

// Contexts returns the context tags in order of appearance, duplicates
// included. The returned slice is a copy.
func (t *Task) Contexts() []string {
	return append([]string(nil), t.contexts...)
}

// Projects returns the project tags in order of appearance, duplicates
// included. The returned slice is a copy.
func (t *Task) Projects() []string {
	return append([]string(nil), t.projects...)
}

// AddContext appends a context tag. A bare word is prefixed with @.
func (t *Task) AddContext(tag string) {
	t.contexts = append(t.contexts, normalizeTag(tag, "@"))
	t.dirty = true
}

// RemoveContext removes every context tag equal to tag.
func (t *Task) RemoveContext(tag string) {
	t.contexts = removeTag(t.contexts, normalizeTag(tag, "@"))
	t.dirty = true
}

// AddProject appends a project tag. A bare word is prefixed with +.
func (t *Task) AddProject(tag string) {
	t.projects = append(t.projects, normalizeTag(tag, "+"))
	t.dirty = true
}

// RemoveProject removes every project tag equal to tag.
func (t *Task) RemoveProject(tag string) {
	t.projects = removeTag(t.projects, normalizeTag(tag, "+"))
	t.dirty = true
}

func normalizeTag(tag, prefix string) string {
	if strings.HasPrefix(tag, prefix) {
		return tag
	}
	return prefix + tag
}

func removeTag(tags []string, tag string) []string {
	kept := make([]string, 0, len(tags))
	for _, existing := range tags {
		if existing != tag {
			kept = append(kept, existing)
		}
	}
	return kept
}

// Complete marks the task done, stamps it with the clock's current
// day, and clears any priority. Completing an already-done task
// refreshes the stamp.
func (t *Task) Complete() {
	t.date = dayOf(t.clock.Now())
	t.hasDate = true
	t.priority = ""
	t.done = true
	t.dirty = true
}

// Uncomplete reopens the task, restoring the priority and date parsed
// from the original line.
func (t *Task) Uncomplete() {
	t.priority = parsePriority(t.original)
	t.date, t.hasDate = parseDate(t.original)
	t.done = false
	t.dirty = true
}

// Toggle completes a pending task or reopens a done one.
func (t *Task) Toggle() {
	if t.done {
		t.Uncomplete()
	} else {
		t.Complete()
	}
}

// ComparePriority orders tasks by priority: +1 when t ranks above
// other, -1 when below, 0 when equal. Any priority ranks above none,
// and earlier letters rank higher, so (A) beats (B).
func (t *Task) ComparePriority(other *Task) int {
	switch {
	case t.priority == "" && other.priority == "":
		return 0
	case t.priority == "":
		return -1
	case other.priority == "":
		return 1
	default:
		return strings.Compare(other.priority, t.priority)
	}
}

// Overdue reports whether the task's date lies strictly before the
// clock's current day. ok is false when the task has no date.
func (t *Task) Overdue() (overdue, ok bool) {
	if !t.hasDate {
		return false, false
	}
	return t.date.Before(dayOf(t.clock.Now())), true
}

// Render builds the one-line todo.txt form: done marker, priority,
// date, text, context tags, then project tags.
func (t *Task) Render() string {
	parts := make([]string, 0, 4+len(t.contexts)+len(t.projects))
	if t.done {
		parts = append(parts, "x")
	}
	if t.priority != "" {
		parts = append(parts, "("+t.priority+")")
	}
	if t.hasDate {
		parts = append(parts, t.date.Format(dateLayout))
	}
	if text := t.Text(); text != "" {
		parts = append(parts, text)
	}
	parts = append(parts, t.contexts...)
	parts = append(parts, t.projects...)
	return strings.Join(parts, " ")
}

// Line returns the form written back to disk: the verbatim original
// for untouched tasks, the rendered form once the task was mutated.
func (t *Task) Line() string {
	if t.dirty {
		return t.Render()
	}
	return t.original
}
