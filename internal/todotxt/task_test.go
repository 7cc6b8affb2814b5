package todotxt

import (
	"reflect"
	"testing"
	"time"
)

// mustDay parses an ISO day or fails the test.
func mustDay(t *testing.T, day string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return parsed
}

// frozenAt returns a clock stuck at midnight of the given day.
func frozenAt(t *testing.T, day string) Clock {
	t.Helper()
	at := mustDay(t, day)
	return ClockFunc(func() time.Time { return at })
}

func TestNew(t *testing.T) {
	t.Run("parses priority date and text", func(t *testing.T) {
		task := New("(A) 2012-03-04 This has a date!")

		if pri, ok := task.Priority(); !ok || pri != "A" {
			t.Errorf("Priority() = %q, %v, want %q, true", pri, ok, "A")
		}
		date, ok := task.Date()
		if !ok {
			t.Fatal("Date() ok = false, want true")
		}
		if got := date.Format("2006-01-02"); got != "2012-03-04" {
			t.Errorf("Date() = %s, want 2012-03-04", got)
		}
		if task.Done() {
			t.Error("Done() = true, want false")
		}
		if got := task.Text(); got != "This has a date!" {
			t.Errorf("Text() = %q, want %q", got, "This has a date!")
		}
	})

	t.Run("parses a completed task", func(t *testing.T) {
		task := New("x 2012-12-08 This is done!")

		if !task.Done() {
			t.Error("Done() = false, want true")
		}
		date, ok := task.Date()
		if !ok {
			t.Fatal("Date() ok = false, want true")
		}
		if got := date.Format("2006-01-02"); got != "2012-12-08" {
			t.Errorf("Date() = %s, want 2012-12-08", got)
		}
		if got := task.Text(); got != "This is done!" {
			t.Errorf("Text() = %q, want %q", got, "This is done!")
		}
	})

	t.Run("parses contexts and projects in order", func(t *testing.T) {
		task := New("(A) Call mom @phone @home +family +calls")

		wantContexts := []string{"@phone", "@home"}
		if got := task.Contexts(); !reflect.DeepEqual(got, wantContexts) {
			t.Errorf("Contexts() = %v, want %v", got, wantContexts)
		}
		wantProjects := []string{"+family", "+calls"}
		if got := task.Projects(); !reflect.DeepEqual(got, wantProjects) {
			t.Errorf("Projects() = %v, want %v", got, wantProjects)
		}
		if got := task.Text(); got != "Call mom" {
			t.Errorf("Text() = %q, want %q", got, "Call mom")
		}
	})

	t.Run("edge cases", func(t *testing.T) {
		tests := []struct {
			name         string
			line         string
			wantPriority string
			wantDate     string
			wantDone     bool
			wantText     string
		}{
			{
				name:         "lowercase priority",
				line:         "(a) soft priority",
				wantPriority: "a",
				wantText:     "soft priority",
			},
			{
				name:     "no space after priority marker",
				line:     "(A)tight",
				wantText: "(A)tight",
			},
			{
				name:     "priority not at start",
				line:     "task with (A) in the middle",
				wantText: "task with (A) in the middle",
			},
			{
				name:     "uppercase X is not done",
				line:     "X 2012-12-08 shouting",
				wantDate: "2012-12-08",
				wantText: "X shouting",
			},
			{
				name:     "x without trailing space is not done",
				line:     "xylophone practice",
				wantText: "xylophone practice",
			},
			{
				name:     "invalid calendar date is absent but stripped",
				line:     "(A) 2012-56-99 bad date",
				wantText: "bad date",
			},
			{
				name:     "date glued to text does not count",
				line:     "ship2012-03-04 release",
				wantText: "ship2012-03-04 release",
			},
			{
				name:     "only the first date is taken",
				line:     "2012-03-04 then 2013-05-06 later",
				wantDate: "2012-03-04",
				wantText: "then 2013-05-06 later",
			},
			{
				name:     "done marker hides the priority from the text",
				line:     "x (B) 2019-01-01 clear the decks",
				wantDate: "2019-01-01",
				wantDone: true,
				wantText: "clear the decks",
			},
			{
				name: "empty line",
				line: "",
			},
			{
				name: "whitespace only",
				line: "   ",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				task := New(tt.line)

				pri, ok := task.Priority()
				if ok != (tt.wantPriority != "") || pri != tt.wantPriority {
					t.Errorf("Priority() = %q, %v, want %q", pri, ok, tt.wantPriority)
				}
				date, ok := task.Date()
				if ok != (tt.wantDate != "") {
					t.Errorf("Date() ok = %v, want %v", ok, tt.wantDate != "")
				}
				if ok && date.Format("2006-01-02") != tt.wantDate {
					t.Errorf("Date() = %s, want %s", date.Format("2006-01-02"), tt.wantDate)
				}
				if task.Done() != tt.wantDone {
					t.Errorf("Done() = %v, want %v", task.Done(), tt.wantDone)
				}
				if got := task.Text(); got != tt.wantText {
					t.Errorf("Text() = %q, want %q", got, tt.wantText)
				}
				if got := task.Original(); got != tt.line {
					t.Errorf("Original() = %q, want %q", got, tt.line)
				}
			})
		}
	})

	t.Run("adjacent tags without whitespace parse as one", func(t *testing.T) {
		task := New("note @x@y +a+b")

		if got := task.Contexts(); !reflect.DeepEqual(got, []string{"@x"}) {
			t.Errorf("Contexts() = %v, want [@x]", got)
		}
		if got := task.Projects(); !reflect.DeepEqual(got, []string{"+a"}) {
			t.Errorf("Projects() = %v, want [+a]", got)
		}
	})

	t.Run("duplicate tags are preserved", func(t *testing.T) {
		task := New("water plants @home @home +garden")

		want := []string{"@home", "@home"}
		if got := task.Contexts(); !reflect.DeepEqual(got, want) {
			t.Errorf("Contexts() = %v, want %v", got, want)
		}
	})
}

func TestTagMutation(t *testing.T) {
	t.Run("added tags render but never touch text or original", func(t *testing.T) {
		line := "(A) 2012-12-08 My task @test"
		task := New(line)

		task.AddContext("laptop")
		task.AddProject("+rigging")

		want := "(A) 2012-12-08 My task @test @laptop +rigging"
		if got := task.Render(); got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
		if got := task.Text(); got != "My task" {
			t.Errorf("Text() = %q, want %q", got, "My task")
		}
		if got := task.Original(); got != line {
			t.Errorf("Original() = %q, want %q", got, line)
		}
	})

	t.Run("remove drops every equal tag", func(t *testing.T) {
		task := New("water plants @home @home +garden")

		task.RemoveContext("@home")

		if got := task.Contexts(); len(got) != 0 {
			t.Errorf("Contexts() = %v, want empty", got)
		}
		if got := task.Render(); got != "water plants +garden" {
			t.Errorf("Render() = %q, want %q", got, "water plants +garden")
		}
	})
}

func TestComplete(t *testing.T) {
	t.Run("stamps today and clears the priority", func(t *testing.T) {
		clock := frozenAt(t, "2013-12-08")
		task := NewWithClock("(A) 2012-12-08 My task @test +test2", clock)

		task.Complete()

		if !task.Done() {
			t.Error("Done() = false, want true")
		}
		if _, ok := task.Priority(); ok {
			t.Error("Priority() ok = true, want false")
		}
		want := "x 2013-12-08 My task @test +test2"
		if got := task.Render(); got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("completing again refreshes the date", func(t *testing.T) {
		current := mustDay(t, "2013-12-08")
		clock := ClockFunc(func() time.Time { return current })
		task := NewWithClock("My task", clock)

		task.Complete()
		current = mustDay(t, "2014-01-02")
		task.Complete()

		date, ok := task.Date()
		if !ok {
			t.Fatal("Date() ok = false, want true")
		}
		if got := date.Format("2006-01-02"); got != "2014-01-02" {
			t.Errorf("Date() = %s, want 2014-01-02", got)
		}
	})
}

func TestUncomplete(t *testing.T) {
	t.Run("restores the parsed priority and date", func(t *testing.T) {
		clock := frozenAt(t, "2013-12-08")
		task := NewWithClock("(A) 2012-12-08 My task", clock)

		task.Complete()
		task.Uncomplete()

		if task.Done() {
			t.Error("Done() = true, want false")
		}
		if pri, ok := task.Priority(); !ok || pri != "A" {
			t.Errorf("Priority() = %q, %v, want %q, true", pri, ok, "A")
		}
		date, ok := task.Date()
		if !ok {
			t.Fatal("Date() ok = false, want true")
		}
		if got := date.Format("2006-01-02"); got != "2012-12-08" {
			t.Errorf("Date() = %s, want 2012-12-08", got)
		}
	})

	t.Run("reopens a task parsed as done", func(t *testing.T) {
		task := New("x 2012-12-08 This is done!")

		task.Uncomplete()

		if task.Done() {
			t.Error("Done() = true, want false")
		}
		want := "2012-12-08 This is done!"
		if got := task.Render(); got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("clears a completion stamp absent from the original", func(t *testing.T) {
		clock := frozenAt(t, "2013-12-08")
		task := NewWithClock("My task", clock)

		task.Complete()
		task.Uncomplete()

		if _, ok := task.Date(); ok {
			t.Error("Date() ok = true, want false")
		}
	})
}

func TestToggle(t *testing.T) {
	clock := frozenAt(t, "2013-12-08")
	task := NewWithClock("(A) 2012-12-08 My task", clock)

	task.Toggle()
	if !task.Done() {
		t.Fatal("Done() = false after first toggle, want true")
	}

	task.Toggle()
	if task.Done() {
		t.Fatal("Done() = true after second toggle, want false")
	}
	if pri, ok := task.Priority(); !ok || pri != "A" {
		t.Errorf("Priority() = %q, %v, want %q, true", pri, ok, "A")
	}
}

func TestComparePriority(t *testing.T) {
	tests := []struct {
		name  string
		self  string
		other string
		want  int
	}{
		{name: "both without priority", self: "one", other: "two", want: 0},
		{name: "self without ranks below", self: "one", other: "(B) two", want: -1},
		{name: "self with ranks above", self: "(B) one", other: "two", want: 1},
		{name: "equal letters", self: "(C) one", other: "(C) two", want: 0},
		{name: "earlier letter ranks above", self: "(A) one", other: "(B) two", want: 1},
		{name: "later letter ranks below", self: "(B) one", other: "(A) two", want: -1},
		{name: "uppercase ranks above lowercase", self: "(B) one", other: "(a) two", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			self := New(tt.self)
			other := New(tt.other)
			if got := self.ComparePriority(other); got != tt.want {
				t.Errorf("ComparePriority() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOverdue(t *testing.T) {
	clock := frozenAt(t, "2020-06-15")

	tests := []struct {
		name        string
		line        string
		wantOverdue bool
		wantOK      bool
	}{
		{name: "no date", line: "sometime"},
		{name: "yesterday", line: "2020-06-14 late", wantOverdue: true, wantOK: true},
		{name: "today", line: "2020-06-15 current", wantOK: true},
		{name: "tomorrow", line: "2020-06-16 ahead", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewWithClock(tt.line, clock)
			overdue, ok := task.Overdue()
			if overdue != tt.wantOverdue || ok != tt.wantOK {
				t.Errorf("Overdue() = %v, %v, want %v, %v", overdue, ok, tt.wantOverdue, tt.wantOK)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Run("orders sections regardless of the original", func(t *testing.T) {
		task := New("x 2021-02-03 fix the mast +boat @dock")

		want := "x 2021-02-03 fix the mast @dock +boat"
		if got := task.Render(); got != want {
			t.Errorf("Render() = %q, want %q", got, want)
		}
	})

	t.Run("skips empty sections", func(t *testing.T) {
		task := New("just text")

		if got := task.Render(); got != "just text" {
			t.Errorf("Render() = %q, want %q", got, "just text")
		}
	})
}

func TestLine(t *testing.T) {
	t.Run("untouched tasks keep the verbatim original", func(t *testing.T) {
		line := "  (A)   spaced  out  "
		task := New(line)

		if got := task.Line(); got != line {
			t.Errorf("Line() = %q, want %q", got, line)
		}
	})

	t.Run("mutated tasks switch to the rendered form", func(t *testing.T) {
		clock := frozenAt(t, "2013-12-08")
		task := NewWithClock("(A) My task", clock)

		task.Complete()

		want := "x 2013-12-08 My task"
		if got := task.Line(); got != want {
			t.Errorf("Line() = %q, want %q", got, want)
		}
	})
}
