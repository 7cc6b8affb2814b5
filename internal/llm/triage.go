package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/rocin/internal/todotxt"
)

// ErrRetriesExhausted is returned when the model keeps producing
// responses that fail validation.
var ErrRetriesExhausted = errors.New("response still failed validation after retries")

// maxVetRetries is how many times a rejected response is sent back
// with feedback before giving up.
const maxVetRetries = 1

const draftSystemPrompt = `You are a task capture assistant for a todo.txt file.

Today: %s (%s)

%s
%s

Convert the user's notes into todo.txt task lines.

Format rules:
1. One task per line of plain text.
2. An optional priority goes first: "(A) " down to "(Z) ", A being most urgent. Only add one when the notes imply urgency.
3. An optional date in YYYY-MM-DD format may follow the priority when the notes name a deadline or day.
4. Context tags start with @ and name where or how the task happens: @home, @phone, @errands.
5. Project tags start with + and name the larger effort: +report, +move.
6. Reuse the existing tags listed above when they fit; invent new ones sparingly.
7. Split compound notes into separate tasks.
8. Keep each task short and actionable, reusing the user's own words.
9. Never mark a task as done.

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "tasks": ["(A) 2025-04-01 File the tax return @computer +finances"]
}`

const prioritizeSystemPrompt = `You are a prioritization assistant for a todo.txt file.

Today: %s (%s)

The pending tasks, numbered:
%s

Suggest a priority letter for the tasks that deserve one.

Rules:
1. "index" must be one of the task numbers above.
2. "priority" must be a single uppercase letter; A is most urgent, B next, and so on.
3. A task dated on or before today is overdue and deserves a high priority.
4. Do not suggest the priority a task already has.
5. Give a short reason for every suggestion.
6. Skip tasks whose current priority is already right.

Respond ONLY with valid JSON (no markdown, no explanation):
{
  "suggestions": [
    {"index": 1, "priority": "A", "reason": "Due yesterday"}
  ]
}`

// DraftRequest carries free-form notes to turn into tasks, plus the
// tags already in use so the model can reuse them.
type DraftRequest struct {
	Notes    string
	Today    time.Time
	Contexts []string
	Projects []string
}

type draftResponse struct {
	Tasks []string `json:"tasks"`
}

// Suggestion is a proposed priority for one task in a numbered list.
type Suggestion struct {
	Index    int    `json:"index"` // 1-based position in the submitted list
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

type prioritizeResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// PrioritizeRequest carries the pending tasks to rank.
type PrioritizeRequest struct {
	Tasks []*todotxt.Task
	Today time.Time
}

// Assistant turns free-form notes into todo.txt lines and suggests
// priorities for pending tasks.
type Assistant struct {
	client Client
}

// NewAssistant creates a new Assistant with the given LLM client.
func NewAssistant(client Client) *Assistant {
	return &Assistant{client: client}
}

// Draft converts free-form notes into parsed task lines. Responses
// that fail validation are sent back to the model with the problems
// listed before giving up.
func (a *Assistant) Draft(ctx context.Context, req DraftRequest) ([]*todotxt.Task, error) {
	messages := []Message{
		systemMsg(a.buildDraftPrompt(req)),
		userMsg(req.Notes),
	}

	var issues []string
	for attempt := 0; attempt <= maxVetRetries; attempt++ {
		var resp draftResponse
		if err := a.client.ChatJSON(ctx, messages, &resp); err != nil {
			return nil, fmt.Errorf("drafting tasks (attempt %d): %w", attempt+1, err)
		}

		tasks, problems := vetDraft(resp.Tasks)
		if len(resp.Tasks) == 0 {
			problems = append(problems, "no tasks were returned")
		}
		if len(problems) == 0 {
			return tasks, nil
		}
		issues = problems

		if attempt < maxVetRetries {
			respJSON, _ := json.Marshal(resp)
			messages = append(messages,
				assistantMsg(string(respJSON)),
				userMsg(formatIssues(issues)),
			)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrRetriesExhausted, strings.Join(issues, "; "))
}

// Prioritize asks the model for priority suggestions on the given
// tasks. An empty result means the model found nothing to change.
func (a *Assistant) Prioritize(ctx context.Context, req PrioritizeRequest) ([]Suggestion, error) {
	if len(req.Tasks) == 0 {
		return nil, nil
	}

	messages := []Message{
		systemMsg(a.buildPrioritizePrompt(req)),
	}

	var issues []string
	for attempt := 0; attempt <= maxVetRetries; attempt++ {
		var resp prioritizeResponse
		if err := a.client.ChatJSON(ctx, messages, &resp); err != nil {
			return nil, fmt.Errorf("prioritizing tasks (attempt %d): %w", attempt+1, err)
		}

		issues = vetSuggestions(resp.Suggestions, len(req.Tasks))
		if len(issues) == 0 {
			return resp.Suggestions, nil
		}

		if attempt < maxVetRetries {
			respJSON, _ := json.Marshal(resp)
			messages = append(messages,
				assistantMsg(string(respJSON)),
				userMsg(formatIssues(issues)),
			)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrRetriesExhausted, strings.Join(issues, "; "))
}

func (a *Assistant) buildDraftPrompt(req DraftRequest) string {
	return fmt.Sprintf(draftSystemPrompt,
		req.Today.Format("Monday"),
		req.Today.Format("2006-01-02"),
		formatTagLine("Existing contexts", req.Contexts),
		formatTagLine("Existing projects", req.Projects),
	)
}

func (a *Assistant) buildPrioritizePrompt(req PrioritizeRequest) string {
	var sb strings.Builder
	for i, t := range req.Tasks {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, t.Line()))
	}
	return fmt.Sprintf(prioritizeSystemPrompt,
		req.Today.Format("Monday"),
		req.Today.Format("2006-01-02"),
		strings.TrimRight(sb.String(), "\n"),
	)
}

func formatTagLine(label string, tags []string) string {
	if len(tags) == 0 {
		return label + ": none yet"
	}
	return label + ": " + strings.Join(tags, " ")
}

// vetDraft parses candidate lines and collects the problems the model
// must fix. Tasks are only usable when no line has problems.
func vetDraft(lines []string) ([]*todotxt.Task, []string) {
	var tasks []*todotxt.Task
	var problems []string

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			problems = append(problems, fmt.Sprintf("task %d: line is blank", i+1))
			continue
		}
		if strings.ContainsAny(line, "\n\r") {
			problems = append(problems, fmt.Sprintf("task %d: line must not contain newlines", i+1))
			continue
		}
		t := todotxt.New(line)
		if t.Done() {
			problems = append(problems, fmt.Sprintf("task %d: must not be marked done", i+1))
			continue
		}
		if t.Text() == "" {
			problems = append(problems, fmt.Sprintf("task %d: has tags but no description", i+1))
			continue
		}
		tasks = append(tasks, t)
	}

	return tasks, problems
}

func vetSuggestions(suggestions []Suggestion, taskCount int) []string {
	var problems []string
	for i, s := range suggestions {
		if s.Index < 1 || s.Index > taskCount {
			problems = append(problems, fmt.Sprintf("suggestion %d: index %d is out of range (1-%d)", i+1, s.Index, taskCount))
		}
		if !validPriorityLetter(s.Priority) {
			problems = append(problems, fmt.Sprintf("suggestion %d: priority %q must be a single letter A-Z", i+1, s.Priority))
		}
	}
	return problems
}

func validPriorityLetter(p string) bool {
	return len(p) == 1 && p[0] >= 'A' && p[0] <= 'Z'
}

// formatIssues builds the feedback message for a retry.
func formatIssues(issues []string) string {
	var sb strings.Builder
	sb.WriteString("Your response had these problems:\n")
	for _, issue := range issues {
		sb.WriteString(fmt.Sprintf("- %s\n", issue))
	}
	sb.WriteString("\nPlease correct them and respond again with valid JSON.")
	return sb.String()
}
