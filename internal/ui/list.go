package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocin/internal/todotxt"
)

func (a *App) listCmd() *cobra.Command {
	var (
		showAll    bool
		doneOnly   bool
		byPriority bool
		contextTag string
		projectTag string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List pending tasks with their task numbers.

Task numbers are positions in the full file, so they stay valid for
do, pri, and rm even when the listing is filtered or sorted.`,
		Example: `  rocin list
  rocin list --all
  rocin list --context=@home
  rocin list --project=armor --priority`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			list, err := a.loadList(context.Background())
			if err != nil {
				return err
			}

			type row struct {
				n    int
				task *todotxt.Task
			}
			var rows []row
			for i, t := range list.All() {
				if !matchesListFilters(t, showAll, doneOnly, contextTag, projectTag) {
					continue
				}
				rows = append(rows, row{n: i + 1, task: t})
			}

			if len(rows) == 0 {
				fmt.Println("No matching tasks.")
				return nil
			}

			if byPriority {
				sort.SliceStable(rows, func(i, j int) bool {
					return rows[i].task.ComparePriority(rows[j].task) > 0
				})
			}

			for _, r := range rows {
				PrintTaskRow(r.n, r.task)
			}
			fmt.Printf("%s\n", formatMuted(fmt.Sprintf("%d of %d tasks shown", len(rows), list.Len())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "all", false, "Include completed tasks")
	cmd.Flags().BoolVar(&doneOnly, "done", false, "Show only completed tasks")
	cmd.Flags().BoolVar(&byPriority, "priority", false, "Sort by priority, highest first")
	cmd.Flags().StringVar(&contextTag, "context", "", "Only tasks with this @context")
	cmd.Flags().StringVar(&projectTag, "project", "", "Only tasks with this +project")

	return cmd
}

// matchesListFilters applies the list command's filter flags to a task.
func matchesListFilters(t *todotxt.Task, showAll, doneOnly bool, contextTag, projectTag string) bool {
	if doneOnly && !t.Done() {
		return false
	}
	if !doneOnly && !showAll && t.Done() {
		return false
	}
	if contextTag != "" && !hasTag(t.Contexts(), contextTag, "@") {
		return false
	}
	if projectTag != "" && !hasTag(t.Projects(), projectTag, "+") {
		return false
	}
	return true
}

// hasTag reports whether want is among tags. A bare word is prefixed
// before matching, so --context=home matches @home.
func hasTag(tags []string, want, prefix string) bool {
	if !strings.HasPrefix(want, prefix) {
		want = prefix + want
	}
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
