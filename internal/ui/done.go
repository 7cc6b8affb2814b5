package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocin/internal/journal"
	"github.com/javiermolinar/rocin/internal/todotxt"
)

func (a *App) doCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "do [task numbers]",
		Aliases: []string{"done"},
		Short:   "Mark tasks as done",
		Long: `Mark one or more tasks as done.

Completion stamps the task with today's date and clears its priority.

Example:
  rocin do 3
  rocin do 1 4 7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}

			var completed []*todotxt.Task
			for _, arg := range args {
				t, i, err := taskAt(list, arg)
				if err != nil {
					return err
				}
				if t.Done() {
					fmt.Printf("Task %d is already done.\n", i+1)
					continue
				}
				t.Complete()
				completed = append(completed, t)
				fmt.Printf("Completed task %d: %s\n", i+1, FormatTask(t))
			}
			if len(completed) == 0 {
				return nil
			}

			if err := a.saveList(ctx, list); err != nil {
				return err
			}
			for _, t := range completed {
				a.record(ctx, journal.EventCompleted, t)
			}
			return nil
		},
	}
}

func (a *App) undoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo [task numbers]",
		Short: "Reopen completed tasks",
		Long: `Mark one or more completed tasks as pending again.

Reopening restores the priority and date the task carried before it
was completed.

Example:
  rocin undo 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}

			var reopened []*todotxt.Task
			for _, arg := range args {
				t, i, err := taskAt(list, arg)
				if err != nil {
					return err
				}
				if !t.Done() {
					fmt.Printf("Task %d is not done.\n", i+1)
					continue
				}
				t.Uncomplete()
				reopened = append(reopened, t)
				fmt.Printf("Reopened task %d: %s\n", i+1, FormatTask(t))
			}
			if len(reopened) == 0 {
				return nil
			}

			if err := a.saveList(ctx, list); err != nil {
				return err
			}
			for _, t := range reopened {
				a.record(ctx, journal.EventReopened, t)
			}
			return nil
		},
	}
}

func (a *App) toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [task numbers]",
		Short: "Toggle tasks between done and pending",
		Example: `  rocin toggle 3
  rocin toggle 1 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}

			// Remember each task's prior state so the journal records
			// what the toggle actually did.
			var toggled []*todotxt.Task
			var wasDone []bool
			for _, arg := range args {
				t, i, err := taskAt(list, arg)
				if err != nil {
					return err
				}
				wasDone = append(wasDone, t.Done())
				t.Toggle()
				toggled = append(toggled, t)
				if t.Done() {
					fmt.Printf("Completed task %d: %s\n", i+1, FormatTask(t))
				} else {
					fmt.Printf("Reopened task %d: %s\n", i+1, FormatTask(t))
				}
			}
			if len(toggled) == 0 {
				return nil
			}

			if err := a.saveList(ctx, list); err != nil {
				return err
			}
			for i, t := range toggled {
				if wasDone[i] {
					a.record(ctx, journal.EventReopened, t)
				} else {
					a.record(ctx, journal.EventCompleted, t)
				}
			}
			return nil
		},
	}
}
