package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) priCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pri [task number] [priority]",
		Short: "Set a task's priority",
		Long: `Set the priority of a pending task to a letter from A (highest)
through Z (lowest).

Example:
  rocin pri 3 A`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			letter, err := parsePriorityLetter(args[1])
			if err != nil {
				return err
			}

			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}
			t, i, err := taskAt(list, args[0])
			if err != nil {
				return err
			}
			if t.Done() {
				return fmt.Errorf("task %d is done; reopen it before setting a priority", i+1)
			}

			t, err = list.Replace(i, lineWithPriority(t, letter))
			if err != nil {
				return err
			}
			if err := a.saveList(ctx, list); err != nil {
				return err
			}
			fmt.Printf("Prioritized task %d: %s\n", i+1, FormatTask(t))
			return nil
		},
	}
}

func (a *App) depriCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "depri [task numbers]",
		Short: "Remove task priorities",
		Example: `  rocin depri 3
  rocin depri 1 4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}

			changed := 0
			for _, arg := range args {
				t, i, err := taskAt(list, arg)
				if err != nil {
					return err
				}
				if _, ok := t.Priority(); !ok {
					fmt.Printf("Task %d has no priority.\n", i+1)
					continue
				}
				t, err = list.Replace(i, lineWithPriority(t, ""))
				if err != nil {
					return err
				}
				changed++
				fmt.Printf("Deprioritized task %d: %s\n", i+1, FormatTask(t))
			}
			if changed == 0 {
				return nil
			}
			return a.saveList(ctx, list)
		},
	}
}
