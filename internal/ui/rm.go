package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) rmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm [task number]",
		Aliases: []string{"del"},
		Short:   "Delete a task",
		Long: `Delete a task from the list.

Asks for confirmation unless --force is given. Deleting is permanent:
unlike archive, the task is not moved to the done file.

Example:
  rocin rm 3
  rocin rm 3 --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}
			t, i, err := taskAt(list, args[0])
			if err != nil {
				return err
			}

			if !force {
				if !promptYesNo(fmt.Sprintf("Delete task %d: %s?", i+1, t.Line())) {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if _, err := list.Remove(i); err != nil {
				return err
			}
			if err := a.saveList(ctx, list); err != nil {
				return err
			}
			fmt.Printf("Deleted task %d: %s\n", i+1, t.Line())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete without confirmation")

	return cmd
}
