package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Move completed tasks to the done file",
		Long: `Move every completed task from the active list into the done file.

Archived lines are appended to the done file before the active list
is rewritten, so an interrupted run may duplicate a task in the
archive but never loses one.

Example:
  rocin archive`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}

			done := list.Archive()
			if len(done) == 0 {
				fmt.Println("No completed tasks to archive.")
				return nil
			}

			if err := a.repo.AppendArchive(ctx, done); err != nil {
				return fmt.Errorf("archiving tasks: %w", err)
			}
			if err := a.saveList(ctx, list); err != nil {
				return err
			}

			fmt.Printf("Archived %d tasks.\n", len(done))
			return nil
		},
	}
}
