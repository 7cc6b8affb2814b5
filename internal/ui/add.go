package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocin/internal/dateutil"
	"github.com/javiermolinar/rocin/internal/journal"
)

func (a *App) addCmd() *cobra.Command {
	var (
		priority string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a new task",
		Long: `Add a new task to the list.

The text may carry @context and +project tags. Priority and date can
be written inline in todo.txt form or given through flags. The --date
flag accepts relative forms like "today", "tomorrow", or "friday".

Example:
  rocin add "Mend the lance @workshop +armor"
  rocin add "File the tax return +finances" --pri=A --date=tomorrow`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			line := strings.Join(args, " ")

			if date != "" {
				day, err := dateutil.ParseRelativeDate(date, time.Now())
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				line = day.Format("2006-01-02") + " " + line
			}
			if priority != "" {
				letter, err := parsePriorityLetter(priority)
				if err != nil {
					return err
				}
				line = "(" + letter + ") " + line
			}

			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}
			t := list.Add(line)
			if err := a.saveList(ctx, list); err != nil {
				return err
			}
			a.record(ctx, journal.EventAdded, t)

			fmt.Printf("Added task %d: %s\n", list.Len(), FormatTask(t))
			return nil
		},
	}

	cmd.Flags().StringVar(&priority, "pri", "", "Priority letter A-Z")
	cmd.Flags().StringVar(&date, "date", "", "Task date (YYYY-MM-DD or relative)")

	return cmd
}
