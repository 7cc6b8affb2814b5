package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocin/internal/dateutil"
	"github.com/javiermolinar/rocin/internal/journal"
)

const topTagLimit = 5

func (a *App) statsCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Long: `Show counts for the active list and, when the journal database is
available, activity over the recent past: completions per day, the
current streak, and the busiest contexts and projects.`,
		Example: `  rocin stats
  rocin stats --days=7`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if days < 1 {
				return fmt.Errorf("invalid --days %d: must be at least 1", days)
			}

			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}

			pending := len(list.Pending())
			done := len(list.Completed())
			overdue := 0
			for _, t := range list.Pending() {
				if isOverdue(t) {
					overdue++
				}
			}

			fmt.Println(formatHeader("Task list"))
			fmt.Printf("  Pending: %d  |  Done: %d  |  Total: %d\n", pending, done, list.Len())
			if list.Len() > 0 {
				fmt.Printf("  %s\n", ProgressBar(done, list.Len(), 30))
			}
			if overdue > 0 {
				fmt.Printf("  %s\n", formatOverdue(fmt.Sprintf("Overdue: %d", overdue)))
			}

			if a.journal == nil {
				return nil
			}
			return a.printJournalStats(ctx, days)
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Journal window in days")

	return cmd
}

// printJournalStats prints activity aggregates for the last N days.
func (a *App) printJournalStats(ctx context.Context, days int) error {
	now := time.Now()
	since := dateutil.TruncateToDay(now).AddDate(0, 0, -(days - 1))

	totals, err := a.journal.Totals(ctx, since)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}
	streak, err := a.journal.Streak(ctx, now)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}

	fmt.Printf("\n%s\n", formatHeader(fmt.Sprintf("Last %d days", days)))
	fmt.Printf("  Added: %d  |  Completed: %d  |  Reopened: %d\n",
		totals.Added, totals.Completed, totals.Reopened)
	fmt.Printf("  Streak: %s\n", formatStats(fmt.Sprintf("%d days", streak)))

	byDay, err := a.journal.CompletionsByDay(ctx, since)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}
	if len(byDay) > 0 {
		barWidth := termWidth() - 20
		if barWidth > 40 {
			barWidth = 40
		}
		if barWidth < 10 {
			barWidth = 10
		}
		max := 0
		for _, d := range byDay {
			if d.Count > max {
				max = d.Count
			}
		}
		fmt.Printf("\n%s\n", formatHeader("Completions by day"))
		for _, d := range byDay {
			fmt.Printf("  %s  %s %d\n",
				d.Day.Format("Jan 02"),
				formatStats(HistogramBar(d.Count, max, barWidth)),
				d.Count)
		}
	}

	if err := a.printTopTags(ctx, "Top contexts", since, a.journal.TopContexts); err != nil {
		return err
	}
	return a.printTopTags(ctx, "Top projects", since, a.journal.TopProjects)
}

func (a *App) printTopTags(ctx context.Context, header string, since time.Time,
	top func(context.Context, time.Time, int) ([]journal.TagCount, error)) error {
	tags, err := top(ctx, since, topTagLimit)
	if err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}
	if len(tags) == 0 {
		return nil
	}
	fmt.Printf("\n%s\n", formatHeader(header))
	for _, tc := range tags {
		fmt.Printf("  %s %s\n", formatTag(tc.Tag), formatMuted(fmt.Sprintf("(%d)", tc.Count)))
	}
	return nil
}
