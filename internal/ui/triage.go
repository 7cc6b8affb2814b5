package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocin/internal/llm"
	"github.com/javiermolinar/rocin/internal/todotxt"
)

func (a *App) triageCmd() *cobra.Command {
	var (
		modelFlag string
		apply     bool
	)

	cmd := &cobra.Command{
		Use:   "triage",
		Short: "Ask an LLM to suggest task priorities",
		Long: `Send the pending tasks to an LLM and print suggested priorities.

Each suggestion names a task, a priority letter, and a short reason.
Tasks whose current priority already fits are left alone. With
--apply, the suggested priorities are written back to the list.

Examples:
  rocin triage
  rocin triage --apply`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			assistant, err := a.newAssistant(modelFlag)
			if err != nil {
				return err
			}

			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}

			// Submit pending tasks only, remembering their positions in
			// the full list so suggestions can be applied back.
			var pending []*todotxt.Task
			var positions []int
			for i, t := range list.All() {
				if t.Done() {
					continue
				}
				pending = append(pending, t)
				positions = append(positions, i)
			}
			if len(pending) == 0 {
				fmt.Println("No pending tasks to triage.")
				return nil
			}

			fmt.Println("Reviewing tasks...")
			suggestions, err := assistant.Prioritize(ctx, llm.PrioritizeRequest{
				Tasks: pending,
				Today: time.Now(),
			})
			if err != nil {
				return fmt.Errorf("triaging: %w", err)
			}
			if len(suggestions) == 0 {
				fmt.Println("No changes suggested.")
				return nil
			}

			fmt.Println()
			for _, s := range suggestions {
				t := pending[s.Index-1]
				fmt.Printf("  %s %s\n", formatMuted(fmt.Sprintf("%3d", positions[s.Index-1]+1)), FormatTask(t))
				fmt.Printf("      %s %s\n", formatHeader("→ ("+s.Priority+")"), formatMuted(s.Reason))
			}

			if !apply {
				fmt.Println("\nRun again with --apply to set these priorities.")
				return nil
			}

			for _, s := range suggestions {
				i := positions[s.Index-1]
				if _, err := list.Replace(i, lineWithPriority(pending[s.Index-1], s.Priority)); err != nil {
					return err
				}
			}
			if err := a.saveList(ctx, list); err != nil {
				return err
			}
			fmt.Printf("\nApplied %d suggestions.\n", len(suggestions))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (from config if not set)")
	cmd.Flags().BoolVar(&apply, "apply", false, "Apply suggested priorities to the list")

	return cmd
}
