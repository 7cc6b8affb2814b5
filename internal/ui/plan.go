package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocin/internal/journal"
	"github.com/javiermolinar/rocin/internal/llm"
	"github.com/javiermolinar/rocin/internal/todotxt"
)

func (a *App) planCmd() *cobra.Command {
	var (
		modelFlag string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "plan [notes]",
		Short: "Draft tasks from natural language notes",
		Long: `Use an LLM to turn loose notes into todo.txt task lines.

The assistant reuses the @context and +project tags already in your
list and proposes one task per line, with priorities and dates where
the notes imply them.

Examples:
  rocin plan "call the farrier tomorrow, urgent: patch the barn roof"
  rocin plan "weekly errands: groceries, post office" --dry-run

Interactive mode:
  After the assistant proposes tasks, you can:
  - [a]ccept: Append the tasks to your list
  - [m]odify: Provide feedback to adjust the proposal
  - [c]ancel: Exit without saving`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			notes := strings.Join(args, " ")

			assistant, err := a.newAssistant(modelFlag)
			if err != nil {
				return err
			}

			ctx := context.Background()
			list, err := a.loadList(ctx)
			if err != nil {
				return err
			}

			req := llm.DraftRequest{
				Notes:    notes,
				Today:    time.Now(),
				Contexts: list.Contexts(),
				Projects: list.Projects(),
			}

			fmt.Println("Drafting tasks...")
			tasks, err := assistant.Draft(ctx, req)
			if err != nil {
				return fmt.Errorf("drafting: %w", err)
			}

			reader := bufio.NewReader(os.Stdin)
			for {
				displayDraft(tasks)

				if dryRun {
					fmt.Println("\n(Dry run - tasks not saved)")
					return nil
				}

				fmt.Print("\n[a]ccept / [m]odify / [c]ancel: ")
				choice, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				choice = strings.TrimSpace(strings.ToLower(choice))

				switch choice {
				case "a", "accept":
					for _, t := range tasks {
						list.AddTask(t)
					}
					if err := a.saveList(ctx, list); err != nil {
						return err
					}
					for _, t := range tasks {
						a.record(ctx, journal.EventAdded, t)
					}
					fmt.Printf("\nAdded %d tasks.\n", len(tasks))
					return nil

				case "m", "modify":
					fmt.Print("What would you like to change? ")
					feedback, err := reader.ReadString('\n')
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
					feedback = strings.TrimSpace(feedback)
					if feedback == "" {
						fmt.Println("No change provided, showing current draft...")
						continue
					}

					fmt.Println("\nRedrafting...")
					req.Notes += "\nAdjustment: " + feedback
					tasks, err = assistant.Draft(ctx, req)
					if err != nil {
						return fmt.Errorf("redrafting: %w", err)
					}

				case "c", "cancel":
					fmt.Println("Draft discarded.")
					return nil

				default:
					fmt.Println("Invalid choice. Please enter 'a', 'm', or 'c'.")
				}
			}
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "LLM model to use (from config if not set)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show drafted tasks without saving")

	return cmd
}

// newAssistant builds the LLM assistant from config, with an optional
// model override.
func (a *App) newAssistant(modelFlag string) (*llm.Assistant, error) {
	model := modelFlag
	if model == "" {
		model = a.config.LLM.Model
	}
	client, err := llm.NewClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("creating LLM client: %w", err)
	}
	return llm.NewAssistant(client), nil
}

// displayDraft shows the proposed tasks to the user.
func displayDraft(tasks []*todotxt.Task) {
	fmt.Println()
	if len(tasks) == 0 {
		fmt.Println("No tasks proposed.")
		return
	}
	fmt.Println("Proposed tasks:")
	fmt.Println(strings.Repeat("-", 60))
	for i, t := range tasks {
		fmt.Printf("  %d. %s\n", i+1, FormatTask(t))
	}
	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Total: %d tasks\n", len(tasks))
}
