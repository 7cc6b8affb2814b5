package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/rocin/internal/config"
	"github.com/javiermolinar/rocin/internal/journal"
	"github.com/javiermolinar/rocin/internal/todotxt"
	"github.com/javiermolinar/rocin/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo    todotxt.Repository
	journal *journal.Journal // nil when the journal database is unavailable
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool
}

// NewApp creates a new CLI application with the given repository,
// journal, and config. The journal may be nil.
func NewApp(repo todotxt.Repository, jrnl *journal.Journal, cfg *config.Config) *App {
	a := &App{repo: repo, journal: jrnl, config: cfg}

	a.root = &cobra.Command{
		Use:   "rocin",
		Short: "A todo.txt task manager",
		Long: `Rocin keeps your tasks in a plain todo.txt file.

Run it without arguments to open the interactive task browser, or use
the subcommands to add, list, complete, and prioritize tasks from the
shell and from scripts.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.repo, a.journal, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.doCmd())
	a.root.AddCommand(a.undoCmd())
	a.root.AddCommand(a.toggleCmd())
	a.root.AddCommand(a.priCmd())
	a.root.AddCommand(a.depriCmd())
	a.root.AddCommand(a.rmCmd())
	a.root.AddCommand(a.archiveCmd())
	a.root.AddCommand(a.contextsCmd())
	a.root.AddCommand(a.projectsCmd())
	a.root.AddCommand(a.statsCmd())
	a.root.AddCommand(a.planCmd())
	a.root.AddCommand(a.triageCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("rocin %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
