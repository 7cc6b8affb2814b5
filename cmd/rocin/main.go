package main

import (
	"fmt"
	"os"

	"github.com/javiermolinar/rocin/internal/config"
	"github.com/javiermolinar/rocin/internal/journal"
	"github.com/javiermolinar/rocin/internal/store"
	"github.com/javiermolinar/rocin/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	repo := store.New(cfg.Files.Todo, cfg.Files.Done)

	// The journal only feeds stats, so a broken database should not
	// keep the task list from opening.
	jrnl, err := journal.New(cfg.Storage.JournalPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: journal unavailable: %v\n", err)
		jrnl = nil
	}
	if jrnl != nil {
		defer func() { _ = jrnl.Close() }()
	}

	app := ui.NewApp(repo, jrnl, cfg)
	return app.Execute()
}
