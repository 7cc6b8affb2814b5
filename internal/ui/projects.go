package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) contextsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contexts",
		Short: "List context tags in use",
		Long: `List the distinct @context tags across the list, each with the
number of tasks carrying it.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			list, err := a.loadList(context.Background())
			if err != nil {
				return err
			}

			tags := list.Contexts()
			if len(tags) == 0 {
				fmt.Println("No contexts in use.")
				return nil
			}
			counts := list.ContextCounts()
			for _, tag := range tags {
				fmt.Printf("%s %s\n", formatTag(tag), formatMuted(fmt.Sprintf("(%d)", counts[tag])))
			}
			return nil
		},
	}
}

func (a *App) projectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "projects",
		Short: "List project tags in use",
		Long: `List the distinct +project tags across the list, each with the
number of tasks carrying it.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			list, err := a.loadList(context.Background())
			if err != nil {
				return err
			}

			tags := list.Projects()
			if len(tags) == 0 {
				fmt.Println("No projects in use.")
				return nil
			}
			counts := list.ProjectCounts()
			for _, tag := range tags {
				fmt.Printf("%s %s\n", formatTag(tag), formatMuted(fmt.Sprintf("(%d)", counts[tag])))
			}
			return nil
		},
	}
}
