package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"mcarve/internal/checkpoint"
	"mcarve/internal/locale"
	"mcarve/internal/project"
	"mcarve/internal/workflow"
)

func newResumeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "resume [project]",
		Short: "Resume an interrupted run from its checkpoint",
		Long: "Resumes the named project from its last saved checkpoint. With no\n" +
			"argument, lists the projects that have a checkpoint to resume.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return listResumable(cmd, ctx)
			}
			name, err := project.ValidateName(args[0])
			if err != nil {
				return err
			}
			return executeProject(cmd, ctx, name, true)
		},
	}
}

func listResumable(cmd *cobra.Command, ctx *commandContext) error {
	catalog := ctx.catalog()
	return ctx.withStore(func(store *checkpoint.Store) error {
		docs, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), catalog.Get(locale.KeyNoProjects))
			return nil
		}
		sort.Slice(docs, func(i, j int) bool { return docs[i].Project < docs[j].Project })
		for _, doc := range docs {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s (%s)\n", doc.Project, workflow.StateOf(doc))
		}
		return nil
	})
}
