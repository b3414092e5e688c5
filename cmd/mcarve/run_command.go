package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mcarve/internal/checkpoint"
	"mcarve/internal/locale"
	"mcarve/internal/preflight"
	"mcarve/internal/project"
	"mcarve/internal/services"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run <project>",
		Short: "Run the pipeline for a project",
		Long: "Runs the project's configured stages from the beginning or from the\n" +
			"last saved checkpoint. Interrupting the run is safe; start it again\n" +
			"with `mcarve resume` to pick up where it left off.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := project.ValidateName(args[0])
			if err != nil {
				return err
			}
			return executeProject(cmd, ctx, name, false)
		},
	}
}

// executeProject loads the project's checkpoint, gates on preflight, and
// drives the pipeline to completion under the command's signal context.
func executeProject(cmd *cobra.Command, ctx *commandContext, name string, resuming bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	catalog := ctx.catalog()
	out := cmd.OutOrStdout()
	signalCtx := commandSignalContext(cmd)

	results := preflight.RunAll(signalCtx, cfg)
	if !preflight.AllPassed(results) {
		for _, result := range results {
			if !result.Passed {
				fmt.Fprintf(cmd.ErrOrStderr(), "preflight: %s: %s\n", result.Name, result.Detail)
			}
		}
		return services.Wrap(services.ErrConfiguration, "cli", "preflight", "environment checks failed", nil)
	}

	return ctx.withStore(func(store *checkpoint.Store) error {
		doc, err := store.Load(signalCtx, name)
		if err != nil {
			return err
		}
		if doc == nil {
			if resuming {
				return services.Wrap(services.ErrNotFound, "cli", "resume", fmt.Sprintf("no checkpoint for project %q", name), nil)
			}
			return services.Wrap(services.ErrNotFound, "cli", "run",
				fmt.Sprintf("project %q has no checkpoint, create it with `mcarve new %s`", name, name), nil)
		}

		if resuming {
			fmt.Fprintf(out, "%s: %s\n", catalog.Get(locale.KeyCheckpointFound), name)
			fmt.Fprintln(out, catalog.Get(locale.KeyResuming))
		}

		progress := newProgressRenderer(out)
		driver, err := ctx.buildDriver(store, doc, progress)
		if err != nil {
			return err
		}

		if err := driver.Run(signalCtx, doc); err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintf(out, "\nInterrupted. Checkpoint saved; resume with `mcarve resume %s`.\n", name)
			}
			return err
		}

		fmt.Fprintln(out, catalog.Get(locale.KeyAllDone))
		return nil
	})
}
