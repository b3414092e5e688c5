package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcarve/internal/checkpoint"
	"mcarve/internal/project"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	var (
		mode      string
		crs       string
		offsetX   int
		offsetY   int
		batchSize int
		dsm       bool
	)

	cmd := &cobra.Command{
		Use:   "new <project>",
		Short: "Create a project and its checkpoint",
		Long: "Creates the project directory layout and records the run parameters\n" +
			"in a fresh checkpoint. Copy source .tif tiles into the project's input\n" +
			"directory, then start the pipeline with `mcarve run`.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			name, err := project.ValidateName(args[0])
			if err != nil {
				return err
			}
			parsedMode, err := checkpoint.ParseMode(mode)
			if err != nil {
				return err
			}

			proj := project.New(cfg.Paths.ProjectsDir, name)
			if err := proj.Create(); err != nil {
				return err
			}

			doc := &checkpoint.Document{
				Project:   name,
				Mode:      parsedMode,
				DataKind:  checkpoint.KindDEM,
				TargetCRS: crs,
				OffsetX:   offsetX,
				OffsetY:   offsetY,
				BatchSize: batchSize,
			}
			if dsm {
				doc.DataKind = checkpoint.KindDSM
			}
			if err := doc.Validate(); err != nil {
				return err
			}

			if err := ctx.withStore(func(store *checkpoint.Store) error {
				return store.Save(cmd.Context(), doc)
			}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Project %s created.\n\n", name)
			fmt.Fprintf(out, "  input:     %s\n", proj.InputDir())
			fmt.Fprintf(out, "  projected: %s\n", proj.ProjectedDir())
			fmt.Fprintf(out, "  regions:   %s\n\n", proj.RegionsDir())
			fmt.Fprintf(out, "Copy your .tif tiles into the input directory, then run:\n\n  mcarve run %s\n", name)
			return nil
		},
	}

	defaults := func() {
		cfg, err := ctx.ensureConfig()
		if err != nil {
			return
		}
		if !cmd.Flags().Changed("crs") {
			crs = cfg.Pipeline.TargetCRS
		}
		if !cmd.Flags().Changed("offset-x") {
			offsetX = cfg.Pipeline.OffsetX
		}
		if !cmd.Flags().Changed("offset-y") {
			offsetY = cfg.Pipeline.OffsetY
		}
		if !cmd.Flags().Changed("batch-size") {
			batchSize = cfg.Pipeline.BatchSize
		}
	}
	cmd.PreRun = func(*cobra.Command, []string) { defaults() }

	cmd.Flags().StringVar(&mode, "mode", "all", "Stages to run: reproject, generate, or all")
	cmd.Flags().StringVar(&crs, "crs", "", "Target coordinate reference system (default from config)")
	cmd.Flags().IntVar(&offsetX, "offset-x", 0, "Horizontal coordinate offset (default from config)")
	cmd.Flags().IntVar(&offsetY, "offset-y", 0, "Vertical coordinate offset (default from config)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Tiles per generation batch (default from config)")
	cmd.Flags().BoolVar(&dsm, "dsm", false, "Treat input as a surface model (terrain plus buildings and vegetation)")

	return cmd
}
