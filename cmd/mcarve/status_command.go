package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mcarve/internal/checkpoint"
	"mcarve/internal/fileutil"
	"mcarve/internal/locale"
	"mcarve/internal/preflight"
	"mcarve/internal/project"
	"mcarve/internal/services"
	"mcarve/internal/workflow"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <project>",
		Short: "Show a project's checkpoint, artifacts, and environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			name, err := project.ValidateName(args[0])
			if err != nil {
				return err
			}
			catalog := ctx.catalog()
			out := cmd.OutOrStdout()

			proj := project.New(cfg.Paths.ProjectsDir, name)
			if !proj.Exists() {
				return services.Wrap(services.ErrNotFound, "cli", "status", fmt.Sprintf("project %q does not exist", name), nil)
			}

			var doc *checkpoint.Document
			if err := ctx.withStore(func(store *checkpoint.Store) error {
				loaded, err := store.Load(cmd.Context(), name)
				doc = loaded
				return err
			}); err != nil {
				return err
			}

			fmt.Fprintf(out, "Project %s\n\n", name)
			fmt.Fprintf(out, "  state: %s\n", workflow.StateOf(doc))
			if doc != nil {
				fmt.Fprintf(out, "  mode: %s, data: %s, CRS: %s\n", doc.Mode, dataKindLabel(catalog, doc.DataKind), doc.TargetCRS)
				fmt.Fprintf(out, "  %s: cursor %d\n", catalog.Get(locale.KeyStageReproject), doc.ReprojectCursor)
				fmt.Fprintf(out, "  %s: batch %d, %d regions written\n", catalog.Get(locale.KeyStageGenerate), doc.GenerateCursor, doc.RegionCount)
				if doc.HasFloor() {
					fmt.Fprintf(out, "  elevation floor: %d\n", *doc.Floor)
				}
				fmt.Fprintf(out, "  updated: %s\n", humanize.Time(doc.UpdatedAt))
			}
			fmt.Fprintln(out)

			printArtifactLine(out, "input tiles", proj.InputDir(), ".tif")
			printArtifactLine(out, "projected tiles", proj.ProjectedDir(), ".tif")
			printArtifactLine(out, "region files", proj.RegionsDir(), ".mca")
			fmt.Fprintln(out)

			for _, result := range preflight.RunAll(cmd.Context(), cfg) {
				marker := color.GreenString("ok")
				if !result.Passed {
					marker = color.RedString("fail")
				}
				fmt.Fprintf(out, "  [%s] %s: %s\n", marker, result.Name, result.Detail)
			}
			return nil
		},
	}
}

func printArtifactLine(out io.Writer, label, dir, ext string) {
	files, err := fileutil.ListByExt(dir, ext)
	if err != nil {
		fmt.Fprintf(out, "  %s: unreadable (%v)\n", label, err)
		return
	}
	size := fileutil.DirSize(dir, ext)
	fmt.Fprintf(out, "  %s: %d (%s)\n", label, len(files), humanize.IBytes(uint64(size)))
}
