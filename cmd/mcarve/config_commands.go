package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mcarve/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if ctx.configFlag != nil {
				path = strings.TrimSpace(*ctx.configFlag)
			}
			cfg, resolvedPath, exists, err := config.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", resolvedPath)
			if !exists {
				fmt.Fprintln(out, "Config file did not exist; defaults are in effect")
			}
			fmt.Fprintf(out, "  projects dir:       %s\n", cfg.Paths.ProjectsDir)
			fmt.Fprintf(out, "  log dir:            %s\n", cfg.Paths.LogDir)
			fmt.Fprintf(out, "  target CRS:         %s\n", cfg.Pipeline.TargetCRS)
			fmt.Fprintf(out, "  offsets:            %d, %d\n", cfg.Pipeline.OffsetX, cfg.Pipeline.OffsetY)
			fmt.Fprintf(out, "  batch size:         %d\n", cfg.Pipeline.BatchSize)
			fmt.Fprintf(out, "  nodata value:       %d\n", cfg.Pipeline.NodataValue)
			fmt.Fprintf(out, "  checkpoint seconds: %d\n", cfg.Pipeline.CheckpointSeconds)
			fmt.Fprintf(out, "  floor sample tiles: %d\n", cfg.Pipeline.FloorSampleTiles)
			fmt.Fprintf(out, "  gdalwarp:           %s\n", cfg.GDAL.WarpBinary)
			fmt.Fprintf(out, "  gdal_translate:     %s\n", cfg.GDAL.TranslateBinary)
			fmt.Fprintf(out, "  gdalinfo:           %s\n", cfg.GDAL.InfoBinary)
			fmt.Fprintf(out, "  log format/level:   %s/%s\n", cfg.Logging.Format, cfg.Logging.Level)
			fmt.Fprintf(out, "  language:           %s\n", cfg.Locale.Language)
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			}

			if err := config.WriteSample(target); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the paths and pipeline settings, then create a project with `mcarve new`.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	return cmd
}
