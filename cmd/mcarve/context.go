package main

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"mcarve/internal/batch"
	"mcarve/internal/checkpoint"
	"mcarve/internal/config"
	"mcarve/internal/emit"
	"mcarve/internal/locale"
	"mcarve/internal/logging"
	"mcarve/internal/project"
	"mcarve/internal/raster"
	"mcarve/internal/services/gdal"
	"mcarve/internal/stages/generate"
	"mcarve/internal/stages/reproject"
	"mcarve/internal/workflow"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) catalog() locale.Catalog {
	cfg, err := c.ensureConfig()
	if err != nil {
		return locale.Match("")
	}
	return locale.Match(cfg.Locale.Language)
}

// withStore opens the checkpoint store for the duration of fn.
func (c *commandContext) withStore(fn func(*checkpoint.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := checkpoint.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// buildDriver wires the full pipeline for one project: the GDAL client
// serves both stages, the aggregator and emission engine serve generation.
func (c *commandContext) buildDriver(store *checkpoint.Store, doc *checkpoint.Document, progress *progressRenderer) (*workflow.Driver, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	client, err := gdal.New(cfg.GDAL.WarpBinary, cfg.GDAL.TranslateBinary, cfg.GDAL.InfoBinary, cfg.GDAL.TimeoutSeconds)
	if err != nil {
		return nil, err
	}

	proj := project.New(cfg.Paths.ProjectsDir, doc.Project)
	saver := checkpoint.NewTimedSaver(store, time.Duration(cfg.Pipeline.CheckpointSeconds)*time.Second)
	opts := raster.Options{OffsetX: doc.OffsetX, OffsetY: doc.OffsetY, Nodata: cfg.Pipeline.NodataValue}

	agg := batch.New(client, opts, logging.NewComponentLogger(logger, "batch"))
	engine := emit.NewEngine(emit.NewCodec(), proj.RegionsDir(), logging.NewComponentLogger(logger, "emit"))

	reprojectHandler := reproject.New(client, proj, saver,
		logging.NewComponentLogger(logger, "reproject"),
		reproject.WithProgress(progress.reprojectCallback(c.catalog())))
	generateHandler := generate.New(agg, engine, proj, saver, cfg.Pipeline.FloorSampleTiles,
		logging.NewComponentLogger(logger, "generate"),
		generate.WithProgress(progress.generateCallback(c.catalog())))

	return workflow.New(store, saver, reprojectHandler, generateHandler, logging.NewComponentLogger(logger, "workflow")), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func commandSignalContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
