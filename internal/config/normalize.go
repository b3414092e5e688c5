package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizePipeline()
	c.normalizeGDAL()
	c.normalizeLogging()
	c.normalizeLocale()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ProjectsDir) == "" {
		c.Paths.ProjectsDir = defaultProjectsDir
	}
	if c.Paths.ProjectsDir, err = expandPath(c.Paths.ProjectsDir); err != nil {
		return fmt.Errorf("paths.projects_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizePipeline() {
	c.Pipeline.TargetCRS = strings.TrimSpace(c.Pipeline.TargetCRS)
	if c.Pipeline.TargetCRS == "" {
		c.Pipeline.TargetCRS = defaultTargetCRS
	}
	if c.Pipeline.BatchSize <= 0 {
		c.Pipeline.BatchSize = defaultBatchSize
	}
	if c.Pipeline.CheckpointSeconds <= 0 {
		c.Pipeline.CheckpointSeconds = defaultCheckpointSeconds
	}
	if c.Pipeline.FloorSampleTiles <= 0 {
		c.Pipeline.FloorSampleTiles = defaultFloorSampleTiles
	}
	if c.Pipeline.MinFreeGiB < 0 {
		c.Pipeline.MinFreeGiB = 0
	}
}

func (c *Config) normalizeGDAL() {
	c.GDAL.WarpBinary = strings.TrimSpace(c.GDAL.WarpBinary)
	if c.GDAL.WarpBinary == "" {
		c.GDAL.WarpBinary = defaultWarpBinary
	}
	c.GDAL.TranslateBinary = strings.TrimSpace(c.GDAL.TranslateBinary)
	if c.GDAL.TranslateBinary == "" {
		c.GDAL.TranslateBinary = defaultTranslateBinary
	}
	c.GDAL.InfoBinary = strings.TrimSpace(c.GDAL.InfoBinary)
	if c.GDAL.InfoBinary == "" {
		c.GDAL.InfoBinary = defaultInfoBinary
	}
	if c.GDAL.TimeoutSeconds <= 0 {
		c.GDAL.TimeoutSeconds = defaultGDALTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeLocale() {
	c.Locale.Language = strings.TrimSpace(c.Locale.Language)
	if c.Locale.Language == "" {
		c.Locale.Language = defaultLanguage
	}
}
