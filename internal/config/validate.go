package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	if err := c.validateGDAL(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.ProjectsDir) == "" {
		return errors.New("paths.projects_dir must be set")
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.BatchSize <= 0 {
		return errors.New("pipeline.batch_size must be positive")
	}
	if c.Pipeline.CheckpointSeconds <= 0 {
		return errors.New("pipeline.checkpoint_seconds must be positive")
	}
	if c.Pipeline.FloorSampleTiles <= 0 {
		return errors.New("pipeline.floor_sample_tiles must be positive")
	}
	if !strings.Contains(c.Pipeline.TargetCRS, ":") {
		return fmt.Errorf("pipeline.target_crs %q must be an authority:code identifier (e.g. EPSG:6677)", c.Pipeline.TargetCRS)
	}
	return nil
}

func (c *Config) validateGDAL() error {
	if strings.TrimSpace(c.GDAL.WarpBinary) == "" {
		return errors.New("gdal.warp_binary must be set")
	}
	if strings.TrimSpace(c.GDAL.TranslateBinary) == "" {
		return errors.New("gdal.translate_binary must be set")
	}
	return nil
}
