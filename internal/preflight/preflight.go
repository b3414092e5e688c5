// Package preflight verifies the environment before a pipeline run:
// directory permissions, free disk space, and the GDAL tool binaries.
package preflight

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"mcarve/internal/config"
	"mcarve/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every applicable preflight check for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Projects directory", cfg.Paths.ProjectsDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}
	if cfg.Pipeline.MinFreeGiB > 0 {
		results = append(results, CheckDiskSpace("Projects disk space", cfg.Paths.ProjectsDir, cfg.Pipeline.MinFreeGiB))
	}
	for _, status := range CheckSystemDeps(ctx, cfg) {
		// Missing optional tools never fail preflight.
		result := Result{
			Name:   status.Name,
			Passed: status.Available || status.Optional,
			Detail: status.Detail,
		}
		if status.Available {
			result.Detail = fmt.Sprintf("%s found", status.Command)
		}
		results = append(results, result)
	}
	return results
}

// AllPassed reports whether every check succeeded.
func AllPassed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// CheckDirectoryAccess verifies that the directory exists and is
// readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckDiskSpace verifies that the filesystem holding path has at least
// minFreeGiB of space available to unprivileged writes.
func CheckDiskSpace(name, path string, minFreeGiB int) Result {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: statfs: %v)", path, err)}
	}
	freeGiB := float64(stat.Bavail) * float64(stat.Bsize) / (1 << 30)
	if freeGiB < float64(minFreeGiB) {
		return Result{Name: name, Detail: fmt.Sprintf("%.1f GiB free, need %d GiB", freeGiB, minFreeGiB)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%.1f GiB free", freeGiB)}
}

// CheckSystemDeps evaluates the external tool binaries the pipeline needs.
func CheckSystemDeps(ctx context.Context, cfg *config.Config) []deps.Status {
	requirements := []deps.Requirement{
		{
			Name:        "gdalwarp",
			Command:     cfg.GDAL.WarpBinary,
			Description: "Required for raster reprojection",
		},
		{
			Name:        "gdal_translate",
			Command:     cfg.GDAL.TranslateBinary,
			Description: "Required for raster cell extraction",
		},
		{
			Name:        "gdalinfo",
			Command:     cfg.GDAL.InfoBinary,
			Description: "Used for raster metadata reports",
			Optional:    true,
		},
	}
	return deps.CheckBinaries(requirements)
}
