// Package reproject implements the first pipeline stage: warping every
// source tile into the project's target coordinate reference system.
//
// The stage is resumable two ways. The checkpoint cursor re-enters the tile
// list at the first position not known to be done, and a tile whose output
// file already exists is skipped without reprocessing even when the cursor
// selects it. A tile failure never aborts the stage; it is logged, the loop
// continues, and the cursor stops advancing at the first failure so a
// resumed run retries from there.
package reproject

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"mcarve/internal/checkpoint"
	"mcarve/internal/fileutil"
	"mcarve/internal/logging"
	"mcarve/internal/project"
	"mcarve/internal/services"
	"mcarve/internal/stage"
)

const tileExt = ".tif"

// Warper reprojects one raster file.
type Warper interface {
	Warp(ctx context.Context, src, dst, targetCRS string) error
}

// Progress reports stage advancement after each tile.
type Progress struct {
	Done  int
	Total int
	Tile  string
}

// Summary captures the outcome of one stage execution.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

// Option configures the handler.
type Option func(*Handler)

// WithProgress installs a per-tile progress callback.
func WithProgress(fn func(Progress)) Option {
	return func(h *Handler) { h.onProgress = fn }
}

// Handler runs the reprojection stage for one project.
type Handler struct {
	warper     Warper
	proj       project.Project
	saver      *checkpoint.TimedSaver
	logger     *slog.Logger
	onProgress func(Progress)

	lastSummary Summary
}

// New creates the stage handler. A nil logger disables logging.
func New(warper Warper, proj project.Project, saver *checkpoint.TimedSaver, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	h := &Handler{warper: warper, proj: proj, saver: saver, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Prepare verifies the stage has work to do without mutating any state.
func (h *Handler) Prepare(ctx context.Context, doc *checkpoint.Document) error {
	tiles, err := h.listInput()
	if err != nil {
		return err
	}
	if doc.ReprojectCursor > len(tiles) {
		return services.Wrap(services.ErrFatal, "reproject", "prepare",
			fmt.Sprintf("Checkpoint cursor %d exceeds the %d available tiles; the input set must not shrink between runs", doc.ReprojectCursor, len(tiles)), nil)
	}
	return h.proj.EnsureLayout()
}

// Execute runs the tile loop from the document's cursor.
func (h *Handler) Execute(ctx context.Context, doc *checkpoint.Document) error {
	tiles, err := h.listInput()
	if err != nil {
		return err
	}

	doc.Stage = checkpoint.StageReproject
	var summary Summary
	cursorBlocked := false

	for i := doc.ReprojectCursor; i < len(tiles); i++ {
		if err := ctx.Err(); err != nil {
			h.lastSummary = summary
			return err
		}

		src := tiles[i]
		dst := filepath.Join(h.proj.ProjectedDir(), filepath.Base(src))
		switch {
		case fileutil.Exists(dst):
			summary.Skipped++
		default:
			if err := h.warper.Warp(ctx, src, dst, doc.TargetCRS); err != nil {
				if ctx.Err() != nil {
					h.lastSummary = summary
					return ctx.Err()
				}
				summary.Failed++
				cursorBlocked = true
				h.logger.Warn("tile reprojection failed",
					logging.String(logging.FieldTile, filepath.Base(src)),
					logging.Error(err))
			} else {
				summary.Processed++
			}
		}

		// The cursor advances contiguously: it never passes the first
		// tile that is not done, so a resume retries exactly there.
		if !cursorBlocked {
			doc.ReprojectCursor = i + 1
		}
		if h.onProgress != nil {
			h.onProgress(Progress{Done: i + 1, Total: len(tiles), Tile: filepath.Base(src)})
		}
		if _, err := h.saver.MaybeSave(ctx, doc); err != nil {
			h.lastSummary = summary
			return err
		}
	}

	h.lastSummary = summary
	if summary.Failed > 0 {
		return services.Wrap(services.ErrTransient, "reproject", "stage",
			fmt.Sprintf("%d of %d tiles failed; resume the project to retry them", summary.Failed, len(tiles)), nil)
	}
	doc.ReprojectCursor = len(tiles)
	doc.ReprojectDone = true
	return nil
}

// HealthCheck verifies the stage's inputs are reachable.
func (h *Handler) HealthCheck(ctx context.Context) stage.Health {
	if h.warper == nil {
		return stage.Unhealthy("reproject", "no reprojection service configured")
	}
	if _, err := os.Stat(h.proj.InputDir()); err != nil {
		return stage.Unhealthy("reproject", fmt.Sprintf("input directory unavailable: %v", err))
	}
	return stage.Healthy("reproject")
}

// LastSummary returns the counters from the most recent Execute call.
func (h *Handler) LastSummary() Summary { return h.lastSummary }

func (h *Handler) listInput() ([]string, error) {
	tiles, err := fileutil.ListByExt(h.proj.InputDir(), tileExt)
	if err != nil {
		return nil, services.Wrap(services.ErrFatal, "reproject", "enumerate input",
			fmt.Sprintf("Cannot read input directory %s", h.proj.InputDir()), err)
	}
	if len(tiles) == 0 {
		return nil, services.Wrap(services.ErrValidation, "reproject", "enumerate input",
			fmt.Sprintf("No %s tiles found in %s", tileExt, h.proj.InputDir()), nil)
	}
	return tiles, nil
}
