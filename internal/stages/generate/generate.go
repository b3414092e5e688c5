// Package generate implements the second pipeline stage: collecting
// reprojected tiles into fixed-size batches and emitting region container
// files for each batch.
//
// The elevation floor is estimated once per project over a bounded prefix
// of the tile list and frozen in the checkpoint before the first batch;
// resumed runs load it rather than recompute, keeping the vertical fill
// bound identical across batches emitted before and after an interruption.
// The batch cursor advances even when individual tiles or regions inside a
// batch fail: tile failures contribute nothing and region failures stay out
// of the skip-set, both logged.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"mcarve/internal/batch"
	"mcarve/internal/checkpoint"
	"mcarve/internal/emit"
	"mcarve/internal/fileutil"
	"mcarve/internal/logging"
	"mcarve/internal/project"
	"mcarve/internal/services"
	"mcarve/internal/stage"
)

const tileExt = ".tif"

// Progress reports stage advancement after each batch.
type Progress struct {
	DoneBatches  int
	TotalBatches int
}

// Summary captures the outcome of one stage execution.
type Summary struct {
	Batches        int
	RegionsWritten int
	RegionsSkipped int
	RegionsFailed  int
	TilesFailed    int
}

// Option configures the handler.
type Option func(*Handler)

// WithProgress installs a per-batch progress callback.
func WithProgress(fn func(Progress)) Option {
	return func(h *Handler) { h.onProgress = fn }
}

// Handler runs the generation stage for one project.
type Handler struct {
	agg              *batch.Aggregator
	engine           *emit.Engine
	proj             project.Project
	saver            *checkpoint.TimedSaver
	floorSampleTiles int
	logger           *slog.Logger
	onProgress       func(Progress)

	lastSummary Summary
}

// New creates the stage handler. A nil logger disables logging.
func New(agg *batch.Aggregator, engine *emit.Engine, proj project.Project, saver *checkpoint.TimedSaver, floorSampleTiles int, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	h := &Handler{
		agg:              agg,
		engine:           engine,
		proj:             proj,
		saver:            saver,
		floorSampleTiles: floorSampleTiles,
		logger:           logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Prepare verifies the stage has work to do without mutating any state.
func (h *Handler) Prepare(ctx context.Context, doc *checkpoint.Document) error {
	tiles, err := h.listProjected()
	if err != nil {
		return err
	}
	if total := totalBatches(len(tiles), doc.BatchSize); doc.GenerateCursor > total {
		return services.Wrap(services.ErrFatal, "generate", "prepare",
			fmt.Sprintf("Checkpoint batch cursor %d exceeds the %d available batches; the input set must not shrink between runs", doc.GenerateCursor, total), nil)
	}
	return h.proj.EnsureLayout()
}

// Execute runs the batch loop from the document's cursor.
func (h *Handler) Execute(ctx context.Context, doc *checkpoint.Document) error {
	tiles, err := h.listProjected()
	if err != nil {
		return err
	}

	doc.Stage = checkpoint.StageGenerate

	if !doc.HasFloor() {
		floor, err := h.estimateFloor(ctx, tiles)
		if err != nil {
			return err
		}
		doc.SetFloor(floor)
		// Persist immediately: the floor must survive any later crash so
		// batches emitted before and after a resume share one fill bound.
		if err := h.saver.Flush(ctx, doc); err != nil {
			return err
		}
		h.logger.Info("elevation floor frozen", logging.Int("floor", floor))
	}

	skip, err := emit.ScanExisting(h.proj.RegionsDir())
	if err != nil {
		return services.Wrap(services.ErrFatal, "generate", "scan regions",
			fmt.Sprintf("Cannot scan output directory %s", h.proj.RegionsDir()), err)
	}
	h.logger.Info("scanned existing regions", logging.Int("count", skip.Len()))

	total := totalBatches(len(tiles), doc.BatchSize)
	var summary Summary
	for b := doc.GenerateCursor; b < total; b++ {
		if err := ctx.Err(); err != nil {
			h.lastSummary = summary
			return err
		}

		start := b * doc.BatchSize
		end := start + doc.BatchSize
		if end > len(tiles) {
			end = len(tiles)
		}

		batchCtx := services.WithBatch(ctx, b)
		result, err := h.agg.Collect(batchCtx, tiles[start:end])
		if err != nil {
			h.lastSummary = summary
			return err
		}
		emitted := h.engine.Emit(result.Columns, *doc.Floor, skip)
		result.Release()

		logging.WithContext(batchCtx, h.logger).Info("batch emitted",
			logging.Int("written", emitted.Written),
			logging.Int("skipped", emitted.Skipped),
			logging.Int("failed", emitted.Failed),
			logging.Int("tiles_failed", result.TilesFailed))

		summary.Batches++
		summary.RegionsWritten += emitted.Written
		summary.RegionsSkipped += emitted.Skipped
		summary.RegionsFailed += emitted.Failed
		summary.TilesFailed += result.TilesFailed
		doc.RegionCount += emitted.Written
		doc.GenerateCursor = b + 1

		if h.onProgress != nil {
			h.onProgress(Progress{DoneBatches: b + 1, TotalBatches: total})
		}
		if _, err := h.saver.MaybeSave(ctx, doc); err != nil {
			h.lastSummary = summary
			return err
		}
	}

	h.lastSummary = summary
	doc.GenerateDone = true
	return nil
}

// HealthCheck verifies the stage's inputs are reachable.
func (h *Handler) HealthCheck(ctx context.Context) stage.Health {
	if h.agg == nil || h.engine == nil {
		return stage.Unhealthy("generate", "aggregator or emission engine not configured")
	}
	if _, err := os.Stat(h.proj.ProjectedDir()); err != nil {
		return stage.Unhealthy("generate", fmt.Sprintf("projected directory unavailable: %v", err))
	}
	return stage.Healthy("generate")
}

// LastSummary returns the counters from the most recent Execute call.
func (h *Handler) LastSummary() Summary { return h.lastSummary }

// estimateFloor takes the minimum elevation over a bounded prefix of the
// tile list. The accumulator starts at zero and only moves down, so a
// dataset entirely above sea level gets floor zero. Sampled tiles that fail
// to read contribute nothing.
func (h *Handler) estimateFloor(ctx context.Context, tiles []string) (int, error) {
	sample := len(tiles)
	if h.floorSampleTiles > 0 && sample > h.floorSampleTiles {
		sample = h.floorSampleTiles
	}

	floor := 0
	for _, tile := range tiles[:sample] {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		min, ok, err := h.agg.TileMin(ctx, tile)
		if err != nil {
			if ctx.Err() != nil {
				return 0, ctx.Err()
			}
			h.logger.Warn("floor sample tile failed",
				logging.String(logging.FieldTile, tile),
				logging.Error(err))
			continue
		}
		if ok && min < floor {
			floor = min
		}
	}
	return floor, nil
}

func (h *Handler) listProjected() ([]string, error) {
	tiles, err := fileutil.ListByExt(h.proj.ProjectedDir(), tileExt)
	if err != nil {
		return nil, services.Wrap(services.ErrFatal, "generate", "enumerate input",
			fmt.Sprintf("Cannot read projected directory %s", h.proj.ProjectedDir()), err)
	}
	if len(tiles) == 0 {
		return nil, services.Wrap(services.ErrValidation, "generate", "enumerate input",
			fmt.Sprintf("No %s tiles found in %s", tileExt, h.proj.ProjectedDir()), nil)
	}
	return tiles, nil
}

func totalBatches(tiles, batchSize int) int {
	if batchSize <= 0 {
		return 0
	}
	return (tiles + batchSize - 1) / batchSize
}
