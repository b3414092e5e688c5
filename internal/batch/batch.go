// Package batch accumulates deduplicated coordinate→elevation samples from
// fixed-size groups of reprojected tiles. Peak memory is bounded to one
// batch: results are handed to the emission engine and explicitly released
// before the next batch starts.
package batch

import (
	"context"
	"log/slog"

	"mcarve/internal/logging"
	"mcarve/internal/raster"
)

// TileStreamer provides the XYZ cell stream for one reprojected tile.
type TileStreamer interface {
	StreamXYZ(ctx context.Context, src string, onLine func(string)) error
}

// Result holds one collected batch.
type Result struct {
	// Columns maps each world column to its elevation. Duplicate keys
	// within the batch resolve last-write-wins, in tile order.
	Columns map[raster.Coord]int

	TilesRead   int
	TilesFailed int
	Samples     int
}

// Release drops the column map so the allocator can reclaim it before the
// next batch is collected.
func (r *Result) Release() {
	r.Columns = nil
}

// Aggregator collects batches of tiles into column maps.
type Aggregator struct {
	streamer TileStreamer
	opts     raster.Options
	logger   *slog.Logger
}

// New creates an aggregator. A nil logger disables logging.
func New(streamer TileStreamer, opts raster.Options, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Aggregator{streamer: streamer, opts: opts, logger: logger}
}

// Collect reads every tile in the batch and merges their samples. A failed
// tile contributes nothing and is logged; the batch proceeds. Only context
// cancellation aborts the whole collection.
func (a *Aggregator) Collect(ctx context.Context, tiles []string) (*Result, error) {
	result := &Result{Columns: make(map[raster.Coord]int)}
	for _, tile := range tiles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		err := a.streamTile(ctx, tile, func(s raster.Sample) {
			result.Columns[s.Coord] = s.Elevation
			result.Samples++
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			result.TilesFailed++
			a.logger.Warn("tile extraction failed",
				logging.String(logging.FieldTile, tile),
				logging.Error(err))
			continue
		}
		result.TilesRead++
	}
	return result, nil
}

// TileMin returns the minimum elevation across a tile's valid cells. ok is
// false when the tile holds no valid samples (all nodata).
func (a *Aggregator) TileMin(ctx context.Context, tile string) (min int, ok bool, err error) {
	err = a.streamTile(ctx, tile, func(s raster.Sample) {
		if !ok || s.Elevation < min {
			min = s.Elevation
			ok = true
		}
	})
	if err != nil {
		return 0, false, err
	}
	return min, ok, nil
}

// streamTile feeds each valid sample of one tile to fn. Samples are staged
// until the tile reads cleanly: a malformed line poisons the whole tile and
// nothing is forwarded, so a failed tile never leaves partial data in the
// batch map.
func (a *Aggregator) streamTile(ctx context.Context, tile string, fn func(raster.Sample)) error {
	staged := make([]raster.Sample, 0, 4096)
	var parseErr error
	err := a.streamer.StreamXYZ(ctx, tile, func(line string) {
		if parseErr != nil {
			return
		}
		sample, valid, err := raster.ParseLine(line, a.opts)
		if err != nil {
			parseErr = err
			return
		}
		if valid {
			staged = append(staged, sample)
		}
	})
	if err != nil {
		return err
	}
	if parseErr != nil {
		return parseErr
	}
	for _, s := range staged {
		fn(s)
	}
	return nil
}
