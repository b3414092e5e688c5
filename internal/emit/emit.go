// Package emit turns one batch's column map into region container files.
// Regions are write-once: a file already on disk or written earlier in the
// run is never reopened or merged, so columns for an already-materialized
// region are dropped. Per-region write failures are logged and the batch
// continues.
package emit

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mcarve/internal/anvil"
	"mcarve/internal/logging"
	"mcarve/internal/partition"
	"mcarve/internal/raster"
)

// Codec serializes one region document to a file.
type Codec interface {
	Write(region *anvil.Region, path string, floor int) error
}

type anvilCodec struct{}

func (anvilCodec) Write(region *anvil.Region, path string, floor int) error {
	return region.WriteFile(path, floor)
}

// NewCodec returns the Anvil region codec.
func NewCodec() Codec { return anvilCodec{} }

// SkipSet tracks region file names already materialized. It grows
// monotonically within a run.
type SkipSet struct {
	names map[string]struct{}
}

// NewSkipSet returns an empty skip-set.
func NewSkipSet() *SkipSet {
	return &SkipSet{names: make(map[string]struct{})}
}

// ScanExisting builds a skip-set from the region files already present in
// dir. A missing directory yields an empty set.
func ScanExisting(dir string) (*SkipSet, error) {
	set := NewSkipSet()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".mca") {
			set.Add(entry.Name())
		}
	}
	return set, nil
}

// Contains reports whether the region file name is already materialized.
func (s *SkipSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Add records a materialized region file name.
func (s *SkipSet) Add(name string) {
	s.names[name] = struct{}{}
}

// Len returns the number of tracked region files.
func (s *SkipSet) Len() int { return len(s.names) }

// Summary reports one batch's emission outcome.
type Summary struct {
	Written int
	Skipped int
	Failed  int
}

// Engine writes region files for batches of columns.
type Engine struct {
	codec     Codec
	outputDir string
	logger    *slog.Logger
}

// NewEngine creates an engine writing into outputDir. A nil logger disables
// logging.
func NewEngine(codec Codec, outputDir string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{codec: codec, outputDir: outputDir, logger: logger}
}

// Emit partitions the batch's columns into regions and writes every region
// not yet in the skip-set. Columns are filled from floor upward. Regions
// are visited in deterministic key order. A region that fails to write is
// left out of the skip-set so a later pass over the same batch can retry
// it.
func (e *Engine) Emit(columns map[raster.Coord]int, floor int, skip *SkipSet) Summary {
	grouped := make(map[partition.RegionKey][]columnEntry)
	for coord, elevation := range columns {
		key := partition.Decompose(coord.X, coord.Z)
		grouped[key.Region] = append(grouped[key.Region], columnEntry{key: key, elevation: elevation})
	}

	regions := make([]partition.RegionKey, 0, len(grouped))
	for key := range grouped {
		regions = append(regions, key)
	}
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].X != regions[j].X {
			return regions[i].X < regions[j].X
		}
		return regions[i].Z < regions[j].Z
	})

	var summary Summary
	for _, key := range regions {
		name := key.FileName()
		if skip.Contains(name) {
			summary.Skipped++
			continue
		}

		region := anvil.NewRegion(key.X, key.Z)
		for _, entry := range grouped[key] {
			region.SetColumn(entry.key.Chunk.X, entry.key.Chunk.Z, entry.key.Block.X, entry.key.Block.Z, entry.elevation)
		}

		path := filepath.Join(e.outputDir, name)
		if err := e.codec.Write(region, path, floor); err != nil {
			summary.Failed++
			e.logger.Warn("region write failed",
				logging.String(logging.FieldRegion, name),
				logging.Error(err))
			continue
		}
		skip.Add(name)
		summary.Written++
	}
	return summary
}

type columnEntry struct {
	key       partition.Key
	elevation int
}
