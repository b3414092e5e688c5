// Package raster turns XYZ text emitted by gdal_translate into integer
// world samples. Each line is an "east north value" triple at the cell
// center; offsets and the north/depth sign flip are applied on the floating
// point values before truncation toward zero.
package raster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coord is an integer world position on the horizontal plane.
type Coord struct {
	X, Z int
}

// Sample is one valid raster cell after coordinate correction.
type Sample struct {
	Coord     Coord
	Elevation int
}

// Options carries the per-project correction parameters.
type Options struct {
	// OffsetX and OffsetY re-base the projected coordinates near the
	// world origin.
	OffsetX int
	OffsetY int
	// Nodata is the sentinel elevation marking cells without data,
	// compared after truncation.
	Nodata int
}

// ParseLine converts one XYZ line into a sample. ok is false for nodata
// cells; a malformed line returns an error so callers can count the tile as
// failed rather than silently dropping cells.
func ParseLine(line string, opts Options) (Sample, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Sample{}, false, fmt.Errorf("raster: malformed XYZ line %q", line)
	}
	east, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Sample{}, false, fmt.Errorf("raster: bad easting %q: %w", fields[0], err)
	}
	north, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Sample{}, false, fmt.Errorf("raster: bad northing %q: %w", fields[1], err)
	}
	value, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Sample{}, false, fmt.Errorf("raster: bad elevation %q: %w", fields[2], err)
	}

	elevation := int(math.Trunc(value))
	if elevation == opts.Nodata {
		return Sample{}, false, nil
	}

	// The raster's northing axis increases opposite to the world's depth
	// axis, so z is negated after the offset is subtracted. Truncation
	// happens last, on the corrected values.
	x := int(math.Trunc(east - float64(opts.OffsetX)))
	z := int(math.Trunc(-(north - float64(opts.OffsetY))))
	return Sample{Coord: Coord{X: x, Z: z}, Elevation: elevation}, true, nil
}
