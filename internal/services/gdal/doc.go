// Package gdal mediates access to the GDAL command-line tools used by the
// pipeline: gdalwarp for reprojection, gdal_translate for streaming raster
// cells as XYZ text, and gdalinfo for metadata.
//
// It normalizes command invocation and exposes a testable executor seam so
// stages never reach for exec.Command directly. Rasters are streamed via
// /vsistdout/ rather than materialized as temporary XYZ files, which keeps
// disk usage flat regardless of tile size.
package gdal
