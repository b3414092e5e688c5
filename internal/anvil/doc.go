// Package anvil encodes voxel terrain into Minecraft Anvil region files.
//
// A region file covers 32x32 chunks of 16x16 columns. The file starts with
// an 8KiB header (1024 chunk offsets, 1024 timestamps) followed by
// zlib-compressed NBT chunk payloads aligned to 4KiB sectors. Only the
// subset of the format needed for solid terrain is produced: each chunk
// carries 24 vertical sections whose block states are either uniform or a
// two-entry air/stone palette with 4-bit packed indices.
package anvil
