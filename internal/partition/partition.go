// Package partition implements the fixed-radix decomposition of world
// coordinates into region, chunk, and block keys.
//
// A region spans 512x512 columns and maps to one output file. Each region
// holds 32x32 chunks of 16x16 columns. Shifts are arithmetic, so partitions
// stay contiguous across zero: region(-1) = -1, region(-513) = -2. The
// mapping is total, collision-free, and exactly invertible.
package partition

import "fmt"

const (
	// RegionShift is the power of two of the region edge length (512).
	RegionShift = 9
	// ChunkShift is the power of two of the chunk edge length (16).
	ChunkShift = 4
	// ChunksPerRegion is the chunk grid edge within one region.
	ChunksPerRegion = 32
	// BlocksPerChunk is the block grid edge within one chunk.
	BlocksPerChunk = 16

	chunkMask = ChunksPerRegion - 1
	blockMask = BlocksPerChunk - 1
)

// RegionKey identifies one 512x512-column region.
type RegionKey struct {
	X int
	Z int
}

// FileName returns the deterministic container file name for the region.
func (k RegionKey) FileName() string {
	return fmt.Sprintf("r.%d.%d.mca", k.X, k.Z)
}

// ChunkKey identifies a chunk within its region (0..31 on each axis).
type ChunkKey struct {
	X int
	Z int
}

// BlockKey identifies a block column within its chunk (0..15 on each axis).
type BlockKey struct {
	X int
	Z int
}

// Key is the full decomposition of one world coordinate.
type Key struct {
	Region RegionKey
	Chunk  ChunkKey
	Block  BlockKey
}

// Decompose maps a world coordinate to its (region, chunk, block) triple.
// Go's >> on signed integers is arithmetic, which gives the required
// floor-toward-negative-infinity behavior.
func Decompose(x, z int) Key {
	return Key{
		Region: RegionKey{X: x >> RegionShift, Z: z >> RegionShift},
		Chunk:  ChunkKey{X: (x >> ChunkShift) & chunkMask, Z: (z >> ChunkShift) & chunkMask},
		Block:  BlockKey{X: x & blockMask, Z: z & blockMask},
	}
}

// Recombine inverts Decompose.
func Recombine(k Key) (x, z int) {
	x = k.Region.X<<RegionShift + k.Chunk.X<<ChunkShift + k.Block.X
	z = k.Region.Z<<RegionShift + k.Chunk.Z<<ChunkShift + k.Block.Z
	return x, z
}
