package anvil

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/klauspost/compress/zlib"
)

const (
	chunksPerSide = 32
	sectorSize    = 4096
	headerSize    = 2 * sectorSize

	// zlib, per the region format's compression-type byte.
	compressionZlib = 2
)

// Region accumulates terrain for one 32x32 chunk region file. X and Z are
// region coordinates (block coordinate >> 9).
type Region struct {
	X, Z int

	chunks [chunksPerSide][chunksPerSide]*Chunk
}

// NewRegion creates an empty region at the given region coordinates.
func NewRegion(x, z int) *Region {
	return &Region{X: x, Z: z}
}

// FileName returns the on-disk name for this region, r.X.Z.mca.
func (r *Region) FileName() string {
	return fmt.Sprintf("r.%d.%d.mca", r.X, r.Z)
}

// SetColumn records a surface elevation for the block column at local
// coordinates within the region: chunk indices in [0,32), block indices in
// [0,16). The owning chunk is created on first touch.
func (r *Region) SetColumn(chunkX, chunkZ, blockX, blockZ, top int) {
	c := r.chunks[chunkX][chunkZ]
	if c == nil {
		c = &Chunk{
			X: r.X*chunksPerSide + chunkX,
			Z: r.Z*chunksPerSide + chunkZ,
		}
		r.chunks[chunkX][chunkZ] = c
	}
	c.SetColumn(blockX, blockZ, top)
}

// ChunkCount returns the number of chunks holding at least one column.
func (r *Region) ChunkCount() int {
	n := 0
	for x := range r.chunks {
		for z := range r.chunks[x] {
			if r.chunks[x][z] != nil {
				n++
			}
		}
	}
	return n
}

// WriteFile encodes the region and writes it to path atomically: the file
// is staged under a temporary name and renamed into place, so a crash never
// leaves a partial region behind. Columns are filled with stone from floor
// up to their recorded elevation, clamped to the world height limits.
func (r *Region) WriteFile(path string, floor int) error {
	data, err := r.encode(floor)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write region file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalize region file: %w", err)
	}
	return nil
}

func (r *Region) encode(floor int) ([]byte, error) {
	header := make([]byte, headerSize)
	var body bytes.Buffer
	now := uint32(time.Now().Unix())

	sectorOffset := headerSize / sectorSize
	for cz := 0; cz < chunksPerSide; cz++ {
		for cx := 0; cx < chunksPerSide; cx++ {
			c := r.chunks[cx][cz]
			if c == nil {
				continue
			}
			payload, err := compressChunk(c, floor)
			if err != nil {
				return nil, fmt.Errorf("encode chunk (%d,%d): %w", c.X, c.Z, err)
			}

			sectors := (len(payload) + sectorSize - 1) / sectorSize
			if sectors > 0xff {
				return nil, fmt.Errorf("chunk (%d,%d) exceeds 255 sectors", c.X, c.Z)
			}
			idx := 4 * (cx + cz*chunksPerSide)
			binary.BigEndian.PutUint32(header[idx:], uint32(sectorOffset)<<8|uint32(sectors))
			binary.BigEndian.PutUint32(header[sectorSize+idx:], now)

			body.Write(payload)
			if pad := sectors*sectorSize - len(payload); pad > 0 {
				body.Write(make([]byte, pad))
			}
			sectorOffset += sectors
		}
	}

	out := make([]byte, 0, len(header)+body.Len())
	out = append(out, header...)
	out = append(out, body.Bytes()...)
	return out, nil
}

// compressChunk produces a chunk payload: 4-byte big-endian length, one
// compression-type byte, then the zlib stream. The length counts the type
// byte plus the compressed data.
func compressChunk(c *Chunk, floor int) ([]byte, error) {
	raw, err := c.encode(floor)
	if err != nil {
		return nil, err
	}

	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	if _, err := zw.Write(raw); err != nil {
		_ = zw.Close()
		return nil, fmt.Errorf("compress chunk: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("compress chunk: %w", err)
	}

	payload := make([]byte, 0, 5+compressed.Len())
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(compressed.Len()+1))
	payload = append(payload, length[:]...)
	payload = append(payload, compressionZlib)
	payload = append(payload, compressed.Bytes()...)
	return payload, nil
}
