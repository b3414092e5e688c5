package anvil

// World height limits of the modern Anvil format.
const (
	WorldFloor   = -64
	WorldCeiling = 319

	minSectionY  = -4
	sectionCount = 24

	blocksPerSide    = 16
	blocksPerSection = blocksPerSide * blocksPerSide * blocksPerSide
)

// dataVersion identifies the chunk format revision written by the encoder.
const dataVersion = 3465

const (
	blockAir   = "minecraft:air"
	blockStone = "minecraft:stone"
)

// Chunk holds the surface heights for one 16x16 column grid. X and Z are
// absolute chunk coordinates (block coordinate >> 4).
type Chunk struct {
	X, Z int

	tops [blocksPerSide][blocksPerSide]int
	set  [blocksPerSide][blocksPerSide]bool
}

// SetColumn records the top surface elevation for the column at local block
// coordinates. Later writes to the same column win.
func (c *Chunk) SetColumn(blockX, blockZ, top int) {
	c.tops[blockX][blockZ] = top
	c.set[blockX][blockZ] = true
}

// columnSpan returns the inclusive stone range for a column, clamped to the
// world height limits. ok is false for columns with no data or whose clamped
// range is empty.
func (c *Chunk) columnSpan(blockX, blockZ, floor int) (lo, hi int, ok bool) {
	if !c.set[blockX][blockZ] {
		return 0, 0, false
	}
	lo = floor
	if lo < WorldFloor {
		lo = WorldFloor
	}
	hi = c.tops[blockX][blockZ]
	if hi > WorldCeiling {
		hi = WorldCeiling
	}
	if hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

type section struct {
	y       int8
	palette []string
	// data holds 4-bit packed palette indices, 16 per long, in y,z,x
	// order. Nil for uniform sections.
	data []int64
}

// buildSection materializes the block states of one 16-block vertical slice.
func (c *Chunk) buildSection(sectionY, floor int) section {
	base := sectionY * blocksPerSide
	stone := 0
	var blocks [blocksPerSection]bool
	for z := 0; z < blocksPerSide; z++ {
		for x := 0; x < blocksPerSide; x++ {
			lo, hi, ok := c.columnSpan(x, z, floor)
			if !ok {
				continue
			}
			for y := 0; y < blocksPerSide; y++ {
				worldY := base + y
				if worldY < lo || worldY > hi {
					continue
				}
				blocks[(y*blocksPerSide+z)*blocksPerSide+x] = true
				stone++
			}
		}
	}

	sec := section{y: int8(sectionY)}
	switch stone {
	case 0:
		sec.palette = []string{blockAir}
	case blocksPerSection:
		sec.palette = []string{blockStone}
	default:
		sec.palette = []string{blockAir, blockStone}
		sec.data = packIndices(blocks[:])
	}
	return sec
}

// packIndices packs boolean block occupancy into 4-bit palette indices.
// Entries never straddle a long boundary.
func packIndices(blocks []bool) []int64 {
	const entriesPerLong = 16
	packed := make([]int64, (len(blocks)+entriesPerLong-1)/entriesPerLong)
	for i, solid := range blocks {
		if !solid {
			continue
		}
		word := i / entriesPerLong
		shift := uint(i%entriesPerLong) * 4
		packed[word] |= 1 << shift
	}
	return packed
}

// encode serializes the chunk into an uncompressed NBT document.
func (c *Chunk) encode(floor int) ([]byte, error) {
	w := &nbtWriter{}
	w.beginCompound("")
	w.writeIntTag("DataVersion", dataVersion)
	w.writeIntTag("xPos", int32(c.X))
	w.writeIntTag("zPos", int32(c.Z))
	w.writeIntTag("yPos", minSectionY)
	w.writeStringTag("Status", "minecraft:full")
	w.writeLongTag("LastUpdate", 0)
	w.writeLongTag("InhabitedTime", 0)

	w.beginList("sections", tagCompound, sectionCount)
	for sy := minSectionY; sy < minSectionY+sectionCount; sy++ {
		sec := c.buildSection(sy, floor)
		w.writeByteTag("Y", sec.y)
		w.beginCompound("block_states")
		w.beginList("palette", tagCompound, len(sec.palette))
		for _, name := range sec.palette {
			w.writeStringTag("Name", name)
			w.endCompound()
		}
		if sec.data != nil {
			w.writeLongArrayTag("data", sec.data)
		}
		w.endCompound()
		w.endCompound()
	}

	w.endCompound()
	return w.bytes()
}
