package anvil

import "testing"

func TestColumnSpanClampsToWorldLimits(t *testing.T) {
	var c Chunk
	c.SetColumn(0, 0, 5000)

	lo, hi, ok := c.columnSpan(0, 0, -500)
	if !ok {
		t.Fatal("expected a span")
	}
	if lo != WorldFloor {
		t.Fatalf("lo = %d, want %d", lo, WorldFloor)
	}
	if hi != WorldCeiling {
		t.Fatalf("hi = %d, want %d", hi, WorldCeiling)
	}
}

func TestColumnSpanUnsetColumn(t *testing.T) {
	var c Chunk
	if _, _, ok := c.columnSpan(3, 3, -10); ok {
		t.Fatal("unset column must have no span")
	}
}

func TestColumnSpanEmptyAfterClamp(t *testing.T) {
	var c Chunk
	c.SetColumn(0, 0, -100) // below the world floor
	if _, _, ok := c.columnSpan(0, 0, -64); ok {
		t.Fatal("elevation below the world floor must produce no stone")
	}
}

func TestBuildSectionUniformAir(t *testing.T) {
	var c Chunk
	c.SetColumn(0, 0, 10)

	sec := c.buildSection(10, 0) // world 160..175, far above the surface
	if len(sec.palette) != 1 || sec.palette[0] != blockAir {
		t.Fatalf("palette = %v, want single air entry", sec.palette)
	}
	if sec.data != nil {
		t.Fatal("uniform section must omit packed data")
	}
}

func TestBuildSectionUniformStone(t *testing.T) {
	var c Chunk
	for x := 0; x < blocksPerSide; x++ {
		for z := 0; z < blocksPerSide; z++ {
			c.SetColumn(x, z, 200)
		}
	}

	sec := c.buildSection(0, -64) // world 0..15 is fully inside every span
	if len(sec.palette) != 1 || sec.palette[0] != blockStone {
		t.Fatalf("palette = %v, want single stone entry", sec.palette)
	}
	if sec.data != nil {
		t.Fatal("uniform section must omit packed data")
	}
}

func TestBuildSectionMixedPacking(t *testing.T) {
	var c Chunk
	c.SetColumn(0, 0, 0) // exactly one stone block at world y=0

	sec := c.buildSection(0, 0)
	if len(sec.palette) != 2 {
		t.Fatalf("palette = %v, want air+stone", sec.palette)
	}
	if len(sec.data) != blocksPerSection/16 {
		t.Fatalf("data length = %d, want %d", len(sec.data), blocksPerSection/16)
	}
	// Block (x=0, y=0, z=0) is entry 0: the low nibble of the first long.
	if sec.data[0]&0xf != 1 {
		t.Fatalf("first entry = %d, want stone index 1", sec.data[0]&0xf)
	}
	for i := 1; i < len(sec.data); i++ {
		if sec.data[i] != 0 {
			t.Fatalf("unexpected stone at long %d", i)
		}
	}
}

func TestPackIndicesEntriesPerLong(t *testing.T) {
	blocks := make([]bool, blocksPerSection)
	blocks[15] = true // last entry of the first long
	blocks[16] = true // first entry of the second long

	packed := packIndices(blocks)
	if packed[0] != 1<<60 {
		t.Fatalf("long 0 = %#x, want %#x", packed[0], int64(1)<<60)
	}
	if packed[1] != 1 {
		t.Fatalf("long 1 = %#x, want 1", packed[1])
	}
}

func TestChunkEncodeWellFormed(t *testing.T) {
	c := &Chunk{X: 3, Z: -2}
	c.SetColumn(1, 1, 40)

	raw, err := c.encode(-5)
	if err != nil {
		t.Fatal(err)
	}
	if raw[0] != tagCompound {
		t.Fatalf("document must start with a compound tag, got %#x", raw[0])
	}
	if raw[len(raw)-1] != tagEnd {
		t.Fatalf("document must end with an end tag, got %#x", raw[len(raw)-1])
	}
}
