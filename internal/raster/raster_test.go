package raster

import "testing"

var testOpts = Options{OffsetX: -36000, OffsetY: -29000, Nodata: -9999}

func TestParseLineAppliesOffsetsAndSign(t *testing.T) {
	s, ok, err := ParseLine("-35999.5 -28999.5 12.9", testOpts)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a valid sample")
	}
	// east - offsetX = -35999.5 + 36000 = 0.5 → 0
	// -(north - offsetY) = -(-28999.5 + 29000) = -0.5 → 0
	if s.Coord != (Coord{X: 0, Z: 0}) {
		t.Fatalf("coord = %+v", s.Coord)
	}
	if s.Elevation != 12 {
		t.Fatalf("elevation = %d, want 12", s.Elevation)
	}
}

func TestParseLineTruncatesTowardZero(t *testing.T) {
	// east - offsetX = -1.5 → -1 with truncation, not -2.
	s, ok, err := ParseLine("-36001.5 -29010.5 3.0", testOpts)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if s.Coord.X != -1 {
		t.Fatalf("x = %d, want -1", s.Coord.X)
	}
	// -(north - offsetY) = -(-10.5) = 10.5 → 10
	if s.Coord.Z != 10 {
		t.Fatalf("z = %d, want 10", s.Coord.Z)
	}
}

func TestParseLineFiltersNodataAfterTruncation(t *testing.T) {
	// -9998.6 truncates to -9998, which is not the sentinel.
	s, ok, err := ParseLine("-36000 -29000 -9998.6", testOpts)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("truncated value differing from the sentinel must survive")
	}
	if s.Elevation != -9998 {
		t.Fatalf("elevation = %d", s.Elevation)
	}

	if _, ok, err := ParseLine("-36000 -29000 -9999.0", testOpts); err != nil || ok {
		t.Fatalf("sentinel cell must be dropped: ok=%v err=%v", ok, err)
	}
}

func TestParseLineNegativeElevationSurvives(t *testing.T) {
	s, ok, err := ParseLine("-36000 -29000 -3.7", testOpts)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if s.Elevation != -3 {
		t.Fatalf("elevation = %d, want -3 (truncation toward zero)", s.Elevation)
	}
}

func TestParseLineMalformed(t *testing.T) {
	cases := []string{"", "1 2", "a b c", "1 2 not-a-number"}
	for _, line := range cases {
		if _, _, err := ParseLine(line, testOpts); err == nil {
			t.Errorf("ParseLine(%q) should fail", line)
		}
	}
}

func TestParseLineExtraWhitespace(t *testing.T) {
	s, ok, err := ParseLine("  -35000\t-28000   42  ", testOpts)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if s.Coord != (Coord{X: 1000, Z: -1000}) || s.Elevation != 42 {
		t.Fatalf("sample = %+v", s)
	}
}
