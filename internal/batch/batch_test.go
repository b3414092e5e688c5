package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mcarve/internal/raster"
)

var testOpts = raster.Options{OffsetX: -36000, OffsetY: -29000, Nodata: -9999}

// fakeStreamer serves canned XYZ lines per tile path.
type fakeStreamer struct {
	tiles map[string][]string
	errs  map[string]error
}

func (f *fakeStreamer) StreamXYZ(ctx context.Context, src string, onLine func(string)) error {
	if err := f.errs[src]; err != nil {
		return err
	}
	for _, line := range f.tiles[src] {
		onLine(line)
	}
	return nil
}

func line(x, z, elev float64) string {
	return fmt.Sprintf("%f %f %f", x-36000, z*-1-29000, elev)
}

func TestCollectMergesTiles(t *testing.T) {
	streamer := &fakeStreamer{tiles: map[string][]string{
		"a.tif": {line(0, 0, 10), line(1, 0, 11)},
		"b.tif": {line(2, 0, 12)},
	}}
	agg := New(streamer, testOpts, nil)

	result, err := agg.Collect(context.Background(), []string{"a.tif", "b.tif"})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Columns) != 3 {
		t.Fatalf("columns = %d, want 3", len(result.Columns))
	}
	if result.TilesRead != 2 || result.TilesFailed != 0 {
		t.Fatalf("read=%d failed=%d", result.TilesRead, result.TilesFailed)
	}
	if got := result.Columns[raster.Coord{X: 2, Z: 0}]; got != 12 {
		t.Fatalf("column (2,0) = %d, want 12", got)
	}
}

func TestCollectLastWriteWins(t *testing.T) {
	streamer := &fakeStreamer{tiles: map[string][]string{
		"a.tif": {line(5, 5, 100)},
		"b.tif": {line(5, 5, 200)},
	}}
	agg := New(streamer, testOpts, nil)

	result, err := agg.Collect(context.Background(), []string{"a.tif", "b.tif"})
	if err != nil {
		t.Fatal(err)
	}
	if got := result.Columns[raster.Coord{X: 5, Z: 5}]; got != 200 {
		t.Fatalf("duplicate key = %d, want the later tile's 200", got)
	}
}

func TestCollectNodataOnlyTileContributesNothing(t *testing.T) {
	streamer := &fakeStreamer{tiles: map[string][]string{
		"empty.tif": {line(0, 0, -9999), line(1, 1, -9999)},
	}}
	agg := New(streamer, testOpts, nil)

	result, err := agg.Collect(context.Background(), []string{"empty.tif"})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Columns) != 0 || result.Samples != 0 {
		t.Fatalf("nodata tile leaked samples: %+v", result)
	}
	if result.TilesRead != 1 {
		t.Fatal("a clean nodata-only tile still counts as read")
	}
}

func TestCollectFailedTileContributesNothing(t *testing.T) {
	streamer := &fakeStreamer{
		tiles: map[string][]string{
			"good.tif": {line(0, 0, 7)},
			"bad.tif":  {line(9, 9, 50), "garbage line"},
		},
	}
	agg := New(streamer, testOpts, nil)

	result, err := agg.Collect(context.Background(), []string{"bad.tif", "good.tif"})
	if err != nil {
		t.Fatal(err)
	}
	if result.TilesFailed != 1 || result.TilesRead != 1 {
		t.Fatalf("read=%d failed=%d", result.TilesRead, result.TilesFailed)
	}
	if _, leaked := result.Columns[raster.Coord{X: 9, Z: 9}]; leaked {
		t.Fatal("failed tile leaked staged samples into the batch map")
	}
	if len(result.Columns) != 1 {
		t.Fatalf("columns = %d, want 1", len(result.Columns))
	}
}

func TestCollectStreamerErrorCountsTileFailed(t *testing.T) {
	streamer := &fakeStreamer{
		tiles: map[string][]string{"good.tif": {line(0, 0, 1)}},
		errs:  map[string]error{"broken.tif": errors.New("read failure")},
	}
	agg := New(streamer, testOpts, nil)

	result, err := agg.Collect(context.Background(), []string{"broken.tif", "good.tif"})
	if err != nil {
		t.Fatal(err)
	}
	if result.TilesFailed != 1 || result.TilesRead != 1 {
		t.Fatalf("read=%d failed=%d", result.TilesRead, result.TilesFailed)
	}
}

func TestCollectHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	agg := New(&fakeStreamer{}, testOpts, nil)
	if _, err := agg.Collect(ctx, []string{"a.tif"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestTileMin(t *testing.T) {
	streamer := &fakeStreamer{tiles: map[string][]string{
		"t.tif": {line(0, 0, 5), line(1, 0, -12), line(2, 0, 300)},
	}}
	agg := New(streamer, testOpts, nil)

	min, ok, err := agg.TileMin(context.Background(), "t.tif")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || min != -12 {
		t.Fatalf("min=%d ok=%v, want -12 true", min, ok)
	}
}

func TestTileMinAllNodata(t *testing.T) {
	streamer := &fakeStreamer{tiles: map[string][]string{
		"t.tif": {line(0, 0, -9999)},
	}}
	agg := New(streamer, testOpts, nil)

	_, ok, err := agg.TileMin(context.Background(), "t.tif")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("all-nodata tile must report no minimum")
	}
}

func TestReleaseDropsColumns(t *testing.T) {
	result := &Result{Columns: map[raster.Coord]int{{X: 1, Z: 1}: 2}}
	result.Release()
	if result.Columns != nil {
		t.Fatal("release must drop the column map")
	}
}
