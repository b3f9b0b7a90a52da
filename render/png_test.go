package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacedemos/game"
)

func square(t *testing.T) game.Polygon {
	t.Helper()
	p, err := game.RegularPolygon(4)
	require.NoError(t, err)
	return p
}

func pixel(t *testing.T, opts Options, records []game.DrawRecord, x, y int) [4]uint32 {
	t.Helper()
	dc, err := Rasterize(records, opts)
	require.NoError(t, err)
	defer dc.Close()

	r, g, b, a := dc.Image().At(x, y).RGBA()
	return [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8}
}

func TestRasterize_FillsRecord(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 64
	opts.TileBound = 0

	rec := game.DrawRecord{Kind: game.KindAsteroid, Scale: 0.5, Color: game.Gray(0.5), Ring: square(t).Ring}

	center := pixel(t, opts, []game.DrawRecord{rec}, 32, 32)
	assert.InDelta(t, 128, center[0], 2)
	assert.InDelta(t, 128, center[1], 2)
	assert.EqualValues(t, 255, center[3])

	corner := pixel(t, opts, []game.DrawRecord{rec}, 2, 2)
	assert.EqualValues(t, 0, corner[0], "background stays black")
}

func TestRasterize_Tiles(t *testing.T) {
	opts := DefaultOptions()
	opts.Width, opts.Height = 64, 64

	// Centered on the right edge: half of it shows on the left edge
	rec := game.DrawRecord{Kind: game.KindAsteroid, Position: game.V2(1, 0), Scale: 0.3, Color: game.White, Ring: square(t).Ring}

	left := pixel(t, opts, []game.DrawRecord{rec}, 1, 32)
	assert.EqualValues(t, 255, left[0])

	opts.TileBound = 0
	left = pixel(t, opts, []game.DrawRecord{rec}, 1, 32)
	assert.EqualValues(t, 0, left[0])
}

func TestRasterize_InvalidSize(t *testing.T) {
	_, err := Rasterize(nil, Options{Width: 0, Height: 10})
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestSavePNG(t *testing.T) {
	sim, err := game.New(game.DefaultConfig(), 42)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "frame.png")
	opts := DefaultOptions()
	opts.Width, opts.Height = 96, 64
	require.NoError(t, SavePNG(path, sim.RenderState(), opts))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Width, opts.Height = 16, 16
	require.NoError(t, EncodePNG(&buf, nil, opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
}

func TestTileOffsets(t *testing.T) {
	assert.Equal(t, []game.Vec2{{}}, TileOffsets(0))

	offsets := TileOffsets(1)
	assert.Len(t, offsets, 9)
	assert.Contains(t, offsets, game.V2(2, -2))
	assert.Contains(t, offsets, game.Vec2{})
}
