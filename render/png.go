package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"spacedemos/game"
)

// ErrInvalidSize is returned for non-positive image dimensions
var ErrInvalidSize = errors.New("render: invalid image size")

// Options controls offscreen rasterization
type Options struct {
	Width, Height int
	Zoom          float64
	Background    game.Color

	// TileBound draws every record at its eight toroidal images as well
	// when positive, so shapes crossing the edge show on both sides
	TileBound float64
}

// DefaultOptions returns a 512x512 black canvas showing the whole world
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Zoom:       1,
		Background: game.Color{A: 1},
		TileBound:  1,
	}
}

// Rasterize fills every record into a new gg context. The caller must Close it.
func Rasterize(records []game.DrawRecord, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	bg := opts.Background
	dc.ClearWithColor(gg.RGBA{R: bg.R, G: bg.G, B: bg.B, A: bg.A})

	cam := NewCamera(float64(opts.Width), float64(opts.Height))
	if opts.Zoom > 0 {
		cam.Zoom = opts.Zoom
	}

	for _, r := range records {
		for _, offset := range TileOffsets(opts.TileBound) {
			if err := fillRecord(dc, cam, r.Translated(offset)); err != nil {
				dc.Close()
				return nil, fmt.Errorf("fill %s %d: %w", r.Kind, r.ID, err)
			}
		}
	}
	return dc, nil
}

// fillRecord traces the outer ring of the fan, which covers the same area
// because every outline is star-shaped around vertex 0
func fillRecord(dc *gg.Context, cam *Camera, r game.DrawRecord) error {
	if len(r.Ring) < 4 {
		return nil
	}
	dc.SetRGBA(r.Color.R, r.Color.G, r.Color.B, r.Color.A)

	x, y := cam.WorldToScreen(r.ToWorld(r.Ring[1]))
	dc.MoveTo(x, y)
	for _, v := range r.Ring[2 : len(r.Ring)-1] {
		x, y = cam.WorldToScreen(r.ToWorld(v))
		dc.LineTo(x, y)
	}
	dc.ClosePath()
	return dc.Fill()
}

// TileOffsets returns the translations a record is drawn at. With a positive
// bound that is the 3x3 neighborhood of world copies, otherwise just zero.
func TileOffsets(bound float64) []game.Vec2 {
	if bound <= 0 {
		return []game.Vec2{{}}
	}
	tiles := game.NewWorld(bound).Tiles(game.Vec2{})
	return tiles[:]
}

// SavePNG rasterizes records and writes them to path
func SavePNG(path string, records []game.DrawRecord, opts Options) error {
	dc, err := Rasterize(records, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// EncodePNG rasterizes records and streams the PNG to w
func EncodePNG(w io.Writer, records []game.DrawRecord, opts Options) error {
	dc, err := Rasterize(records, opts)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.EncodePNG(w)
}
