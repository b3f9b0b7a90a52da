// Package screen draws simulation records onto ebiten images.
// Only the windowed hosts import it, so the other packages build without a GPU.
package screen

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"spacedemos/game"
	"spacedemos/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	hudFace = text.NewGoXFace(basicfont.Face7x13)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer fills draw records as indexed triangle fans
type Renderer struct {
	Camera *render.Camera

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer for a width x height screen
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Camera: render.NewCamera(float64(width), float64(height))}
}

// Resize updates the camera viewport
func (r *Renderer) Resize(width, height int) {
	r.Camera.Width = float64(width)
	r.Camera.Height = float64(height)
}

// DrawRecords fills every record, at its toroidal images too when tileBound > 0
func (r *Renderer) DrawRecords(dst *ebiten.Image, records []game.DrawRecord, tileBound float64) {
	offsets := render.TileOffsets(tileBound)
	for _, rec := range records {
		for _, offset := range offsets {
			r.DrawFan(dst, rec.Translated(offset), nil)
		}
	}
}

// DrawFan fills one record. colors, when it has one entry per ring vertex,
// overrides the record color per vertex.
func (r *Renderer) DrawFan(dst *ebiten.Image, rec game.DrawRecord, colors []game.Color) {
	if len(rec.Ring) < 4 {
		return
	}

	r.vertices = r.vertices[:0]
	for i, v := range rec.Ring {
		c := rec.Color
		if len(colors) == len(rec.Ring) {
			c = colors[i]
		}
		x, y := r.Camera.WorldToScreen(rec.ToWorld(v))
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: float32(c.A),
		})
	}

	r.indices = game.AppendFanIndices(r.indices[:0], len(rec.Ring))

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

// DrawLines draws text lines top-down starting at (x, y)
func DrawLines(dst *ebiten.Image, lines []string, x, y float64) {
	lineHeight := float64(basicfont.Face7x13.Metrics().Height.Ceil()) + 2
	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(x, y+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(dst, line, hudFace, op)
	}
}
