package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"spacedemos/game"
)

// CellAspect is the height to width ratio of a typical terminal cell
const CellAspect = 2.0

// Canvas is the part of tcell.Screen the terminal renderer draws on
type Canvas interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Glyphs used for each entity kind
var glyphs = map[game.EntityKind]rune{
	game.KindShip:     '▲',
	game.KindAsteroid: '█',
	game.KindBullet:   '•',
	game.KindPolygon:  '█',
}

type sampled struct {
	rec    game.DrawRecord
	radius float64
	glyph  rune
	style  tcell.Style
}

// TerminalCamera returns a camera sized for the canvas with terminal cell aspect
func TerminalCamera(c Canvas, zoom float64) *Camera {
	w, h := c.Size()
	return &Camera{Width: float64(w), Height: float64(h), Zoom: zoom, Aspect: CellAspect}
}

// DrawTerminal point-samples records at every cell center. Later records
// win, so bullets stay visible over asteroids. Cells covered by nothing are
// left untouched; clear the screen first.
func DrawTerminal(c Canvas, cam *Camera, records []game.DrawRecord, tileBound float64) {
	shapes := make([]sampled, 0, len(records)*9)
	for _, r := range records {
		radius := ringRadius(r.Ring) * r.Scale
		style := tcell.StyleDefault.Foreground(termColor(r.Color))
		for _, offset := range TileOffsets(tileBound) {
			shapes = append(shapes, sampled{
				rec:    r.Translated(offset),
				radius: radius,
				glyph:  glyphs[r.Kind],
				style:  style,
			})
		}
	}

	w, h := c.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := cam.ScreenToWorld(float64(x)+0.5, float64(y)+0.5)
			for i := len(shapes) - 1; i >= 0; i-- {
				s := &shapes[i]
				if p.Sub(s.rec.Position).Len() > s.radius || !s.rec.Contains(p) {
					continue
				}
				c.SetContent(x, y, s.glyph, nil, s.style)
				break
			}
		}
	}

	// Tiny shapes can fall between cell centers; mark their cell anyway
	for _, s := range shapes {
		if s.rec.Kind != game.KindBullet {
			continue
		}
		sx, sy := cam.WorldToScreen(s.rec.Position)
		x, y := int(math.Floor(sx)), int(math.Floor(sy))
		if x >= 0 && x < w && y >= 0 && y < h {
			c.SetContent(x, y, s.glyph, nil, s.style)
		}
	}
}

// DrawText writes s starting at (x, y), clipped to the canvas width
func DrawText(c Canvas, x, y int, s string, style tcell.Style) {
	w, _ := c.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

func ringRadius(ring []game.Vec2) float64 {
	var r float64
	for _, v := range ring {
		r = math.Max(r, v.Len())
	}
	return r
}

func termColor(c game.Color) tcell.Color {
	n := c.NRGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}
