package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacedemos/game"
)

type cell struct {
	r     rune
	style tcell.Style
}

// mockCanvas records the last rune written to each cell
type mockCanvas struct {
	w, h  int
	cells map[[2]int]cell
}

func newMockCanvas(w, h int) *mockCanvas {
	return &mockCanvas{w: w, h: h, cells: map[[2]int]cell{}}
}

func (m *mockCanvas) Size() (int, int) { return m.w, m.h }

func (m *mockCanvas) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{primary, style}
}

func (m *mockCanvas) at(x, y int) rune {
	return m.cells[[2]int{x, y}].r
}

func TestDrawTerminal_Asteroid(t *testing.T) {
	c := newMockCanvas(40, 20)
	cam := TerminalCamera(c, 1)

	rec := game.DrawRecord{Kind: game.KindAsteroid, Scale: 0.5, Color: game.Gray(0.75), Ring: square(t).Ring}
	DrawTerminal(c, cam, []game.DrawRecord{rec}, 0)

	assert.Equal(t, '█', c.at(20, 10))
	assert.Zero(t, c.at(0, 0))
	assert.Zero(t, c.at(39, 19))

	fg, _, _ := c.cells[[2]int{20, 10}].style.Decompose()
	r, g, b := fg.RGB()
	assert.EqualValues(t, 191, r)
	assert.Equal(t, r, g)
	assert.Equal(t, r, b)
}

func TestDrawTerminal_LaterRecordsWin(t *testing.T) {
	c := newMockCanvas(40, 20)
	cam := TerminalCamera(c, 1)

	big := game.DrawRecord{Kind: game.KindAsteroid, Scale: 0.5, Color: game.Gray(0.6), Ring: square(t).Ring}
	ship := game.DrawRecord{Kind: game.KindShip, Scale: 0.3, Color: game.White, Ring: square(t).Ring}
	DrawTerminal(c, cam, []game.DrawRecord{big, ship}, 0)

	assert.Equal(t, '▲', c.at(20, 10))
}

func TestDrawTerminal_TinyBulletStillShows(t *testing.T) {
	c := newMockCanvas(40, 20)
	cam := TerminalCamera(c, 1)

	bullet, err := game.RegularPolygon(10)
	require.NoError(t, err)
	rec := game.DrawRecord{Kind: game.KindBullet, Position: game.V2(0.51, 0.52), Scale: 0.015, Color: game.White, Ring: bullet.Ring}
	DrawTerminal(c, cam, []game.DrawRecord{rec}, 0)

	sx, sy := cam.WorldToScreen(rec.Position)
	assert.Equal(t, '•', c.at(int(sx), int(sy)))
	assert.Len(t, c.cells, 1)
}

func TestDrawTerminal_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(30, 12)

	sim, err := game.New(game.DefaultConfig(), 7)
	require.NoError(t, err)

	screen.Clear()
	DrawTerminal(screen, TerminalCamera(screen, 1), sim.RenderState(), 1)
	DrawText(screen, 0, 0, "hud", tcell.StyleDefault)
	screen.Show()

	w, h := screen.Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 12, h)
}

func TestDrawText_Clips(t *testing.T) {
	c := newMockCanvas(4, 1)
	DrawText(c, 1, 0, "hello", tcell.StyleDefault)
	assert.Equal(t, 'h', c.at(1, 0))
	assert.Equal(t, 'l', c.at(3, 0))
	assert.Len(t, c.cells, 3)
}
