package game

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawRecord_Transforms(t *testing.T) {
	r := DrawRecord{Position: V2(0.5, -0.25), Rotation: math.Pi / 3, Scale: 0.25}

	for _, local := range []Vec2{{0, 0}, {1, 0}, {0.3, -0.7}} {
		world := r.ToWorld(local)
		assert.True(t, r.ToLocal(world).Approx(local, 1e-12), "local=%v", local)
	}

	assert.True(t, r.ToWorld(Vec2{}).Approx(r.Position, 1e-12))
}

func TestDrawRecord_Contains(t *testing.T) {
	square, err := RegularPolygon(4)
	require.NoError(t, err)
	r := DrawRecord{Position: V2(0.5, 0.5), Scale: 0.2, Ring: square.Ring}

	assert.True(t, r.Contains(V2(0.5, 0.5)))
	assert.True(t, r.Contains(V2(0.6, 0.5)))
	assert.False(t, r.Contains(V2(0.75, 0.5)))
	assert.False(t, r.Contains(V2(0, 0)))

	moved := r.Translated(V2(-2, 0))
	assert.True(t, moved.Contains(V2(-1.5, 0.5)))
	assert.Equal(t, V2(0.5, 0.5), r.Position, "Translated must not modify the receiver")

	empty := DrawRecord{Ring: square.Ring}
	assert.False(t, empty.Contains(Vec2{}), "zero scale covers nothing")
}

func TestDrawRecord_WorldRing(t *testing.T) {
	r := DrawRecord{Position: V2(1, 1), Scale: 2, Ring: []Vec2{{0, 0}, {1, 0}, {0, 1}}}
	assert.Equal(t, []Vec2{{1, 1}, {3, 1}, {1, 3}}, r.WorldRing())
}

func TestColor_NRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, White.NRGBA())
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}, Gray(0.5).NRGBA())
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 0, A: 255}, Color{R: -1, G: 2, A: 1}.NRGBA())
}

func TestEntityKind_String(t *testing.T) {
	assert.Equal(t, "ship", KindShip.String())
	assert.Equal(t, "asteroid", KindAsteroid.String())
	assert.Equal(t, "bullet", KindBullet.String())
	assert.Equal(t, "polygon", KindPolygon.String())
	assert.Equal(t, "unknown", EntityKind(42).String())
}
