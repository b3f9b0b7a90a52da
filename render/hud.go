package render

import (
	"fmt"
	"math"

	"spacedemos/game"
)

// HUDLines formats simulation stats for an overlay, one line per row
func HUDLines(s game.Stats) []string {
	heading := math.Mod(s.Rotation*180/math.Pi, 360)
	return []string{
		fmt.Sprintf("asteroids %d  bullets %d  fired %d", s.Asteroids, s.Bullets, s.Fired),
		fmt.Sprintf("speed %.2f  heading %03.0f", s.Speed, heading),
		fmt.Sprintf("frame %d  t %.2fs", s.Frame, s.Elapsed),
	}
}
