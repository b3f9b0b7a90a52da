package game

import "strings"

// Input is the set of control flags held during a frame
type Input uint8

const (
	InputThrust Input = 1 << iota
	InputTurnLeft
	InputTurnRight
	InputFire
	InputRestart
)

var inputNames = [...]struct {
	flag Input
	name string
}{
	{InputThrust, "thrust"},
	{InputTurnLeft, "left"},
	{InputTurnRight, "right"},
	{InputFire, "fire"},
	{InputRestart, "restart"},
}

// Has reports whether every flag in f is set
func (in Input) Has(f Input) bool {
	return in&f == f
}

// With returns in with f set, or cleared when on is false
func (in Input) With(f Input, on bool) Input {
	if on {
		return in | f
	}
	return in &^ f
}

// Pressed returns the flags set in in but not in prev
func (in Input) Pressed(prev Input) Input {
	return in &^ prev
}

func (in Input) String() string {
	if in == 0 {
		return "none"
	}
	var names []string
	for _, n := range inputNames {
		if in.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "+")
}
