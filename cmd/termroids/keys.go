package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"spacedemos/game"
)

// holdWindow is how long a key counts as held after its last event.
// Terminals report no key releases, only autorepeat.
const holdWindow = 150 * time.Millisecond

// keyState turns tcell key events into held simulation input
type keyState struct {
	lastSeen map[game.Input]time.Time
}

func newKeyState() *keyState {
	return &keyState{lastSeen: make(map[game.Input]time.Time)}
}

// handle records a key event at now. It reports false for quit keys.
func (k *keyState) handle(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		k.lastSeen[game.InputThrust] = now
	case tcell.KeyLeft:
		k.lastSeen[game.InputTurnLeft] = now
	case tcell.KeyRight:
		k.lastSeen[game.InputTurnRight] = now
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			return false
		case 'w':
			k.lastSeen[game.InputThrust] = now
		case 'a':
			k.lastSeen[game.InputTurnLeft] = now
		case 'd':
			k.lastSeen[game.InputTurnRight] = now
		case ' ':
			k.lastSeen[game.InputFire] = now
		case 'r':
			k.lastSeen[game.InputRestart] = now
		}
	}
	return true
}

// input returns the flags whose key was seen within holdWindow of now
func (k *keyState) input(now time.Time) game.Input {
	var in game.Input
	for flag, seen := range k.lastSeen {
		in = in.With(flag, now.Sub(seen) <= holdWindow)
	}
	return in
}
