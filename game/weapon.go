package game

// cooldownEpsilon absorbs rounding when per-frame deltas are summed,
// so 15 frames of 1/60 s count as a full 250 ms
const cooldownEpsilon = 1e-6

// Cooldown gates an action to at most once per Interval seconds
type Cooldown struct {
	// Interval is the minimum time between two actions in seconds
	Interval float64

	// Elapsed is the time since the action last fired
	Elapsed float64

	fired bool
}

// NewCooldown creates a gate that is ready immediately
func NewCooldown(interval float64) Cooldown {
	return Cooldown{Interval: interval}
}

// Advance adds dt seconds to the elapsed time
func (c *Cooldown) Advance(dt float64) {
	c.Elapsed += dt
}

// Ready reports whether the action may fire.
// An action that has never fired is always ready.
func (c *Cooldown) Ready() bool {
	if !c.fired {
		return true
	}
	return c.Elapsed >= c.Interval-cooldownEpsilon
}

// Restart records that the action fired now
func (c *Cooldown) Restart() {
	c.fired = true
	c.Elapsed = 0
}

// Fired reports whether the action has fired at least once
func (c *Cooldown) Fired() bool {
	return c.fired
}
