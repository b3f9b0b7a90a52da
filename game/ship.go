package game

// shipHull is an arrow outline, star-shaped around the origin so it renders as a fan.
// Wing tips sit at x = ±11/15.5, the default cannon offset ratio.
var shipHull = Polygon{
	Sides: 4,
	Ring: []Vec2{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 11.0 / 15.5, Y: -0.8},
		{X: 0, Y: -0.45},
		{X: -11.0 / 15.5, Y: -0.8},
		{X: 0, Y: 1},
	},
	Radii: []float64{1, 1.0694, 0.45, 1.0694},
}

// Ship is the player's craft. It acts as the camera: its position stays at the
// origin and the rest of the world moves against its velocity.
type Ship struct {
	ID EntityID
	Body

	// Hull is the outline drawn for the ship
	Hull Polygon

	// FireCooldown gates bullet firing
	FireCooldown Cooldown

	// Thrusting is set while thrust was applied during the last update
	Thrusting bool

	turnRate float64
	thrust   float64
}

// NewShip creates a ship at the origin facing +Y
func NewShip(cfg Config) *Ship {
	return &Ship{
		Body:         Body{Scale: cfg.ShipScale},
		Hull:         shipHull,
		FireCooldown: NewCooldown(cfg.FireCooldown()),
		turnRate:     cfg.ShipTurnRate,
		thrust:       cfg.ShipThrust,
	}
}

// Update applies turn and thrust input for dt seconds
func (s *Ship) Update(dt float64, in Input) {
	left, right := in.Has(InputTurnLeft), in.Has(InputTurnRight)
	switch {
	case left && !right:
		s.AngularVelocity = s.turnRate
	case right && !left:
		s.AngularVelocity = -s.turnRate
	default:
		s.AngularVelocity = 0
	}

	s.Thrusting = in.Has(InputThrust)
	if s.Thrusting {
		s.ApplyImpulse(s.Forward().Scale(s.thrust * dt))
	}

	// Relative to its own velocity the ship only rotates
	s.Integrate(dt, s.LinearVelocity)
}
