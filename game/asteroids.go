package game

import "fmt"

// Asteroid generation ranges
const (
	AsteroidMinSides = 6
	AsteroidMaxSides = 20

	asteroidMinIntensity = 0.5
	asteroidMaxIntensity = 1.0
)

// AsteroidRadius is the per-vertex radius jitter of asteroid outlines
var AsteroidRadius = RadiusRange{Min: 0.8, Max: 1.0}

// Asteroid is a drifting, spinning rock
type Asteroid struct {
	ID EntityID
	Body
	Polygon Polygon
	Color   Color
}

// Asteroids owns the asteroid field
type Asteroids struct {
	list  []Asteroid
	world World
	cfg   Config
	ids   *idSource
}

// NewAsteroids creates an empty field using cfg for spawn parameters
func NewAsteroids(cfg Config) *Asteroids {
	return &Asteroids{
		world: NewWorld(cfg.WorldBound),
		cfg:   cfg,
		ids:   &idSource{},
	}
}

// Initialize replaces the field with count asteroids placed away from the origin
func (a *Asteroids) Initialize(count int, rng Rand) error {
	if count < 0 {
		return fmt.Errorf("%w: asteroids %d", ErrNegativeCount, count)
	}

	a.list = make([]Asteroid, 0, count)
	for i := 0; i < count; i++ {
		asteroid := a.MakeAsteroid(rng, Vec2{}, a.cfg.AsteroidScale)

		// Keep the ship's start position clear
		for {
			asteroid.Position = Vec2{
				X: uniform(rng, -a.world.Bound, a.world.Bound),
				Y: uniform(rng, -a.world.Bound, a.world.Bound),
			}
			if asteroid.Position.Len() >= a.cfg.SpawnClearance {
				break
			}
		}
		a.list = append(a.list, asteroid)
	}
	return nil
}

// MakeAsteroid builds one asteroid at translation with the given scale.
// It does not add it to the field; use Add for that.
func (a *Asteroids) MakeAsteroid(rng Rand, translation Vec2, scale float64) Asteroid {
	sides := uniformInt(rng, AsteroidMinSides, AsteroidMaxSides)
	intensity := uniform(rng, asteroidMinIntensity, asteroidMaxIntensity)
	angular := uniform(rng, -1, 1)

	var direction Vec2
	for direction.Len() == 0 {
		direction = Vec2{X: uniform(rng, -1, 1), Y: uniform(rng, -1, 1)}
	}

	// sides and radius are always in range here
	polygon, err := GeneratePolygon(sides, AsteroidRadius, rng)
	if err != nil {
		panic(err)
	}

	return Asteroid{
		ID: a.ids.nextID(),
		Body: Body{
			Position:        translation,
			LinearVelocity:  direction.Normalize().Scale(a.cfg.AsteroidSpeedFactor),
			AngularVelocity: angular,
			Scale:           scale,
		},
		Polygon: polygon,
		Color:   Gray(intensity),
	}
}

// Add appends an asteroid to the field
func (a *Asteroids) Add(asteroid Asteroid) {
	a.list = append(a.list, asteroid)
}

// Tick moves every asteroid against the ship's velocity and wraps it into the world
func (a *Asteroids) Tick(dt float64, shipVelocity Vec2) {
	for i := range a.list {
		ast := &a.list[i]
		ast.Integrate(dt, shipVelocity)
		ast.Position = a.world.Wrap(ast.Position)
	}
}

// Len returns the number of asteroids
func (a *Asteroids) Len() int {
	return len(a.list)
}

// At returns the i-th asteroid
func (a *Asteroids) At(i int) Asteroid {
	return a.list[i]
}

// All returns the asteroids. The slice is owned by the field and must not be modified.
func (a *Asteroids) All() []Asteroid {
	return a.list
}

// World returns the domain asteroids wrap in
func (a *Asteroids) World() World {
	return a.world
}
