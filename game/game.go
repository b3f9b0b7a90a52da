package game

import (
	"fmt"
	"math/rand/v2"
)

// Stats summarizes the simulation for HUDs
type Stats struct {
	Frame     uint64
	Elapsed   float64
	Asteroids int
	Bullets   int
	Fired     int
	Speed     float64
	Rotation  float64
}

// Simulation owns the ship, the asteroid field and the bullets and advances
// them in a fixed per-frame order
type Simulation struct {
	cfg   Config
	seed  uint64
	rng   *rand.Rand
	world World

	ship      *Ship
	asteroids *Asteroids
	bullets   *Bullets
	ids       *idSource

	prevInput Input
	frame     uint64
	elapsed   float64
}

// New validates cfg and creates a simulation seeded with seed
func New(cfg Config, seed uint64) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:   cfg,
		seed:  seed,
		world: NewWorld(cfg.WorldBound),
	}
	if err := s.reset(); err != nil {
		return nil, err
	}

	Logger().Info("simulation created", "seed", seed, "asteroids", cfg.AsteroidCount)
	return s, nil
}

// Reset rebuilds the simulation from its seed. The same seed always yields the same field.
func (s *Simulation) Reset() {
	// Config was validated in New, so reset cannot fail
	if err := s.reset(); err != nil {
		panic(fmt.Sprintf("game: reset: %v", err))
	}
}

func (s *Simulation) reset() error {
	s.rng = NewRand(s.seed)
	s.ids = &idSource{}

	s.ship = NewShip(s.cfg)
	s.ship.ID = s.ids.nextID()
	s.bullets = NewBullets(s.cfg)
	s.bullets.ids = s.ids
	s.asteroids = NewAsteroids(s.cfg)
	s.asteroids.ids = s.ids

	if err := s.asteroids.Initialize(s.cfg.AsteroidCount, s.rng); err != nil {
		return err
	}

	s.frame = 0
	s.elapsed = 0
	Logger().Debug("simulation reset", "seed", s.seed, "asteroids", s.asteroids.Len())
	return nil
}

// Update advances the simulation by dt seconds with the given input held.
// A newly pressed Restart resets the simulation instead.
func (s *Simulation) Update(dt float64, in Input) {
	pressed := in.Pressed(s.prevInput)
	s.prevInput = in

	if pressed.Has(InputRestart) {
		s.Reset()
		return
	}

	if dt < 0 {
		dt = 0
	}
	// Large jumps would break the single-wrap assumption
	if dt > s.cfg.MaxDeltaTime {
		dt = s.cfg.MaxDeltaTime
	}

	s.ship.Update(dt, in)
	s.bullets.TryFire(s.ship, in.Has(InputFire), dt)
	s.bullets.Tick(dt, s.ship.LinearVelocity)
	s.asteroids.Tick(dt, s.ship.LinearVelocity)

	s.frame++
	s.elapsed += dt
}

// RenderState returns one draw record per live entity: ship, asteroids, then bullets
func (s *Simulation) RenderState() []DrawRecord {
	records := make([]DrawRecord, 0, 1+s.asteroids.Len()+s.bullets.Len())

	records = append(records, DrawRecord{
		ID:       s.ship.ID,
		Kind:     KindShip,
		Position: s.ship.Position,
		Rotation: s.ship.Rotation,
		Scale:    s.ship.Scale,
		Color:    White,
		Ring:     s.ship.Hull.Ring,
	})

	for _, a := range s.asteroids.All() {
		records = append(records, DrawRecord{
			ID:       a.ID,
			Kind:     KindAsteroid,
			Position: a.Position,
			Rotation: a.Rotation,
			Scale:    a.Scale,
			Color:    a.Color,
			Ring:     a.Polygon.Ring,
		})
	}

	template := s.bullets.Template()
	for _, b := range s.bullets.All() {
		records = append(records, DrawRecord{
			ID:       b.ID,
			Kind:     KindBullet,
			Position: b.Position,
			Scale:    b.Scale,
			Color:    White,
			Ring:     template.Ring,
		})
	}
	return records
}

// Stats returns counters for display
func (s *Simulation) Stats() Stats {
	return Stats{
		Frame:     s.frame,
		Elapsed:   s.elapsed,
		Asteroids: s.asteroids.Len(),
		Bullets:   s.bullets.Len(),
		Fired:     s.bullets.Fired(),
		Speed:     s.ship.LinearVelocity.Len(),
		Rotation:  s.ship.Rotation,
	}
}

// Ship returns the player's ship
func (s *Simulation) Ship() *Ship { return s.ship }

// Asteroids returns the asteroid field
func (s *Simulation) Asteroids() *Asteroids { return s.asteroids }

// Bullets returns the bullets in flight
func (s *Simulation) Bullets() *Bullets { return s.bullets }

// World returns the toroidal domain
func (s *Simulation) World() World { return s.world }

// Config returns the configuration the simulation was created with
func (s *Simulation) Config() Config { return s.cfg }

// Seed returns the seed used on every reset
func (s *Simulation) Seed() uint64 { return s.seed }

// Frame returns the number of updates since the last reset
func (s *Simulation) Frame() uint64 { return s.frame }

// Elapsed returns simulated seconds since the last reset
func (s *Simulation) Elapsed() float64 { return s.elapsed }
