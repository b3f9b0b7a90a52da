package game

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunable simulation parameters
type Config struct {
	// AsteroidCount is the number of asteroids created on reset
	AsteroidCount int `toml:"asteroid_count"`

	// AsteroidSpeedFactor scales the unit drift direction of each asteroid
	AsteroidSpeedFactor float64 `toml:"asteroid_speed_factor"`

	// AsteroidScale is the render scale of freshly spawned asteroids
	AsteroidScale float64 `toml:"asteroid_scale"`

	// BulletSpeed is the muzzle speed added to the ship velocity
	BulletSpeed float64 `toml:"bullet_speed"`

	// BulletCooldownMs is the minimum time between two shots in milliseconds
	BulletCooldownMs float64 `toml:"bullet_cooldown_ms"`

	// BulletScale is the render scale of the shared bullet decagon
	BulletScale float64 `toml:"bullet_scale"`

	// BulletBound is the half-extent beyond which bullets despawn
	BulletBound float64 `toml:"bullet_bound"`

	// WorldBound is the half-extent of the toroidal asteroid field
	WorldBound float64 `toml:"world_bound"`

	// ShipScale is the render scale of the ship hull
	ShipScale float64 `toml:"ship_scale"`

	// ShipTurnRate is the angular speed while a turn input is held (rad/s)
	ShipTurnRate float64 `toml:"ship_turn_rate"`

	// ShipThrust is the forward acceleration while thrusting (units/s^2)
	ShipThrust float64 `toml:"ship_thrust"`

	// RecoilImpulse is subtracted along the ship's forward vector on every shot
	RecoilImpulse float64 `toml:"recoil_impulse"`

	// CannonOffsetRatio places the two cannons at ±ratio*ShipScale along the ship's right vector
	CannonOffsetRatio float64 `toml:"cannon_offset_ratio"`

	// SpawnClearance is the minimum distance from the origin for spawned asteroids
	SpawnClearance float64 `toml:"spawn_clearance"`

	// MaxDeltaTime caps the frame delta in seconds
	MaxDeltaTime float64 `toml:"max_delta_time"`
}

// DefaultConfig returns the classic asteroids tuning
func DefaultConfig() Config {
	return Config{
		AsteroidCount:       3,
		AsteroidSpeedFactor: 1.0 / 7.0,
		AsteroidScale:       0.25,
		BulletSpeed:         2.0,
		BulletCooldownMs:    250,
		BulletScale:         0.015,
		BulletBound:         1.1,
		WorldBound:          1.0,
		ShipScale:           0.125,
		ShipTurnRate:        4.0,
		ShipThrust:          1.0,
		RecoilImpulse:       0.1,
		CannonOffsetRatio:   11.0 / 15.5,
		SpawnClearance:      0.5,
		MaxDeltaTime:        0.1,
	}
}

// FireCooldown returns the bullet cooldown in seconds
func (c Config) FireCooldown() float64 {
	return c.BulletCooldownMs / 1000.0
}

// Validate reports every invalid field. The returned error matches ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, field string, value any, reason string) {
		if !ok {
			errs = append(errs, &ConfigError{Field: field, Value: value, Reason: reason})
		}
	}

	check(c.AsteroidCount >= 0, "asteroid_count", c.AsteroidCount, "must not be negative")
	check(nonNegative(c.AsteroidSpeedFactor), "asteroid_speed_factor", c.AsteroidSpeedFactor, "must not be negative")
	check(positive(c.AsteroidScale), "asteroid_scale", c.AsteroidScale, "must be positive")
	check(nonNegative(c.BulletSpeed), "bullet_speed", c.BulletSpeed, "must not be negative")
	check(nonNegative(c.BulletCooldownMs), "bullet_cooldown_ms", c.BulletCooldownMs, "must not be negative")
	check(positive(c.BulletScale), "bullet_scale", c.BulletScale, "must be positive")
	check(positive(c.BulletBound), "bullet_bound", c.BulletBound, "must be positive")
	check(positive(c.WorldBound), "world_bound", c.WorldBound, "must be positive")
	check(positive(c.ShipScale), "ship_scale", c.ShipScale, "must be positive")
	check(nonNegative(c.ShipTurnRate), "ship_turn_rate", c.ShipTurnRate, "must not be negative")
	check(nonNegative(c.ShipThrust), "ship_thrust", c.ShipThrust, "must not be negative")
	check(nonNegative(c.RecoilImpulse), "recoil_impulse", c.RecoilImpulse, "must not be negative")
	check(nonNegative(c.CannonOffsetRatio), "cannon_offset_ratio", c.CannonOffsetRatio, "must not be negative")
	check(nonNegative(c.SpawnClearance), "spawn_clearance", c.SpawnClearance, "must not be negative")
	// Rejection sampling in [-b, b]^2 only terminates if some of the square lies outside the clearance disk
	check(!positive(c.WorldBound) || c.SpawnClearance < c.WorldBound, "spawn_clearance", c.SpawnClearance, "must be smaller than world_bound (conservative limit, sampling would still end below world_bound*sqrt(2))")
	check(positive(c.MaxDeltaTime), "max_delta_time", c.MaxDeltaTime, "must be positive")

	return errors.Join(errs...)
}

// LoadConfig reads a TOML file on top of DefaultConfig and validates the result
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
