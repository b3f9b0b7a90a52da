package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every configuration violation
	ErrInvalidConfig = errors.New("game: invalid config")

	// ErrInvalidSides is returned when a polygon side count is outside [MinPolygonSides, MaxPolygonSides]
	ErrInvalidSides = errors.New("game: invalid polygon side count")

	// ErrInvalidRadius is returned for an empty or non-positive radius range
	ErrInvalidRadius = errors.New("game: invalid polygon radius range")

	// ErrNegativeCount is returned when a collection is asked for a negative number of entities
	ErrNegativeCount = errors.New("game: negative entity count")
)

// ConfigError describes a single rejected configuration field
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s = %v: %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
