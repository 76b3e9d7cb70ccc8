package spawn

import (
	"errors"
	"math"

	"github.com/vovakirdan/dodge-creeps/internal/core"
)

// Default kinematics.
const (
	DefaultMinSpeed = 150.0
	DefaultMaxSpeed = 250.0
	DefaultJitter   = math.Pi / 4
)

// Random is a source of uniform floats in [0, 1). *math/rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// RandRange returns a uniform value in [lo, hi).
func RandRange(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Enemy describes one mob at the moment it is spawned.
type Enemy struct {
	Position core.Vec2
	Heading  float64 // Radians
	Speed    float64 // Units per second
}

// Velocity returns the enemy's velocity vector.
func (e Enemy) Velocity() core.Vec2 {
	return core.V(e.Speed, 0).Rotated(e.Heading)
}

// Spawner creates enemies at random points of a path, heading inward.
type Spawner struct {
	path     Path
	rng      Random
	minSpeed float64
	maxSpeed float64
	jitter   float64
}

// Option configures a Spawner.
type Option func(*Spawner)

// WithSpeedRange sets the uniform speed range.
func WithSpeedRange(lo, hi float64) Option {
	return func(s *Spawner) {
		s.minSpeed, s.maxSpeed = lo, hi
	}
}

// WithJitter sets the maximum heading deviation from the path normal.
func WithJitter(j float64) Option {
	return func(s *Spawner) {
		s.jitter = math.Abs(j)
	}
}

// NewSpawner creates a spawner. Both the path and the random source are required.
func NewSpawner(path Path, rng Random, opts ...Option) (*Spawner, error) {
	if path == nil {
		return nil, errors.New("spawn: nil path")
	}
	if rng == nil {
		return nil, errors.New("spawn: nil random source")
	}

	s := &Spawner{
		path:     path,
		rng:      rng,
		minSpeed: DefaultMinSpeed,
		maxSpeed: DefaultMaxSpeed,
		jitter:   DefaultJitter,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxSpeed < s.minSpeed {
		s.minSpeed, s.maxSpeed = s.maxSpeed, s.minSpeed
	}
	return s, nil
}

// SetSpeedRange changes the speed range for subsequent spawns.
func (s *Spawner) SetSpeedRange(lo, hi float64) {
	if hi < lo {
		lo, hi = hi, lo
	}
	s.minSpeed, s.maxSpeed = lo, hi
}

// SpeedRange returns the current speed range.
func (s *Spawner) SpeedRange() (lo, hi float64) {
	return s.minSpeed, s.maxSpeed
}

// Spawn returns a new enemy. Every call draws fresh random values.
func (s *Spawner) Spawn() Enemy {
	pos, tangent := s.path.Sample(s.rng.Float64())

	heading := tangent + math.Pi/2
	heading += RandRange(s.rng, -s.jitter, s.jitter)

	return Enemy{
		Position: pos,
		Heading:  heading,
		Speed:    RandRange(s.rng, s.minSpeed, s.maxSpeed),
	}
}
