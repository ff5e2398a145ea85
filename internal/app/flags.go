package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"lifeterm/internal/core"
	"lifeterm/pkg/life"
)

// ErrInvalidConfig reports a flag value outside its accepted range.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// MinGridSize and MaxGridSize bound the -grid-size flag.
	MinGridSize = 1
	MaxGridSize = 100
)

// Config represents the command-line parameters for the application.
type Config struct {
	GridSize    int
	ExitSteady  bool
	Generations int
	Interval    time.Duration
	Seed        int64
	Seeder      string
	Density     float64
	Wrap        bool
	History     int
	Headless    bool

	// GUI only.
	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		GridSize: 30,
		Interval: 50 * time.Millisecond,
		Seed:     time.Now().UnixNano(),
		Seeder:   "uniform",
		Density:  0.5,
		History:  life.DefaultHistory,
		Scale:    12,
		TPS:      60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.GridSize, "grid-size", c.GridSize, "grid width and height (1-100)")
	fs.IntVar(&c.GridSize, "g", c.GridSize, "shorthand for -grid-size")
	fs.BoolVar(&c.ExitSteady, "exit-steady", c.ExitSteady, "stop at a steady state or oscillation")
	fs.BoolVar(&c.ExitSteady, "e", c.ExitSteady, "shorthand for -exit-steady")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs until interrupted)")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board")
	fs.StringVar(&c.Seeder, "seeder", c.Seeder, "initial board generator (uniform, scatter, perlin)")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive at start, in (0,1]")
	fs.BoolVar(&c.Wrap, "wrap", c.Wrap, "wrap neighbours around the edges")
	fs.IntVar(&c.History, "history", c.History, "longest oscillation period to detect")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "skip drawing and report progress instead")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (GUI)")
}

// Validate checks every field against its accepted range.
func (c *Config) Validate() error {
	switch {
	case c.GridSize < MinGridSize || c.GridSize > MaxGridSize:
		return fmt.Errorf("%w: grid size must be between %d and %d, but got %d", ErrInvalidConfig, MinGridSize, MaxGridSize, c.GridSize)
	case c.Generations < 0:
		return fmt.Errorf("%w: generations must not be negative, got %d", ErrInvalidConfig, c.Generations)
	case c.Interval < 0:
		return fmt.Errorf("%w: interval must not be negative, got %v", ErrInvalidConfig, c.Interval)
	case c.Density <= 0 || c.Density > 1:
		return fmt.Errorf("%w: density must be in (0,1], got %g", ErrInvalidConfig, c.Density)
	case c.History < 1:
		return fmt.Errorf("%w: history must be at least 1, got %d", ErrInvalidConfig, c.History)
	case c.Headless && c.Generations == 0 && !c.ExitSteady:
		return fmt.Errorf("%w: -headless needs -generations or -exit-steady to finish", ErrInvalidConfig)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale must be positive, got %d", ErrInvalidConfig, c.Scale)
	case c.TPS < 1:
		return fmt.Errorf("%w: tps must be positive, got %d", ErrInvalidConfig, c.TPS)
	}
	if _, ok := core.Seeders()[c.Seeder]; !ok {
		return fmt.Errorf("%w: %w %q (have %v)", ErrInvalidConfig, core.ErrUnknownSeeder, c.Seeder, core.SeederNames())
	}
	return nil
}

// Edges maps -wrap onto the neighbour policy.
func (c *Config) Edges() life.Edges {
	if c.Wrap {
		return life.Toroidal
	}
	return life.Bounded
}

// SeedFunc builds the configured seeder for the given seed.
func (c *Config) SeedFunc(seed int64) (life.SeedFunc, error) {
	return core.NewSeeder(c.Seeder, core.SeedConfig{
		Width:   c.GridSize,
		Height:  c.GridSize,
		Seed:    seed,
		Density: c.Density,
	})
}

// NewSimulation validates c and builds a seeded simulation.
func (c *Config) NewSimulation() (*life.Simulation, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	seed, err := c.SeedFunc(c.Seed)
	if err != nil {
		return nil, err
	}
	return life.New(c.GridSize, c.GridSize, seed, life.WithEdges(c.Edges()), life.WithHistory(c.History))
}
