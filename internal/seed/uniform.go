// Package seed registers the initial-board generators available to the
// front ends.
package seed

import (
	"lifeterm/internal/core"
	pcore "lifeterm/pkg/core"
	"lifeterm/pkg/life"
)

// DefaultDensity gives every cell an even chance of starting alive.
const DefaultDensity = 0.5

// Uniform makes each cell alive independently with probability density.
func Uniform(seed int64, density float64) life.SeedFunc {
	rng := pcore.NewRNG(seed)
	return func() bool { return rng.Chance(density) }
}

func init() {
	core.Register("uniform", func(cfg core.SeedConfig) life.SeedFunc {
		return Uniform(cfg.Seed, cfg.Density)
	})
}
