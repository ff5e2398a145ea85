package seed

import (
	"lifeterm/internal/core"
	pcore "lifeterm/pkg/core"
	"lifeterm/pkg/life"
)

// Scatter drops a random number of live cells at random positions, between
// max(w,h) and w*h/5 of them. Positions may repeat, so the final population
// can be lower than the count drawn. Small boards whose range is empty get
// min(max(w,h), w*h) drops.
func Scatter(width, height int, seed int64) life.SeedFunc {
	rng := pcore.NewRNG(seed)
	total := width * height
	if total <= 0 {
		return func() bool { return false }
	}
	lo := max(width, height)
	count := rng.Range(lo, total/5)
	count = min(count, total)

	alive := make([]bool, total)
	for i := 0; i < count; i++ {
		alive[rng.IntN(total)] = true
	}
	return cellsSeed(alive)
}

// cellsSeed replays precomputed row-major cells, then reports dead.
func cellsSeed(cells []bool) life.SeedFunc {
	i := 0
	return func() bool {
		if i >= len(cells) {
			return false
		}
		v := cells[i]
		i++
		return v
	}
}

func init() {
	core.Register("scatter", func(cfg core.SeedConfig) life.SeedFunc {
		return Scatter(cfg.Width, cfg.Height, cfg.Seed)
	})
}
