package seed

import (
	"slices"

	"github.com/aquilax/go-perlin"

	"lifeterm/internal/core"
	"lifeterm/pkg/life"
)

const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinOct   = 3
	// perlinScale is the number of cells per unit of noise space.
	perlinScale = 6.0
)

// Perlin seeds clustered blobs from 2D Perlin noise. The cells with the
// highest noise are alive, density picking what fraction of the board that is.
func Perlin(width, height int, seed int64, density float64) life.SeedFunc {
	total := width * height
	if total <= 0 || density <= 0 {
		return func() bool { return false }
	}
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOct, seed)
	noise := make([]float64, total)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			noise[y*width+x] = p.Noise2D(float64(x)/perlinScale, float64(y)/perlinScale)
		}
	}

	sorted := slices.Clone(noise)
	slices.Sort(sorted)
	cut := int((1 - min(density, 1)) * float64(total))
	cut = min(cut, total-1)
	threshold := sorted[cut]

	alive := make([]bool, total)
	for i, v := range noise {
		alive[i] = v >= threshold
	}
	return cellsSeed(alive)
}

func init() {
	core.Register("perlin", func(cfg core.SeedConfig) life.SeedFunc {
		return Perlin(cfg.Width, cfg.Height, cfg.Seed, cfg.Density)
	})
}
