package core

import (
	"errors"
	"fmt"
	"sort"

	"lifeterm/pkg/life"
)

// ErrUnknownSeeder reports a seeder name missing from the registry.
var ErrUnknownSeeder = errors.New("unknown seeder")

// SeedConfig carries what a seeder needs to lay out an initial board.
type SeedConfig struct {
	Width   int
	Height  int
	Seed    int64
	Density float64
}

// SeederFactory builds a per-cell seed source. The returned function is called
// once per cell in row-major order.
type SeederFactory func(cfg SeedConfig) life.SeedFunc

var seeders = map[string]SeederFactory{}

// Register adds a seeder factory under the provided name.
func Register(name string, f SeederFactory) {
	if name == "" || f == nil {
		return
	}
	seeders[name] = f
}

// Seeders exposes the registry of available seeder factories.
func Seeders() map[string]SeederFactory {
	return seeders
}

// SeederNames lists registered seeders in sorted order.
func SeederNames() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewSeeder looks up name and builds its seed source.
func NewSeeder(name string, cfg SeedConfig) (life.SeedFunc, error) {
	f, ok := seeders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSeeder, name, SeederNames())
	}
	return f(cfg), nil
}
