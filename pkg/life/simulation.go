package life

import "iter"

// Option configures a Simulation.
type Option func(*options)

type options struct {
	edges   Edges
	history int
}

// WithEdges selects bounded or toroidal neighbour counting.
func WithEdges(e Edges) Option {
	return func(o *options) { o.edges = e }
}

// WithHistory sets the largest oscillation period the detector looks for.
func WithHistory(capacity int) Option {
	return func(o *options) { o.history = capacity }
}

// Simulation owns the live grid and advances it one generation at a time.
type Simulation struct {
	grid    *Grid
	index   int
	history *History
}

// New builds a simulation seeded by seed. Generation 0 is recorded in the
// history so a pattern that never changes is caught on the first step.
func New(width, height int, seed SeedFunc, opts ...Option) (*Simulation, error) {
	o := options{edges: Bounded, history: DefaultHistory}
	for _, opt := range opts {
		opt(&o)
	}
	g, err := NewGrid(width, height, seed, WithGridEdges(o.edges))
	if err != nil {
		return nil, err
	}
	return FromGrid(g, WithHistory(o.history)), nil
}

// FromGrid starts a simulation from a copy of g. Edge options are ignored; the
// grid keeps its own policy.
func FromGrid(g *Grid, opts ...Option) *Simulation {
	o := options{history: DefaultHistory}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Simulation{grid: g.Clone(), history: NewHistory(o.history)}
	s.history.Record(s.Current())
	return s
}

// Index returns the current generation number.
func (s *Simulation) Index() int { return s.index }

// Size returns the grid dimensions.
func (s *Simulation) Size() (width, height int) { return s.grid.w, s.grid.h }

// Current returns a snapshot of the live grid.
func (s *Simulation) Current() Generation { return snapshot(s.index, s.grid) }

// Step advances one generation and reports whether it repeats a recent one.
func (s *Simulation) Step() (Generation, State) {
	s.grid = Next(s.grid)
	s.index++
	gen := s.Current()
	return gen, s.history.Record(gen)
}

// Set changes one live cell. Earlier snapshots no longer describe the run, so
// the history restarts from the edited board.
func (s *Simulation) Set(row, col int, alive bool) error {
	if err := s.grid.Set(row, col, alive); err != nil {
		return err
	}
	s.history.Reset()
	s.history.Record(s.Current())
	return nil
}

// Reset reseeds the grid in place and restarts from generation 0.
func (s *Simulation) Reset(seed SeedFunc) error {
	g, err := NewGrid(s.grid.w, s.grid.h, seed, WithGridEdges(s.grid.edges))
	if err != nil {
		return err
	}
	s.grid = g
	s.index = 0
	s.history.Reset()
	s.history.Record(s.Current())
	return nil
}

// Run yields the current generation and then one generation per step. The
// sequence ends once the index reaches maxGenerations (when positive), after
// a non-running state when detectSteady is set, or when the consumer stops
// ranging. A Simulation should be ranged over once.
func (s *Simulation) Run(maxGenerations int, detectSteady bool) iter.Seq2[Generation, State] {
	return func(yield func(Generation, State) bool) {
		if !yield(s.Current(), State{Status: Running}) {
			return
		}
		for maxGenerations <= 0 || s.index < maxGenerations {
			gen, state := s.Step()
			if !yield(gen, state) {
				return
			}
			if detectSteady && state.Done() {
				return
			}
		}
	}
}
