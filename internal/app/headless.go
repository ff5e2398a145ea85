package app

import (
	"context"
	"fmt"
	"io"

	"github.com/cheggaaa/pb/v3"
	"github.com/gernest/wow"
	"github.com/gernest/wow/spin"

	"lifeterm/pkg/life"
)

// spinnerEvery is how many generations pass between spinner text updates.
const spinnerEvery = 100

// Summary describes how a headless run ended.
type Summary struct {
	Generations int
	Population  int
	State       life.State
}

func (s Summary) String() string {
	return fmt.Sprintf("generations: %d  population: %d  state: %s", s.Generations, s.Population, s.State)
}

// progress abstracts the bounded bar and the unbounded spinner.
type progress interface {
	advance(gen life.Generation)
	finish()
}

type barProgress struct{ bar *pb.ProgressBar }

func (p barProgress) advance(life.Generation) { p.bar.Increment() }
func (p barProgress) finish()                 { p.bar.Finish() }

type spinnerProgress struct{ w *wow.Wow }

func (p spinnerProgress) advance(gen life.Generation) {
	if gen.Index()%spinnerEvery == 0 {
		p.w.Text(fmt.Sprintf(" generation %d, population %d", gen.Index(), gen.Population()))
	}
}
func (p spinnerProgress) finish() { p.w.Stop() }

func newProgress(cfg *Config, out io.Writer) progress {
	if cfg.Generations > 0 {
		bar := pb.New(cfg.Generations).SetWriter(out)
		bar.Set("prefix", "generations ")
		bar.Start()
		return barProgress{bar: bar}
	}
	w := wow.New(out, spin.Get(spin.Dots), " searching for a steady state")
	w.Start()
	return spinnerProgress{w: w}
}

// RunHeadless advances the simulation without drawing frames, reporting
// progress to out, and prints a summary line when it ends.
func RunHeadless(ctx context.Context, cfg *Config, out io.Writer) (Summary, error) {
	sim, err := cfg.NewSimulation()
	if err != nil {
		return Summary{}, err
	}
	p := newProgress(cfg, out)

	var sum Summary
	for gen, state := range sim.Run(cfg.Generations, cfg.ExitSteady) {
		sum = Summary{Generations: gen.Index(), Population: gen.Population(), State: state}
		if gen.Index() > 0 {
			p.advance(gen)
		}
		if ctx.Err() != nil {
			break
		}
	}
	p.finish()

	if _, err := fmt.Fprintln(out, sum); err != nil {
		return sum, fmt.Errorf("write summary: %w", err)
	}
	return sum, nil
}
