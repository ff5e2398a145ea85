package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"lifeterm/internal/render"
)

// RunTerminal draws one generation per interval until the run ends or ctx is
// cancelled. Cancellation lands between generations, never mid-step.
func RunTerminal(ctx context.Context, cfg *Config, out io.Writer, logger *log.Logger) error {
	sim, err := cfg.NewSimulation()
	if err != nil {
		return err
	}
	checkTerminalSize(out, cfg.GridSize, logger)

	screen := render.NewTerminal(out)
	var tick <-chan time.Time
	if cfg.Interval > 0 {
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	first := true
	for gen, state := range sim.Run(cfg.Generations, cfg.ExitSteady) {
		if !first && tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}
		first = false

		if err := screen.Frame(gen); err != nil {
			return fmt.Errorf("draw generation %d: %w", gen.Index(), err)
		}
		if cfg.ExitSteady && state.Done() {
			return screen.Verdict(gen, state)
		}
	}
	return nil
}

// checkTerminalSize warns when stdout is a terminal too small for the board.
// Each cell takes two columns and the footer one row.
func checkTerminalSize(out io.Writer, size int, logger *log.Logger) {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	cols, rows, err := term.GetSize(int(f.Fd()))
	if err != nil {
		logger.Printf("terminal size unavailable: %v", err)
		return
	}
	if cols < 2*size || rows < size+1 {
		logger.Printf("terminal is %dx%d, a %d-cell board needs %dx%d; frames will wrap", cols, rows, size, 2*size, size+1)
	}
}
