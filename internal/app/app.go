//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"lifeterm/internal/core"
	"lifeterm/internal/render"
	"lifeterm/internal/ui"
	pcore "lifeterm/pkg/core"
	"lifeterm/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life simulation to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	sim     *life.Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	logger  *log.Logger
	reseed  *pcore.RNG

	onColor  color.Color
	offColor color.Color

	gen      life.Generation
	state    life.State
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game from a validated configuration.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	sim, err := cfg.NewSimulation()
	if err != nil {
		return nil, err
	}
	w, h := sim.Size()
	return &Game{
		cfg:      cfg,
		sim:      sim,
		painter:  render.NewGridPainter(w, h),
		hud:      ui.NewHUD(w * cfg.Scale),
		pacer:    core.NewFixedStep(cfg.Interval),
		logger:   logger,
		reseed:   pcore.NewRNG(cfg.Seed),
		onColor:  color.White,
		offColor: color.Black,
		gen:      sim.Current(),
		seed:     cfg.Seed,
	}, nil
}

// Reset reseeds the board with the provided seed.
func (g *Game) Reset(seed int64) {
	fn, err := g.cfg.SeedFunc(seed)
	if err == nil {
		err = g.sim.Reset(fn)
	}
	if err != nil {
		g.logger.Printf("reset with seed %d: %v", seed, err)
		return
	}
	g.seed = seed
	g.gen = g.sim.Current()
	g.state = life.State{}
	g.tickOnce = false
}

// Update handles input and advances the simulation when a step is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(g.reseed.Int64())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleAtCursor()
	}

	finished := g.cfg.ExitSteady && g.state.Done()
	if g.cfg.Generations > 0 && g.gen.Index() >= g.cfg.Generations {
		finished = true
	}
	due := g.pacer.ShouldStep(time.Now())
	if finished || (g.paused && !g.tickOnce) || (!due && !g.tickOnce) {
		return nil
	}
	g.gen, g.state = g.sim.Step()
	g.tickOnce = false
	return nil
}

func (g *Game) toggleAtCursor() {
	x, y := ebiten.CursorPosition()
	row, col := y/g.cfg.Scale, x/g.cfg.Scale
	alive, err := g.gen.Alive(row, col)
	if err != nil {
		return
	}
	if err := g.sim.Set(row, col, !alive); err != nil {
		return
	}
	g.gen = g.sim.Current()
	g.state = life.State{}
}

// Draw renders the current generation and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.gen, g.onColor, g.offColor, g.cfg.Scale)
	w, h := g.sim.Size()
	g.hud.Draw(screen, h*g.cfg.Scale, ui.Status{
		Generation: g.gen.Index(),
		Population: g.gen.Population(),
		Cells:      w * h,
		State:      g.state,
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sim.Size()
	return w * g.cfg.Scale, h*g.cfg.Scale + ui.Height
}
