//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torus-life/internal/config"
	"torus-life/internal/core"
	"torus-life/internal/pattern"
	"torus-life/internal/render"
	"torus-life/internal/sims/life"
	"torus-life/internal/ui"
)

// Game adapts a Life simulation to the ebiten.Game interface. Scheduled ticks
// are polled from Update so they run on the game loop.
type Game struct {
	sim     *life.Life
	sched   *core.FrameScheduler
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	liveColor color.Color
	deadColor color.Color

	scale int
	cells []core.Cell
}

// New constructs a Game and the simulation it drives.
func New(cfg life.Config, scale int, logger *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	sched := core.NewFrameScheduler(nil)
	sim := life.New(cfg, life.WithScheduler(sched), life.WithLogger(logger))
	size := sim.Size()
	return &Game{
		sim:       sim,
		sched:     sched,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD(sim, size.W*scale),
		overlay:   ui.NewOverlay(size, scale),
		log:       logger,
		liveColor: color.Black,
		deadColor: color.White,
		scale:     scale,
	}
}

// Update handles input and fires due ticks.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
		g.hud.SetMessage("")
	}
	g.overlay.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}

	g.sched.Poll()
	g.hud.SetLocked(!g.sim.InteractionEnabled())
	return nil
}

func (g *Game) start() {
	switch err := g.sim.Start(); {
	case err == nil:
		g.hud.SetMessage("")
	case errors.Is(err, core.ErrAlreadyComplete):
		g.hud.SetMessage("Run complete. Press R to reset.")
	case errors.Is(err, core.ErrAlreadyRunning):
		g.hud.SetMessage("Already running.")
	default:
		g.hud.SetMessage(err.Error())
	}
}

func (g *Game) click(x, y int) {
	row, col, ok := cellAt(x, y, g.scale, g.sim.Size())
	if !ok {
		return
	}
	if err := g.sim.Toggle(row, col); err != nil {
		if errors.Is(err, core.ErrInteractionLocked) {
			g.hud.SetMessage("Locked while running. Press R to reset.")
		}
		g.log.Debug("toggle rejected", "row", row, "col", col, "err", err)
	}
}

// Draw renders the current generation and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.cells = g.sim.Snapshot(g.cells)
	g.painter.Blit(screen, g.cells, g.liveColor, g.deadColor, g.scale)
	g.overlay.Draw(screen, g.cells)
	g.hud.Draw(screen, g.sim.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H*g.scale + ui.PanelHeight()
}

// Run opens the window and blocks until it is closed. seed, when non-nil,
// places the initial configuration before the window opens.
func Run(s *config.Settings, logger *slog.Logger, seed func(pattern.Target) error) error {
	game := New(s.Life(), s.UI.Scale, logger)
	if seed != nil {
		if err := seed(game.sim); err != nil {
			return err
		}
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(ui.Title)
	ebiten.SetTPS(s.UI.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
