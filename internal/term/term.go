// Package term is an interactive terminal front end driven by tcell. Cells
// are toggled with the mouse; the run is controlled from the keyboard.
package term

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"torus-life/internal/core"
	"torus-life/internal/sims/life"
)

const (
	title  = "Conway's Game of Life"
	prompt = "Click the cells to create the configuration, then press s to start."

	gridTop  = 4 // title, prompt, status, top border
	gridLeft = 1 // left border
	cellW    = 2
)

var (
	styleText   = tcell.StyleDefault
	styleTitle  = tcell.StyleDefault.Bold(true)
	styleLive   = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleDead   = tcell.StyleDefault.Background(tcell.ColorWhite)
	styleFrame  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleLocked = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// UI renders a simulation to a tcell screen and feeds it user input.
type UI struct {
	screen  tcell.Screen
	sim     *life.Life
	log     *slog.Logger
	cells   []core.Cell
	held    bool
	message string
}

// New builds a UI and the simulation it drives. Scheduled ticks are posted
// to the screen's event queue so they run on the event loop.
func New(screen tcell.Screen, cfg life.Config, logger *slog.Logger) *UI {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	u := &UI{screen: screen, log: logger}
	u.sim = life.New(cfg,
		life.WithScheduler(eventScheduler{screen: screen}),
		life.WithLogger(logger),
	)
	return u
}

// Sim exposes the driven simulation.
func (u *UI) Sim() *life.Life { return u.sim }

// Run processes events until the user quits or the screen is finalized. The
// caller owns screen initialization and teardown.
func (u *UI) Run() error {
	u.screen.EnableMouse(tcell.MouseButtonEvents)
	u.screen.HideCursor()
	for {
		u.Draw()
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if u.Handle(ev) {
			return nil
		}
	}
}

// Handle applies one event and reports whether the UI should exit.
func (u *UI) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return u.handleKey(ev)
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
		}
	case *tcell.EventResize:
		u.screen.Sync()
	}
	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		u.start()
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q', 'Q':
		return true
	case 's', 'S':
		u.start()
	case 'r', 'R':
		u.sim.Reset()
		u.message = ""
	}
	return false
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	edge := pressed && !u.held
	u.held = pressed
	if !edge {
		return
	}
	row, col, ok := u.cellAt(ev.Position())
	if !ok {
		return
	}
	if err := u.sim.Toggle(row, col); err != nil {
		if errors.Is(err, core.ErrInteractionLocked) {
			u.message = "locked while running: press r to reset"
		}
		u.log.Debug("toggle rejected", "row", row, "col", col, "err", err)
		return
	}
	u.message = ""
}

func (u *UI) start() {
	switch err := u.sim.Start(); {
	case err == nil:
		u.message = ""
	case errors.Is(err, core.ErrAlreadyComplete):
		u.message = "run complete: press r to reset"
	case errors.Is(err, core.ErrAlreadyRunning):
		u.message = "already running"
	default:
		u.message = err.Error()
	}
}

// cellAt maps a screen position to grid coordinates.
func (u *UI) cellAt(x, y int) (int, int, bool) {
	size := u.sim.Size()
	if x < gridLeft || y < gridTop {
		return 0, 0, false
	}
	row := y - gridTop
	col := (x - gridLeft) / cellW
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}

// Draw paints the header, status line and grid, then shows the screen.
func (u *UI) Draw() {
	s := u.screen
	s.Clear()

	size := u.sim.Size()
	state := u.sim.State()
	drawText(s, 0, 0, styleTitle, title)
	drawText(s, 0, 1, styleText, prompt)
	status := fmt.Sprintf("%-8s tick %d/%d  population %d  [s]tart [r]eset [q]uit",
		state, u.sim.Ticks(), u.sim.Config().MaxTicks, u.sim.Population())
	if u.message != "" {
		status += "  " + u.message
	}
	drawText(s, 0, 2, styleText, status)

	frame := styleFrame
	if !u.sim.InteractionEnabled() {
		frame = styleLocked
	}
	right := gridLeft + size.W*cellW
	bottom := gridTop + size.H
	for x := gridLeft; x < right; x++ {
		s.SetContent(x, gridTop-1, tcell.RuneHLine, nil, frame)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, frame)
	}
	for y := gridTop; y < bottom; y++ {
		s.SetContent(gridLeft-1, y, tcell.RuneVLine, nil, frame)
		s.SetContent(right, y, tcell.RuneVLine, nil, frame)
	}
	s.SetContent(gridLeft-1, gridTop-1, tcell.RuneULCorner, nil, frame)
	s.SetContent(right, gridTop-1, tcell.RuneURCorner, nil, frame)
	s.SetContent(gridLeft-1, bottom, tcell.RuneLLCorner, nil, frame)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, frame)

	u.cells = u.sim.Snapshot(u.cells)
	for r := 0; r < size.H; r++ {
		for c := 0; c < size.W; c++ {
			style := styleDead
			if u.cells[r*size.W+c] == core.Live {
				style = styleLive
			}
			x := gridLeft + c*cellW
			for i := 0; i < cellW; i++ {
				s.SetContent(x+i, gridTop+r, ' ', nil, style)
			}
		}
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

// eventScheduler fires callbacks by posting them to the screen's event queue.
type eventScheduler struct {
	screen tcell.Screen
}

func (s eventScheduler) AfterFunc(d time.Duration, f func()) core.Handle {
	return time.AfterFunc(d, func() {
		s.screen.PostEventWait(tcell.NewEventInterrupt(f))
	})
}
