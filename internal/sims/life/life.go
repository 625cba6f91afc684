package life

import (
	"fmt"
	"log/slog"
	"sync"

	"torus-life/internal/core"
)

// Life implements Conway's Game of Life (B3/S23) on a toroidal grid and owns
// the bounded run that advances it one generation per scheduled tick.
type Life struct {
	mu   sync.Mutex
	cfg  Config
	grid *core.Grid
	nxt  []core.Cell

	state   State
	ticks   int
	epoch   uint64
	pending core.Handle

	sched     core.Scheduler
	log       *slog.Logger
	listeners []func(Event)
}

// Option customizes a Life at construction.
type Option func(*Life)

// WithScheduler sets the facility that fires delayed ticks. The default is
// core.TimerScheduler.
func WithScheduler(s core.Scheduler) Option {
	return func(l *Life) {
		if s != nil {
			l.sched = s
		}
	}
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Life) {
		if logger != nil {
			l.log = logger
		}
	}
}

// WithListener registers fn as if by Subscribe.
func WithListener(fn func(Event)) Option {
	return func(l *Life) {
		if fn != nil {
			l.listeners = append(l.listeners, fn)
		}
	}
}

// New returns an idle, all-dead simulation. Non-positive dimensions are
// clamped to 1 and negative limits to 0.
func New(cfg Config, opts ...Option) *Life {
	grid := core.NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	if cfg.MaxTicks < 0 {
		cfg.MaxTicks = 0
	}
	if cfg.TickDelay < 0 {
		cfg.TickDelay = 0
	}
	l := &Life{
		cfg:   cfg,
		grid:  grid,
		nxt:   make([]core.Cell, grid.W*grid.H),
		sched: core.TimerScheduler{},
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Config returns the construction-time configuration.
func (l *Life) Config() Config { return l.cfg }

// State returns the current lifecycle phase.
func (l *Life) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Ticks returns how many generations the current run has applied.
func (l *Life) Ticks() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}

// InteractionEnabled reports whether manual toggles are accepted.
func (l *Life) InteractionEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == Idle
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.grid.Population()
}

// Get returns the state at (row, col).
func (l *Life) Get(row, col int) (core.Cell, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.grid.Get(row, col)
}

// Snapshot copies the current generation into dst in row-major order.
func (l *Life) Snapshot(dst []core.Cell) []core.Cell {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.grid.Snapshot(dst)
}

// Subscribe registers fn to receive change events. Listeners run after the
// change is committed, outside the simulation lock.
func (l *Life) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	l.listeners = append(l.listeners, fn)
	l.mu.Unlock()
}

// Toggle flips the cell at (row, col). It fails with core.ErrInteractionLocked
// once a run has started and with core.ErrOutOfBounds for invalid coordinates.
func (l *Life) Toggle(row, col int) error {
	l.mu.Lock()
	if l.state != Idle {
		l.mu.Unlock()
		return fmt.Errorf("toggle (%d,%d): %w", row, col, core.ErrInteractionLocked)
	}
	cur, err := l.grid.Get(row, col)
	if err != nil {
		l.mu.Unlock()
		return fmt.Errorf("toggle: %w", err)
	}
	next := cur.Flip()
	_ = l.grid.Set(row, col, next)
	l.log.Debug("cell toggled", "row", row, "col", col, "from", cur, "to", next)
	ev := Event{Kind: CellToggled, Row: row, Col: col, Cell: next, State: l.state}
	l.mu.Unlock()

	l.notify(ev)
	return nil
}

// Start locks manual interaction, applies the first generation immediately and
// schedules the rest of the run.
func (l *Life) Start() error {
	l.mu.Lock()
	switch l.state {
	case Running:
		l.mu.Unlock()
		return core.ErrAlreadyRunning
	case Finished:
		l.mu.Unlock()
		return core.ErrAlreadyComplete
	}
	if l.ticks >= l.cfg.MaxTicks {
		ticks := l.ticks
		l.mu.Unlock()
		return fmt.Errorf("%w: %d of %d ticks applied", core.ErrAlreadyComplete, ticks, l.cfg.MaxTicks)
	}
	l.state = Running
	l.log.Info("run started", "population", l.grid.Population(), "max_ticks", l.cfg.MaxTicks, "tick_delay", l.cfg.TickDelay)
	events := []Event{{Kind: RunStarted, Tick: l.ticks, State: Running}}
	events = append(events, l.advance()...)
	epoch := l.epoch
	l.mu.Unlock()

	l.notify(events...)
	l.scheduleNext(epoch)
	return nil
}

// Tick advances the running simulation by one generation and reschedules the
// next tick from now. It does nothing and returns false unless the run is
// in progress.
func (l *Life) Tick() bool {
	l.mu.Lock()
	if l.state != Running {
		l.mu.Unlock()
		return false
	}
	l.cancelPending()
	events := l.advance()
	epoch := l.epoch
	l.mu.Unlock()

	l.notify(events...)
	l.scheduleNext(epoch)
	return true
}

// Reset cancels any pending tick, clears the grid, zeroes the tick counter
// and re-enables manual interaction.
func (l *Life) Reset() {
	l.mu.Lock()
	l.cancelPending()
	prev := l.state
	l.grid.Clear()
	l.ticks = 0
	l.state = Idle
	l.log.Info("run reset", "from", prev)
	l.mu.Unlock()

	l.notify(Event{Kind: RunReset, State: Idle})
}

// fire is the scheduled entry point; callbacks from a cancelled or replaced
// schedule carry a stale epoch and are dropped.
func (l *Life) fire(epoch uint64) {
	l.mu.Lock()
	if epoch != l.epoch || l.state != Running {
		l.mu.Unlock()
		return
	}
	l.pending = nil
	events := l.advance()
	l.mu.Unlock()

	l.notify(events...)
	l.scheduleNext(epoch)
}

// advance applies one generation. Callers hold l.mu with the run in progress
// and call scheduleNext after notifying.
func (l *Life) advance() []Event {
	l.step()
	l.ticks++
	if l.ticks >= l.cfg.MaxTicks {
		l.state = Finished
		l.log.Info("run finished", "ticks", l.ticks, "population", l.grid.Population())
		return []Event{
			{Kind: GenerationAdvanced, Tick: l.ticks, State: Finished},
			{Kind: RunFinished, Tick: l.ticks, State: Finished},
		}
	}
	l.log.Debug("generation advanced", "tick", l.ticks, "population", l.grid.Population())
	return []Event{{Kind: GenerationAdvanced, Tick: l.ticks, State: Running}}
}

// step computes every next state from the current generation into the spare
// buffer before swapping it in.
func (l *Life) step() {
	g := l.grid
	for r := 0; r < g.H; r++ {
		for c := 0; c < g.W; c++ {
			cur, _ := g.Get(r, c)
			l.nxt[g.Index(r, c)] = nextState(cur, g.CountLiveNeighbors(r, c))
		}
	}
	l.nxt = g.Swap(l.nxt)
}

// scheduleNext arms the next tick once listeners have seen the generation
// applied under epoch. A Reset or manual Tick in between changes the epoch
// and leaves scheduling to whoever made the change.
func (l *Life) scheduleNext(epoch uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != Running || l.epoch != epoch || l.pending != nil {
		return
	}
	l.epoch++
	next := l.epoch
	l.pending = l.sched.AfterFunc(l.cfg.TickDelay, func() { l.fire(next) })
}

func (l *Life) cancelPending() {
	if l.pending != nil {
		l.pending.Stop()
		l.pending = nil
	}
	l.epoch++
}

func (l *Life) notify(events ...Event) {
	l.mu.Lock()
	listeners := append([]func(Event){}, l.listeners...)
	l.mu.Unlock()
	for _, ev := range events {
		for _, fn := range listeners {
			fn(ev)
		}
	}
}

// nextState applies B3/S23 to a cell with n live neighbors.
func nextState(cell core.Cell, n int) core.Cell {
	if cell == core.Live {
		if n == 2 || n == 3 {
			return core.Live
		}
		return core.Dead
	}
	if n == 3 {
		return core.Live
	}
	return core.Dead
}
