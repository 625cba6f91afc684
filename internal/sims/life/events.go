package life

import "torus-life/internal/core"

// State is the lifecycle phase of a run.
type State int

const (
	// Idle accepts manual toggles and Start.
	Idle State = iota
	// Running advances one generation per scheduled tick.
	Running
	// Finished has reached the tick limit; only Reset leaves it.
	Finished
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// EventKind identifies what changed.
type EventKind int

const (
	CellToggled EventKind = iota
	RunStarted
	GenerationAdvanced
	RunFinished
	RunReset
)

func (k EventKind) String() string {
	switch k {
	case CellToggled:
		return "cell_toggled"
	case RunStarted:
		return "run_started"
	case GenerationAdvanced:
		return "generation_advanced"
	case RunFinished:
		return "run_finished"
	case RunReset:
		return "run_reset"
	default:
		return "unknown"
	}
}

// Event describes a change to the grid or run state. Row, Col and Cell are
// only meaningful for CellToggled.
type Event struct {
	Kind  EventKind
	Row   int
	Col   int
	Cell  core.Cell
	Tick  int
	State State
}
