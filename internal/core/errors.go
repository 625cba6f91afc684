package core

import "errors"

var (
	// ErrOutOfBounds reports a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInteractionLocked reports a manual edit attempted while a run is active.
	ErrInteractionLocked = errors.New("interaction locked while run is active")
	// ErrAlreadyComplete reports a start request after the tick limit was reached.
	ErrAlreadyComplete = errors.New("run already complete")
	// ErrAlreadyRunning reports a start request while a run is in progress.
	ErrAlreadyRunning = errors.New("run already in progress")
)
