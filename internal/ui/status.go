package ui

import (
	"fmt"

	"torus-life/internal/core"
)

const (
	// Title heads the status panel.
	Title = "Conway's Game of Life"
	// Prompt tells the user how to seed and start a run.
	Prompt = "Click cells, then press S to start. R resets."
)

// StatusLines formats the panel text for a parameter snapshot. An optional
// message is appended as its own line.
func StatusLines(snap core.ParameterSnapshot, message string) []string {
	value := func(key string) string {
		if p, ok := snap.Lookup(key); ok {
			return p.Value
		}
		return "--"
	}
	lines := []string{
		Title,
		Prompt,
		fmt.Sprintf("%s  tick %s/%s  pop %s", value("state"), value("tick"), value("max_ticks"), value("population")),
	}
	if message != "" {
		lines = append(lines, message)
	}
	return lines
}
