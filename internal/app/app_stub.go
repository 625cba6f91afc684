//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"torus-life/internal/config"
	"torus-life/internal/pattern"
)

// ErrNoGUI reports a headless build.
var ErrNoGUI = errors.New("the gui requires building with the 'ebiten' tag (go build -tags ebiten ./cmd/life)")

// Run always reports that the GUI build tag is missing.
func Run(*config.Settings, *slog.Logger, func(pattern.Target) error) error {
	return ErrNoGUI
}
