package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"torus-life/internal/config"
	"torus-life/internal/logging"
)

// openLogger honours the logging settings. "-" writes to the command's error
// stream, except for the terminal UI, which owns the screen and discards.
func openLogger(cmd *cobra.Command, s *config.Settings) (*slog.Logger, func() error, error) {
	if s.Logging.File == "-" {
		if cmd.Name() == "term" {
			return logging.Discard(), func() error { return nil }, nil
		}
		return logging.NewLogger(s.Logging.Level, cmd.ErrOrStderr()), func() error { return nil }, nil
	}
	return logging.Open(s.Logging.Level, s.Logging.File)
}
