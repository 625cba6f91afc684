package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"torus-life/internal/config"
)

var version = "0.1.0-dev"

// cli carries state shared by every subcommand.
type cli struct {
	configPath string
	flagged    *config.Settings
	settings   *config.Settings
	logger     *slog.Logger
	closeLog   func() error
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{flagged: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "Toroidal Conway's Game of Life",
		Long: `life runs Conway's Game of Life on a fixed-size grid whose edges wrap.

Seed the grid by clicking cells (or with --pattern), then start a run that
advances one generation per tick until the tick limit is reached.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.closeLog != nil {
				return c.closeLog()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML settings file")
	c.flagged.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newVersionCmd(),
		newTermCmd(c),
		newGUICmd(c),
		newRunCmd(c),
		newSweepCmd(c),
	)
	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	s, err := config.Resolve(c.configPath, c.flagged, cmd.Flags())
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cmd, s)
	if err != nil {
		return err
	}
	c.settings, c.logger, c.closeLog = s, logger, closeLog
	c.logger.Debug("settings resolved", "width", s.Grid.Width, "height", s.Grid.Height,
		"max_ticks", s.Run.MaxTicks, "tick_delay", s.Run.TickDelay)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// The root pre-run resolves settings, which version does not need.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "life version %s\n", version)
		},
	}
}
