package main

import (
	"github.com/spf13/cobra"

	"torus-life/internal/app"
)

func newGUICmd(c *cli) *cobra.Command {
	seed := &seedOptions{}
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Play in a window (requires the ebiten build tag)",
		Long: `Opens a window showing the grid.

Click cells to toggle them, press S (or Enter) to start, R to reset and
Q (or Esc) to quit. Build with -tags ebiten to enable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(c.settings, c.logger, seed.apply)
		},
	}
	seed.bind(cmd.Flags())
	return cmd
}
