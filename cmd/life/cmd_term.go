package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"torus-life/internal/term"
)

func newTermCmd(c *cli) *cobra.Command {
	seed := &seedOptions{}
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal",
		Long: `Opens an interactive grid in the terminal.

Click cells to toggle them, press s (or Enter) to start, r to reset and
q (or Esc) to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()

			ui := term.New(screen, c.settings.Life(), c.logger)
			if err := seed.apply(ui.Sim()); err != nil {
				return err
			}
			return ui.Run()
		},
	}
	seed.bind(cmd.Flags())
	return cmd
}
