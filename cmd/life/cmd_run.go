package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"github.com/spf13/cobra"

	"torus-life/internal/core"
	"torus-life/internal/pattern"
	"torus-life/internal/sims/life"
)

func newRunCmd(c *cli) *cobra.Command {
	seed := &seedOptions{}
	var finalOnly bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a seeded simulation without a UI",
		Long: `Seeds the grid, runs it to the tick limit on real timers and prints
every generation as plaintext ('.' dead, 'O' live).

Interrupting the run resets it and exits.`,
		Example: `  life run --pattern glider --max-ticks 8 --tick-delay 100ms
  life run --random --seed 7 --width 40 --height 40 --final`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runHeadless(ctx, cmd.OutOrStdout(), c, seed, finalOnly)
		},
	}
	seed.bind(cmd.Flags())
	cmd.Flags().BoolVar(&finalOnly, "final", false, "print only the last generation")
	return cmd
}

func runHeadless(ctx context.Context, w io.Writer, c *cli, seed *seedOptions, finalOnly bool) error {
	done := make(chan struct{})
	var (
		mu      sync.Mutex
		stopped bool
		cells   []core.Cell
		werr    error
	)

	sim := life.New(c.settings.Life(), life.WithLogger(c.logger))
	size := sim.Size()
	// printGen runs on timer goroutines and must not write once runHeadless
	// has returned.
	printGen := func(tick int) {
		mu.Lock()
		defer mu.Unlock()
		if stopped || werr != nil {
			return
		}
		cells = sim.Snapshot(cells)
		_, werr = fmt.Fprintf(w, "generation %d\n%s", tick, pattern.Encode(cells, size))
	}

	if err := seed.apply(sim); err != nil {
		return err
	}
	if !finalOnly {
		printGen(0)
	}
	sim.Subscribe(func(ev life.Event) {
		switch ev.Kind {
		case life.GenerationAdvanced:
			if !finalOnly || ev.State == life.Finished {
				printGen(ev.Tick)
			}
		case life.RunFinished:
			close(done)
		}
	})

	if err := sim.Start(); err != nil {
		return fmt.Errorf("starting run: %w", err)
	}
	select {
	case <-done:
	case <-ctx.Done():
		mu.Lock()
		stopped = true
		mu.Unlock()
		sim.Reset()
		return ctx.Err()
	}
	mu.Lock()
	err := werr
	mu.Unlock()
	if err != nil {
		return fmt.Errorf("writing generation: %w", err)
	}
	c.logger.Info("run complete", "ticks", sim.Ticks(), "population", sim.Population())
	return nil
}
