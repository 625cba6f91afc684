package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"torus-life/internal/core"
	"torus-life/internal/pattern"
	"torus-life/internal/sims/life"
)

type sweepOptions struct {
	firstSeed int64
	seeds     int
	density   float64
	workers   int
	top       int
}

type sweepResult struct {
	seed       int64
	initialPop int
	finalPop   int
	peakPop    int
	extinctAt  int // tick the population first hit zero, or -1
}

func (r sweepResult) String() string {
	extinct := "-"
	if r.extinctAt >= 0 {
		extinct = fmt.Sprint(r.extinctAt)
	}
	return fmt.Sprintf("seed=%d initial=%d final=%d peak=%d extinct=%s",
		r.seed, r.initialPop, r.finalPop, r.peakPop, extinct)
}

func newSweepCmd(c *cli) *cobra.Command {
	opts := &sweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run many random seeds and rank their outcomes",
		Long: `Runs one bounded simulation per seed, each on its own grid, and ranks
the seeds by final population. Tick delays are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd.Context(), cmd.OutOrStdout(), c.settings.Life(), opts)
		},
	}
	cmd.Flags().Int64Var(&opts.firstSeed, "first-seed", 1, "first seed of the sweep")
	cmd.Flags().IntVar(&opts.seeds, "seeds", 32, "number of consecutive seeds to run")
	cmd.Flags().Float64Var(&opts.density, "density", 0.3, "fraction of live cells in each seed")
	cmd.Flags().IntVar(&opts.workers, "workers", runtime.NumCPU(), "number of runs in flight")
	cmd.Flags().IntVar(&opts.top, "top", 5, "number of results to print")
	return cmd
}

func runSweep(ctx context.Context, w io.Writer, cfg life.Config, opts *sweepOptions) error {
	if opts.seeds <= 0 {
		return fmt.Errorf("seeds must be positive, got %d", opts.seeds)
	}
	workers := opts.workers
	if workers <= 0 {
		workers = 1
	}
	cfg.TickDelay = 0

	fmt.Fprintf(w, "Sweeping %d seeds (%d workers, %d ticks, %dx%d)\n",
		opts.seeds, workers, cfg.MaxTicks, cfg.Width, cfg.Height)

	results := make([]sweepResult, opts.seeds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	start := time.Now()
	for i := range results {
		seed := opts.firstSeed + int64(i)
		g.Go(func() error {
			res, err := runSeed(ctx, cfg, seed, opts.density)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].finalPop > results[j].finalPop })
	fmt.Fprintf(w, "\nTop %d results (elapsed %s):\n", min(opts.top, len(results)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < opts.top; i++ {
		fmt.Fprintf(w, "%2d) %s\n", i+1, results[i])
	}
	return nil
}

// runSeed drives one run to completion on a frame scheduler polled from this
// goroutine.
func runSeed(ctx context.Context, cfg life.Config, seed int64, density float64) (sweepResult, error) {
	sched := core.NewFrameScheduler(nil)
	sim := life.New(cfg, life.WithScheduler(sched))
	if err := pattern.Random(sim.Size(), seed, density).Place(sim, 0, 0); err != nil {
		return sweepResult{}, err
	}

	res := sweepResult{seed: seed, initialPop: sim.Population(), extinctAt: -1}
	res.peakPop = res.initialPop
	sim.Subscribe(func(ev life.Event) {
		if ev.Kind != life.GenerationAdvanced {
			return
		}
		pop := sim.Population()
		if pop > res.peakPop {
			res.peakPop = pop
		}
		if pop == 0 && res.extinctAt < 0 {
			res.extinctAt = ev.Tick
		}
	})

	if err := sim.Start(); err != nil {
		return sweepResult{}, err
	}
	for sim.State() == life.Running {
		if err := ctx.Err(); err != nil {
			sim.Reset()
			return sweepResult{}, err
		}
		sched.Poll()
	}
	res.finalPop = sim.Population()
	return res, nil
}
