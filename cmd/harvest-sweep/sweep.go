package main

import (
	"context"
	"fmt"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"pineapples/internal/sweep"

	"github.com/spf13/cobra"
)

var (
	seedCount int
	startSeed int64
	campaigns int
	clicks    int
	workers   int
	top       int
	strategy  string
)

// sweepCmd represents the sweep command
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "search seeds for the best radiator layouts",
	Long: `sweep builds one greenhouse per seed and runs click campaigns against
it on a worker pool, printing the layouts with the largest harvest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		strat, err := sweep.ParseStrategy(strategy)
		if err != nil {
			return err
		}
		seeds := make([]int64, seedCount)
		for i := range seeds {
			seeds[i] = startSeed + int64(i)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sweeping %d seeds x %d campaigns (%s, %d workers, %d clicks)\n", len(seeds), campaigns, strat, workers, clicks)
		start := time.Now()
		results, err := sweep.Run(ctx, sweep.Options{
			Config:    cfg,
			Seeds:     seeds,
			Campaigns: campaigns,
			Clicks:    clicks,
			Strategy:  strat,
			Workers:   workers,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "\nTop %d results (elapsed %s):\n", min(top, len(results)), time.Since(start).Round(time.Millisecond))
		for i := 0; i < len(results) && i < top; i++ {
			res := results[i]
			fmt.Fprintf(out, "%2d) pineapples=%d seed=%d campaign=%d size=%dx%d step=%d radiators=%v\n",
				i+1, res.Pineapples, res.Seed, res.Campaign, res.Width, res.Height, res.Step, res.Radiators)
		}
		return nil
	},
}

func init() {
	flags := sweepCmd.Flags()
	flags.IntVar(&seedCount, "seeds", 32, "number of consecutive seeds to sweep")
	flags.Int64Var(&startSeed, "start-seed", 1, "first seed")
	flags.IntVar(&campaigns, "campaigns", 16, "random campaigns per seed")
	flags.IntVar(&clicks, "clicks", 40, "clicks per campaign")
	flags.IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	flags.IntVar(&top, "top", 5, "results to print")
	flags.StringVar(&strategy, "strategy", string(sweep.StrategyRandom), "click strategy: random or greedy")
	rootCmd.AddCommand(sweepCmd)
}
