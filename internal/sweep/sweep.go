// Package sweep searches for radiator layouts that maximise the harvest of
// seeded greenhouses. Campaigns run on a worker pool; each worker owns the
// models it evolves.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"pineapples/internal/sims/greenhouse"
	pcore "pineapples/pkg/core"
	"pineapples/pkg/garden"
)

// Strategy picks which cells a campaign clicks.
type Strategy string

const (
	// StrategyRandom clicks uniformly random cells.
	StrategyRandom Strategy = "random"
	// StrategyGreedy clicks whichever cell raises the harvest most, stopping
	// when no click helps.
	StrategyGreedy Strategy = "greedy"
)

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyRandom, StrategyGreedy:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

// Options configures a sweep.
type Options struct {
	Config    greenhouse.Config
	Seeds     []int64
	Campaigns int
	Clicks    int
	Strategy  Strategy
	Workers   int
}

// Result is the best state a campaign reached.
type Result struct {
	Seed          int64
	Campaign      int
	Width, Height int
	Pineapples    uint32
	Step          int
	Radiators     []garden.Coord
}

type job struct {
	seed     int64
	campaign int
}

// Run executes every (seed, campaign) pair and returns the results ordered by
// harvest, best first. Ties keep seed then campaign order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if len(opts.Seeds) == 0 {
		return nil, errors.New("sweep needs at least one seed")
	}
	if opts.Clicks <= 0 {
		return nil, errors.New("sweep needs a positive click budget")
	}
	if opts.Strategy == "" {
		opts.Strategy = StrategyRandom
	}
	if _, err := ParseStrategy(string(opts.Strategy)); err != nil {
		return nil, err
	}
	campaigns := opts.Campaigns
	if campaigns <= 0 || opts.Strategy == StrategyGreedy {
		campaigns = 1
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan job)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := runCampaign(opts, j)
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range opts.Seeds {
			for c := 0; c < campaigns; c++ {
				select {
				case jobs <- job{seed: seed, campaign: c}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	order := map[int64]int{}
	for i, seed := range opts.Seeds {
		if _, ok := order[seed]; !ok {
			order[seed] = i
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if a.Pineapples != b.Pineapples {
			return a.Pineapples > b.Pineapples
		}
		if order[a.Seed] != order[b.Seed] {
			return order[a.Seed] < order[b.Seed]
		}
		return a.Campaign < b.Campaign
	})
	return all, nil
}

func runCampaign(opts Options, j job) Result {
	m := greenhouse.BuildModel(opts.Config, j.seed)
	width, height := m.Grid.Dimensions()
	res := Result{Seed: j.seed, Campaign: j.campaign, Width: width, Height: height}
	record := func(step int, m garden.Model) {
		res.Pineapples = m.Grid.TotalGrowth()
		res.Step = step
		res.Radiators = radiators(m.Grid)
	}
	record(0, m)

	switch opts.Strategy {
	case StrategyGreedy:
		for step := 1; step <= opts.Clicks; step++ {
			next, ok := bestClick(m)
			if !ok {
				break
			}
			m = next
			record(step, m)
		}
	default:
		rng := pcore.NewRNG(campaignSeed(j))
		for step := 1; step <= opts.Clicks; step++ {
			m = garden.Update(m, garden.Increment{Row: rng.IntRange(0, height), Col: rng.IntRange(0, width)})
			if growth := m.Grid.TotalGrowth(); growth > res.Pineapples {
				record(step, m)
			}
		}
	}
	return res
}

func campaignSeed(j job) int64 {
	return j.seed*7919 + int64(j.campaign)
}

// bestClick returns the model after the single click that raises the harvest
// most. ok is false when no click improves on the current harvest.
func bestClick(m garden.Model) (garden.Model, bool) {
	best := m
	bestGrowth := m.Grid.TotalGrowth()
	found := false
	for c := range m.Grid.All() {
		next := garden.Update(m, garden.Increment{Row: c.Row, Col: c.Col})
		if growth := next.Grid.TotalGrowth(); growth > bestGrowth {
			best, bestGrowth, found = next, growth, true
		}
	}
	return best, found
}

func radiators(g *garden.Grid) []garden.Coord {
	var out []garden.Coord
	for c, cell := range g.All() {
		if cell.Radiators > 0 {
			out = append(out, c)
		}
	}
	return out
}
