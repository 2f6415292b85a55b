package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/kalebalebachew/holdem-engine/internal/randutil"
	"github.com/kalebalebachew/holdem-engine/poker"
)

// SimulateCmd deals random 7-card hands across a worker pool and reports
// the observed category distribution. The evaluator is pure, so workers
// share nothing but the result counters.
type SimulateCmd struct {
	Hands   int   `default:"100000" help:"Number of hands to evaluate"`
	Workers int   `default:"4" help:"Concurrent workers"`
	Seed    int64 `default:"0" help:"RNG seed (0 uses the current time)"`
}

func (c *SimulateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{})

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if c.Workers < 1 {
		c.Workers = 1
	}

	logger.Info("simulating", "hands", c.Hands, "workers", c.Workers, "seed", seed)
	start := time.Now()

	var mu sync.Mutex
	counts := make(map[poker.HandCategory]int, 10)

	var g errgroup.Group
	for w := 0; w < c.Workers; w++ {
		hands := c.Hands / c.Workers
		if w == 0 {
			hands += c.Hands % c.Workers
		}
		// every worker gets its own derived seed and deck
		rng := randutil.New(seed + int64(w))

		g.Go(func() error {
			local := make(map[poker.HandCategory]int, 10)
			deck, err := poker.NewDeck()
			if err != nil {
				return err
			}

			for i := 0; i < hands; i++ {
				deck.Shuffle(rng)
				cards, err := deck.Deal(7)
				if err != nil {
					return err
				}
				rank, err := poker.Evaluate(cards)
				if err != nil {
					return err
				}
				local[rank.Category]++
			}

			mu.Lock()
			for category, n := range local {
				counts[category] += n
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%d hands in %s", c.Hands, time.Since(start).Round(time.Millisecond))))
	for category := poker.RoyalFlush; category >= poker.HighCard; category-- {
		n := counts[category]
		fmt.Printf("%-14s %9d  %6.3f%%\n", category, n, 100*float64(n)/float64(c.Hands))
	}
	return nil
}
