// Package party simulates the Minotaur's birthday: servants take presents out
// of a shuffled bag, link them into a shared chain and later write thank-you
// notes, removing each present from the chain. The chain is an lfset.Set.
package party

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/metailurini/lfset"
	"github.com/metailurini/lfset/internal/partylog"
)

// Report summarises a finished run.
type Report struct {
	Seed       uint64
	Added      int64
	Thanked    int64
	SpotChecks int64
	SpotHits   int64
	Leftover   int
	Stats      lfset.Stats
	Elapsed    time.Duration
}

type party struct {
	cfg    Config
	bag    []int
	chain  *lfset.Set[int]
	logger partylog.Logger

	// addIndex and thankIndex only partition work between servants.
	addIndex   atomic.Int64
	thankIndex atomic.Int64

	added      atomic.Int64
	thanked    atomic.Int64
	spotChecks atomic.Int64
	spotHits   atomic.Int64
}

// Run executes the simulation and verifies that every present was thanked.
func Run(logger partylog.Logger, cfg Config) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}

	logger = logger.WithComponent("party")

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	p := &party{
		cfg:    cfg,
		bag:    shuffledBag(cfg.Presents, seed),
		chain:  lfset.New[int](),
		logger: logger,
	}

	logger.Info("Preparation ready, starting servants",
		"servants", cfg.Servants, "presents", cfg.Presents, "seed", seed)

	start := time.Now()

	var wg sync.WaitGroup
	for id := 1; id <= cfg.Servants; id++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.serve(newServant(id, seed, logger))
		}()
	}
	wg.Wait()

	report := Report{
		Seed:       seed,
		Added:      p.added.Load(),
		Thanked:    p.thanked.Load(),
		SpotChecks: p.spotChecks.Load(),
		SpotHits:   p.spotHits.Load(),
		Elapsed:    time.Since(start),
	}

	logger.Info("Done with all thank you notes", "elapsed", report.Elapsed)

	for _, present := range p.bag {
		if p.chain.Contains(present) {
			report.Leftover++
		}
	}
	report.Stats = p.chain.Stats()

	if report.Leftover > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrPresentsLeft, report.Leftover, cfg.Presents)
	}
	if report.Added != int64(cfg.Presents) || report.Thanked != int64(cfg.Presents) {
		return report, fmt.Errorf("%w: added %d, thanked %d, expected %d",
			ErrCountMismatch, report.Added, report.Thanked, cfg.Presents)
	}

	return report, nil
}

// shuffledBag returns the present IDs 0..n-1 in a seed-determined order.
func shuffledBag(n int, seed uint64) []int {
	bag := make([]int, n)
	for i := range bag {
		bag[i] = i
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}
