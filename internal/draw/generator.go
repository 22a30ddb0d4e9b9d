package draw

import (
	"sync"
)

// DefaultTrials is the number of trial picks generated before the official one.
const DefaultTrials = 47

// Pick is one generated draw together with its provenance.
type Pick struct {
	Index    int   // trial index; the official pick uses index == trial count
	Seed     int64 // combined seed that produced the numbers
	Official bool
	Result
}

// Generator produces a run of picks from a shared chaotic value and token.
// Each pick gets a distinct time seed (base + index), which is the only
// per-pick entropy; the chaotic value and token are fixed for the run.
type Generator struct {
	Chaotic  float64
	Token    []byte
	BaseTime int64
}

// pickAt derives the pick for one trial index.
func (g *Generator) pickAt(i int, official bool) Pick {
	seed := CombineSeed(g.Chaotic, g.BaseTime+int64(i), g.Token)
	return Pick{
		Index:    i,
		Seed:     seed,
		Official: official,
		Result:   Sample(seed),
	}
}

// Run generates trials trial picks plus one official pick. Picks are
// independent given their index, so the trials are computed concurrently;
// the returned slice is ordered by index with the official pick last.
func (g *Generator) Run(trials int) []Pick {
	if trials < 0 {
		trials = 0
	}

	picks := make([]Pick, trials+1)

	var wg sync.WaitGroup
	for i := 0; i < trials; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			picks[i] = g.pickAt(i, false)
		}(i)
	}
	wg.Wait()

	picks[trials] = g.pickAt(trials, true)
	return picks
}
