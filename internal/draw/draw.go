// Package draw combines entropy sources into a single seed and samples
// EuroDreams-style number picks from it.
package draw

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sort"
)

// Draw bounds.
const (
	MainCount = 6  // numbers per pick
	MainMax   = 40 // main numbers are drawn from [1, MainMax]
	BonusMax  = 5  // the bonus number is drawn from [1, BonusMax]
)

// chaosScale converts the chaotic value into an integer seed contribution.
const chaosScale = 1e6

// Result is one complete pick: six distinct main numbers sorted ascending
// plus one bonus number. Immutable once produced.
type Result struct {
	Main  [MainCount]int
	Bonus int
}

// TokenHash hashes an opaque entropy token with 64-bit FNV-1a.
//
// The hash is pinned deliberately: unlike a process-local hash it is stable
// across runs, processes and versions, so a recorded (token, time seed) pair
// always reproduces its seed. Changing the algorithm breaks every recorded
// seed and must be treated as a format change.
func TokenHash(token []byte) int64 {
	h := fnv.New64a()
	h.Write(token)
	return int64(h.Sum64())
}

// CombineSeed folds the three entropy inputs into one generator seed:
// the token hash, the time-derived integer and the scaled magnitude of the
// chaotic value. Addition wraps on overflow, which is fine for seeding.
func CombineSeed(chaotic float64, timeSeed int64, token []byte) int64 {
	return TokenHash(token) + timeSeed + int64(math.Floor(math.Abs(chaotic)*chaosScale))
}

// Sample derives one pick from a seed. The generator is constructed locally
// per call, so Sample is safe to call from concurrent goroutines.
//
// Draw order is part of the contract: the six main numbers are taken without
// replacement first, then the bonus, because both consume generator state
// sequentially. Same seed, same Result.
func Sample(seed int64) Result {
	rng := rand.New(rand.NewSource(seed))

	var r Result
	perm := rng.Perm(MainMax)
	for i := 0; i < MainCount; i++ {
		r.Main[i] = perm[i] + 1
	}
	sort.Ints(r.Main[:])

	r.Bonus = rng.Intn(BonusMax) + 1
	return r
}
