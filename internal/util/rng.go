package util

import "math/rand"

// Source is the random stream a trial draws from. *rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform int in [0, n). n must be > 0.
	Intn(n int) int
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// TrialSeed derives the seed for trial i of a sweep. It depends only on the
// base seed and the trial index, so a sweep replays identically whatever the
// worker count.
func TrialSeed(base int64, i int) int64 {
	return base + int64(i)*7919
}
