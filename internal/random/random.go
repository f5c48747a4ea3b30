package random

import "github.com/valyala/fastrand"

// Source is the subset of fastrand.RNG the engine draws from.
type Source interface {
	Uint32n(n uint32) uint32
}

var _ Source = (*fastrand.RNG)(nil)

// New returns a generator seeded from the global fastrand state, seed 0 means random.
func New(seed uint32) *fastrand.RNG {
	rng := &fastrand.RNG{}
	if seed == 0 {
		seed = fastrand.Uint32()
	}
	rng.Seed(seed)
	return rng
}

// Intn returns a value in [0, n), n <= 0 yields 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return int(src.Uint32n(uint32(n)))
}

// Chance reports true with probability percent/100.
func Chance(src Source, percent int) bool {
	return Intn(src, 100) < percent
}

// Float64 returns a value in [0, 1).
func Float64(src Source) float64 {
	return float64(src.Uint32n(1<<24)) / float64(1<<24)
}

// Shuffle permutes n items in place via swap.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, Intn(src, i+1))
	}
}
