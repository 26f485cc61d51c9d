package randutil

import rand "math/rand/v2"

// New returns a *rand.Rand seeded deterministically from a single int64 so
// that shuffles and bot decisions can be replayed from a logged seed.
// rand/v2's PCG wants two 64-bit seeds; both are derived here so every call
// site gets the same reproducible sequence for a given input.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u^0x9e3779b97f4a7c15)))
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
