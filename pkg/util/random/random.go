package random

const (
	M = uint32(2147483647) // 2^31-1
	A = uint32(16807)      // bits 14, 8, 7, 5, 2, 1, 0
)

// Random is a seedable linear congruential generator. The same seed
// always yields the same sequence.
type Random struct {
	seed uint32
}

func New(s uint32) *Random {
	r := &Random{}
	if s == 0 || s == 2147483647 {
		s = 1
	}
	r.seed = s & 0x7fffffff

	return r
}

func (r *Random) Next() uint32 {
	product := uint64(r.seed) * uint64(A)
	r.seed = uint32(product>>31) + (uint32(product) & M)

	// The first reduction may overflow by 1 bit
	if r.seed > M {
		r.seed -= M
	}

	return r.seed
}

// Returns a uniformly distributed value in the range [0..n-1]
// REQUIRES: n > 0
func (r *Random) Uniform(n int) uint32 {
	return r.Next() % uint32(n)
}

// Randomly returns true ~"1/n" of the time, and false otherwise.
// REQUIRES: n > 0
func (r *Random) OneIn(n int) bool {
	return (r.Next() % uint32(n)) == 0
}

// Float64 returns a uniformly distributed value in [0, 1).
func (r *Random) Float64() float64 {
	return float64(r.Next()-1) / float64(M-1)
}
