package skiplist

import (
	"math/bits"
	"math/rand/v2"
)

// levelBits is log2 of the branch factor of the list, which is 4.
const levelBits = 2

func newSource(seed uint64) *rand.PCG {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// randomLevel returns the index of the topmost level of a new node, so that
// P(level >= n) = 1/4^n. A node can be at most one level above the current
// height of the list, and never above the configured maximum.
func (l *Skiplist[K, V]) randomLevel() int {
	level := bits.TrailingZeros64(l.rng.Uint64()) / levelBits

	if level > l.height {
		level = l.height
	}

	if level > l.maxHeight-1 {
		level = l.maxHeight - 1
	}

	return level
}
