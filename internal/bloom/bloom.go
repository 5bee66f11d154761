package bloom

import (
	"math"

	"github.com/twmb/murmur3"
)

// Filter is an implementation of a Bloom filter. It sets k bits per element.
// The bits are stored in a byte slice, so the number of bits m is always a
// multiple of 8. The k bit positions are derived from the two halves of a
// single 128-bit murmur3 hash, as described in "Less Hashing, Same
// Performance: Building a Better Bloom Filter" by Adam Kirsch and Michael
// Mitzenmacher.
type Filter struct {
	value []byte
	k     int
}

// New returns a new Bloom filter backed by value. K defines the number of
// bits set per element.
func New(value []byte, k int) *Filter {
	if len(value) == 0 {
		panic("bloom: value must not be empty")
	}

	if k < 1 {
		panic("bloom: k must be positive")
	}

	return &Filter{
		value: value,
		k:     k,
	}
}

// NewWithProbability returns a new Bloom filter sized for n expected elements
// and the false positive probability p, along with the chosen m and k.
func NewWithProbability(n int, p float64) (*Filter, int, int) {
	if n < 1 {
		n = 1
	}

	m := int(math.Ceil(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2)))
	if rem := m % 8; rem != 0 {
		m += 8 - rem
	}

	k := int(math.Round(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		k = 1
	}

	return New(make([]byte, m/8), k), m, k
}

func (bf *Filter) positions(data []byte, fn func(idx uint64) bool) {
	h1, h2 := murmur3.Sum128(data)
	m := uint64(len(bf.value) * 8)

	for i := 0; i < bf.k; i++ {
		if !fn((h1 + uint64(i)*h2) % m) {
			return
		}
	}
}

// Add adds the data to the Bloom filter. It modifies the underlying byte slice.
func (bf *Filter) Add(data []byte) {
	bf.positions(data, func(idx uint64) bool {
		bf.value[idx/8] |= 1 << (idx % 8)
		return true
	})
}

// MayContain checks if the data is in the Bloom filter. If any of the bits
// is 0, the data is definitely not in the filter. If all the bits are 1,
// the data may be in the filter, with a chance of a false positive.
func (bf *Filter) MayContain(data []byte) bool {
	found := true

	bf.positions(data, func(idx uint64) bool {
		if bf.value[idx/8]&(1<<(idx%8)) == 0 {
			found = false
		}

		return found
	})

	return found
}

// Reset clears all bits.
func (bf *Filter) Reset() {
	for i := range bf.value {
		bf.value[i] = 0
	}
}

// Bytes returns a copy of the byte slice that stores the bits.
func (bf *Filter) Bytes() []byte {
	value := make([]byte, len(bf.value))
	copy(value, bf.value)
	return value
}
