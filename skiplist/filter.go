package skiplist

import (
	"encoding/binary"

	"github.com/go-kit/log/level"
	"golang.org/x/exp/constraints"

	"github.com/maxpoletaev/dupskip/internal/bloom"
)

// KeyEncoder appends the binary form of key to buf. Keys that the comparator
// of the list considers equal must be encoded to identical bytes, otherwise
// the key filter hides stored keys from Search.
type KeyEncoder[K any] func(buf []byte, key K) []byte

func IntegerKeyEncoder[T constraints.Integer](buf []byte, key T) []byte {
	return binary.BigEndian.AppendUint64(buf, uint64(key))
}

func appendString(buf []byte, key string) []byte {
	return append(buf, key...)
}

// Encoders for the keys ordered by the comparators of the same key type.
var (
	IntKeyEncoder    KeyEncoder[int]    = IntegerKeyEncoder[int]
	Int32KeyEncoder  KeyEncoder[int32]  = IntegerKeyEncoder[int32]
	Int64KeyEncoder  KeyEncoder[int64]  = IntegerKeyEncoder[int64]
	UintKeyEncoder   KeyEncoder[uint]   = IntegerKeyEncoder[uint]
	Uint32KeyEncoder KeyEncoder[uint32] = IntegerKeyEncoder[uint32]
	Uint64KeyEncoder KeyEncoder[uint64] = IntegerKeyEncoder[uint64]
	StringKeyEncoder KeyEncoder[string] = appendString
)

// keyFilter is a Bloom filter over the keys of the list, so that searches
// for absent keys do not need to descend. Keys are never removed from it, so
// it only grows stale towards false positives.
type keyFilter[K any] struct {
	bloom       *bloom.Filter
	encode      KeyEncoder[K]
	probability float64
	capacity    int
	added       int
	buf         []byte
}

func newKeyFilter[K any](encode KeyEncoder[K], capacity int, probability float64) *keyFilter[K] {
	f := &keyFilter[K]{
		encode:      encode,
		probability: probability,
	}

	f.resize(capacity)

	return f
}

func (f *keyFilter[K]) resize(capacity int) {
	f.bloom, _, _ = bloom.NewWithProbability(capacity, f.probability)
	f.capacity = capacity
	f.added = 0
}

func (f *keyFilter[K]) add(key K) {
	f.buf = f.encode(f.buf[:0], key)
	f.bloom.Add(f.buf)
	f.added++
}

func (f *keyFilter[K]) mayContain(key K) bool {
	f.buf = f.encode(f.buf[:0], key)
	return f.bloom.MayContain(f.buf)
}

func (f *keyFilter[K]) reset() {
	f.bloom.Reset()
	f.added = 0
}

func (l *Skiplist[K, V]) addToFilter(key K) {
	if l.filter.added < l.filter.capacity {
		l.filter.add(key)
		return
	}

	l.rebuildFilter(l.filter.capacity * 2)
}

// rebuildFilter refills the filter with the keys of all runs. The key that
// triggered the rebuild is already in the list at this point.
func (l *Skiplist[K, V]) rebuildFilter(capacity int) {
	l.filter.resize(capacity)

	for node := l.nextOf(l.head, 0); node != nil; node = l.nextOf(node, 0) {
		if node.isRunHead() {
			l.filter.add(node.key)
		}
	}

	level.Debug(l.logger).Log("msg", "key filter rebuilt", "capacity", capacity, "keys", l.filter.added)
}

func (l *Skiplist[K, V]) filterMayContain(key K) bool {
	return l.filter.mayContain(key)
}
