package skiplist

import "golang.org/x/exp/constraints"

// Comparator is a function that compares two keys.
// It returns a negative number if a < b, 0 if a == b, and a positive number if a > b.
// The comparator must define a total order.
type Comparator[K any] func(a, b K) int

func OrderedComparator[T constraints.Ordered](a, b T) int {
	if a > b {
		return 1
	} else if a < b {
		return -1
	} else {
		return 0
	}
}

var (
	IntComparator     = OrderedComparator[int]
	Int8Comparator    = OrderedComparator[int8]
	Int16Comparator   = OrderedComparator[int16]
	Int32Comparator   = OrderedComparator[int32]
	Int64Comparator   = OrderedComparator[int64]
	UintComparator    = OrderedComparator[uint]
	Uint8Comparator   = OrderedComparator[uint8]
	Uint16Comparator  = OrderedComparator[uint16]
	Uint32Comparator  = OrderedComparator[uint32]
	Uint64Comparator  = OrderedComparator[uint64]
	Float32Comparator = OrderedComparator[float32]
	Float64Comparator = OrderedComparator[float64]
	StringComparator  = OrderedComparator[string]
)

// InverseComparator reverses the order defined by comparator.
func InverseComparator[K any](comparator Comparator[K]) Comparator[K] {
	return func(a, b K) int { return -comparator(a, b) }
}
