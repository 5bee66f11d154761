package skiplist

import "github.com/maxpoletaev/dupskip/internal/slab"

// Range is a contiguous sequence of entries at the base level of the list,
// from start to end inclusive. A range is only valid until the list is
// modified. The zero Range is empty.
type Range[K any, V any] struct {
	nodes *slab.Slab[listNode[K, V]]
	start slab.Ref
	end   slab.Ref
}

func (l *Skiplist[K, V]) newRange(start, end *listNode[K, V]) Range[K, V] {
	return Range[K, V]{
		nodes: l.nodes,
		start: start.self,
		end:   end.self,
	}
}

// Iterator returns an iterator over the entries of the range.
func (r Range[K, V]) Iterator() *Iterator[K, V] {
	it := &Iterator[K, V]{
		nodes: r.nodes,
		end:   r.end,
	}

	if r.nodes != nil {
		it.next = r.nodes.Get(r.start)
	}

	return it
}

// Collect returns the values of the range in iteration order.
func (r Range[K, V]) Collect() []V {
	values := make([]V, 0)

	for it := r.Iterator(); it.HasNext(); {
		_, value := it.Next()
		values = append(values, value)
	}

	return values
}

type Iterator[K any, V any] struct {
	nodes *slab.Slab[listNode[K, V]]
	next  *listNode[K, V]
	end   slab.Ref
}

func (it *Iterator[K, V]) HasNext() bool {
	return it.next != nil
}

func (it *Iterator[K, V]) Next() (key K, value V) {
	if it.next == nil {
		panic("no more items in the iterator")
	}

	node := it.next

	if node.self == it.end {
		it.next = nil
	} else {
		it.next = it.nodes.Get(node.next[0])
	}

	return node.key, node.value
}
