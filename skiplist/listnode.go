package skiplist

import "github.com/maxpoletaev/dupskip/internal/slab"

// listNode is a single entry of the list. Nodes sharing a key form a run:
// the run head is threaded into every level up to its height, while the
// other members are linked at the base level only, each pointing back to
// the member in front of it through dup.
type listNode[K any, V any] struct {
	key   K
	value V
	self  slab.Ref
	next  []slab.Ref
	dup   slab.Ref
	tail  slab.Ref
}

func (n *listNode[K, V]) height() int {
	return len(n.next)
}

func (n *listNode[K, V]) isRunHead() bool {
	return n.dup.IsZero()
}

// tailCell is shared by all members of a run and names its last member.
type tailCell struct {
	last slab.Ref
	refs int
}
