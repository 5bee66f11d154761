package skiplist

import (
	"math/rand/v2"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/maxpoletaev/dupskip/internal/slab"
)

// Skiplist is a generic skiplist that allows duplicate keys. Entries with
// equal keys are kept together as a run, so that a search for a key returns
// all of its values without visiting other keys. Entries are addressed with
// handles, which makes it possible to remove a particular entry of a run.
// Skiplist is not safe for concurrent use.
type Skiplist[K any, V any] struct {
	id          uint64
	head        *listNode[K, V]
	nodes       *slab.Slab[listNode[K, V]]
	cells       *slab.Slab[tailCell]
	compareKeys Comparator[K]
	rng         *rand.PCG
	logger      log.Logger
	filter      *keyFilter[K]
	path        []*listNode[K, V]
	maxHeight   int
	height      int
	size        int
}

// New returns a new Skiplist. The comparator is used to compare keys.
func New[K any, V any](comparator Comparator[K], conf Config, opts ...Option[K]) *Skiplist[K, V] {
	conf.validate()

	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}

	l := &Skiplist[K, V]{
		id:          lastListID.Add(1),
		nodes:       slab.New[listNode[K, V]](64),
		cells:       slab.New[tailCell](64),
		compareKeys: comparator,
		rng:         newSource(conf.Seed),
		logger:      log.With(conf.Logger, "component", "skiplist"),
		path:        make([]*listNode[K, V], conf.MaxLevel),
		maxHeight:   conf.MaxLevel,
	}

	if o.keyEncoder != nil {
		l.filter = newKeyFilter(o.keyEncoder, conf.FilterCapacity, conf.FilterProbability)
	} else if conf.FilterProbability != DefaultConfig().FilterProbability {
		level.Warn(l.logger).Log("msg", "filter probability is set, but the key filter is not enabled")
	}

	l.allocHead()

	return l
}

func (l *Skiplist[K, V]) allocHead() {
	ref, head := l.nodes.Alloc()
	head.self = ref
	head.next = make([]slab.Ref, l.maxHeight)
	l.head = head
}

// Height returns the number of populated levels. An empty list has zero height.
func (l *Skiplist[K, V]) Height() int {
	return l.height
}

// Size returns the number of entries in the list, duplicates included.
func (l *Skiplist[K, V]) Size() int {
	return l.size
}

func (l *Skiplist[K, V]) nextOf(node *listNode[K, V], level int) *listNode[K, V] {
	return l.nodes.Get(node.next[level])
}

// lastOf returns the last member of the run the node belongs to.
func (l *Skiplist[K, V]) lastOf(node *listNode[K, V]) *listNode[K, V] {
	if cell := l.cells.Get(node.tail); cell != nil {
		if last := l.nodes.Get(cell.last); last != nil {
			return last
		}
	}

	return node
}

// findLess returns the last node whose key is strictly less than the given
// key. When searchPath is not nil, it is filled with the last such node at
// every populated level. At the base level, runs are skipped as a whole by
// jumping to their tail.
func (l *Skiplist[K, V]) findLess(key K, searchPath []*listNode[K, V]) *listNode[K, V] {
	node := l.head

	for level := l.height - 1; level >= 0; level-- {
		for {
			next := l.nextOf(node, level)
			if next == nil || l.compareKeys(next.key, key) >= 0 {
				break
			}

			if level == 0 {
				node = l.lastOf(next)
			} else {
				node = next
			}
		}

		if searchPath != nil {
			searchPath[level] = node
		}
	}

	return node
}

// findEqual returns the head of the run with the given key, or nil. It stops
// descending as soon as the key is met at any level.
func (l *Skiplist[K, V]) findEqual(key K) *listNode[K, V] {
	node := l.head

	for level := l.height - 1; level >= 0; level-- {
		for {
			next := l.nextOf(node, level)
			if next == nil {
				break
			}

			cmp := l.compareKeys(next.key, key)
			if cmp == 0 {
				return next
			} else if cmp > 0 {
				break
			}

			if level == 0 {
				node = l.lastOf(next)
			} else {
				node = next
			}
		}
	}

	return nil
}

func (l *Skiplist[K, V]) attachedNode(h *Handle) *listNode[K, V] {
	if h == nil || h.list != l.id {
		return nil
	}

	node := l.nodes.Get(h.ref)
	if node == l.head {
		return nil
	}

	return node
}

// Insert inserts a new key-value pair into the list and binds the handle to
// it. If the key already exists, the new entry becomes the first one of the
// run of entries with that key. The handle must not be bound to a live entry.
func (l *Skiplist[K, V]) Insert(h *Handle, key K, value V) error {
	if h == nil {
		return ErrNilHandle
	}

	if l.attachedNode(h) != nil || (h.Bound() && h.list != l.id) {
		return ErrAlreadyAttached
	}

	searchPath := l.path
	prev := l.findLess(key, searchPath)

	var ref slab.Ref

	if next := l.nextOf(prev, 0); next != nil && l.compareKeys(next.key, key) == 0 {
		ref = l.insertDuplicate(next, searchPath, key, value)
	} else {
		ref = l.insertUnique(searchPath, key, value)
	}

	l.size++
	h.bind(l.id, ref)

	return nil
}

// insertDuplicate puts a new node in front of the run head, handing over
// the head's position at every level to the new node.
func (l *Skiplist[K, V]) insertDuplicate(runHead *listNode[K, V], searchPath []*listNode[K, V], key K, value V) slab.Ref {
	ref, node := l.nodes.Alloc()
	node.self = ref
	node.key = key
	node.value = value
	node.tail = runHead.tail

	l.cells.Get(runHead.tail).refs++

	node.next = runHead.next
	runHead.next = []slab.Ref{node.next[0]}
	runHead.dup = ref
	node.next[0] = runHead.self

	for level := range node.next {
		searchPath[level].next[level] = ref
	}

	return ref
}

func (l *Skiplist[K, V]) insertUnique(searchPath []*listNode[K, V], key K, value V) slab.Ref {
	top := l.randomLevel()

	if top == l.height {
		searchPath[top] = l.head
		l.height++

		level.Debug(l.logger).Log("msg", "list height raised", "height", l.height)
	}

	ref, node := l.nodes.Alloc()
	node.self = ref
	node.key = key
	node.value = value
	node.next = make([]slab.Ref, top+1)

	cellRef, cell := l.cells.Alloc()
	cell.last = ref
	cell.refs = 1
	node.tail = cellRef

	for level := top; level >= 0; level-- {
		node.next[level] = searchPath[level].next[level]
		searchPath[level].next[level] = ref
	}

	if l.filter != nil {
		l.addToFilter(key)
	}

	return ref
}

// Delete removes the entry bound to the handle and releases the handle.
func (l *Skiplist[K, V]) Delete(h *Handle) error {
	node := l.attachedNode(h)
	if node == nil {
		return ErrNotAttached
	}

	cell := l.cells.Get(node.tail)
	if cell == nil {
		return l.corrupted("node has no tail cell", node)
	}

	if !node.isRunHead() {
		if err := l.unlinkMember(node, cell); err != nil {
			return err
		}
	} else if err := l.unlinkRunHead(node, cell); err != nil {
		return err
	}

	cell.refs--
	if cell.refs == 0 {
		l.cells.Free(node.tail)
	}

	l.size--
	l.nodes.Free(node.self)
	h.reset()

	return nil
}

func (l *Skiplist[K, V]) unlinkMember(node *listNode[K, V], cell *tailCell) error {
	prev := l.nodes.Get(node.dup)
	if prev == nil || prev.next[0] != node.self {
		return l.corrupted("run predecessor does not point at the node", node)
	}

	if cell.last == node.self {
		cell.last = node.dup
	} else {
		next := l.nextOf(node, 0)
		if next == nil || next.dup != node.self {
			return l.corrupted("run successor does not point back at the node", node)
		}

		next.dup = node.dup
	}

	prev.next[0] = node.next[0]

	return nil
}

func (l *Skiplist[K, V]) unlinkRunHead(node *listNode[K, V], cell *tailCell) error {
	if node.height() > l.height {
		return l.corrupted("node is taller than the list", node)
	}

	searchPath := l.path
	l.findLess(node.key, searchPath)

	for level := range node.next {
		if searchPath[level].next[level] != node.self {
			return l.corrupted("node is not reachable from its predecessor", node)
		}
	}

	if cell.last != node.self {
		// The next member of the run takes over the position of the head.
		next := l.nextOf(node, 0)
		if next == nil || next.dup != node.self {
			return l.corrupted("run successor does not point back at the node", node)
		}

		tower := node.next
		tower[0] = next.next[0]
		next.next = tower
		next.dup = slab.Ref{}

		for level := range tower {
			searchPath[level].next[level] = next.self
		}

		return nil
	}

	for level := range node.next {
		searchPath[level].next[level] = node.next[level]
	}

	for l.height > 0 && l.head.next[l.height-1].IsZero() {
		l.height--

		level.Debug(l.logger).Log("msg", "list height lowered", "height", l.height)
	}

	return nil
}

func (l *Skiplist[K, V]) corrupted(reason string, node *listNode[K, V]) error {
	err := ErrCorrupted.Withf("%s (key %v)", reason, node.key)
	level.Error(l.logger).Log("msg", "failed to delete node", "err", err)

	return err
}

// Lookup returns the key and the value of the entry bound to the handle.
func (l *Skiplist[K, V]) Lookup(h *Handle) (key K, value V, ok bool) {
	node := l.attachedNode(h)
	if node == nil {
		return key, value, false
	}

	return node.key, node.value, true
}

// Search returns the range of all entries with the given key. The entries
// are ordered from the most recently inserted one.
func (l *Skiplist[K, V]) Search(key K) (Range[K, V], bool) {
	if l.filter != nil && !l.filterMayContain(key) {
		return Range[K, V]{}, false
	}

	node := l.findEqual(key)
	if node == nil {
		return Range[K, V]{}, false
	}

	return l.newRange(node, l.lastOf(node)), true
}

// SearchRange returns the range of all entries with keys between from and
// to, inclusive. ErrInvertedRange is returned when from is greater than to.
func (l *Skiplist[K, V]) SearchRange(from, to K) (Range[K, V], bool, error) {
	cmp := l.compareKeys(from, to)

	if cmp > 0 {
		return Range[K, V]{}, false, ErrInvertedRange
	} else if cmp == 0 {
		r, ok := l.Search(from)
		return r, ok, nil
	}

	start := l.nextOf(l.findLess(from, nil), 0)
	if start == nil {
		return Range[K, V]{}, false, nil
	}

	end := l.findLess(to, nil)
	if next := l.nextOf(end, 0); next != nil && l.compareKeys(next.key, to) == 0 {
		end = l.lastOf(next)
	}

	if end == l.head || l.compareKeys(start.key, end.key) > 0 {
		return Range[K, V]{}, false, nil
	}

	return l.newRange(start, end), true, nil
}

// Clear removes all entries from the list. Handles bound before the call
// become stale.
func (l *Skiplist[K, V]) Clear() {
	l.nodes.Reset()
	l.cells.Reset()
	l.allocHead()

	for i := range l.path {
		l.path[i] = nil
	}

	l.height = 0
	l.size = 0

	if l.filter != nil {
		l.filter.reset()
	}

	level.Debug(l.logger).Log("msg", "list cleared")
}
