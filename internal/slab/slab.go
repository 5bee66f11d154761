package slab

// Ref addresses an item stored in a Slab. Every allocation of a slot bumps
// its generation, so a Ref outlives the item only as a stale value that no
// longer resolves. The zero Ref never resolves.
type Ref struct {
	index uint32
	gen   uint32
}

// IsZero reports whether the ref is the zero Ref.
func (r Ref) IsZero() bool {
	return r.gen == 0
}

type slot[T any] struct {
	item T
	gen  uint32
	used bool
}

// Slab is an index-addressed arena of items of type T. Items never move once
// allocated, so pointers returned by Alloc and Get stay valid until the item
// is freed or the slab is reset. Slab is not safe for concurrent use.
type Slab[T any] struct {
	slots []*slot[T]
	free  []uint32
	live  int
}

// New returns an empty slab with room for capacity items before it grows.
func New[T any](capacity int) *Slab[T] {
	return &Slab[T]{
		slots: make([]*slot[T], 0, capacity),
	}
}

// Alloc reserves a zeroed item and returns its ref along with a pointer to it.
func (s *Slab[T]) Alloc() (Ref, *T) {
	var idx uint32

	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, &slot[T]{})
	}

	sl := s.slots[idx]
	sl.used = true
	sl.gen++

	// Zero is reserved for the zero Ref.
	if sl.gen == 0 {
		sl.gen = 1
	}

	s.live++

	return Ref{index: idx, gen: sl.gen}, &sl.item
}

func (s *Slab[T]) lookup(ref Ref) *slot[T] {
	if ref.gen == 0 || int(ref.index) >= len(s.slots) {
		return nil
	}

	sl := s.slots[ref.index]
	if !sl.used || sl.gen != ref.gen {
		return nil
	}

	return sl
}

// Get returns the item addressed by ref, or nil if the ref is zero or stale.
func (s *Slab[T]) Get(ref Ref) *T {
	if sl := s.lookup(ref); sl != nil {
		return &sl.item
	}

	return nil
}

// Valid reports whether ref addresses a live item.
func (s *Slab[T]) Valid(ref Ref) bool {
	return s.lookup(ref) != nil
}

// Free releases the item addressed by ref. It returns false if the ref is
// zero or stale, in which case nothing changes.
func (s *Slab[T]) Free(ref Ref) bool {
	sl := s.lookup(ref)
	if sl == nil {
		return false
	}

	var zero T
	sl.item = zero
	sl.used = false

	s.free = append(s.free, ref.index)
	s.live--

	return true
}

// Len returns the number of live items.
func (s *Slab[T]) Len() int {
	return s.live
}

// Reset frees every item at once. Refs handed out before the reset become
// stale, and the slots are reused by subsequent allocations.
func (s *Slab[T]) Reset() {
	var zero T

	s.free = s.free[:0]

	for i := len(s.slots) - 1; i >= 0; i-- {
		sl := s.slots[i]
		sl.item = zero
		sl.used = false
		s.free = append(s.free, uint32(i))
	}

	s.live = 0
}
