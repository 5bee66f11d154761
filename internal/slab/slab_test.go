package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlab_AllocGet(t *testing.T) {
	s := New[int](0)

	ref1, item1 := s.Alloc()
	*item1 = 10

	ref2, item2 := s.Alloc()
	*item2 = 20

	assert.False(t, ref1.IsZero())
	assert.NotEqual(t, ref1, ref2)
	assert.Equal(t, 2, s.Len())

	require.NotNil(t, s.Get(ref1))
	assert.Equal(t, 10, *s.Get(ref1))
	assert.Equal(t, 20, *s.Get(ref2))

	// Pointers must survive further growth.
	for i := 0; i < 100; i++ {
		s.Alloc()
	}

	assert.Same(t, item1, s.Get(ref1))
}

func TestSlab_ZeroRef(t *testing.T) {
	s := New[int](0)
	s.Alloc()

	assert.True(t, Ref{}.IsZero())
	assert.Nil(t, s.Get(Ref{}))
	assert.False(t, s.Valid(Ref{}))
	assert.False(t, s.Free(Ref{}))
}

func TestSlab_Free(t *testing.T) {
	s := New[string](0)

	ref, item := s.Alloc()
	*item = "hello"

	require.True(t, s.Free(ref))
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Get(ref))
	assert.False(t, s.Valid(ref))

	// Double free is rejected.
	assert.False(t, s.Free(ref))

	// The slot is reused, but the old ref stays stale.
	newRef, newItem := s.Alloc()
	assert.Equal(t, "", *newItem)
	assert.Equal(t, ref.index, newRef.index)
	assert.NotEqual(t, ref, newRef)
	assert.Nil(t, s.Get(ref))
	assert.True(t, s.Valid(newRef))
}

func TestSlab_Reset(t *testing.T) {
	s := New[int](0)

	refs := make([]Ref, 0)
	for i := 0; i < 10; i++ {
		ref, item := s.Alloc()
		*item = i
		refs = append(refs, ref)
	}

	s.Reset()
	assert.Equal(t, 0, s.Len())

	for _, ref := range refs {
		assert.False(t, s.Valid(ref))
	}

	ref, item := s.Alloc()
	assert.Equal(t, uint32(0), ref.index)
	assert.Equal(t, 0, *item)
	assert.Equal(t, 1, s.Len())

	for _, old := range refs {
		assert.False(t, s.Valid(old))
	}
}

func TestSlab_OutOfRange(t *testing.T) {
	s := New[int](0)
	assert.Nil(t, s.Get(Ref{index: 5, gen: 1}))
}
