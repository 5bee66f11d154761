package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkiplist_Dump(t *testing.T) {
	list, _ := buildList(t, []kv{{1, "a"}, {2, "b"}, {2, "c"}, {3, "d"}})

	levels := list.Dump()
	require.Len(t, levels, list.Height())

	for i, level := range levels {
		assert.Equal(t, list.Height()-1-i, level.Level)

		// Only run heads are visible above the base level.
		if level.Level > 0 {
			for _, e := range level.Entries {
				assert.False(t, e.Duplicate)
				assert.Greater(t, e.Height, level.Level)
			}
		}
	}

	base := levels[len(levels)-1]
	require.Len(t, base.Entries, 4)

	assert.False(t, base.Entries[1].Duplicate)
	assert.Equal(t, "c", base.Entries[1].Value)
	assert.True(t, base.Entries[2].Duplicate)
	assert.Equal(t, "b", base.Entries[2].Value)
	assert.Equal(t, 1, base.Entries[2].Height)
}

func TestSkiplist_DumpEmpty(t *testing.T) {
	list := newTestList[int]()
	assert.Empty(t, list.Dump())
}
