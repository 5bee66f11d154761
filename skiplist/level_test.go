package skiplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkiplist_LevelDistribution(t *testing.T) {
	conf := DefaultConfig()
	conf.Seed = 1

	list := New[int, int](IntComparator, conf)
	handles := make([]Handle, 1000)

	for i := range handles {
		require.NoError(t, list.Insert(&handles[i], i, i))
	}

	levels := list.Dump()
	require.GreaterOrEqual(t, len(levels), 4)

	counts := make([]int, len(levels))
	for _, level := range levels {
		counts[level.Level] = len(level.Entries)
	}

	assert.Equal(t, 1000, counts[0])
	assert.InDelta(t, 250, counts[1], 70)
	assert.InDelta(t, 62, counts[2], 35)

	// Every level holds about a quarter of the level below.
	ratio := float64(counts[0]+counts[1]) / float64(counts[1]+counts[2])
	assert.InDelta(t, 4.0, ratio, 1.0)

	validateInternalState(t, list)
}

func TestSkiplist_SameSeedSameShape(t *testing.T) {
	build := func() *Skiplist[int, int] {
		conf := DefaultConfig()
		conf.Seed = 7

		list := New[int, int](IntComparator, conf)
		handles := make([]Handle, 100)

		for i := range handles {
			require.NoError(t, list.Insert(&handles[i], (i*37)%100, i))
		}

		return list
	}

	assert.Equal(t, build().Dump(), build().Dump())
}

func TestRandomLevel(t *testing.T) {
	type test struct {
		maxLevel int
		height   int
		wantMax  int
	}

	tests := map[string]test{
		"EmptyList": {
			maxLevel: 10,
			height:   0,
			wantMax:  0,
		},
		"OneLevelAboveHeight": {
			maxLevel: 10,
			height:   2,
			wantMax:  2,
		},
		"MaxLevel": {
			maxLevel: 3,
			height:   3,
			wantMax:  2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conf := DefaultConfig()
			conf.MaxLevel = tt.maxLevel
			conf.Seed = 3

			list := New[int, int](IntComparator, conf)
			list.height = tt.height

			highest := 0
			for i := 0; i < 10000; i++ {
				level := list.randomLevel()
				require.GreaterOrEqual(t, level, 0)
				require.LessOrEqual(t, level, tt.wantMax)

				if level > highest {
					highest = level
				}
			}

			assert.Equal(t, tt.wantMax, highest)
		})
	}
}
