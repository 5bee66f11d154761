package main

import (
	"bytes"
	"strings"
	"testing"

	kitlog "github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxpoletaev/dupskip/skiplist"
)

func newTestShell(slots int) (*shell, *bytes.Buffer) {
	conf := skiplist.DefaultConfig()
	conf.Seed = 1

	out := &bytes.Buffer{}
	list := skiplist.New[int, int](skiplist.IntComparator, conf)

	return newShell(list, slots, out, kitlog.NewNopLogger()), out
}

func TestShell_Run(t *testing.T) {
	type test struct {
		input    string
		wantOut  []string
		wantSize int
	}

	tests := map[string]test{
		"InsertAndSearch": {
			input:    "i 0 1 10\ni 1 1 20\ni 2 1 30\ns 1\n",
			wantOut:  []string{"key: 1, val: 30\nkey: 1, val: 20\nkey: 1, val: 10\n"},
			wantSize: 3,
		},
		"DeleteFromRun": {
			input:    "i 0 1 10\ni 1 1 20\ni 2 1 30\nd 1\ns 1\n",
			wantOut:  []string{"key: 1, val: 30\nkey: 1, val: 10\n"},
			wantSize: 2,
		},
		"RangeSearch": {
			input:    "i 0 1 10\ni 1 5 50\ni 2 9 90\nr 2 9\n",
			wantOut:  []string{"key: 5, val: 50\nkey: 9, val: 90\n"},
			wantSize: 3,
		},
		"NotFound": {
			input:    "i 0 1 10\ns 2\nr 3 4\n",
			wantOut:  []string{"no entries with key 2", "no entries within the range 3 - 4"},
			wantSize: 1,
		},
		"InvertedRange": {
			input:    "r 5 3\n",
			wantOut:  []string{"search failed: inverted range"},
			wantSize: 0,
		},
		"SlotInUse": {
			input:    "i 0 1 10\ni 0 2 20\n",
			wantOut:  []string{"insert failed: handle already attached"},
			wantSize: 1,
		},
		"EmptySlot": {
			input:    "d 3\n",
			wantOut:  []string{"delete failed: handle not attached"},
			wantSize: 0,
		},
		"SlotOutOfRange": {
			input:    "i 10 1 1\n",
			wantOut:  []string{"slot 10 is out of range [0, 4)"},
			wantSize: 0,
		},
		"BadArguments": {
			input:    "i 0 x 1\nd\nfoo\n",
			wantOut:  []string{"usage: i <slot> <key> <value>", "usage: d <slot>", `unknown command "foo"`},
			wantSize: 0,
		},
		"Quit": {
			input:    "i 0 1 1\nq\ni 1 2 2\n",
			wantSize: 1,
		},
		"Help": {
			input:    "h\n",
			wantOut:  []string{"help:         h", "insert:       i <slot> <key> <value>"},
			wantSize: 0,
		},
		"Verify": {
			input:    "i 0 1 1\ni 1 1 2\nv\n",
			wantOut:  []string{"ok\n"},
			wantSize: 2,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sh, out := newTestShell(4)

			require.NoError(t, sh.run(strings.NewReader(tt.input)))

			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}

			assert.Equal(t, tt.wantSize, sh.list.Size())
		})
	}
}

func TestShell_PrintEach(t *testing.T) {
	sh, out := newTestShell(4)
	sh.printEach = true

	require.NoError(t, sh.run(strings.NewReader("i 0 1 10\ni 1 1 20\n")))

	assert.Contains(t, out.String(), "Skiplist has 1 nodes.")
	assert.Contains(t, out.String(), "Skiplist has 2 nodes.")
	assert.Contains(t, out.String(), "(1, 20)->(1, 10)*")
}

func TestShell_LevelTest(t *testing.T) {
	sh, out := newTestShell(4)

	require.NoError(t, sh.levelTest(1000))

	assert.Contains(t, out.String(), "NODES")
	assert.Contains(t, out.String(), "1000")
	assert.Equal(t, 0, sh.list.Size())
	assert.Equal(t, 0, sh.list.Height())
}
