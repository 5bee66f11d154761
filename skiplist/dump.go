package skiplist

// Entry is a node as seen by Dump.
type Entry[K any, V any] struct {
	Key       K
	Value     V
	Height    int
	Duplicate bool
}

// LevelDump is the chain of a single level, in list order.
type LevelDump[K any, V any] struct {
	Level   int
	Entries []Entry[K, V]
}

// Dump returns the chains of all populated levels, from the top level down
// to the base level. It is meant for diagnostics.
func (l *Skiplist[K, V]) Dump() []LevelDump[K, V] {
	levels := make([]LevelDump[K, V], 0, l.height)

	for level := l.height - 1; level >= 0; level-- {
		dump := LevelDump[K, V]{Level: level}

		for node := l.nextOf(l.head, level); node != nil; node = l.nextOf(node, level) {
			dump.Entries = append(dump.Entries, Entry[K, V]{
				Key:       node.key,
				Value:     node.value,
				Height:    node.height(),
				Duplicate: !node.isRunHead(),
			})
		}

		levels = append(levels, dump)
	}

	return levels
}
