package skiplist

import (
	"fmt"

	"github.com/maxpoletaev/dupskip/internal/multierror"
)

// listWide is the key under which Verify reports findings that do not
// belong to a particular level.
const listWide = -1

// Verify walks the whole list and checks its internal consistency. All
// findings are reported at once, grouped by level, in an error that matches
// ErrCorrupted.
func (l *Skiplist[K, V]) Verify() error {
	errs := multierror.New[int]()

	for level := l.height; level < l.maxHeight; level++ {
		if !l.head.next[level].IsZero() {
			errs.Add(level, fmt.Errorf("level is populated above the list height %d", l.height))
		}
	}

	if l.height > 0 && l.head.next[l.height-1].IsZero() {
		errs.Add(l.height-1, fmt.Errorf("top level is empty"))
	}

	towers := l.verifyBaseLevel(errs)

	for level := 1; level < l.height; level++ {
		l.verifyLevel(errs, level, towers[level])
	}

	if err := errs.Combined(); err != nil {
		return ErrCorrupted.Wrap(err)
	}

	return nil
}

// verifyBaseLevel checks the runs at the base level and returns the number
// of run heads tall enough to be threaded into every level.
func (l *Skiplist[K, V]) verifyBaseLevel(errs *multierror.Error[int]) []int {
	var (
		prev, runHead       *listNode[K, V]
		count, runs, runLen int
	)

	towers := make([]int, l.maxHeight)
	limit := l.nodes.Len()

	closeRun := func() {
		if runHead != nil {
			l.verifyRun(errs, runHead, prev, runLen)
		}
	}

	for node := l.nextOf(l.head, 0); node != nil; node = l.nextOf(node, 0) {
		count++
		if count > limit {
			errs.Add(0, fmt.Errorf("cycle detected after %d nodes", limit))
			break
		}

		if prev != nil && l.compareKeys(prev.key, node.key) > 0 {
			errs.Add(0, fmt.Errorf("wrong key order: %v before %v", prev.key, node.key))
		}

		if node.isRunHead() {
			closeRun()

			if prev != nil && l.compareKeys(prev.key, node.key) == 0 {
				errs.Add(0, fmt.Errorf("key %v is split into several runs", node.key))
			}

			if node.height() > l.height {
				errs.Add(listWide, fmt.Errorf("node %v is taller than the list: %d > %d", node.key, node.height(), l.height))
			}

			for level := 1; level < node.height() && level < l.maxHeight; level++ {
				towers[level]++
			}

			runHead = node
			runLen = 1
			runs++
		} else {
			l.verifyMember(errs, runHead, prev, node)
			runLen++
		}

		prev = node
	}

	closeRun()

	if count != l.size {
		errs.Add(listWide, fmt.Errorf("size is %d, but the base level holds %d nodes", l.size, count))
	}

	if n := l.nodes.Len() - 1; n != count {
		errs.Add(listWide, fmt.Errorf("%d nodes are allocated, but %d are reachable", n, count))
	}

	if n := l.cells.Len(); n != runs {
		errs.Add(listWide, fmt.Errorf("%d tail cells are allocated for %d runs", n, runs))
	}

	return towers
}

func (l *Skiplist[K, V]) verifyMember(errs *multierror.Error[int], runHead, prev, node *listNode[K, V]) {
	if runHead == nil {
		errs.Add(0, fmt.Errorf("node %v is a run member without a run head", node.key))
		return
	}

	if l.compareKeys(runHead.key, node.key) != 0 {
		errs.Add(0, fmt.Errorf("node %v is a member of the run of %v", node.key, runHead.key))
	}

	if node.dup != prev.self {
		errs.Add(0, fmt.Errorf("node %v does not point back at its run predecessor", node.key))
	}

	if node.tail != runHead.tail {
		errs.Add(0, fmt.Errorf("node %v does not share the tail cell of its run", node.key))
	}

	if node.height() != 1 {
		errs.Add(0, fmt.Errorf("run member %v has height %d", node.key, node.height()))
	}
}

func (l *Skiplist[K, V]) verifyRun(errs *multierror.Error[int], runHead, last *listNode[K, V], length int) {
	cell := l.cells.Get(runHead.tail)
	if cell == nil {
		errs.Add(0, fmt.Errorf("run of %v has no tail cell", runHead.key))
		return
	}

	if cell.last != last.self {
		errs.Add(0, fmt.Errorf("tail cell of %v does not name the last node of the run", runHead.key))
	}

	if cell.refs != length {
		errs.Add(0, fmt.Errorf("tail cell of %v has %d refs, but the run has %d nodes", runHead.key, cell.refs, length))
	}
}

func (l *Skiplist[K, V]) verifyLevel(errs *multierror.Error[int], level, expected int) {
	var prev *listNode[K, V]

	count := 0
	limit := l.nodes.Len()

	for node := l.nextOf(l.head, level); node != nil; node = l.nextOf(node, level) {
		count++
		if count > limit {
			errs.Add(level, fmt.Errorf("cycle detected after %d nodes", limit))
			return
		}

		if node.height() <= level {
			errs.Add(level, fmt.Errorf("node %v is threaded above its height %d", node.key, node.height()))
			return
		}

		if !node.isRunHead() {
			errs.Add(level, fmt.Errorf("run member %v is threaded above the base level", node.key))
		}

		if prev != nil && l.compareKeys(prev.key, node.key) >= 0 {
			errs.Add(level, fmt.Errorf("wrong key order: %v before %v", prev.key, node.key))
		}

		prev = node
	}

	if count != expected {
		errs.Add(level, fmt.Errorf("level holds %d nodes, but %d run heads reach it", count, expected))
	}
}
