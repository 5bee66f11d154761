package skiplist

import (
	"sync/atomic"

	"github.com/maxpoletaev/dupskip/internal/slab"
)

var lastListID atomic.Uint64

// Handle is a caller-owned slot bound to a node by Insert and released by
// Delete. The zero Handle is unbound. A handle whose node has been removed
// by other means, such as Clear, is stale and can be passed to Insert again.
type Handle struct {
	list uint64
	ref  slab.Ref
}

// Bound reports whether the handle was bound by Insert and not yet released
// by Delete. A bound handle may still be stale.
func (h *Handle) Bound() bool {
	return h.list != 0
}

func (h *Handle) bind(list uint64, ref slab.Ref) {
	h.list = list
	h.ref = ref
}

func (h *Handle) reset() {
	*h = Handle{}
}
