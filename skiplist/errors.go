package skiplist

import "github.com/maxpoletaev/dupskip/internal/baseerror"

var (
	// ErrMisuse is the category of errors caused by the caller. The list is
	// left untouched when one of them is returned.
	ErrMisuse = baseerror.New("misuse")

	// ErrAlreadyAttached is returned by Insert when the handle is bound to
	// a live node.
	ErrAlreadyAttached = ErrMisuse.New("handle already attached")

	// ErrNotAttached is returned by Delete when the handle is not bound to
	// a live node of the list.
	ErrNotAttached = ErrMisuse.New("handle not attached")

	ErrNilHandle = ErrMisuse.New("nil handle")

	// ErrInvertedRange is returned by SearchRange when the lower bound is
	// greater than the upper bound.
	ErrInvertedRange = ErrMisuse.New("inverted range")

	// ErrCorrupted means the internal structure of the list is inconsistent.
	ErrCorrupted = baseerror.New("list corrupted")
)
