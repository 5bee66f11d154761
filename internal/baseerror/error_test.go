package baseerror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Hierarchy(t *testing.T) {
	root := New("root")
	child := root.New("child")
	other := New("other")

	assert.Equal(t, "child", child.Error())
	assert.ErrorIs(t, child, root)
	assert.ErrorIs(t, child, child)
	assert.NotErrorIs(t, root, child)
	assert.NotErrorIs(t, child, other)
}

func TestError_Withf(t *testing.T) {
	root := New("root")
	child := root.New("child")

	err := child.Withf("node %d is broken", 42)

	assert.Equal(t, "child: node 42 is broken", err.Error())
	assert.ErrorIs(t, err, child)
	assert.ErrorIs(t, err, root)
}

type causeError struct{ code int }

func (e *causeError) Error() string { return "cause" }

func TestError_Wrap(t *testing.T) {
	kind := New("kind")
	cause := &causeError{code: 7}

	err := kind.Wrap(cause)

	assert.Equal(t, "kind: cause", err.Error())
	assert.ErrorIs(t, err, kind)
	assert.ErrorIs(t, err, cause)

	var target *causeError
	if assert.ErrorAs(t, err, &target) {
		assert.Equal(t, 7, target.code)
	}
}
