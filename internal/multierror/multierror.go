package multierror

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Error is a generic error type that allows to combine multiple errors into one.
// Errors are grouped by key, and every key may hold any number of errors.
// The string representation is ordered by key, so it is stable between runs.
// Error is not safe for concurrent use.
type Error[T constraints.Ordered] struct {
	errors map[T][]error
}

// New creates a new Error.
func New[T constraints.Ordered]() *Error[T] {
	return &Error[T]{
		errors: make(map[T][]error),
	}
}

func (m *Error[T]) sortedKeys() []T {
	keys := make([]T, 0, len(m.errors))
	for k := range m.errors {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// Error returns a string representation of the error.
func (m *Error[T]) Error() string {
	var b strings.Builder

	for _, k := range m.sortedKeys() {
		for _, err := range m.errors[k] {
			fmt.Fprintf(&b, "%v:%s; ", k, err)
		}
	}

	return strings.TrimRight(b.String(), "; ")
}

// Unwrap returns a slice of errors ordered by key.
func (m *Error[T]) Unwrap() []error {
	errs := make([]error, 0, len(m.errors))
	for _, k := range m.sortedKeys() {
		errs = append(errs, m.errors[k]...)
	}

	return errs
}

// Len returns the number of errors.
func (m *Error[T]) Len() int {
	n := 0
	for _, errs := range m.errors {
		n += len(errs)
	}

	return n
}

// Add adds an error to the Error.
func (m *Error[T]) Add(key T, err error) {
	m.errors[key] = append(m.errors[key], err)
}

// Get returns the errors added under the key.
func (m *Error[T]) Get(key T) []error {
	return m.errors[key]
}

// Combined returns the Error if it contains any errors, nil otherwise.
func (m *Error[T]) Combined() error {
	if m.Len() == 0 {
		return nil
	}

	return m
}
