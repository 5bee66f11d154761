package baseerror

import "fmt"

// Error is a category of errors. Errors created from it with New form a
// hierarchy: errors.Is(child, parent) holds for every ancestor.
type Error struct {
	parent error
	msg    string
}

func New(msg string) *Error {
	return &Error{msg: msg}
}

func (err *Error) New(msg string) *Error {
	return &Error{
		parent: err,
		msg:    msg,
	}
}

func (err *Error) Error() string {
	return err.msg
}

func (err *Error) Unwrap() error {
	return err.parent
}

// Withf returns an error of this kind carrying a formatted detail message.
func (err *Error) Withf(format string, args ...any) error {
	return &detailError{
		kind:   err,
		detail: fmt.Sprintf(format, args...),
	}
}

// Wrap returns an error of this kind caused by cause. Both the kind and the
// cause are reachable with errors.Is and errors.As.
func (err *Error) Wrap(cause error) error {
	return &detailError{
		kind:   err,
		detail: cause.Error(),
		cause:  cause,
	}
}

type detailError struct {
	kind   *Error
	detail string
	cause  error
}

func (e *detailError) Error() string {
	return e.kind.msg + ": " + e.detail
}

func (e *detailError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}

	return []error{e.kind, e.cause}
}
