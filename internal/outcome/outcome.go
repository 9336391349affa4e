package outcome

import (
	"fmt"
	"strings"
)

// Outcome is the result type used by all fallible core operations.
// A success carries a value and no errors; a failure carries at least
// one human-readable error message.
type Outcome[T any] struct {
	value T
	errs  []string
}

// Void is the success payload for operations that produce no value.
type Void struct{}

// Ok creates a successful outcome carrying the given value.
func Ok[T any](value T) Outcome[T] {
	return Outcome[T]{value: value}
}

// Done creates a successful outcome for a value-less operation.
func Done() Outcome[Void] {
	return Ok(Void{})
}

// Fail creates a failed outcome. At least one message is required.
func Fail[T any](first string, rest ...string) Outcome[T] {
	return Outcome[T]{errs: append([]string{first}, rest...)}
}

// Failf creates a failed outcome with a single formatted message.
func Failf[T any](format string, args ...any) Outcome[T] {
	return Fail[T](fmt.Sprintf(format, args...))
}

// Propagate carries the errors of a failed outcome into an outcome of a
// different value type. The source must be a failure.
func Propagate[T, U any](src Outcome[U]) Outcome[T] {
	errs := src.Errors()
	if len(errs) == 0 {
		return Fail[T]("unknown error")
	}
	return Outcome[T]{errs: errs}
}

// OK reports whether the outcome is a success.
func (o Outcome[T]) OK() bool {
	return len(o.errs) == 0
}

// Value returns the success value. It is the zero value for failures.
func (o Outcome[T]) Value() T {
	return o.value
}

// Errors returns the error messages of a failed outcome, in order.
// It is empty for successes.
func (o Outcome[T]) Errors() []string {
	if len(o.errs) == 0 {
		return nil
	}
	errs := make([]string, len(o.errs))
	copy(errs, o.errs)
	return errs
}

// ErrorString joins the error messages for logging.
func (o Outcome[T]) ErrorString() string {
	return strings.Join(o.errs, "; ")
}
