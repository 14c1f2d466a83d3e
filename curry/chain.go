package curry

import (
	"errors"
	"fmt"
)

// ErrTooManyArguments reports that a chain received more arguments than its
// remaining arity. Over-supplying is rejected rather than silently ignored
// so caller bugs stay visible.
var ErrTooManyArguments = errors.New("too many arguments for remaining arity")

// ErrUnderApplied reports that a chain was invoked before all of its
// arguments were supplied.
var ErrUnderApplied = errors.New("chain is not saturated")

// Chain is a runtime-arity curried value over a variadic function. The
// Curry2..Curry5 family is the type-safe path; Chain covers arities decided
// at runtime, at the cost of dynamic argument types. The wrapped function
// is responsible for asserting each argument to its concrete type, as in
// args[0].(int).
//
// A Chain is immutable: Bind returns a new Chain and never modifies the
// receiver, so a partially applied chain can be reused and re-bound freely.
type Chain[R any] struct {
	fn    func(...any) R
	arity int
	args  []any
}

// NewChain wraps fn as a chain expecting exactly arity arguments.
func NewChain[R any](arity int, fn func(...any) R) Chain[R] {
	if arity <= 0 {
		panic("arity should be greater than 0")
	}
	return Chain[R]{fn: fn, arity: arity}
}

// Bind supplies zero or more further arguments and returns the extended
// chain. Supplying more arguments than remain expected fails with
// [ErrTooManyArguments]. The supplied slice is copied, so the chain owns its
// captured arguments exclusively.
func (c Chain[R]) Bind(args ...any) (Chain[R], error) {
	if len(c.args)+len(args) > c.arity {
		return Chain[R]{}, fmt.Errorf("%w: got %d, want at most %d",
			ErrTooManyArguments, len(c.args)+len(args), c.arity)
	}
	bound := make([]any, 0, len(c.args)+len(args))
	bound = append(bound, c.args...)
	bound = append(bound, args...)
	c.args = bound
	return c, nil
}

// Remaining returns how many arguments the chain still expects.
func (c Chain[R]) Remaining() int { return c.arity - len(c.args) }

// Saturated reports whether all arguments have been supplied.
func (c Chain[R]) Saturated() bool { return len(c.args) == c.arity }

// Invoke calls the wrapped function with the bound arguments. Invoking an
// unsaturated chain fails with [ErrUnderApplied].
func (c Chain[R]) Invoke() (R, error) {
	if !c.Saturated() {
		var zero R
		return zero, fmt.Errorf("%w: got %d of %d arguments",
			ErrUnderApplied, len(c.args), c.arity)
	}
	return c.fn(c.args...), nil
}
