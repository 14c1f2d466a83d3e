package seq

import (
	"golang.org/x/exp/constraints"

	"github.com/fnkit-go/fnkit/option"
)

// Number constrains the numeric folds below to integer and float element
// types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map applies transform to every element of s and returns the results as a
// freshly allocated slice of the same length, preserving order. The input
// slice is never mutated.
func Map[T, U any](s []T, transform func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = transform(v)
	}
	return out
}

// MapWithError is the fallible counterpart of [Map]: it stops at the first
// element whose transform fails and returns that error.
func MapWithError[T, U any](s []T, transform func(T) (U, error)) ([]U, error) {
	out := make([]U, len(s))
	for i, v := range s {
		u, err := transform(v)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// Filter returns a freshly allocated slice holding exactly the elements of s
// for which predicate returns true, in their original relative order. The
// result is a new slice even when every element passes.
func Filter[T any](s []T, predicate func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if predicate(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s left to right: the accumulator starts at initial and is
// combined with each element in turn. An empty slice returns initial.
func Reduce[T, A any](s []T, combine func(A, T) A, initial A) A {
	acc := initial
	for _, v := range s {
		acc = combine(acc, v)
	}
	return acc
}

// FlatMap maps every element to a slice and concatenates the results in
// order.
func FlatMap[T, U any](s []T, transform func(T) []U) []U {
	out := make([]U, 0, len(s))
	for _, v := range s {
		out = append(out, transform(v)...)
	}
	return out
}

// ForEach invokes fn on every element in order. It exists for side-effecting
// consumers at the edge of a pure pipeline.
func ForEach[T any](s []T, fn func(T)) {
	for _, v := range s {
		fn(v)
	}
}

// Sum folds a numeric slice with addition. An empty slice sums to zero.
func Sum[N Number](s []N) N {
	return Reduce(s, func(acc, n N) N { return acc + n }, 0)
}

// Min returns the smallest element, or None for an empty slice.
func Min[N Number](s []N) option.Option[N] {
	if len(s) == 0 {
		return option.None[N]()
	}
	min := s[0]
	for _, n := range s[1:] {
		if n < min {
			min = n
		}
	}
	return option.Some(min)
}

// Max returns the largest element, or None for an empty slice.
func Max[N Number](s []N) option.Option[N] {
	if len(s) == 0 {
		return option.None[N]()
	}
	max := s[0]
	for _, n := range s[1:] {
		if n > max {
			max = n
		}
	}
	return option.Some(max)
}
