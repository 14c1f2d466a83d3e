package option

// Option represents an optional value: Some(v) holds a present value, None
// marks absence. The zero value is None. An Option is immutable once
// constructed; every operation returns a new Option.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{v: v, valid: true} }

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr treats nil as the missing sentinel: a nil pointer yields None,
// anything else yields Some of the pointed-to value.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.valid }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.valid }

// Unwrap returns the value and whether it was present.
func (o Option[T]) Unwrap() (T, bool) { return o.v, o.valid }

// GetOrElse returns the value if present, otherwise fallback.
func (o Option[T]) GetOrElse(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}

// Map applies transform to the value if present. On None the transform is
// never invoked. The method form is limited to same-type transforms; use the
// package-level [Map] to change the value type.
func (o Option[T]) Map(transform func(T) T) Option[T] {
	if !o.valid {
		return o
	}
	return Some(transform(o.v))
}

// OrElse returns o if present, otherwise the given alternative.
func (o Option[T]) OrElse(alternative Option[T]) Option[T] {
	if o.valid {
		return o
	}
	return alternative
}

// Map applies transform to the value if present, producing an Option of the
// transform's result type. On None the transform is never invoked.
func Map[T, U any](o Option[T], transform func(T) U) Option[U] {
	if v, ok := o.Unwrap(); ok {
		return Some(transform(v))
	}
	return None[U]()
}

// AndThen chains a transform that itself may come back empty.
func AndThen[T, U any](o Option[T], transform func(T) Option[U]) Option[U] {
	if v, ok := o.Unwrap(); ok {
		return transform(v)
	}
	return None[U]()
}
