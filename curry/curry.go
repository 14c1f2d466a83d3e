package curry

// Curry2 turns a two-argument function into a chain of two unary functions:
// Curry2(f)(a)(b) == f(a, b). Each step captures only the arguments supplied
// so far, never any caller-mutable state.
func Curry2[A, B, R any](fn func(A, B) R) func(A) func(B) R {
	return func(a A) func(B) R {
		return func(b B) R {
			return fn(a, b)
		}
	}
}

// Curry3 turns a three-argument function into a chain of three unary
// functions.
func Curry3[A, B, C, R any](fn func(A, B, C) R) func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return Curry2(func(b B, c C) R {
			return fn(a, b, c)
		})
	}
}

// Curry4 turns a four-argument function into a chain of four unary functions.
func Curry4[A, B, C, D, R any](fn func(A, B, C, D) R) func(A) func(B) func(C) func(D) R {
	return func(a A) func(B) func(C) func(D) R {
		return Curry3(func(b B, c C, d D) R {
			return fn(a, b, c, d)
		})
	}
}

// Curry5 turns a five-argument function into a chain of five unary functions.
func Curry5[A, B, C, D, E, R any](fn func(A, B, C, D, E) R) func(A) func(B) func(C) func(D) func(E) R {
	return func(a A) func(B) func(C) func(D) func(E) R {
		return Curry4(func(b B, c C, d D, e E) R {
			return fn(a, b, c, d, e)
		})
	}
}

// Uncurry2 inverts [Curry2].
func Uncurry2[A, B, R any](fn func(A) func(B) R) func(A, B) R {
	return func(a A, b B) R {
		return fn(a)(b)
	}
}

// Uncurry3 inverts [Curry3].
func Uncurry3[A, B, C, R any](fn func(A) func(B) func(C) R) func(A, B, C) R {
	return func(a A, b B, c C) R {
		return fn(a)(b)(c)
	}
}

// Uncurry4 inverts [Curry4].
func Uncurry4[A, B, C, D, R any](fn func(A) func(B) func(C) func(D) R) func(A, B, C, D) R {
	return func(a A, b B, c C, d D) R {
		return fn(a)(b)(c)(d)
	}
}

// Uncurry5 inverts [Curry5].
func Uncurry5[A, B, C, D, E, R any](fn func(A) func(B) func(C) func(D) func(E) R) func(A, B, C, D, E) R {
	return func(a A, b B, c C, d D, e E) R {
		return fn(a)(b)(c)(d)(e)
	}
}

// Partial1of2 fixes the first argument of a two-argument function. Unlike a
// curried chain, the returned function takes all remaining arguments in one
// call.
func Partial1of2[A, B, R any](fn func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return fn(a, b)
	}
}

// Partial1of3 fixes the first argument of a three-argument function.
func Partial1of3[A, B, C, R any](fn func(A, B, C) R, a A) func(B, C) R {
	return func(b B, c C) R {
		return fn(a, b, c)
	}
}

// Partial2of3 fixes the first two arguments of a three-argument function.
func Partial2of3[A, B, C, R any](fn func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return fn(a, b, c)
	}
}

// Partial1of4 fixes the first argument of a four-argument function.
func Partial1of4[A, B, C, D, R any](fn func(A, B, C, D) R, a A) func(B, C, D) R {
	return func(b B, c C, d D) R {
		return fn(a, b, c, d)
	}
}

// Partial2of4 fixes the first two arguments of a four-argument function.
func Partial2of4[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B) func(C, D) R {
	return func(c C, d D) R {
		return fn(a, b, c, d)
	}
}

// Partial3of4 fixes the first three arguments of a four-argument function.
func Partial3of4[A, B, C, D, R any](fn func(A, B, C, D) R, a A, b B, c C) func(D) R {
	return func(d D) R {
		return fn(a, b, c, d)
	}
}
