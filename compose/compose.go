package compose

// Pipe chains zero or more same-type stages into a single function that
// applies them left to right: Pipe(f, g, h)(x) == h(g(f(x))).
//
// With no stages the result is the identity function, so Pipe is total and
// callers never need to special-case an empty chain. With one stage the
// result behaves exactly as that stage.
func Pipe[T any](stages ...func(T) T) func(T) T {
	return func(v T) T {
		for _, stage := range stages {
			v = stage(v)
		}
		return v
	}
}

// Compose is the right-to-left counterpart of [Pipe]:
// Compose(f, g, h)(x) == f(g(h(x))). Zero stages yields the identity.
func Compose[T any](stages ...func(T) T) func(T) T {
	return func(v T) T {
		for i := len(stages) - 1; i >= 0; i-- {
			v = stages[i](v)
		}
		return v
	}
}

// Identity returns its argument unchanged. It is the unit of both [Pipe]
// and [Compose].
func Identity[T any](v T) T { return v }

// Const lifts a value into a function that ignores its argument and always
// returns that value.
func Const[B, A any](a A) func(B) A {
	return func(B) A { return a }
}

// Pipe2 chains two stages of differing types left to right. The output type
// of each stage must match the input type of the next; the compiler rejects
// mismatched chains.
func Pipe2[A, B, C any](f1 func(A) B, f2 func(B) C) func(A) C {
	return func(a A) C { return f2(f1(a)) }
}

// Pipe3 chains three stages left to right.
func Pipe3[A, B, C, D any](f1 func(A) B, f2 func(B) C, f3 func(C) D) func(A) D {
	return Pipe2(f1, Pipe2(f2, f3))
}

// Pipe4 chains four stages left to right.
func Pipe4[A, B, C, D, E any](f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E) func(A) E {
	return Pipe2(f1, Pipe3(f2, f3, f4))
}

// Pipe5 chains five stages left to right.
func Pipe5[A, B, C, D, E, F any](
	f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F,
) func(A) F {
	return Pipe2(f1, Pipe4(f2, f3, f4, f5))
}

// Pipe6 chains six stages left to right.
func Pipe6[A, B, C, D, E, F, G any](
	f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G,
) func(A) G {
	return Pipe2(f1, Pipe5(f2, f3, f4, f5, f6))
}

// Pipe7 chains seven stages left to right.
func Pipe7[A, B, C, D, E, F, G, H any](
	f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H,
) func(A) H {
	return Pipe2(f1, Pipe6(f2, f3, f4, f5, f6, f7))
}

// Pipe8 chains eight stages left to right.
func Pipe8[A, B, C, D, E, F, G, H, I any](
	f1 func(A) B, f2 func(B) C, f3 func(C) D, f4 func(D) E, f5 func(E) F, f6 func(F) G, f7 func(G) H, f8 func(H) I,
) func(A) I {
	return Pipe2(f1, Pipe7(f2, f3, f4, f5, f6, f7, f8))
}

// Compose2 chains two stages of differing types right to left:
// Compose2(f, g)(x) == f(g(x)).
func Compose2[A, B, C any](f1 func(B) C, f2 func(A) B) func(A) C {
	return func(a A) C { return f1(f2(a)) }
}

// Compose3 chains three stages right to left.
func Compose3[A, B, C, D any](f1 func(C) D, f2 func(B) C, f3 func(A) B) func(A) D {
	return Compose2(f1, Compose2(f2, f3))
}

// Compose4 chains four stages right to left.
func Compose4[A, B, C, D, E any](f1 func(D) E, f2 func(C) D, f3 func(B) C, f4 func(A) B) func(A) E {
	return Compose2(f1, Compose3(f2, f3, f4))
}

// Compose5 chains five stages right to left.
func Compose5[A, B, C, D, E, F any](
	f1 func(E) F, f2 func(D) E, f3 func(C) D, f4 func(B) C, f5 func(A) B,
) func(A) F {
	return Compose2(f1, Compose4(f2, f3, f4, f5))
}

// Compose6 chains six stages right to left.
func Compose6[A, B, C, D, E, F, G any](
	f1 func(F) G, f2 func(E) F, f3 func(D) E, f4 func(C) D, f5 func(B) C, f6 func(A) B,
) func(A) G {
	return Compose2(f1, Compose5(f2, f3, f4, f5, f6))
}

// Compose7 chains seven stages right to left.
func Compose7[A, B, C, D, E, F, G, H any](
	f1 func(G) H, f2 func(F) G, f3 func(E) F, f4 func(D) E, f5 func(C) D, f6 func(B) C, f7 func(A) B,
) func(A) H {
	return Compose2(f1, Compose6(f2, f3, f4, f5, f6, f7))
}

// Compose8 chains eight stages right to left.
func Compose8[A, B, C, D, E, F, G, H, I any](
	f1 func(H) I, f2 func(G) H, f3 func(F) G, f4 func(E) F, f5 func(D) E, f6 func(C) D, f7 func(B) C, f8 func(A) B,
) func(A) I {
	return Compose2(f1, Compose7(f2, f3, f4, f5, f6, f7, f8))
}

// PipeErr2 chains two fallible stages left to right. If the first stage
// returns an error, the second is not called and the error is returned
// immediately.
func PipeErr2[A, B, C any](f1 func(A) (B, error), f2 func(B) (C, error)) func(A) (C, error) {
	return func(a A) (C, error) {
		b, err := f1(a)
		if err != nil {
			var zero C
			return zero, err
		}
		return f2(b)
	}
}

// PipeErr3 chains three fallible stages left to right, failing fast on the
// first error.
func PipeErr3[A, B, C, D any](
	f1 func(A) (B, error), f2 func(B) (C, error), f3 func(C) (D, error),
) func(A) (D, error) {
	return PipeErr2(f1, PipeErr2(f2, f3))
}

// PipeErr4 chains four fallible stages left to right, failing fast on the
// first error.
func PipeErr4[A, B, C, D, E any](
	f1 func(A) (B, error), f2 func(B) (C, error), f3 func(C) (D, error), f4 func(D) (E, error),
) func(A) (E, error) {
	return PipeErr2(f1, PipeErr3(f2, f3, f4))
}
