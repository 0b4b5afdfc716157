// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package functional

// Partial application.
//
// PartialN accumulates bound arguments of an N-ary function. Binding
// some arguments yields a function of the remaining ones; once every
// argument is supplied the wrapped function runs. Arity is capped at three.

// Partial1 is a unary function awaiting its last argument.
type Partial1[A, R any] func(A) R

// Call supplies the argument.
func (p Partial1[A, R]) Call(a A) R {
	return p(a)
}

// Partial2 is a binary function awaiting its arguments.
type Partial2[A, B, R any] func(A, B) R

// Call supplies both arguments.
func (p Partial2[A, B, R]) Call(a A, b B) R {
	return p(a, b)
}

// With binds the first argument.
func (p Partial2[A, B, R]) With(a A) Partial1[B, R] {
	return func(b B) R {
		return p(a, b)
	}
}

// Curried returns p in curried form, suitable for [Map] followed by [Apply].
func (p Partial2[A, B, R]) Curried() func(A) func(B) R {
	return func(a A) func(B) R {
		return p.With(a)
	}
}

// Partial3 is a ternary function awaiting its arguments.
type Partial3[A, B, C, R any] func(A, B, C) R

// Call supplies all three arguments.
func (p Partial3[A, B, C, R]) Call(a A, b B, c C) R {
	return p(a, b, c)
}

// With binds the first argument.
func (p Partial3[A, B, C, R]) With(a A) Partial2[B, C, R] {
	return func(b B, c C) R {
		return p(a, b, c)
	}
}

// With2 binds the first two arguments.
func (p Partial3[A, B, C, R]) With2(a A, b B) Partial1[C, R] {
	return func(c C) R {
		return p(a, b, c)
	}
}

// Curried returns p in curried form.
func (p Partial3[A, B, C, R]) Curried() func(A) func(B) func(C) R {
	return func(a A) func(B) func(C) R {
		return p.With(a).Curried()
	}
}

// Curry2 converts a binary function to curried form.
func Curry2[A, B, R any](f func(A, B) R) func(A) func(B) R {
	return Partial2[A, B, R](f).Curried()
}

// Curry3 converts a ternary function to curried form.
func Curry3[A, B, C, R any](f func(A, B, C) R) func(A) func(B) func(C) R {
	return Partial3[A, B, C, R](f).Curried()
}
