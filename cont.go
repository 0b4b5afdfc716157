// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package functional

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// The function receives a continuation k of type func(A) R, which represents
// "the rest of the computation". Applying k to a value of type A produces
// the final result of type R.
type Cont[R, A any] func(k func(A) R) R

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// BindCont runs m, then passes the result to f to get the next continuation.
func BindCont[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// MapCont applies a pure function to the result of a continuation.
// It is equivalent to BindCont(m, compose(Return, f)) without the
// intermediate Return closure.
func MapCont[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

// identity is the identity continuation for Run.
// Named generic function produces a static function value per type instantiation.
func identity[A any](a A) A { return a }

// Run executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func Run[A any](m Cont[A, A]) A {
	return m(identity[A])
}

// RunWith executes a continuation with a custom final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return m(k)
}

// Kind converts m for use with the generic operations.
func (m Cont[R, A]) Kind() Kind[ContKind[R], A] {
	repr := Cont[R, Erased](func(k func(Erased) R) R {
		return m(func(a A) R { return k(a) })
	})
	return Kind[ContKind[R], A]{repr: repr}
}

// ContOf projects a Kind back to its Cont.
func ContOf[R, A any](k Kind[ContKind[R], A]) Cont[R, A] {
	m := contRepr[R](k.repr)
	return func(kk func(A) R) R {
		return m(func(e Erased) R { return kk(cast[A](e)) })
	}
}

// ContKind is the brand of [Cont] with answer type R.
type ContKind[R any] struct{}

// contRepr recovers the erased computation. The zero Kind never calls its
// continuation and answers with the zero R.
func contRepr[R any](e Erased) Cont[R, Erased] {
	if m, ok := e.(Cont[R, Erased]); ok && m != nil {
		return m
	}
	return func(func(Erased) R) R {
		var zero R
		return zero
	}
}

func (ContKind[R]) Pure(a Erased) Erased {
	return Return[R](a)
}

func (ContKind[R]) Map(f func(Erased) Erased, fa Erased) Erased {
	return MapCont(contRepr[R](fa), f)
}

func (ContKind[R]) Apply(ff, fa Erased, lower Lower) Erased {
	mf, ma := contRepr[R](ff), contRepr[R](fa)
	return Cont[R, Erased](func(k func(Erased) R) R {
		return mf(func(fn Erased) R {
			g := lower(fn)
			return ma(func(a Erased) R { return k(g(a)) })
		})
	})
}

func (ContKind[R]) Join(ffa Erased, inner Inner) Erased {
	return BindCont(contRepr[R](ffa), func(e Erased) Cont[R, Erased] {
		return contRepr[R](inner(e))
	})
}
