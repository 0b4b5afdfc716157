// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package functional

// Erased represents a type-erased value crossing the dispatch boundary.
// Brand instances see only Erased values; the typed free functions recover
// concrete types via type assertions at the boundary.
type Erased = any

// Kind is the application of the type constructor branded F to A.
//
// A Kind carries the brand's erased representation of a container. The typed
// containers convert to Kind with their Kind method and back with the
// brand's projection function (for example [OptionalOf]).
//
// The zero Kind holds a nil representation, which every brand in this module
// interprets as its zero container (None, NotParsed, Left with zero error, ...).
type Kind[F, A any] struct {
	repr Erased
}

// FromRepr wraps a brand representation as a Kind.
// Brand implementations outside this package use it to hand their
// representation to the generic operations.
func FromRepr[F, A any](repr Erased) Kind[F, A] {
	return Kind[F, A]{repr: repr}
}

// Repr returns the brand representation carried by k.
func (k Kind[F, A]) Repr() Erased {
	return k.repr
}

// cast recovers a concrete value from an Erased one.
// A nil Erased yields the zero value, so that interface and pointer element
// types survive the erasure round trip.
func cast[A any](e Erased) A {
	if e == nil {
		var zero A
		return zero
	}
	return e.(A)
}

// Cast is the exported form of the boundary assertion used by brand
// implementations declared outside this package.
func Cast[A any](e Erased) A {
	return cast[A](e)
}

// erase lifts a typed function to the erased calling convention.
func erase[A, B any](f func(A) B) func(Erased) Erased {
	return func(a Erased) Erased {
		return f(cast[A](a))
	}
}

// Lower converts a function value stored inside a container into its erased
// calling convention. [Applicative.Apply] receives one so that instances can
// call stored functions without knowing their types.
type Lower func(fn Erased) func(Erased) Erased

// Inner extracts the representation of an inner container stored as an
// element of an outer one. [Monad.Join] receives one to flatten nesting.
type Inner func(elem Erased) Erased
