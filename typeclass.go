// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package functional

// Capability contracts.
//
// Each contract is an F-bounded interface over a brand type. A brand
// satisfies a contract exactly when it has every method with the required
// signature; there is no registration step. The free functions below take
// the brand as a type parameter, so the instance is selected per
// instantiation at compile time.

// Functor is the contract for brands whose containers can be mapped over.
type Functor[F any] interface {
	// Pure wraps a single value.
	Pure(a Erased) Erased
	// Map applies f to the contained value(s). Absent or failed containers
	// must not call f.
	Map(f func(Erased) Erased, fa Erased) Erased
}

// Applicative is a Functor that can apply a wrapped function to a wrapped value.
type Applicative[F any] interface {
	Functor[F]
	// Apply applies the function held by ff to fa. If ff is absent or failed
	// the result propagates that state.
	Apply(ff, fa Erased, lower Lower) Erased
}

// Monad is an Applicative that can flatten one level of nesting.
type Monad[F any] interface {
	Applicative[F]
	// Join flattens ffa, whose elements are inner containers reachable
	// through inner.
	Join(ffa Erased, inner Inner) Erased
}

// Alternative is an Applicative with a canonical empty value and a
// left-biased choice.
type Alternative[F any] interface {
	Applicative[F]
	Empty() Erased
	Alternate(lhs, rhs Erased) Erased
}

// Pure wraps a into the container branded F.
func Pure[F Functor[F], A any](a A) Kind[F, A] {
	var inst F
	return Kind[F, A]{repr: inst.Pure(a)}
}

// Map applies f to the value held by fa.
func Map[F Functor[F], A, B any](f func(A) B, fa Kind[F, A]) Kind[F, B] {
	var inst F
	return Kind[F, B]{repr: inst.Map(erase(f), fa.repr)}
}

// lowerFunc is the Lower passed to instances for functions of type func(A) B.
// Named generic function produces a static function value per instantiation.
func lowerFunc[A, B any](fn Erased) func(Erased) Erased {
	return erase(cast[func(A) B](fn))
}

// Apply applies the function held by ff to the value held by fa.
func Apply[F Applicative[F], A, B any](ff Kind[F, func(A) B], fa Kind[F, A]) Kind[F, B] {
	var inst F
	return Kind[F, B]{repr: inst.Apply(ff.repr, fa.repr, lowerFunc[A, B])}
}

// innerRepr is the Inner passed to instances for nested Kind[F, A] elements.
func innerRepr[F, A any](elem Erased) Erased {
	return cast[Kind[F, A]](elem).repr
}

// Join flattens one level of nesting.
func Join[F Monad[F], A any](ffa Kind[F, Kind[F, A]]) Kind[F, A] {
	var inst F
	return Kind[F, A]{repr: inst.Join(ffa.repr, innerRepr[F, A])}
}

// Bind sequences a dependent computation: Bind(f, m) = Join(Map(f, m)).
// It short-circuits exactly where Map does.
func Bind[F Monad[F], A, B any](f func(A) Kind[F, B], fa Kind[F, A]) Kind[F, B] {
	return Join(Map(f, fa))
}

// Then sequences two computations, discarding the first result.
func Then[F Monad[F], A, B any](fa Kind[F, A], fb Kind[F, B]) Kind[F, B] {
	return Bind(func(A) Kind[F, B] { return fb }, fa)
}

// Empty returns the canonical absent value of the brand.
func Empty[F Alternative[F], A any]() Kind[F, A] {
	var inst F
	return Kind[F, A]{repr: inst.Empty()}
}

// Alternate returns lhs if it holds a value, otherwise a value derived from
// rhs. The exact rule is the brand's.
func Alternate[F Alternative[F], A any](lhs, rhs Kind[F, A]) Kind[F, A] {
	var inst F
	return Kind[F, A]{repr: inst.Alternate(lhs.repr, rhs.repr)}
}

// Or folds Alternate over alts from the left, starting at Empty.
func Or[F Alternative[F], A any](alts ...Kind[F, A]) Kind[F, A] {
	acc := Empty[F, A]()
	for _, alt := range alts {
		acc = Alternate(acc, alt)
	}
	return acc
}

// Lift2 combines two containers with a binary function:
// Apply(Map(Curry2(f), fa), fb).
func Lift2[F Applicative[F], A, B, C any](f func(A, B) C, fa Kind[F, A], fb Kind[F, B]) Kind[F, C] {
	return Apply(Map(Curry2(f), fa), fb)
}
