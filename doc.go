// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package functional provides Functor, Applicative, Monad and Alternative
// type classes for Go, with free operations that work uniformly over
// unrelated container types.
//
// Go has no higher-kinded type parameters, so a type constructor is named by
// a zero-size brand type. [Kind] is the application of a brand F to an
// element type A. Each brand implements the contracts it supports as
// methods over type-erased representations; the typed free functions wrap
// and unwrap the representation at the boundary.
//
// # Design Philosophy
//
// functional provides:
//   - Capability contracts checked structurally at compile time
//   - F-bounded brand constraints (F Functor[F]) for per-instantiation dispatch
//   - Typed containers with their own API, convertible to and from [Kind]
//
// # Capability Contracts
//
//   - [Functor]: Pure and Map
//   - [Applicative]: Functor plus Apply
//   - [Monad]: Applicative plus Join
//   - [Alternative]: Applicative plus Empty and Alternate
//
// A brand satisfies a contract exactly when it has all of its methods;
// partial conformance does not compile.
//
// # Generic Operations
//
//   - [Pure]: Wrap a value
//   - [Map]: Transform the contained value; never called on absence or failure
//   - [Apply]: Apply a wrapped function to a wrapped value
//   - [Join]: Flatten one level of nesting
//   - [Bind]: Join(Map(f, m))
//   - [Then]: Sequence, discarding the first result
//   - [Empty]: The canonical absent value
//   - [Alternate]: Left-biased choice
//   - [Or]: Alternate folded over a list
//   - [Lift2]: Combine two containers with a binary function
//
// # Instances
//
//   - [OptionalKind] for [Optional]: Functor, Applicative, Monad, Alternative
//   - [IdentityKind] for [Identity]: Functor, Applicative, Monad
//   - [EitherKind] for [Either]: Functor, Applicative, Monad
//   - [ContKind] for [Cont]: Functor, Applicative, Monad
//
// The parser package adds the tri-state parse result as a further instance.
//
// # Partial Application
//
// [Partial1], [Partial2] and [Partial3] accumulate arguments; [Curry2] and
// [Curry3] produce the curried shape used with Map followed by Apply.
//
// # Example
//
//	type point struct{ x, y int }
//	mk := functional.Curry2(func(x, y int) point { return point{x, y} })
//
//	p := functional.Apply(
//		functional.Map(mk, functional.Some(1).Kind()),
//		functional.Some(2).Kind(),
//	)
//	functional.OptionalOf(p) // Some{{1 2}}
//
//	q := functional.Apply(
//		functional.Map(mk, functional.None[int]().Kind()),
//		functional.Some(2).Kind(),
//	)
//	functional.OptionalOf(q) // None
package functional
