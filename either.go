// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package functional

import "fmt"

// Either represents a value that is either Left (error) or Right (success).
// The zero Either is Left with the zero E.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

func (e Either[E, A]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right{%v}", e.right)
	}
	return fmt.Sprintf("Left{%v}", e.left)
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// Kind converts e for use with the generic operations.
func (e Either[E, A]) Kind() Kind[EitherKind[E], A] {
	return Kind[EitherKind[E], A]{repr: Either[E, Erased]{isRight: e.isRight, left: e.left, right: e.right}}
}

// EitherOf projects a Kind back to its Either.
func EitherOf[E, A any](k Kind[EitherKind[E], A]) Either[E, A] {
	r := eitherRepr[E](k.repr)
	if !r.isRight {
		return Left[E, A](r.left)
	}
	return Right[E](cast[A](r.right))
}

// EitherKind is the brand of [Either] with Left type E.
// Left short-circuits Map, Apply and Join. Either is not an Alternative:
// there is no canonical empty Left.
type EitherKind[E any] struct{}

func eitherRepr[E any](e Erased) Either[E, Erased] {
	r, _ := e.(Either[E, Erased])
	return r
}

func (EitherKind[E]) Pure(a Erased) Erased {
	return Right[E](a)
}

func (EitherKind[E]) Map(f func(Erased) Erased, fa Erased) Erased {
	r := eitherRepr[E](fa)
	if !r.isRight {
		return r
	}
	return Right[E](f(r.right))
}

func (k EitherKind[E]) Apply(ff, fa Erased, lower Lower) Erased {
	fn := eitherRepr[E](ff)
	if !fn.isRight {
		return fn
	}
	return k.Map(lower(fn.right), fa)
}

func (EitherKind[E]) Join(ffa Erased, inner Inner) Erased {
	outer := eitherRepr[E](ffa)
	if !outer.isRight {
		return outer
	}
	return eitherRepr[E](inner(outer.right))
}
