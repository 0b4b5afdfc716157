// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package functional

import "fmt"

// Optional holds either a value of type A or nothing.
// The zero Optional is None.
type Optional[A any] struct {
	value   A
	present bool
}

// Some creates a present Optional.
func Some[A any](a A) Optional[A] {
	return Optional[A]{value: a, present: true}
}

// None creates an absent Optional.
func None[A any]() Optional[A] {
	return Optional[A]{}
}

// IsSome returns true if a value is present.
func (o Optional[A]) IsSome() bool {
	return o.present
}

// IsNone returns true if no value is present.
func (o Optional[A]) IsNone() bool {
	return !o.present
}

// Get returns the value and true, or zero and false.
func (o Optional[A]) Get() (A, bool) {
	return o.value, o.present
}

// OrElse returns the value if present, otherwise def.
func (o Optional[A]) OrElse(def A) A {
	if o.present {
		return o.value
	}
	return def
}

func (o Optional[A]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some{%v}", o.value)
}

// Kind converts o for use with the generic operations.
func (o Optional[A]) Kind() Kind[OptionalKind, A] {
	return Kind[OptionalKind, A]{repr: Optional[Erased]{value: o.value, present: o.present}}
}

// OptionalOf projects a Kind back to its Optional.
func OptionalOf[A any](k Kind[OptionalKind, A]) Optional[A] {
	r := optionalRepr(k.repr)
	if !r.present {
		return Optional[A]{}
	}
	return Some(cast[A](r.value))
}

// OptionalKind is the brand of [Optional]. It is a Functor, Applicative,
// Monad and Alternative.
type OptionalKind struct{}

func optionalRepr(e Erased) Optional[Erased] {
	r, _ := e.(Optional[Erased])
	return r
}

func (OptionalKind) Pure(a Erased) Erased {
	return Some(a)
}

func (OptionalKind) Map(f func(Erased) Erased, fa Erased) Erased {
	r := optionalRepr(fa)
	if !r.present {
		return Optional[Erased]{}
	}
	return Some(f(r.value))
}

func (k OptionalKind) Apply(ff, fa Erased, lower Lower) Erased {
	fn := optionalRepr(ff)
	if !fn.present {
		return Optional[Erased]{}
	}
	return k.Map(lower(fn.value), fa)
}

func (OptionalKind) Join(ffa Erased, inner Inner) Erased {
	outer := optionalRepr(ffa)
	if !outer.present {
		return Optional[Erased]{}
	}
	return optionalRepr(inner(outer.value))
}

func (OptionalKind) Empty() Erased {
	return Optional[Erased]{}
}

func (OptionalKind) Alternate(lhs, rhs Erased) Erased {
	if l := optionalRepr(lhs); l.present {
		return l
	}
	return optionalRepr(rhs)
}
