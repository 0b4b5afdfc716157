// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package functional

import "fmt"

// Identity is the single-value wrapper. It always holds a value, so
// Map and Apply always call their function and Join unwraps one level.
// It has no absent state and is not an Alternative.
type Identity[A any] struct {
	Value A
}

func (i Identity[A]) String() string {
	return fmt.Sprintf("Identity{%v}", i.Value)
}

// Kind converts i for use with the generic operations.
func (i Identity[A]) Kind() Kind[IdentityKind, A] {
	return Kind[IdentityKind, A]{repr: Identity[Erased]{Value: i.Value}}
}

// IdentityOf projects a Kind back to its Identity.
func IdentityOf[A any](k Kind[IdentityKind, A]) Identity[A] {
	return Identity[A]{Value: cast[A](identityRepr(k.repr).Value)}
}

// IdentityKind is the brand of [Identity].
type IdentityKind struct{}

func identityRepr(e Erased) Identity[Erased] {
	r, _ := e.(Identity[Erased])
	return r
}

func (IdentityKind) Pure(a Erased) Erased {
	return Identity[Erased]{Value: a}
}

func (IdentityKind) Map(f func(Erased) Erased, fa Erased) Erased {
	return Identity[Erased]{Value: f(identityRepr(fa).Value)}
}

func (k IdentityKind) Apply(ff, fa Erased, lower Lower) Erased {
	return k.Map(lower(identityRepr(ff).Value), fa)
}

func (IdentityKind) Join(ffa Erased, inner Inner) Erased {
	return identityRepr(inner(identityRepr(ffa).Value))
}
