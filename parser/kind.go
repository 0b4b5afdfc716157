// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

import "code.hybscloud.com/functional"

type erased = functional.Erased

// ResultKind is the brand of [Result]. It is a Functor, Applicative, Monad
// and Alternative with the message-wrapping rules of [Map], [Apply],
// [Join] and [Alternate].
type ResultKind struct{}

// Kind converts r for use with the generic operations.
func (r Result[T]) Kind() functional.Kind[ResultKind, T] {
	return functional.FromRepr[ResultKind, T](Result[erased]{
		state:       r.state,
		value:       r.value,
		message:     r.message,
		errorPrefix: r.errorPrefix,
		errorSuffix: r.errorSuffix,
	})
}

// ResultOf projects a Kind back to its Result.
func ResultOf[T any](k functional.Kind[ResultKind, T]) Result[T] {
	r := resultRepr(k.Repr())
	if r.state != Parsed {
		return retag[T](r)
	}
	out := Success(functional.Cast[T](r.value))
	out.errorPrefix, out.errorSuffix = r.errorPrefix, r.errorSuffix
	return out
}

func resultRepr(e erased) Result[erased] {
	r, _ := e.(Result[erased])
	return r
}

func (ResultKind) Pure(a erased) erased {
	return Success(a)
}

func (ResultKind) Map(f func(erased) erased, fa erased) erased {
	return Map(f, resultRepr(fa))
}

func (ResultKind) Apply(ff, fa erased, lower functional.Lower) erased {
	rf := resultRepr(ff)
	if rf.state != Parsed {
		return Apply(retag[func(erased) erased](rf), resultRepr(fa))
	}
	return Map(lower(rf.value), resultRepr(fa))
}

func (ResultKind) Join(ffa erased, inner functional.Inner) erased {
	outer := resultRepr(ffa)
	if outer.state != Parsed {
		return outer
	}
	return resultRepr(inner(outer.value))
}

func (ResultKind) Empty() erased {
	return Result[erased]{}
}

func (ResultKind) Alternate(lhs, rhs erased) erased {
	return Alternate(resultRepr(lhs), resultRepr(rhs))
}
