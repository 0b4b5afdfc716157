// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

import "fmt"

// State is the state of a [Result].
type State uint8

const (
	// NotParsed means no value has been produced. It is the zero State.
	NotParsed State = iota
	// Parsed means a value has been produced.
	Parsed
	// Failed means parsing failed with a message.
	Failed
)

func (s State) String() string {
	switch s {
	case NotParsed:
		return "NotParsed"
	case Parsed:
		return "Parsed"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Result is the outcome of parsing: not yet parsed, parsed to a value of
// type T, or failed with a message.
//
// Each Result also carries an error prefix and suffix. They take effect
// only when a failed Result is transformed by [Map], [Apply] or
// [Alternate], which bake them into the new message as
// prefix + " " + message + " " + suffix.
//
// The zero Result is NotParsed.
type Result[T any] struct {
	state       State
	value       T
	message     string
	errorPrefix string
	errorSuffix string
}

// Success creates a parsed Result.
func Success[T any](v T) Result[T] {
	return Result[T]{state: Parsed, value: v}
}

// Failure creates a failed Result.
func Failure[T any](message string) Result[T] {
	return Result[T]{state: Failed, message: message}
}

// Unparsed creates a NotParsed Result.
func Unparsed[T any]() Result[T] {
	return Result[T]{}
}

// State returns the state of r.
func (r Result[T]) State() State { return r.state }

// IsParsed returns true if r holds a value.
func (r Result[T]) IsParsed() bool { return r.state == Parsed }

// IsFailed returns true if r failed.
func (r Result[T]) IsFailed() bool { return r.state == Failed }

// IsNotParsed returns true if r has not produced anything.
func (r Result[T]) IsNotParsed() bool { return r.state == NotParsed }

// Get returns the value and true, or zero and false.
func (r Result[T]) Get() (T, bool) {
	if r.state == Parsed {
		return r.value, true
	}
	var zero T
	return zero, false
}

// Message returns the failure message and true, or "" and false.
// Pending prefix and suffix are not applied.
func (r Result[T]) Message() (string, bool) {
	if r.state == Failed {
		return r.message, true
	}
	return "", false
}

// ErrorPrefix returns the pending error prefix.
func (r Result[T]) ErrorPrefix() string { return r.errorPrefix }

// ErrorSuffix returns the pending error suffix.
func (r Result[T]) ErrorSuffix() string { return r.errorSuffix }

// WithErrorPrefix returns r with its error prefix replaced.
func (r Result[T]) WithErrorPrefix(prefix string) Result[T] {
	r.errorPrefix = prefix
	return r
}

// WithErrorSuffix returns r with its error suffix replaced.
func (r Result[T]) WithErrorSuffix(suffix string) Result[T] {
	r.errorSuffix = suffix
	return r
}

// wrapped returns the failure message with the pending prefix and suffix
// baked in.
func (r Result[T]) wrapped() string {
	return r.errorPrefix + " " + r.message + " " + r.errorSuffix
}

// Err returns nil unless r failed. For a failed Result it returns a
// *ParseError whose message includes the pending prefix and suffix when
// either is set.
func (r Result[T]) Err() error {
	if r.state != Failed {
		return nil
	}
	if r.errorPrefix == "" && r.errorSuffix == "" {
		return &ParseError{Message: r.message}
	}
	return &ParseError{Message: r.wrapped()}
}

func (r Result[T]) String() string {
	switch r.state {
	case Parsed:
		return fmt.Sprintf("Parsed{%v}", r.value)
	case Failed:
		return fmt.Sprintf("Failed{%s}", r.message)
	default:
		return "NotParsed"
	}
}

// ParseError is the error form of a failed [Result].
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Message
}

// failWrapped is the failure produced when a failed Result is transformed:
// the pending prefix and suffix are consumed into the message.
func failWrapped[R, T any](r Result[T]) Result[R] {
	return Result[R]{state: Failed, message: r.wrapped()}
}

// retag converts a Result without a value to another element type,
// keeping its state, message, prefix and suffix.
func retag[R, T any](r Result[T]) Result[R] {
	return Result[R]{
		state:       r.state,
		message:     r.message,
		errorPrefix: r.errorPrefix,
		errorSuffix: r.errorSuffix,
	}
}

// withContext prefixes the message of a failed Result. A pending prefix or
// suffix is baked in first, so the outer context always precedes it. Other
// states pass through unchanged.
func withContext[T any](context string, r Result[T]) Result[T] {
	if r.state != Failed {
		return r
	}
	if r.errorPrefix != "" || r.errorSuffix != "" {
		return Result[T]{state: Failed, message: context + r.wrapped()}
	}
	r.message = context + r.message
	return r
}

// Map applies f to the parsed value.
//
// NotParsed stays NotParsed. Failed becomes Failed with the message
// prefix + " " + message + " " + suffix, and the new Result has an empty
// prefix and suffix. f is only called on a parsed value.
func Map[T, R any](f func(T) R, r Result[T]) Result[R] {
	switch r.state {
	case Parsed:
		return Success(f(r.value))
	case Failed:
		return failWrapped[R](r)
	default:
		return Result[R]{}
	}
}

// Apply applies the function held by rf to r.
//
// A parsed rf delegates to [Map]. A NotParsed rf gives NotParsed and a
// failed rf gives the failure wrapped with rf's prefix and suffix; in both
// cases r is ignored.
func Apply[T, R any](rf Result[func(T) R], r Result[T]) Result[R] {
	switch rf.state {
	case Parsed:
		return Map(rf.value, r)
	case Failed:
		return failWrapped[R](rf)
	default:
		return Result[R]{}
	}
}

// Alternate chooses between two Results.
//
// A parsed lhs is returned unchanged. A NotParsed lhs yields rhs unchanged.
// A failed lhs yields rhs with its prefix rewritten to
//
//	"alternative: [" + lhs message (wrapped) + " | " + rhs prefix + "]"
//
// and its suffix kept, so a chain of failed alternatives accumulates a
// trace of every branch attempted.
func Alternate[T any](lhs, rhs Result[T]) Result[T] {
	switch lhs.state {
	case Parsed:
		return lhs
	case Failed:
		rhs.errorPrefix = "alternative: [" + lhs.wrapped() + " | " + rhs.errorPrefix + "]"
		return rhs
	default:
		return rhs
	}
}

// OneOf folds [Alternate] over rs from the left. With no arguments it
// returns NotParsed.
func OneOf[T any](rs ...Result[T]) Result[T] {
	var acc Result[T]
	for _, r := range rs {
		acc = Alternate(acc, r)
	}
	return acc
}

// Join flattens a nested Result. A parsed outer yields the inner Result.
// A NotParsed or failed outer is retagged unchanged, so that
// Bind(f, r) = Join(Map(f, r)) fails exactly as Map(f, r) does.
func Join[T any](rr Result[Result[T]]) Result[T] {
	if rr.state == Parsed {
		return rr.value
	}
	return retag[T](rr)
}

// Bind sequences a dependent parse: Join(Map(f, r)).
func Bind[T, R any](f func(T) Result[R], r Result[T]) Result[R] {
	return Join(Map(f, r))
}
