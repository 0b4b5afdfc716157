// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

import (
	"strconv"
	"strings"
)

// with builds a combinator for node type N. A node of another type fails
// with "Expected JSON <kind> for <label>" without calling f; otherwise the
// failure message of f's Result is prefixed with
// "When parsing JSON <kind> for <label>: ".
func with[N Node, R any](kind, label string, f func(N) Result[R]) func(Value) Result[R] {
	return func(v Value) Result[R] {
		n, ok := v.(N)
		if !ok {
			return Failure[R]("Expected JSON " + kind + " for " + label)
		}
		return withContext("When parsing JSON "+kind+" for "+label+": ", f(n))
	}
}

// WithObject runs f on an object node.
func WithObject[R any](label string, f func(Object) Result[R]) func(Value) Result[R] {
	return with("object", label, f)
}

// WithString runs f on a string node.
func WithString[R any](label string, f func(String) Result[R]) func(Value) Result[R] {
	return with("string", label, f)
}

// WithNumber runs f on a number node.
func WithNumber[R any](label string, f func(Number) Result[R]) func(Value) Result[R] {
	return with("number", label, f)
}

// WithList runs f on a list node.
func WithList[R any](label string, f func(List) Result[R]) func(Value) Result[R] {
	return with("list", label, f)
}

// describe returns the JSON kind and the label used by the field
// extractor for node type N.
func describe[N Node]() (kind, label string) {
	var zero N
	switch any(zero).(type) {
	case Object:
		return "object", "Object"
	case String:
		return "string", "String"
	case Number:
		return "number", "Number"
	case List:
		return "list", "List"
	default:
		panic("parser: unknown node type")
	}
}

// Extract projects a node of type N out of v.
func Extract[N Node](v Value) Result[N] {
	kind, label := describe[N]()
	return with(kind, label, Success[N])(v)
}

func fieldContext(name string) string {
	return "When parsing JSON object field \"" + name + "\": "
}

// missingField is the failure for an absent member. The field context is
// left as the pending error prefix, so the raw message stays exact and the
// context appears once the failure is wrapped by Map, Apply or an enclosing
// combinator.
func missingField[R any](name string) Result[R] {
	return Failure[R]("Expected JSON object field \"" + name + "\"").
		WithErrorPrefix(strings.TrimSuffix(fieldContext(name), " "))
}

// ParseField extracts the first member named name as a node of type N.
//
// A missing member fails with `Expected JSON object field "<name>"` and
// the field context as its error prefix.
// Otherwise the result of [Extract] is returned with failures prefixed by
// `When parsing JSON object field "<name>": `.
func ParseField[N Node](obj Object, name string) Result[N] {
	v, ok := obj.Lookup(name)
	if !ok {
		return missingField[N](name)
	}
	return withContext(fieldContext(name), Extract[N](v))
}

// ParseFieldWith extracts the first member named name with p.
// Context and missing-member handling match [ParseField].
func ParseFieldWith[R any](obj Object, name string, p func(Value) Result[R]) Result[R] {
	v, ok := obj.Lookup(name)
	if !ok {
		return missingField[R](name)
	}
	return withContext(fieldContext(name), p(v))
}

// ParseOptionalField is [ParseField] except that a missing member yields
// NotParsed, so that [Alternate] can supply a default.
func ParseOptionalField[N Node](obj Object, name string) Result[N] {
	if _, ok := obj.Lookup(name); !ok {
		return Unparsed[N]()
	}
	return ParseField[N](obj, name)
}

// ParseList applies p to every element of l. The first failure stops the
// traversal and is prefixed with "When parsing JSON list element <i>: ".
// A NotParsed element makes the whole list NotParsed.
func ParseList[R any](l List, p func(Value) Result[R]) Result[[]R] {
	out := make([]R, 0, len(l))
	for i, e := range l {
		r := p(e)
		switch r.state {
		case Parsed:
			out = append(out, r.value)
		case Failed:
			return retag[[]R](withContext("When parsing JSON list element "+strconv.Itoa(i)+": ", r))
		default:
			return retag[[]R](r)
		}
	}
	return Success(out)
}
