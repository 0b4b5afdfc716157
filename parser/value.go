// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser

import (
	"strconv"
	"strings"
)

// Value is a node of a JSON-like value tree.
// Implementations are exactly [Object], [String], [Number] and [List];
// consumers switch on the concrete type.
type Value interface {
	value() // unexported marker method
}

// Member is a named entry of an [Object].
type Member struct {
	Name  string
	Value Value
}

// Object is an ordered sequence of members. Duplicate names are kept in
// the order encountered.
type Object []Member

// String is a string node.
type String string

// Number is a numeric node.
type Number float64

// List is an ordered sequence of nodes.
type List []Value

func (Object) value() {}
func (String) value() {}
func (Number) value() {}
func (List) value()   {}

// Node is the constraint satisfied by the concrete node types.
type Node interface {
	Object | String | Number | List
	Value
}

// Lookup returns the value of the first member named name.
func (o Object) Lookup(name string) (Value, bool) {
	for _, m := range o {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Names returns the member names in order.
func (o Object) Names() []string {
	names := make([]string, len(o))
	for i, m := range o {
		names[i] = m.Name
	}
	return names
}

// KindName returns the JSON kind of v: "object", "string", "number" or
// "list". A nil Value is "null".
func KindName(v Value) string {
	switch v.(type) {
	case Object:
		return "object"
	case String:
		return "string"
	case Number:
		return "number"
	case List:
		return "list"
	default:
		return "null"
	}
}

// Format renders v as compact JSON-like text.
func Format(v Value) string {
	var b strings.Builder
	format(&b, v)
	return b.String()
}

func format(b *strings.Builder, v Value) {
	switch n := v.(type) {
	case Object:
		b.WriteByte('{')
		for i, m := range n {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(m.Name))
			b.WriteByte(':')
			format(b, m.Value)
		}
		b.WriteByte('}')
	case String:
		b.WriteString(strconv.Quote(string(n)))
	case Number:
		b.WriteString(strconv.FormatFloat(float64(n), 'g', -1, 64))
	case List:
		b.WriteByte('[')
		for i, e := range n {
			if i > 0 {
				b.WriteByte(',')
			}
			format(b, e)
		}
		b.WriteByte(']')
	default:
		b.WriteString("null")
	}
}
