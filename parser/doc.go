// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package parser projects typed values out of a JSON-like value tree.
//
// A [Result] is NotParsed, Parsed(T) or Failed(message). Failures are values:
// every combinator prefixes what it was attempting, so the outermost message
// reads as a trail such as
//
//	When parsing JSON object field "a": Expected JSON number for Number
//
// [Alternate] is the one place two messages are merged side by side.
//
// Records are built applicatively, mapping a curried constructor over the
// first field and applying the rest:
//
//	parseRecord := parser.WithObject("Record", func(o parser.Object) parser.Result[record] {
//		mk := functional.Curry2(func(a, b parser.Number) record { return record{int(a), float64(b)} })
//		return parser.Apply(
//			parser.Map(mk, parser.ParseField[parser.Number](o, "a")),
//			parser.ParseField[parser.Number](o, "b"),
//		)
//	})
//
// [ResultKind] makes Result an instance of the functional type classes, and
// [Decode] builds a value tree from YAML or JSON text.
package parser
