// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package parser_test

import (
	"testing"

	"code.hybscloud.com/functional/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id[T any](v T) T { return v }

func TestZeroResultIsNotParsed(t *testing.T) {
	var r parser.Result[int]
	assert.Equal(t, parser.NotParsed, r.State())
	assert.True(t, r.IsNotParsed())
	assert.Equal(t, parser.Unparsed[int](), r)
	assert.NoError(t, r.Err())
	assert.Equal(t, "NotParsed", r.String())
}

func TestMapSuccess(t *testing.T) {
	r := parser.Map(func(v int) float64 { return float64(v) * 0.5 }, parser.Success(15))
	v, ok := r.Get()
	require.True(t, ok)
	assert.Equal(t, 7.5, v)
	assert.Equal(t, "Parsed{7.5}", r.String())
}

func TestMapNotParsed(t *testing.T) {
	calls := 0
	r := parser.Map(func(v int) int { calls++; return v }, parser.Unparsed[int]())
	assert.True(t, r.IsNotParsed())
	assert.Zero(t, calls)
}

func TestMapFailureWrapsMessage(t *testing.T) {
	calls := 0
	in := parser.Failure[int]("bad").WithErrorPrefix("pre").WithErrorSuffix("post")
	r := parser.Map(func(v int) string { calls++; return "" }, in)

	assert.Zero(t, calls)
	msg, ok := r.Message()
	require.True(t, ok)
	assert.Equal(t, "pre bad post", msg)
	assert.Empty(t, r.ErrorPrefix())
	assert.Empty(t, r.ErrorSuffix())
}

func TestMapFailureEmptyContext(t *testing.T) {
	r := parser.Map(id[int], parser.Failure[int]("bad"))
	msg, _ := r.Message()
	assert.Equal(t, " bad ", msg)
}

func TestApply(t *testing.T) {
	half := func(v int) float64 { return float64(v) * 0.5 }

	r := parser.Apply(parser.Success(half), parser.Success(15))
	v, ok := r.Get()
	require.True(t, ok)
	assert.Equal(t, 7.5, v)

	r = parser.Apply(parser.Unparsed[func(int) float64](), parser.Failure[int]("ignored"))
	assert.True(t, r.IsNotParsed())

	ff := parser.Failure[func(int) float64]("no func").WithErrorPrefix("[f]")
	r = parser.Apply(ff, parser.Failure[int]("ignored"))
	msg, _ := r.Message()
	assert.Equal(t, "[f] no func ", msg)

	r = parser.Apply(parser.Success(half), parser.Failure[int]("no value"))
	msg, _ = r.Message()
	assert.Equal(t, " no value ", msg)
}

func TestAlternateParsedWins(t *testing.T) {
	lhs := parser.Success(1).WithErrorPrefix("kept")
	got := parser.Alternate(lhs, parser.Success(2))
	assert.Equal(t, lhs, got)
}

func TestAlternateNotParsedYieldsRHS(t *testing.T) {
	rhs := parser.Failure[int]("B").WithErrorPrefix("p").WithErrorSuffix("s")
	got := parser.Alternate(parser.Unparsed[int](), rhs)
	assert.Equal(t, rhs, got)
}

func TestAlternateTwoBranches(t *testing.T) {
	got := parser.Alternate(parser.Failure[int]("A"), parser.Success(5))
	v, ok := got.Get()
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, "alternative: [ A  | ]", got.ErrorPrefix())

	failed := parser.Alternate(parser.Failure[int]("A"), parser.Failure[int]("B"))
	msg, _ := parser.Map(id[int], failed).Message()
	assert.Equal(t, "alternative: [ A  | ] B ", msg)
}

func TestAlternateThreeBranches(t *testing.T) {
	got := parser.Alternate(
		parser.Alternate(parser.Failure[int]("A"), parser.Failure[int]("B")),
		parser.Failure[int]("C"),
	)
	assert.Equal(t, "alternative: [alternative: [ A  | ] B  | ]", got.ErrorPrefix())

	msg, _ := parser.Map(id[int], got).Message()
	assert.Equal(t, "alternative: [alternative: [ A  | ] B  | ] C ", msg)

	assert.Equal(t, got, parser.OneOf(parser.Failure[int]("A"), parser.Failure[int]("B"), parser.Failure[int]("C")))
}

func TestAlternateThreadsRHSContext(t *testing.T) {
	lhs := parser.Failure[int]("A").WithErrorPrefix("first").WithErrorSuffix("!")
	rhs := parser.Failure[int]("B").WithErrorPrefix("second").WithErrorSuffix("?")
	got := parser.Alternate(lhs, rhs)

	assert.Equal(t, "alternative: [first A ! | second]", got.ErrorPrefix())
	assert.Equal(t, "?", got.ErrorSuffix())
	msg, _ := got.Message()
	assert.Equal(t, "B", msg)
}

func TestOneOfEmpty(t *testing.T) {
	assert.True(t, parser.OneOf[int]().IsNotParsed())
}

func TestJoinAndBind(t *testing.T) {
	inner := parser.Success(3)
	assert.Equal(t, inner, parser.Join(parser.Success(inner)))

	outer := parser.Failure[parser.Result[int]]("outer").WithErrorPrefix("p")
	joined := parser.Join(outer)
	msg, _ := joined.Message()
	assert.Equal(t, "outer", msg)
	assert.Equal(t, "p", joined.ErrorPrefix())

	calls := 0
	f := func(v int) parser.Result[string] { calls++; return parser.Success("x") }
	in := parser.Failure[int]("bad").WithErrorPrefix("pre")
	bound := parser.Bind(f, in)
	mapped := parser.Map(func(int) parser.Result[string] { return parser.Success("x") }, in)
	boundMsg, _ := bound.Message()
	mappedMsg, _ := mapped.Message()
	assert.Equal(t, mappedMsg, boundMsg)
	assert.Zero(t, calls)

	ok := parser.Bind(func(v int) parser.Result[int] { return parser.Success(v * 2) }, parser.Success(21))
	v, _ := ok.Get()
	assert.Equal(t, 42, v)
}

func TestErr(t *testing.T) {
	assert.NoError(t, parser.Success(1).Err())

	err := parser.Failure[int]("bad").Err()
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "bad", pe.Message)
	assert.EqualError(t, err, "parse error: bad")

	err = parser.Failure[int]("bad").WithErrorPrefix("p").Err()
	assert.EqualError(t, err, "parse error: p bad ")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Parsed", parser.Parsed.String())
	assert.Equal(t, "Failed", parser.Failed.String())
	assert.Equal(t, "NotParsed", parser.NotParsed.String())
	assert.Equal(t, "State(9)", parser.State(9).String())
}
