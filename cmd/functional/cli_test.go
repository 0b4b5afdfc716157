// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code.hybscloud.com/functional/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLawsOptional(t *testing.T) {
	out, _, err := run(t, "laws", "--instance", "optional", "--color", "never")
	require.NoError(t, err)

	for _, want := range []string{
		"optional\n",
		"\tpure: Some{15}\n",
		"\tmap: Some{7.5}\n",
		"\tapply: Some{7.5}\n",
		"\tbind: Some{7.5}\n",
		"\tchain: Some{7}\n",
		"\tempty: None\n",
		"\talternate (left empty): Some{15}\n",
		"\trecord: Some{{12 5}}\n",
		"\trecord (empty): None\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[")
}

func TestLawsResult(t *testing.T) {
	out, _, err := run(t, "laws", "--instance", "result", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "\tmap: Parsed{7.5}\n")
	assert.Contains(t, out, "\tempty: NotParsed\n")
	assert.Contains(t, out, "\talternate (both failed): Failed{alternative: [ A  | ] B }\n")
}

func TestLawsPartial(t *testing.T) {
	out, _, err := run(t, "laws", "--instance", "partial")
	require.NoError(t, err)
	assert.Contains(t, out, "\tall at once: 76\n")
	assert.Contains(t, out, "\t1 then 2: 76\n")
	assert.Contains(t, out, "\t2 then 1: 76\n")
}

func TestLawsAll(t *testing.T) {
	out, _, err := run(t, "laws")
	require.NoError(t, err)
	for _, name := range instanceNames {
		assert.Contains(t, out, name+"\n")
	}
}

func TestLawsUnknownInstance(t *testing.T) {
	_, _, err := run(t, "laws", "--instance", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown instance "list"`)
}

func TestInvalidFlags(t *testing.T) {
	_, _, err := run(t, "laws", "--color", "sometimes")
	assert.ErrorContains(t, err, `invalid --color "sometimes"`)

	_, _, err = run(t, "laws", "--log-level", "loud")
	assert.ErrorContains(t, err, `invalid --log-level "loud"`)
}

func TestParseRecordFile(t *testing.T) {
	path := writeFile(t, `{"a": 12, "b": 3}`)
	out, _, err := run(t, "parse", path, "--color", "always")
	require.NoError(t, err)
	assert.Equal(t, ansiGreen+"Record{12, 3}"+ansiReset+"\n", out)
}

func TestParseMissingFieldHint(t *testing.T) {
	path := writeFile(t, `{"a": 12, "bb": 3}`)
	out, _, err := run(t, "parse", path, "--label", "MyStruct", "--color", "never")

	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, out, `error: When parsing JSON object for MyStruct: When parsing JSON object field "b": Expected JSON object field "b"`)
	assert.Contains(t, out, `hint: field "b" is missing; did you mean "bb"?`)
	assert.NotContains(t, out, `field "a" is missing`)
	assert.Contains(t, out, "error: "+pe.Message+"\n")
	assert.Equal(t, "parse error: "+pe.Message, err.Error())
}

func TestParseErrorMatchesReturnedError(t *testing.T) {
	path := writeFile(t, `[1, 2]`)
	out, _, err := run(t, "parse", path, "--color", "never")
	require.Error(t, err)
	assert.Equal(t, "parse error: Expected JSON object for Record", err.Error())
	assert.Equal(t, "error: Expected JSON object for Record\n", out)
}

func TestParseDiagnosticsGoToStderr(t *testing.T) {
	path := writeFile(t, `{"a": 12, "b": 3}`)
	out, errOut, err := run(t, "parse", path, "--log-level", "debug", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "Record{12, 3}\n", out)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "kind=object")
}

func TestParseDecodeError(t *testing.T) {
	path := writeFile(t, `{"a": true}`)
	_, _, err := run(t, "parse", path)
	assert.ErrorIs(t, err, parser.ErrUnsupportedNode)

	_, _, err = run(t, "parse", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "read "))
}

func TestSuggest(t *testing.T) {
	obj := parser.Object{{Name: "alpha", Value: parser.Number(1)}, {Name: "b", Value: parser.Number(2)}}
	assert.Equal(t, "", suggest(obj, "b"))
	assert.Equal(t, "alpha", suggest(obj, "a"))
	assert.Equal(t, "", suggest(obj, "zzz"))
}
