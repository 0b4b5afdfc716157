// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"code.hybscloud.com/functional"
	"code.hybscloud.com/functional/parser"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
)

// record is the demonstration target: {"a": number, "b": number}.
type record struct {
	A int
	B float64
}

func (r record) String() string {
	return fmt.Sprintf("Record{%d, %g}", r.A, r.B)
}

var recordFields = []string{"a", "b"}

// parseRecord parses a record with one Map and one Apply.
func parseRecord(label string) func(parser.Value) parser.Result[record] {
	return parser.WithObject(label, func(obj parser.Object) parser.Result[record] {
		mk := functional.Curry2(func(a, b parser.Number) record {
			return record{A: int(a), B: float64(b)}
		})
		return parser.Apply(
			parser.Map(mk, parser.ParseField[parser.Number](obj, "a")),
			parser.ParseField[parser.Number](obj, "b"),
		)
	})
}

func newParseCmd(c *cli) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a YAML or JSON document into the demonstration record",
		Long: `Parse a document of the form {"a": <number>, "b": <number>} and print the
record, or the accumulated error trail when parsing fails.

Example: functional parse record.json --label MyStruct`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			c.log.Debug("decoding", "file", args[0], "bytes", len(data))
			return c.runParse(data, label)
		},
	}

	cmd.Flags().StringVar(&label, "label", "Record", "Label used in error messages")
	return cmd
}

func (c *cli) runParse(data []byte, label string) error {
	v, err := parser.Decode(data)
	if err != nil {
		return err
	}
	c.log.Info("decoded", "kind", parser.KindName(v))

	result := parseRecord(label)(v)
	if rec, ok := result.Get(); ok {
		fmt.Fprintln(c.out, c.paint(ansiGreen, rec.String()))
		return nil
	}

	err = result.Err()
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return errors.New("parse: no record produced")
	}
	fmt.Fprintln(c.out, c.paint(ansiRed, "error: ")+pe.Message)
	if obj, ok := v.(parser.Object); ok {
		for _, field := range recordFields {
			if hint := suggest(obj, field); hint != "" {
				fmt.Fprintf(c.out, "hint: field %q is missing; did you mean %q?\n", field, hint)
			}
		}
	}
	return err
}

// suggest returns the member name closest to a missing field, or "" when
// the field is present or nothing matches.
func suggest(obj parser.Object, field string) string {
	if _, ok := obj.Lookup(field); ok {
		return ""
	}
	ranks := fuzzy.RankFindFold(field, obj.Names())
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
