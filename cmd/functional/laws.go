// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"code.hybscloud.com/functional"
	"code.hybscloud.com/functional/parser"
	"github.com/spf13/cobra"
)

var instanceNames = []string{"optional", "identity", "either", "cont", "result", "partial"}

func newLawsCmd(c *cli) *cobra.Command {
	var instances []string

	cmd := &cobra.Command{
		Use:   "laws",
		Short: "Print the type-class operations for each instance",
		Long: `Print pure, map, apply, join, bind, empty and alternate for each instance.

Example: functional laws --instance optional --instance result`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := instances
			if len(selected) == 0 || slices.Contains(selected, "all") {
				selected = instanceNames
			}
			for _, name := range selected {
				if !slices.Contains(instanceNames, name) {
					return fmt.Errorf("unknown instance %q: want one of %s or all", name, strings.Join(instanceNames, ", "))
				}
			}
			for _, name := range selected {
				c.log.Debug("printing instance", "instance", name)
				p := &printer{w: c.out, c: c}
				p.header(name)
				runInstance(p, name)
				fmt.Fprintln(c.out)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&instances, "instance", nil, "Instance to print (repeatable): "+strings.Join(instanceNames, ", ")+" or all")
	return cmd
}

type printer struct {
	w io.Writer
	c *cli
}

func (p *printer) header(name string) {
	fmt.Fprintln(p.w, p.c.paint(ansiBold, name))
}

func (p *printer) line(op, rendering string) {
	fmt.Fprintf(p.w, "\t%s: %s\n", op, rendering)
}

// shows renders the containers used by the demonstrations.
type shows[F any] struct {
	ints   func(functional.Kind[F, int]) string
	floats func(functional.Kind[F, float64]) string
	nested func(functional.Kind[F, functional.Kind[F, int]]) string
}

func half(v int) float64 { return float64(v) * 0.5 }

func showFunctor[F functional.Functor[F]](p *printer, s shows[F]) {
	p.line("pure", s.ints(functional.Pure[F](15)))
	p.line("map", s.floats(functional.Map(half, functional.Pure[F](15))))
}

func showApplicative[F functional.Applicative[F]](p *printer, s shows[F]) {
	p.line("apply", s.floats(functional.Apply(functional.Pure[F](half), functional.Pure[F](15))))
}

func showMonad[F functional.Monad[F]](p *printer, s shows[F]) {
	nested := functional.Pure[F](functional.Pure[F](15))
	p.line("join", s.nested(nested)+" -> "+s.ints(functional.Join(nested)))
	p.line("bind", s.floats(functional.Bind(func(v int) functional.Kind[F, float64] {
		return functional.Pure[F](half(v))
	}, functional.Pure[F](15))))
	chain := functional.Bind(func(v float64) functional.Kind[F, int] {
		return functional.Pure[F](int(v))
	}, functional.Bind(func(v int) functional.Kind[F, float64] {
		return functional.Pure[F](half(v))
	}, functional.Pure[F](15)))
	p.line("chain", s.ints(chain))
}

func showAlternative[F functional.Alternative[F]](p *printer, s shows[F]) {
	empty := functional.Empty[F, int]()
	p.line("empty", s.ints(empty))
	p.line("alternate (left empty)", s.ints(functional.Alternate(empty, functional.Pure[F](15))))
	p.line("alternate (right empty)", s.ints(functional.Alternate(functional.Pure[F](15), empty)))
}

func runInstance(p *printer, name string) {
	switch name {
	case "optional":
		s := shows[functional.OptionalKind]{
			ints: func(k functional.Kind[functional.OptionalKind, int]) string {
				return functional.OptionalOf(k).String()
			},
			floats: func(k functional.Kind[functional.OptionalKind, float64]) string {
				return functional.OptionalOf(k).String()
			},
			nested: func(k functional.Kind[functional.OptionalKind, functional.Kind[functional.OptionalKind, int]]) string {
				return functional.OptionalOf(functional.Map(functional.OptionalOf[int], k)).String()
			},
		}
		showFunctor(p, s)
		showApplicative(p, s)
		showMonad(p, s)
		showAlternative(p, s)
		showOptionalRecord(p)
	case "identity":
		s := shows[functional.IdentityKind]{
			ints: func(k functional.Kind[functional.IdentityKind, int]) string {
				return functional.IdentityOf(k).String()
			},
			floats: func(k functional.Kind[functional.IdentityKind, float64]) string {
				return functional.IdentityOf(k).String()
			},
			nested: func(k functional.Kind[functional.IdentityKind, functional.Kind[functional.IdentityKind, int]]) string {
				return functional.IdentityOf(functional.Map(functional.IdentityOf[int], k)).String()
			},
		}
		showFunctor(p, s)
		showApplicative(p, s)
		showMonad(p, s)
	case "either":
		type ek = functional.EitherKind[string]
		s := shows[ek]{
			ints: func(k functional.Kind[ek, int]) string {
				return functional.EitherOf(k).String()
			},
			floats: func(k functional.Kind[ek, float64]) string {
				return functional.EitherOf(k).String()
			},
			nested: func(k functional.Kind[ek, functional.Kind[ek, int]]) string {
				return functional.EitherOf(functional.Map(functional.EitherOf[string, int], k)).String()
			},
		}
		showFunctor(p, s)
		showApplicative(p, s)
		showMonad(p, s)
		left := functional.Left[string, int]("boom").Kind()
		p.line("map (left)", s.floats(functional.Map(half, left)))
	case "cont":
		type ck = functional.ContKind[string]
		s := shows[ck]{
			ints: func(k functional.Kind[ck, int]) string {
				return "Cont{" + functional.RunWith(functional.ContOf(k), func(v int) string { return fmt.Sprint(v) }) + "}"
			},
			floats: func(k functional.Kind[ck, float64]) string {
				return "Cont{" + functional.RunWith(functional.ContOf(k), func(v float64) string { return fmt.Sprint(v) }) + "}"
			},
			nested: func(k functional.Kind[ck, functional.Kind[ck, int]]) string {
				return "Cont{" + functional.RunWith(functional.ContOf(k), func(inner functional.Kind[ck, int]) string {
					return "Cont{" + functional.RunWith(functional.ContOf(inner), func(v int) string { return fmt.Sprint(v) }) + "}"
				}) + "}"
			},
		}
		showFunctor(p, s)
		showApplicative(p, s)
		showMonad(p, s)
	case "result":
		s := shows[parser.ResultKind]{
			ints: func(k functional.Kind[parser.ResultKind, int]) string {
				return parser.ResultOf(k).String()
			},
			floats: func(k functional.Kind[parser.ResultKind, float64]) string {
				return parser.ResultOf(k).String()
			},
			nested: func(k functional.Kind[parser.ResultKind, functional.Kind[parser.ResultKind, int]]) string {
				return parser.ResultOf(functional.Map(parser.ResultOf[int], k)).String()
			},
		}
		showFunctor(p, s)
		showApplicative(p, s)
		showMonad(p, s)
		showAlternative(p, s)
		failed := parser.Alternate(parser.Failure[int]("A"), parser.Failure[int]("B"))
		p.line("alternate (both failed)", parser.Map(func(v int) int { return v }, failed).String())
	case "partial":
		f := functional.Partial3[int, float64, float64, float64](func(a int, b, c float64) float64 {
			return float64(a)*b + c
		})
		p.line("all at once", fmt.Sprint(f.Call(15, 5, 1)))
		p.line("1 then 2", fmt.Sprint(f.With(15).Call(5, 1)))
		p.line("2 then 1", fmt.Sprint(f.With2(15, 5).Call(1)))
	}
}

type optionalRecord struct {
	X int
	Y float64
}

func showOptionalRecord(p *printer) {
	mk := functional.Curry2(func(x int, y float64) optionalRecord {
		return optionalRecord{X: x, Y: y}
	})
	present := functional.Apply(functional.Map(mk, functional.Some(12).Kind()), functional.Some(5.0).Kind())
	absent := functional.Apply(functional.Map(mk, functional.None[int]().Kind()), functional.Some(5.0).Kind())
	p.line("record", functional.OptionalOf(present).String())
	p.line("record (empty)", functional.OptionalOf(absent).String())
}
