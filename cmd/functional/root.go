// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// cli holds the state shared by all subcommands.
type cli struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger

	colorMode string
	logLevel  string
	color     bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:           "functional",
		Short:         "Type-class and value-tree parser demonstrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.colorMode, "color", "auto", "Colorize output: auto, always or never")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "Diagnostic log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newLawsCmd(c),
		newParseCmd(c),
	)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd
}

func (c *cli) setup() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", c.logLevel, err)
	}
	c.log = slog.New(slog.NewTextHandler(c.errOut, &slog.HandlerOptions{
		Level: level,
	}))

	switch c.colorMode {
	case "always":
		c.color = true
	case "never":
		c.color = false
	case "auto":
		c.color = isTerminal(c.out)
	default:
		return fmt.Errorf("invalid --color %q: want auto, always or never", c.colorMode)
	}
	c.log.Debug("configured", "color", c.color, "level", level)
	return nil
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
)

func (c *cli) paint(code, s string) string {
	if !c.color {
		return s
	}
	return code + s + ansiReset
}
