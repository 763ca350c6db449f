// Command ilint encodes and decodes ILInt values from the command line.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type app struct {
	verbose bool
	log     *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{log: newLogger(io.Discard, false)}
	rootCmd := &cobra.Command{
		Use:   "ilint",
		Short: "Encode and decode ILInt variable-length integers",
		Long: `ilint converts integer literals to the ILInt binary encoding and back.

Values below 0xF8 take one byte; larger values take a header byte plus
1 to 8 big-endian bytes. Signed values are sign-mapped before encoding.

Negative literals must follow "--" so they are not read as flags:
  ilint encode -- -1 42 0x021B`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every value to stderr")

	rootCmd.AddCommand(
		encodeCmd(a),
		decodeCmd(a),
		sizeCmd(a),
		headerCmd(a),
		versionCmd(),
	)
	return rootCmd
}

// newLogger returns a text logger on w; debug records are kept only when
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
