package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// readInput returns the command input: the --in file ("-" for stdin), the
// joined arguments, or stdin when neither is given.
func readInput(cmd *cobra.Command, in string, args []string) ([]byte, error) {
	if in != "" && len(args) > 0 {
		return nil, errors.New("use either --in or arguments, not both")
	}
	if in == "" && len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}
	if in == "" || in == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(in)
}

// openOutput returns the --out destination ("-" or empty for stdout) and a
// close function that must always be called.
func openOutput(cmd *cobra.Command, out string) (io.Writer, func() error, error) {
	if out == "" || out == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(out)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
