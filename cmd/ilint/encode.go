package main

import (
	"encoding/hex"
	"fmt"

	"github.com/dadrian/ilint"
	"github.com/dadrian/ilint/textrep"
	"github.com/spf13/cobra"
)

func encodeCmd(a *app) *cobra.Command {
	var in, out string
	var raw, validate bool

	cmd := &cobra.Command{
		Use:   "encode [literal...]",
		Short: "Encode integer literals",
		Long: `Encode integer literals into concatenated ILInt bytes.

Literals are decimal or 0x-prefixed hex with an optional u (unsigned) or
i (signed) suffix. Output is hex unless --raw is set.

Example:
  ilint encode 247 248 0x021B
  ilint encode -- -1 42i
  ilint encode --validate --in values.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, in, args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			vs, err := textrep.Parse(src)
			if err != nil {
				return err
			}
			b, err := textrep.EncodeValues(vs)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			var off int
			for _, v := range vs {
				n := ilint.EncodedSize(v.Bits)
				a.log.Debug("encoded", "value", v.String(), "size", n, "offset", off)
				off += n
			}
			if validate {
				return nil
			}

			w, closeOut, err := openOutput(cmd, out)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			if raw {
				_, err = w.Write(b)
			} else {
				_, err = fmt.Fprintln(w, hex.EncodeToString(b))
			}
			if cerr := closeOut(); err == nil {
				err = cerr
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "Input file of literals (- for stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "Output file (- for stdout)")
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Write binary bytes instead of hex")
	cmd.Flags().BoolVar(&validate, "validate", false, "Parse and encode only; write no output")

	return cmd
}
