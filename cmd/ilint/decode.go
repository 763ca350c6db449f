package main

import (
	"fmt"

	"github.com/dadrian/ilint/textrep"
	"github.com/spf13/cobra"
)

func decodeCmd(a *app) *cobra.Command {
	var in string
	var raw, signed bool

	cmd := &cobra.Command{
		Use:   "decode [hex...]",
		Short: "Decode ILInt bytes",
		Long: `Decode concatenated ILInt bytes and print one value per line.

Input is hex ("f9 01 23", "0xF9,0x01,0x23", "f9:01:23") unless --raw is
set, in which case the bytes are read as-is from --in or stdin. With
--signed every value is sign-mapped back to a signed integer.

Values decoded before a malformed encoding are still printed.

Example:
  ilint decode f90123 f800
  ilint decode --signed 01 02`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw && len(args) > 0 {
				return fmt.Errorf("--raw reads from --in or stdin, not arguments")
			}
			src, err := readInput(cmd, in, args)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			b := src
			if !raw {
				if b, err = textrep.ParseHex(src); err != nil {
					return err
				}
			}
			vs, err := textrep.DecodeBytes(b, signed)
			a.log.Debug("decoded", "values", len(vs), "bytes", len(b))
			fmt.Fprint(cmd.OutOrStdout(), textrep.Format(vs))
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", "Input file (- for stdin)")
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Read binary bytes instead of hex")
	cmd.Flags().BoolVarP(&signed, "signed", "s", false, "Decode values as sign-mapped integers")

	return cmd
}
