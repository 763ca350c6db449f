package main

import (
	"fmt"
	"strings"

	"github.com/dadrian/ilint"
	"github.com/dadrian/ilint/textrep"
	"github.com/spf13/cobra"
)

func sizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size <literal>...",
		Short: "Print the encoded size of each literal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := textrep.Parse([]byte(strings.Join(args, " ")))
			if err != nil {
				return err
			}
			for _, v := range vs {
				n := ilint.EncodedSize(v.Bits)
				a.log.Debug("size", "value", v.String(), "size", n)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", v, n)
			}
			return nil
		},
	}
}

func headerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "header <hex>...",
		Short: "Print the total encoding size announced by each header byte",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := textrep.ParseHex([]byte(strings.Join(args, " ")))
			if err != nil {
				return err
			}
			for _, h := range b {
				n := ilint.DecodedSize(h)
				a.log.Debug("header", "header", h, "size", n)
				fmt.Fprintf(cmd.OutOrStdout(), "%#02x\t%d\n", h, n)
			}
			return nil
		},
	}
}
