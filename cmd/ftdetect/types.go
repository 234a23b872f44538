package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackvity/ftdetect/pkg/filetype"
)

func newTypesCmd() *cobra.Command {
	var aliases bool
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the canonical file type names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, ft := range filetype.All() {
				if a := ft.Aliases(); aliases && len(a) > 0 {
					fmt.Fprintf(out, "%s: %s\n", ft, strings.Join(a, ", "))
					continue
				}
				fmt.Fprintln(out, ft)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&aliases, "aliases", false, "Show the aliases accepted for each name")
	return cmd
}
