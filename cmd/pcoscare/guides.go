package main

import (
	"fmt"

	"github.com/dshills/pcoscare/internal/advice"
	"github.com/spf13/cobra"
)

func newGuidesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guides",
		Short: "List built-in guidance documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := advice.List()
			if err != nil {
				return err
			}
			for _, n := range names {
				g, err := advice.LoadBuiltin(n)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", n, g.Title)
			}
			return nil
		},
	}
}
