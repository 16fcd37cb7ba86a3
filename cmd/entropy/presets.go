package main

import (
	"fmt"
	"strings"

	"github.com/entropy-lab/entropy"
	"github.com/spf13/cobra"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in palette presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, p := range entropy.Presets() {
				fmt.Fprintf(w, "%-12s %s\n", p.Name, strings.Join(p.Colors, " "))
			}
			return nil
		},
	}
}
