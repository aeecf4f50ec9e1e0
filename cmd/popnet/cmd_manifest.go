package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/popnet/tabular"
)

func newManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Print the reduced export of the population",
		Long: `Print the population manifest: a fresh ID, the size, every declared field,
the layer keys with edge counts and the side-mapping keys. No per-agent or
per-edge data is included. Output is YAML, or JSON with --json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadPopulation(cmd)
			if err != nil {
				return err
			}
			m, err := tabular.Shrink(p)
			if err != nil {
				return err
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd.OutOrStdout(), m)
			}
			return m.Encode(cmd.OutOrStdout())
		},
	}
}
