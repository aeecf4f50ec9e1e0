package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/popnet/population"
)

func newContactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "List the direct contacts of agents",
		Long: `Print the sorted, deduplicated partners of the given agents in each layer
(or only in --layer). Edges count in both directions.`,
		Example: `  popnet contacts --agent 1 --agent 3
  popnet contacts --layer h --agent 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			agents, _ := cmd.Flags().GetIntSlice("agent")
			layer, _ := cmd.Flags().GetString("layer")

			p, _, err := loadPopulation(cmd)
			if err != nil {
				return err
			}
			for _, a := range agents {
				if a < 0 || a >= p.Len() {
					return fmt.Errorf("agent %d: %w", a, population.ErrIndexOutOfRange)
				}
			}

			c := p.Contacts()
			keys := c.Keys()
			if layer != "" {
				if !c.Has(layer) {
					return fmt.Errorf("unknown layer %q (have %v)", layer, keys)
				}
				keys = []string{layer}
			}

			found := make(map[string][]int, len(keys))
			for _, k := range keys {
				l, _ := c.Layer(k)
				found[k] = l.FindContacts(agents)
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd.OutOrStdout(), found)
			}
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", k, found[k])
			}
			return nil
		},
	}

	cmd.Flags().IntSlice("agent", nil, "Agent index (repeatable)")
	cmd.Flags().String("layer", "", "Restrict to one layer")
	_ = cmd.MarkFlagRequired("agent")

	return cmd
}
