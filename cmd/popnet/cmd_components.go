package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/popnet/trace"
)

type componentsOutput struct {
	Count   int   `json:"count"`
	Largest int   `json:"largest"`
	Sizes   []int `json:"sizes"`
}

func newComponentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Summarize connected clusters of the contact network",
		Example: `  popnet components --layer h
  popnet components --layer h --layer s --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			layers, _ := cmd.Flags().GetStringSlice("layer")

			p, _, err := loadPopulation(cmd)
			if err != nil {
				return err
			}
			opts := []trace.Option{trace.WithContext(cmd.Context())}
			if len(layers) > 0 {
				opts = append(opts, trace.WithLayers(layers...))
			}
			comps, err := trace.Components(p.Contacts(), opts...)
			if err != nil {
				return fmt.Errorf("components: %w", err)
			}

			out := componentsOutput{Count: len(comps), Sizes: make([]int, len(comps))}
			for i, comp := range comps {
				out.Sizes[i] = len(comp)
				if len(comp) > out.Largest {
					out.Largest = len(comp)
				}
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "components: %d\nlargest: %d\n", out.Count, out.Largest)
			return nil
		},
	}

	cmd.Flags().StringSlice("layer", nil, "Restrict to these layers (repeatable)")

	return cmd
}
