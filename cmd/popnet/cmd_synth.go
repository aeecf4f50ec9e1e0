package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type synthSummary struct {
	Size   int            `json:"size"`
	Edges  int            `json:"edges"`
	Layers map[string]int `json:"layers"`
	States map[string]int `json:"states"`
}

func newSynthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a population and print its summary",
		Long: `Build the configured population (attributes and contact layers) and print
the verbose summary: key counts, per-layer edge counts and state counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadPopulation(cmd)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if !jsonOut {
				fmt.Fprintln(cmd.OutOrStdout(), p.Format(true))
				return nil
			}

			out := synthSummary{
				Size:   p.Len(),
				Edges:  p.Contacts().Len(),
				Layers: make(map[string]int),
				States: make(map[string]int),
			}
			c := p.Contacts()
			for _, k := range c.Keys() {
				l, _ := c.Layer(k)
				out.Layers[k] = l.Len()
			}
			for _, k := range p.StateKeys() {
				n, err := p.Count(k)
				if err != nil {
					return err
				}
				out.States[k] = n
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
