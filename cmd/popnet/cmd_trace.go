package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/popnet/internal/logging"
	"github.com/katalvlaran/popnet/trace"
)

type traceOutput struct {
	Seeds  []int   `json:"seeds"`
	Order  []int   `json:"order"`
	Levels [][]int `json:"levels"`
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Trace contacts of contacts, hop by hop",
		Long: `Expand from the given agents over the contact layers and print the agents
first reached at each hop. --depth 0 expands until nothing new is reached.`,
		Example: `  popnet trace --agent 0 --depth 2
  popnet trace --agent 0 --agent 7 --layer h --layer s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			agents, _ := cmd.Flags().GetIntSlice("agent")
			depth, _ := cmd.Flags().GetInt("depth")
			layers, _ := cmd.Flags().GetStringSlice("layer")

			p, logger, err := loadPopulation(cmd)
			if err != nil {
				return err
			}

			opts := []trace.Option{
				trace.WithContext(cmd.Context()),
				trace.WithMaxDepth(depth),
				trace.WithOnVisit(func(agent, d int) error {
					logger.Log(cmd.Context(), logging.LevelTrace, "reached", slog.Int("agent", agent), slog.Int("depth", d))
					return nil
				}),
			}
			if len(layers) > 0 {
				opts = append(opts, trace.WithLayers(layers...))
			}

			res, err := trace.Trace(p.Contacts(), agents, opts...)
			if err != nil {
				return fmt.Errorf("trace: %w", err)
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd.OutOrStdout(), traceOutput{Seeds: agents, Order: res.Order, Levels: res.Levels})
			}
			for d, level := range res.Levels {
				fmt.Fprintf(cmd.OutOrStdout(), "hop %d: %d agents %v\n", d, len(level), level)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reached: %d\n", len(res.Order))
			return nil
		},
	}

	cmd.Flags().IntSlice("agent", nil, "Seed agent index (repeatable)")
	cmd.Flags().Int("depth", 1, "Maximum number of hops (0 = unlimited)")
	cmd.Flags().StringSlice("layer", nil, "Restrict to these layers (repeatable)")
	_ = cmd.MarkFlagRequired("agent")

	return cmd
}
