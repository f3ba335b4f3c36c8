// File: match.go
// Role: `rewritectl match` — run FindMatching against a loaded
// hierarchy and print each match as node=>node pairs.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hierarchy"
)

func newMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match <hierarchy.json> <graph-id> <pattern.json>",
		Short: "Find every match of a pattern graph in graph-id",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := hierarchy.Load(args[0])
			if err != nil {
				return err
			}

			patternData, err := os.ReadFile(args[2])
			if err != nil {
				return err
			}
			var pattern graph.Graph
			if err := json.Unmarshal(patternData, &pattern); err != nil {
				return fmt.Errorf("parsing pattern: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "pattern:")
			printView(cmd, pattern.Snapshot())

			matches, err := h.FindMatching(graph.ID(args[1]), &pattern, nil)
			if err != nil {
				return err
			}

			for i, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "match %d:", i)
				for _, p := range pattern.NodeIDs() {
					fmt.Fprintf(cmd.OutOrStdout(), " %s=>%s", p, m[p])
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}

			return nil
		},
	}
}
