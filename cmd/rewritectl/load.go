// File: load.go
// Role: `rewritectl load` — parse a hierarchy document and print a
// one-line summary per node.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvlath-rewrite/regraph/graph"
	"github.com/lvlath-rewrite/regraph/hierarchy"
)

func newLoadCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "load <hierarchy.json>",
		Short: "Load a hierarchy document and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := hierarchy.Load(args[0])
			if err != nil {
				return err
			}

			for _, id := range h.NodeIDs() {
				if g, ok := h.Graph(id); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\tgraph\tnodes=%d\n", id, len(g.NodeIDs()))
					if verbose {
						printView(cmd, g.Snapshot())
					}
					continue
				}
				r, _ := h.Rule(id)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\trule\tL=%d P=%d R=%d\n",
					id, len(r.L.NodeIDs()), len(r.P.NodeIDs()), len(r.R.NodeIDs()))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each graph's full node/edge structure")

	return cmd
}

// printView renders a read-only graph.View, the same shape match.go's
// pattern inspection uses.
func printView(cmd *cobra.Command, v graph.View) {
	fmt.Fprintf(cmd.OutOrStdout(), "  directed=%v nodes=%v\n", v.Directed, v.Nodes)
	for _, e := range v.Edges {
		fmt.Fprintf(cmd.OutOrStdout(), "  edge %s -> %s\n", e.From, e.To)
	}
}
