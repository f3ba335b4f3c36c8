// File: export.go
// Role: `rewritectl export` — load a hierarchy (which validates it) and
// re-serialize it in normalized form.
package main

import (
	"github.com/spf13/cobra"

	"github.com/lvlath-rewrite/regraph/hierarchy"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <in.json> <out.json>",
		Short: "Load a hierarchy document and re-export it in normalized form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := hierarchy.Load(args[0])
			if err != nil {
				return err
			}

			return h.Export(args[1])
		},
	}
}
