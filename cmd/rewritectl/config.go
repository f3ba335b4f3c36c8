// File: config.go
// Role: `rewritectl config init` — write a default YAML config file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvlath-rewrite/regraph/internal/config"
)

func newConfigCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "config",
		Short: "Manage rewritectl's configuration file",
	}

	root.AddCommand(&cobra.Command{
		Use:   "init <path>",
		Short: "Write a default configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(config.Default(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])

			return nil
		},
	})

	return root
}
