// File: root.go
// Role: the cobra root command and the persistent --config/--log-level
// flags every subcommand inherits.
package main

import (
	"github.com/spf13/cobra"

	"github.com/lvlath-rewrite/regraph/internal/config"
	"github.com/lvlath-rewrite/regraph/internal/logging"
)

var (
	cfgFile  string
	logLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rewritectl",
		Short:         "Inspect and rewrite typed-graph hierarchies",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logging.SetLevel(cfg.LogLevel)

			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a rewritectl YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(newLoadCmd())
	root.AddCommand(newMatchCmd())
	root.AddCommand(newRewriteCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newConfigCmd())

	return root
}
