// Package commands implements the wflint command line.
package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wflint/wflint/config"
)

// cfg is the configuration loaded for the current invocation, set by the
// root command's PersistentPreRunE before any subcommand runs.
var cfg *config.Config

// NewRootCommand returns the wflint root command.
func NewRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "wflint",
		Short:        "Lint, transform and render workflow manifests",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			log.SetLevel(cfg.GetLogLevel())
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the wflint config file")

	cmd.AddCommand(NewLintCommand())
	cmd.AddCommand(NewTransformCommand())
	cmd.AddCommand(NewRenderCommand())
	return cmd
}
