package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wflint/wflint/workflow/common"
	"github.com/wflint/wflint/workflow/validate"
)

// NewLintCommand returns the lint subcommand. Lint parses each file
// (multi-document YAML supported), checks every document against the
// structural schema and the referential invariants, and prints every
// violation rather than stopping at the first.
func NewLintCommand() *cobra.Command {
	var noSchema bool

	cmd := &cobra.Command{
		Use:   "lint FILE...",
		Short: "Validate workflow manifest files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failures := 0
			for _, file := range args {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				for i, manifest := range common.SplitManifests(data) {
					if err := lintManifest(manifest, noSchema); err != nil {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: document %d: %v\n", file, i, err)
						failures++
						continue
					}
					log.Debugf("%s: document %d is valid", file, i)
				}
			}
			if failures > 0 {
				return fmt.Errorf("lint failed: %d invalid document(s)", failures)
			}
			log.Info("all documents are valid")
			return nil
		},
	}
	cmd.Flags().BoolVar(&noSchema, "no-schema", false, "skip structural JSON schema validation")
	return cmd
}

func lintManifest(manifest []byte, noSchema bool) error {
	if !noSchema {
		if err := validate.ValidateSchema(manifest); err != nil {
			return err
		}
	}
	wf, err := common.ParseWorkflow(manifest, cfg.IsStrict())
	if err != nil {
		return err
	}
	errs := validate.ValidateWorkflow(wf)
	errs = append(errs, validate.ValidateImages(wf, cfg.AllowedImageRegistries)...)
	return errs.ToAggregate()
}
