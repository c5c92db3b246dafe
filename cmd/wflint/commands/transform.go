package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/wflint/wflint/workflow/common"
	"github.com/wflint/wflint/workflow/transform"
)

// NewTransformCommand returns the transform subcommand, which applies the
// default compiler transformers to every document in a manifest file and
// prints the result.
func NewTransformCommand() *cobra.Command {
	var labels map[string]string

	cmd := &cobra.Command{
		Use:   "transform FILE",
		Short: "Apply the default transformers to a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			wfs, err := common.ParseWorkflows(data, cfg.IsStrict())
			if err != nil {
				return err
			}

			extraLabels := cfg.GetDefaultLabels()
			for k, v := range labels {
				extraLabels[k] = v
			}
			transformers := transform.Defaults(extraLabels)

			for i, wf := range wfs {
				out, err := yaml.Marshal(transform.Apply(wf, transformers...))
				if err != nil {
					return fmt.Errorf("failed to marshal workflow: %w", err)
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "---")
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
			}
			return nil
		},
	}
	cmd.Flags().StringToStringVar(&labels, "label", nil, "extra pod label to attach (key=value, repeatable)")
	return cmd
}
