package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/valyala/fasttemplate"

	"github.com/wflint/wflint/workflow/common"
)

// NewRenderCommand returns the render subcommand, which substitutes
// {{workflow.parameters.NAME}} and {{workflow.name}} tags in a manifest.
// Values default from spec.arguments.parameters and can be overridden with
// -p. Tags with no value are left as-is: they may be meant for the
// orchestrator.
func NewRenderCommand() *cobra.Command {
	var parameters []string

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Substitute workflow parameters into a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := make(map[string]string, len(parameters))
			for _, p := range parameters {
				name, value, found := strings.Cut(p, "=")
				if !found {
					return fmt.Errorf("invalid parameter %q: expected name=value", p)
				}
				overrides[name] = value
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			for i, manifest := range common.SplitManifests(data) {
				rendered, err := renderManifest(manifest, overrides)
				if err != nil {
					return fmt.Errorf("document %d: %w", i, err)
				}
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "---")
				}
				fmt.Fprint(cmd.OutOrStdout(), rendered)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&parameters, "parameter", "p", nil, "parameter override (name=value, repeatable)")
	return cmd
}

func renderManifest(manifest []byte, overrides map[string]string) (string, error) {
	// Lenient parse: the document may still contain unresolved tags, and
	// render only needs the parameter declarations and the name.
	wf, err := common.ParseWorkflow(manifest, false)
	if err != nil {
		return "", err
	}

	values := make(map[string]string)
	for _, param := range wf.Spec.Arguments.Parameters {
		if param.Value != nil {
			values["workflow.parameters."+param.Name] = *param.Value
		}
	}
	for name, value := range overrides {
		if wf.GetParameterByName(name) == nil {
			return "", fmt.Errorf("parameter %q is not declared by the workflow", name)
		}
		values["workflow.parameters."+name] = value
	}
	if wf.Name != "" {
		values["workflow.name"] = wf.Name
	}

	tmpl, err := fasttemplate.NewTemplate(string(manifest), "{{", "}}")
	if err != nil {
		return "", fmt.Errorf("failed to parse template tags: %w", err)
	}
	return tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if value, ok := values[strings.TrimSpace(tag)]; ok {
			return w.Write([]byte(value))
		}
		return fmt.Fprintf(w, "{{%s}}", tag)
	}), nil
}
