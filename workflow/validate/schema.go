package validate

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"sigs.k8s.io/yaml"
)

//go:embed schema.json
var workflowSchema []byte

// ValidateSchema checks a raw YAML or JSON manifest against the structural
// JSON Schema of the workflow document: required fields present, values of
// the right type. It reports every schema violation in one error. Semantic
// checks (reference resolution, uniqueness) belong to Validate.
func ValidateSchema(manifest []byte) error {
	jsonData, err := yaml.YAMLToJSON(manifest)
	if err != nil {
		return fmt.Errorf("failed to convert manifest to JSON: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(workflowSchema),
		gojsonschema.NewBytesLoader(jsonData),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("manifest does not conform to the workflow schema: %s", strings.Join(msgs, "; "))
}
