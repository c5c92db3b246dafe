package common

import (
	"fmt"
	"regexp"

	"sigs.k8s.io/yaml"

	wfv1 "github.com/wflint/wflint/pkg/apis/workflow/v1alpha1"
)

// manifestSeparator matches the YAML document separator at the start of a
// line. A leading separator produces an empty chunk, which is skipped.
var manifestSeparator = regexp.MustCompile(`(?m)^---`)

// SplitManifests splits a possibly multi-document YAML file into its
// individual documents, preserving order and dropping empty chunks.
func SplitManifests(data []byte) [][]byte {
	var manifests [][]byte
	for _, chunk := range manifestSeparator.Split(string(data), -1) {
		if isEmptyYAML(chunk) {
			continue
		}
		manifests = append(manifests, []byte(chunk))
	}
	return manifests
}

func isEmptyYAML(chunk string) bool {
	var v interface{}
	if err := yaml.Unmarshal([]byte(chunk), &v); err != nil {
		// Not empty; let the caller surface the parse error.
		return false
	}
	return v == nil
}

// ParseWorkflow unmarshals a single YAML or JSON document into a Workflow.
// In strict mode unknown fields are an error, so typos in field names fail
// lint instead of silently dropping configuration.
func ParseWorkflow(data []byte, strict bool) (*wfv1.Workflow, error) {
	var wf wfv1.Workflow
	var err error
	if strict {
		err = yaml.UnmarshalStrict(data, &wf)
	} else {
		err = yaml.Unmarshal(data, &wf)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse workflow manifest: %w", err)
	}
	return &wf, nil
}

// ParseWorkflows splits a multi-document file and parses every document.
// It fails on the first document that does not parse; validation of the
// parsed documents is the caller's concern.
func ParseWorkflows(data []byte, strict bool) ([]*wfv1.Workflow, error) {
	var wfs []*wfv1.Workflow
	for i, manifest := range SplitManifests(data) {
		wf, err := ParseWorkflow(manifest, strict)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		wfs = append(wfs, wf)
	}
	return wfs, nil
}
