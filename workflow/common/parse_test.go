package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleManifest = `
apiVersion: argoproj.io/v1alpha1
kind: Workflow
metadata:
  generateName: hello-
spec:
  entrypoint: main
  templates:
  - name: main
    container:
      image: library/bash
      command: [sh, -c, echo hello]
`

func TestParseWorkflow(t *testing.T) {
	wf, err := ParseWorkflow([]byte(singleManifest), true)
	require.NoError(t, err)
	assert.Equal(t, "hello-", wf.GenerateName)
	assert.Equal(t, "main", wf.Spec.Entrypoint)
	require.Len(t, wf.Spec.Templates, 1)
	assert.Equal(t, "library/bash", wf.Spec.Templates[0].Container.Image)
}

func TestParseWorkflowStrictness(t *testing.T) {
	manifest := `
apiVersion: argoproj.io/v1alpha1
kind: Workflow
spec:
  entrypoint: main
  entrypoynt: typo
  templates:
  - name: main
    container:
      image: library/bash
      command: [sh]
`
	t.Run("strict mode rejects unknown fields", func(t *testing.T) {
		_, err := ParseWorkflow([]byte(manifest), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entrypoynt")
	})

	t.Run("lenient mode drops unknown fields", func(t *testing.T) {
		wf, err := ParseWorkflow([]byte(manifest), false)
		require.NoError(t, err)
		assert.Equal(t, "main", wf.Spec.Entrypoint)
	})
}

func TestParseWorkflowInvalidYAML(t *testing.T) {
	_, err := ParseWorkflow([]byte("apiVersion: [unclosed"), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse workflow manifest")
}

func TestSplitManifests(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected int
	}{
		{name: "single document", data: singleManifest, expected: 1},
		{name: "two documents", data: singleManifest + "\n---\n" + singleManifest, expected: 2},
		{name: "leading separator", data: "---\n" + singleManifest, expected: 1},
		{name: "trailing separator", data: singleManifest + "\n---\n", expected: 1},
		{name: "comment-only chunk is dropped", data: singleManifest + "\n---\n# nothing here\n", expected: 1},
		{name: "empty input", data: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, SplitManifests([]byte(tt.data)), tt.expected)
		})
	}
}

func TestParseWorkflows(t *testing.T) {
	t.Run("parses every document in order", func(t *testing.T) {
		second := `
apiVersion: argoproj.io/v1alpha1
kind: Workflow
metadata:
  generateName: second-
spec:
  entrypoint: main
  templates:
  - name: main
    container:
      image: library/bash
      command: [sh]
`
		wfs, err := ParseWorkflows([]byte(singleManifest+"\n---\n"+second), true)
		require.NoError(t, err)
		require.Len(t, wfs, 2)
		assert.Equal(t, "hello-", wfs[0].GenerateName)
		assert.Equal(t, "second-", wfs[1].GenerateName)
	})

	t.Run("reports the failing document index", func(t *testing.T) {
		_, err := ParseWorkflows([]byte(singleManifest+"\n---\nspec: [broken"), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "document 1")
	})
}
