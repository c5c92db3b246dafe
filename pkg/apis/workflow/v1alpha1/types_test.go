package v1alpha1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"
)

func TestTemplateGetType(t *testing.T) {
	tests := []struct {
		name     string
		tmpl     Template
		expected TemplateType
	}{
		{
			name:     "container template",
			tmpl:     Template{Name: "echo", Container: &corev1.Container{Image: "library/bash"}},
			expected: TemplateTypeContainer,
		},
		{
			name:     "dag template",
			tmpl:     Template{Name: "main", DAG: &DAGTemplate{Tasks: []DAGTask{{Name: "echo", Template: "echo"}}}},
			expected: TemplateTypeDAG,
		},
		{
			name:     "empty template",
			tmpl:     Template{Name: "empty"},
			expected: TemplateTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tmpl.GetType())
		})
	}
}

func TestGetTemplateByName(t *testing.T) {
	wf := &Workflow{
		Spec: WorkflowSpec{
			Templates: []Template{
				{Name: "echo", Container: &corev1.Container{Image: "library/bash"}},
				{Name: "main", DAG: &DAGTemplate{}},
			},
		},
	}

	require.NotNil(t, wf.GetTemplateByName("echo"))
	assert.Equal(t, TemplateTypeContainer, wf.GetTemplateByName("echo").GetType())
	assert.Nil(t, wf.GetTemplateByName("missing"))
}

func TestGetParameterByName(t *testing.T) {
	wf := &Workflow{
		Spec: WorkflowSpec{
			Arguments: Arguments{
				Parameters: []Parameter{{Name: "message", Value: ptr.To("hello")}},
			},
		},
	}

	param := wf.GetParameterByName("message")
	require.NotNil(t, param)
	assert.Equal(t, "hello", *param.Value)
	assert.Nil(t, wf.GetParameterByName("missing"))
}

func TestPodLabels(t *testing.T) {
	tmpl := &Template{Name: "echo"}
	assert.Equal(t, "", tmpl.GetPodLabel("add-pod-env"))

	tmpl.SetPodLabel("add-pod-env", "true")
	assert.Equal(t, "true", tmpl.GetPodLabel("add-pod-env"))
}

func TestWorkflowRoundTrip(t *testing.T) {
	wf := &Workflow{
		TypeMeta: metav1.TypeMeta{
			APIVersion: APIVersion,
			Kind:       WorkflowKind,
		},
		ObjectMeta: metav1.ObjectMeta{
			GenerateName: "test-adding-pod-env-",
			Annotations: map[string]string{
				"pipelines.kubeflow.org/pipeline_spec": `{"name": "Test adding pod env"}`,
			},
		},
		Spec: WorkflowSpec{
			Entrypoint:         "test-adding-pod-env",
			ServiceAccountName: "pipeline-runner",
			Templates: []Template{
				{
					Name: "echo",
					Container: &corev1.Container{
						Image:   "library/bash",
						Command: []string{"sh", "-c", "echo $KFP_POD_NAME $KFP_NAMESPACE"},
						Env: []corev1.EnvVar{
							{
								Name: "KFP_POD_NAME",
								ValueFrom: &corev1.EnvVarSource{
									FieldRef: &corev1.ObjectFieldSelector{FieldPath: "metadata.name"},
								},
							},
							{
								Name: "KFP_NAMESPACE",
								ValueFrom: &corev1.EnvVarSource{
									FieldRef: &corev1.ObjectFieldSelector{FieldPath: "metadata.namespace"},
								},
							},
						},
					},
					Metadata: Metadata{
						Labels: map[string]string{"add-pod-env": "true"},
					},
				},
				{
					Name: "test-adding-pod-env",
					DAG: &DAGTemplate{
						Tasks: []DAGTask{{Name: "echo", Template: "echo"}},
					},
				},
			},
		},
	}

	data, err := yaml.Marshal(wf)
	require.NoError(t, err)

	var parsed Workflow
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	assert.Equal(t, wf, &parsed)

	// Declared ordering survives the round trip.
	require.Len(t, parsed.Spec.Templates, 2)
	assert.Equal(t, "echo", parsed.Spec.Templates[0].Name)
	assert.Equal(t, "test-adding-pod-env", parsed.Spec.Templates[1].Name)
	assert.Equal(t, "KFP_POD_NAME", parsed.Spec.Templates[0].Container.Env[0].Name)
	assert.Equal(t, "KFP_NAMESPACE", parsed.Spec.Templates[0].Container.Env[1].Name)
}

func TestWorkflowDeepCopy(t *testing.T) {
	wf := &Workflow{
		ObjectMeta: metav1.ObjectMeta{
			GenerateName: "test-",
			Annotations:  map[string]string{"a": "1"},
		},
		Spec: WorkflowSpec{
			Entrypoint: "main",
			Arguments:  Arguments{Parameters: []Parameter{{Name: "message", Value: ptr.To("hi")}}},
			Templates: []Template{
				{
					Name:      "echo",
					Metadata:  Metadata{Labels: map[string]string{"add-pod-env": "true"}},
					Container: &corev1.Container{Image: "library/bash", Command: []string{"sh"}},
				},
				{
					Name: "main",
					DAG:  &DAGTemplate{Tasks: []DAGTask{{Name: "echo", Template: "echo", Dependencies: []string{"other"}}}},
				},
			},
		},
	}

	copied := wf.DeepCopy()
	require.Equal(t, wf, copied)

	// Mutating the copy must not leak into the original.
	copied.Annotations["a"] = "2"
	copied.Spec.Templates[0].Metadata.Labels["add-pod-env"] = "false"
	copied.Spec.Templates[0].Container.Image = "alpine"
	copied.Spec.Templates[1].DAG.Tasks[0].Dependencies[0] = "changed"
	*copied.Spec.Arguments.Parameters[0].Value = "bye"

	assert.Equal(t, "1", wf.Annotations["a"])
	assert.Equal(t, "true", wf.Spec.Templates[0].Metadata.Labels["add-pod-env"])
	assert.Equal(t, "library/bash", wf.Spec.Templates[0].Container.Image)
	assert.Equal(t, "other", wf.Spec.Templates[1].DAG.Tasks[0].Dependencies[0])
	assert.Equal(t, "hi", *wf.Spec.Arguments.Parameters[0].Value)
}
