package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	// Group is the API group of the workflow schema.
	Group = "argoproj.io"

	// Version is the schema version this package models.
	Version = "v1alpha1"

	// APIVersion is the fixed apiVersion value of a Workflow document.
	APIVersion = Group + "/" + Version

	// WorkflowKind is the fixed kind value of a Workflow document.
	WorkflowKind = "Workflow"
)

// Workflow is the top-level manifest document: one workflow definition to be
// consumed by an external orchestrator.
type Workflow struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              WorkflowSpec `json:"spec"`
}

// WorkflowSpec is the executable definition of a workflow.
type WorkflowSpec struct {
	// Arguments are the top-level parameter declarations of the workflow.
	Arguments Arguments `json:"arguments,omitempty"`

	// Entrypoint names the template where execution begins. It must match
	// the name of a template declared in Templates.
	Entrypoint string `json:"entrypoint"`

	// ServiceAccountName is the identity under which the orchestrator runs
	// the workflow's pods.
	ServiceAccountName string `json:"serviceAccountName,omitempty"`

	// Templates is the ordered list of template definitions. Names must be
	// unique within the list.
	Templates []Template `json:"templates"`
}

// Arguments holds the parameters passed to a workflow.
type Arguments struct {
	Parameters []Parameter `json:"parameters,omitempty"`
}

// Parameter declares a named input, optionally with a default value.
type Parameter struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// TemplateType is the high-level type of a template.
type TemplateType string

const (
	TemplateTypeContainer TemplateType = "Container"
	TemplateTypeDAG       TemplateType = "DAG"
	TemplateTypeUnknown   TemplateType = "Unknown"
)

// Template is a reusable unit of execution. Exactly one of the variant
// fields (Container, DAG) must be set; consumers should treat the variants
// as a closed sum and surface anything else as TemplateTypeUnknown.
type Template struct {
	// Name is the unique key of the template within the workflow spec.
	Name string `json:"name"`

	// Metadata holds pod metadata attached to the unit the orchestrator
	// creates for this template.
	Metadata Metadata `json:"metadata,omitempty"`

	// Container makes this a container template.
	Container *corev1.Container `json:"container,omitempty"`

	// DAG makes this a DAG template.
	DAG *DAGTemplate `json:"dag,omitempty"`
}

// Metadata is pod metadata attached per template.
type Metadata struct {
	Annotations map[string]string `json:"annotations,omitempty"`
	Labels      map[string]string `json:"labels,omitempty"`
}

// GetType returns the variant of the template.
func (tmpl *Template) GetType() TemplateType {
	switch {
	case tmpl.Container != nil:
		return TemplateTypeContainer
	case tmpl.DAG != nil:
		return TemplateTypeDAG
	default:
		return TemplateTypeUnknown
	}
}

// GetTemplateByName returns the template with the given name, or nil if no
// such template is declared.
func (wf *Workflow) GetTemplateByName(name string) *Template {
	for i := range wf.Spec.Templates {
		if wf.Spec.Templates[i].Name == name {
			return &wf.Spec.Templates[i]
		}
	}
	return nil
}

// GetParameterByName returns the declared argument parameter with the given
// name, or nil if not declared.
func (wf *Workflow) GetParameterByName(name string) *Parameter {
	for i := range wf.Spec.Arguments.Parameters {
		if wf.Spec.Arguments.Parameters[i].Name == name {
			return &wf.Spec.Arguments.Parameters[i]
		}
	}
	return nil
}

// GetPodLabel returns the pod label value for key, tolerating a nil map.
func (tmpl *Template) GetPodLabel(key string) string {
	if tmpl.Metadata.Labels == nil {
		return ""
	}
	return tmpl.Metadata.Labels[key]
}

// SetPodLabel sets a pod label on the template, allocating the map if needed.
func (tmpl *Template) SetPodLabel(key, value string) {
	if tmpl.Metadata.Labels == nil {
		tmpl.Metadata.Labels = make(map[string]string)
	}
	tmpl.Metadata.Labels[key] = value
}
