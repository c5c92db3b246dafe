// Package transform implements the default compiler passes applied to every
// workflow manifest before it is handed to the orchestrator: downward-API
// environment injection, telemetry labels, and component origin labels.
package transform

import (
	"encoding/json"
	"regexp"
	"strings"

	corev1 "k8s.io/api/core/v1"

	wfv1 "github.com/wflint/wflint/pkg/apis/workflow/v1alpha1"
	"github.com/wflint/wflint/workflow/common"
)

// Transformer mutates a single template in place. Transformers are applied
// to container templates only; DAG templates carry no pod spec.
type Transformer func(tmpl *wfv1.Template)

// Apply runs the given transformers over every container template of the
// workflow. The input is never mutated; the transformed copy is returned.
func Apply(wf *wfv1.Workflow, transformers ...Transformer) *wfv1.Workflow {
	out := wf.DeepCopy()
	for i := range out.Spec.Templates {
		tmpl := &out.Spec.Templates[i]
		if tmpl.GetType() != wfv1.TemplateTypeContainer {
			continue
		}
		for _, transform := range transformers {
			transform(tmpl)
		}
	}
	return out
}

// Defaults returns the default transformer chain, with extraLabels merged
// into the telemetry labels.
func Defaults(extraLabels map[string]string) []Transformer {
	labels := DefaultTelemetryLabels()
	for k, v := range extraLabels {
		labels[k] = v
	}
	return []Transformer{
		AddPodEnv,
		AddPodLabels(labels),
		AddComponentOriginLabels,
	}
}

// DefaultTelemetryLabels returns the default pod labels for telemetry
// purposes.
func DefaultTelemetryLabels() map[string]string {
	return map[string]string{
		common.LabelKeySDKType: common.SDKTypeDefault,
	}
}

// AddPodEnv adds pod environment info to container templates that opted in
// via the "add-pod-env" pod label. The injected bindings resolve the pod's
// own name and namespace through downward-API field references at execution
// time. Bindings already present by name are left untouched, so the
// transform is idempotent.
func AddPodEnv(tmpl *wfv1.Template) {
	if tmpl.Container == nil || tmpl.GetPodLabel(common.LabelKeyAddPodEnv) != "true" {
		return
	}
	addEnvVar(tmpl.Container, common.EnvVarPodName, common.FieldPathPodName)
	addEnvVar(tmpl.Container, common.EnvVarNamespace, common.FieldPathNamespace)
}

func addEnvVar(container *corev1.Container, name, fieldPath string) {
	for _, env := range container.Env {
		if env.Name == name {
			return
		}
	}
	container.Env = append(container.Env, corev1.EnvVar{
		Name: name,
		ValueFrom: &corev1.EnvVarSource{
			FieldRef: &corev1.ObjectFieldSelector{
				FieldPath: fieldPath,
			},
		},
	})
}

// AddPodLabels returns a transformer that adds the provided pod labels to
// each container template. Labels already set on the template win; the
// merge only appends, so manifests produced by other SDKs keep their own
// values.
func AddPodLabels(labels map[string]string) Transformer {
	return func(tmpl *wfv1.Template) {
		for k, v := range labels {
			if tmpl.GetPodLabel(k) == "" {
				tmpl.SetPodLabel(k, v)
			}
		}
	}
}

// componentRef is the JSON payload of the component_ref annotation.
type componentRef struct {
	URL    string `json:"url,omitempty"`
	Digest string `json:"digest,omitempty"`
}

// labelAlphabet matches every character that may not appear in a k8s label
// value.
var labelAlphabet = regexp.MustCompile(`[^-a-z0-9A-Z_.]`)

// AddComponentOriginLabels derives origin labels for templates built from
// referenced components. Templates carry the reference (url, digest) in the
// component_ref annotation; the origin path label is only attached for
// out-of-box components hosted under the known URL prefix.
func AddComponentOriginLabels(tmpl *wfv1.Template) {
	refJSON, ok := tmpl.Metadata.Annotations[common.AnnotationKeyComponentRef]
	if !ok {
		return
	}
	var ref componentRef
	if err := json.Unmarshal([]byte(refJSON), &ref); err != nil {
		// Malformed references are a validation concern, not ours.
		return
	}

	if ref.URL != "" {
		originPath, ok := componentOriginPath(ref.URL)
		if !ok {
			// A reference hosted outside the out-of-box components gets
			// no origin labels at all, digest included.
			return
		}
		tmpl.SetPodLabel(common.LabelKeyComponentOriginPath, originPath)
	}
	if ref.Digest != "" {
		tmpl.SetPodLabel(common.LabelKeyComponentDigest, truncate(ref.Digest, common.MaxLabelValueLength))
	}
}

// componentOriginPath converts a component reference URL into a label-safe
// repository path. Only URLs under the out-of-box component prefix qualify.
func componentOriginPath(url string) (string, bool) {
	originPath := strings.TrimRight(strings.TrimSuffix(url, "component.yaml"), "/")
	if !strings.HasPrefix(originPath, common.OOBComponentURLPrefix) {
		return "", false
	}
	// Drop the scheme, host, org, repo, and revision segments, keeping the
	// path within the repository.
	parts := strings.SplitN(originPath, "/", 8)
	originPath = parts[len(parts)-1]
	// Clean the label to comply with the k8s label convention.
	originPath = labelAlphabet.ReplaceAllString(originPath, ".")
	if len(originPath) > common.MaxLabelValueLength {
		originPath = originPath[len(originPath)-common.MaxLabelValueLength:]
	}
	return strings.Trim(originPath, "-_."), true
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
