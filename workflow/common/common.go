// Package common holds constants and parsing helpers shared across the
// manifest packages.
package common

const (
	// LabelKeyAddPodEnv is the pod label a container template sets to
	// "true" to opt in to downward-API environment injection.
	LabelKeyAddPodEnv = "add-pod-env"

	// LabelKeySDKType indicates the SDK type from which the manifest was
	// generated, for telemetry purposes.
	LabelKeySDKType = "pipelines.kubeflow.org/pipeline-sdk-type"

	// SDKTypeDefault is the default value for LabelKeySDKType.
	SDKTypeDefault = "kfp"

	// AnnotationKeyComponentRef carries the JSON-encoded reference
	// (url, digest) of the component a container template was built from.
	AnnotationKeyComponentRef = "pipelines.kubeflow.org/component_ref"

	// LabelKeyComponentOriginPath records the repository path of an
	// out-of-box component, derived from its reference URL.
	LabelKeyComponentOriginPath = "pipelines.kubeflow.org/component_origin_path"

	// LabelKeyComponentDigest records the (truncated) digest of the
	// component spec a template was built from.
	LabelKeyComponentDigest = "pipelines.kubeflow.org/component_digest"

	// EnvVarPodName is injected with the pod's own name at execution time.
	EnvVarPodName = "KFP_POD_NAME"

	// EnvVarNamespace is injected with the pod's own namespace at
	// execution time.
	EnvVarNamespace = "KFP_NAMESPACE"

	// FieldPathPodName is the downward-API field path for the pod name.
	FieldPathPodName = "metadata.name"

	// FieldPathNamespace is the downward-API field path for the pod
	// namespace.
	FieldPathNamespace = "metadata.namespace"

	// OOBComponentURLPrefix is the common prefix of out-of-box component
	// reference URLs. Only components under it get an origin-path label.
	OOBComponentURLPrefix = "https://raw.githubusercontent.com/kubeflow/pipelines"

	// MaxLabelValueLength is the longest value a pod label may carry.
	MaxLabelValueLength = 63
)
