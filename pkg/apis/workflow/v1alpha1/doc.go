// Package v1alpha1 contains the Go types for the workflow manifest schema.
//
// A manifest is a declarative Workflow document: metadata plus a spec holding
// an ordered list of templates and the name of the entrypoint template. Two
// template variants exist:
//
//   - Container - directly specifies an image, command, args, and
//     environment bindings for a single runnable unit
//   - DAG - a set of named tasks, each referencing another template,
//     forming a directed acyclic execution graph
//
// The document carries no execution state. It is authored once (typically by
// a pipeline compiler), validated, and handed to an external orchestrator
// which derives a concrete run from it.
//
// # Basic Usage
//
//	wf := &v1alpha1.Workflow{
//	    ObjectMeta: metav1.ObjectMeta{
//	        GenerateName: "my-workflow-",
//	    },
//	    Spec: v1alpha1.WorkflowSpec{
//	        Entrypoint: "main",
//	        Templates: []v1alpha1.Template{
//	            {
//	                Name: "main",
//	                Container: &corev1.Container{
//	                    Image:   "busybox",
//	                    Command: []string{"echo", "hello world"},
//	                },
//	            },
//	        },
//	    },
//	}
//
// Container specs and environment bindings reuse the k8s.io/api/core/v1
// types, so downward-API field references (valueFrom.fieldRef.fieldPath)
// serialize exactly as the consuming orchestrator expects.
package v1alpha1
