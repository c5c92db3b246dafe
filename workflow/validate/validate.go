// Package validate checks workflow manifests against the schema's
// referential invariants. Validation is pure: it reads the document once and
// reports every violation it finds, so authors can fix all issues in one
// pass.
package validate

import (
	"fmt"
	"strings"

	apivalidation "k8s.io/apimachinery/pkg/util/validation"
	"k8s.io/apimachinery/pkg/util/validation/field"

	wfv1 "github.com/wflint/wflint/pkg/apis/workflow/v1alpha1"
)

// Validate checks a parsed workflow document and returns an aggregate error
// enumerating every violated invariant, or nil if the document is valid.
func Validate(wf *wfv1.Workflow) error {
	return ValidateWorkflow(wf).ToAggregate()
}

// ValidateWorkflow performs the same checks as Validate but returns the raw
// error list, preserving the field path of each violation.
func ValidateWorkflow(wf *wfv1.Workflow) field.ErrorList {
	var allErrs field.ErrorList

	if wf.APIVersion != "" && wf.APIVersion != wfv1.APIVersion {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("apiVersion"), wf.APIVersion, []string{wfv1.APIVersion}))
	}
	if wf.Kind != "" && wf.Kind != wfv1.WorkflowKind {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("kind"), wf.Kind, []string{wfv1.WorkflowKind}))
	}

	specPath := field.NewPath("spec")
	allErrs = append(allErrs, validateSpec(&wf.Spec, specPath)...)
	return allErrs
}

func validateSpec(spec *wfv1.WorkflowSpec, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	declared := make(map[string]bool, len(spec.Templates))
	tmplsPath := path.Child("templates")
	if len(spec.Templates) == 0 {
		allErrs = append(allErrs, field.Required(tmplsPath, "at least one template is required"))
	}
	for i := range spec.Templates {
		tmpl := &spec.Templates[i]
		tmplPath := tmplsPath.Index(i)
		if declared[tmpl.Name] {
			allErrs = append(allErrs, field.Duplicate(tmplPath.Child("name"), tmpl.Name))
		}
		declared[tmpl.Name] = true
		allErrs = append(allErrs, validateTemplate(tmpl, spec, tmplPath)...)
	}

	entryPath := path.Child("entrypoint")
	if spec.Entrypoint == "" {
		allErrs = append(allErrs, field.Required(entryPath, "entrypoint is required"))
	} else if !hasTemplate(spec, spec.Entrypoint) {
		allErrs = append(allErrs, field.Invalid(entryPath, spec.Entrypoint,
			fmt.Sprintf("entrypoint %q references an undefined template", spec.Entrypoint)))
	}

	paramSeen := make(map[string]bool, len(spec.Arguments.Parameters))
	for i, param := range spec.Arguments.Parameters {
		paramPath := path.Child("arguments", "parameters").Index(i)
		if param.Name == "" {
			allErrs = append(allErrs, field.Required(paramPath.Child("name"), "parameter name is required"))
			continue
		}
		if paramSeen[param.Name] {
			allErrs = append(allErrs, field.Duplicate(paramPath.Child("name"), param.Name))
		}
		paramSeen[param.Name] = true
	}

	return allErrs
}

func validateTemplate(tmpl *wfv1.Template, spec *wfv1.WorkflowSpec, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	allErrs = append(allErrs, validateName(tmpl.Name, path.Child("name"))...)

	switch tmpl.GetType() {
	case wfv1.TemplateTypeContainer:
		if tmpl.DAG != nil {
			allErrs = append(allErrs, field.Invalid(path, tmpl.Name, "template may not set both container and dag"))
		}
		allErrs = append(allErrs, validateContainer(tmpl, path.Child("container"))...)
	case wfv1.TemplateTypeDAG:
		allErrs = append(allErrs, validateDAG(tmpl.DAG, spec, path.Child("dag"))...)
	default:
		allErrs = append(allErrs, field.Required(path, "template must declare a container or a dag"))
	}

	return allErrs
}

func validateContainer(tmpl *wfv1.Template, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList
	if tmpl.Container.Image == "" {
		allErrs = append(allErrs, field.Required(path.Child("image"), "container image is required"))
	}
	if len(tmpl.Container.Command) == 0 {
		allErrs = append(allErrs, field.Required(path.Child("command"), "container command is required"))
	}
	return allErrs
}

func validateDAG(dag *wfv1.DAGTemplate, spec *wfv1.WorkflowSpec, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList

	tasksPath := path.Child("tasks")
	if len(dag.Tasks) == 0 {
		allErrs = append(allErrs, field.Required(tasksPath, "a dag template must declare at least one task"))
	}

	taskSeen := make(map[string]bool, len(dag.Tasks))
	for i := range dag.Tasks {
		task := &dag.Tasks[i]
		taskPath := tasksPath.Index(i)

		allErrs = append(allErrs, validateName(task.Name, taskPath.Child("name"))...)
		if taskSeen[task.Name] {
			allErrs = append(allErrs, field.Duplicate(taskPath.Child("name"), task.Name))
		}
		taskSeen[task.Name] = true

		tmplRefPath := taskPath.Child("template")
		if task.Template == "" {
			allErrs = append(allErrs, field.Required(tmplRefPath, "task template is required"))
		} else if !hasTemplate(spec, task.Template) {
			allErrs = append(allErrs, field.Invalid(tmplRefPath, task.Template,
				fmt.Sprintf("task %q references an undefined template %q", task.Name, task.Template)))
		}

		for j, dep := range task.Dependencies {
			if dag.GetTaskByName(dep) == nil {
				allErrs = append(allErrs, field.Invalid(taskPath.Child("dependencies").Index(j), dep,
					fmt.Sprintf("task %q depends on undefined task %q", task.Name, dep)))
			}
		}
	}

	if cycle := findCycle(dag); len(cycle) > 0 {
		allErrs = append(allErrs, field.Invalid(tasksPath, strings.Join(cycle, " -> "),
			"dag must not contain a dependency cycle"))
	}

	return allErrs
}

func validateName(name string, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList
	if name == "" {
		allErrs = append(allErrs, field.Required(path, "name is required"))
		return allErrs
	}
	for _, msg := range apivalidation.IsDNS1123Subdomain(name) {
		allErrs = append(allErrs, field.Invalid(path, name, msg))
	}
	return allErrs
}

func hasTemplate(spec *wfv1.WorkflowSpec, name string) bool {
	for i := range spec.Templates {
		if spec.Templates[i].Name == name {
			return true
		}
	}
	return false
}

// findCycle returns one dependency cycle from the DAG, as the sequence of
// task names along the cycle, or nil if the graph is acyclic. Dependencies
// on undefined tasks are ignored here; they are reported separately.
func findCycle(dag *wfv1.DAGTemplate) []string {
	const (
		white = iota // unvisited
		gray         // on the current path
		black        // fully explored
	)
	color := make(map[string]int, len(dag.Tasks))

	var path []string
	var visit func(name string) []string
	visit = func(name string) []string {
		color[name] = gray
		path = append(path, name)
		task := dag.GetTaskByName(name)
		for _, dep := range task.Dependencies {
			if dag.GetTaskByName(dep) == nil {
				continue
			}
			switch color[dep] {
			case gray:
				// Found the back edge; slice the cycle out of the path.
				for i, n := range path {
					if n == dep {
						return append(path[i:len(path):len(path)], dep)
					}
				}
			case white:
				if cycle := visit(dep); cycle != nil {
					return cycle
				}
			}
		}
		color[name] = black
		path = path[:len(path)-1]
		return nil
	}

	for i := range dag.Tasks {
		if color[dag.Tasks[i].Name] == white {
			if cycle := visit(dag.Tasks[i].Name); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
