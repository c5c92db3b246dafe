package v1alpha1

// DAGTemplate is the body of a DAG template: a set of named tasks whose
// dependency edges form a directed acyclic graph.
type DAGTemplate struct {
	// Tasks is the ordered list of graph nodes. Task names must be unique
	// within the DAG.
	Tasks []DAGTask `json:"tasks"`
}

// DAGTask is a single node of a DAG template.
type DAGTask struct {
	// Name is the unique key of the task within the DAG.
	Name string `json:"name"`

	// Template names the template this task runs. It must match the name
	// of a template declared in the workflow spec.
	Template string `json:"template"`

	// Dependencies names the sibling tasks that must complete before this
	// task starts.
	Dependencies []string `json:"dependencies,omitempty"`
}

// GetTaskByName returns the task with the given name, or nil if absent.
func (d *DAGTemplate) GetTaskByName(name string) *DAGTask {
	for i := range d.Tasks {
		if d.Tasks[i].Name == name {
			return &d.Tasks[i]
		}
	}
	return nil
}
