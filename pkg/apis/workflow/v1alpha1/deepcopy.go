package v1alpha1

// Hand-written deep copies. The schema is small enough that generated code
// is not worth the tooling; container specs delegate to the generated
// corev1 copies.

// DeepCopy returns a full copy of the workflow, sharing no mutable state
// with the receiver.
func (wf *Workflow) DeepCopy() *Workflow {
	if wf == nil {
		return nil
	}
	out := new(Workflow)
	out.TypeMeta = wf.TypeMeta
	wf.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = *wf.Spec.DeepCopy()
	return out
}

// DeepCopy returns a full copy of the spec.
func (s *WorkflowSpec) DeepCopy() *WorkflowSpec {
	if s == nil {
		return nil
	}
	out := new(WorkflowSpec)
	out.Entrypoint = s.Entrypoint
	out.ServiceAccountName = s.ServiceAccountName
	out.Arguments = *s.Arguments.DeepCopy()
	if s.Templates != nil {
		out.Templates = make([]Template, len(s.Templates))
		for i := range s.Templates {
			out.Templates[i] = *s.Templates[i].DeepCopy()
		}
	}
	return out
}

// DeepCopy returns a full copy of the arguments.
func (a *Arguments) DeepCopy() *Arguments {
	if a == nil {
		return nil
	}
	out := new(Arguments)
	if a.Parameters != nil {
		out.Parameters = make([]Parameter, len(a.Parameters))
		for i, p := range a.Parameters {
			out.Parameters[i] = *p.DeepCopy()
		}
	}
	return out
}

// DeepCopy returns a full copy of the parameter.
func (p *Parameter) DeepCopy() *Parameter {
	if p == nil {
		return nil
	}
	out := new(Parameter)
	out.Name = p.Name
	if p.Value != nil {
		v := *p.Value
		out.Value = &v
	}
	return out
}

// DeepCopy returns a full copy of the template.
func (tmpl *Template) DeepCopy() *Template {
	if tmpl == nil {
		return nil
	}
	out := new(Template)
	out.Name = tmpl.Name
	out.Metadata = *tmpl.Metadata.DeepCopy()
	if tmpl.Container != nil {
		out.Container = tmpl.Container.DeepCopy()
	}
	if tmpl.DAG != nil {
		out.DAG = tmpl.DAG.DeepCopy()
	}
	return out
}

// DeepCopy returns a full copy of the pod metadata.
func (m *Metadata) DeepCopy() *Metadata {
	if m == nil {
		return nil
	}
	out := new(Metadata)
	if m.Annotations != nil {
		out.Annotations = make(map[string]string, len(m.Annotations))
		for k, v := range m.Annotations {
			out.Annotations[k] = v
		}
	}
	if m.Labels != nil {
		out.Labels = make(map[string]string, len(m.Labels))
		for k, v := range m.Labels {
			out.Labels[k] = v
		}
	}
	return out
}

// DeepCopy returns a full copy of the DAG body.
func (d *DAGTemplate) DeepCopy() *DAGTemplate {
	if d == nil {
		return nil
	}
	out := new(DAGTemplate)
	if d.Tasks != nil {
		out.Tasks = make([]DAGTask, len(d.Tasks))
		for i := range d.Tasks {
			out.Tasks[i] = *d.Tasks[i].DeepCopy()
		}
	}
	return out
}

// DeepCopy returns a full copy of the task.
func (t *DAGTask) DeepCopy() *DAGTask {
	if t == nil {
		return nil
	}
	out := new(DAGTask)
	out.Name = t.Name
	out.Template = t.Template
	if t.Dependencies != nil {
		out.Dependencies = make([]string, len(t.Dependencies))
		copy(out.Dependencies, t.Dependencies)
	}
	return out
}
