package validate

import (
	"fmt"
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"

	wfv1 "github.com/wflint/wflint/pkg/apis/workflow/v1alpha1"
)

// ValidateImages checks that every container template's image comes from one
// of the allowed registries. An empty allow list disables the check. An
// image with no registry component (e.g. "library/bash") is treated as
// coming from "docker.io".
func ValidateImages(wf *wfv1.Workflow, allowedRegistries []string) field.ErrorList {
	var allErrs field.ErrorList
	if len(allowedRegistries) == 0 {
		return allErrs
	}

	for i := range wf.Spec.Templates {
		tmpl := &wf.Spec.Templates[i]
		if tmpl.Container == nil || tmpl.Container.Image == "" {
			continue
		}
		registry := imageRegistry(tmpl.Container.Image)
		if !slices.Contains(allowedRegistries, registry) {
			allErrs = append(allErrs, field.Invalid(
				field.NewPath("spec", "templates").Index(i).Child("container", "image"),
				tmpl.Container.Image,
				fmt.Sprintf("registry %q is not allowed", registry)))
		}
	}
	return allErrs
}

// imageRegistry extracts the registry host from an image reference. Docker
// convention: the first path component is a registry only if it contains a
// dot, a colon, or is "localhost"; otherwise the implicit registry applies.
func imageRegistry(image string) string {
	part, _, found := strings.Cut(image, "/")
	if !found {
		return "docker.io"
	}
	if strings.ContainsAny(part, ".:") || part == "localhost" {
		return part
	}
	return "docker.io"
}
