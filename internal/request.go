package internal

import (
	"github.com/starford/compsman/internal/comps"
	"github.com/starford/compsman/internal/validate"
)

// Request is the immutable description of one run, built by the CLI layer
// after argument validation. Pointer fields distinguish "flag not given" from
// an explicit value, so --display-order 0 and --not-user-visible round-trip.
type Request struct {
	Load  []string
	Save  []string
	Print bool

	ID                     string
	Name                   string
	Description            string
	DisplayOrder           *int
	UserVisible            *bool
	TranslatedNames        []comps.Translation
	TranslatedDescriptions []comps.Translation
	Remove                 bool
}

// EditRequested reports whether any group-editing flag was supplied.
func (r *Request) EditRequested() bool {
	return r.Description != "" ||
		r.DisplayOrder != nil ||
		r.UserVisible != nil ||
		len(r.TranslatedNames) > 0 ||
		len(r.TranslatedDescriptions) > 0
}

// Validate re-checks the value shapes before any I/O starts. The CLI layer
// validates flags as they are parsed; this keeps the contract when the
// orchestrator is driven programmatically.
func (r *Request) Validate() error {
	if r.ID != "" {
		if err := validate.GroupID(r.ID); err != nil {
			return err
		}
	}
	for _, tr := range r.TranslatedNames {
		if err := validate.LangTag(tr.Lang); err != nil {
			return err
		}
	}
	for _, tr := range r.TranslatedDescriptions {
		if err := validate.LangTag(tr.Lang); err != nil {
			return err
		}
	}
	return nil
}

// Edit converts the request's attribute flags into a sparse group edit.
func (r *Request) Edit() comps.Edit {
	return comps.Edit{
		Name:         r.Name,
		Description:  r.Description,
		DisplayOrder: r.DisplayOrder,
		UserVisible:  r.UserVisible,
		NameByLang:   r.TranslatedNames,
		DescByLang:   r.TranslatedDescriptions,
	}
}
