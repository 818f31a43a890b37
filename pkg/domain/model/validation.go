package model

import (
	"fmt"
	"strings"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
)

// Violation is one integrity defect found while loading content
type Violation struct {
	Kind types.ViolationKind `json:"kind"`
	// Collection is the document key the record lives under, e.g. "caseStudies"
	Collection string `json:"collection"`
	// Record identifies the record: an id, a term, "domain.kpi" or "#index"
	Record  string `json:"record"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// String renders the violation on one line
func (v Violation) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s/%s", v.Kind, v.Collection, v.Record)
	if v.Field != "" {
		fmt.Fprintf(&b, " %s", v.Field)
	}
	if v.Value != "" {
		fmt.Fprintf(&b, " %q", v.Value)
	}
	fmt.Fprintf(&b, ": %s", v.Message)
	return b.String()
}

// ValidationError carries every violation found in one load attempt.
// It unwraps to ErrValidation.
type ValidationError struct {
	Violations []Violation
}

// Error lists all violations, one per line
func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d violation(s)", ErrValidation.Error(), len(e.Violations))
	for _, v := range e.Violations {
		b.WriteString("\n  - ")
		b.WriteString(v.String())
	}
	return b.String()
}

// Unwrap allows errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ByKind returns the violations of the given kind in discovery order
func (e *ValidationError) ByKind(kind types.ViolationKind) []Violation {
	var result []Violation
	for _, v := range e.Violations {
		if v.Kind == kind {
			result = append(result, v)
		}
	}
	return result
}

// Asymmetry is a capability/case study link declared on one side only.
// DeclaredBy names the collection whose record lists the other.
type Asymmetry struct {
	CapabilityID types.CapabilityID `json:"capabilityId"`
	CaseStudyID  types.CaseStudyID  `json:"caseStudyId"`
	DeclaredBy   types.Collection   `json:"declaredBy"`
}

// String renders the asymmetry on one line
func (a Asymmetry) String() string {
	if a.DeclaredBy == types.CollectionCapabilities {
		return fmt.Sprintf("capability %q lists case study %q, which does not list it back", a.CapabilityID, a.CaseStudyID)
	}
	return fmt.Sprintf("case study %q lists capability %q, which does not list it back", a.CaseStudyID, a.CapabilityID)
}
