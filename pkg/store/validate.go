package store

import (
	"fmt"
	"slices"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/content"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/model"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
)

// Document keys used as Violation.Collection
const (
	docCapabilities = "capabilities"
	docCaseStudies  = "caseStudies"
	docServiceKPIs  = "serviceKPIs"
	docProcess      = "process"
	docGlossary     = "glossary"
	docFrameworks   = "frameworks"
)

// validator checks every invariant in one pass and keeps going after the first
// violation. The first record with a given id or term wins the index slot.
type validator struct {
	records *content.Records
	strict  bool

	capabilities map[types.CapabilityID]*model.Capability
	caseStudies  map[types.CaseStudyID]*model.CaseStudy
	glossary     map[types.Term]*model.GlossaryEntry

	violations  []model.Violation
	asymmetries []model.Asymmetry
}

func newValidator(records *content.Records, strict bool) *validator {
	return &validator{
		records:      records,
		strict:       strict,
		capabilities: make(map[types.CapabilityID]*model.Capability, len(records.Capabilities)),
		caseStudies:  make(map[types.CaseStudyID]*model.CaseStudy, len(records.CaseStudies)),
		glossary:     make(map[types.Term]*model.GlossaryEntry, len(records.Glossary)),
	}
}

func (v *validator) add(kind types.ViolationKind, collection, record, field, value, msg string) {
	v.violations = append(v.violations, model.Violation{
		Kind:       kind,
		Collection: collection,
		Record:     record,
		Field:      field,
		Value:      value,
		Message:    msg,
	})
}

func (v *validator) run() {
	v.dropNilRecords()
	v.indexCapabilities()
	v.indexCaseStudies()
	v.indexGlossary()
	v.checkCapabilityReferences()
	v.checkCaseStudyReferences()
	v.checkKPISources()
	v.checkProcess()
	v.checkSymmetry()
}

func recordName(id string, index int) string {
	if id == "" {
		return fmt.Sprintf("#%d", index)
	}
	return id
}

// dropNilRecords reports nil entries as missing records and removes them so
// the remaining checks only see real records. It rewrites v.records in place,
// which must therefore be a copy owned by the store.
func (v *validator) dropNilRecords() {
	r := v.records
	r.Capabilities = compact(v, docCapabilities, r.Capabilities)
	r.CaseStudies = compact(v, docCaseStudies, r.CaseStudies)
	r.KPIGroups = compact(v, docServiceKPIs, r.KPIGroups)
	r.Frameworks = compact(v, docFrameworks, r.Frameworks)
	r.Glossary = compact(v, docGlossary, r.Glossary)
}

func compact[T comparable](v *validator, collection string, src []T) []T {
	var zero T
	result := make([]T, 0, len(src))
	for i, item := range src {
		if item == zero {
			v.add(types.ViolationMissingField, collection, fmt.Sprintf("#%d", i), "", "", "record is empty")
			continue
		}
		result = append(result, item)
	}
	return result
}

func (v *validator) indexCapabilities() {
	for i, c := range v.records.Capabilities {
		name := recordName(string(c.ID), i)
		if c.Title == "" {
			v.add(types.ViolationMissingField, docCapabilities, name, "title", "", "capability title is required")
		}
		if c.ID == "" {
			v.add(types.ViolationMissingField, docCapabilities, name, "id", "", "capability id is required")
			continue
		}
		if err := c.ID.Validate(); err != nil {
			v.add(types.ViolationInvalidID, docCapabilities, name, "id", string(c.ID), err.Error())
		}
		if _, exists := v.capabilities[c.ID]; exists {
			v.add(types.ViolationDuplicateID, docCapabilities, name, "id", string(c.ID), "capability id is declared more than once")
			continue
		}
		v.capabilities[c.ID] = c
	}
}

func (v *validator) indexCaseStudies() {
	for i, cs := range v.records.CaseStudies {
		name := recordName(string(cs.ID), i)
		if cs.Title == "" {
			v.add(types.ViolationMissingField, docCaseStudies, name, "title", "", "case study title is required")
		}
		if cs.ID == "" {
			v.add(types.ViolationMissingField, docCaseStudies, name, "id", "", "case study id is required")
			continue
		}
		if err := cs.ID.Validate(); err != nil {
			v.add(types.ViolationInvalidID, docCaseStudies, name, "id", string(cs.ID), err.Error())
		}
		if _, exists := v.caseStudies[cs.ID]; exists {
			v.add(types.ViolationDuplicateID, docCaseStudies, name, "id", string(cs.ID), "case study id is declared more than once")
			continue
		}
		v.caseStudies[cs.ID] = cs
	}
}

func (v *validator) indexGlossary() {
	for i, g := range v.records.Glossary {
		name := recordName(string(g.Term), i)
		if err := g.Term.Validate(); err != nil {
			v.add(types.ViolationMissingField, docGlossary, name, "term", "", err.Error())
			continue
		}
		if _, exists := v.glossary[g.Term]; exists {
			v.add(types.ViolationDuplicateID, docGlossary, name, "term", string(g.Term), "glossary term is declared more than once")
			continue
		}
		v.glossary[g.Term] = g
	}
}

func (v *validator) checkCapabilityReferences() {
	for i, c := range v.records.Capabilities {
		name := recordName(string(c.ID), i)
		seen := make(map[types.CaseStudyID]bool, len(c.RelatedCaseStudies))
		for _, id := range c.RelatedCaseStudies {
			if seen[id] {
				v.add(types.ViolationDuplicateReference, docCapabilities, name, "relatedCaseStudies", string(id), "case study is listed more than once")
				continue
			}
			seen[id] = true
			if _, ok := v.caseStudies[id]; !ok {
				v.add(types.ViolationDanglingReference, docCapabilities, name, "relatedCaseStudies", string(id), "case study does not exist")
			}
		}
	}
}

func (v *validator) checkCaseStudyReferences() {
	for i, cs := range v.records.CaseStudies {
		name := recordName(string(cs.ID), i)
		seen := make(map[types.CapabilityID]bool, len(cs.Capabilities))
		for _, id := range cs.Capabilities {
			if seen[id] {
				v.add(types.ViolationDuplicateReference, docCaseStudies, name, "capabilities", string(id), "capability is listed more than once")
				continue
			}
			seen[id] = true
			if _, ok := v.capabilities[id]; !ok {
				v.add(types.ViolationDanglingReference, docCaseStudies, name, "capabilities", string(id), "capability does not exist")
			}
		}
	}
}

// checkKPISources allows the same case study to be cited twice by one entry;
// the reverse index deduplicates it.
func (v *validator) checkKPISources() {
	for _, group := range v.records.KPIGroups {
		for _, kpi := range group.KPIs {
			for _, id := range kpi.Sources {
				if _, ok := v.caseStudies[id]; !ok {
					v.add(types.ViolationDanglingReference, docServiceKPIs, group.Domain+"."+kpi.Name, "sources", string(id), "case study does not exist")
				}
			}
		}
	}
}

// checkProcess requires the step at position i (declaration order) to be i+1
func (v *validator) checkProcess() {
	for i, step := range v.records.Process {
		if step.Step != i+1 {
			v.add(types.ViolationNonContiguousStep, docProcess, fmt.Sprintf("#%d", i), "step", fmt.Sprint(step.Step),
				fmt.Sprintf("expected step %d", i+1))
		}
	}
}

// checkSymmetry finds links declared on one side only. Links pointing at
// unknown records are already reported as dangling and skipped here.
func (v *validator) checkSymmetry() {
	for _, c := range v.records.Capabilities {
		if v.capabilities[c.ID] != c {
			continue
		}
		for _, csID := range uniq(c.RelatedCaseStudies) {
			cs, ok := v.caseStudies[csID]
			if !ok || slices.Contains(cs.Capabilities, c.ID) {
				continue
			}
			v.asymmetric(model.Asymmetry{CapabilityID: c.ID, CaseStudyID: csID, DeclaredBy: types.CollectionCapabilities})
		}
	}

	for _, cs := range v.records.CaseStudies {
		if v.caseStudies[cs.ID] != cs {
			continue
		}
		for _, capID := range uniq(cs.Capabilities) {
			c, ok := v.capabilities[capID]
			if !ok || slices.Contains(c.RelatedCaseStudies, cs.ID) {
				continue
			}
			v.asymmetric(model.Asymmetry{CapabilityID: capID, CaseStudyID: cs.ID, DeclaredBy: types.CollectionCaseStudies})
		}
	}
}

func (v *validator) asymmetric(a model.Asymmetry) {
	if !v.strict {
		v.asymmetries = append(v.asymmetries, a)
		return
	}
	if a.DeclaredBy == types.CollectionCapabilities {
		v.add(types.ViolationAsymmetricLink, docCapabilities, string(a.CapabilityID), "relatedCaseStudies", string(a.CaseStudyID), a.String())
	} else {
		v.add(types.ViolationAsymmetricLink, docCaseStudies, string(a.CaseStudyID), "capabilities", string(a.CapabilityID), a.String())
	}
}

func uniq[T comparable](ids []T) []T {
	seen := make(map[T]bool, len(ids))
	result := make([]T, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			result = append(result, id)
		}
	}
	return result
}
