package store

import (
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/model"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Stats holds record counts per collection
type Stats struct {
	Capabilities int `json:"capabilities"`
	CaseStudies  int `json:"caseStudies"`
	KPIGroups    int `json:"kpiGroups"`
	ServiceKPIs  int `json:"serviceKPIs"`
	Team         int `json:"team"`
	Process      int `json:"process"`
	Frameworks   int `json:"frameworks"`
	Glossary     int `json:"glossary"`
	Asymmetries  int `json:"asymmetries"`
}

// Capability returns the capability with the given id
func (s *Store) Capability(id types.CapabilityID) (*model.Capability, error) {
	c, ok := s.capabilityByID[id]
	if !ok {
		return nil, goerr.Wrap(model.ErrNotFound, "capability not found", goerr.V(model.CapabilityIDKey, id))
	}
	return c.Clone(), nil
}

// CaseStudy returns the case study with the given id
func (s *Store) CaseStudy(id types.CaseStudyID) (*model.CaseStudy, error) {
	cs, ok := s.caseStudyByID[id]
	if !ok {
		return nil, goerr.Wrap(model.ErrNotFound, "case study not found", goerr.V(model.CaseStudyIDKey, id))
	}
	return cs.Clone(), nil
}

// GlossaryTerm returns the entry whose term matches exactly, case included
func (s *Store) GlossaryTerm(term types.Term) (*model.GlossaryEntry, error) {
	g, ok := s.glossaryByTerm[term]
	if !ok {
		return nil, goerr.Wrap(model.ErrNotFound, "glossary term not found", goerr.V(model.TermKey, term))
	}
	return g.Clone(), nil
}

// CaseStudiesForCapability returns the case studies linked to the capability:
// its declared relatedCaseStudies in order, then case studies that list it
// without being listed back, in case study declaration order.
func (s *Store) CaseStudiesForCapability(id types.CapabilityID) ([]*model.CaseStudy, error) {
	list, ok := s.relatedOf[id]
	if !ok {
		return nil, goerr.Wrap(model.ErrNotFound, "capability not found", goerr.V(model.CapabilityIDKey, id))
	}
	return cloneAll(list), nil
}

// CapabilitiesForCaseStudy mirrors CaseStudiesForCapability
func (s *Store) CapabilitiesForCaseStudy(id types.CaseStudyID) ([]*model.Capability, error) {
	list, ok := s.capabilitiesOf[id]
	if !ok {
		return nil, goerr.Wrap(model.ErrNotFound, "case study not found", goerr.V(model.CaseStudyIDKey, id))
	}
	return cloneAll(list), nil
}

// KPISourcesByCaseStudy returns every service KPI entry citing the case study,
// ordered by domain then KPI name. A known case study cited by nothing yields
// an empty slice.
func (s *Store) KPISourcesByCaseStudy(id types.CaseStudyID) ([]model.KPISource, error) {
	if _, ok := s.caseStudyByID[id]; !ok {
		return nil, goerr.Wrap(model.ErrNotFound, "case study not found", goerr.V(model.CaseStudyIDKey, id))
	}
	sources := s.kpiSources[id]
	result := make([]model.KPISource, len(sources))
	copy(result, sources)
	return result, nil
}

// ListByCategory filters a collection by exact category match in declaration order.
// The result is []*model.Capability, []*model.CaseStudy or []*model.GlossaryEntry.
func (s *Store) ListByCategory(collection types.Collection, category string) (any, error) {
	switch collection {
	case types.CollectionCapabilities:
		return s.CapabilitiesByCategory(category), nil
	case types.CollectionCaseStudies:
		return s.CaseStudiesByCategory(category), nil
	case types.CollectionGlossary:
		return s.GlossaryByCategory(category), nil
	default:
		return nil, goerr.Wrap(model.ErrUnknownCollection, "collection cannot be listed by category",
			goerr.V(model.CollectionKey, collection))
	}
}

// CapabilitiesByCategory returns capabilities whose category equals category
func (s *Store) CapabilitiesByCategory(category string) []*model.Capability {
	return filterCategory(s.capabilities, category, func(c *model.Capability) string { return c.Category })
}

// CaseStudiesByCategory returns case studies whose category equals category
func (s *Store) CaseStudiesByCategory(category string) []*model.CaseStudy {
	return filterCategory(s.caseStudies, category, func(cs *model.CaseStudy) string { return cs.Category })
}

// GlossaryByCategory returns glossary entries whose category equals category
func (s *Store) GlossaryByCategory(category string) []*model.GlossaryEntry {
	return filterCategory(s.glossary, category, func(g *model.GlossaryEntry) string { return g.Category })
}

// Categories returns the distinct categories of a collection in first-seen order
func (s *Store) Categories(collection types.Collection) ([]string, error) {
	var categories []string
	switch collection {
	case types.CollectionCapabilities:
		for _, c := range s.capabilities {
			categories = append(categories, c.Category)
		}
	case types.CollectionCaseStudies:
		for _, cs := range s.caseStudies {
			categories = append(categories, cs.Category)
		}
	case types.CollectionGlossary:
		for _, g := range s.glossary {
			categories = append(categories, g.Category)
		}
	default:
		return nil, goerr.Wrap(model.ErrUnknownCollection, "collection has no categories",
			goerr.V(model.CollectionKey, collection))
	}
	return uniq(categories), nil
}

// Capabilities returns all capabilities in declaration order
func (s *Store) Capabilities() []*model.Capability {
	return cloneAll(s.capabilities)
}

// CaseStudies returns all case studies in declaration order
func (s *Store) CaseStudies() []*model.CaseStudy {
	return cloneAll(s.caseStudies)
}

// Glossary returns all glossary entries in declaration order
func (s *Store) Glossary() []*model.GlossaryEntry {
	return cloneAll(s.glossary)
}

// Team returns the team roster in declaration order
func (s *Store) Team() []model.TeamMember {
	result := make([]model.TeamMember, len(s.team))
	copy(result, s.team)
	return result
}

// Process returns the engagement process steps in order
func (s *Store) Process() []model.ProcessStep {
	result := make([]model.ProcessStep, len(s.process))
	copy(result, s.process)
	return result
}

// ServiceKPIs returns all KPI groups sorted by domain
func (s *Store) ServiceKPIs() []*model.KPIGroup {
	return cloneAll(s.kpiGroups)
}

// ServiceKPI returns one KPI entry of a domain
func (s *Store) ServiceKPI(domain, name string) (*model.ServiceKPI, error) {
	kpi, ok := s.kpiByName[kpiKey{domain: domain, name: name}]
	if !ok {
		return nil, goerr.Wrap(model.ErrNotFound, "service KPI not found",
			goerr.V(model.DomainKey, domain),
			goerr.V(model.KPINameKey, name))
	}
	return kpi.Clone(), nil
}

// Framework returns the framework block with the given key
func (s *Store) Framework(key string) (*model.Framework, error) {
	fw, ok := s.frameworkByKey[key]
	if !ok {
		return nil, goerr.Wrap(model.ErrNotFound, "framework not found", goerr.V(model.FrameworkKey, key))
	}
	return fw.Clone(), nil
}

// Frameworks returns all framework blocks sorted by key
func (s *Store) Frameworks() []*model.Framework {
	return cloneAll(s.frameworks)
}

// Asymmetries returns the links that were declared on one side only and
// reconciled at load. Always empty for a store loaded in strict mode.
func (s *Store) Asymmetries() []model.Asymmetry {
	result := make([]model.Asymmetry, len(s.asymmetries))
	copy(result, s.asymmetries)
	return result
}

// Stats returns record counts
func (s *Store) Stats() Stats {
	return Stats{
		Capabilities: len(s.capabilities),
		CaseStudies:  len(s.caseStudies),
		KPIGroups:    len(s.kpiGroups),
		ServiceKPIs:  len(s.kpiByName),
		Team:         len(s.team),
		Process:      len(s.process),
		Frameworks:   len(s.frameworks),
		Glossary:     len(s.glossary),
		Asymmetries:  len(s.asymmetries),
	}
}

func cloneAll[T interface{ Clone() T }](src []T) []T {
	result := make([]T, len(src))
	for i, item := range src {
		result[i] = item.Clone()
	}
	return result
}

func filterCategory[T interface{ Clone() T }](src []T, category string, categoryOf func(T) string) []T {
	result := []T{}
	for _, item := range src {
		if categoryOf(item) == category {
			result = append(result, item.Clone())
		}
	}
	return result
}
