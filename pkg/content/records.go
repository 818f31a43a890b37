package content

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/model"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
)

// Records is a Document converted into model records, before cross-reference validation.
// Mapping-shaped sections (service KPIs, frameworks) are ordered by key.
type Records struct {
	Capabilities []*model.Capability
	CaseStudies  []*model.CaseStudy
	KPIGroups    []*model.KPIGroup
	Team         []model.TeamMember
	Process      []model.ProcessStep
	Frameworks   []*model.Framework
	Glossary     []*model.GlossaryEntry
}

// Records converts the raw document. Values that cannot be represented in the
// model (a result that is neither string nor number) are dropped and reported
// as violations so the caller can fold them into one validation error.
func (d *Document) Records() (*Records, []model.Violation) {
	var violations []model.Violation
	records := &Records{
		Capabilities: make([]*model.Capability, len(d.Capabilities)),
		CaseStudies:  make([]*model.CaseStudy, len(d.CaseStudies)),
		Team:         make([]model.TeamMember, len(d.Team)),
		Process:      make([]model.ProcessStep, len(d.Process)),
		Glossary:     make([]*model.GlossaryEntry, len(d.Glossary)),
	}

	for i, raw := range d.Capabilities {
		kpis := make([]model.KPI, len(raw.KPIs))
		for j, k := range raw.KPIs {
			kpis[j] = model.KPI{Metric: k.Metric, Value: k.Value, Description: k.Description}
		}
		related := make([]types.CaseStudyID, len(raw.RelatedCaseStudies))
		for j, id := range raw.RelatedCaseStudies {
			related[j] = types.CaseStudyID(id)
		}
		records.Capabilities[i] = &model.Capability{
			ID:                 types.CapabilityID(raw.ID),
			Title:              raw.Title,
			Category:           raw.Category,
			Description:        raw.Description,
			KeyPoints:          slices.Clone(raw.KeyPoints),
			KPIs:               kpis,
			RelatedCaseStudies: related,
		}
	}

	for i, raw := range d.CaseStudies {
		results := make(map[string]types.Value, len(raw.Results))
		for _, name := range slices.Sorted(maps.Keys(raw.Results)) {
			v, err := types.NewValue(raw.Results[name])
			if err != nil {
				violations = append(violations, model.Violation{
					Kind:       types.ViolationInvalidValue,
					Collection: "caseStudies",
					Record:     raw.ID,
					Field:      "results." + name,
					Value:      fmt.Sprint(raw.Results[name]),
					Message:    "result must be a string or a number",
				})
				continue
			}
			results[name] = v
		}
		caps := make([]types.CapabilityID, len(raw.Capabilities))
		for j, id := range raw.Capabilities {
			caps[j] = types.CapabilityID(id)
		}
		records.CaseStudies[i] = &model.CaseStudy{
			ID:           types.CaseStudyID(raw.ID),
			Title:        raw.Title,
			Category:     raw.Category,
			Brand:        raw.Brand,
			Portfolio:    raw.Portfolio,
			Challenge:    raw.Challenge,
			Execution:    slices.Clone(raw.Execution),
			Results:      results,
			Capabilities: caps,
			KPIs:         slices.Clone(raw.KPIs),
		}
	}

	for _, domain := range slices.Sorted(maps.Keys(d.ServiceKPIs)) {
		entries := d.ServiceKPIs[domain]
		group := &model.KPIGroup{Domain: domain, KPIs: make([]model.ServiceKPI, 0, len(entries))}
		for _, name := range slices.Sorted(maps.Keys(entries)) {
			raw := entries[name]
			var sources []types.CaseStudyID
			if raw.Source != "" {
				sources = append(sources, types.CaseStudyID(raw.Source))
			}
			for _, id := range raw.Sources {
				sources = append(sources, types.CaseStudyID(id))
			}
			group.KPIs = append(group.KPIs, model.ServiceKPI{
				Domain:    domain,
				Name:      name,
				Value:     raw.Value,
				Detail:    raw.Detail,
				Condition: raw.Condition,
				Timeline:  raw.Timeline,
				Sources:   sources,
			})
		}
		records.KPIGroups = append(records.KPIGroups, group)
	}

	for i, raw := range d.Team {
		records.Team[i] = model.TeamMember{
			Name:     raw.Name,
			Role:     raw.Role,
			Bio:      raw.Bio,
			PhotoURL: raw.PhotoURL,
		}
	}

	for i, raw := range d.Process {
		records.Process[i] = model.ProcessStep{
			Step:        raw.Step,
			Title:       raw.Title,
			Description: raw.Description,
			Icon:        raw.Icon,
		}
	}

	for _, key := range slices.Sorted(maps.Keys(d.Frameworks)) {
		body := d.Frameworks[key]
		fw := &model.Framework{Key: key, Body: body}
		if title, ok := body["title"].(string); ok {
			fw.Title = title
		}
		if desc, ok := body["description"].(string); ok {
			fw.Description = desc
		}
		// Clone so the store never shares maps with the decoded document
		records.Frameworks = append(records.Frameworks, fw.Clone())
	}

	for i, raw := range d.Glossary {
		records.Glossary[i] = &model.GlossaryEntry{
			Term:         types.Term(raw.Term),
			Definition:   raw.Definition,
			Category:     raw.Category,
			CPGIOContext: raw.CPGIOContext,
		}
	}

	return records, violations
}

// Clone returns a deep copy. Nil entries stay nil.
func (r *Records) Clone() *Records {
	if r == nil {
		return nil
	}
	return &Records{
		Capabilities: cloneEach(r.Capabilities),
		CaseStudies:  cloneEach(r.CaseStudies),
		KPIGroups:    cloneEach(r.KPIGroups),
		Team:         slices.Clone(r.Team),
		Process:      slices.Clone(r.Process),
		Frameworks:   cloneEach(r.Frameworks),
		Glossary:     cloneEach(r.Glossary),
	}
}

func cloneEach[T interface{ Clone() T }](src []T) []T {
	if src == nil {
		return nil
	}
	result := make([]T, len(src))
	for i, item := range src {
		result[i] = item.Clone()
	}
	return result
}
