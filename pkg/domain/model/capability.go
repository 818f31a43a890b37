package model

import (
	"slices"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
)

// KPI is a metric line shown on a capability page
type KPI struct {
	Metric      string `json:"metric"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Capability is a named service offering with supporting KPIs and linked case studies
type Capability struct {
	ID                 types.CapabilityID  `json:"id"`
	Title              string              `json:"title"`
	Category           string              `json:"category"`
	Description        string              `json:"description"`
	KeyPoints          []string            `json:"keyPoints"`
	KPIs               []KPI               `json:"kpis"`
	RelatedCaseStudies []types.CaseStudyID `json:"relatedCaseStudies"`
}

// Clone returns a deep copy of the capability
func (c *Capability) Clone() *Capability {
	if c == nil {
		return nil
	}
	copied := *c
	copied.KeyPoints = slices.Clone(c.KeyPoints)
	copied.KPIs = slices.Clone(c.KPIs)
	copied.RelatedCaseStudies = slices.Clone(c.RelatedCaseStudies)
	return &copied
}
