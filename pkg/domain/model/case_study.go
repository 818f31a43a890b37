package model

import (
	"maps"
	"slices"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
)

// CaseStudy is a concrete engagement record with challenge, execution steps and measured results
type CaseStudy struct {
	ID        types.CaseStudyID `json:"id"`
	Title     string            `json:"title"`
	Category  string            `json:"category"`
	Brand     string            `json:"brand"`
	Portfolio string            `json:"portfolio,omitempty"`
	Challenge string            `json:"challenge"`
	Execution []string          `json:"execution"`
	// Results maps a metric name to a string or a number
	Results      map[string]types.Value `json:"results"`
	Capabilities []types.CapabilityID   `json:"capabilities"`
	// KPIs are display labels and are not checked against any KPI record
	KPIs []string `json:"kpis"`
}

// Clone returns a deep copy of the case study
func (c *CaseStudy) Clone() *CaseStudy {
	if c == nil {
		return nil
	}
	copied := *c
	copied.Execution = slices.Clone(c.Execution)
	copied.Results = maps.Clone(c.Results)
	copied.Capabilities = slices.Clone(c.Capabilities)
	copied.KPIs = slices.Clone(c.KPIs)
	return &copied
}

// ResultNames returns result metric names in lexical order
func (c *CaseStudy) ResultNames() []string {
	return slices.Sorted(maps.Keys(c.Results))
}
