package model

import (
	"slices"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
)

// ServiceKPI is one named KPI entry of a service KPI group. The document's
// `source` and `sources` fields are merged into Sources, `source` first.
type ServiceKPI struct {
	Domain    string              `json:"domain"`
	Name      string              `json:"name"`
	Value     string              `json:"value"`
	Detail    string              `json:"detail,omitempty"`
	Condition string              `json:"condition,omitempty"`
	Timeline  string              `json:"timeline,omitempty"`
	Sources   []types.CaseStudyID `json:"sources,omitempty"`
}

// Clone returns a deep copy of the KPI entry
func (k *ServiceKPI) Clone() *ServiceKPI {
	if k == nil {
		return nil
	}
	copied := *k
	copied.Sources = slices.Clone(k.Sources)
	return &copied
}

// KPIGroup is the set of service KPIs of one domain (e.g. "fulfillment"), sorted by name
type KPIGroup struct {
	Domain string       `json:"domain"`
	KPIs   []ServiceKPI `json:"kpis"`
}

// Clone returns a deep copy of the group
func (g *KPIGroup) Clone() *KPIGroup {
	if g == nil {
		return nil
	}
	copied := &KPIGroup{Domain: g.Domain, KPIs: make([]ServiceKPI, len(g.KPIs))}
	for i := range g.KPIs {
		copied.KPIs[i] = *g.KPIs[i].Clone()
	}
	return copied
}

// KPISource is a service KPI entry that cites a case study as its source
type KPISource struct {
	Domain  string `json:"domain"`
	KPIName string `json:"kpiName"`
	Value   string `json:"value"`
}
