package store

import (
	"context"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/content"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/model"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Store holds the validated knowledge base. It is never mutated after New
// returns, so a single instance can be shared by any number of goroutines.
type Store struct {
	capabilities []*model.Capability
	caseStudies  []*model.CaseStudy
	kpiGroups    []*model.KPIGroup
	team         []model.TeamMember
	process      []model.ProcessStep
	frameworks   []*model.Framework
	glossary     []*model.GlossaryEntry

	capabilityByID map[types.CapabilityID]*model.Capability
	caseStudyByID  map[types.CaseStudyID]*model.CaseStudy
	glossaryByTerm map[types.Term]*model.GlossaryEntry
	frameworkByKey map[string]*model.Framework
	kpiByName      map[kpiKey]*model.ServiceKPI

	// resolved relation in both directions, union of the declared lists
	relatedOf      map[types.CapabilityID][]*model.CaseStudy
	capabilitiesOf map[types.CaseStudyID][]*model.Capability
	kpiSources     map[types.CaseStudyID][]model.KPISource

	asymmetries []model.Asymmetry
}

type kpiKey struct {
	domain string
	name   string
}

type options struct {
	strictSymmetry bool
}

// Option configures loading
type Option func(*options)

// WithStrictSymmetry makes every capability/case study link declared on only
// one side a load failure instead of reconciling it.
func WithStrictSymmetry() Option {
	return func(o *options) {
		o.strictSymmetry = true
	}
}

// Load reads the document from src, converts and validates it
func Load(ctx context.Context, src content.Source, opts ...Option) (*Store, error) {
	doc, err := content.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return FromDocument(ctx, doc, opts...)
}

// FromDocument converts and validates a decoded document. Conversion problems
// and integrity violations are reported together in one *model.ValidationError.
func FromDocument(ctx context.Context, doc *content.Document, opts ...Option) (*Store, error) {
	if doc == nil {
		return nil, goerr.New("content document is nil")
	}
	// Records are freshly built and owned by the store
	records, violations := doc.Records()
	return build(ctx, records, violations, opts...)
}

// New validates records and builds the store. The records are deep-copied, so
// the caller may keep using them without affecting the store. Nil entries are
// reported as missing-field violations.
func New(ctx context.Context, records *content.Records, opts ...Option) (*Store, error) {
	if records == nil {
		return nil, goerr.New("content records are nil")
	}
	return build(ctx, records.Clone(), nil, opts...)
}

func build(ctx context.Context, records *content.Records, violations []model.Violation, opts ...Option) (*Store, error) {
	cfg := &options{}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := logging.From(ctx)

	v := newValidator(records, cfg.strictSymmetry)
	v.violations = append(v.violations, violations...)
	v.run()

	if len(v.violations) > 0 {
		for _, violation := range v.violations {
			logger.Debug("Content violation",
				"kind", violation.Kind,
				"collection", violation.Collection,
				"record", violation.Record,
				"field", violation.Field,
				"value", violation.Value,
			)
		}
		return nil, &model.ValidationError{Violations: v.violations}
	}

	s := &Store{
		capabilities:   records.Capabilities,
		caseStudies:    records.CaseStudies,
		kpiGroups:      records.KPIGroups,
		team:           records.Team,
		process:        records.Process,
		frameworks:     records.Frameworks,
		glossary:       records.Glossary,
		capabilityByID: v.capabilities,
		caseStudyByID:  v.caseStudies,
		glossaryByTerm: v.glossary,
		frameworkByKey: make(map[string]*model.Framework, len(records.Frameworks)),
		kpiByName:      make(map[kpiKey]*model.ServiceKPI),
		asymmetries:    v.asymmetries,
	}
	for _, fw := range records.Frameworks {
		s.frameworkByKey[fw.Key] = fw
	}
	s.resolveRelations()
	s.indexKPISources()

	for _, a := range s.asymmetries {
		logger.Warn("Reconciled one-sided capability link",
			"capability_id", a.CapabilityID,
			"case_study_id", a.CaseStudyID,
			"declared_by", a.DeclaredBy,
		)
	}
	logger.Info("Loaded knowledge base",
		"capabilities", len(s.capabilities),
		"case_studies", len(s.caseStudies),
		"kpi_groups", len(s.kpiGroups),
		"team", len(s.team),
		"process", len(s.process),
		"frameworks", len(s.frameworks),
		"glossary", len(s.glossary),
		"asymmetries", len(s.asymmetries),
	)

	return s, nil
}

// resolveRelations builds both directions of the capability/case study relation.
// Declared entries keep their order; links declared only on the other side are
// appended in that side's declaration order.
func (s *Store) resolveRelations() {
	s.relatedOf = make(map[types.CapabilityID][]*model.CaseStudy, len(s.capabilities))
	s.capabilitiesOf = make(map[types.CaseStudyID][]*model.Capability, len(s.caseStudies))

	for _, c := range s.capabilities {
		list := make([]*model.CaseStudy, 0, len(c.RelatedCaseStudies))
		for _, id := range c.RelatedCaseStudies {
			list = append(list, s.caseStudyByID[id])
		}
		s.relatedOf[c.ID] = list
	}
	for _, cs := range s.caseStudies {
		list := make([]*model.Capability, 0, len(cs.Capabilities))
		for _, id := range cs.Capabilities {
			list = append(list, s.capabilityByID[id])
		}
		s.capabilitiesOf[cs.ID] = list
	}

	for _, a := range s.asymmetries {
		switch a.DeclaredBy {
		case types.CollectionCapabilities:
			s.capabilitiesOf[a.CaseStudyID] = append(s.capabilitiesOf[a.CaseStudyID], s.capabilityByID[a.CapabilityID])
		case types.CollectionCaseStudies:
			s.relatedOf[a.CapabilityID] = append(s.relatedOf[a.CapabilityID], s.caseStudyByID[a.CaseStudyID])
		}
	}
}

func (s *Store) indexKPISources() {
	s.kpiSources = make(map[types.CaseStudyID][]model.KPISource)
	for _, group := range s.kpiGroups {
		for i := range group.KPIs {
			kpi := &group.KPIs[i]
			s.kpiByName[kpiKey{domain: group.Domain, name: kpi.Name}] = kpi

			seen := make(map[types.CaseStudyID]bool, len(kpi.Sources))
			for _, id := range kpi.Sources {
				if seen[id] {
					continue
				}
				seen[id] = true
				s.kpiSources[id] = append(s.kpiSources[id], model.KPISource{
					Domain:  group.Domain,
					KPIName: kpi.Name,
					Value:   kpi.Value,
				})
			}
		}
	}
}
