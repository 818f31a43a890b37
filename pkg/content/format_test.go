package content_test

import (
	"testing"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/content"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

const tomlDoc = `
[[capabilities]]
id = "brand-protection"
title = "Rogue Seller Containment"
category = "Brand Protection"
keyPoints = ["Continuous monitoring and enforcement"]
relatedCaseStudies = ["mason-jar-protection"]

  [[capabilities.kpis]]
  metric = "Seller Removal"
  value = "56 sellers"
  description = "Removed in Mason Jar case"

[[caseStudies]]
id = "mason-jar-protection"
title = "Mason Jar Brand"
category = "Brand Protection & Compliance"
brand = "Leading Mason Jar Manufacturer"
capabilities = ["brand-protection"]
kpis = ["Seller Removal"]

  [caseStudies.results]
  sellersRemoved = 56
  monthlyRevenue = "$526,192"

[serviceKPIs.brandProtection.sellerRemoval]
value = "56 sellers"
detail = "single campaign"
source = "mason-jar-protection"

[[process]]
step = 1
title = "Audit"
icon = "search"

[frameworks.gtmApproach]
title = "Go-To-Market Approach"
description = "Data-driven marketplace control"

  [[frameworks.gtmApproach.components]]
  name = "ASIN Scorecard System"
  criteria = ["Page Score", "Competition"]

[[glossary]]
term = "ASIN"
definition = "Amazon Standard Identification Number"
category = "Amazon Marketplace"
cpgioContext = "Tracked per listing"
`

const jsonDoc = `{
  "capabilities": [{
    "id": "brand-protection",
    "title": "Rogue Seller Containment",
    "category": "Brand Protection",
    "keyPoints": ["Continuous monitoring and enforcement"],
    "kpis": [{"metric": "Seller Removal", "value": "56 sellers", "description": "Removed in Mason Jar case"}],
    "relatedCaseStudies": ["mason-jar-protection"]
  }],
  "caseStudies": [{
    "id": "mason-jar-protection",
    "title": "Mason Jar Brand",
    "category": "Brand Protection & Compliance",
    "brand": "Leading Mason Jar Manufacturer",
    "results": {"sellersRemoved": 56, "monthlyRevenue": "$526,192"},
    "capabilities": ["brand-protection"],
    "kpis": ["Seller Removal"]
  }],
  "serviceKPIs": {
    "brandProtection": {
      "sellerRemoval": {"value": "56 sellers", "detail": "single campaign", "source": "mason-jar-protection"}
    }
  },
  "process": [{"step": 1, "title": "Audit", "icon": "search"}],
  "frameworks": {
    "gtmApproach": {
      "title": "Go-To-Market Approach",
      "description": "Data-driven marketplace control",
      "components": [{"name": "ASIN Scorecard System", "criteria": ["Page Score", "Competition"]}]
    }
  },
  "glossary": [{
    "term": "ASIN",
    "definition": "Amazon Standard Identification Number",
    "category": "Amazon Marketplace",
    "cpgioContext": "Tracked per listing"
  }]
}`

const yamlDoc = `
capabilities:
  - id: brand-protection
    title: Rogue Seller Containment
    category: Brand Protection
    keyPoints:
      - Continuous monitoring and enforcement
    kpis:
      - metric: Seller Removal
        value: 56 sellers
        description: Removed in Mason Jar case
    relatedCaseStudies: [mason-jar-protection]
caseStudies:
  - id: mason-jar-protection
    title: Mason Jar Brand
    category: Brand Protection & Compliance
    brand: Leading Mason Jar Manufacturer
    results:
      sellersRemoved: 56
      monthlyRevenue: "$526,192"
    capabilities: [brand-protection]
    kpis: [Seller Removal]
serviceKPIs:
  brandProtection:
    sellerRemoval:
      value: 56 sellers
      detail: single campaign
      source: mason-jar-protection
process:
  - step: 1
    title: Audit
    icon: search
frameworks:
  gtmApproach:
    title: Go-To-Market Approach
    description: Data-driven marketplace control
    components:
      - name: ASIN Scorecard System
        criteria: [Page Score, Competition]
glossary:
  - term: ASIN
    definition: Amazon Standard Identification Number
    category: Amazon Marketplace
    cpgioContext: Tracked per listing
`

func TestDecode_AllFormatsAgree(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format content.Format
	}{
		{"toml", tomlDoc, content.FormatTOML},
		{"json", jsonDoc, content.FormatJSON},
		{"yaml", yamlDoc, content.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := content.Decode([]byte(tt.data), tt.format)
			gt.NoError(t, err).Required()

			records, violations := doc.Records()
			gt.Array(t, violations).Length(0)

			gt.Array(t, records.Capabilities).Length(1).Required()
			capability := records.Capabilities[0]
			gt.Value(t, capability.ID).Equal(types.CapabilityID("brand-protection"))
			gt.Value(t, capability.RelatedCaseStudies).Equal([]types.CaseStudyID{"mason-jar-protection"})
			gt.Array(t, capability.KPIs).Length(1).Required()
			gt.Value(t, capability.KPIs[0].Value).Equal("56 sellers")

			gt.Array(t, records.CaseStudies).Length(1).Required()
			cs := records.CaseStudies[0]
			removed, ok := cs.Results["sellersRemoved"].AsNumber()
			gt.Bool(t, ok).True()
			gt.Value(t, removed).Equal(float64(56))
			revenue, ok := cs.Results["monthlyRevenue"].AsString()
			gt.Bool(t, ok).True()
			gt.Value(t, revenue).Equal("$526,192")

			gt.Array(t, records.KPIGroups).Length(1).Required()
			group := records.KPIGroups[0]
			gt.Value(t, group.Domain).Equal("brandProtection")
			gt.Array(t, group.KPIs).Length(1).Required()
			gt.Value(t, group.KPIs[0].Name).Equal("sellerRemoval")
			gt.Value(t, group.KPIs[0].Sources).Equal([]types.CaseStudyID{"mason-jar-protection"})

			gt.Array(t, records.Process).Length(1).Required()
			gt.Value(t, records.Process[0].Step).Equal(1)

			gt.Array(t, records.Frameworks).Length(1).Required()
			gt.Value(t, records.Frameworks[0].Key).Equal("gtmApproach")
			gt.Value(t, records.Frameworks[0].Title).Equal("Go-To-Market Approach")
			gt.Map(t, records.Frameworks[0].Body).HasKey("components")

			gt.Array(t, records.Glossary).Length(1).Required()
			gt.Value(t, records.Glossary[0].Term).Equal(types.Term("ASIN"))
			gt.Value(t, records.Glossary[0].CPGIOContext).Equal("Tracked per listing")
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format content.Format
	}{
		{"toml", "[[capabilities]\nid =", content.FormatTOML},
		{"json", `{"capabilities": [`, content.FormatJSON},
		{"yaml", "capabilities: [\n  - id: x\n bad", content.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := content.Decode([]byte(tt.data), tt.format)
			gt.Value(t, err).NotNil()
		})
	}
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := content.Decode([]byte("{}"), content.Format("xml"))
	gt.Error(t, err).Is(content.ErrUnsupportedFormat)
}

func TestRecords_InvalidResultValue(t *testing.T) {
	doc, err := content.Decode([]byte(`
[[caseStudies]]
id = "energizer-sioc"
title = "Energizer Lighting"

  [caseStudies.results]
  asinsCreated = 24
  sustainable = true
`), content.FormatTOML)
	gt.NoError(t, err).Required()

	records, violations := doc.Records()
	gt.Array(t, violations).Length(1).Required()
	gt.Value(t, violations[0].Kind).Equal(types.ViolationInvalidValue)
	gt.Value(t, violations[0].Record).Equal("energizer-sioc")
	gt.Value(t, violations[0].Field).Equal("results.sustainable")

	gt.Array(t, records.CaseStudies).Length(1).Required()
	gt.Map(t, records.CaseStudies[0].Results).HasKey("asinsCreated")
}

func TestRecords_MergesSourceAndSources(t *testing.T) {
	doc, err := content.Decode([]byte(`
[serviceKPIs.media.roasRange]
value = "5-8x"
source = "grocery-brand-media"
sources = ["sola-scaling", "bobs-red-mill"]
`), content.FormatTOML)
	gt.NoError(t, err).Required()

	records, _ := doc.Records()
	gt.Array(t, records.KPIGroups).Length(1).Required()
	gt.Value(t, records.KPIGroups[0].KPIs[0].Sources).Equal([]types.CaseStudyID{
		"grocery-brand-media", "sola-scaling", "bobs-red-mill",
	})
}

func TestRecords_MappingSectionsAreSorted(t *testing.T) {
	doc, err := content.Decode([]byte(`
[serviceKPIs.media.roasRange]
value = "5-8x"
[serviceKPIs.media.acosOptimization]
value = "38% -> 21%"
[serviceKPIs.brandProtection.responseTime]
value = "<24 hours"

[frameworks.gtmApproach]
title = "Go-To-Market Approach"
[frameworks.financialModels]
title = "Financial Models"
`), content.FormatTOML)
	gt.NoError(t, err).Required()

	records, _ := doc.Records()
	gt.Array(t, records.KPIGroups).Length(2).Required()
	gt.Value(t, records.KPIGroups[0].Domain).Equal("brandProtection")
	gt.Value(t, records.KPIGroups[1].Domain).Equal("media")
	gt.Value(t, records.KPIGroups[1].KPIs[0].Name).Equal("acosOptimization")
	gt.Value(t, records.KPIGroups[1].KPIs[1].Name).Equal("roasRange")

	gt.Array(t, records.Frameworks).Length(2).Required()
	gt.Value(t, records.Frameworks[0].Key).Equal("financialModels")
	gt.Value(t, records.Frameworks[1].Key).Equal("gtmApproach")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    content.Format
		wantErr bool
	}{
		{"", content.FormatAuto, false},
		{"auto", content.FormatAuto, false},
		{"TOML", content.FormatTOML, false},
		{"json", content.FormatJSON, false},
		{"yml", content.FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := content.ParseFormat(tt.input)
			if tt.wantErr {
				gt.Error(t, err).Is(content.ErrUnsupportedFormat)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    content.Format
		wantErr bool
	}{
		{"knowledge-base.toml", content.FormatTOML, false},
		{"/srv/content/kb.JSON", content.FormatJSON, false},
		{"kb.yaml", content.FormatYAML, false},
		{"kb.yml", content.FormatYAML, false},
		{"kb.js", "", true},
		{"kb", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := content.DetectFormat(tt.name)
			if tt.wantErr {
				gt.Error(t, err).Is(content.ErrUnsupportedFormat)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
		})
	}
}
