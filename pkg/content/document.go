package content

// Document is the raw content definition exactly as authored. Field names follow
// the document keys so the same struct decodes TOML, JSON and YAML.
type Document struct {
	Capabilities []RawCapability                     `toml:"capabilities" json:"capabilities" yaml:"capabilities"`
	CaseStudies  []RawCaseStudy                      `toml:"caseStudies" json:"caseStudies" yaml:"caseStudies"`
	ServiceKPIs  map[string]map[string]RawServiceKPI `toml:"serviceKPIs" json:"serviceKPIs" yaml:"serviceKPIs"`
	Team         []RawTeamMember                     `toml:"team" json:"team" yaml:"team"`
	Process      []RawProcessStep                    `toml:"process" json:"process" yaml:"process"`
	Frameworks   map[string]map[string]any           `toml:"frameworks" json:"frameworks" yaml:"frameworks"`
	Glossary     []RawGlossaryEntry                  `toml:"glossary" json:"glossary" yaml:"glossary"`
}

// RawKPI is a capability KPI line
type RawKPI struct {
	Metric      string `toml:"metric" json:"metric" yaml:"metric"`
	Value       string `toml:"value" json:"value" yaml:"value"`
	Description string `toml:"description" json:"description" yaml:"description"`
}

// RawCapability is a capability record
type RawCapability struct {
	ID                 string   `toml:"id" json:"id" yaml:"id"`
	Title              string   `toml:"title" json:"title" yaml:"title"`
	Category           string   `toml:"category" json:"category" yaml:"category"`
	Description        string   `toml:"description" json:"description" yaml:"description"`
	KeyPoints          []string `toml:"keyPoints" json:"keyPoints" yaml:"keyPoints"`
	KPIs               []RawKPI `toml:"kpis" json:"kpis" yaml:"kpis"`
	RelatedCaseStudies []string `toml:"relatedCaseStudies" json:"relatedCaseStudies" yaml:"relatedCaseStudies"`
}

// RawCaseStudy is a case study record. Results values are strings or numbers.
type RawCaseStudy struct {
	ID           string         `toml:"id" json:"id" yaml:"id"`
	Title        string         `toml:"title" json:"title" yaml:"title"`
	Category     string         `toml:"category" json:"category" yaml:"category"`
	Brand        string         `toml:"brand" json:"brand" yaml:"brand"`
	Portfolio    string         `toml:"portfolio" json:"portfolio" yaml:"portfolio"`
	Challenge    string         `toml:"challenge" json:"challenge" yaml:"challenge"`
	Execution    []string       `toml:"execution" json:"execution" yaml:"execution"`
	Results      map[string]any `toml:"results" json:"results" yaml:"results"`
	Capabilities []string       `toml:"capabilities" json:"capabilities" yaml:"capabilities"`
	KPIs         []string       `toml:"kpis" json:"kpis" yaml:"kpis"`
}

// RawServiceKPI is one entry of a service KPI group
type RawServiceKPI struct {
	Value     string   `toml:"value" json:"value" yaml:"value"`
	Detail    string   `toml:"detail" json:"detail" yaml:"detail"`
	Condition string   `toml:"condition" json:"condition" yaml:"condition"`
	Timeline  string   `toml:"timeline" json:"timeline" yaml:"timeline"`
	Source    string   `toml:"source" json:"source" yaml:"source"`
	Sources   []string `toml:"sources" json:"sources" yaml:"sources"`
}

// RawTeamMember is a roster entry
type RawTeamMember struct {
	Name     string `toml:"name" json:"name" yaml:"name"`
	Role     string `toml:"role" json:"role" yaml:"role"`
	Bio      string `toml:"bio" json:"bio" yaml:"bio"`
	PhotoURL string `toml:"photoUrl" json:"photoUrl" yaml:"photoUrl"`
}

// RawProcessStep is a process step
type RawProcessStep struct {
	Step        int    `toml:"step" json:"step" yaml:"step"`
	Title       string `toml:"title" json:"title" yaml:"title"`
	Description string `toml:"description" json:"description" yaml:"description"`
	Icon        string `toml:"icon" json:"icon" yaml:"icon"`
}

// RawGlossaryEntry is a glossary entry
type RawGlossaryEntry struct {
	Term         string `toml:"term" json:"term" yaml:"term"`
	Definition   string `toml:"definition" json:"definition" yaml:"definition"`
	Category     string `toml:"category" json:"category" yaml:"category"`
	CPGIOContext string `toml:"cpgioContext" json:"cpgioContext" yaml:"cpgioContext"`
}
