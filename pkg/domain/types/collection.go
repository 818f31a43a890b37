package types

// Collection names a queryable record collection of the store
type Collection string

const (
	CollectionCapabilities Collection = "capabilities"
	CollectionCaseStudies  Collection = "case-studies"
	CollectionGlossary     Collection = "glossary"
)

// AllCollections returns every collection that supports category listing
func AllCollections() []Collection {
	return []Collection{
		CollectionCapabilities,
		CollectionCaseStudies,
		CollectionGlossary,
	}
}

// IsValid checks if the collection is known
func (c Collection) IsValid() bool {
	switch c {
	case CollectionCapabilities,
		CollectionCaseStudies,
		CollectionGlossary:
		return true
	default:
		return false
	}
}

// String returns the string representation of the collection
func (c Collection) String() string {
	return string(c)
}

// ParseCollection accepts the canonical name and the document key spelling
func ParseCollection(s string) (Collection, bool) {
	switch s {
	case "capabilities", "capability":
		return CollectionCapabilities, true
	case "case-studies", "case-study", "caseStudies":
		return CollectionCaseStudies, true
	case "glossary":
		return CollectionGlossary, true
	default:
		return "", false
	}
}
