package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

var idPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// CapabilityID is the slug of a capability
type CapabilityID string

// Validate checks if the CapabilityID is a lowercase slug
func (c CapabilityID) Validate() error {
	if c == "" {
		return goerr.New("capability ID cannot be empty")
	}
	if !idPattern.MatchString(string(c)) {
		return goerr.New("capability ID must be lowercase alphanumeric with hyphens", goerr.V("id", c))
	}
	return nil
}

// String returns the string representation of CapabilityID
func (c CapabilityID) String() string {
	return string(c)
}

// CaseStudyID is the slug of a case study
type CaseStudyID string

// Validate checks if the CaseStudyID is a lowercase slug
func (c CaseStudyID) Validate() error {
	if c == "" {
		return goerr.New("case study ID cannot be empty")
	}
	if !idPattern.MatchString(string(c)) {
		return goerr.New("case study ID must be lowercase alphanumeric with hyphens", goerr.V("id", c))
	}
	return nil
}

// String returns the string representation of CaseStudyID
func (c CaseStudyID) String() string {
	return string(c)
}

// Term is a glossary term. Terms are free text and compared case-sensitively.
type Term string

// Validate checks that the term is not empty
func (t Term) Validate() error {
	if t == "" {
		return goerr.New("glossary term cannot be empty")
	}
	return nil
}

// String returns the string representation of Term
func (t Term) String() string {
	return string(t)
}
