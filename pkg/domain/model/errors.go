package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors of the content store
var (
	ErrNotFound          = goerr.New("record not found")
	ErrValidation        = goerr.New("content validation failed")
	ErrUnknownCollection = goerr.New("unknown collection")
)

// Context keys for error values
const (
	CapabilityIDKey = "capability_id"
	CaseStudyIDKey  = "case_study_id"
	TermKey         = "term"
	DomainKey       = "domain"
	KPINameKey      = "kpi_name"
	FrameworkKey    = "framework"
	CollectionKey   = "collection"
	ViolationsKey   = "violations"
)
