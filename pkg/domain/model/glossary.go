package model

import "github.com/jackyjross/cpgio-knowledge-base/pkg/domain/types"

// GlossaryEntry is a domain term with its definition
type GlossaryEntry struct {
	Term         types.Term `json:"term"`
	Definition   string     `json:"definition"`
	Category     string     `json:"category"`
	CPGIOContext string     `json:"cpgioContext"`
}

// Clone returns a copy of the entry
func (g *GlossaryEntry) Clone() *GlossaryEntry {
	if g == nil {
		return nil
	}
	copied := *g
	return &copied
}
