// Package data holds the knowledge base document compiled into the binary.
package data

import _ "embed"

// KnowledgeBase is the default TOML content document
//
//go:embed knowledge-base.toml
var KnowledgeBase []byte

// KnowledgeBaseName is the file name of the embedded document, used for format detection and logs
const KnowledgeBaseName = "knowledge-base.toml"
