package content

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a content document
type Format string

const (
	FormatAuto Format = "auto"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat parses a format name given on the command line. Empty means auto.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "toml":
		return FormatTOML, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", goerr.Wrap(ErrUnsupportedFormat, "unknown format name", goerr.V(FormatKey, s))
	}
}

// DetectFormat infers the format from a file or object name extension
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", goerr.Wrap(ErrUnsupportedFormat, "cannot detect format from extension", goerr.V(LocationKey, name))
	}
}

// resolveFormat returns format unless it is auto, in which case the name decides
func resolveFormat(format Format, name string) (Format, error) {
	if format == "" || format == FormatAuto {
		return DetectFormat(name)
	}
	return format, nil
}

// Decode parses a content document in the given format
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse TOML document")
		}

	case FormatJSON:
		// UseNumber keeps integer results exact until they become types.Value
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse JSON document")
		}

	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, goerr.Wrap(err, "failed to parse YAML document")
		}

	default:
		return nil, goerr.Wrap(ErrUnsupportedFormat, "cannot decode document", goerr.V(FormatKey, format))
	}

	return &doc, nil
}
