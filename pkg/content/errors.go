package content

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for content loading
var (
	ErrUnsupportedFormat = goerr.New("unsupported content format")
	ErrInvalidLocation   = goerr.New("invalid content location")
)

// Context keys for error values
const (
	LocationKey = "location"
	FormatKey   = "format"
	BucketKey   = "bucket"
	ObjectKey   = "object"
)
