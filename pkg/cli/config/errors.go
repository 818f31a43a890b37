package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for flag validation
var (
	ErrInvalidConfig = goerr.New("invalid configuration")
)

// Context keys for error values
const (
	LogLevelKey        = "log_level"
	LogFormatKey       = "log_format"
	LogOutputKey       = "log_output"
	SentryEnvKey       = "sentry_env"
	ContentLocationKey = "content_location"
	ContentFormatKey   = "content_format"
)
