package config_test

import (
	"errors"
	"testing"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/cli/config"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestConfigErrors_SentinelIdentification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		sentinelError error
		wantMatch     bool
	}{
		{
			name:          "ErrInvalidConfig can be identified",
			err:           goerr.Wrap(config.ErrInvalidConfig, "invalid log level"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     true,
		},
		{
			name:          "Unrelated error does not match",
			err:           goerr.New("failed to open log file"),
			sentinelError: config.ErrInvalidConfig,
			wantMatch:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := errors.Is(tt.err, tt.sentinelError)
			gt.Value(t, matched).Equal(tt.wantMatch)
		})
	}
}

func TestConfigErrors_ContextExtraction(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantValue string
	}{
		{"LogLevelKey", config.LogLevelKey, "verbose"},
		{"LogFormatKey", config.LogFormatKey, "xml"},
		{"LogOutputKey", config.LogOutputKey, "/var/log/kb.log"},
		{"SentryEnvKey", config.SentryEnvKey, "production"},
		{"ContentLocationKey", config.ContentLocationKey, "gs://kb-content/knowledge-base.toml"},
		{"ContentFormatKey", config.ContentFormatKey, "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := goerr.Wrap(config.ErrInvalidConfig, "test error", goerr.V(tt.key, tt.wantValue))

			var ge *goerr.Error
			gt.Bool(t, errors.As(err, &ge)).True()
			gt.Value(t, ge.Values()[tt.key]).Equal(any(tt.wantValue))
		})
	}
}
