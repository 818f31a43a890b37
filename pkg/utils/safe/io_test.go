package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/logging"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/safe"
	"github.com/m-mizutani/gt"
)

type closer struct {
	closed bool
	err    error
}

func (c *closer) Close() error {
	c.closed = true
	return c.err
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	t.Run("closes", func(t *testing.T) {
		c := &closer{}
		safe.Close(ctx, c)
		gt.Bool(t, c.closed).True()
	})

	t.Run("close error is logged with the location", func(t *testing.T) {
		var buf bytes.Buffer
		logCtx := logging.With(ctx, slog.New(slog.NewJSONHandler(&buf, nil)))

		c := &closer{err: errors.New("already closed")}
		safe.Close(logCtx, c, "location", "s3://kb-content/kb.toml")
		gt.Bool(t, c.closed).True()
		gt.String(t, buf.String()).Contains(`"location":"s3://kb-content/kb.toml"`)
		gt.String(t, buf.String()).Contains("already closed")
	})

	t.Run("nil closer", func(t *testing.T) {
		safe.Close(ctx, nil)
	})
}

func TestWrite(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	safe.Write(ctx, &buf, []byte("capabilities: 12\n"))
	gt.Value(t, buf.String()).Equal("capabilities: 12\n")

	safe.Write(ctx, failingWriter{}, []byte("ignored"))
	safe.Write(ctx, nil, []byte("ignored"))
}
