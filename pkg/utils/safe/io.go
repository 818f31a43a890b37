package safe

import (
	"context"
	"io"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/logging"
)

// Close closes closer and logs a failure instead of returning it, for use in
// defer. attrs are slog key/value pairs naming what was closed, e.g.
// "location", "gs://bucket/object". A nil closer is ignored.
func Close(ctx context.Context, closer io.Closer, attrs ...any) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.From(ctx).Warn("Failed to close content source", append(attrs, "error", err)...)
	}
}

// Write writes data to w and logs a short or failed write. A nil writer is ignored.
func Write(ctx context.Context, w io.Writer, data []byte) {
	if w == nil {
		return
	}
	n, err := w.Write(data)
	if err != nil {
		logging.From(ctx).Error("Failed to write output", "error", err, "written", n, "size", len(data))
	}
}
