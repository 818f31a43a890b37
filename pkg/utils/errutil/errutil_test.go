package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/model"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/errutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

// withRecordingHub binds a Sentry hub to ctx that counts captured events and
// drops them before they leave the process.
func withRecordingHub(t *testing.T, ctx context.Context) (context.Context, *int) {
	t.Helper()
	var events int
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn: "https://public@sentry.invalid/1",
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			events++
			return nil
		},
	})
	gt.NoError(t, err).Required()
	hub := sentry.NewHub(client, sentry.NewScope())
	return sentry.SetHubOnContext(ctx, hub), &events
}

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("nil error", func(t *testing.T) {
		gt.NoError(t, errutil.Handle(ctx, nil, "noop"))
	})

	t.Run("goerr error is returned unchanged", func(t *testing.T) {
		err := goerr.Wrap(model.ErrNotFound, "capability not found",
			goerr.V(model.CapabilityIDKey, "unknown-capability"))
		got := errutil.Handle(ctx, err, "query failed")
		gt.Value(t, got).Equal(err)
		gt.Error(t, got).Is(model.ErrNotFound)
	})

	t.Run("plain error is returned unchanged", func(t *testing.T) {
		err := errors.New("boom")
		gt.Value(t, errutil.Handle(ctx, err, "query failed")).Equal(err)
	})
}

func TestHandle_SentryCapture(t *testing.T) {
	t.Run("unexpected error is reported", func(t *testing.T) {
		ctx, events := withRecordingHub(t, context.Background())
		err := goerr.New("storage client failed")
		gt.Value(t, errutil.Handle(ctx, err, "failed to run app", model.ErrNotFound)).Equal(err)
		gt.Value(t, *events).Equal(1)
	})

	t.Run("expected error is not reported", func(t *testing.T) {
		ctx, events := withRecordingHub(t, context.Background())
		err := goerr.Wrap(model.ErrNotFound, "capability not found",
			goerr.V(model.CapabilityIDKey, "unknown-capability"))
		got := errutil.Handle(ctx, err, "failed to run app", model.ErrNotFound)
		gt.Error(t, got).Is(model.ErrNotFound)
		gt.Value(t, *events).Equal(0)
	})

	t.Run("expected list only exempts matching errors", func(t *testing.T) {
		ctx, events := withRecordingHub(t, context.Background())
		err := goerr.Wrap(model.ErrValidation, "content failed validation")
		errutil.Handle(ctx, err, "failed to run app", model.ErrNotFound, model.ErrUnknownCollection)
		gt.Value(t, *events).Equal(1)
	})
}
