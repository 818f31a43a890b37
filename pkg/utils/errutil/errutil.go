package errutil

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs the error with a message and reports it to Sentry when a client is
// configured. Errors matching one of expected are outcomes the caller asked
// for (an unknown id, a missing argument): they are logged at Warn and never
// reported. The error is returned unchanged so callers can propagate it.
func Handle(ctx context.Context, err error, msg string, expected ...error) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	errors.As(err, &ge)

	attrs := []any{"error", err.Error()}
	if ge != nil {
		attrs = append(attrs, "values", ge.Values())
	}

	if isExpected(err, expected) {
		logger.Warn(msg, attrs...)
		return err
	}

	if ge != nil {
		attrs = append(attrs, "stack", ge.Stacks())
	}
	logger.Error(msg, attrs...)

	capture(ctx, err, msg, ge)
	return err
}

func isExpected(err error, expected []error) bool {
	for _, target := range expected {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func capture(ctx context.Context, err error, msg string, ge *goerr.Error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	if hub.Client() == nil {
		return
	}

	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("message", msg)
		if ge != nil {
			scope.SetContext("values", sentry.Context(ge.Values()))
		}
		if eventID := hub.CaptureException(err); eventID != nil {
			logging.From(ctx).Debug("Reported error to Sentry", "event_id", string(*eventID))
		}
	})
}
