package cli

import (
	"context"
	"io"
	"os"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/cli/config"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/domain/model"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/store"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/errutil"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	return run(ctx, args, version, os.Stdout)
}

func run(ctx context.Context, args []string, version string, w io.Writer) error {
	var loggerCfg config.Logger
	var sentryCfg config.Sentry
	var contentCfg config.Content
	var closers []func()
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}()

	// Built on first use so commands that fail flag parsing never read content
	kb := store.NewOnce(func() (*store.Store, error) {
		return contentCfg.Configure(ctx)
	})

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, contentCfg.Flags()...)

	app := &cli.Command{
		Name:    "cpgio-kb",
		Usage:   "CPGIO knowledge base content store",
		Version: version,
		Flags:   flags,
		Writer:  w,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closers = append(closers, f)

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return ctx, err
			}
			closers = append(closers, flush)

			logging.Default().Debug("Starting cpgio-kb",
				"logger", loggerCfg,
				"sentry", sentryCfg,
				"content", contentCfg,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdValidate(kb),
			cmdShow(kb),
			cmdList(kb),
			cmdRelated(kb),
			cmdKPISources(kb),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run app",
			model.ErrNotFound,
			model.ErrUnknownCollection,
			ErrMissingArgument,
			ErrInvalidArgument,
		)
	}

	return nil
}
