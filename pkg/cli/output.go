package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func writerOf(c *cli.Command) io.Writer {
	return c.Root().Writer
}

// writeJSON prints v as indented JSON followed by a newline
func writeJSON(ctx context.Context, w io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode output")
	}
	safe.Write(ctx, w, append(raw, '\n'))
	return nil
}

// requireArg returns the n-th positional argument
func requireArg(c *cli.Command, n int, name string) (string, error) {
	v := c.Args().Get(n)
	if v == "" {
		return "", goerr.Wrap(ErrMissingArgument, "argument is required", goerr.V(ArgumentKey, name))
	}
	return v, nil
}
