package config

import (
	"context"
	"log/slog"

	"github.com/jackyjross/cpgio-knowledge-base/pkg/content"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/store"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Content is the flag group that locates the knowledge base document
type Content struct {
	location       string
	format         string
	gcsEndpoint    string
	s3Endpoint     string
	s3Region       string
	strictSymmetry bool
}

func (x *Content) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "content",
			Aliases:     []string{"c"},
			Usage:       "Content document: a file path, gs://bucket/object, s3://bucket/key, or empty for the built-in knowledge base",
			Category:    "Content",
			Destination: &x.location,
			Sources:     cli.EnvVars("CPGIO_KB_CONTENT"),
		},
		&cli.StringFlag{
			Name:        "content-format",
			Usage:       "Content format [auto|toml|json|yaml]",
			Category:    "Content",
			Value:       "auto",
			Destination: &x.format,
			Sources:     cli.EnvVars("CPGIO_KB_CONTENT_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "gcs-endpoint",
			Usage:       "Cloud Storage endpoint override, unauthenticated (e.g. a local emulator)",
			Category:    "Content",
			Destination: &x.gcsEndpoint,
			Sources:     cli.EnvVars("CPGIO_KB_GCS_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:        "s3-endpoint",
			Usage:       "S3 compatible endpoint override with path-style addressing",
			Category:    "Content",
			Destination: &x.s3Endpoint,
			Sources:     cli.EnvVars("CPGIO_KB_S3_ENDPOINT"),
		},
		&cli.StringFlag{
			Name:        "s3-region",
			Usage:       "AWS region for S3 (default from the AWS config chain)",
			Category:    "Content",
			Destination: &x.s3Region,
			Sources:     cli.EnvVars("CPGIO_KB_S3_REGION"),
		},
		&cli.BoolFlag{
			Name:        "strict-symmetry",
			Usage:       "Fail when a capability and a case study link each other on one side only",
			Category:    "Content",
			Destination: &x.strictSymmetry,
			Sources:     cli.EnvVars("CPGIO_KB_STRICT_SYMMETRY"),
		},
	}
}

func (x Content) LogValue() slog.Value {
	location := x.location
	if location == "" {
		location = content.EmbeddedSource{}.String()
	}
	return slog.GroupValue(
		slog.String("location", location),
		slog.String("format", x.format),
		slog.Bool("strict_symmetry", x.strictSymmetry),
	)
}

// Source builds the content source. The returned function releases it.
func (x *Content) Source(ctx context.Context) (content.Source, func(), error) {
	format, err := content.ParseFormat(x.format)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "invalid content format", goerr.V(ContentFormatKey, x.format))
	}

	switch {
	case x.location == "":
		return content.EmbeddedSource{}, func() {}, nil

	case content.IsGCSURI(x.location):
		var opts []option.ClientOption
		if x.gcsEndpoint != "" {
			opts = append(opts, option.WithEndpoint(x.gcsEndpoint), option.WithoutAuthentication())
		}
		src, err := content.NewGCSSource(ctx, x.location, format, opts...)
		if err != nil {
			return nil, nil, err
		}
		return src, func() { safe.Close(ctx, src, "location", src.String()) }, nil

	case content.IsS3URI(x.location):
		var opts []content.S3Option
		if x.s3Region != "" {
			opts = append(opts, content.WithS3Region(x.s3Region))
		}
		if x.s3Endpoint != "" {
			opts = append(opts, content.WithS3Endpoint(x.s3Endpoint))
		}
		src, err := content.NewS3Source(ctx, x.location, format, opts...)
		if err != nil {
			return nil, nil, err
		}
		return src, func() {}, nil

	default:
		return content.NewFileSource(x.location, format), func() {}, nil
	}
}

// StoreOptions returns the load options selected by flags
func (x *Content) StoreOptions() []store.Option {
	var opts []store.Option
	if x.strictSymmetry {
		opts = append(opts, store.WithStrictSymmetry())
	}
	return opts
}

// Configure loads and validates the knowledge base
func (x *Content) Configure(ctx context.Context) (*store.Store, error) {
	src, closer, err := x.Source(ctx)
	if err != nil {
		return nil, err
	}
	defer closer()

	s, err := store.Load(ctx, src, x.StoreOptions()...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load knowledge base", goerr.V(ContentLocationKey, src.String()))
	}
	return s, nil
}
