package content

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/logging"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// ObjectGetter is the subset of the S3 API used by S3Source
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a document from an S3 object
type S3Source struct {
	client ObjectGetter
	bucket string
	key    string
	format Format
}

var _ Source = &S3Source{}

type s3Options struct {
	region   string
	endpoint string
	client   ObjectGetter
}

// S3Option configures NewS3Source
type S3Option func(*s3Options)

// WithS3Region overrides the region from the shared AWS config
func WithS3Region(region string) S3Option {
	return func(o *s3Options) {
		o.region = region
	}
}

// WithS3Endpoint points the client at an S3 compatible endpoint with path-style addressing
func WithS3Endpoint(endpoint string) S3Option {
	return func(o *s3Options) {
		o.endpoint = endpoint
	}
}

// WithS3Client replaces the SDK client, mainly for tests
func WithS3Client(client ObjectGetter) S3Option {
	return func(o *s3Options) {
		o.client = client
	}
}

// NewS3Source creates an S3Source from an s3://bucket/key URI. Credentials and
// region come from the default AWS config chain unless overridden.
func NewS3Source(ctx context.Context, uri string, format Format, opts ...S3Option) (*S3Source, error) {
	bucket, key, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}

	cfg := &s3Options{}
	for _, opt := range opts {
		opt(cfg)
	}

	client := cfg.client
	if client == nil {
		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.region != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to load AWS config", goerr.V(LocationKey, uri))
		}
		if awsCfg.Region == "" {
			awsCfg.Region = "us-east-1"
		}

		var s3Opts []func(*s3.Options)
		if cfg.endpoint != "" {
			s3Opts = append(s3Opts, func(o *s3.Options) {
				o.UsePathStyle = true
				o.BaseEndpoint = aws.String(cfg.endpoint)
			})
		}
		client = s3.NewFromConfig(awsCfg, s3Opts...)
	}

	return &S3Source{
		client: client,
		bucket: bucket,
		key:    key,
		format: format,
	}, nil
}

// Read downloads the whole object
func (s *S3Source) Read(ctx context.Context) ([]byte, Format, error) {
	format, err := resolveFormat(s.format, s.key)
	if err != nil {
		return nil, "", err
	}

	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to get content object",
			goerr.V(BucketKey, s.bucket),
			goerr.V(ObjectKey, s.key))
	}
	defer safe.Close(ctx, output.Body, "location", s.String())

	raw, err := io.ReadAll(output.Body)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to read content object",
			goerr.V(BucketKey, s.bucket),
			goerr.V(ObjectKey, s.key))
	}

	logging.From(ctx).Debug("Read content object",
		"bucket", s.bucket,
		"key", s.key,
		"size", len(raw),
	)
	return raw, format, nil
}

func (s *S3Source) String() string {
	return "s3://" + s.bucket + "/" + s.key
}

// ParseS3URI splits s3://bucket/path/to/key into bucket and key
func ParseS3URI(uri string) (bucket, key string, err error) {
	return parseObjectURI("s3://", uri)
}

// IsS3URI reports whether the location points at S3
func IsS3URI(location string) bool {
	return strings.HasPrefix(location, "s3://")
}
