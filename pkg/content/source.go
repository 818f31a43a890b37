package content

import (
	"context"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/content/data"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/logging"
	"github.com/jackyjross/cpgio-knowledge-base/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// Source supplies the raw bytes of a content document and its format
type Source interface {
	Read(ctx context.Context) ([]byte, Format, error)
	String() string
}

// EmbeddedSource reads the knowledge base compiled into the binary
type EmbeddedSource struct{}

var _ Source = EmbeddedSource{}

// Read returns the embedded TOML document
func (EmbeddedSource) Read(ctx context.Context) ([]byte, Format, error) {
	return data.KnowledgeBase, FormatTOML, nil
}

func (EmbeddedSource) String() string {
	return "embedded:" + data.KnowledgeBaseName
}

// FileSource reads a document from the local filesystem
type FileSource struct {
	path   string
	format Format
}

var _ Source = &FileSource{}

// NewFileSource creates a FileSource. FormatAuto detects the format from the extension.
func NewFileSource(path string, format Format) *FileSource {
	return &FileSource{path: path, format: format}
}

// Read reads the whole file
func (s *FileSource) Read(ctx context.Context) ([]byte, Format, error) {
	format, err := resolveFormat(s.format, s.path)
	if err != nil {
		return nil, "", err
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to read content file", goerr.V(LocationKey, s.path))
	}
	return raw, format, nil
}

func (s *FileSource) String() string {
	return s.path
}

// GCSSource reads a document from a Cloud Storage object
type GCSSource struct {
	client *storage.Client
	bucket string
	object string
	format Format
}

var _ Source = &GCSSource{}

// NewGCSSource creates a GCSSource from a gs://bucket/object URI.
// The caller is responsible for calling Close().
func NewGCSSource(ctx context.Context, uri string, format Format, opts ...option.ClientOption) (*GCSSource, error) {
	bucket, object, err := ParseGCSURI(uri)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V(LocationKey, uri))
	}

	return &GCSSource{
		client: client,
		bucket: bucket,
		object: object,
		format: format,
	}, nil
}

// Read downloads the whole object
func (s *GCSSource) Read(ctx context.Context) ([]byte, Format, error) {
	format, err := resolveFormat(s.format, s.object)
	if err != nil {
		return nil, "", err
	}

	reader, err := s.client.Bucket(s.bucket).Object(s.object).NewReader(ctx)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to open content object",
			goerr.V(BucketKey, s.bucket),
			goerr.V(ObjectKey, s.object))
	}
	defer safe.Close(ctx, reader, "location", s.String())

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to read content object",
			goerr.V(BucketKey, s.bucket),
			goerr.V(ObjectKey, s.object))
	}

	logging.From(ctx).Debug("Read content object",
		"bucket", s.bucket,
		"object", s.object,
		"size", len(raw),
	)
	return raw, format, nil
}

// Close releases the storage client
func (s *GCSSource) Close() error {
	return s.client.Close()
}

func (s *GCSSource) String() string {
	return "gs://" + s.bucket + "/" + s.object
}

// ParseGCSURI splits gs://bucket/path/to/object into bucket and object name
func ParseGCSURI(uri string) (bucket, object string, err error) {
	return parseObjectURI("gs://", uri)
}

func parseObjectURI(scheme, uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(uri, scheme)
	if !ok {
		return "", "", goerr.Wrap(ErrInvalidLocation, "URI must start with "+scheme, goerr.V(LocationKey, uri))
	}

	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" || strings.HasSuffix(object, "/") {
		return "", "", goerr.Wrap(ErrInvalidLocation, "URI must name a bucket and an object", goerr.V(LocationKey, uri))
	}
	return bucket, object, nil
}

// IsGCSURI reports whether the location points at Cloud Storage
func IsGCSURI(location string) bool {
	return strings.HasPrefix(location, "gs://")
}

// Load reads and decodes a document from the source
func Load(ctx context.Context, src Source) (*Document, error) {
	raw, format, err := src.Read(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read content", goerr.V(LocationKey, src.String()))
	}

	doc, err := Decode(raw, format)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to decode content",
			goerr.V(LocationKey, src.String()),
			goerr.V(FormatKey, format))
	}

	logging.From(ctx).Debug("Decoded content document",
		"location", src.String(),
		"format", format,
		"bytes", len(raw),
	)
	return doc, nil
}
