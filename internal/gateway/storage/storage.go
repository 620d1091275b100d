// Package storage is the object storage gateway: private photo assets in S3,
// presigned access URLs, and on-demand gallery assembly.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"photobooking/internal/gateway"
)

const (
	component = "storage"

	DefaultURLTTL = time.Hour

	eventsPrefix     = "events"
	thumbnailsPrefix = "thumbnails"
)

// ObjectAPI is the subset of the S3 client the gateway uses.
type ObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Presigner issues presigned GET requests.
type Presigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// Metadata is attached to every stored asset.
type Metadata struct {
	UploadedBy string
	EventType  string
	Location   string
	UploadedAt time.Time
}

func (m Metadata) toS3() map[string]string {
	at := m.UploadedAt
	if at.IsZero() {
		at = time.Now()
	}
	return map[string]string{
		"uploaded-by":      m.UploadedBy,
		"event-type":       m.EventType,
		"location":         m.Location,
		"upload-timestamp": at.UTC().Format(time.RFC3339),
	}
}

type Options struct {
	Bucket     string
	Region     string
	DefaultTTL time.Duration
	Observer   gateway.Observer
}

// Gateway wraps one bucket. It is safe for concurrent use as long as the
// underlying client is.
type Gateway struct {
	client    ObjectAPI
	presigner Presigner
	bucket    string
	region    string
	ttl       time.Duration
	observer  gateway.Observer
	log       *zap.Logger
	now       func() time.Time
}

func New(client ObjectAPI, presigner Presigner, opts Options, log *zap.Logger) (*Gateway, error) {
	const op = "storage.New"
	if client == nil || presigner == nil {
		return nil, gateway.Configuration(op, "object storage client is not configured", nil)
	}
	if strings.TrimSpace(opts.Bucket) == "" {
		return nil, gateway.Configuration(op, "bucket name is empty", nil)
	}
	if strings.TrimSpace(opts.Region) == "" {
		return nil, gateway.Configuration(op, "region is empty", nil)
	}
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = DefaultURLTTL
	}
	if opts.Observer == nil {
		opts.Observer = gateway.NopObserver{}
	}
	return &Gateway{
		client:    client,
		presigner: presigner,
		bucket:    opts.Bucket,
		region:    opts.Region,
		ttl:       opts.DefaultTTL,
		observer:  opts.Observer,
		log:       log.With(zap.String("component", component), zap.String("bucket", opts.Bucket)),
		now:       time.Now,
	}, nil
}

// Bucket returns the bucket this gateway writes to.
func (g *Gateway) Bucket() string { return g.bucket }

// ObjectURL is the direct (non-signed) URL of key. Objects are private, so
// the URL is informational; use IssueAccessURL for access.
func (g *Gateway) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", g.bucket, g.region, key)
}

// ValidFilename reports whether name can be used as a photo name under an
// event prefix. Names with path separators or ".." are refused so keys stay
// inside their event.
func ValidFilename(name string) bool {
	if name == "" || name == "." || strings.Contains(name, "..") {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// EventKey is the object key of a photo delivered for eventID.
func EventKey(eventID, filename string) string {
	return path.Join(eventsPrefix, eventID, filename)
}

// ThumbnailKey is the object key of the thumbnail variant of a photo.
func ThumbnailKey(eventID, filename string) string {
	return path.Join(eventsPrefix, eventID, thumbnailsPrefix, filename)
}

// StoreAsset uploads the file at localPath under key as a private object and
// returns its direct URL.
func (g *Gateway) StoreAsset(ctx context.Context, localPath, key string, meta Metadata) (string, error) {
	const op = "storage.StoreAsset"

	f, err := os.Open(localPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", g.fail(op, gateway.NotFound(op, "local file does not exist", err), zap.String("path", localPath))
		}
		return "", g.fail(op, gateway.Unknown(op, "open local file", err), zap.String("path", localPath))
	}
	defer f.Close()

	in := &s3.PutObjectInput{
		Bucket:   aws.String(g.bucket),
		Key:      aws.String(key),
		Body:     f,
		Metadata: meta.toS3(),
	}
	if ct := mime.TypeByExtension(filepath.Ext(localPath)); ct != "" {
		in.ContentType = aws.String(ct)
	}

	if _, err := g.client.PutObject(ctx, in); err != nil {
		return "", g.fail(op, classify(op, err), zap.String("key", key))
	}

	url := g.ObjectURL(key)
	g.log.Info("asset stored", zap.String("key", key), zap.String("path", localPath))
	return url, nil
}

// IssueAccessURL returns a presigned GET URL for an existing key. ttl <= 0
// uses the gateway default.
func (g *Gateway) IssueAccessURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	const op = "storage.IssueAccessURL"
	if ttl <= 0 {
		ttl = g.ttl
	}

	// Presigning is offline and succeeds for any key, so check existence first.
	_, err := g.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", g.fail(op, classify(op, err), zap.String("key", key))
	}

	req, err := g.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", g.fail(op, classify(op, err), zap.String("key", key))
	}

	return req.URL, nil
}

func (g *Gateway) fail(op string, err *gateway.Error, fields ...zap.Field) error {
	g.observer.GatewayError(component, err.Kind)
	fields = append(fields, zap.String("op", op), zap.String("kind", string(err.Kind)), zap.Error(err))
	g.log.Warn("storage call failed", fields...)
	return err
}

// classify maps an SDK error onto a gateway kind.
func classify(op string, err error) *gateway.Error {
	var (
		notFound *types.NotFound
		noKey    *types.NoSuchKey
		noBucket *types.NoSuchBucket
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &noKey):
		return gateway.NotFound(op, "object does not exist", err)
	case errors.As(err, &noBucket):
		return gateway.Configuration(op, "bucket does not exist", err)
	}
	return gateway.ClassifyAWS(op, err)
}
