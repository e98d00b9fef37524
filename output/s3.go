package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// ContentType is the media type of published documents.
const ContentType = "application/pdf"

var (
	ErrInvalidConfig  = errors.New("output: bucket and region are required")
	ErrBucketNotFound = errors.New("output: bucket not found")
	ErrAccessDenied   = errors.New("output: access denied")
	ErrUnavailable    = errors.New("output: storage unavailable")
)

// S3Client is the subset of the S3 API used by S3.
type S3Client interface {
	PutObject(ctx context.Context, params *s3aws.PutObjectInput, optFns ...func(*s3aws.Options)) (*s3aws.PutObjectOutput, error)
}

// S3Config locates the bucket documents are published to.
type S3Config struct {
	Bucket         string
	Region         string
	Prefix         string // prepended to every key
	AccessKeyID    string // static credentials, default chain when empty
	SecretKey      string
	Endpoint       string // S3-compatible services such as MinIO
	ForcePathStyle bool
}

// S3Option configures an S3 publisher.
type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	uploadTimeout time.Duration
}

// WithS3Client replaces the AWS client, mostly for tests.
func WithS3Client(c S3Client) S3Option {
	return func(o *s3Options) { o.client = c }
}

// WithUploadTimeout bounds every upload.
func WithUploadTimeout(d time.Duration) S3Option {
	return func(o *s3Options) { o.uploadTimeout = d }
}

// S3 publishes documents to a bucket.
type S3 struct {
	client        S3Client
	bucket        string
	prefix        string
	uploadTimeout time.Duration
}

// NewS3 builds a publisher, loading the AWS configuration unless a client is
// supplied.
func NewS3(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}
	o := &s3Options{}
	for _, opt := range opts {
		opt(o)
	}

	client := o.client
	if client == nil {
		loadOpts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			loadOpts = append(loadOpts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
			))
		}
		awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("output: loading aws config: %w", err)
		}
		client = s3aws.NewFromConfig(awsCfg, func(so *s3aws.Options) {
			if cfg.Endpoint != "" {
				so.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			so.UsePathStyle = cfg.ForcePathStyle
		})
	}

	return &S3{
		client:        client,
		bucket:        cfg.Bucket,
		prefix:        cfg.Prefix,
		uploadTimeout: o.uploadTimeout,
	}, nil
}

// Key returns the object key name is stored under.
func (s *S3) Key(name string) string {
	return s.prefix + name
}

// Publish uploads data under the prefixed key.
func (s *S3) Publish(ctx context.Context, name string, data []byte) error {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}
	_, err := s.client.PutObject(ctx, &s3aws.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.Key(name)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(ContentType),
	})
	return classifyS3Error(err, s.Key(name))
}

func classifyS3Error(err error, key string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("output: uploading %s: %w", key, err)
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return fmt.Errorf("%w: %s", ErrBucketNotFound, err)
		case "AccessDenied":
			return fmt.Errorf("%w: uploading %s", ErrAccessDenied, key)
		case "SlowDown", "ServiceUnavailable", "RequestTimeout":
			return fmt.Errorf("%w: uploading %s: %s", ErrUnavailable, key, apiErr.ErrorCode())
		default:
			return fmt.Errorf("output: uploading %s (code: %s): %w", key, apiErr.ErrorCode(), err)
		}
	}
	return fmt.Errorf("output: uploading %s: %w", key, err)
}
