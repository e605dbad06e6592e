package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Bucket implements Bucket on any S3-compatible object store.
type s3Bucket struct {
	client        *s3.Client
	bucket        string
	region        string
	endpoint      string
	pathStyle     bool
	publicBaseURL string
	logger        zerolog.Logger
}

// NewS3Bucket creates a bucket backed by S3. A custom endpoint with path-style
// addressing targets MinIO or Supabase storage instead of AWS.
func NewS3Bucket(ctx context.Context, opts Options, bucket string, logger zerolog.Logger) (Bucket, error) {
	logger = logger.With().Str("component", "s3-bucket").Str("bucket", bucket).Logger()

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
		// S3-compatible stores reject the default trailing checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	logger.Info().
		Str("region", opts.Region).
		Str("endpoint", opts.Endpoint).
		Msg("S3 bucket initialised")

	return &s3Bucket{
		client:        client,
		bucket:        bucket,
		region:        opts.Region,
		endpoint:      strings.TrimRight(opts.Endpoint, "/"),
		pathStyle:     opts.UsePathStyle,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

func (b *s3Bucket) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
		CacheControl:  aws.String("max-age=3600"),
	})
	if err != nil {
		b.logger.Error().
			Err(err).
			Str("key", key).
			Msg("failed to put object")
		return fmt.Errorf("failed to put object (bucket=%s, key=%s): %w", b.bucket, key, err)
	}

	b.logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("object uploaded")
	return nil
}

func (b *s3Bucket) PublicURL(key string) string {
	switch {
	case b.publicBaseURL != "":
		return fmt.Sprintf("%s/%s/%s", b.publicBaseURL, b.bucket, key)
	case b.endpoint != "" && b.pathStyle:
		return fmt.Sprintf("%s/%s/%s", b.endpoint, b.bucket, key)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.bucket, b.region, key)
	}
}

func (b *s3Bucket) Delete(ctx context.Context, key string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		b.logger.Error().Err(err).Str("key", key).Msg("failed to delete object")
		return fmt.Errorf("failed to delete object (bucket=%s, key=%s): %w", b.bucket, key, err)
	}
	return nil
}
