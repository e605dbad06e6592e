package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Bucket is a flat object namespace with publicly readable objects.
type Bucket interface {
	// Upload stores data under key, replacing any existing object.
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL returns the address the storefront uses to read key.
	PublicURL(key string) string

	// Delete removes the object. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}

const (
	DriverS3    = "s3"
	DriverLocal = "local"
)

// Options selects and configures a storage driver.
type Options struct {
	Driver          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
	PublicBaseURL   string
	LocalDir        string
}

// Open returns the bucket called name on the configured driver.
func Open(ctx context.Context, opts Options, name string, logger zerolog.Logger) (Bucket, error) {
	switch opts.Driver {
	case DriverS3:
		return NewS3Bucket(ctx, opts, name, logger)
	case DriverLocal:
		return NewLocalBucket(opts.LocalDir, name, opts.PublicBaseURL, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}
