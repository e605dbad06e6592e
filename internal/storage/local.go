package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLocalBaseURL is where the router serves the local storage directory.
const DefaultLocalBaseURL = "/media"

// localBucket implements Bucket on the local file system, one directory per
// bucket. Used for development without an object store.
type localBucket struct {
	root    string
	bucket  string
	baseURL string
	logger  zerolog.Logger
}

// NewLocalBucket creates dir/bucket if needed.
func NewLocalBucket(dir, bucket, baseURL string, logger zerolog.Logger) (Bucket, error) {
	logger = logger.With().Str("component", "local-bucket").Str("bucket", bucket).Logger()

	root := filepath.Join(dir, bucket)
	if err := os.MkdirAll(root, 0o755); err != nil {
		logger.Error().Err(err).Str("dir", root).Msg("failed to create bucket directory")
		return nil, fmt.Errorf("failed to create bucket directory %s: %w", root, err)
	}

	if baseURL == "" {
		baseURL = DefaultLocalBaseURL
	}

	logger.Info().Str("dir", root).Msg("local bucket initialised")

	return &localBucket{
		root:    root,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

func (b *localBucket) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(b.root, clean), nil
}

func (b *localBucket) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := b.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		b.logger.Error().Err(err).Str("key", key).Msg("failed to write object")
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}

	b.logger.Debug().Str("key", key).Int("bytes", len(data)).Msg("object written")
	return nil
}

func (b *localBucket) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", b.baseURL, b.bucket, key)
}

func (b *localBucket) Delete(ctx context.Context, key string) error {
	path, err := b.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}
