package imaging

import (
	"context"
	"fmt"
	"io"

	"deli-admin/internal/model"

	"github.com/rs/zerolog"
)

// Uploader is the subset of a storage bucket the pipeline needs.
type Uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	PublicURL(key string) string
}

// BucketRole selects which configured bucket a target writes to.
type BucketRole int

const (
	BucketProducts BucketRole = iota
	BucketGallery
)

// Target describes where an ingested image is stored.
type Target struct {
	Bucket BucketRole
	Prefix string
	Tag    string
}

var (
	TargetMenuItem       = Target{Bucket: BucketProducts, Tag: "item"}
	TargetGeneralGallery = Target{Bucket: BucketGallery, Prefix: "bottom-gallery/", Tag: "general"}
	TargetBreadGallery   = Target{Bucket: BucketGallery, Prefix: "bread-gallery/", Tag: "bread"}
)

// TargetForGallery maps a page gallery to its storage target.
func TargetForGallery(g model.Gallery) (Target, error) {
	switch g {
	case model.GalleryGeneral:
		return TargetGeneralGallery, nil
	case model.GalleryBread:
		return TargetBreadGallery, nil
	default:
		return Target{}, model.ErrInvalidGallery
	}
}

// Pipeline compresses an upload, stores it under a fresh name, and returns
// its public URL.
type Pipeline struct {
	compressor *Compressor
	products   Uploader
	gallery    Uploader
	logger     zerolog.Logger
}

func NewPipeline(compressor *Compressor, products, gallery Uploader, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		compressor: compressor,
		products:   products,
		gallery:    gallery,
		logger:     logger.With().Str("component", "image-pipeline").Logger(),
	}
}

// Ingest makes exactly one upload attempt. A URL is only returned when the
// object was stored.
func (p *Pipeline) Ingest(ctx context.Context, target Target, r io.Reader) (string, error) {
	data, err := p.compressor.Compress(r)
	if err != nil {
		return "", err
	}

	bucket := p.products
	if target.Bucket == BucketGallery {
		bucket = p.gallery
	}

	key := target.Prefix + NewObjectName(target.Tag)
	if err := bucket.Upload(ctx, key, data, "image/jpeg"); err != nil {
		p.logger.Error().Err(err).Str("key", key).Msg("image upload failed")
		return "", fmt.Errorf("%w: %w", model.ErrUploadFailed, err)
	}

	url := bucket.PublicURL(key)
	p.logger.Info().
		Str("key", key).
		Int("bytes", len(data)).
		Msg("image stored")

	return url, nil
}
