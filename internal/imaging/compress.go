package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"deli-admin/internal/model"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxWidth  = 1200
	DefaultQuality   = 80
	DefaultMaxPixels = 50_000_000
)

// Compressor re-encodes uploads as bounded-width JPEGs.
type Compressor struct {
	MaxWidth int
	Quality  int
	// MaxPixels bounds width*height of an accepted image, checked from the
	// header before any pixel data is decoded.
	MaxPixels int64
}

// NewCompressor returns a compressor, substituting defaults for
// non-positive values.
func NewCompressor(maxWidth, quality int, maxPixels int64) *Compressor {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Compressor{MaxWidth: maxWidth, Quality: quality, MaxPixels: maxPixels}
}

// Compress decodes r, applies any EXIF orientation, scales it down to
// MaxWidth keeping the aspect ratio, and encodes the result as JPEG. Images
// already narrower are not enlarged.
func (c *Compressor) Compress(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrImageDecode, err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > c.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", model.ErrImageDecode, cfg.Width, cfg.Height, c.MaxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrImageDecode, err)
	}

	orient := orientationNormal
	if format == "jpeg" {
		orient = exifOrientation(data)
	}
	swapped := orient.swapsAxes()

	// MaxWidth applies to the image as displayed, which is the source
	// height when the orientation turns it on its side.
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if swapped {
		width, height = height, width
	}
	if width > c.MaxWidth {
		height = height * c.MaxWidth / width
		width = c.MaxWidth
		if height < 1 {
			height = 1
		}
	}
	if swapped {
		width, height = height, width
	}

	// JPEG has no alpha, so transparent pixels land on white.
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, orient.apply(dst), &jpeg.Options{Quality: c.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode %s image as jpeg: %w", format, err)
	}

	return buf.Bytes(), nil
}
