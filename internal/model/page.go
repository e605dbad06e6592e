package model

import (
	"time"

	"github.com/google/uuid"
)

// PageContentID is the fixed identity of the single page_content row.
var PageContentID = uuid.MustParse("00000000-0000-0000-0000-000000000000")

// Gallery names one of the independently bounded page galleries.
type Gallery string

const (
	GalleryGeneral Gallery = "general"
	GalleryBread   Gallery = "bread"
)

// Valid reports whether g is a known gallery.
func (g Gallery) Valid() bool {
	return g == GalleryGeneral || g == GalleryBread
}

// PageContent holds the free text and image galleries shown on the deli page.
type PageContent struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Content        string    `json:"content" db:"content"`
	ImageURLs      []string  `json:"image_urls" db:"image_urls"`
	BreadContent   string    `json:"bread_content" db:"bread_content"`
	BreadImageURLs []string  `json:"bread_image_urls" db:"bread_image_urls"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Section returns the text and URLs bound to gallery g.
func (p *PageContent) Section(g Gallery) (string, []string) {
	if g == GalleryBread {
		return p.BreadContent, p.BreadImageURLs
	}
	return p.Content, p.ImageURLs
}

// SetSection replaces the text and URLs bound to gallery g.
func (p *PageContent) SetSection(g Gallery, content string, urls []string) {
	if g == GalleryBread {
		p.BreadContent = content
		p.BreadImageURLs = urls
		return
	}
	p.Content = content
	p.ImageURLs = urls
}

// PageSectionRequest is the payload for publishing one gallery's text and images.
type PageSectionRequest struct {
	Content   string   `json:"content"`
	ImageURLs []string `json:"image_urls"`
}
