package model

import (
	"time"

	"github.com/google/uuid"
)

// Section is the part of the business a menu item is sold through.
type Section string

const (
	SectionCafe     Section = "cafe"
	SectionDeli     Section = "deli"
	SectionCatering Section = "catering"
)

// Sections lists every known section in display order.
var Sections = []Section{SectionCafe, SectionDeli, SectionCatering}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	switch s {
	case SectionCafe, SectionDeli, SectionCatering:
		return true
	}
	return false
}

// Default display hints applied when the operator leaves the field blank
// or types something that is not a number.
const (
	DefaultSortOrder   = 999
	DefaultNumberItems = 1
)

// MenuItem represents one catalog entry as persisted in menu_items.
type MenuItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Ingredients string    `json:"ingredients" db:"ingredients"`
	Price       string    `json:"price" db:"price"`
	DealPrice   string    `json:"deal_price" db:"deal_price"`
	Section     Section   `json:"section" db:"section"`
	Category    string    `json:"category" db:"category"`
	Tags        []string  `json:"tags" db:"tags"`
	Portions    string    `json:"portions" db:"portions"`
	IsDeal      bool      `json:"is_deal" db:"is_deal"`
	IsFeatured  bool      `json:"is_featured" db:"is_featured"`
	SortOrder   int       `json:"sort_order" db:"sort_order"`
	NumberItems int       `json:"number_items" db:"number_items"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// MenuItemFilter narrows a listing. A nil Section lists every section.
type MenuItemFilter struct {
	Section *Section
}

// SectionStats holds the number of menu items per section.
type SectionStats map[Section]int
