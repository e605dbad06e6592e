package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"deli-admin/internal/model"
)

// NumericInput holds an integer field exactly as the operator typed it.
// It accepts a JSON string, a JSON number or null.
type NumericInput string

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumericInput) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericInput(s)
		return nil
	}
	*n = NumericInput(b)
	return nil
}

// Int parses the leading integer of the input ("12", " 7 ", "3.5" -> 3,
// "12 pieces" -> 12) and returns fallback when there is none.
func (n NumericInput) Int(fallback int) int {
	s := strings.TrimSpace(string(n))
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return fallback
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return fallback
	}
	return v
}

// Draft is the mutable, operator-facing form of a menu item.
type Draft struct {
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Ingredients    string        `json:"ingredients"`
	Price          string        `json:"price"`
	DealPrice      string        `json:"deal_price"`
	Section        model.Section `json:"section"`
	Category       string        `json:"category"`
	CustomCategory bool          `json:"custom_category"`
	Tags           []string      `json:"tags"`
	Portions       string        `json:"portions"`
	IsDeal         bool          `json:"is_deal"`
	IsFeatured     bool          `json:"is_featured"`
	SortOrder      NumericInput  `json:"sort_order"`
	NumberItems    NumericInput  `json:"number_items"`
	ImageURL       string        `json:"image_url"`
}

// NewDraft returns a draft holding the defaults for a new item.
func NewDraft() Draft {
	return Draft{
		Section:     model.SectionCafe,
		Tags:        []string{},
		SortOrder:   NumericInput(strconv.Itoa(model.DefaultSortOrder)),
		NumberItems: NumericInput(strconv.Itoa(model.DefaultNumberItems)),
	}
}

// DraftFromItem copies a stored item into a draft. A category that is not a
// preset of the item's section switches the draft into custom entry mode.
func DraftFromItem(item model.MenuItem) Draft {
	section := item.Section
	if section == "" {
		section = model.SectionCafe
	}
	tags := make([]string, len(item.Tags))
	copy(tags, item.Tags)

	d := Draft{
		Name:        item.Name,
		Description: item.Description,
		Ingredients: item.Ingredients,
		Price:       item.Price,
		DealPrice:   item.DealPrice,
		Section:     section,
		Category:    item.Category,
		Tags:        tags,
		Portions:    item.Portions,
		IsDeal:      item.IsDeal,
		IsFeatured:  item.IsFeatured,
		SortOrder:   NumericInput(strconv.Itoa(item.SortOrder)),
		NumberItems: NumericInput(strconv.Itoa(item.NumberItems)),
		ImageURL:    item.ImageURL,
	}
	d.CustomCategory = d.categoryIsCustom()
	return d
}

// IsCatering reports whether the draft belongs to the catering section.
func (d *Draft) IsCatering() bool {
	return d.Section == model.SectionCatering
}

// IsCafe reports whether the draft belongs to the cafe section.
func (d *Draft) IsCafe() bool {
	return d.Section == model.SectionCafe
}

// Config returns the section configuration that applies to the draft.
func (d *Draft) Config() (SectionConfig, bool) {
	return ConfigFor(d.Section)
}

// SetSection moves the draft to another section and re-derives the
// category entry mode against the new vocabulary.
func (d *Draft) SetSection(s model.Section) {
	d.Section = s
	d.CustomCategory = d.categoryIsCustom()
}

// SetCategory sets the category; custom selects free-text entry mode.
func (d *Draft) SetCategory(category string, custom bool) {
	d.Category = category
	d.CustomCategory = custom || d.categoryIsCustom()
}

// ToggleTag adds a dietary tag, or removes it when already present.
func (d *Draft) ToggleTag(tag string) error {
	if !IsDietaryTag(tag) {
		return model.ErrInvalidTag
	}
	for i, t := range d.Tags {
		if t == tag {
			d.Tags = append(d.Tags[:i:i], d.Tags[i+1:]...)
			return nil
		}
	}
	d.Tags = append(d.Tags, tag)
	return nil
}

// Validate checks the fields that are required at input time.
func (d *Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Price) == "" {
		return model.ErrMissingField
	}
	if !d.Section.Valid() {
		return model.ErrInvalidSection
	}
	return nil
}

// Normalize applies the submission transform and returns the record to
// persist. The returned item carries no identity.
func (d *Draft) Normalize() model.MenuItem {
	item := model.MenuItem{
		Name:        d.Name,
		Description: d.Description,
		Ingredients: d.Ingredients,
		Price:       d.Price,
		DealPrice:   d.DealPrice,
		Section:     d.Section,
		Category:    d.Category,
		Tags:        NormalizeTags(d.Tags),
		Portions:    d.Portions,
		IsDeal:      d.IsDeal,
		IsFeatured:  d.IsFeatured,
		SortOrder:   d.SortOrder.Int(model.DefaultSortOrder),
		NumberItems: d.NumberItems.Int(model.DefaultNumberItems),
		ImageURL:    d.ImageURL,
	}
	if item.Section == model.SectionCatering {
		item.IsDeal = false
	}
	return item
}

func (d *Draft) categoryIsCustom() bool {
	if d.Category == "" {
		return false
	}
	cfg, ok := ConfigFor(d.Section)
	return !ok || !cfg.IsPreset(d.Category)
}
