package catalog

import "deli-admin/internal/model"

// Field names an optional editor field whose visibility depends on the section.
type Field string

const (
	FieldDealPrice   Field = "deal_price"
	FieldSortOrder   Field = "sort_order"
	FieldNumberItems Field = "number_items"
	FieldPortions    Field = "portions"
)

// SectionConfig describes how the editor behaves for one section.
type SectionConfig struct {
	Section    model.Section `json:"section"`
	Label      string        `json:"label"`
	Categories []string      `json:"categories"`
	Fields     []Field       `json:"fields"`
	AllowDeals bool          `json:"allow_deals"`
}

// Sections is the per-section configuration table driving the single editor.
var Sections = map[model.Section]SectionConfig{
	model.SectionCafe: {
		Section:    model.SectionCafe,
		Label:      "Cafe",
		Categories: []string{"Breakfast", "Brunch", "Sandwiches", "Soups", "Salads", "Cakes & Bakes", "Hot Drinks", "Cold Drinks"},
		Fields:     []Field{FieldDealPrice, FieldSortOrder},
		AllowDeals: true,
	},
	model.SectionDeli: {
		Section:    model.SectionDeli,
		Label:      "Deli Retail",
		Categories: []string{"Cheese", "Charcuterie", "Bread", "Pantry", "Oils & Vinegars", "Wine", "Chocolate"},
		Fields:     []Field{FieldDealPrice, FieldSortOrder},
		AllowDeals: true,
	},
	model.SectionCatering: {
		Section:    model.SectionCatering,
		Label:      "Catering",
		Categories: []string{"Platters", "Buffets", "Breakfast Boxes", "Grazing Tables", "Desserts"},
		Fields:     []Field{FieldSortOrder, FieldNumberItems, FieldPortions},
		AllowDeals: false,
	},
}

// ConfigFor returns the configuration of section s.
func ConfigFor(s model.Section) (SectionConfig, bool) {
	cfg, ok := Sections[s]
	return cfg, ok
}

// OrderedConfigs returns the configuration table in display order.
func OrderedConfigs() []SectionConfig {
	configs := make([]SectionConfig, 0, len(model.Sections))
	for _, s := range model.Sections {
		configs = append(configs, Sections[s])
	}
	return configs
}

// HasField reports whether field f is shown for this section.
func (c SectionConfig) HasField(f Field) bool {
	for _, field := range c.Fields {
		if field == f {
			return true
		}
	}
	return false
}

// IsPreset reports whether category is one of this section's presets.
// Matching is exact: a preset typed with different casing is treated as custom.
func (c SectionConfig) IsPreset(category string) bool {
	for _, preset := range c.Categories {
		if preset == category {
			return true
		}
	}
	return false
}
