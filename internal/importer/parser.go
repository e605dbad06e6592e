package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"deli-admin/internal/catalog"
	"deli-admin/internal/model"
)

// Column aliases, preferred spelling first.
var (
	colName        = []string{"Name"}
	colDescription = []string{"Description"}
	colIngredients = []string{"Ingredients"}
	colPrice       = []string{"Price"}
	colDealPrice   = []string{"Deal Price", "deal_price"}
	colSection     = []string{"Section"}
	colCategory    = []string{"Category"}
	colTags        = []string{"Tags", "Dietary"}
	colFeatured    = []string{"Featured"}
	colSortOrder   = []string{"Sort Order", "sort_order"}
)

// header resolves column names to positions in a row.
type header []string

// value returns the first non-empty cell among the aliases. Each alias is
// tried by its exact spelling, then lower-cased, before falling back to any
// case-insensitive match.
func (h header) value(row []string, aliases []string) string {
	for _, alias := range aliases {
		for _, name := range []string{alias, strings.ToLower(alias)} {
			if v := h.cell(row, func(col string) bool { return col == name }); v != "" {
				return v
			}
		}
	}
	for _, alias := range aliases {
		if v := h.cell(row, func(col string) bool { return strings.EqualFold(col, alias) }); v != "" {
			return v
		}
	}
	return ""
}

func (h header) cell(row []string, match func(string) bool) string {
	for i, col := range h {
		if i >= len(row) || !match(col) {
			continue
		}
		if v := strings.TrimSpace(row[i]); v != "" {
			return v
		}
	}
	return ""
}

// Parse reads a CSV file with a header row and returns one normalized menu
// item per non-blank row. Columns that are absent resolve to empty values.
func Parse(r io.Reader) ([]model.MenuItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	cols := make(header, len(first))
	for i, name := range first {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		cols[i] = strings.TrimSpace(name)
	}

	items := []model.MenuItem{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if isBlank(row) {
			continue
		}
		item := cols.record(row)
		if !item.Section.Valid() {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w: %q", line, model.ErrInvalidSection, item.Section)
		}
		items = append(items, item)
	}

	return items, nil
}

func (h header) record(row []string) model.MenuItem {
	section := strings.ToLower(h.value(row, colSection))
	if section == "" {
		section = string(model.SectionCafe)
	}

	return model.MenuItem{
		Name:        h.value(row, colName),
		Description: h.value(row, colDescription),
		Ingredients: h.value(row, colIngredients),
		Price:       h.value(row, colPrice),
		DealPrice:   h.value(row, colDealPrice),
		Section:     model.Section(section),
		Category:    h.value(row, colCategory),
		Tags:        catalog.ParseTagList(h.value(row, colTags)),
		IsFeatured:  strings.ToLower(h.value(row, colFeatured)) == "yes",
		SortOrder:   catalog.NumericInput(h.value(row, colSortOrder)).Int(model.DefaultSortOrder),
		NumberItems: model.DefaultNumberItems,
	}
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
