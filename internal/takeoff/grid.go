package takeoff

import (
	"fmt"

	apperrors "estimating-portal-backend/internal/errors"
)

// Grid layout constants. Rows 1 and 2 are reserved for the project banner,
// row 3 carries column headers, and generated item rows start at row 4.
const (
	HeaderRow    = 3
	DataStartRow = 4

	rateColumnIndex     = 0 // column A
	nameColumnIndex     = 1 // column B
	firstLocationColumn = 2 // column C
)

// ColumnLetter converts a 0-based column index to its A1 letter form.
func ColumnLetter(index int) string {
	letters := ""
	for index >= 0 {
		letters = string(rune('A'+index%26)) + letters
		index = index/26 - 1
	}
	return letters
}

// BuildGrid derives the full generated grid from a configuration and a
// catalog snapshot. It is a pure function: the same config and catalog
// always produce the same grid, so regeneration is idempotent.
//
// Row expansion preserves authoring order. An item with no variants yields
// one row; an item with variants yields one row per variant, each priced
// independently through the composite override key.
func BuildGrid(cfg *Config, catalog []CatalogItem) (*Grid, error) {
	if cfg == nil {
		return nil, &apperrors.ValidationError{Field: "config", Message: "config is required"}
	}
	if len(cfg.Columns) == 0 {
		return nil, &apperrors.ValidationError{Field: "columns", Message: "at least one location column is required"}
	}
	if len(cfg.SelectedItems) == 0 {
		return nil, &apperrors.ValidationError{Field: "selectedItems", Message: "at least one item must be selected"}
	}

	byCode := make(map[string]CatalogItem, len(catalog))
	for _, item := range catalog {
		byCode[item.ScopeCode] = item
	}

	lastLocation := ColumnLetter(firstLocationColumn + len(cfg.Columns) - 1)
	totalColumn := ColumnLetter(firstLocationColumn + len(cfg.Columns))
	rateColumn := ColumnLetter(rateColumnIndex)

	grid := &Grid{Columns: cfg.Columns}
	row := DataStartRow

	for _, selected := range cfg.SelectedItems {
		item, ok := byCode[selected.ScopeCode]
		if !ok {
			return nil, &apperrors.ValidationError{
				Field:   "selectedItems",
				Message: fmt.Sprintf("unknown scope code %q", selected.ScopeCode),
			}
		}

		variants := selected.Variants
		if len(variants) == 0 {
			variants = []Variant{{}}
		}

		for _, variant := range variants {
			grid.Rows = append(grid.Rows, GeneratedRow{
				Position:      row,
				ScopeCode:     item.ScopeCode,
				DisplayName:   DisplayLabel(item.ScopeName, variant),
				Rate:          ResolveRate(item, variant, cfg.RateOverrides),
				UnitOfMeasure: item.UnitOfMeasure,
				Quantities:    make([]float64, len(cfg.Columns)),
				TotalFormula:  fmt.Sprintf("=SUM(%s%d:%s%d)", ColumnLetter(firstLocationColumn), row, lastLocation, row),
				CostFormula:   fmt.Sprintf("=%s%d*%s%d", rateColumn, row, totalColumn, row),
			})
			row++
		}
	}

	return grid, nil
}

// HeaderValues renders the header row for a grid: rate and scope labels
// followed by the location column names, then the derived total and cost
// labels.
func HeaderValues(columns []Column) []string {
	header := []string{"Rate", "Scope"}
	for _, col := range columns {
		header = append(header, col.Name)
	}
	return append(header, "Total", "Cost")
}

// RowValues renders one generated row in sheet column order, matching
// HeaderValues.
func RowValues(row GeneratedRow) []interface{} {
	values := []interface{}{row.Rate, row.DisplayName}
	for _, qty := range row.Quantities {
		values = append(values, qty)
	}
	return append(values, row.TotalFormula, row.CostFormula)
}
