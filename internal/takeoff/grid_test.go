package takeoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "estimating-portal-backend/internal/errors"
)

func testCatalog() []CatalogItem {
	return []CatalogItem{
		{ScopeCode: "MR-001VB", ScopeName: "Vapor Barrier", DefaultRate: 6.95, UnitOfMeasure: "SF"},
		{ScopeCode: "MR-INS-BATT", ScopeName: "Batt Insulation", DefaultRate: 2.5, UnitOfMeasure: "SF"},
	}
}

func testConfig() *Config {
	return &Config{
		Columns: []Column{
			{ID: "C", Name: "Main Roof"},
			{ID: "D", Name: "1st Floor"},
			{ID: "E", Name: "2nd Floor"},
		},
		SelectedItems: []SelectedItem{
			{ScopeCode: "MR-001VB"},
			{ScopeCode: "MR-INS-BATT", Variants: []Variant{
				{RValue: "R-19", Size: `3.5"`},
				{RValue: "R-30", Size: `3.5"`},
			}},
		},
		RateOverrides: map[string]float64{`MR-INS-BATT|R-19|3.5"`: 2.75},
	}
}

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", ColumnLetter(0))
	assert.Equal(t, "C", ColumnLetter(2))
	assert.Equal(t, "Z", ColumnLetter(25))
	assert.Equal(t, "AA", ColumnLetter(26))
	assert.Equal(t, "AB", ColumnLetter(27))
}

func TestBuildGrid(t *testing.T) {
	t.Run("expands variants into consecutive rows", func(t *testing.T) {
		grid, err := BuildGrid(testConfig(), testCatalog())
		require.NoError(t, err)
		require.Len(t, grid.Rows, 3)

		assert.Equal(t, DataStartRow, grid.Rows[0].Position)
		assert.Equal(t, "Vapor Barrier", grid.Rows[0].DisplayName)
		assert.Equal(t, 6.95, grid.Rows[0].Rate)

		assert.Equal(t, 5, grid.Rows[1].Position)
		assert.Equal(t, `Batt Insulation R-19 3.5"`, grid.Rows[1].DisplayName)
		assert.Equal(t, 6, grid.Rows[2].Position)
		assert.Equal(t, `Batt Insulation R-30 3.5"`, grid.Rows[2].DisplayName)
	})

	t.Run("override applies to the matching variant only", func(t *testing.T) {
		grid, err := BuildGrid(testConfig(), testCatalog())
		require.NoError(t, err)

		assert.Equal(t, 2.75, grid.Rows[1].Rate)
		assert.Equal(t, 2.5, grid.Rows[2].Rate)
	})

	t.Run("formulas span the location columns", func(t *testing.T) {
		grid, err := BuildGrid(testConfig(), testCatalog())
		require.NoError(t, err)

		// Three location columns C..E, total in F, cost = rate * total.
		assert.Equal(t, "=SUM(C4:E4)", grid.Rows[0].TotalFormula)
		assert.Equal(t, "=A4*F4", grid.Rows[0].CostFormula)
		assert.Equal(t, "=SUM(C6:E6)", grid.Rows[2].TotalFormula)
	})

	t.Run("quantities start at zero", func(t *testing.T) {
		grid, err := BuildGrid(testConfig(), testCatalog())
		require.NoError(t, err)

		for _, row := range grid.Rows {
			assert.Equal(t, []float64{0, 0, 0}, row.Quantities)
		}
	})

	t.Run("deterministic for the same inputs", func(t *testing.T) {
		first, err := BuildGrid(testConfig(), testCatalog())
		require.NoError(t, err)
		second, err := BuildGrid(testConfig(), testCatalog())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("empty columns rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.Columns = nil
		_, err := BuildGrid(cfg, testCatalog())
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("empty selection rejected", func(t *testing.T) {
		cfg := testConfig()
		cfg.SelectedItems = nil
		_, err := BuildGrid(cfg, testCatalog())
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("unknown scope code fails generation", func(t *testing.T) {
		cfg := testConfig()
		cfg.SelectedItems = append(cfg.SelectedItems, SelectedItem{ScopeCode: "MR-NOPE"})
		_, err := BuildGrid(cfg, testCatalog())
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "MR-NOPE")
	})
}

func TestHeaderAndRowValues(t *testing.T) {
	grid, err := BuildGrid(testConfig(), testCatalog())
	require.NoError(t, err)

	header := HeaderValues(grid.Columns)
	assert.Equal(t, []string{"Rate", "Scope", "Main Roof", "1st Floor", "2nd Floor", "Total", "Cost"}, header)

	values := RowValues(grid.Rows[0])
	require.Len(t, values, len(header))
	assert.Equal(t, 6.95, values[0])
	assert.Equal(t, "Vapor Barrier", values[1])
	assert.Equal(t, "=SUM(C4:E4)", values[5])
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Len(t, cfg.Columns, 5)
	assert.Equal(t, "Main Roof", cfg.Columns[0].Name)
	assert.Contains(t, cfg.Columns[0].Mappings, "ROOF")
	assert.Empty(t, cfg.SelectedItems)
	assert.NotNil(t, cfg.RateOverrides)
}

func TestFallbackTemplate(t *testing.T) {
	items := FallbackTemplate()
	require.NotEmpty(t, items)

	byCode := make(map[string]CatalogItem)
	for _, item := range items {
		_, dup := byCode[item.ScopeCode]
		assert.False(t, dup, "duplicate scope code %s", item.ScopeCode)
		byCode[item.ScopeCode] = item
	}

	batt := byCode["MR-INS-BATT"]
	assert.True(t, batt.HasRValue)
	assert.True(t, batt.HasThickness)
	assert.True(t, batt.HasMaterial)
	assert.Equal(t, 2.5, batt.DefaultRate)

	sections := GroupBySection(items)
	assert.Contains(t, sections, "Roofing")
	assert.Contains(t, sections, "Insulation")
}
