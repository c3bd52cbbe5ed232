package takeoff

// Variant is an attribute bag distinguishing otherwise-identical catalog
// items. It has no identity of its own; keys and labels are derived from the
// present attributes in a fixed order (see CompositeKey).
type Variant struct {
	RValue       string `json:"r_value,omitempty"`
	Size         string `json:"size,omitempty"`
	MaterialType string `json:"material_type,omitempty"`
}

// Column is one physical-location column of the generated grid. Mappings are
// free-text synonyms used to auto-match imported measurement data.
type Column struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Mappings []string `json:"mappings,omitempty"`
}

// SelectedItem references a library item, optionally in several variants.
// An empty variant list means the item is quoted without variation.
type SelectedItem struct {
	ScopeCode string    `json:"scope_code"`
	Variants  []Variant `json:"variants,omitempty"`
}

// Config is a user-authored takeoff configuration for one project. It may
// exist without ever being generated.
type Config struct {
	Columns       []Column           `json:"columns"`
	SelectedItems []SelectedItem     `json:"selectedItems"`
	RateOverrides map[string]float64 `json:"rateOverrides"`
	GCName        string             `json:"gcName,omitempty"`
}

// CatalogItem is the read-only library snapshot the grid builder prices
// against.
type CatalogItem struct {
	ScopeCode     string  `json:"scope_code"`
	Section       string  `json:"section"`
	ScopeName     string  `json:"scope_name"`
	DefaultRate   float64 `json:"default_unit_cost"`
	UnitOfMeasure string  `json:"uom"`
	SortOrder     int     `json:"sort_order"`
	HasRValue     bool    `json:"has_r_value,omitempty"`
	HasThickness  bool    `json:"has_thickness,omitempty"`
	HasMaterial   bool    `json:"has_material_type,omitempty"`
}

// GeneratedRow is one priced line of the generated grid. Immutable once
// written to a version; changed only by regenerating that version.
type GeneratedRow struct {
	Position         int       `json:"position"`
	ScopeCode        string    `json:"scope_code"`
	DisplayName      string    `json:"display_name"`
	Rate             float64   `json:"rate"`
	UnitOfMeasure    string    `json:"uom"`
	Quantities       []float64 `json:"quantities"`
	TotalFormula     string    `json:"total_formula"`
	CostFormula      string    `json:"cost_formula"`
	AggregateFormula string    `json:"aggregate_formula,omitempty"`
}

// Grid is the full generated artifact for one configuration.
type Grid struct {
	Columns []Column       `json:"columns"`
	Rows    []GeneratedRow `json:"rows"`
}

// DefaultConfig returns the preset configuration served when a project has
// no stored config: five location columns with common construction-site
// synonyms, nothing selected, no overrides.
func DefaultConfig() *Config {
	return &Config{
		Columns: []Column{
			{ID: "C", Name: "Main Roof", Mappings: []string{"ROOF", "MR", "MAIN"}},
			{ID: "D", Name: "1st Floor", Mappings: []string{"FL-1", "1ST", "GROUND"}},
			{ID: "E", Name: "2nd Floor", Mappings: []string{"FL-2", "2ND"}},
			{ID: "F", Name: "Front", Mappings: []string{"FRONT", "NORTH"}},
			{ID: "G", Name: "Rear", Mappings: []string{"REAR", "SOUTH"}},
		},
		SelectedItems: []SelectedItem{},
		RateOverrides: map[string]float64{},
	}
}
