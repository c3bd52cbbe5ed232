package takeoff

// VariantOptions lists the attribute values the UI offers when an item
// supports a variant dimension. Free-text values outside these lists are
// still accepted on input.
type VariantOptions struct {
	RValues       []string `json:"r_values"`
	Sizes         []string `json:"sizes"`
	MaterialTypes []string `json:"material_types"`
}

// DefaultVariantOptions returns the predefined variant attribute lists.
func DefaultVariantOptions() VariantOptions {
	return VariantOptions{
		RValues: []string{"R-11", "R-13", "R-15", "R-19", "R-21", "R-30", "R-38", "R-49", "R-60"},
		Sizes: []string{
			`1/4"`, `3/8"`, `1/2"`, `5/8"`, `3/4"`, `1"`, `1.5"`, `2"`,
			`3"`, `3.5"`, `4"`, `6"`, `8"`, `10"`, `12"`,
		},
		MaterialTypes: []string{
			"Fiberglass", "Mineral Wool", "Spray Foam", "Rigid Foam", "Cellulose",
			"Denim", "TPO", "EPDM", "PVC", "Mod Bit", "BUR",
		},
	}
}

// FallbackTemplate returns the compiled-in item library used when the
// relational catalog is empty or unreachable. It mirrors the seed data in
// scripts/data/library_items.yaml.
func FallbackTemplate() []CatalogItem {
	return []CatalogItem{
		{ScopeCode: "MR-001VB", Section: "Roofing", ScopeName: "Vapor Barrier", DefaultRate: 6.95, UnitOfMeasure: "SF", SortOrder: 1},
		{ScopeCode: "MR-002PITCH", Section: "Roofing", ScopeName: "Pitch Upcharge", DefaultRate: 1.5, UnitOfMeasure: "SF", SortOrder: 2},
		{ScopeCode: "MR-003BU2PLY", Section: "Roofing", ScopeName: "Roofing - 2 Ply", DefaultRate: 16.25, UnitOfMeasure: "SF", SortOrder: 3, HasMaterial: true},
		{ScopeCode: "MR-004UO", Section: "Roofing", ScopeName: "Up and Over", DefaultRate: 12.0, UnitOfMeasure: "LF", SortOrder: 4},
		{ScopeCode: "MR-005SCUPPER", Section: "Roofing", ScopeName: "Scupper/Leader", DefaultRate: 2500.0, UnitOfMeasure: "EA", SortOrder: 5},
		{ScopeCode: "MR-006IRMA", Section: "Roofing", ScopeName: "Roofing - IRMA", DefaultRate: 18.0, UnitOfMeasure: "SF", SortOrder: 6, HasMaterial: true, HasRValue: true},
		{ScopeCode: "MR-007PMMA", Section: "Roofing", ScopeName: "PMMA @ Building", DefaultRate: 48.0, UnitOfMeasure: "LF", SortOrder: 7, HasMaterial: true},
		{ScopeCode: "MR-008PMMA", Section: "Roofing", ScopeName: "PMMA @ Parapet", DefaultRate: 48.0, UnitOfMeasure: "LF", SortOrder: 8, HasMaterial: true},
		{ScopeCode: "MR-010DRAIN", Section: "Roofing", ScopeName: "Drains", DefaultRate: 550.0, UnitOfMeasure: "EA", SortOrder: 10},
		{ScopeCode: "MR-011DOORSTD", Section: "Roofing", ScopeName: "Doorpans - Std", DefaultRate: 550.0, UnitOfMeasure: "EA", SortOrder: 11},
		{ScopeCode: "MR-012DOORLG", Section: "Roofing", ScopeName: "Doorpans - Large", DefaultRate: 850.0, UnitOfMeasure: "EA", SortOrder: 12},
		{ScopeCode: "MR-013HATCHSF", Section: "Roofing", ScopeName: "Hatch/Skylight (SF)", DefaultRate: 48.0, UnitOfMeasure: "SF", SortOrder: 13},
		{ScopeCode: "MR-014HATCHLF", Section: "Roofing", ScopeName: "Hatch/Skylight (LF)", DefaultRate: 48.0, UnitOfMeasure: "LF", SortOrder: 14},
		{ScopeCode: "MR-015PAD", Section: "Roofing", ScopeName: "Mech Pads", DefaultRate: 32.0, UnitOfMeasure: "SF", SortOrder: 15},
		{ScopeCode: "MR-016FENCE", Section: "Roofing", ScopeName: "Fence Posts", DefaultRate: 250.0, UnitOfMeasure: "EA", SortOrder: 16},
		{ScopeCode: "MR-017RAIL", Section: "Roofing", ScopeName: "Railing Posts", DefaultRate: 250.0, UnitOfMeasure: "EA", SortOrder: 17},
		{ScopeCode: "MR-018PLUMB", Section: "Roofing", ScopeName: "Plumbing Pen.", DefaultRate: 250.0, UnitOfMeasure: "EA", SortOrder: 18},
		{ScopeCode: "MR-019MECH", Section: "Roofing", ScopeName: "Mechanical Pen.", DefaultRate: 250.0, UnitOfMeasure: "EA", SortOrder: 19},
		{ScopeCode: "MR-020DAVIT", Section: "Roofing", ScopeName: "Davits", DefaultRate: 150.0, UnitOfMeasure: "EA", SortOrder: 20},
		{ScopeCode: "MR-021AC", Section: "Roofing", ScopeName: "AC Units/Dunnage", DefaultRate: 550.0, UnitOfMeasure: "EA", SortOrder: 21},
		{ScopeCode: "MR-022COPELO", Section: "Roofing", ScopeName: "Coping (Low)", DefaultRate: 32.0, UnitOfMeasure: "LF", SortOrder: 22, HasMaterial: true},
		{ScopeCode: "MR-023COPEHI", Section: "Roofing", ScopeName: "Coping (High)", DefaultRate: 32.0, UnitOfMeasure: "LF", SortOrder: 23, HasMaterial: true},
		{ScopeCode: "MR-024INSUCOPE", Section: "Roofing", ScopeName: "Insul. Coping", DefaultRate: 4.0, UnitOfMeasure: "LF", SortOrder: 24, HasRValue: true},
		{ScopeCode: "MR-025FLASHBLDG", Section: "Roofing", ScopeName: "Flash @ Building", DefaultRate: 24.0, UnitOfMeasure: "LF", SortOrder: 25},
		{ScopeCode: "MR-026FLASHPAR", Section: "Roofing", ScopeName: "Flash @ Parapet", DefaultRate: 24.0, UnitOfMeasure: "LF", SortOrder: 26},
		{ScopeCode: "MR-027OBIRMA", Section: "Roofing", ScopeName: "Overburden IRMA", DefaultRate: 14.0, UnitOfMeasure: "SF", SortOrder: 27},
		{ScopeCode: "MR-028PAVER", Section: "Roofing", ScopeName: "Pavers", DefaultRate: 24.0, UnitOfMeasure: "SF", SortOrder: 28, HasMaterial: true},
		{ScopeCode: "MR-029FLASHPAV", Section: "Roofing", ScopeName: "Edge @ Pavers", DefaultRate: 24.0, UnitOfMeasure: "LF", SortOrder: 29},
		{ScopeCode: "MR-030GREEN", Section: "Roofing", ScopeName: "Green Roof", DefaultRate: 48.0, UnitOfMeasure: "SF", SortOrder: 30},
		{ScopeCode: "MR-031FLASHGRN", Section: "Roofing", ScopeName: "Edge @ Green", DefaultRate: 24.0, UnitOfMeasure: "LF", SortOrder: 31},
		{ScopeCode: "MR-032RECESSWP", Section: "Roofing", ScopeName: "Recessed Floor WP", DefaultRate: 32.0, UnitOfMeasure: "SF", SortOrder: 32},
		{ScopeCode: "MR-INS-BATT", Section: "Insulation", ScopeName: "Batt Insulation", DefaultRate: 2.5, UnitOfMeasure: "SF", SortOrder: 40, HasRValue: true, HasThickness: true, HasMaterial: true},
		{ScopeCode: "MR-INS-RIGID", Section: "Insulation", ScopeName: "Rigid Insulation", DefaultRate: 3.25, UnitOfMeasure: "SF", SortOrder: 41, HasRValue: true, HasThickness: true},
		{ScopeCode: "MR-INS-COVER", Section: "Insulation", ScopeName: "Cover Board", DefaultRate: 4.5, UnitOfMeasure: "SF", SortOrder: 42, HasThickness: true},
		{ScopeCode: "MR-033TRAFFIC", Section: "Balcony", ScopeName: "Traffic Coating", DefaultRate: 17.0, UnitOfMeasure: "SF", SortOrder: 50},
		{ScopeCode: "MR-034DRIP", Section: "Balcony", ScopeName: "Alum. Drip Edge", DefaultRate: 22.0, UnitOfMeasure: "LF", SortOrder: 51},
		{ScopeCode: "MR-035LFLASH", Section: "Balcony", ScopeName: "Liquid L Flash", DefaultRate: 48.0, UnitOfMeasure: "LF", SortOrder: 52},
		{ScopeCode: "MR-036DOORBAL", Section: "Balcony", ScopeName: "Doorpans - Balc.", DefaultRate: 550.0, UnitOfMeasure: "EA", SortOrder: 53},
		{ScopeCode: "MR-037BRICKWP", Section: "Exterior", ScopeName: "Brick WP", DefaultRate: 5.25, UnitOfMeasure: "SF", SortOrder: 60},
		{ScopeCode: "MR-038OPNBRKEA", Section: "Exterior", ScopeName: "Open Brick (EA)", DefaultRate: 250.0, UnitOfMeasure: "EA", SortOrder: 61},
		{ScopeCode: "MR-039OPNBRKLF", Section: "Exterior", ScopeName: "Open Brick (LF)", DefaultRate: 10.0, UnitOfMeasure: "LF", SortOrder: 62},
		{ScopeCode: "MR-040PANELWP", Section: "Exterior", ScopeName: "Panel WP", DefaultRate: 5.25, UnitOfMeasure: "SF", SortOrder: 63},
		{ScopeCode: "MR-041OPNPNLEA", Section: "Exterior", ScopeName: "Open Panel (EA)", DefaultRate: 250.0, UnitOfMeasure: "EA", SortOrder: 64},
		{ScopeCode: "MR-042OPNPNLLF", Section: "Exterior", ScopeName: "Open Panel (LF)", DefaultRate: 10.0, UnitOfMeasure: "LF", SortOrder: 65},
		{ScopeCode: "MR-043EIFS", Section: "Exterior", ScopeName: "EIFS", DefaultRate: 5.25, UnitOfMeasure: "SF", SortOrder: 66, HasMaterial: true, HasRValue: true, HasThickness: true},
		{ScopeCode: "MR-044OPNSTCEA", Section: "Exterior", ScopeName: "Open Stucco (EA)", DefaultRate: 250.0, UnitOfMeasure: "EA", SortOrder: 67},
		{ScopeCode: "MR-045OPNSTCLF", Section: "Exterior", ScopeName: "Open Stucco (LF)", DefaultRate: 10.0, UnitOfMeasure: "LF", SortOrder: 68},
		{ScopeCode: "MR-046STUCCO", Section: "Exterior", ScopeName: "Trans. Stucco", DefaultRate: 17.0, UnitOfMeasure: "SF", SortOrder: 69},
		{ScopeCode: "MR-047DRIPCAP", Section: "Exterior", ScopeName: "Drip Cap", DefaultRate: 33.0, UnitOfMeasure: "LF", SortOrder: 70},
		{ScopeCode: "MR-048SILL", Section: "Exterior", ScopeName: "Sills", DefaultRate: 33.0, UnitOfMeasure: "LF", SortOrder: 71},
		{ScopeCode: "MR-049TIEIN", Section: "Exterior", ScopeName: "Tie-In", DefaultRate: 48.0, UnitOfMeasure: "LF", SortOrder: 72},
		{ScopeCode: "MR-050ADJHORZ", Section: "Exterior", ScopeName: "Adj. Bldg Horiz", DefaultRate: 65.0, UnitOfMeasure: "LF", SortOrder: 73},
		{ScopeCode: "MR-051ADJVERT", Section: "Exterior", ScopeName: "Adj. Bldg Vert", DefaultRate: 65.0, UnitOfMeasure: "LF", SortOrder: 74},
		{ScopeCode: "MR-MISC-OTHER", Section: "Misc", ScopeName: "Other/Custom", DefaultRate: 0, UnitOfMeasure: "EA", SortOrder: 100},
		{ScopeCode: "MR-MISC-DEMO", Section: "Misc", ScopeName: "Demo", DefaultRate: 0, UnitOfMeasure: "SF", SortOrder: 101},
		{ScopeCode: "MR-MISC-GARAGE", Section: "Misc", ScopeName: "Garage", DefaultRate: 0, UnitOfMeasure: "SF", SortOrder: 102},
	}
}

// GroupBySection buckets catalog items by their section name. Items without
// a section land in "Other".
func GroupBySection(items []CatalogItem) map[string][]CatalogItem {
	sections := make(map[string][]CatalogItem)
	for _, item := range items {
		key := item.Section
		if key == "" {
			key = "Other"
		}
		sections[key] = append(sections[key], item)
	}
	return sections
}
