package models

import "estimating-portal-backend/internal/takeoff"

// LibraryItem is one row of the takeoff item catalog. ScopeCode is the
// stable business key; the UUID exists only for relational bookkeeping.
type LibraryItem struct {
	BaseModel
	ScopeCode       string  `json:"scope_code" gorm:"size:50;not null;uniqueIndex" validate:"required,max=50"`
	Section         string  `json:"section" gorm:"size:100" validate:"max=100"`
	ScopeName       string  `json:"scope_name" gorm:"size:200;not null" validate:"required,max=200"`
	DefaultUnitCost float64 `json:"default_unit_cost" gorm:"not null;default:0"`
	UOM             string  `json:"uom" gorm:"size:10" validate:"max=10"`
	SortOrder       int     `json:"sort_order" gorm:"default:0"`
	HasRValue       bool    `json:"has_r_value" gorm:"default:false"`
	HasThickness    bool    `json:"has_thickness" gorm:"default:false"`
	HasMaterialType bool    `json:"has_material_type" gorm:"default:false"`
	Notes           string  `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for LibraryItem
func (LibraryItem) TableName() string {
	return "library_items"
}

// ToCatalogItem converts the row to the catalog shape the grid builder
// prices against.
func (li *LibraryItem) ToCatalogItem() takeoff.CatalogItem {
	return takeoff.CatalogItem{
		ScopeCode:     li.ScopeCode,
		Section:       li.Section,
		ScopeName:     li.ScopeName,
		DefaultRate:   li.DefaultUnitCost,
		UnitOfMeasure: li.UOM,
		SortOrder:     li.SortOrder,
		HasRValue:     li.HasRValue,
		HasThickness:  li.HasThickness,
		HasMaterial:   li.HasMaterialType,
	}
}

// LibraryItemFromCatalog builds a row from a catalog entry, used when
// seeding from the compiled-in template.
func LibraryItemFromCatalog(item takeoff.CatalogItem) LibraryItem {
	return LibraryItem{
		ScopeCode:       item.ScopeCode,
		Section:         item.Section,
		ScopeName:       item.ScopeName,
		DefaultUnitCost: item.DefaultRate,
		UOM:             item.UnitOfMeasure,
		SortOrder:       item.SortOrder,
		HasRValue:       item.HasRValue,
		HasThickness:    item.HasThickness,
		HasMaterialType: item.HasMaterial,
	}
}
