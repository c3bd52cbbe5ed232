package repository

import (
	"estimating-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LibraryItemRepository handles database operations for the item catalog
type LibraryItemRepository struct {
	db *gorm.DB
}

var _ LibraryItemRepositoryInterface = (*LibraryItemRepository)(nil)

// NewLibraryItemRepository creates a new library item repository
func NewLibraryItemRepository(db *gorm.DB) *LibraryItemRepository {
	return &LibraryItemRepository{db: db}
}

// GetAll retrieves the full catalog in display order
func (r *LibraryItemRepository) GetAll() ([]models.LibraryItem, error) {
	var items []models.LibraryItem
	err := r.db.Order("sort_order ASC, section ASC, scope_name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByScopeCode retrieves a single catalog item
func (r *LibraryItemRepository) GetByScopeCode(scopeCode string) (*models.LibraryItem, error) {
	var item models.LibraryItem
	err := r.db.First(&item, "scope_code = ?", scopeCode).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpsertAll inserts or updates catalog items keyed by scope code, used by
// the seeding script
func (r *LibraryItemRepository) UpsertAll(items []models.LibraryItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "scope_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"section", "scope_name", "default_unit_cost", "uom", "sort_order",
			"has_r_value", "has_thickness", "has_material_type", "notes", "updated_at",
		}),
	}).Create(&items).Error
}

// Count returns the number of catalog items
func (r *LibraryItemRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.LibraryItem{}).Count(&count).Error
	return count, err
}
