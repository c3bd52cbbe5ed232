package repository

import (
	"estimating-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TakeoffConfigRepository handles database operations for config documents
type TakeoffConfigRepository struct {
	db *gorm.DB
}

var _ TakeoffConfigRepositoryInterface = (*TakeoffConfigRepository)(nil)

// NewTakeoffConfigRepository creates a new takeoff config repository
func NewTakeoffConfigRepository(db *gorm.DB) *TakeoffConfigRepository {
	return &TakeoffConfigRepository{db: db}
}

// GetByProjectID retrieves the stored config document for a project
func (r *TakeoffConfigRepository) GetByProjectID(projectID string) (*models.TakeoffConfig, error) {
	var config models.TakeoffConfig
	err := r.db.First(&config, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Upsert writes the config document, replacing any previous copy for the
// same project
func (r *TakeoffConfigRepository) Upsert(config *models.TakeoffConfig) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "source", "updated_at"}),
	}).Create(config).Error
}

// Delete removes the stored config document for a project
func (r *TakeoffConfigRepository) Delete(projectID string) error {
	return r.db.Delete(&models.TakeoffConfig{}, "project_id = ?", projectID).Error
}
