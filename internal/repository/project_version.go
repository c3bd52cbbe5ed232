package repository

import (
	"estimating-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectVersionRepository handles database operations for version audit rows
type ProjectVersionRepository struct {
	db *gorm.DB
}

var _ ProjectVersionRepositoryInterface = (*ProjectVersionRepository)(nil)

// NewProjectVersionRepository creates a new project version repository
func NewProjectVersionRepository(db *gorm.DB) *ProjectVersionRepository {
	return &ProjectVersionRepository{db: db}
}

// Create creates a new version audit row
func (r *ProjectVersionRepository) Create(version *models.ProjectVersion) error {
	return r.db.Create(version).Error
}

// GetByProjectID retrieves all version rows for a project, newest first
func (r *ProjectVersionRepository) GetByProjectID(projectID string) ([]models.ProjectVersion, error) {
	var versions []models.ProjectVersion
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

// GetByName retrieves one version row by project and sheet name
func (r *ProjectVersionRepository) GetByName(projectID, sheetName string) (*models.ProjectVersion, error) {
	var version models.ProjectVersion
	err := r.db.First(&version, "project_id = ? AND sheet_name = ?", projectID, sheetName).Error
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// Upsert writes a version row keyed by project and sheet name
func (r *ProjectVersionRepository) Upsert(version *models.ProjectVersion) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_id"}, {Name: "sheet_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sheet_id", "active", "status", "items_count", "locations_count",
			"copied_from", "generated_at", "grid", "updated_at",
		}),
	}).Create(version).Error
}

// SetActive marks one version active and clears the flag on all others in
// a single transaction, mirroring the single-active rule of the tracker
func (r *ProjectVersionRepository) SetActive(projectID, sheetName string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProjectVersion{}).
			Where("project_id = ? AND active = ?", projectID, true).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.ProjectVersion{}).
			Where("project_id = ? AND sheet_name = ?", projectID, sheetName).
			Update("active", true).Error
	})
}

// SetStatus updates the status label of one version row
func (r *ProjectVersionRepository) SetStatus(projectID, sheetName string, status models.VersionStatus) error {
	return r.db.Model(&models.ProjectVersion{}).
		Where("project_id = ? AND sheet_name = ?", projectID, sheetName).
		Update("status", status).Error
}

// Delete removes a version row
func (r *ProjectVersionRepository) Delete(projectID, sheetName string) error {
	return r.db.Delete(&models.ProjectVersion{}, "project_id = ? AND sheet_name = ?", projectID, sheetName).Error
}
