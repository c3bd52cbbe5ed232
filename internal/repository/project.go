package repository

import (
	"estimating-portal-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

var _ ProjectRepositoryInterface = (*ProjectRepository)(nil)

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByProjectID retrieves a project by its dashboard identifier
func (r *ProjectRepository) GetByProjectID(projectID string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects with pagination
func (r *ProjectRepository) GetAll(limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// Update updates a project
func (r *ProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// SetSpreadsheetID links a project to its takeoff workbook
func (r *ProjectRepository) SetSpreadsheetID(projectID, spreadsheetID string) error {
	return r.db.Model(&models.Project{}).
		Where("project_id = ?", projectID).
		Update("spreadsheet_id", spreadsheetID).Error
}

// Delete deletes a project
func (r *ProjectRepository) Delete(projectID string) error {
	return r.db.Delete(&models.Project{}, "project_id = ?", projectID).Error
}
