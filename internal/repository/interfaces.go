package repository

import (
	"estimating-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByProjectID(projectID string) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
	Update(project *models.Project) error
	SetSpreadsheetID(projectID, spreadsheetID string) error
	Delete(projectID string) error
}

// LibraryItemRepositoryInterface defines the interface for catalog repository operations
type LibraryItemRepositoryInterface interface {
	GetAll() ([]models.LibraryItem, error)
	GetByScopeCode(scopeCode string) (*models.LibraryItem, error)
	UpsertAll(items []models.LibraryItem) error
	Count() (int64, error)
}

// TakeoffConfigRepositoryInterface defines the interface for config document repository operations
type TakeoffConfigRepositoryInterface interface {
	GetByProjectID(projectID string) (*models.TakeoffConfig, error)
	Upsert(config *models.TakeoffConfig) error
	Delete(projectID string) error
}

// ProjectVersionRepositoryInterface defines the interface for version audit repository operations
type ProjectVersionRepositoryInterface interface {
	Create(version *models.ProjectVersion) error
	GetByProjectID(projectID string) ([]models.ProjectVersion, error)
	GetByName(projectID, sheetName string) (*models.ProjectVersion, error)
	Upsert(version *models.ProjectVersion) error
	SetActive(projectID, sheetName string) error
	SetStatus(projectID, sheetName string, status models.VersionStatus) error
	Delete(projectID, sheetName string) error
}
