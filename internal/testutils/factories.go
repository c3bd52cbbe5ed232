package testutils

import (
	"encoding/json"
	"time"

	"estimating-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	id := uuid.New()
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:     "proj-" + id.String()[:8],
		Name:          "Test Project",
		GCName:        "Test GC",
		SpreadsheetID: "sheet-" + id.String()[:8],
	}
}

// WithProjectID sets a custom dashboard identifier
func (f *ProjectFactory) WithProjectID(projectID string) *models.Project {
	project := f.Create()
	project.ProjectID = projectID
	return project
}

// WithoutSpreadsheet clears the workbook link
func (f *ProjectFactory) WithoutSpreadsheet() *models.Project {
	project := f.Create()
	project.SpreadsheetID = ""
	return project
}

// LibraryItemFactory provides methods to create test LibraryItem data
type LibraryItemFactory struct{}

// NewLibraryItemFactory creates a new LibraryItemFactory
func NewLibraryItemFactory() *LibraryItemFactory {
	return &LibraryItemFactory{}
}

// Create creates a test LibraryItem with default values
func (f *LibraryItemFactory) Create() *models.LibraryItem {
	id := uuid.New()
	return &models.LibraryItem{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScopeCode:       "MR-" + id.String()[:6],
		Section:         "Roofing",
		ScopeName:       "Test Item",
		DefaultUnitCost: 10.0,
		UOM:             "SF",
		SortOrder:       1,
	}
}

// WithScopeCode sets a custom scope code
func (f *LibraryItemFactory) WithScopeCode(scopeCode string) *models.LibraryItem {
	item := f.Create()
	item.ScopeCode = scopeCode
	return item
}

// WithVariantFlags sets which variant dimensions the item supports
func (f *LibraryItemFactory) WithVariantFlags(rValue, thickness, material bool) *models.LibraryItem {
	item := f.Create()
	item.HasRValue = rValue
	item.HasThickness = thickness
	item.HasMaterialType = material
	return item
}

// TakeoffConfigFactory provides methods to create test TakeoffConfig data
type TakeoffConfigFactory struct{}

// NewTakeoffConfigFactory creates a new TakeoffConfigFactory
func NewTakeoffConfigFactory() *TakeoffConfigFactory {
	return &TakeoffConfigFactory{}
}

// Create creates a test TakeoffConfig with a minimal valid document
func (f *TakeoffConfigFactory) Create() *models.TakeoffConfig {
	id := uuid.New()
	doc, _ := json.Marshal(map[string]interface{}{
		"columns":       []map[string]interface{}{{"id": "C", "name": "Main Roof"}},
		"selectedItems": []map[string]interface{}{{"scope_code": "MR-001VB"}},
		"rateOverrides": map[string]float64{},
	})
	return &models.TakeoffConfig{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID: "proj-" + id.String()[:8],
		Document:  doc,
		Source:    models.ConfigSourceDatabase,
	}
}

// WithProject sets the owning project
func (f *TakeoffConfigFactory) WithProject(projectID string) *models.TakeoffConfig {
	config := f.Create()
	config.ProjectID = projectID
	return config
}

// ProjectVersionFactory provides methods to create test ProjectVersion data
type ProjectVersionFactory struct{}

// NewProjectVersionFactory creates a new ProjectVersionFactory
func NewProjectVersionFactory() *ProjectVersionFactory {
	return &ProjectVersionFactory{}
}

// Create creates a test ProjectVersion with default values
func (f *ProjectVersionFactory) Create() *models.ProjectVersion {
	id := uuid.New()
	return &models.ProjectVersion{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ProjectID:      "proj-" + id.String()[:8],
		SheetName:      "2026-01-15",
		Active:         false,
		Status:         models.VersionStatusInProgress,
		ItemsCount:     3,
		LocationsCount: 5,
	}
}

// WithProject sets the owning project
func (f *ProjectVersionFactory) WithProject(projectID string) *models.ProjectVersion {
	version := f.Create()
	version.ProjectID = projectID
	return version
}

// WithName sets the version tab name
func (f *ProjectVersionFactory) WithName(projectID, sheetName string) *models.ProjectVersion {
	version := f.Create()
	version.ProjectID = projectID
	version.SheetName = sheetName
	return version
}

// WithActive marks the version active
func (f *ProjectVersionFactory) WithActive(projectID, sheetName string) *models.ProjectVersion {
	version := f.WithName(projectID, sheetName)
	version.Active = true
	return version
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project        *ProjectFactory
	LibraryItem    *LibraryItemFactory
	TakeoffConfig  *TakeoffConfigFactory
	ProjectVersion *ProjectVersionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:        NewProjectFactory(),
		LibraryItem:    NewLibraryItemFactory(),
		TakeoffConfig:  NewTakeoffConfigFactory(),
		ProjectVersion: NewProjectVersionFactory(),
	}
}
