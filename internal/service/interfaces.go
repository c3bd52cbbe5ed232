package service

import (
	"context"

	"estimating-portal-backend/internal/takeoff"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LibraryServiceInterface defines the interface for catalog operations
type LibraryServiceInterface interface {
	GetLibrary(ctx context.Context) (*LibraryResponse, error)
	GetCatalog(ctx context.Context) ([]takeoff.CatalogItem, error)
}

// ConfigServiceInterface defines the interface for config document operations
type ConfigServiceInterface interface {
	GetConfig(ctx context.Context, projectID string) (*ConfigResponse, error)
	SaveConfig(ctx context.Context, projectID string, raw map[string]interface{}) (*ConfigResponse, error)
	DeleteConfig(ctx context.Context, projectID string) error
}

// GenerateServiceInterface defines the interface for grid generation
type GenerateServiceInterface interface {
	Generate(ctx context.Context, projectID string, raw map[string]interface{}) (*GenerateResponse, error)
}

// VersionServiceInterface defines the interface for version lifecycle operations
type VersionServiceInterface interface {
	ListVersions(ctx context.Context, projectID string) (*VersionListResponse, error)
	UpdateVersion(ctx context.Context, projectID string, req *VersionUpdateRequest) (*VersionUpdateResponse, error)
	CopyVersion(ctx context.Context, projectID, sourceSheetName string) (*VersionCopyResponse, error)
	DeleteVersion(ctx context.Context, projectID, sheetName string, force bool) error
	RegisterGeneratedVersion(ctx context.Context, projectID, spreadsheetID string, itemsCount, locationsCount int) (string, int64, error)
	ReclassifyBidTypes(ctx context.Context, projectID, sheetName string) (*BidClassifyResponse, error)
}

// WorkbookServiceInterface defines the interface for workbook provisioning
type WorkbookServiceInterface interface {
	EnsureWorkbook(ctx context.Context, projectID, projectName string) (*WorkbookResponse, error)
}
