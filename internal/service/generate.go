package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"estimating-portal-backend/internal/config"
	"estimating-portal-backend/internal/database/models"
	apperrors "estimating-portal-backend/internal/errors"
	"estimating-portal-backend/internal/logger"
	"estimating-portal-backend/internal/repository"
	"estimating-portal-backend/internal/sheets"
	"estimating-portal-backend/internal/takeoff"
)

// GenerateService turns a configuration into a priced version tab. The grid
// itself is pure derivation; this service owns the surrounding lifecycle:
// version tab creation, the batched workbook write, and the relational
// snapshot that carries generation through a document-service outage.
type GenerateService struct {
	projectRepo  repository.ProjectRepositoryInterface
	versionRepo  repository.ProjectVersionRepositoryInterface
	library      LibraryServiceInterface
	versions     VersionServiceInterface
	client       sheets.Client
	cfg          *config.Config
	ensureSchema func() error
	logger       *logger.Logger
	now          func() time.Time
}

// Ensure GenerateService implements GenerateServiceInterface
var _ GenerateServiceInterface = (*GenerateService)(nil)

// NewGenerateService creates a new GenerateService
func NewGenerateService(
	projectRepo repository.ProjectRepositoryInterface,
	versionRepo repository.ProjectVersionRepositoryInterface,
	library LibraryServiceInterface,
	versions VersionServiceInterface,
	client sheets.Client,
	cfg *config.Config,
	ensureSchema func() error,
) *GenerateService {
	return &GenerateService{
		projectRepo:  projectRepo,
		versionRepo:  versionRepo,
		library:      library,
		versions:     versions,
		client:       client,
		cfg:          cfg,
		ensureSchema: ensureSchema,
		logger:       logger.New().WithField("service", "generate"),
		now:          time.Now,
	}
}

// GenerateResponse reports the version produced by a generation run,
// including the priced rows as derived so callers can render them without
// re-reading the workbook
type GenerateResponse struct {
	Success        bool                   `json:"success"`
	SheetName      string                 `json:"sheetName"`
	SheetID        int64                  `json:"sheetId,omitempty"`
	ItemsCount     int                    `json:"itemsCount"`
	LocationsCount int                    `json:"locationsCount"`
	RowCount       int                    `json:"rowCount"`
	Rows           []takeoff.GeneratedRow `json:"rows"`
	Storage        string                 `json:"storage"`
}

// Generate validates the config, derives the grid against the current
// catalog, and writes it as a new active version. The workbook is the
// primary target; when it is unreachable the grid snapshot lands in the
// relational store instead, and only failure of both paths is an error.
func (s *GenerateService) Generate(ctx context.Context, projectID string, raw map[string]interface{}) (*GenerateResponse, error) {
	log := s.logger.WithField("project_id", projectID)

	if verr := takeoff.ValidateConfig(raw); verr != nil {
		return nil, verr
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	cfg, err := decodeConfigDocument(doc)
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "config", Message: err.Error()}
	}

	catalog, err := s.library.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	grid, err := takeoff.BuildGrid(cfg, catalog)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByProjectID(projectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerateTimeout())
	defer cancel()

	if project.SpreadsheetID != "" {
		resp, err := s.generateToWorkbook(genCtx, projectID, project.SpreadsheetID, grid)
		if err == nil {
			return resp, nil
		}
		if !apperrors.IsUpstreamUnavailable(err) {
			return nil, err
		}
		log.WithField("error", err.Error()).Warn("workbook generation failed, storing relational snapshot")
	}

	return s.generateToDatabase(projectID, grid)
}

// generateToWorkbook creates the version tab and writes the whole grid in
// one batched update: header row, then every item row.
func (s *GenerateService) generateToWorkbook(ctx context.Context, projectID, spreadsheetID string, grid *takeoff.Grid) (*GenerateResponse, error) {
	sheetName, sheetID, err := s.versions.RegisterGeneratedVersion(ctx, projectID, spreadsheetID, len(grid.Rows), len(grid.Columns))
	if err != nil {
		return nil, err
	}

	lastColumn := takeoff.ColumnLetter(2 + len(grid.Columns) + 1)

	header := make([]interface{}, 0)
	for _, label := range takeoff.HeaderValues(grid.Columns) {
		header = append(header, label)
	}
	headerRange := fmt.Sprintf("'%s'!A%d:%s%d", sheetName, takeoff.HeaderRow, lastColumn, takeoff.HeaderRow)

	rows := make([][]interface{}, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		rows = append(rows, takeoff.RowValues(row))
	}
	lastRow := takeoff.DataStartRow + len(grid.Rows) - 1
	dataRange := fmt.Sprintf("'%s'!A%d:%s%d", sheetName, takeoff.DataStartRow, lastColumn, lastRow)

	batch := map[string][][]interface{}{
		headerRange: {header},
		dataRange:   rows,
	}
	if err := s.client.BatchUpdateValues(ctx, spreadsheetID, batch); err != nil {
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	return &GenerateResponse{
		Success:        true,
		SheetName:      sheetName,
		SheetID:        sheetID,
		ItemsCount:     len(grid.Rows),
		LocationsCount: len(grid.Columns),
		RowCount:       len(grid.Rows),
		Rows:           grid.Rows,
		Storage:        "sheet",
	}, nil
}

// generateToDatabase stores the grid snapshot relationally. Unlike the
// audit sync this path is the sole record of the generation, so failures
// here surface to the caller.
func (s *GenerateService) generateToDatabase(projectID string, grid *takeoff.Grid) (*GenerateResponse, error) {
	snapshot, err := json.Marshal(grid)
	if err != nil {
		return nil, fmt.Errorf("failed to encode grid: %w", err)
	}

	existing, err := s.versionRepo.GetByProjectID(projectID)
	if err != nil {
		if s.ensureSchema != nil {
			if mErr := s.ensureSchema(); mErr == nil {
				existing, err = s.versionRepo.GetByProjectID(projectID)
			}
		}
		if err != nil {
			return nil, &apperrors.UpstreamUnavailableError{Upstream: "version store", Err: err}
		}
	}

	names := make([]string, 0, len(existing))
	for _, v := range existing {
		names = append(names, v.SheetName)
	}
	sheetName := generateVersionName(names, s.now().UTC().Format("2006-01-02"))

	now := s.now()
	version := &models.ProjectVersion{
		ProjectID:      projectID,
		SheetName:      sheetName,
		Active:         true,
		Status:         models.VersionStatusInProgress,
		ItemsCount:     len(grid.Rows),
		LocationsCount: len(grid.Columns),
		GeneratedAt:    &now,
		Grid:           snapshot,
	}
	if err := s.versionRepo.Upsert(version); err != nil {
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "version store", Err: err}
	}
	if err := s.versionRepo.SetActive(projectID, sheetName); err != nil {
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "version store", Err: err}
	}

	return &GenerateResponse{
		Success:        true,
		SheetName:      sheetName,
		ItemsCount:     len(grid.Rows),
		LocationsCount: len(grid.Columns),
		RowCount:       len(grid.Rows),
		Rows:           grid.Rows,
		Storage:        "database",
	}, nil
}
