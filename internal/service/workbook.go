package service

import (
	"context"
	"fmt"

	"estimating-portal-backend/internal/config"
	apperrors "estimating-portal-backend/internal/errors"
	"estimating-portal-backend/internal/logger"
	"estimating-portal-backend/internal/repository"
	"estimating-portal-backend/internal/sheets"
)

// WorkbookService provisions the per-project takeoff workbook by cloning
// the template spreadsheet into the shared drive folder.
type WorkbookService struct {
	projectRepo repository.ProjectRepositoryInterface
	client      sheets.Client
	cfg         *config.Config
	logger      *logger.Logger
}

// Ensure WorkbookService implements WorkbookServiceInterface
var _ WorkbookServiceInterface = (*WorkbookService)(nil)

// NewWorkbookService creates a new WorkbookService
func NewWorkbookService(projectRepo repository.ProjectRepositoryInterface, client sheets.Client, cfg *config.Config) *WorkbookService {
	return &WorkbookService{
		projectRepo: projectRepo,
		client:      client,
		cfg:         cfg,
		logger:      logger.New().WithField("service", "workbook"),
	}
}

// WorkbookResponse describes the workbook linked to a project
type WorkbookResponse struct {
	ProjectID     string `json:"projectId"`
	SpreadsheetID string `json:"spreadsheetId"`
	Created       bool   `json:"created"`
}

// EnsureWorkbook returns the project's workbook, cloning it from the
// template on first use. Calling it again for a linked project is a no-op
// that reports the existing spreadsheet.
func (s *WorkbookService) EnsureWorkbook(ctx context.Context, projectID, projectName string) (*WorkbookResponse, error) {
	project, err := s.projectRepo.GetByProjectID(projectID)
	if err != nil {
		return nil, apperrors.ErrProjectNotFound
	}

	if project.SpreadsheetID != "" {
		return &WorkbookResponse{
			ProjectID:     projectID,
			SpreadsheetID: project.SpreadsheetID,
			Created:       false,
		}, nil
	}

	if s.cfg.TakeoffTemplateID == "" {
		return nil, &apperrors.ConfigurationError{Message: "takeoff template spreadsheet is not configured"}
	}

	title := projectName
	if title == "" {
		title = project.Name
	}
	title = fmt.Sprintf("%s - Takeoff", title)

	copyCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsWriteTimeout())
	defer cancel()

	spreadsheetID, err := s.client.CopySpreadsheet(copyCtx, s.cfg.TakeoffTemplateID, title, s.cfg.WorkbookFolderID)
	if err != nil {
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "drive", Err: err}
	}

	if err := s.projectRepo.SetSpreadsheetID(projectID, spreadsheetID); err != nil {
		// The workbook exists either way; losing the link is worth a log
		// line but re-running EnsureWorkbook would orphan the copy.
		s.logger.WithFields(map[string]interface{}{
			"project_id":     projectID,
			"spreadsheet_id": spreadsheetID,
			"error":          err.Error(),
		}).Error("failed to persist workbook link")
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"project_id":     projectID,
		"spreadsheet_id": spreadsheetID,
	}).Info("workbook created from template")

	return &WorkbookResponse{
		ProjectID:     projectID,
		SpreadsheetID: spreadsheetID,
		Created:       true,
	}, nil
}
