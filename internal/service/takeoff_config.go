package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"estimating-portal-backend/internal/config"
	"estimating-portal-backend/internal/database/models"
	apperrors "estimating-portal-backend/internal/errors"
	"estimating-portal-backend/internal/logger"
	"estimating-portal-backend/internal/repository"
	"estimating-portal-backend/internal/sheets"
	"estimating-portal-backend/internal/takeoff"

	"gorm.io/gorm"
)

// ConfigCell is the Setup-tab cell holding the config document as JSON.
// Keeping it on the Setup tab means the config travels with the workbook.
const ConfigCell = "'Setup'!Z1"

// ConfigService persists takeoff configurations. The workbook is the
// primary store; the relational copy is written best-effort on every save
// and becomes the read source when the document service is unreachable.
type ConfigService struct {
	projectRepo  repository.ProjectRepositoryInterface
	configRepo   repository.TakeoffConfigRepositoryInterface
	client       sheets.Client
	cfg          *config.Config
	ensureSchema func() error
	logger       *logger.Logger
}

// Ensure ConfigService implements ConfigServiceInterface
var _ ConfigServiceInterface = (*ConfigService)(nil)

// NewConfigService creates a new ConfigService. ensureSchema provisions
// missing fallback tables on demand and may be nil in tests.
func NewConfigService(
	projectRepo repository.ProjectRepositoryInterface,
	configRepo repository.TakeoffConfigRepositoryInterface,
	client sheets.Client,
	cfg *config.Config,
	ensureSchema func() error,
) *ConfigService {
	return &ConfigService{
		projectRepo:  projectRepo,
		configRepo:   configRepo,
		client:       client,
		cfg:          cfg,
		ensureSchema: ensureSchema,
		logger:       logger.New().WithField("service", "takeoff_config"),
	}
}

// ConfigResponse reports a config document and where it came from. Exists
// is false when the project has never saved one and the preset defaults are
// being served. Success and Message are set on the save path only.
type ConfigResponse struct {
	Success bool            `json:"success,omitempty"`
	Exists  bool            `json:"exists"`
	Config  *takeoff.Config `json:"config"`
	Source  string          `json:"source"`
	Message string          `json:"message,omitempty"`
}

// GetConfig returns the project's configuration. Read order: workbook cell,
// then relational copy, then built-in defaults. A missing document is not
// an error; only a failure of both stores is.
func (s *ConfigService) GetConfig(ctx context.Context, projectID string) (*ConfigResponse, error) {
	log := s.logger.WithField("project_id", projectID)

	spreadsheetID := s.spreadsheetID(projectID)
	if spreadsheetID != "" {
		readCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsReadTimeout())
		defer cancel()

		values, err := s.client.ReadRange(readCtx, spreadsheetID, ConfigCell)
		switch {
		case err == nil:
			doc := cellString(values)
			if doc == "" {
				// Workbook exists but nothing saved yet.
				return defaultConfigResponse(), nil
			}
			parsed, perr := decodeConfigDocument([]byte(doc))
			if perr != nil {
				return nil, fmt.Errorf("stored config is corrupt: %w", perr)
			}
			return &ConfigResponse{Exists: true, Config: parsed, Source: string(models.ConfigSourceSheet)}, nil

		case sheets.IsNotFound(err):
			return defaultConfigResponse(), nil

		default:
			log.WithField("error", err.Error()).Warn("config read from workbook failed, trying relational copy")
		}
	}

	row, err := s.configRepo.GetByProjectID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultConfigResponse(), nil
		}
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "config store", Err: err}
	}

	parsed, perr := decodeConfigDocument(row.Document)
	if perr != nil {
		return nil, fmt.Errorf("stored config is corrupt: %w", perr)
	}
	return &ConfigResponse{Exists: true, Config: parsed, Source: string(models.ConfigSourceDatabase)}, nil
}

// SaveConfig validates and persists a configuration document. The raw
// decoded body is validated before any typed decoding so shape errors come
// back as field-level validation messages. The workbook write is primary;
// the relational copy is synced best-effort, and carries the save alone
// when the workbook is unreachable.
func (s *ConfigService) SaveConfig(ctx context.Context, projectID string, raw map[string]interface{}) (*ConfigResponse, error) {
	log := s.logger.WithField("project_id", projectID)

	if verr := takeoff.ValidateConfig(raw); verr != nil {
		return nil, verr
	}

	doc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	parsed, err := decodeConfigDocument(doc)
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "config", Message: err.Error()}
	}

	source := models.ConfigSourceDatabase
	spreadsheetID := s.spreadsheetID(projectID)
	if spreadsheetID != "" {
		writeCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsWriteTimeout())
		defer cancel()

		err := s.client.UpdateRange(writeCtx, spreadsheetID, ConfigCell, [][]interface{}{{string(doc)}})
		if err == nil {
			source = models.ConfigSourceSheet
		} else {
			log.WithField("error", err.Error()).Warn("config write to workbook failed, saving relational copy only")
		}
	}

	row := &models.TakeoffConfig{ProjectID: projectID, Document: doc, Source: source}
	if err := s.upsertWithRetry(row); err != nil {
		if source == models.ConfigSourceSheet {
			// Primary write landed; losing the copy is not fatal.
			log.WithField("error", err.Error()).Warn("relational config sync failed")
		} else {
			return nil, &apperrors.UpstreamUnavailableError{Upstream: "config store", Err: err}
		}
	}

	return &ConfigResponse{
		Success: true,
		Exists:  true,
		Config:  parsed,
		Source:  string(source),
		Message: "configuration saved",
	}, nil
}

// DeleteConfig removes the stored configuration from both stores. The
// workbook clear is best-effort; the relational delete must succeed.
func (s *ConfigService) DeleteConfig(ctx context.Context, projectID string) error {
	log := s.logger.WithField("project_id", projectID)

	if spreadsheetID := s.spreadsheetID(projectID); spreadsheetID != "" {
		writeCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsWriteTimeout())
		defer cancel()

		if err := s.client.ClearRange(writeCtx, spreadsheetID, ConfigCell); err != nil && !sheets.IsNotFound(err) {
			log.WithField("error", err.Error()).Warn("config clear on workbook failed")
		}
	}

	if err := s.configRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete config: %w", err)
	}
	return nil
}

// spreadsheetID resolves the workbook for a project, empty when the project
// is unknown or not yet provisioned.
func (s *ConfigService) spreadsheetID(projectID string) string {
	project, err := s.projectRepo.GetByProjectID(projectID)
	if err != nil {
		return ""
	}
	return project.SpreadsheetID
}

func (s *ConfigService) upsertWithRetry(row *models.TakeoffConfig) error {
	err := s.configRepo.Upsert(row)
	if err == nil || s.ensureSchema == nil {
		return err
	}
	// Fresh databases may lack the fallback tables; provision and retry once.
	if mErr := s.ensureSchema(); mErr != nil {
		return err
	}
	return s.configRepo.Upsert(row)
}

func decodeConfigDocument(doc []byte) (*takeoff.Config, error) {
	var parsed takeoff.Config
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, err
	}
	if parsed.RateOverrides == nil {
		parsed.RateOverrides = map[string]float64{}
	}
	return &parsed, nil
}

func defaultConfigResponse() *ConfigResponse {
	return &ConfigResponse{
		Exists: false,
		Config: takeoff.DefaultConfig(),
		Source: string(models.ConfigSourceDefault),
	}
}

// cellString extracts the first cell of a read result as a trimmed string
func cellString(values [][]interface{}) string {
	if len(values) == 0 || len(values[0]) == 0 {
		return ""
	}
	if s, ok := values[0][0].(string); ok {
		return s
	}
	return fmt.Sprintf("%v", values[0][0])
}
