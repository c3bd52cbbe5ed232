package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"estimating-portal-backend/internal/config"
	"estimating-portal-backend/internal/database/models"
	apperrors "estimating-portal-backend/internal/errors"
	"estimating-portal-backend/internal/logger"
	"estimating-portal-backend/internal/repository"
	"estimating-portal-backend/internal/sheets"
	"estimating-portal-backend/internal/takeoff"

	"github.com/go-playground/validator/v10"
)

// Setup-tab layout. Rows 74-80 hold the version tracker, one row per
// version tab: A=active flag, B=tab name, C=creation date, D=items count,
// E=locations count, F=status.
const (
	SetupTabName   = "Setup"
	LibraryTabName = "Library"

	trackerDataStart = 74
	trackerMaxRow    = 80

	// Location quantity cells of a version tab, scanned by the has-data
	// check before deletion.
	dataCheckRange = "G4:M67"

	// Tab in the template workbook that seeds every new version.
	templateTabName = "DATE"

	// Default bid type written to rows eligible to carry one.
	bidTypeBase = "BASE"

	// Last grid row the bid-type classifier scans.
	classifyEndRow = 75
)

// VersionService manages the version tabs of a project workbook and the
// Setup-tab tracker that indexes them. The tracker is authoritative; every
// mutation is mirrored to the relational audit store best-effort.
//
// Mutations serialize per project so concurrent activations cannot leave
// two tracker rows flagged active.
type VersionService struct {
	projectRepo repository.ProjectRepositoryInterface
	versionRepo repository.ProjectVersionRepositoryInterface
	client      sheets.Client
	cfg         *config.Config
	validator   *validator.Validate
	logger      *logger.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	// now is swappable in tests for deterministic version names
	now func() time.Time
}

// Ensure VersionService implements VersionServiceInterface
var _ VersionServiceInterface = (*VersionService)(nil)

// NewVersionService creates a new VersionService
func NewVersionService(
	projectRepo repository.ProjectRepositoryInterface,
	versionRepo repository.ProjectVersionRepositoryInterface,
	client sheets.Client,
	cfg *config.Config,
	validator *validator.Validate,
) *VersionService {
	return &VersionService{
		projectRepo: projectRepo,
		versionRepo: versionRepo,
		client:      client,
		cfg:         cfg,
		validator:   validator,
		logger:      logger.New().WithField("service", "versions"),
		locks:       make(map[string]*sync.Mutex),
		now:         time.Now,
	}
}

// VersionInfo is one tracker row, enriched with whether the tab actually
// still exists in the workbook.
type VersionInfo struct {
	Row            int    `json:"row"`
	Active         bool   `json:"active"`
	SheetName      string `json:"sheetName"`
	Created        string `json:"created"`
	ItemsCount     int    `json:"itemsCount"`
	LocationsCount int    `json:"locationsCount"`
	Status         string `json:"status"`
	ExistsAsTab    bool   `json:"existsAsTab"`
}

// VersionListResponse lists the tracked versions of a project
type VersionListResponse struct {
	Versions   []VersionInfo `json:"versions"`
	TotalTabs  int           `json:"totalTabs"`
	NoSetupTab bool          `json:"noSetupTab,omitempty"`
}

// VersionUpdateRequest updates the active flag and/or status of a version
type VersionUpdateRequest struct {
	SheetName string `json:"sheetName" binding:"required" validate:"required,max=100"`
	SetActive bool   `json:"setActive"`
	Status    string `json:"status" validate:"omitempty,max=50"`
}

// VersionUpdateResponse reports which updates were applied
type VersionUpdateResponse struct {
	Success       bool   `json:"success"`
	SheetName     string `json:"sheetName"`
	ActiveSet     bool   `json:"activeSet,omitempty"`
	StatusUpdated string `json:"statusUpdated,omitempty"`
}

// VersionCopyResponse reports the tab created by a copy
type VersionCopyResponse struct {
	Success      bool   `json:"success"`
	NewSheetName string `json:"newSheetName"`
	NewSheetID   int64  `json:"newSheetId"`
	CopiedFrom   string `json:"copiedFrom"`
}

// BidClassifyResponse reports the row classification applied to a version tab
type BidClassifyResponse struct {
	SheetName      string `json:"sheetName"`
	BundleTotals   int    `json:"bundleTotals"`
	BundledMembers int    `json:"bundledMembers"`
	Standalone     int    `json:"standalone"`
}

// generateVersionName returns a unique dated tab name: YYYY-MM-DD, with a
// -v2, -v3 suffix when that date is already taken.
func generateVersionName(existingNames []string, date string) string {
	taken := make(map[string]bool, len(existingNames))
	for _, name := range existingNames {
		taken[name] = true
	}

	if !taken[date] {
		return date
	}
	for suffix := 2; ; suffix++ {
		candidate := fmt.Sprintf("%s-v%d", date, suffix)
		if !taken[candidate] {
			return candidate
		}
	}
}

// isProtectedTab reports whether a tab may never be deleted
func isProtectedTab(sheetName string) bool {
	lower := strings.ToLower(sheetName)
	return lower == strings.ToLower(SetupTabName) || lower == strings.ToLower(LibraryTabName)
}

// ListVersions reads the Setup-tab tracker and cross-references it with
// the tabs that actually exist.
func (s *VersionService) ListVersions(ctx context.Context, projectID string) (*VersionListResponse, error) {
	spreadsheetID, err := s.resolveSpreadsheetID(projectID)
	if err != nil {
		return nil, err
	}

	readCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsReadTimeout())
	defer cancel()

	tabs, err := s.client.ListTabs(readCtx, spreadsheetID)
	if err != nil {
		if sheets.IsNotFound(err) {
			return nil, apperrors.ErrSpreadsheetNotFound
		}
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	tabNames := make(map[string]bool, len(tabs))
	hasSetup := false
	for _, tab := range tabs {
		tabNames[tab.Title] = true
		if tab.Title == SetupTabName {
			hasSetup = true
		}
	}

	// Workbooks predating the tracker have no Setup tab at all.
	if !hasSetup {
		return &VersionListResponse{Versions: []VersionInfo{}, TotalTabs: len(tabs), NoSetupTab: true}, nil
	}

	versions, err := s.readTracker(readCtx, spreadsheetID)
	if err != nil {
		return nil, err
	}
	for i := range versions {
		versions[i].ExistsAsTab = tabNames[versions[i].SheetName]
	}

	return &VersionListResponse{Versions: versions, TotalTabs: len(tabs)}, nil
}

// UpdateVersion sets the active version and/or updates its status label.
// Activation clears every other active flag in the same batch write, so a
// reader never observes two active versions.
func (s *VersionService) UpdateVersion(ctx context.Context, projectID string, req *VersionUpdateRequest) (*VersionUpdateResponse, error) {
	if req == nil || req.SheetName == "" {
		return nil, &apperrors.ValidationError{Field: "sheetName", Message: "sheetName is required"}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Field: "request", Message: err.Error()}
	}

	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	spreadsheetID, err := s.resolveSpreadsheetID(projectID)
	if err != nil {
		return nil, err
	}

	readCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsReadTimeout())
	versions, err := s.readTracker(readCtx, spreadsheetID)
	cancel()
	if err != nil {
		return nil, err
	}

	target := findVersion(versions, req.SheetName)
	if target == nil {
		return nil, apperrors.ErrVersionNotFound
	}

	resp := &VersionUpdateResponse{Success: true, SheetName: req.SheetName}
	batch := make(map[string][][]interface{})

	if req.SetActive {
		for _, v := range versions {
			shouldBeActive := v.SheetName == req.SheetName
			if v.Active != shouldBeActive {
				batch[fmt.Sprintf("'%s'!A%d", SetupTabName, v.Row)] = [][]interface{}{{shouldBeActive}}
			}
		}
		resp.ActiveSet = true
	}
	if req.Status != "" {
		batch[fmt.Sprintf("'%s'!F%d", SetupTabName, target.Row)] = [][]interface{}{{req.Status}}
		resp.StatusUpdated = req.Status
	}

	if len(batch) > 0 {
		writeCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsWriteTimeout())
		defer cancel()
		if err := s.client.BatchUpdateValues(writeCtx, spreadsheetID, batch); err != nil {
			return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
		}
	}

	s.syncUpdate(projectID, req)
	return resp, nil
}

// CopyVersion duplicates an existing version tab under a fresh dated name,
// preserving data, formulas and formatting, then registers and activates
// the copy in the tracker.
func (s *VersionService) CopyVersion(ctx context.Context, projectID, sourceSheetName string) (*VersionCopyResponse, error) {
	if sourceSheetName == "" {
		return nil, &apperrors.ValidationError{Field: "sourceSheetName", Message: "sourceSheetName is required"}
	}

	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	spreadsheetID, err := s.resolveSpreadsheetID(projectID)
	if err != nil {
		return nil, err
	}

	readCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsReadTimeout())
	tabs, err := s.client.ListTabs(readCtx, spreadsheetID)
	cancel()
	if err != nil {
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	var source *sheets.Tab
	titles := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		titles = append(titles, tab.Title)
		if tab.Title == sourceSheetName {
			source = &tabs[i]
		}
	}
	if source == nil {
		return nil, apperrors.ErrVersionNotFound
	}

	newName := generateVersionName(titles, s.today())

	writeCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsWriteTimeout())
	defer cancel()

	newSheetID, err := s.client.CopyTab(writeCtx, spreadsheetID, source.SheetID, spreadsheetID, newName)
	if err != nil {
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	// Copies start empty of takeoff progress; counts are filled in when
	// the copy is generated over.
	if err := s.addTrackerEntry(writeCtx, spreadsheetID, newName, 0, 0); err != nil {
		return nil, err
	}

	s.syncCopy(projectID, newName, sourceSheetName, newSheetID)

	return &VersionCopyResponse{Success: true, NewSheetName: newName, NewSheetID: newSheetID, CopiedFrom: sourceSheetName}, nil
}

// DeleteVersion removes a version tab and its tracker row. Setup and
// Library are never deletable. A version still holding quantity data is
// only deleted with force, and the last version tab is always kept.
func (s *VersionService) DeleteVersion(ctx context.Context, projectID, sheetName string, force bool) error {
	if sheetName == "" {
		return &apperrors.ValidationError{Field: "sheet", Message: "sheet query parameter is required"}
	}
	if isProtectedTab(sheetName) {
		return apperrors.ErrProtectedTab
	}

	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	spreadsheetID, err := s.resolveSpreadsheetID(projectID)
	if err != nil {
		return err
	}

	readCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsReadTimeout())
	defer cancel()

	if !force {
		hasData, err := s.versionHasData(readCtx, spreadsheetID, sheetName)
		if err != nil {
			return err
		}
		if hasData {
			return apperrors.ErrVersionHasData
		}
	}

	tabs, err := s.client.ListTabs(readCtx, spreadsheetID)
	if err != nil {
		return &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	var target *sheets.Tab
	versionTabCount := 0
	for i, tab := range tabs {
		if tab.Title == sheetName {
			target = &tabs[i]
		}
		if !isProtectedTab(tab.Title) {
			versionTabCount++
		}
	}
	if target == nil {
		return apperrors.ErrVersionNotFound
	}
	if versionTabCount <= 1 {
		return apperrors.ErrLastVersion
	}

	writeCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsWriteTimeout())
	defer cancel()

	if err := s.client.DeleteTab(writeCtx, spreadsheetID, target.SheetID); err != nil {
		return &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	// Blank the tracker row so the slot can be reused.
	if versions, err := s.readTracker(writeCtx, spreadsheetID); err == nil {
		if entry := findVersion(versions, sheetName); entry != nil {
			clearRange := fmt.Sprintf("'%s'!A%d:F%d", SetupTabName, entry.Row, entry.Row)
			blank := [][]interface{}{{"", "", "", "", "", ""}}
			if err := s.client.BatchUpdateValues(writeCtx, spreadsheetID, map[string][][]interface{}{clearRange: blank}); err != nil {
				s.logger.WithField("error", err.Error()).Warn("tracker row clear failed after tab deletion")
			}
		}
	}

	if err := s.versionRepo.Delete(projectID, sheetName); err != nil {
		s.logger.WithField("error", err.Error()).Warn("relational version delete sync failed")
	}
	return nil
}

// RegisterGeneratedVersion creates a fresh version tab from the template
// workbook, records it in the tracker as the active version, and mirrors
// the row relationally. Returns the new tab's name and sheet id.
func (s *VersionService) RegisterGeneratedVersion(ctx context.Context, projectID, spreadsheetID string, itemsCount, locationsCount int) (string, int64, error) {
	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	readCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsReadTimeout())
	templateTabs, err := s.client.ListTabs(readCtx, s.cfg.TakeoffTemplateID)
	cancel()
	if err != nil {
		return "", 0, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	var template *sheets.Tab
	for i, tab := range templateTabs {
		if tab.Title == templateTabName {
			template = &templateTabs[i]
		}
	}
	if template == nil {
		return "", 0, &apperrors.ConfigurationError{
			Message: fmt.Sprintf("template workbook has no %q tab", templateTabName),
		}
	}

	readCtx, cancel = context.WithTimeout(ctx, s.cfg.SheetsReadTimeout())
	tabs, err := s.client.ListTabs(readCtx, spreadsheetID)
	cancel()
	if err != nil {
		return "", 0, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}
	titles := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		titles = append(titles, tab.Title)
	}
	newName := generateVersionName(titles, s.today())

	writeCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsWriteTimeout())
	defer cancel()

	newSheetID, err := s.client.CopyTab(writeCtx, s.cfg.TakeoffTemplateID, template.SheetID, spreadsheetID, newName)
	if err != nil {
		return "", 0, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	if err := s.addTrackerEntry(writeCtx, spreadsheetID, newName, itemsCount, locationsCount); err != nil {
		return "", 0, err
	}

	now := s.now()
	version := &models.ProjectVersion{
		ProjectID:      projectID,
		SheetName:      newName,
		SheetID:        newSheetID,
		Active:         true,
		Status:         models.VersionStatusInProgress,
		ItemsCount:     itemsCount,
		LocationsCount: locationsCount,
		GeneratedAt:    &now,
	}
	if err := s.versionRepo.Upsert(version); err != nil {
		s.logger.WithField("error", err.Error()).Warn("relational version sync failed")
	} else if err := s.versionRepo.SetActive(projectID, newName); err != nil {
		s.logger.WithField("error", err.Error()).Warn("relational active sync failed")
	}

	return newName, newSheetID, nil
}

// ReclassifyBidTypes re-derives the bid-type column of a version tab from
// its totals-column formulas. A row whose total cell sums a span of other
// rows is a bundle total; rows inside any such span are bundled members and
// have their bid type cleared, since the bundle total already prices them.
// Bundle totals and standalone item rows are reset to the default bid type.
func (s *VersionService) ReclassifyBidTypes(ctx context.Context, projectID, sheetName string) (*BidClassifyResponse, error) {
	if sheetName == "" {
		return nil, &apperrors.ValidationError{Field: "sheetName", Message: "sheetName is required"}
	}
	if isProtectedTab(sheetName) {
		return nil, apperrors.ErrProtectedTab
	}

	lock := s.projectLock(projectID)
	lock.Lock()
	defer lock.Unlock()

	spreadsheetID, err := s.resolveSpreadsheetID(projectID)
	if err != nil {
		return nil, err
	}

	readCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsReadTimeout())
	defer cancel()

	headerRange := fmt.Sprintf("'%s'!A%d:Z%d", sheetName, takeoff.HeaderRow, takeoff.HeaderRow)
	header, err := s.client.ReadRange(readCtx, spreadsheetID, headerRange)
	if err != nil {
		if sheets.IsNotFound(err) {
			return nil, apperrors.ErrVersionNotFound
		}
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}
	totalCol, bidTypeCol, err := locateGridColumns(header)
	if err != nil {
		return nil, err
	}

	nameRange := fmt.Sprintf("'%s'!B%d:B%d", sheetName, takeoff.DataStartRow, classifyEndRow)
	names, err := s.client.ReadRange(readCtx, spreadsheetID, nameRange)
	if err != nil {
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	formulaRange := fmt.Sprintf("'%s'!%s%d:%s%d", sheetName, totalCol, takeoff.DataStartRow, totalCol, classifyEndRow)
	formulas, err := s.client.ReadFormulas(readCtx, spreadsheetID, formulaRange)
	if err != nil {
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	rowCount := len(names)
	if len(formulas) > rowCount {
		rowCount = len(formulas)
	}
	rows := make([]takeoff.SheetRow, 0, rowCount)
	for i := 0; i < rowCount; i++ {
		var name, formula string
		if i < len(names) {
			name = strings.TrimSpace(cellAt(names[i], 0))
		}
		if i < len(formulas) {
			formula = strings.TrimSpace(cellAt(formulas[i], 0))
		}
		rows = append(rows, takeoff.SheetRow{
			Row:          takeoff.DataStartRow + i,
			ScopeCode:    name,
			TotalFormula: formula,
		})
	}

	classification := takeoff.ClassifyRows(rows)

	resp := &BidClassifyResponse{SheetName: sheetName}
	batch := make(map[string][][]interface{})
	for row, class := range classification.Classes {
		cell := fmt.Sprintf("'%s'!%s%d", sheetName, bidTypeCol, row)
		if takeoff.BidTypeEligible(class) {
			batch[cell] = [][]interface{}{{bidTypeBase}}
		} else {
			batch[cell] = [][]interface{}{{""}}
		}
		switch class {
		case takeoff.RowClassBundleTotal:
			resp.BundleTotals++
		case takeoff.RowClassBundledMember:
			resp.BundledMembers++
		case takeoff.RowClassStandalone:
			resp.Standalone++
		}
	}

	if len(batch) > 0 {
		writeCtx, cancel := context.WithTimeout(ctx, s.cfg.SheetsWriteTimeout())
		defer cancel()
		if err := s.client.BatchUpdateValues(writeCtx, spreadsheetID, batch); err != nil {
			return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"project_id": projectID,
		"sheet":      sheetName,
		"bundles":    resp.BundleTotals,
		"members":    resp.BundledMembers,
		"standalone": resp.Standalone,
	}).Info("bid types reclassified")

	return resp, nil
}

// ------------------------------
// Internals
// ------------------------------

func (s *VersionService) projectLock(projectID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[projectID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[projectID] = lock
	}
	return lock
}

func (s *VersionService) today() string {
	return s.now().UTC().Format("2006-01-02")
}

func (s *VersionService) resolveSpreadsheetID(projectID string) (string, error) {
	project, err := s.projectRepo.GetByProjectID(projectID)
	if err != nil {
		return "", apperrors.ErrProjectNotFound
	}
	if project.SpreadsheetID == "" {
		return "", apperrors.ErrSpreadsheetNotFound
	}
	return project.SpreadsheetID, nil
}

// readTracker parses the tracker rows. Rows without a tab name are free
// slots and skipped.
func (s *VersionService) readTracker(ctx context.Context, spreadsheetID string) ([]VersionInfo, error) {
	trackerRange := fmt.Sprintf("'%s'!A%d:F%d", SetupTabName, trackerDataStart, trackerMaxRow)
	values, err := s.client.ReadRange(ctx, spreadsheetID, trackerRange)
	if err != nil {
		if sheets.IsNotFound(err) {
			return nil, apperrors.ErrSetupTabNotFound
		}
		return nil, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	var versions []VersionInfo
	for i, row := range values {
		sheetName := strings.TrimSpace(cellAt(row, 1))
		if sheetName == "" {
			continue
		}
		versions = append(versions, VersionInfo{
			Row:            trackerDataStart + i,
			Active:         parseBoolCell(cellAt(row, 0)),
			SheetName:      sheetName,
			Created:        strings.TrimSpace(cellAt(row, 2)),
			ItemsCount:     parseIntCell(cellAt(row, 3)),
			LocationsCount: parseIntCell(cellAt(row, 4)),
			Status:         strings.TrimSpace(cellAt(row, 5)),
		})
	}
	return versions, nil
}

// addTrackerEntry writes a new tracker row flagged active and clears every
// other active flag, all in one batch so the single-active rule holds at
// every point a reader could observe.
func (s *VersionService) addTrackerEntry(ctx context.Context, spreadsheetID, sheetName string, itemsCount, locationsCount int) error {
	versions, err := s.readTracker(ctx, spreadsheetID)
	if err != nil {
		return err
	}

	batch := make(map[string][][]interface{})
	usedRows := make(map[int]bool, len(versions))
	for _, v := range versions {
		usedRows[v.Row] = true
		if v.Active {
			batch[fmt.Sprintf("'%s'!A%d", SetupTabName, v.Row)] = [][]interface{}{{false}}
		}
	}

	newRow := trackerDataStart
	for usedRows[newRow] && newRow <= trackerMaxRow {
		newRow++
	}
	if newRow > trackerMaxRow {
		// Tracker full. Reclaim the last slot rather than failing the
		// generation outright.
		s.logger.WithField("spreadsheet_id", spreadsheetID).Warn("version tracker full, overwriting last row")
		newRow = trackerMaxRow
	}

	entryRange := fmt.Sprintf("'%s'!A%d:F%d", SetupTabName, newRow, newRow)
	batch[entryRange] = [][]interface{}{{
		true, sheetName, s.today(), itemsCount, locationsCount, string(models.VersionStatusInProgress),
	}}

	if err := s.client.BatchUpdateValues(ctx, spreadsheetID, batch); err != nil {
		return &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}
	return nil
}

// versionHasData scans the location quantity cells of a version tab for
// any non-empty, non-zero value.
func (s *VersionService) versionHasData(ctx context.Context, spreadsheetID, sheetName string) (bool, error) {
	checkRange := fmt.Sprintf("'%s'!%s", sheetName, dataCheckRange)
	values, err := s.client.ReadRange(ctx, spreadsheetID, checkRange)
	if err != nil {
		if sheets.IsNotFound(err) {
			return false, apperrors.ErrVersionNotFound
		}
		return false, &apperrors.UpstreamUnavailableError{Upstream: "sheets", Err: err}
	}

	for _, row := range values {
		for _, cell := range row {
			val := strings.TrimSpace(fmt.Sprintf("%v", cell))
			if val != "" && val != "0" {
				return true, nil
			}
		}
	}
	return false, nil
}

func (s *VersionService) syncUpdate(projectID string, req *VersionUpdateRequest) {
	if req.SetActive {
		if err := s.versionRepo.SetActive(projectID, req.SheetName); err != nil {
			s.logger.WithField("error", err.Error()).Warn("relational active sync failed")
		}
	}
	if req.Status != "" {
		if err := s.versionRepo.SetStatus(projectID, req.SheetName, models.VersionStatus(req.Status)); err != nil {
			s.logger.WithField("error", err.Error()).Warn("relational status sync failed")
		}
	}
}

func (s *VersionService) syncCopy(projectID, sheetName, copiedFrom string, sheetID int64) {
	version := &models.ProjectVersion{
		ProjectID:  projectID,
		SheetName:  sheetName,
		SheetID:    sheetID,
		Active:     true,
		Status:     models.VersionStatusInProgress,
		CopiedFrom: copiedFrom,
	}
	if err := s.versionRepo.Upsert(version); err != nil {
		s.logger.WithField("error", err.Error()).Warn("relational copy sync failed")
		return
	}
	if err := s.versionRepo.SetActive(projectID, sheetName); err != nil {
		s.logger.WithField("error", err.Error()).Warn("relational active sync failed")
	}
}

// locateGridColumns finds the totals column and the bid-type column from a
// grid's header row. The bid-type column sits directly after the Cost
// column, past the generated region.
func locateGridColumns(header [][]interface{}) (totalCol, bidTypeCol string, err error) {
	if len(header) == 0 {
		return "", "", &apperrors.ValidationError{Field: "sheetName", Message: "tab has no generated grid header"}
	}
	totalIndex, costIndex := -1, -1
	for i := range header[0] {
		switch strings.TrimSpace(cellAt(header[0], i)) {
		case "Total":
			totalIndex = i
		case "Cost":
			costIndex = i
		}
	}
	if totalIndex < 0 || costIndex < 0 {
		return "", "", &apperrors.ValidationError{Field: "sheetName", Message: "tab has no generated grid header"}
	}
	return takeoff.ColumnLetter(totalIndex), takeoff.ColumnLetter(costIndex + 1), nil
}

func findVersion(versions []VersionInfo, sheetName string) *VersionInfo {
	for i := range versions {
		if versions[i].SheetName == sheetName {
			return &versions[i]
		}
	}
	return nil
}

func cellAt(row []interface{}, index int) string {
	if index >= len(row) || row[index] == nil {
		return ""
	}
	if s, ok := row[index].(string); ok {
		return s
	}
	return fmt.Sprintf("%v", row[index])
}

func parseBoolCell(value string) bool {
	return value == "true" || value == "TRUE"
}

func parseIntCell(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}
