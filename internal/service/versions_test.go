package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"estimating-portal-backend/internal/config"
	"estimating-portal-backend/internal/database/models"
	apperrors "estimating-portal-backend/internal/errors"
	"estimating-portal-backend/internal/mocks"
	"estimating-portal-backend/internal/service"
	"estimating-portal-backend/internal/sheets"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testProjectID     = "proj-123"
	testSpreadsheetID = "sheet-abc"
	testTemplateID    = "tmpl-456"
)

type VersionServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockVersionRepo *mocks.MockProjectVersionRepositoryInterface
	mockSheets      *mocks.MockClient
	versionService  *service.VersionService
}

func (suite *VersionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockVersionRepo = mocks.NewMockProjectVersionRepositoryInterface(suite.ctrl)
	suite.mockSheets = mocks.NewMockClient(suite.ctrl)

	cfg := &config.Config{
		SheetsReadTimeoutSec:  5,
		SheetsWriteTimeoutSec: 5,
		GenerateTimeoutSec:    10,
		TakeoffTemplateID:     testTemplateID,
	}
	suite.versionService = service.NewVersionService(
		suite.mockProjectRepo, suite.mockVersionRepo, suite.mockSheets, cfg, validator.New(),
	)
}

func (suite *VersionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VersionServiceTestSuite) expectProject() {
	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.Project{
		ProjectID:     testProjectID,
		Name:          "Test Project",
		SpreadsheetID: testSpreadsheetID,
	}, nil)
}

func trackerRange() string {
	return "'Setup'!A74:F80"
}

func (suite *VersionServiceTestSuite) TestListVersions_Success() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
		{SheetID: 2, Title: "Library"},
		{SheetID: 3, Title: "2025-01-15"},
	}, nil)
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{
		{"TRUE", "2025-01-15", "2025-01-15", "10", "3", "In Progress"},
		{"false", "2025-01-10", "2025-01-10", "8", "3", "Final"},
	}, nil)

	resp, err := suite.versionService.ListVersions(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, resp.TotalTabs)
	assert.False(suite.T(), resp.NoSetupTab)
	assert.Len(suite.T(), resp.Versions, 2)

	assert.Equal(suite.T(), "2025-01-15", resp.Versions[0].SheetName)
	assert.True(suite.T(), resp.Versions[0].Active)
	assert.Equal(suite.T(), 10, resp.Versions[0].ItemsCount)
	assert.Equal(suite.T(), 3, resp.Versions[0].LocationsCount)
	assert.True(suite.T(), resp.Versions[0].ExistsAsTab)
	assert.Equal(suite.T(), 74, resp.Versions[0].Row)

	// Tracked but the tab itself is gone
	assert.False(suite.T(), resp.Versions[1].Active)
	assert.False(suite.T(), resp.Versions[1].ExistsAsTab)
}

func (suite *VersionServiceTestSuite) TestListVersions_SkipsEmptyTrackerRows() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
		{SheetID: 3, Title: "2025-01-15"},
	}, nil)
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{
		{"TRUE", "2025-01-15", "2025-01-15", "10", "3", "In Progress"},
		{"", "", "", "", "", ""},
		{"false", "2025-01-20", "2025-01-20", "4", "2", "In Progress"},
	}, nil)

	resp, err := suite.versionService.ListVersions(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Versions, 2)
	// Row positions survive the gap so writes target the right slots
	assert.Equal(suite.T(), 74, resp.Versions[0].Row)
	assert.Equal(suite.T(), 76, resp.Versions[1].Row)
}

func (suite *VersionServiceTestSuite) TestListVersions_NoSetupTab() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 3, Title: "Sheet1"},
	}, nil)

	resp, err := suite.versionService.ListVersions(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.NoSetupTab)
	assert.Empty(suite.T(), resp.Versions)
	assert.Equal(suite.T(), 1, resp.TotalTabs)
}

func (suite *VersionServiceTestSuite) TestListVersions_ProjectNotFound() {
	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(nil, errors.New("record not found"))

	resp, err := suite.versionService.ListVersions(context.Background(), testProjectID)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *VersionServiceTestSuite) TestListVersions_NoWorkbookLinked() {
	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.Project{
		ProjectID: testProjectID,
	}, nil)

	_, err := suite.versionService.ListVersions(context.Background(), testProjectID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSpreadsheetNotFound)
}

func (suite *VersionServiceTestSuite) TestUpdateVersion_ActivateClearsOthers() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{
		{"TRUE", "2025-01-10", "2025-01-10", "8", "3", "Final"},
		{"false", "2025-01-15", "2025-01-15", "10", "3", "In Progress"},
	}, nil)
	suite.mockSheets.EXPECT().BatchUpdateValues(gomock.Any(), testSpreadsheetID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data map[string][][]interface{}) error {
			// Single batch flips the old version off and the new one on
			assert.Len(suite.T(), data, 2)
			assert.Equal(suite.T(), [][]interface{}{{false}}, data["'Setup'!A74"])
			assert.Equal(suite.T(), [][]interface{}{{true}}, data["'Setup'!A75"])
			return nil
		})
	suite.mockVersionRepo.EXPECT().SetActive(testProjectID, "2025-01-15").Return(nil)

	resp, err := suite.versionService.UpdateVersion(context.Background(), testProjectID, &service.VersionUpdateRequest{
		SheetName: "2025-01-15",
		SetActive: true,
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Success)
	assert.True(suite.T(), resp.ActiveSet)
	assert.Empty(suite.T(), resp.StatusUpdated)
}

func (suite *VersionServiceTestSuite) TestUpdateVersion_ActivateAlreadyActive_NoWrite() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{
		{"TRUE", "2025-01-15", "2025-01-15", "10", "3", "In Progress"},
	}, nil)
	// No BatchUpdateValues expected: nothing to flip
	suite.mockVersionRepo.EXPECT().SetActive(testProjectID, "2025-01-15").Return(nil)

	resp, err := suite.versionService.UpdateVersion(context.Background(), testProjectID, &service.VersionUpdateRequest{
		SheetName: "2025-01-15",
		SetActive: true,
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.ActiveSet)
}

func (suite *VersionServiceTestSuite) TestUpdateVersion_StatusOnly() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{
		{"TRUE", "2025-01-15", "2025-01-15", "10", "3", "In Progress"},
	}, nil)
	suite.mockSheets.EXPECT().BatchUpdateValues(gomock.Any(), testSpreadsheetID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data map[string][][]interface{}) error {
			assert.Len(suite.T(), data, 1)
			assert.Equal(suite.T(), [][]interface{}{{"Final"}}, data["'Setup'!F74"])
			return nil
		})
	suite.mockVersionRepo.EXPECT().SetStatus(testProjectID, "2025-01-15", models.VersionStatusFinal).Return(nil)

	resp, err := suite.versionService.UpdateVersion(context.Background(), testProjectID, &service.VersionUpdateRequest{
		SheetName: "2025-01-15",
		Status:    "Final",
	})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.ActiveSet)
	assert.Equal(suite.T(), "Final", resp.StatusUpdated)
}

func (suite *VersionServiceTestSuite) TestUpdateVersion_RelationalSyncFailureIsNonFatal() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{
		{"false", "2025-01-15", "2025-01-15", "10", "3", "In Progress"},
	}, nil)
	suite.mockSheets.EXPECT().BatchUpdateValues(gomock.Any(), testSpreadsheetID, gomock.Any()).Return(nil)
	suite.mockVersionRepo.EXPECT().SetActive(testProjectID, "2025-01-15").Return(errors.New("db down"))

	resp, err := suite.versionService.UpdateVersion(context.Background(), testProjectID, &service.VersionUpdateRequest{
		SheetName: "2025-01-15",
		SetActive: true,
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.ActiveSet)
}

func (suite *VersionServiceTestSuite) TestUpdateVersion_NotFound() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{
		{"TRUE", "2025-01-15", "2025-01-15", "10", "3", "In Progress"},
	}, nil)

	_, err := suite.versionService.UpdateVersion(context.Background(), testProjectID, &service.VersionUpdateRequest{
		SheetName: "2099-12-31",
		SetActive: true,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionNotFound)
}

func (suite *VersionServiceTestSuite) TestUpdateVersion_MissingSheetName() {
	_, err := suite.versionService.UpdateVersion(context.Background(), testProjectID, &service.VersionUpdateRequest{})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *VersionServiceTestSuite) TestCopyVersion_Success() {
	today := time.Now().UTC().Format("2006-01-02")

	suite.expectProject()
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
		{SheetID: 2, Title: "Library"},
		{SheetID: 3, Title: "2025-01-10"},
	}, nil)
	suite.mockSheets.EXPECT().CopyTab(gomock.Any(), testSpreadsheetID, int64(3), testSpreadsheetID, today).Return(int64(777), nil)
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{
		{"TRUE", "2025-01-10", "2025-01-10", "8", "3", "In Progress"},
	}, nil)
	suite.mockSheets.EXPECT().BatchUpdateValues(gomock.Any(), testSpreadsheetID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data map[string][][]interface{}) error {
			assert.Equal(suite.T(), [][]interface{}{{false}}, data["'Setup'!A74"])
			entry := data["'Setup'!A75:F75"]
			assert.Len(suite.T(), entry, 1)
			assert.Equal(suite.T(), true, entry[0][0])
			assert.Equal(suite.T(), today, entry[0][1])
			assert.Equal(suite.T(), 0, entry[0][3])
			assert.Equal(suite.T(), 0, entry[0][4])
			assert.Equal(suite.T(), "In Progress", entry[0][5])
			return nil
		})
	suite.mockVersionRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(v *models.ProjectVersion) error {
		// Provenance survives past the response: the audit row records
		// which version the copy came from.
		assert.Equal(suite.T(), "2025-01-10", v.CopiedFrom)
		assert.Equal(suite.T(), today, v.SheetName)
		assert.True(suite.T(), v.Active)
		return nil
	})
	suite.mockVersionRepo.EXPECT().SetActive(testProjectID, today).Return(nil)

	resp, err := suite.versionService.CopyVersion(context.Background(), testProjectID, "2025-01-10")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), today, resp.NewSheetName)
	assert.Equal(suite.T(), int64(777), resp.NewSheetID)
	assert.Equal(suite.T(), "2025-01-10", resp.CopiedFrom)
}

func (suite *VersionServiceTestSuite) TestCopyVersion_NameCollisionGetsSuffix() {
	today := time.Now().UTC().Format("2006-01-02")

	suite.expectProject()
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
		{SheetID: 3, Title: today},
	}, nil)
	suite.mockSheets.EXPECT().CopyTab(gomock.Any(), testSpreadsheetID, int64(3), testSpreadsheetID, today+"-v2").Return(int64(778), nil)
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{}, nil)
	suite.mockSheets.EXPECT().BatchUpdateValues(gomock.Any(), testSpreadsheetID, gomock.Any()).Return(nil)
	suite.mockVersionRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	suite.mockVersionRepo.EXPECT().SetActive(testProjectID, today+"-v2").Return(nil)

	resp, err := suite.versionService.CopyVersion(context.Background(), testProjectID, today)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), today+"-v2", resp.NewSheetName)
}

func (suite *VersionServiceTestSuite) TestCopyVersion_SourceMissing() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
	}, nil)

	_, err := suite.versionService.CopyVersion(context.Background(), testProjectID, "2025-01-10")

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionNotFound)
}

func (suite *VersionServiceTestSuite) TestCopyVersion_MissingSourceName() {
	_, err := suite.versionService.CopyVersion(context.Background(), testProjectID, "")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *VersionServiceTestSuite) TestDeleteVersion_ProtectedTab() {
	for _, name := range []string{"Setup", "setup", "SETUP", "Library", "library"} {
		err := suite.versionService.DeleteVersion(context.Background(), testProjectID, name, true)
		assert.ErrorIs(suite.T(), err, apperrors.ErrProtectedTab, "tab %q should be protected", name)
	}
}

func (suite *VersionServiceTestSuite) TestDeleteVersion_HasDataWithoutForce() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, "'2025-01-15'!G4:M67").Return([][]interface{}{
		{"", "0", ""},
		{"", "", "125.5"},
	}, nil)

	err := suite.versionService.DeleteVersion(context.Background(), testProjectID, "2025-01-15", false)

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionHasData)
}

func (suite *VersionServiceTestSuite) TestDeleteVersion_ZeroesDoNotCountAsData() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, "'2025-01-15'!G4:M67").Return([][]interface{}{
		{"0", "0", ""},
	}, nil)
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
		{SheetID: 3, Title: "2025-01-15"},
		{SheetID: 4, Title: "2025-01-20"},
	}, nil)
	suite.mockSheets.EXPECT().DeleteTab(gomock.Any(), testSpreadsheetID, int64(3)).Return(nil)
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{
		{"false", "2025-01-15", "2025-01-15", "10", "3", "In Progress"},
	}, nil)
	suite.mockSheets.EXPECT().BatchUpdateValues(gomock.Any(), testSpreadsheetID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data map[string][][]interface{}) error {
			assert.Equal(suite.T(), [][]interface{}{{"", "", "", "", "", ""}}, data["'Setup'!A74:F74"])
			return nil
		})
	suite.mockVersionRepo.EXPECT().Delete(testProjectID, "2025-01-15").Return(nil)

	err := suite.versionService.DeleteVersion(context.Background(), testProjectID, "2025-01-15", false)

	assert.NoError(suite.T(), err)
}

func (suite *VersionServiceTestSuite) TestDeleteVersion_ForceSkipsDataCheck() {
	suite.expectProject()
	// No data-range read expected with force
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
		{SheetID: 2, Title: "Library"},
		{SheetID: 3, Title: "2025-01-15"},
		{SheetID: 4, Title: "2025-01-20"},
	}, nil)
	suite.mockSheets.EXPECT().DeleteTab(gomock.Any(), testSpreadsheetID, int64(3)).Return(nil)
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{}, nil)
	suite.mockVersionRepo.EXPECT().Delete(testProjectID, "2025-01-15").Return(nil)

	err := suite.versionService.DeleteVersion(context.Background(), testProjectID, "2025-01-15", true)

	assert.NoError(suite.T(), err)
}

func (suite *VersionServiceTestSuite) TestDeleteVersion_LastVersionTab() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
		{SheetID: 2, Title: "Library"},
		{SheetID: 3, Title: "2025-01-15"},
	}, nil)

	err := suite.versionService.DeleteVersion(context.Background(), testProjectID, "2025-01-15", true)

	assert.ErrorIs(suite.T(), err, apperrors.ErrLastVersion)
}

func (suite *VersionServiceTestSuite) TestDeleteVersion_TabNotFound() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
		{SheetID: 3, Title: "2025-01-15"},
		{SheetID: 4, Title: "2025-01-20"},
	}, nil)

	err := suite.versionService.DeleteVersion(context.Background(), testProjectID, "2025-02-01", true)

	assert.ErrorIs(suite.T(), err, apperrors.ErrVersionNotFound)
}

func (suite *VersionServiceTestSuite) TestDeleteVersion_MissingSheetName() {
	err := suite.versionService.DeleteVersion(context.Background(), testProjectID, "", false)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *VersionServiceTestSuite) TestRegisterGeneratedVersion_Success() {
	today := time.Now().UTC().Format("2006-01-02")

	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testTemplateID).Return([]sheets.Tab{
		{SheetID: 9, Title: "DATE"},
	}, nil)
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
		{SheetID: 2, Title: "Library"},
	}, nil)
	suite.mockSheets.EXPECT().CopyTab(gomock.Any(), testTemplateID, int64(9), testSpreadsheetID, today).Return(int64(555), nil)
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return([][]interface{}{}, nil)
	suite.mockSheets.EXPECT().BatchUpdateValues(gomock.Any(), testSpreadsheetID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data map[string][][]interface{}) error {
			entry := data["'Setup'!A74:F74"]
			assert.Len(suite.T(), entry, 1)
			assert.Equal(suite.T(), true, entry[0][0])
			assert.Equal(suite.T(), today, entry[0][1])
			assert.Equal(suite.T(), 42, entry[0][3])
			assert.Equal(suite.T(), 5, entry[0][4])
			return nil
		})
	suite.mockVersionRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(v *models.ProjectVersion) error {
		assert.Equal(suite.T(), testProjectID, v.ProjectID)
		assert.Equal(suite.T(), int64(555), v.SheetID)
		assert.Equal(suite.T(), 42, v.ItemsCount)
		assert.True(suite.T(), v.Active)
		return nil
	})
	suite.mockVersionRepo.EXPECT().SetActive(testProjectID, today).Return(nil)

	name, sheetID, err := suite.versionService.RegisterGeneratedVersion(
		context.Background(), testProjectID, testSpreadsheetID, 42, 5,
	)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), today, name)
	assert.Equal(suite.T(), int64(555), sheetID)
}

func (suite *VersionServiceTestSuite) TestRegisterGeneratedVersion_TemplateMissingDateTab() {
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testTemplateID).Return([]sheets.Tab{
		{SheetID: 9, Title: "Instructions"},
	}, nil)

	_, _, err := suite.versionService.RegisterGeneratedVersion(
		context.Background(), testProjectID, testSpreadsheetID, 1, 1,
	)

	var cfgErr *apperrors.ConfigurationError
	assert.ErrorAs(suite.T(), err, &cfgErr)
}

func (suite *VersionServiceTestSuite) TestRegisterGeneratedVersion_TrackerFullOverwritesLastRow() {
	today := time.Now().UTC().Format("2006-01-02")

	full := make([][]interface{}, 0, 7)
	for i := 0; i < 7; i++ {
		full = append(full, []interface{}{"false", fmt.Sprintf("2025-01-0%d", i+1), "", "1", "1", "Final"})
	}

	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testTemplateID).Return([]sheets.Tab{
		{SheetID: 9, Title: "DATE"},
	}, nil)
	suite.mockSheets.EXPECT().ListTabs(gomock.Any(), testSpreadsheetID).Return([]sheets.Tab{
		{SheetID: 1, Title: "Setup"},
	}, nil)
	suite.mockSheets.EXPECT().CopyTab(gomock.Any(), testTemplateID, int64(9), testSpreadsheetID, today).Return(int64(556), nil)
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, trackerRange()).Return(full, nil)
	suite.mockSheets.EXPECT().BatchUpdateValues(gomock.Any(), testSpreadsheetID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data map[string][][]interface{}) error {
			// All seven slots taken: the last row is reclaimed
			_, ok := data["'Setup'!A80:F80"]
			assert.True(suite.T(), ok)
			return nil
		})
	suite.mockVersionRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	suite.mockVersionRepo.EXPECT().SetActive(testProjectID, today).Return(nil)

	_, _, err := suite.versionService.RegisterGeneratedVersion(
		context.Background(), testProjectID, testSpreadsheetID, 1, 1,
	)

	assert.NoError(suite.T(), err)
}

func (suite *VersionServiceTestSuite) TestReclassifyBidTypes_Success() {
	suite.expectProject()

	suite.mockSheets.EXPECT().
		ReadRange(gomock.Any(), testSpreadsheetID, "'2025-01-15'!A3:Z3").
		Return([][]interface{}{{"Rate", "Scope", "Main Roof", "North Wing", "Total", "Cost"}}, nil)
	suite.mockSheets.EXPECT().
		ReadRange(gomock.Any(), testSpreadsheetID, "'2025-01-15'!B4:B75").
		Return([][]interface{}{
			{"Vapor Barrier"},
			{"Pitch Upcharge"},
			{"Roofing Bundle"},
			{"Traffic Coating"},
		}, nil)
	suite.mockSheets.EXPECT().
		ReadFormulas(gomock.Any(), testSpreadsheetID, "'2025-01-15'!E4:E75").
		Return([][]interface{}{
			{"=SUM(C4:D4)"},
			{"=SUM(C5:D5)"},
			{"=SUM(E4:E5)"},
			{"=SUM(C7:D7)"},
		}, nil)
	suite.mockSheets.EXPECT().
		BatchUpdateValues(gomock.Any(), testSpreadsheetID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data map[string][][]interface{}) error {
			// Bundle total and standalone rows reset to BASE, members cleared
			assert.Equal(suite.T(), [][]interface{}{{"BASE"}}, data["'2025-01-15'!G6"])
			assert.Equal(suite.T(), [][]interface{}{{"BASE"}}, data["'2025-01-15'!G7"])
			assert.Equal(suite.T(), [][]interface{}{{""}}, data["'2025-01-15'!G4"])
			assert.Equal(suite.T(), [][]interface{}{{""}}, data["'2025-01-15'!G5"])
			assert.Len(suite.T(), data, 4)
			return nil
		})

	resp, err := suite.versionService.ReclassifyBidTypes(context.Background(), testProjectID, "2025-01-15")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.BundleTotals)
	assert.Equal(suite.T(), 2, resp.BundledMembers)
	assert.Equal(suite.T(), 1, resp.Standalone)
}

func (suite *VersionServiceTestSuite) TestReclassifyBidTypes_ProtectedTab() {
	_, err := suite.versionService.ReclassifyBidTypes(context.Background(), testProjectID, "Setup")
	assert.Equal(suite.T(), apperrors.ErrProtectedTab, err)
}

func (suite *VersionServiceTestSuite) TestReclassifyBidTypes_NoGridHeader() {
	suite.expectProject()
	suite.mockSheets.EXPECT().
		ReadRange(gomock.Any(), testSpreadsheetID, "'2025-01-15'!A3:Z3").
		Return([][]interface{}{{"", "", ""}}, nil)

	_, err := suite.versionService.ReclassifyBidTypes(context.Background(), testProjectID, "2025-01-15")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *VersionServiceTestSuite) TestReclassifyBidTypes_MissingSheetName() {
	_, err := suite.versionService.ReclassifyBidTypes(context.Background(), testProjectID, "")
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *VersionServiceTestSuite) TestReclassifyBidTypes_SheetsDown() {
	suite.expectProject()
	suite.mockSheets.EXPECT().
		ReadRange(gomock.Any(), testSpreadsheetID, "'2025-01-15'!A3:Z3").
		Return(nil, errors.New("backend unavailable"))

	_, err := suite.versionService.ReclassifyBidTypes(context.Background(), testProjectID, "2025-01-15")

	assert.True(suite.T(), apperrors.IsUpstreamUnavailable(err))
}

func TestVersionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VersionServiceTestSuite))
}
