package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"estimating-portal-backend/internal/config"
	"estimating-portal-backend/internal/database/models"
	apperrors "estimating-portal-backend/internal/errors"
	"estimating-portal-backend/internal/mocks"
	"estimating-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/api/googleapi"
	"gorm.io/gorm"
)

type ConfigServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockProjectRepo   *mocks.MockProjectRepositoryInterface
	mockConfigRepo    *mocks.MockTakeoffConfigRepositoryInterface
	mockSheets        *mocks.MockClient
	configService     *service.ConfigService
	ensureSchemaCalls int
}

func (suite *ConfigServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockConfigRepo = mocks.NewMockTakeoffConfigRepositoryInterface(suite.ctrl)
	suite.mockSheets = mocks.NewMockClient(suite.ctrl)
	suite.ensureSchemaCalls = 0

	cfg := &config.Config{
		SheetsReadTimeoutSec:  5,
		SheetsWriteTimeoutSec: 5,
		GenerateTimeoutSec:    10,
	}
	suite.configService = service.NewConfigService(
		suite.mockProjectRepo,
		suite.mockConfigRepo,
		suite.mockSheets,
		cfg,
		func() error {
			suite.ensureSchemaCalls++
			return nil
		},
	)
}

func (suite *ConfigServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ConfigServiceTestSuite) expectProject() {
	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.Project{
		ProjectID:     testProjectID,
		SpreadsheetID: testSpreadsheetID,
	}, nil)
}

func validRawConfig() map[string]interface{} {
	return map[string]interface{}{
		"columns": []interface{}{
			map[string]interface{}{"id": "C", "name": "Main Roof", "mappings": []interface{}{"ROOF"}},
			map[string]interface{}{"id": "D", "name": "1st Floor"},
		},
		"selectedItems": []interface{}{
			map[string]interface{}{"scope_code": "MR-001VB"},
		},
		"rateOverrides": map[string]interface{}{
			"MR-001VB": 1.25,
		},
		"gcName": "Acme Builders",
	}
}

func (suite *ConfigServiceTestSuite) TestGetConfig_FromSheet() {
	doc, _ := json.Marshal(validRawConfig())

	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, service.ConfigCell).
		Return([][]interface{}{{string(doc)}}, nil)

	resp, err := suite.configService.GetConfig(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Exists)
	assert.Equal(suite.T(), "sheet", resp.Source)
	assert.Len(suite.T(), resp.Config.Columns, 2)
	assert.Equal(suite.T(), "Acme Builders", resp.Config.GCName)
	assert.Equal(suite.T(), 1.25, resp.Config.RateOverrides["MR-001VB"])
}

func (suite *ConfigServiceTestSuite) TestGetConfig_EmptyCellServesDefaults() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, service.ConfigCell).
		Return([][]interface{}{}, nil)

	resp, err := suite.configService.GetConfig(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Exists)
	assert.Equal(suite.T(), "default", resp.Source)
	assert.Len(suite.T(), resp.Config.Columns, 5)
}

func (suite *ConfigServiceTestSuite) TestGetConfig_SheetNotFoundServesDefaults() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, service.ConfigCell).
		Return(nil, &googleapi.Error{Code: 404, Message: "Requested entity was not found"})

	resp, err := suite.configService.GetConfig(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Exists)
	assert.Equal(suite.T(), "default", resp.Source)
}

func (suite *ConfigServiceTestSuite) TestGetConfig_SheetDownFallsBackToDatabase() {
	doc, _ := json.Marshal(validRawConfig())

	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, service.ConfigCell).
		Return(nil, errors.New("rpc error: unavailable"))
	suite.mockConfigRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.TakeoffConfig{
		ProjectID: testProjectID,
		Document:  doc,
		Source:    models.ConfigSourceSheet,
	}, nil)

	resp, err := suite.configService.GetConfig(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Exists)
	assert.Equal(suite.T(), "database", resp.Source)
	assert.Len(suite.T(), resp.Config.Columns, 2)
}

func (suite *ConfigServiceTestSuite) TestGetConfig_SheetDownNoRowServesDefaults() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, service.ConfigCell).
		Return(nil, errors.New("rpc error: unavailable"))
	suite.mockConfigRepo.EXPECT().GetByProjectID(testProjectID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.configService.GetConfig(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), resp.Exists)
	assert.Equal(suite.T(), "default", resp.Source)
}

func (suite *ConfigServiceTestSuite) TestGetConfig_BothStoresDown() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ReadRange(gomock.Any(), testSpreadsheetID, service.ConfigCell).
		Return(nil, errors.New("rpc error: unavailable"))
	suite.mockConfigRepo.EXPECT().GetByProjectID(testProjectID).Return(nil, errors.New("connection refused"))

	resp, err := suite.configService.GetConfig(context.Background(), testProjectID)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsUpstreamUnavailable(err))
}

func (suite *ConfigServiceTestSuite) TestGetConfig_NoWorkbookReadsDatabase() {
	doc, _ := json.Marshal(validRawConfig())

	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.Project{
		ProjectID: testProjectID,
	}, nil)
	suite.mockConfigRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.TakeoffConfig{
		ProjectID: testProjectID,
		Document:  doc,
	}, nil)

	resp, err := suite.configService.GetConfig(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "database", resp.Source)
}

func (suite *ConfigServiceTestSuite) TestSaveConfig_SheetPrimary() {
	suite.expectProject()
	suite.mockSheets.EXPECT().UpdateRange(gomock.Any(), testSpreadsheetID, service.ConfigCell, gomock.Any()).Return(nil)
	suite.mockConfigRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(row *models.TakeoffConfig) error {
		assert.Equal(suite.T(), testProjectID, row.ProjectID)
		assert.Equal(suite.T(), models.ConfigSourceSheet, row.Source)
		return nil
	})

	resp, err := suite.configService.SaveConfig(context.Background(), testProjectID, validRawConfig())

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Success)
	assert.True(suite.T(), resp.Exists)
	assert.Equal(suite.T(), "sheet", resp.Source)
	assert.NotEmpty(suite.T(), resp.Message)
}

func (suite *ConfigServiceTestSuite) TestSaveConfig_SheetDownDatabaseCarriesSave() {
	suite.expectProject()
	suite.mockSheets.EXPECT().UpdateRange(gomock.Any(), testSpreadsheetID, service.ConfigCell, gomock.Any()).
		Return(errors.New("rpc error: unavailable"))
	suite.mockConfigRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(row *models.TakeoffConfig) error {
		assert.Equal(suite.T(), models.ConfigSourceDatabase, row.Source)
		return nil
	})

	resp, err := suite.configService.SaveConfig(context.Background(), testProjectID, validRawConfig())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "database", resp.Source)
}

func (suite *ConfigServiceTestSuite) TestSaveConfig_RelationalSyncFailureNonFatalWhenSheetLanded() {
	suite.expectProject()
	suite.mockSheets.EXPECT().UpdateRange(gomock.Any(), testSpreadsheetID, service.ConfigCell, gomock.Any()).Return(nil)
	upsertErr := errors.New("relation does not exist")
	suite.mockConfigRepo.EXPECT().Upsert(gomock.Any()).Return(upsertErr).Times(2)

	resp, err := suite.configService.SaveConfig(context.Background(), testProjectID, validRawConfig())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "sheet", resp.Source)
	assert.Equal(suite.T(), 1, suite.ensureSchemaCalls)
}

func (suite *ConfigServiceTestSuite) TestSaveConfig_UpsertRetriesAfterSchemaProvisioning() {
	suite.expectProject()
	suite.mockSheets.EXPECT().UpdateRange(gomock.Any(), testSpreadsheetID, service.ConfigCell, gomock.Any()).
		Return(errors.New("rpc error: unavailable"))
	gomock.InOrder(
		suite.mockConfigRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("relation does not exist")),
		suite.mockConfigRepo.EXPECT().Upsert(gomock.Any()).Return(nil),
	)

	resp, err := suite.configService.SaveConfig(context.Background(), testProjectID, validRawConfig())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "database", resp.Source)
	assert.Equal(suite.T(), 1, suite.ensureSchemaCalls)
}

func (suite *ConfigServiceTestSuite) TestSaveConfig_BothStoresDown() {
	suite.expectProject()
	suite.mockSheets.EXPECT().UpdateRange(gomock.Any(), testSpreadsheetID, service.ConfigCell, gomock.Any()).
		Return(errors.New("rpc error: unavailable"))
	suite.mockConfigRepo.EXPECT().Upsert(gomock.Any()).Return(errors.New("connection refused")).Times(2)

	resp, err := suite.configService.SaveConfig(context.Background(), testProjectID, validRawConfig())

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsUpstreamUnavailable(err))
}

func (suite *ConfigServiceTestSuite) TestSaveConfig_InvalidShape() {
	raw := map[string]interface{}{
		"columns": "not-an-array",
	}

	resp, err := suite.configService.SaveConfig(context.Background(), testProjectID, raw)

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ConfigServiceTestSuite) TestDeleteConfig_Success() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ClearRange(gomock.Any(), testSpreadsheetID, service.ConfigCell).Return(nil)
	suite.mockConfigRepo.EXPECT().Delete(testProjectID).Return(nil)

	err := suite.configService.DeleteConfig(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
}

func (suite *ConfigServiceTestSuite) TestDeleteConfig_SheetClearFailureIsNonFatal() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ClearRange(gomock.Any(), testSpreadsheetID, service.ConfigCell).
		Return(errors.New("rpc error: unavailable"))
	suite.mockConfigRepo.EXPECT().Delete(testProjectID).Return(nil)

	err := suite.configService.DeleteConfig(context.Background(), testProjectID)

	assert.NoError(suite.T(), err)
}

func (suite *ConfigServiceTestSuite) TestDeleteConfig_RepoFailure() {
	suite.expectProject()
	suite.mockSheets.EXPECT().ClearRange(gomock.Any(), testSpreadsheetID, service.ConfigCell).Return(nil)
	suite.mockConfigRepo.EXPECT().Delete(testProjectID).Return(errors.New("connection refused"))

	err := suite.configService.DeleteConfig(context.Background(), testProjectID)

	assert.Error(suite.T(), err)
}

func TestConfigServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigServiceTestSuite))
}
