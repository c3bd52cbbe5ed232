package service_test

import (
	"context"
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
)

const testFolderID = "folder-789"

type WorkbookServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockSheets      *mocks.MockClient
	workbookService *service.WorkbookService
}

func (suite *WorkbookServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockSheets = mocks.NewMockClient(suite.ctrl)

	cfg := &config.Config{
		SheetsReadTimeoutSec:  5,
		SheetsWriteTimeoutSec: 5,
		GenerateTimeoutSec:    10,
		TakeoffTemplateID:     testTemplateID,
		WorkbookFolderID:      testFolderID,
	}
	suite.workbookService = service.NewWorkbookService(suite.mockProjectRepo, suite.mockSheets, cfg)
}

func (suite *WorkbookServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *WorkbookServiceTestSuite) TestEnsureWorkbook_AlreadyLinked() {
	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.Project{
		ProjectID:     testProjectID,
		Name:          "Tower Renovation",
		SpreadsheetID: testSpreadsheetID,
	}, nil)

	resp, err := suite.workbookService.EnsureWorkbook(context.Background(), testProjectID, "Tower Renovation")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), testSpreadsheetID, resp.SpreadsheetID)
	assert.False(suite.T(), resp.Created)
}

func (suite *WorkbookServiceTestSuite) TestEnsureWorkbook_CreatesFromTemplate() {
	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.Project{
		ProjectID: testProjectID,
		Name:      "Tower Renovation",
	}, nil)
	suite.mockSheets.EXPECT().
		CopySpreadsheet(gomock.Any(), testTemplateID, "Tower Renovation - Takeoff", testFolderID).
		Return("new-sheet-id", nil)
	suite.mockProjectRepo.EXPECT().SetSpreadsheetID(testProjectID, "new-sheet-id").Return(nil)

	resp, err := suite.workbookService.EnsureWorkbook(context.Background(), testProjectID, "Tower Renovation")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "new-sheet-id", resp.SpreadsheetID)
	assert.True(suite.T(), resp.Created)
}

func (suite *WorkbookServiceTestSuite) TestEnsureWorkbook_FallsBackToStoredName() {
	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.Project{
		ProjectID: testProjectID,
		Name:      "Stored Name",
	}, nil)
	suite.mockSheets.EXPECT().
		CopySpreadsheet(gomock.Any(), testTemplateID, "Stored Name - Takeoff", testFolderID).
		Return("new-sheet-id", nil)
	suite.mockProjectRepo.EXPECT().SetSpreadsheetID(testProjectID, "new-sheet-id").Return(nil)

	resp, err := suite.workbookService.EnsureWorkbook(context.Background(), testProjectID, "")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.Created)
}

func (suite *WorkbookServiceTestSuite) TestEnsureWorkbook_ProjectNotFound() {
	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(nil, errors.New("record not found"))

	resp, err := suite.workbookService.EnsureWorkbook(context.Background(), testProjectID, "Tower Renovation")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func (suite *WorkbookServiceTestSuite) TestEnsureWorkbook_TemplateNotConfigured() {
	cfg := &config.Config{
		SheetsReadTimeoutSec:  5,
		SheetsWriteTimeoutSec: 5,
		GenerateTimeoutSec:    10,
	}
	svc := service.NewWorkbookService(suite.mockProjectRepo, suite.mockSheets, cfg)

	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.Project{
		ProjectID: testProjectID,
	}, nil)

	resp, err := svc.EnsureWorkbook(context.Background(), testProjectID, "Tower Renovation")

	assert.Nil(suite.T(), resp)
	var cfgErr *apperrors.ConfigurationError
	assert.ErrorAs(suite.T(), err, &cfgErr)
}

func (suite *WorkbookServiceTestSuite) TestEnsureWorkbook_CopyFailure() {
	suite.mockProjectRepo.EXPECT().GetByProjectID(testProjectID).Return(&models.Project{
		ProjectID: testProjectID,
		Name:      "Tower Renovation",
	}, nil)
	suite.mockSheets.EXPECT().
		CopySpreadsheet(gomock.Any(), testTemplateID, "Tower Renovation - Takeoff", testFolderID).
		Return("", errors.New("rpc error: unavailable"))

	resp, err := suite.workbookService.EnsureWorkbook(context.Background(), testProjectID, "Tower Renovation")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsUpstreamUnavailable(err))
}

func TestWorkbookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkbookServiceTestSuite))
}
