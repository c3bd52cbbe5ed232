package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estimating-portal-backend/internal/api/handlers"
	apperrors "estimating-portal-backend/internal/errors"
	"estimating-portal-backend/internal/mocks"
	"estimating-portal-backend/internal/service"
	"estimating-portal-backend/internal/takeoff"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GenerateHandlerTestSuite defines the test suite for GenerateHandler
type GenerateHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockGenerateSvc *mocks.MockGenerateServiceInterface
	handler         *handlers.GenerateHandler
	router          *gin.Engine
}

func (suite *GenerateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGenerateSvc = mocks.NewMockGenerateServiceInterface(suite.ctrl)
	suite.handler = handlers.NewGenerateHandler(suite.mockGenerateSvc)

	suite.router = gin.New()
	suite.router.POST("/takeoff/:projectId/generate", suite.handler.Generate)
}

func (suite *GenerateHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GenerateHandlerTestSuite) postGenerate(payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/takeoff/proj-123/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *GenerateHandlerTestSuite) TestGenerate_Success() {
	suite.mockGenerateSvc.EXPECT().
		Generate(gomock.Any(), "proj-123", gomock.Any()).
		Return(&service.GenerateResponse{
			Success:        true,
			SheetName:      "2025-01-20",
			SheetID:        555,
			ItemsCount:     12,
			LocationsCount: 3,
			RowCount:       12,
			Rows: []takeoff.GeneratedRow{
				{Position: 4, ScopeCode: "MR-001VB", DisplayName: "Vapor Barrier", Rate: 0.85},
			},
			Storage: "sheet",
		}, nil)

	w := suite.postGenerate(map[string]interface{}{
		"columns":       []interface{}{map[string]interface{}{"id": "C", "name": "Main Roof"}},
		"selectedItems": []interface{}{map[string]interface{}{"scope_code": "MR-001VB"}},
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), "2025-01-20", body["sheetName"])
	assert.Equal(suite.T(), "sheet", body["storage"])
	assert.Equal(suite.T(), float64(12), body["itemsCount"])
	assert.Equal(suite.T(), true, body["success"])

	rows := body["rows"].([]interface{})
	assert.Len(suite.T(), rows, 1)
	first := rows[0].(map[string]interface{})
	assert.Equal(suite.T(), "Vapor Barrier", first["display_name"])
}

func (suite *GenerateHandlerTestSuite) TestGenerate_MalformedJSON() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/takeoff/proj-123/generate", bytes.NewReader([]byte("{oops")))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *GenerateHandlerTestSuite) TestGenerate_UnknownScopeCode() {
	suite.mockGenerateSvc.EXPECT().
		Generate(gomock.Any(), "proj-123", gomock.Any()).
		Return(nil, &apperrors.ValidationError{Field: "selectedItems", Message: `unknown scope code "XX-404"`})

	w := suite.postGenerate(map[string]interface{}{
		"selectedItems": []interface{}{map[string]interface{}{"scope_code": "XX-404"}},
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *GenerateHandlerTestSuite) TestGenerate_ProjectNotFound() {
	suite.mockGenerateSvc.EXPECT().
		Generate(gomock.Any(), "proj-123", gomock.Any()).
		Return(nil, apperrors.ErrProjectNotFound)

	w := suite.postGenerate(map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *GenerateHandlerTestSuite) TestGenerate_AllStoresDown() {
	suite.mockGenerateSvc.EXPECT().
		Generate(gomock.Any(), "proj-123", gomock.Any()).
		Return(nil, &apperrors.UpstreamUnavailableError{Upstream: "version store"})

	w := suite.postGenerate(map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadGateway, w.Code)
}

func TestGenerateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GenerateHandlerTestSuite))
}
