package handlers

import (
	"net/http"

	"estimating-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GenerateHandler handles HTTP requests for grid generation
type GenerateHandler struct {
	generateService service.GenerateServiceInterface
}

// NewGenerateHandler creates a new generate handler
func NewGenerateHandler(generateService service.GenerateServiceInterface) *GenerateHandler {
	return &GenerateHandler{
		generateService: generateService,
	}
}

// Generate handles POST /takeoff/:projectId/generate
// @Summary Generate a takeoff grid
// @Description Derive the priced grid from the submitted configuration and write it as a new active version tab
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param config body map[string]interface{} true "Configuration document to generate from"
// @Success 200 {object} service.GenerateResponse "Generated version"
// @Failure 400 {object} ErrorResponse "Malformed configuration or unknown scope code"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 502 {object} ErrorResponse "No store could record the generation"
// @Router /takeoff/{projectId}/generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.generateService.Generate(c.Request.Context(), c.Param("projectId"), raw)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
