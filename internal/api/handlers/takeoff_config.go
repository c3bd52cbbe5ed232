package handlers

import (
	"net/http"

	"estimating-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ConfigHandler handles HTTP requests for configuration documents
type ConfigHandler struct {
	configService service.ConfigServiceInterface
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(configService service.ConfigServiceInterface) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
	}
}

// GetConfig handles GET /takeoff/:projectId/config
// @Summary Get a project's takeoff configuration
// @Description Get the saved configuration, falling back to the relational copy and then the preset defaults
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} service.ConfigResponse "Configuration document with its source"
// @Failure 502 {object} ErrorResponse "Both configuration stores unreachable"
// @Router /takeoff/{projectId}/config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	resp, err := h.configService.GetConfig(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SaveConfig handles POST /takeoff/:projectId/config
// @Summary Save a project's takeoff configuration
// @Description Validate and persist a configuration document to the workbook, mirrored relationally
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param config body map[string]interface{} true "Configuration document"
// @Success 200 {object} service.ConfigResponse "Saved configuration"
// @Failure 400 {object} ErrorResponse "Malformed configuration"
// @Failure 502 {object} ErrorResponse "Both configuration stores unreachable"
// @Router /takeoff/{projectId}/config [post]
func (h *ConfigHandler) SaveConfig(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.configService.SaveConfig(c.Request.Context(), c.Param("projectId"), raw)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteConfig handles DELETE /takeoff/:projectId/config
// @Summary Delete a project's takeoff configuration
// @Description Remove the stored configuration from the workbook and the relational copy
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]interface{} "Configuration deleted"
// @Failure 500 {object} ErrorResponse "Deletion failed"
// @Router /takeoff/{projectId}/config [delete]
func (h *ConfigHandler) DeleteConfig(c *gin.Context) {
	if err := h.configService.DeleteConfig(c.Request.Context(), c.Param("projectId")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
