package handlers

import (
	"net/http"

	"estimating-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VersionsHandler handles HTTP requests for version lifecycle operations
type VersionsHandler struct {
	versionService service.VersionServiceInterface
}

// NewVersionsHandler creates a new versions handler
func NewVersionsHandler(versionService service.VersionServiceInterface) *VersionsHandler {
	return &VersionsHandler{
		versionService: versionService,
	}
}

// ListVersions handles GET /takeoff/:projectId/versions
// @Summary List a project's versions
// @Description Read the version tracker and cross-reference it with the tabs that exist in the workbook
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} service.VersionListResponse "Tracked versions"
// @Failure 404 {object} ErrorResponse "Project or workbook not found"
// @Failure 502 {object} ErrorResponse "Document service unreachable"
// @Router /takeoff/{projectId}/versions [get]
func (h *VersionsHandler) ListVersions(c *gin.Context) {
	resp, err := h.versionService.ListVersions(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateVersion handles PUT /takeoff/:projectId/versions
// @Summary Update a version's active flag or status
// @Description Activate a version (clearing every other active flag in the same batch) and/or set its status label
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param body body service.VersionUpdateRequest true "Update request"
// @Success 200 {object} service.VersionUpdateResponse "Applied updates"
// @Failure 400 {object} ErrorResponse "Missing sheetName"
// @Failure 404 {object} ErrorResponse "Version not tracked"
// @Failure 502 {object} ErrorResponse "Document service unreachable"
// @Router /takeoff/{projectId}/versions [put]
func (h *VersionsHandler) UpdateVersion(c *gin.Context) {
	var req service.VersionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.versionService.UpdateVersion(c.Request.Context(), c.Param("projectId"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// versionCopyRequest names the version tab to duplicate
type versionCopyRequest struct {
	SourceSheetName string `json:"sourceSheetName" binding:"required"`
}

// CopyVersion handles POST /takeoff/:projectId/versions
// @Summary Copy a version
// @Description Duplicate an existing version tab under a fresh dated name and activate the copy
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param body body versionCopyRequest true "Copy request"
// @Success 200 {object} service.VersionCopyResponse "Created copy"
// @Failure 400 {object} ErrorResponse "Missing sourceSheetName"
// @Failure 404 {object} ErrorResponse "Source version not found"
// @Failure 502 {object} ErrorResponse "Document service unreachable"
// @Router /takeoff/{projectId}/versions [post]
func (h *VersionsHandler) CopyVersion(c *gin.Context) {
	var req versionCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.versionService.CopyVersion(c.Request.Context(), c.Param("projectId"), req.SourceSheetName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// bidClassifyRequest names the version tab to reclassify
type bidClassifyRequest struct {
	SheetName string `json:"sheetName" binding:"required"`
}

// ClassifyBidTypes handles POST /takeoff/:projectId/versions/classify
// @Summary Reclassify a version's bid types
// @Description Re-derive the bid-type column from the tab's totals formulas: bundle totals and standalone rows reset to BASE, bundled members cleared
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param body body bidClassifyRequest true "Classify request"
// @Success 200 {object} service.BidClassifyResponse "Classification counts"
// @Failure 400 {object} ErrorResponse "Missing sheetName or no generated grid"
// @Failure 403 {object} ErrorResponse "Tab is protected"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Failure 502 {object} ErrorResponse "Document service unreachable"
// @Router /takeoff/{projectId}/versions/classify [post]
func (h *VersionsHandler) ClassifyBidTypes(c *gin.Context) {
	var req bidClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.versionService.ReclassifyBidTypes(c.Request.Context(), c.Param("projectId"), req.SheetName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteVersion handles DELETE /takeoff/:projectId/versions
// @Summary Delete a version
// @Description Remove a version tab and its tracker row. Setup and Library are protected; versions holding data require force=true
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param sheet query string true "Version tab name"
// @Param force query bool false "Delete even if the version holds data"
// @Success 200 {object} map[string]interface{} "Version deleted"
// @Failure 400 {object} ErrorResponse "Missing sheet parameter"
// @Failure 403 {object} ErrorResponse "Tab is protected"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Failure 409 {object} ErrorResponse "Version holds data or is the last one"
// @Failure 502 {object} ErrorResponse "Document service unreachable"
// @Router /takeoff/{projectId}/versions [delete]
func (h *VersionsHandler) DeleteVersion(c *gin.Context) {
	sheetName := c.Query("sheet")
	force := c.Query("force") == "true"

	if err := h.versionService.DeleteVersion(c.Request.Context(), c.Param("projectId"), sheetName, force); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sheetName": sheetName})
}
