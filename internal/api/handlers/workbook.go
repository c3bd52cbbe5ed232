package handlers

import (
	"net/http"

	"estimating-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkbookHandler handles HTTP requests for workbook provisioning
type WorkbookHandler struct {
	workbookService service.WorkbookServiceInterface
}

// NewWorkbookHandler creates a new workbook handler
func NewWorkbookHandler(workbookService service.WorkbookServiceInterface) *WorkbookHandler {
	return &WorkbookHandler{
		workbookService: workbookService,
	}
}

// workbookRequest optionally overrides the title of a newly created workbook
type workbookRequest struct {
	ProjectName string `json:"projectName"`
}

// EnsureWorkbook handles POST /takeoff/:projectId/workbook
// @Summary Ensure a project has a takeoff workbook
// @Description Clone the template workbook for the project on first use; subsequent calls return the existing one
// @Tags takeoff
// @Accept json
// @Produce json
// @Param projectId path string true "Project ID"
// @Param body body workbookRequest false "Optional workbook title override"
// @Success 200 {object} service.WorkbookResponse "Workbook linked to the project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 502 {object} ErrorResponse "Document service unreachable"
// @Router /takeoff/{projectId}/workbook [post]
func (h *WorkbookHandler) EnsureWorkbook(c *gin.Context) {
	var req workbookRequest
	// Body is optional; ignore decode errors for an empty body
	_ = c.ShouldBindJSON(&req)

	resp, err := h.workbookService.EnsureWorkbook(c.Request.Context(), c.Param("projectId"), req.ProjectName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
