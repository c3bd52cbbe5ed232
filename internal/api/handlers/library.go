package handlers

import (
	"net/http"

	"estimating-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LibraryHandler handles HTTP requests for the takeoff item catalog
type LibraryHandler struct {
	libraryService service.LibraryServiceInterface
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(libraryService service.LibraryServiceInterface) *LibraryHandler {
	return &LibraryHandler{
		libraryService: libraryService,
	}
}

// GetLibrary handles GET /takeoff/library
// @Summary Get the takeoff item catalog
// @Description Get all catalog items grouped by section, with the variant attribute options
// @Tags takeoff
// @Accept json
// @Produce json
// @Success 200 {object} service.LibraryResponse "Successfully retrieved catalog"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /takeoff/library [get]
func (h *LibraryHandler) GetLibrary(c *gin.Context) {
	resp, err := h.libraryService.GetLibrary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
