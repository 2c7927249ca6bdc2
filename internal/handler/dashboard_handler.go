package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexai-legal/lexai-backend/internal/service"
	"github.com/lexai-legal/lexai-backend/pkg/middleware"
	"github.com/lexai-legal/lexai-backend/pkg/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles fetching the organization's dashboard statistics
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	_, orgID, ok := middleware.AuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	stats, err := h.dashboardService.Stats(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(stats))
}
