package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/service"
	"github.com/lexai-legal/lexai-backend/pkg/middleware"
	"github.com/lexai-legal/lexai-backend/pkg/response"
)

// CaseHandler handles legal case HTTP requests
type CaseHandler struct {
	caseService service.CaseService
}

// NewCaseHandler creates a new CaseHandler
func NewCaseHandler(caseService service.CaseService) *CaseHandler {
	return &CaseHandler{caseService: caseService}
}

// Create handles case creation
// POST /api/cases
func (h *CaseHandler) Create(c *gin.Context) {
	userID, orgID, ok := middleware.AuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	resp, err := h.caseService.Create(c.Request.Context(), userID, orgID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(resp))
}

// List handles listing the organization's cases
// GET /api/cases
func (h *CaseHandler) List(c *gin.Context) {
	_, orgID, ok := middleware.AuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	resp, err := h.caseService.List(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(resp))
}

// Get handles fetching a single case
// GET /api/cases/:id
func (h *CaseHandler) Get(c *gin.Context) {
	_, orgID, ok := middleware.AuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	legalCase, err := h.caseService.Get(c.Request.Context(), orgID, c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound("Case not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(legalCase))
}
