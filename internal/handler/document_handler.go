package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/service"
	"github.com/lexai-legal/lexai-backend/pkg/middleware"
	"github.com/lexai-legal/lexai-backend/pkg/response"
)

// DocumentHandler handles document analysis HTTP requests
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Analyze handles document analysis
// POST /api/documents/analyze
func (h *DocumentHandler) Analyze(c *gin.Context) {
	userID, orgID, ok := middleware.AuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	var req dto.AnalyzeDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest(err.Error()))
		return
	}

	result, err := h.documentService.Analyze(c.Request.Context(), userID, orgID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(result))
}

// ListAnalyses handles listing the organization's analyses
// GET /api/documents/analyses
func (h *DocumentHandler) ListAnalyses(c *gin.Context) {
	_, orgID, ok := middleware.AuthContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Unauthorized(""))
		return
	}

	analyses, err := h.documentService.ListAnalyses(c.Request.Context(), orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.InternalError(""))
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"analyses": analyses}))
}
