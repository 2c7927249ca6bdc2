package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/service"
	"github.com/lexai-legal/lexai-backend/pkg/response"
)

// CategoryHandler handles legal category HTTP requests
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List handles listing the available practice areas
// GET /api/legal-categories
func (h *CategoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(dto.LegalCategoriesResponse{
		Categories: service.LegalCategories(),
	}))
}
