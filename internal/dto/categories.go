package dto

import (
	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// LegalCategoriesResponse lists the available practice areas
type LegalCategoriesResponse struct {
	Categories []domain.LegalCategory `json:"categories"`
}
