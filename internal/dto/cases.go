package dto

import (
	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// CreateCaseRequest represents a new legal case
type CreateCaseRequest struct {
	Title       string `json:"title" binding:"required,min=2,max=255"`
	ClientName  string `json:"client_name" binding:"required,min=2,max=255"`
	CaseType    string `json:"case_type" binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"omitempty,max=50"`
}

// CreateCaseResponse confirms case creation
type CreateCaseResponse struct {
	CaseID  string `json:"case_id"`
	Message string `json:"message"`
}

// CaseListResponse lists the caller organization's cases
type CaseListResponse struct {
	Cases []*domain.LegalCase `json:"cases"`
}
