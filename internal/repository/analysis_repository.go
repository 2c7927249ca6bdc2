package repository

import (
	"context"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// AnalysisRepository defines the interface for document analysis data access
type AnalysisRepository interface {
	// Create persists a new document analysis
	Create(ctx context.Context, analysis *domain.DocumentAnalysis) error
	// ListByOrganization retrieves the organization's analyses, most
	// recent first
	ListByOrganization(ctx context.Context, orgID string, limit int64) ([]*domain.DocumentAnalysis, error)
}
