package repository

import (
	"context"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// CaseRepository defines the interface for legal case data access.
// Every method is scoped to an organization; callers never pass a
// client-supplied tenant identifier.
type CaseRepository interface {
	// Create creates a new case
	Create(ctx context.Context, legalCase *domain.LegalCase) error
	// ListByOrganization retrieves the organization's cases, most
	// recently updated first
	ListByOrganization(ctx context.Context, orgID string, limit int64) ([]*domain.LegalCase, error)
	// GetByID retrieves a case by ID within the organization, nil when
	// not found or owned by another tenant
	GetByID(ctx context.Context, orgID, id string) (*domain.LegalCase, error)
	// CountByOrganization counts the organization's cases
	CountByOrganization(ctx context.Context, orgID string) (int64, error)
	// CountByStatus counts the organization's cases with the given status
	CountByStatus(ctx context.Context, orgID, status string) (int64, error)
}
