package repository

import (
	"context"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// Create creates a new organization
	Create(ctx context.Context, org *domain.Organization) error
	// GetByID retrieves an organization by ID, nil when not found
	GetByID(ctx context.Context, id string) (*domain.Organization, error)
}
