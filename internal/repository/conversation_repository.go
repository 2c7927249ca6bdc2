package repository

import (
	"context"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// ConversationRepository defines the interface for conversation data access.
// Every method is scoped to an organization; callers never pass a
// client-supplied tenant identifier.
type ConversationRepository interface {
	// Create creates a new conversation
	Create(ctx context.Context, conv *domain.Conversation) error
	// ListByOrganization retrieves the organization's active conversations,
	// most recently updated first
	ListByOrganization(ctx context.Context, orgID string, limit int64) ([]*domain.Conversation, error)
	// GetByID retrieves a conversation by ID within the organization,
	// nil when not found or owned by another tenant
	GetByID(ctx context.Context, orgID, id string) (*domain.Conversation, error)
	// CountByOrganization counts the organization's conversations
	CountByOrganization(ctx context.Context, orgID string) (int64, error)
}
