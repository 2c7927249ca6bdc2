package repository

import (
	"context"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByEmail retrieves a user by email regardless of active flag,
	// nil when not found
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetActiveByEmail retrieves an active user by email, nil when not found
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
}
