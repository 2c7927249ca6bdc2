package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lexai-legal/lexai-backend/internal/domain"
	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/repository"
	"github.com/lexai-legal/lexai-backend/pkg/password"
)

// TokenIssuer mints a session token for a user/organization pair
type TokenIssuer interface {
	Issue(userID, orgID string) (string, error)
}

// AuthService defines the interface for registration and login
type AuthService interface {
	// Register creates a fresh organization and its admin user, and
	// returns a session token for the new account
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	// Login authenticates an active user and returns a session token
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

// authService implements AuthService
type authService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	tokens   TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, tokens TokenIssuer) AuthService {
	return &authService{
		userRepo: userRepo,
		orgRepo:  orgRepo,
		tokens:   tokens,
	}
}

// Register creates a fresh organization and its admin user
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	// Duplicate check happens before any write so a rejected
	// registration leaves no partial state behind
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	org := &domain.Organization{
		ID:        uuid.New().String(),
		Name:      req.OrganizationName,
		CreatedAt: now,
		Active:    true,
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          req.Email,
		Name:           req.Name,
		PasswordHash:   hash,
		OrganizationID: org.ID,
		Role:           domain.RoleAdmin,
		CreatedAt:      now,
		Active:         true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	tokenString, err := s.tokens.Issue(user.ID, org.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: tokenString,
		User: dto.UserInfo{
			ID:           user.ID,
			Email:        user.Email,
			Name:         user.Name,
			Organization: org.Name,
		},
	}, nil
}

// Login authenticates an active user by email and password
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetActiveByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	org, err := s.orgRepo.GetByID(ctx, user.OrganizationID)
	if err != nil {
		return nil, err
	}
	orgName := "N/A"
	if org != nil {
		orgName = org.Name
	}

	tokenString, err := s.tokens.Issue(user.ID, user.OrganizationID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: tokenString,
		User: dto.UserInfo{
			ID:           user.ID,
			Email:        user.Email,
			Name:         user.Name,
			Organization: orgName,
		},
	}, nil
}
