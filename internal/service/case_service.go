package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lexai-legal/lexai-backend/internal/domain"
	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/repository"
)

// CaseService defines the interface for legal case management
type CaseService interface {
	// Create opens a new case under the caller's organization
	Create(ctx context.Context, userID, orgID string, req *dto.CreateCaseRequest) (*dto.CreateCaseResponse, error)
	// List retrieves the organization's cases, newest first
	List(ctx context.Context, orgID string) (*dto.CaseListResponse, error)
	// Get retrieves one case scoped to the organization
	Get(ctx context.Context, orgID, caseID string) (*domain.LegalCase, error)
}

// caseService implements CaseService
type caseService struct {
	caseRepo repository.CaseRepository
}

// NewCaseService creates a new CaseService
func NewCaseService(caseRepo repository.CaseRepository) CaseService {
	return &caseService{caseRepo: caseRepo}
}

// Create opens a new case under the caller's organization
func (s *caseService) Create(ctx context.Context, userID, orgID string, req *dto.CreateCaseRequest) (*dto.CreateCaseResponse, error) {
	priority := req.Priority
	if priority == "" {
		priority = domain.DefaultCasePriority
	}

	now := time.Now().UTC()
	legalCase := &domain.LegalCase{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		CreatedBy:      userID,
		Title:          req.Title,
		ClientName:     req.ClientName,
		CaseType:       req.CaseType,
		Description:    req.Description,
		Priority:       priority,
		Status:         domain.CaseStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
		Tasks:          []string{},
		Documents:      []string{},
		ImportantDates: []domain.ImportantDate{},
	}

	if err := s.caseRepo.Create(ctx, legalCase); err != nil {
		return nil, err
	}

	return &dto.CreateCaseResponse{
		CaseID:  legalCase.ID,
		Message: "Caso creado exitosamente",
	}, nil
}

// List retrieves the organization's cases
func (s *caseService) List(ctx context.Context, orgID string) (*dto.CaseListResponse, error) {
	cases, err := s.caseRepo.ListByOrganization(ctx, orgID, historyLimit)
	if err != nil {
		return nil, err
	}
	return &dto.CaseListResponse{Cases: cases}, nil
}

// Get retrieves one case scoped to the organization
func (s *caseService) Get(ctx context.Context, orgID, caseID string) (*domain.LegalCase, error) {
	legalCase, err := s.caseRepo.GetByID(ctx, orgID, caseID)
	if err != nil {
		return nil, err
	}
	if legalCase == nil {
		return nil, ErrNotFound
	}
	return legalCase, nil
}
