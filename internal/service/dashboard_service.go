package service

import (
	"context"

	"github.com/lexai-legal/lexai-backend/internal/domain"
	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/repository"
)

// Placeholder counters until task and deadline tracking exist
const (
	placeholderPendingTasks      = 5
	placeholderUpcomingDeadlines = 3
)

// DashboardService defines the interface for dashboard statistics
type DashboardService interface {
	// Stats aggregates the caller organization's counters
	Stats(ctx context.Context, orgID string) (*dto.DashboardStatsResponse, error)
}

// dashboardService implements DashboardService
type dashboardService struct {
	caseRepo repository.CaseRepository
	convRepo repository.ConversationRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(caseRepo repository.CaseRepository, convRepo repository.ConversationRepository) DashboardService {
	return &dashboardService{
		caseRepo: caseRepo,
		convRepo: convRepo,
	}
}

// Stats aggregates the caller organization's counters
func (s *dashboardService) Stats(ctx context.Context, orgID string) (*dto.DashboardStatsResponse, error) {
	totalCases, err := s.caseRepo.CountByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	activeCases, err := s.caseRepo.CountByStatus(ctx, orgID, domain.CaseStatusActive)
	if err != nil {
		return nil, err
	}

	closedCases, err := s.caseRepo.CountByStatus(ctx, orgID, domain.CaseStatusClosed)
	if err != nil {
		return nil, err
	}

	totalConversations, err := s.convRepo.CountByOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardStatsResponse{
		TotalCases:         totalCases,
		ActiveCases:        activeCases,
		ClosedCases:        closedCases,
		TotalConversations: totalConversations,
		PendingTasks:       placeholderPendingTasks,
		UpcomingDeadlines:  placeholderUpcomingDeadlines,
	}, nil
}
