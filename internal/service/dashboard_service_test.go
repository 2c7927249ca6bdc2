package service

import (
	"context"
	"testing"

	"github.com/lexai-legal/lexai-backend/internal/domain"
	"github.com/lexai-legal/lexai-backend/internal/dto"
)

func TestDashboardService_Stats(t *testing.T) {
	caseRepo := NewMockCaseRepository()
	convRepo := NewMockConversationRepository()

	caseSvc := NewCaseService(caseRepo)
	chatSvc := NewChatService(convRepo, fixedResponder{})
	svc := NewDashboardService(caseRepo, convRepo)

	// Two active cases and one closed case for org-1
	for i := 0; i < 2; i++ {
		if _, err := caseSvc.Create(context.Background(), "user-1", "org-1", createCaseRequest()); err != nil {
			t.Fatalf("create case failed: %v", err)
		}
	}
	closed, err := caseSvc.Create(context.Background(), "user-1", "org-1", createCaseRequest())
	if err != nil {
		t.Fatalf("create case failed: %v", err)
	}
	closedCase, err := caseRepo.GetByID(context.Background(), "org-1", closed.CaseID)
	if err != nil {
		t.Fatalf("failed to load case: %v", err)
	}
	closedCase.Status = domain.CaseStatusClosed

	// One conversation for org-1, plus noise in org-2
	if _, err := chatSvc.SendMessage(context.Background(), "user-1", "org-1", &dto.ChatMessageRequest{Message: "hola"}); err != nil {
		t.Fatalf("send message failed: %v", err)
	}
	if _, err := caseSvc.Create(context.Background(), "user-2", "org-2", createCaseRequest()); err != nil {
		t.Fatalf("create case failed: %v", err)
	}
	if _, err := chatSvc.SendMessage(context.Background(), "user-2", "org-2", &dto.ChatMessageRequest{Message: "hola"}); err != nil {
		t.Fatalf("send message failed: %v", err)
	}

	stats, err := svc.Stats(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	if stats.TotalCases != 3 {
		t.Errorf("expected 3 total cases, got %d", stats.TotalCases)
	}
	if stats.ActiveCases != 2 {
		t.Errorf("expected 2 active cases, got %d", stats.ActiveCases)
	}
	if stats.ClosedCases != 1 {
		t.Errorf("expected 1 closed case, got %d", stats.ClosedCases)
	}
	if stats.TotalConversations != 1 {
		t.Errorf("expected 1 conversation, got %d", stats.TotalConversations)
	}
	if stats.PendingTasks != placeholderPendingTasks {
		t.Errorf("expected %d pending tasks, got %d", placeholderPendingTasks, stats.PendingTasks)
	}
	if stats.UpcomingDeadlines != placeholderUpcomingDeadlines {
		t.Errorf("expected %d upcoming deadlines, got %d", placeholderUpcomingDeadlines, stats.UpcomingDeadlines)
	}
}

func TestDashboardService_Stats_EmptyOrganization(t *testing.T) {
	svc := NewDashboardService(NewMockCaseRepository(), NewMockConversationRepository())

	stats, err := svc.Stats(context.Background(), "org-empty")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalCases != 0 || stats.ActiveCases != 0 || stats.ClosedCases != 0 || stats.TotalConversations != 0 {
		t.Errorf("expected zero counters, got %+v", stats)
	}
}
