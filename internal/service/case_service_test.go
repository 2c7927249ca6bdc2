package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lexai-legal/lexai-backend/internal/domain"
	"github.com/lexai-legal/lexai-backend/internal/dto"
)

func createCaseRequest() *dto.CreateCaseRequest {
	return &dto.CreateCaseRequest{
		Title:       "Despido improcedente",
		ClientName:  "Carlos Ruiz",
		CaseType:    "laboral",
		Description: "Reclamación por despido sin causa",
	}
}

func TestCaseService_Create(t *testing.T) {
	caseRepo := NewMockCaseRepository()
	svc := NewCaseService(caseRepo)

	resp, err := svc.Create(context.Background(), "user-1", "org-1", createCaseRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if resp.CaseID == "" {
		t.Error("expected a case ID")
	}
	if resp.Message != "Caso creado exitosamente" {
		t.Errorf("unexpected message: %q", resp.Message)
	}

	legalCase, err := caseRepo.GetByID(context.Background(), "org-1", resp.CaseID)
	if err != nil {
		t.Fatalf("failed to load case: %v", err)
	}
	if legalCase == nil {
		t.Fatal("case was not persisted")
	}
	if legalCase.OrganizationID != "org-1" {
		t.Errorf("case stamped with org %s, expected org-1", legalCase.OrganizationID)
	}
	if legalCase.CreatedBy != "user-1" {
		t.Errorf("case created_by %s, expected user-1", legalCase.CreatedBy)
	}
	if legalCase.Status != domain.CaseStatusActive {
		t.Errorf("expected status %s, got %s", domain.CaseStatusActive, legalCase.Status)
	}
	if legalCase.Priority != domain.DefaultCasePriority {
		t.Errorf("expected default priority %s, got %s", domain.DefaultCasePriority, legalCase.Priority)
	}
	if legalCase.Tasks == nil || legalCase.Documents == nil || legalCase.ImportantDates == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestCaseService_Create_ExplicitPriority(t *testing.T) {
	caseRepo := NewMockCaseRepository()
	svc := NewCaseService(caseRepo)

	req := createCaseRequest()
	req.Priority = "alta"
	resp, err := svc.Create(context.Background(), "user-1", "org-1", req)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	legalCase, err := caseRepo.GetByID(context.Background(), "org-1", resp.CaseID)
	if err != nil {
		t.Fatalf("failed to load case: %v", err)
	}
	if legalCase.Priority != "alta" {
		t.Errorf("expected priority alta, got %s", legalCase.Priority)
	}
}

func TestCaseService_List_ScopedToOrganization(t *testing.T) {
	caseRepo := NewMockCaseRepository()
	svc := NewCaseService(caseRepo)

	for i := 0; i < 2; i++ {
		if _, err := svc.Create(context.Background(), "user-1", "org-1", createCaseRequest()); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	if _, err := svc.Create(context.Background(), "user-2", "org-2", createCaseRequest()); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	list, err := svc.List(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list.Cases) != 2 {
		t.Fatalf("expected 2 cases for org-1, got %d", len(list.Cases))
	}
	for _, c := range list.Cases {
		if c.OrganizationID != "org-1" {
			t.Errorf("list leaked case from org %s", c.OrganizationID)
		}
	}
}

func TestCaseService_Get(t *testing.T) {
	caseRepo := NewMockCaseRepository()
	svc := NewCaseService(caseRepo)

	resp, err := svc.Create(context.Background(), "user-1", "org-1", createCaseRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("own organization", func(t *testing.T) {
		legalCase, err := svc.Get(context.Background(), "org-1", resp.CaseID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if legalCase.ID != resp.CaseID {
			t.Errorf("expected case %s, got %s", resp.CaseID, legalCase.ID)
		}
	})

	t.Run("another organization sees not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "org-2", resp.CaseID)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for cross-tenant access, got %v", err)
		}
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "org-1", "no-such-case")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
