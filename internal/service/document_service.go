package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lexai-legal/lexai-backend/internal/domain"
	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/repository"
)

// DocumentService defines the interface for document analysis
type DocumentService interface {
	// Analyze produces an analysis for the submitted document and
	// persists it under the caller's organization
	Analyze(ctx context.Context, userID, orgID string, req *dto.AnalyzeDocumentRequest) (*domain.AnalysisResult, error)
	// ListAnalyses retrieves the organization's analyses, newest first
	ListAnalyses(ctx context.Context, orgID string) ([]*domain.DocumentAnalysis, error)
}

// documentService implements DocumentService. The analysis itself is a
// fixed placeholder result; real document parsing is out of scope.
type documentService struct {
	analysisRepo repository.AnalysisRepository
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(analysisRepo repository.AnalysisRepository) DocumentService {
	return &documentService{analysisRepo: analysisRepo}
}

// Analyze produces an analysis result and persists it
func (s *documentService) Analyze(ctx context.Context, userID, orgID string, req *dto.AnalyzeDocumentRequest) (*domain.AnalysisResult, error) {
	result := mockAnalysisResult(req.Filename)

	analysis := &domain.DocumentAnalysis{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		CreatedBy:      userID,
		Filename:       req.Filename,
		Analysis:       *result,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.analysisRepo.Create(ctx, analysis); err != nil {
		return nil, err
	}

	return result, nil
}

// ListAnalyses retrieves the organization's analyses
func (s *documentService) ListAnalyses(ctx context.Context, orgID string) ([]*domain.DocumentAnalysis, error) {
	return s.analysisRepo.ListByOrganization(ctx, orgID, historyLimit)
}

// mockAnalysisResult returns the placeholder analysis used for every
// document until a real analysis engine is plugged in
func mockAnalysisResult(filename string) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Filename: filename,
		Summary:  "Este documento contiene información relevante sobre aspectos legales importantes que requieren atención especializada.",
		KeyDates: []domain.KeyDate{
			{Date: "2024-02-15", Description: "Fecha límite para presentar alegaciones"},
			{Date: "2024-03-01", Description: "Vencimiento del plazo de recurso"},
			{Date: "2024-03-15", Description: "Fecha de vista oral programada"},
		},
		Risks: []domain.Risk{
			{Level: "alto", Description: "Posible vencimiento de plazos procesales"},
			{Level: "medio", Description: "Cláusulas que requieren clarificación"},
			{Level: "bajo", Description: "Documentación adicional recomendada"},
		},
		Jurisprudence: []string{
			"STS 123/2023 - Criterio relevante para casos similares",
			"SAP Madrid 456/2023 - Interpretación de cláusulas contractuales",
			"STC 789/2023 - Derechos fundamentales aplicables",
		},
		Clauses: []domain.Clause{
			{Type: "estándar", Content: "Cláusula de jurisdicción y competencia"},
			{Type: "atención", Content: "Cláusula de penalización que requiere revisión"},
			{Type: "favorable", Content: "Cláusula de resolución alternativa de conflictos"},
		},
	}
}
