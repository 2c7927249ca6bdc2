package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lexai-legal/lexai-backend/internal/domain"
	"github.com/lexai-legal/lexai-backend/internal/dto"
	"github.com/lexai-legal/lexai-backend/internal/repository"
)

// historyLimit caps list queries, matching the source system's behavior
const historyLimit = 100

// ChatService defines the interface for assistant chat operations
type ChatService interface {
	// SendMessage answers a message and persists the exchange under the
	// caller's organization
	SendMessage(ctx context.Context, userID, orgID string, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error)
	// History lists the organization's conversations, newest first
	History(ctx context.Context, orgID string) (*dto.ChatHistoryResponse, error)
	// GetConversation retrieves one conversation scoped to the organization
	GetConversation(ctx context.Context, orgID, conversationID string) (*domain.Conversation, error)
}

// chatService implements ChatService
type chatService struct {
	convRepo  repository.ConversationRepository
	responder Responder
}

// NewChatService creates a new ChatService
func NewChatService(convRepo repository.ConversationRepository, responder Responder) ChatService {
	return &chatService{
		convRepo:  convRepo,
		responder: responder,
	}
}

// SendMessage answers a message and persists the exchange
func (s *chatService) SendMessage(ctx context.Context, userID, orgID string, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	reply := s.responder.Pick(responsesForCategory(req.Category))

	now := time.Now().UTC()
	conv := &domain.Conversation{
		ID:             uuid.New().String(),
		OrganizationID: orgID,
		UserID:         userID,
		Category:       req.Category,
		Messages: []domain.Message{
			{
				ID:        uuid.New().String(),
				Type:      domain.MessageTypeUser,
				Content:   req.Message,
				Timestamp: now,
			},
			{
				ID:        uuid.New().String(),
				Type:      domain.MessageTypeAI,
				Content:   reply,
				Timestamp: now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
		Active:    true,
	}

	if err := s.convRepo.Create(ctx, conv); err != nil {
		return nil, err
	}

	return &dto.ChatMessageResponse{
		ConversationID: conv.ID,
		Response:       reply,
		Timestamp:      now,
	}, nil
}

// History lists the organization's conversations
func (s *chatService) History(ctx context.Context, orgID string) (*dto.ChatHistoryResponse, error) {
	conversations, err := s.convRepo.ListByOrganization(ctx, orgID, historyLimit)
	if err != nil {
		return nil, err
	}
	return &dto.ChatHistoryResponse{Conversations: conversations}, nil
}

// GetConversation retrieves one conversation scoped to the organization
func (s *chatService) GetConversation(ctx context.Context, orgID, conversationID string) (*domain.Conversation, error) {
	conv, err := s.convRepo.GetByID(ctx, orgID, conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, ErrNotFound
	}
	return conv, nil
}
