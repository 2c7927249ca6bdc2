package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lexai-legal/lexai-backend/internal/dto"
)

// fixedResponder always picks the first candidate
type fixedResponder struct{}

func (fixedResponder) Pick(responses []string) string {
	if len(responses) == 0 {
		return ""
	}
	return responses[0]
}

func TestChatService_SendMessage(t *testing.T) {
	convRepo := NewMockConversationRepository()
	svc := NewChatService(convRepo, fixedResponder{})

	resp, err := svc.SendMessage(context.Background(), "user-1", "org-1", &dto.ChatMessageRequest{
		Message:  "¿Qué plazo tengo para recurrir un despido?",
		Category: "laboral",
	})
	if err != nil {
		t.Fatalf("send message failed: %v", err)
	}

	if resp.ConversationID == "" {
		t.Error("expected a conversation ID")
	}
	if resp.Response != categoryResponses["laboral"][0] {
		t.Errorf("expected first laboral response, got %q", resp.Response)
	}

	conv, err := convRepo.GetByID(context.Background(), "org-1", resp.ConversationID)
	if err != nil {
		t.Fatalf("failed to load conversation: %v", err)
	}
	if conv == nil {
		t.Fatal("conversation was not persisted")
	}
	if conv.OrganizationID != "org-1" {
		t.Errorf("conversation stamped with org %s, expected org-1", conv.OrganizationID)
	}
	if conv.UserID != "user-1" {
		t.Errorf("conversation stamped with user %s, expected user-1", conv.UserID)
	}
	if len(conv.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(conv.Messages))
	}
	if conv.Messages[0].Type != "user" || conv.Messages[1].Type != "ai" {
		t.Errorf("expected user then ai messages, got %s then %s", conv.Messages[0].Type, conv.Messages[1].Type)
	}
	if conv.Messages[0].Content != "¿Qué plazo tengo para recurrir un despido?" {
		t.Errorf("unexpected user message content: %q", conv.Messages[0].Content)
	}
	if conv.Messages[1].Content != resp.Response {
		t.Errorf("stored AI message %q does not match response %q", conv.Messages[1].Content, resp.Response)
	}
}

func TestChatService_SendMessage_UnknownCategory(t *testing.T) {
	convRepo := NewMockConversationRepository()
	svc := NewChatService(convRepo, fixedResponder{})

	resp, err := svc.SendMessage(context.Background(), "user-1", "org-1", &dto.ChatMessageRequest{
		Message:  "Consulta general",
		Category: "astrologia",
	})
	if err != nil {
		t.Fatalf("send message failed: %v", err)
	}
	if resp.Response != generalResponses[0] {
		t.Errorf("expected fallback to general responses, got %q", resp.Response)
	}
}

func TestChatService_History_ScopedToOrganization(t *testing.T) {
	convRepo := NewMockConversationRepository()
	svc := NewChatService(convRepo, fixedResponder{})

	for i := 0; i < 3; i++ {
		if _, err := svc.SendMessage(context.Background(), "user-1", "org-1", &dto.ChatMessageRequest{Message: "hola"}); err != nil {
			t.Fatalf("send message failed: %v", err)
		}
	}
	if _, err := svc.SendMessage(context.Background(), "user-2", "org-2", &dto.ChatMessageRequest{Message: "hola"}); err != nil {
		t.Fatalf("send message failed: %v", err)
	}

	history, err := svc.History(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history.Conversations) != 3 {
		t.Fatalf("expected 3 conversations for org-1, got %d", len(history.Conversations))
	}
	for _, conv := range history.Conversations {
		if conv.OrganizationID != "org-1" {
			t.Errorf("history leaked conversation from org %s", conv.OrganizationID)
		}
	}
}

func TestChatService_GetConversation(t *testing.T) {
	convRepo := NewMockConversationRepository()
	svc := NewChatService(convRepo, fixedResponder{})

	resp, err := svc.SendMessage(context.Background(), "user-1", "org-1", &dto.ChatMessageRequest{Message: "hola"})
	if err != nil {
		t.Fatalf("send message failed: %v", err)
	}

	t.Run("own organization", func(t *testing.T) {
		conv, err := svc.GetConversation(context.Background(), "org-1", resp.ConversationID)
		if err != nil {
			t.Fatalf("get conversation failed: %v", err)
		}
		if conv.ID != resp.ConversationID {
			t.Errorf("expected conversation %s, got %s", resp.ConversationID, conv.ID)
		}
	})

	t.Run("another organization sees not found", func(t *testing.T) {
		_, err := svc.GetConversation(context.Background(), "org-2", resp.ConversationID)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for cross-tenant access, got %v", err)
		}
	})

	t.Run("unknown ID", func(t *testing.T) {
		_, err := svc.GetConversation(context.Background(), "org-1", "no-such-conversation")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
