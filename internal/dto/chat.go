package dto

import (
	"time"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// ChatMessageRequest represents an inbound chat message
type ChatMessageRequest struct {
	Message  string `json:"message" binding:"required"`
	Category string `json:"category" binding:"omitempty,max=100"`
}

// ChatMessageResponse is the assistant's reply to a chat message
type ChatMessageResponse struct {
	ConversationID string    `json:"conversation_id"`
	Response       string    `json:"response"`
	Timestamp      time.Time `json:"timestamp"`
}

// ChatHistoryResponse lists the caller organization's conversations
type ChatHistoryResponse struct {
	Conversations []*domain.Conversation `json:"conversations"`
}
