package domain

import (
	"time"
)

// Message types within a conversation
const (
	MessageTypeUser = "user"
	MessageTypeAI   = "ai"
)

// Message is a single entry in a conversation
type Message struct {
	ID        string    `bson:"id" json:"id"`
	Type      string    `bson:"type" json:"type"` // user | ai
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Conversation is a chat exchange owned by an organization
type Conversation struct {
	ID             string    `bson:"id" json:"id"`
	OrganizationID string    `bson:"organization_id" json:"organization_id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	Category       string    `bson:"category,omitempty" json:"category,omitempty"`
	Messages       []Message `bson:"messages" json:"messages"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
	Active         bool      `bson:"active" json:"active"`
}
