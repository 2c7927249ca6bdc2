package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// MongoConversationRepository implements ConversationRepository using MongoDB
type MongoConversationRepository struct {
	collection *mongo.Collection
}

// NewMongoConversationRepository creates a new MongoConversationRepository
func NewMongoConversationRepository(db *mongo.Database) *MongoConversationRepository {
	return &MongoConversationRepository{collection: db.Collection(CollectionConversations)}
}

// Create creates a new conversation
func (r *MongoConversationRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	_, err := r.collection.InsertOne(ctx, conv)
	return err
}

// ListByOrganization retrieves the organization's active conversations,
// most recently updated first
func (r *MongoConversationRepository) ListByOrganization(ctx context.Context, orgID string, limit int64) ([]*domain.Conversation, error) {
	filter := bson.M{"organization_id": orgID, "active": true}
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	conversations := make([]*domain.Conversation, 0)
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// GetByID retrieves a conversation by ID within the organization
func (r *MongoConversationRepository) GetByID(ctx context.Context, orgID, id string) (*domain.Conversation, error) {
	conv := &domain.Conversation{}
	err := r.collection.FindOne(ctx, bson.M{"id": id, "organization_id": orgID}).Decode(conv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return conv, nil
}

// CountByOrganization counts the organization's conversations
func (r *MongoConversationRepository) CountByOrganization(ctx context.Context, orgID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"organization_id": orgID})
}
