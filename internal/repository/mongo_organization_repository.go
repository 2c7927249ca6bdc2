package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// Collection names
const (
	CollectionOrganizations    = "organizations"
	CollectionUsers            = "users"
	CollectionConversations    = "conversations"
	CollectionCases            = "cases"
	CollectionDocumentAnalyses = "document_analyses"
)

// MongoOrganizationRepository implements OrganizationRepository using MongoDB
type MongoOrganizationRepository struct {
	collection *mongo.Collection
}

// NewMongoOrganizationRepository creates a new MongoOrganizationRepository
func NewMongoOrganizationRepository(db *mongo.Database) *MongoOrganizationRepository {
	return &MongoOrganizationRepository{collection: db.Collection(CollectionOrganizations)}
}

// Create creates a new organization
func (r *MongoOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	_, err := r.collection.InsertOne(ctx, org)
	return err
}

// GetByID retrieves an organization by ID
func (r *MongoOrganizationRepository) GetByID(ctx context.Context, id string) (*domain.Organization, error) {
	org := &domain.Organization{}
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(org)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return org, nil
}
