package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// MongoAnalysisRepository implements AnalysisRepository using MongoDB
type MongoAnalysisRepository struct {
	collection *mongo.Collection
}

// NewMongoAnalysisRepository creates a new MongoAnalysisRepository
func NewMongoAnalysisRepository(db *mongo.Database) *MongoAnalysisRepository {
	return &MongoAnalysisRepository{collection: db.Collection(CollectionDocumentAnalyses)}
}

// Create persists a new document analysis
func (r *MongoAnalysisRepository) Create(ctx context.Context, analysis *domain.DocumentAnalysis) error {
	_, err := r.collection.InsertOne(ctx, analysis)
	return err
}

// ListByOrganization retrieves the organization's analyses, most recent first
func (r *MongoAnalysisRepository) ListByOrganization(ctx context.Context, orgID string, limit int64) ([]*domain.DocumentAnalysis, error) {
	filter := bson.M{"organization_id": orgID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	analyses := make([]*domain.DocumentAnalysis, 0)
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}
