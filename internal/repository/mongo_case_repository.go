package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lexai-legal/lexai-backend/internal/domain"
)

// MongoCaseRepository implements CaseRepository using MongoDB
type MongoCaseRepository struct {
	collection *mongo.Collection
}

// NewMongoCaseRepository creates a new MongoCaseRepository
func NewMongoCaseRepository(db *mongo.Database) *MongoCaseRepository {
	return &MongoCaseRepository{collection: db.Collection(CollectionCases)}
}

// Create creates a new case
func (r *MongoCaseRepository) Create(ctx context.Context, legalCase *domain.LegalCase) error {
	_, err := r.collection.InsertOne(ctx, legalCase)
	return err
}

// ListByOrganization retrieves the organization's cases, most recently
// updated first
func (r *MongoCaseRepository) ListByOrganization(ctx context.Context, orgID string, limit int64) ([]*domain.LegalCase, error) {
	filter := bson.M{"organization_id": orgID}
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cases := make([]*domain.LegalCase, 0)
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// GetByID retrieves a case by ID within the organization
func (r *MongoCaseRepository) GetByID(ctx context.Context, orgID, id string) (*domain.LegalCase, error) {
	legalCase := &domain.LegalCase{}
	err := r.collection.FindOne(ctx, bson.M{"id": id, "organization_id": orgID}).Decode(legalCase)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return legalCase, nil
}

// CountByOrganization counts the organization's cases
func (r *MongoCaseRepository) CountByOrganization(ctx context.Context, orgID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"organization_id": orgID})
}

// CountByStatus counts the organization's cases with the given status
func (r *MongoCaseRepository) CountByStatus(ctx context.Context, orgID, status string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"organization_id": orgID, "status": status})
}
