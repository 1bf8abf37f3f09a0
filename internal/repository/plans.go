// Package repository provides data access for loading plan history.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/trailer-loading-service/internal/domain/model"
)

// PlanRecord represents one optimization run persisted for history.
type PlanRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RequestDigest string             `bson:"request_digest" json:"request_digest"`
	Trailer       model.Trailer      `bson:"trailer" json:"trailer"`
	BoxTypes      int                `bson:"box_types" json:"box_types"`
	BoxUnits      int                `bson:"box_units" json:"box_units"`
	Plan          model.LoadingPlan  `bson:"plan" json:"plan"`
	RequestedBy   string             `bson:"requested_by,omitempty" json:"requested_by,omitempty"`
	Depot         string             `bson:"depot,omitempty" json:"depot,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// PlansRepository provides methods for loading plan history operations.
type PlansRepository struct {
	collection *mongo.Collection
}

// NewPlansRepository creates a new plans repository.
func NewPlansRepository(db *MongoDB) *PlansRepository {
	return &PlansRepository{
		collection: db.Plans,
	}
}

// Save persists a plan record, assigning its id and timestamp.
func (r *PlansRepository) Save(ctx context.Context, record *PlanRecord) (*PlanRecord, error) {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GetByID returns one plan record, or nil when it does not exist.
func (r *PlansRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*PlanRecord, error) {
	var record PlanRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns the most recent plan records, newest first.
func (r *PlansRepository) List(ctx context.Context, limit int) ([]PlanRecord, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []PlanRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// CountByFits counts stored plans by their fits outcome.
func (r *PlansRepository) CountByFits(ctx context.Context, fits bool) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"plan.fits": fits})
}
