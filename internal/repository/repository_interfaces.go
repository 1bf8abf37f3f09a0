// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlansRepositoryInterface defines the interface for plan history repository operations.
type PlansRepositoryInterface interface {
	Save(ctx context.Context, record *PlanRecord) (*PlanRecord, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*PlanRecord, error)
	List(ctx context.Context, limit int) ([]PlanRecord, error)
	CountByFits(ctx context.Context, fits bool) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
