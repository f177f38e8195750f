package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

// ViewRepository implements ports.ViewRepository using MongoDB.
type ViewRepository struct {
	db *mongo.Database
}

// NewViewRepository creates a new ViewRepository.
func NewViewRepository(db *mongo.Database) ports.ViewRepository {
	return &ViewRepository{db: db}
}

// IncrementViews atomically bumps views_count and returns the new value.
func (r *ViewRepository) IncrementViews(ctx context.Context, projectID string) (int64, error) {
	oid, ok := objectID(projectID)
	if !ok {
		return 0, domain.ErrProjectNotFound
	}

	filter := bson.M{"_id": oid, "is_deleted": false}
	update := bson.M{"$inc": bson.M{"views_count": 1}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"views_count": 1})

	var out struct {
		Views int64 `bson:"views_count"`
	}
	err := r.db.Collection(collectionProjects).FindOneAndUpdate(ctx, filter, update, opts).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, domain.ErrProjectNotFound
	}
	return out.Views, err
}

// InsertView persists a view to the project_views audit collection.
func (r *ViewRepository) InsertView(ctx context.Context, view *domain.ProjectView) error {
	doc := bson.M{
		"project_id":   view.ProjectID,
		"viewer":       view.Viewer,
		"viewed_at":    view.ViewedAt.UTC(),
		"processed_at": time.Now().UTC(),
	}

	_, err := r.db.Collection("project_views").InsertOne(ctx, doc)
	return err
}
