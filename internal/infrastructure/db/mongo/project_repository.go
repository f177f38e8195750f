package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

const collectionProjects = "projects"

type ProjectRepository struct {
	col *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(collectionProjects)}
}

type projectDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	Author        *domain.Author     `bson:"author,omitempty"`
	Category      string             `bson:"category"`
	Title         string             `bson:"title"`
	ContentText   string             `bson:"content_text"`
	ThumbnailURL  string             `bson:"thumbnail_url"`
	RenderingType string             `bson:"rendering_type"`
	CustomData    map[string]any     `bson:"custom_data,omitempty"`
	Views         int64              `bson:"views_count"`
	Likes         int64              `bson:"likes_count"`
	IsDeleted     bool               `bson:"is_deleted"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func toProjectDoc(p *domain.Project) projectDoc {
	return projectDoc{
		UserID:        p.UserID,
		Author:        p.Author,
		Category:      p.Category,
		Title:         p.Title,
		ContentText:   p.ContentText,
		ThumbnailURL:  p.ThumbnailURL,
		RenderingType: p.RenderingType,
		CustomData:    p.CustomData,
		Views:         p.Views,
		Likes:         p.Likes,
		IsDeleted:     p.IsDeleted,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (d *projectDoc) toDomain() *domain.Project {
	return &domain.Project{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		Author:        d.Author,
		Category:      d.Category,
		Title:         d.Title,
		ContentText:   d.ContentText,
		ThumbnailURL:  d.ThumbnailURL,
		RenderingType: d.RenderingType,
		CustomData:    d.CustomData,
		Views:         d.Views,
		Likes:         d.Likes,
		IsDeleted:     d.IsDeleted,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// Create inserts a new project document and sets p.ID.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, toProjectDoc(p))
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

// FindByID retrieves a live project.
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}

	var d projectDoc
	err := r.col.FindOne(ctx, bson.M{"_id": oid, "is_deleted": false}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

// List returns live projects newest first.
func (r *ProjectRepository) List(ctx context.Context, f ports.ListProjectsFilter) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"is_deleted": false}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"content_text": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []projectDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	projects := make([]*domain.Project, 0, len(docs))
	for i := range docs {
		projects = append(projects, docs[i].toDomain())
	}
	return projects, nil
}

// Update replaces the editable fields of a live project.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(p.ID)
	if !ok {
		return domain.ErrProjectNotFound
	}

	set := bson.M{
		"category":       p.Category,
		"title":          p.Title,
		"content_text":   p.ContentText,
		"thumbnail_url":  p.ThumbnailURL,
		"rendering_type": p.RenderingType,
		"custom_data":    p.CustomData,
		"updated_at":     p.UpdatedAt,
	}
	return r.updateLive(ctx, oid, bson.M{"$set": set})
}

func (r *ProjectRepository) SoftDelete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return domain.ErrProjectNotFound
	}
	return r.updateLive(ctx, oid, bson.M{"$set": bson.M{"is_deleted": true, "updated_at": time.Now().UTC()}})
}

func (r *ProjectRepository) SetLikes(ctx context.Context, id string, likes int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return domain.ErrProjectNotFound
	}
	return r.updateLive(ctx, oid, bson.M{"$set": bson.M{"likes_count": likes}})
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"is_deleted": false})
}

// EnsureIndexes creates necessary indexes on the projects collection.
func (r *ProjectRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "is_deleted", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (r *ProjectRepository) updateLive(ctx context.Context, oid primitive.ObjectID, update bson.M) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid, "is_deleted": false}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
