package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
)

const collectionBanners = "banners"

type BannerRepository struct {
	col *mongo.Collection
}

func NewBannerRepository(db *mongo.Database) *BannerRepository {
	return &BannerRepository{col: db.Collection(collectionBanners)}
}

type bannerDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	ImageURL     string             `bson:"image_url"`
	LinkURL      string             `bson:"link_url,omitempty"`
	PageType     string             `bson:"page_type"`
	DisplayOrder int                `bson:"display_order"`
	IsActive     bool               `bson:"is_active"`
	CreatedBy    string             `bson:"created_by"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d *bannerDoc) toDomain() *domain.Banner {
	return &domain.Banner{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		ImageURL:     d.ImageURL,
		LinkURL:      d.LinkURL,
		PageType:     d.PageType,
		DisplayOrder: d.DisplayOrder,
		IsActive:     d.IsActive,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *BannerRepository) Create(ctx context.Context, b *domain.Banner) error {
	doc := bannerDoc{
		Title:        b.Title,
		ImageURL:     b.ImageURL,
		LinkURL:      b.LinkURL,
		PageType:     b.PageType,
		DisplayOrder: b.DisplayOrder,
		IsActive:     b.IsActive,
		CreatedBy:    b.CreatedBy,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid.Hex()
	}
	return nil
}

func (r *BannerRepository) FindByID(ctx context.Context, id string) (*domain.Banner, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrBannerNotFound
	}
	var d bannerDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBannerNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

func (r *BannerRepository) List(ctx context.Context, f ports.ListBannersFilter) ([]*domain.Banner, error) {
	filter := bson.M{}
	if f.PageType != "" {
		filter["page_type"] = f.PageType
	}
	if f.ActiveOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []bannerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.Banner, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *BannerRepository) Update(ctx context.Context, b *domain.Banner) error {
	oid, ok := objectID(b.ID)
	if !ok {
		return domain.ErrBannerNotFound
	}
	set := bson.M{
		"title":         b.Title,
		"image_url":     b.ImageURL,
		"link_url":      b.LinkURL,
		"page_type":     b.PageType,
		"display_order": b.DisplayOrder,
		"is_active":     b.IsActive,
		"updated_at":    b.UpdatedAt,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrBannerNotFound
	}
	return nil
}

func (r *BannerRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrBannerNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrBannerNotFound
	}
	return nil
}

func (r *BannerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "page_type", Value: 1}, {Key: "display_order", Value: 1}},
	})
	return err
}
