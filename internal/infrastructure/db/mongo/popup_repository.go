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
)

const collectionPopups = "popups"

type PopupRepository struct {
	col *mongo.Collection
}

func NewPopupRepository(db *mongo.Database) *PopupRepository {
	return &PopupRepository{col: db.Collection(collectionPopups)}
}

type popupDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Content      string             `bson:"content,omitempty"`
	ImageURL     string             `bson:"image_url,omitempty"`
	LinkURL      string             `bson:"link_url,omitempty"`
	LinkText     string             `bson:"link_text"`
	IsActive     bool               `bson:"is_active"`
	StartDate    *time.Time         `bson:"start_date"`
	EndDate      *time.Time         `bson:"end_date"`
	DisplayOrder int                `bson:"display_order"`
	CreatedBy    string             `bson:"created_by"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func newPopupDoc(p *domain.Popup) popupDoc {
	return popupDoc{
		Title:        p.Title,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		LinkURL:      p.LinkURL,
		LinkText:     p.LinkText,
		IsActive:     p.IsActive,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		DisplayOrder: p.DisplayOrder,
		CreatedBy:    p.CreatedBy,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (d *popupDoc) toDomain() *domain.Popup {
	return &domain.Popup{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Content:      d.Content,
		ImageURL:     d.ImageURL,
		LinkURL:      d.LinkURL,
		LinkText:     d.LinkText,
		IsActive:     d.IsActive,
		StartDate:    utcPtr(d.StartDate),
		EndDate:      utcPtr(d.EndDate),
		DisplayOrder: d.DisplayOrder,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func (r *PopupRepository) Create(ctx context.Context, p *domain.Popup) error {
	res, err := r.col.InsertOne(ctx, newPopupDoc(p))
	if err != nil {
		return fmt.Errorf("insert popup: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

func (r *PopupRepository) FindByID(ctx context.Context, id string) (*domain.Popup, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrPopupNotFound
	}
	var d popupDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPopupNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

func (r *PopupRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Popup, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []popupDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.Popup, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *PopupRepository) Update(ctx context.Context, p *domain.Popup) error {
	oid, ok := objectID(p.ID)
	if !ok {
		return domain.ErrPopupNotFound
	}
	doc := newPopupDoc(p)
	set := bson.M{
		"title":         doc.Title,
		"content":       doc.Content,
		"image_url":     doc.ImageURL,
		"link_url":      doc.LinkURL,
		"link_text":     doc.LinkText,
		"is_active":     doc.IsActive,
		"start_date":    doc.StartDate,
		"end_date":      doc.EndDate,
		"display_order": doc.DisplayOrder,
		"updated_at":    doc.UpdatedAt,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPopupNotFound
	}
	return nil
}

func (r *PopupRepository) Delete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrPopupNotFound
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPopupNotFound
	}
	return nil
}

func (r *PopupRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "display_order", Value: 1}},
	})
	return err
}
