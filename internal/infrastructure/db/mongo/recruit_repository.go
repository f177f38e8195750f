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

const collectionRecruitItems = "recruit_items"

type RecruitRepository struct {
	col *mongo.Collection
}

func NewRecruitRepository(db *mongo.Database) *RecruitRepository {
	return &RecruitRepository{col: db.Collection(collectionRecruitItems)}
}

// Date is stored as YYYY-MM-DD so that sorting the string sorts the days.
type recruitDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Title          string             `bson:"title"`
	Description    string             `bson:"description"`
	Type           string             `bson:"type"`
	Date           string             `bson:"date"`
	Location       string             `bson:"location,omitempty"`
	Prize          string             `bson:"prize,omitempty"`
	Salary         string             `bson:"salary,omitempty"`
	Company        string             `bson:"company,omitempty"`
	EmploymentType string             `bson:"employment_type,omitempty"`
	Link           string             `bson:"link,omitempty"`
	Thumbnail      string             `bson:"thumbnail,omitempty"`
	IsActive       bool               `bson:"is_active"`
	CreatedBy      string             `bson:"created_by"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func newRecruitDoc(item *domain.RecruitItem) recruitDoc {
	return recruitDoc{
		Title:          item.Title,
		Description:    item.Description,
		Type:           item.Type,
		Date:           item.Date,
		Location:       item.Location,
		Prize:          item.Prize,
		Salary:         item.Salary,
		Company:        item.Company,
		EmploymentType: item.EmploymentType,
		Link:           item.Link,
		Thumbnail:      item.Thumbnail,
		IsActive:       item.IsActive,
		CreatedBy:      item.CreatedBy,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}

func (d *recruitDoc) toDomain() *domain.RecruitItem {
	return &domain.RecruitItem{
		ID:             d.ID.Hex(),
		Title:          d.Title,
		Description:    d.Description,
		Type:           d.Type,
		Date:           d.Date,
		Location:       d.Location,
		Prize:          d.Prize,
		Salary:         d.Salary,
		Company:        d.Company,
		EmploymentType: d.EmploymentType,
		Link:           d.Link,
		Thumbnail:      d.Thumbnail,
		IsActive:       d.IsActive,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *RecruitRepository) Create(ctx context.Context, item *domain.RecruitItem) error {
	res, err := r.col.InsertOne(ctx, newRecruitDoc(item))
	if err != nil {
		return fmt.Errorf("insert recruit item: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		item.ID = oid.Hex()
	}
	return nil
}

func (r *RecruitRepository) FindByID(ctx context.Context, id string) (*domain.RecruitItem, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrRecruitItemNotFound
	}
	var d recruitDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecruitItemNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

func (r *RecruitRepository) List(ctx context.Context, f ports.ListRecruitFilter) ([]*domain.RecruitItem, error) {
	filter := bson.M{}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.ActiveOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []recruitDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.RecruitItem, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

// Update replaces every mutable field; soft deletes go through here with
// IsActive cleared.
func (r *RecruitRepository) Update(ctx context.Context, item *domain.RecruitItem) error {
	oid, ok := objectID(item.ID)
	if !ok {
		return domain.ErrRecruitItemNotFound
	}
	doc := newRecruitDoc(item)
	set := bson.M{
		"title":           doc.Title,
		"description":     doc.Description,
		"type":            doc.Type,
		"date":            doc.Date,
		"location":        doc.Location,
		"prize":           doc.Prize,
		"salary":          doc.Salary,
		"company":         doc.Company,
		"employment_type": doc.EmploymentType,
		"link":            doc.Link,
		"thumbnail":       doc.Thumbnail,
		"is_active":       doc.IsActive,
		"updated_at":      doc.UpdatedAt,
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecruitItemNotFound
	}
	return nil
}

func (r *RecruitRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "type", Value: 1}, {Key: "date", Value: 1}},
	})
	return err
}
