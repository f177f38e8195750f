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

const collectionComments = "comments"

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments)}
}

type commentDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ProjectID       string             `bson:"project_id"`
	UserID          string             `bson:"user_id"`
	Author          *domain.Author     `bson:"author,omitempty"`
	Content         string             `bson:"content"`
	ParentID        string             `bson:"parent_comment_id,omitempty"`
	MentionedUserID string             `bson:"mentioned_user_id,omitempty"`
	IsDeleted       bool               `bson:"is_deleted"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d *commentDoc) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:              d.ID.Hex(),
		ProjectID:       d.ProjectID,
		UserID:          d.UserID,
		Author:          d.Author,
		Content:         d.Content,
		ParentID:        d.ParentID,
		MentionedUserID: d.MentionedUserID,
		IsDeleted:       d.IsDeleted,
		CreatedAt:       d.CreatedAt,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	doc := commentDoc{
		ProjectID:       c.ProjectID,
		UserID:          c.UserID,
		Author:          c.Author,
		Content:         c.Content,
		ParentID:        c.ParentID,
		MentionedUserID: c.MentionedUserID,
		CreatedAt:       c.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	var d commentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid, "is_deleted": false}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return d.toDomain(), nil
}

func (r *CommentRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"project_id": projectID, "is_deleted": false}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []commentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]*domain.Comment, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *CommentRepository) SoftDelete(ctx context.Context, id string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrCommentNotFound
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"is_deleted": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"is_deleted": false})
}

func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
