package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vibefolio/vibefolio-api/internal/core/domain"
)

// ReactionRepository keeps likes and bookmarks in one collection per kind.
type ReactionRepository struct {
	db *mongo.Database
}

func NewReactionRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{db: db}
}

type reactionDoc struct {
	UserID    string    `bson:"user_id"`
	ProjectID string    `bson:"project_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func (r *ReactionRepository) collection(kind domain.ReactionKind) *mongo.Collection {
	return r.db.Collection(string(kind) + "s")
}

// Toggle deletes the reaction when it exists and inserts it otherwise. The
// unique (user_id, project_id) index turns a racing insert into "active".
func (r *ReactionRepository) Toggle(ctx context.Context, re domain.Reaction) (bool, error) {
	col := r.collection(re.Kind)
	key := bson.M{"user_id": re.UserID, "project_id": re.ProjectID}

	res, err := col.DeleteOne(ctx, key)
	if err != nil {
		return false, fmt.Errorf("delete reaction: %w", err)
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	_, err = col.InsertOne(ctx, reactionDoc{UserID: re.UserID, ProjectID: re.ProjectID, CreatedAt: re.CreatedAt})
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return false, fmt.Errorf("insert reaction: %w", err)
	}
	return true, nil
}

func (r *ReactionRepository) Count(ctx context.Context, kind domain.ReactionKind, projectID string) (int64, error) {
	return r.collection(kind).CountDocuments(ctx, bson.M{"project_id": projectID})
}

func (r *ReactionRepository) ProjectIDs(ctx context.Context, kind domain.ReactionKind, userID string) ([]string, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"project_id": 1})

	cur, err := r.collection(kind).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []reactionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ProjectID)
	}
	return ids, nil
}

func (r *ReactionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for _, kind := range []domain.ReactionKind{domain.ReactionLike, domain.ReactionBookmark} {
		_, err := r.collection(kind).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "project_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "project_id", Value: 1}}},
		})
		if err != nil {
			return fmt.Errorf("%s indexes: %w", kind, err)
		}
	}
	return nil
}
