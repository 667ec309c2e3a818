package repository

import (
	"context"
	"errors"
	"time"

	"board-web/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const DraftCollection = "drafts"

// MongoDraftStore relies on the TTL index from bootstrap.EnsureDraftIndexes
// for cleanup; reads still filter on expires_at since TTL removal is lazy.
type MongoDraftStore struct {
	coll *mongo.Collection
	ttl  time.Duration
}

func NewMongoDraftStore(db *mongo.Database, ttl time.Duration) *MongoDraftStore {
	return &MongoDraftStore{coll: db.Collection(DraftCollection), ttl: ttl}
}

func (s *MongoDraftStore) Get(ctx context.Context, key string) (*models.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":        key,
		"expires_at": bson.M{"$gt": time.Now()},
	}
	var d models.Draft
	if err := s.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (s *MongoDraftStore) Save(ctx context.Context, d models.Draft) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"post_id":    d.PostID,
		"viewer_id":  d.ViewerID,
		"title":      d.Title,
		"body":       d.Body,
		"category":   d.Category,
		"updated_at": now,
		"expires_at": now.Add(s.ttl),
	}}
	_, err := s.coll.UpdateOne(ctx, bson.M{"_id": d.Key}, update, options.UpdateOne().SetUpsert(true))
	return err
}

func (s *MongoDraftStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.coll.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
