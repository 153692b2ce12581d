// Package mongostore implements store.Store on top of MongoDB collections.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"photoshare-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type userDoc struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Name     string        `bson:"name"`
	Nickname string        `bson:"nickname"`
}

type photoDoc struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	UserID    string        `bson:"userId"`
	Filename  string        `bson:"filename"`
	Message   string        `bson:"message"`
	CreatedAt time.Time     `bson:"createdAt"`
}

// Store holds the users and photos collections.
type Store struct {
	users  *mongo.Collection
	photos *mongo.Collection
}

func New(database *mongo.Database) *Store {
	return &Store{
		users:  database.Collection("users"),
		photos: database.Collection("photos"),
	}
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	cur, err := s.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, models.User{
			ID:       d.ID.Hex(),
			Name:     d.Name,
			Nickname: d.Nickname,
		})
	}
	return users, nil
}

func (s *Store) CreateUser(ctx context.Context, name, nickname string) (string, error) {
	res, err := s.users.InsertOne(ctx, userDoc{Name: name, Nickname: nickname})
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (s *Store) ListPhotos(ctx context.Context) ([]models.Photo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.photos.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find photos: %w", err)
	}

	var docs []photoDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}

	photos := make([]models.Photo, 0, len(docs))
	for _, d := range docs {
		photos = append(photos, models.Photo{
			UserID:    d.UserID,
			Filename:  d.Filename,
			Message:   d.Message,
			CreatedAt: d.CreatedAt,
		})
	}
	return photos, nil
}

func (s *Store) CreatePhoto(ctx context.Context, photo models.Photo) error {
	doc := photoDoc{
		UserID:    photo.UserID,
		Filename:  photo.Filename,
		Message:   photo.Message,
		CreatedAt: photo.CreatedAt,
	}
	if _, err := s.photos.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}
