// Package memstore is an in-memory store.Store used by unit tests.
package memstore

import (
	"context"
	"sort"
	"sync"

	"photoshare-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Store struct {
	mu     sync.Mutex
	users  []models.User
	photos []models.Photo
}

func New() *Store {
	return &Store{}
}

func (s *Store) ListUsers(_ context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *Store) CreateUser(_ context.Context, name, nickname string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := bson.NewObjectID().Hex()
	s.users = append(s.users, models.User{ID: id, Name: name, Nickname: nickname})
	return id, nil
}

func (s *Store) ListPhotos(_ context.Context) ([]models.Photo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	photos := make([]models.Photo, len(s.photos))
	copy(photos, s.photos)
	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].CreatedAt.After(photos[j].CreatedAt)
	})
	return photos, nil
}

func (s *Store) CreatePhoto(_ context.Context, photo models.Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.photos = append(s.photos, photo)
	return nil
}
