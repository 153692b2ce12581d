// Package store defines the persistence interface shared by the MongoDB-backed
// implementation and the in-memory one used in tests.
package store

import (
	"context"

	"photoshare-backend/internal/models"
)

// Store persists users and photo records.
type Store interface {
	// ListUsers returns all users in natural storage order.
	ListUsers(ctx context.Context) ([]models.User, error)
	// CreateUser persists a new user and returns its assigned id.
	CreateUser(ctx context.Context, name, nickname string) (string, error)
	// ListPhotos returns all photo records ordered by CreatedAt descending.
	ListPhotos(ctx context.Context) ([]models.Photo, error)
	// CreatePhoto persists a photo record as-is.
	CreatePhoto(ctx context.Context, photo models.Photo) error
}
