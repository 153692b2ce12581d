package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"

	validator "github.com/go-playground/validator/v10"
)

// ErrValidation marks failures caused by bad client input; handlers translate
// it to a 400 response.
var ErrValidation = errors.New("validation failed")

type createUserInput struct {
	Name     string `validate:"required"`
	Nickname string `validate:"required"`
}

type UserService struct {
	store    store.Store
	validate *validator.Validate
}

func NewUserService(s store.Store) *UserService {
	return &UserService{
		store:    s,
		validate: validator.New(),
	}
}

// List returns all registered users. The result is never nil.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Create registers a new user. Name and nickname are both required and must be
// non-empty after trimming; nicknames are not required to be unique.
func (s *UserService) Create(ctx context.Context, name, nickname string) (*models.User, error) {
	in := createUserInput{
		Name:     strings.TrimSpace(name),
		Nickname: strings.TrimSpace(nickname),
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: name and nickname are required", ErrValidation)
	}

	id, err := s.store.CreateUser(ctx, in.Name, in.Nickname)
	if err != nil {
		return nil, err
	}

	return &models.User{ID: id, Name: in.Name, Nickname: in.Nickname}, nil
}
