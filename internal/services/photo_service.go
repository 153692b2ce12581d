package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"photoshare-backend/internal/models"
	"photoshare-backend/internal/store"
)

// UnknownNickname is shown for photos whose userId matches no registered user.
const UnknownNickname = "Unknown"

type PhotoService struct {
	store store.Store
}

func NewPhotoService(s store.Store) *PhotoService {
	return &PhotoService{store: s}
}

// Feed returns all photos newest-first, each enriched with the uploader's
// nickname. The nickname lookup joins against the full user list in memory;
// fine at this scale.
func (s *PhotoService) Feed(ctx context.Context) ([]models.FeedItem, error) {
	photos, err := s.store.ListPhotos(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	nicknames := make(map[string]string, len(users))
	for _, u := range users {
		nicknames[u.ID] = u.Nickname
	}

	feed := make([]models.FeedItem, 0, len(photos))
	for _, p := range photos {
		nickname, ok := nicknames[p.UserID]
		if !ok {
			nickname = UnknownNickname
		}
		feed = append(feed, models.FeedItem{
			ID:       p.Filename,
			URL:      PhotoURL(p.Filename),
			Nickname: nickname,
			Message:  p.Message,
		})
	}
	return feed, nil
}

// Add persists the record for an already-stored file. The userId is not
// checked against the user directory; a dangling reference is allowed.
func (s *PhotoService) Add(ctx context.Context, userID, filename, message string) (*models.UploadResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrValidation)
	}

	photo := models.Photo{
		UserID:    userID,
		Filename:  filename,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreatePhoto(ctx, photo); err != nil {
		return nil, err
	}

	return &models.UploadResult{
		ID:      filename,
		URL:     PhotoURL(filename),
		Message: message,
	}, nil
}

// PhotoURL builds the public path a stored file is served from.
func PhotoURL(filename string) string {
	return "/uploads/" + filename
}
