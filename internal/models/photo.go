package models

import "time"

// Photo is a stored photo record. UserID references a User by id but is not
// validated at write time; a dangling reference renders as "Unknown" in the feed.
type Photo struct {
	UserID    string    `json:"user_id"`
	Filename  string    `json:"filename"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedItem is one entry of GET /photos. ID is the stored filename, which doubles
// as the public identifier of a photo.
type FeedItem struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Nickname string `json:"nickname"`
	Message  string `json:"message"`
}

// UploadResult is the POST /photos response.
type UploadResult struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Message string `json:"message"`
}
