package models

// User is a registered member of the photo feed. The ID is assigned by the
// storage layer and is opaque to the rest of the application.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

// CreateUserRequest is the POST /users payload.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}
