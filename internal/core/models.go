package core

import "time"

type RegisterMessage struct {
	Username string
	Password string
	Email    string
}

type AuthMessage struct {
	Username string
	Password string
}

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID   string
	Username string
}

type UserRecord struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Admin        bool      `json:"admin"`
	RegisteredOn time.Time `json:"registered_on"`
}

type BucketlistRecord struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	CreatedBy    string    `json:"created_by"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

type ItemRecord struct {
	ID           uint      `json:"id"`
	BucketlistID uint      `json:"bucketlist_id"`
	Name         string    `json:"name"`
	Done         bool      `json:"done"`
	DateCreated  time.Time `json:"date_created"`
	DateModified time.Time `json:"date_modified"`
}

// ListQuery carries the pagination and search parameters for listing a
// user's bucketlists.
type ListQuery struct {
	Query string
	Page  int
	Limit int
}
