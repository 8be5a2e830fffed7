// Package store defines the persistence boundary. Implementations live in
// subpackages; services depend on these interfaces only.
package store

import (
	"context"
	"errors"

	"inkpost/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

type UserStore interface {
	// CreateUser inserts a new user. Returns ErrDuplicateUsername when the
	// username is already taken; the underlying store's unique constraint
	// decides races between concurrent registrations.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByName(ctx context.Context, username string) (models.User, error)
	GetUser(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

type PostStore interface {
	CreatePost(ctx context.Context, post *models.Post) error
	// GetPost returns the post with its author's username resolved.
	GetPost(ctx context.Context, id primitive.ObjectID) (models.PostWithAuthor, error)
	// ListPosts returns at most limit posts, newest first.
	ListPosts(ctx context.Context, limit int) ([]models.PostWithAuthor, error)
	// UpdatePost overwrites the mutable fields of an existing post.
	UpdatePost(ctx context.Context, id primitive.ObjectID, fields PostFields) error
}

// PostFields are the client-mutable fields of a post.
type PostFields struct {
	Title   string
	Summary string
	Content string
	Cover   string
}
