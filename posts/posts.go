// Package posts implements post creation, listing, fetching and
// owner-guarded updates.
package posts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkpost/models"
	"inkpost/store"
	"inkpost/upload"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrIncomplete = errors.New("title, summary and content are required")
	ErrNotOwner   = errors.New("only the author can modify this post")
)

// UploadError marks asset-host failures so handlers can map them apart
// from persistence failures.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return fmt.Sprintf("upload failed: %v", e.Err) }
func (e *UploadError) Unwrap() error { return e.Err }

// Input carries the client-supplied fields of a create or update. FilePath
// points at a locally staged upload, empty when no file was attached. Cover
// is the client-echoed existing cover URL, used on update when no new file
// replaces it.
type Input struct {
	Title    string
	Summary  string
	Content  string
	FilePath string
	Cover    string
}

type Service struct {
	posts    store.PostStore
	uploader upload.Uploader
	limit    int
}

func NewService(posts store.PostStore, uploader upload.Uploader, limit int) *Service {
	return &Service{posts: posts, uploader: uploader, limit: limit}
}

// Create validates the input, uploads the staged file when present and
// persists the post. An upload failure aborts the whole operation; no
// partial post is written.
func (s *Service) Create(ctx context.Context, authorID primitive.ObjectID, in Input) (models.Post, error) {
	if in.Title == "" || in.Summary == "" || in.Content == "" {
		return models.Post{}, ErrIncomplete
	}

	cover := ""
	if in.FilePath != "" {
		url, err := s.uploader.Upload(ctx, in.FilePath)
		if err != nil {
			return models.Post{}, &UploadError{Err: err}
		}
		cover = url
	}

	post := models.Post{
		Title:     in.Title,
		Summary:   in.Summary,
		Content:   in.Content,
		Cover:     cover,
		Author:    authorID,
		CreatedAt: time.Now(),
	}
	if err := s.posts.CreatePost(ctx, &post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// List returns the newest posts, capped at the configured page limit, with
// author usernames resolved.
func (s *Service) List(ctx context.Context) ([]models.PostWithAuthor, error) {
	return s.posts.ListPosts(ctx, s.limit)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (models.PostWithAuthor, error) {
	return s.posts.GetPost(ctx, id)
}

// Update mutates a post's fields after checking that the caller is its
// author. A new staged file replaces the cover; otherwise the client's
// echoed cover value is kept. Nothing is written before the ownership and
// validation checks pass.
func (s *Service) Update(ctx context.Context, id, authorID primitive.ObjectID, in Input) (models.PostWithAuthor, error) {
	existing, err := s.posts.GetPost(ctx, id)
	if err != nil {
		return models.PostWithAuthor{}, err
	}
	if existing.Author.ID != authorID {
		return models.PostWithAuthor{}, ErrNotOwner
	}
	if in.Title == "" || in.Summary == "" || in.Content == "" {
		return models.PostWithAuthor{}, ErrIncomplete
	}

	cover := in.Cover
	if in.FilePath != "" {
		url, err := s.uploader.Upload(ctx, in.FilePath)
		if err != nil {
			return models.PostWithAuthor{}, &UploadError{Err: err}
		}
		cover = url
	}

	fields := store.PostFields{
		Title:   in.Title,
		Summary: in.Summary,
		Content: in.Content,
		Cover:   cover,
	}
	if err := s.posts.UpdatePost(ctx, id, fields); err != nil {
		return models.PostWithAuthor{}, err
	}
	return s.posts.GetPost(ctx, id)
}
