// Package memstore is an in-memory store implementation used by tests. It
// mirrors the mongo store's contract: unique usernames, newest-first
// capped listing, author usernames resolved on reads.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"inkpost/models"
	"inkpost/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Store struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
	posts map[primitive.ObjectID]models.Post
}

func New() *Store {
	return &Store{
		users: make(map[primitive.ObjectID]models.User),
		posts: make(map[primitive.ObjectID]models.Post),
	}
}

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return store.ErrDuplicateUsername
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUserByName(_ context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *Store) GetUser(_ context.Context, id primitive.ObjectID) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (s *Store) CreatePost(_ context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	s.posts[post.ID] = *post
	return nil
}

func (s *Store) resolve(p models.Post) models.PostWithAuthor {
	author := models.AuthorRef{ID: p.Author}
	if u, ok := s.users[p.Author]; ok {
		author.Username = u.Username
	}
	return models.PostWithAuthor{
		ID:        p.ID,
		Title:     p.Title,
		Summary:   p.Summary,
		Content:   p.Content,
		Cover:     p.Cover,
		Author:    author,
		CreatedAt: p.CreatedAt,
	}
}

func (s *Store) GetPost(_ context.Context, id primitive.ObjectID) (models.PostWithAuthor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return models.PostWithAuthor{}, store.ErrNotFound
	}
	return s.resolve(p), nil
}

func (s *Store) ListPosts(_ context.Context, limit int) ([]models.PostWithAuthor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	if len(all) > limit {
		all = all[:limit]
	}
	out := make([]models.PostWithAuthor, len(all))
	for i, p := range all {
		out[i] = s.resolve(p)
	}
	return out, nil
}

func (s *Store) UpdatePost(_ context.Context, id primitive.ObjectID, fields store.PostFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return store.ErrNotFound
	}
	p.Title = fields.Title
	p.Summary = fields.Summary
	p.Content = fields.Content
	p.Cover = fields.Cover
	s.posts[id] = p
	return nil
}
