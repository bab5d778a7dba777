package post

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"news-feed/internal/store"
)

var (
	ErrNotFound       = errors.New("post not found")
	ErrContentEmpty   = errors.New("content cannot be empty")
	ErrAuthorNotFound = errors.New("author not found")
)

type Repository interface {
	GetUser(id string) (store.User, bool)
	PutPost(p store.Post)
	GetPost(id string) (store.Post, bool)
}

type Service interface {
	Create(authorID, content string, media []string) (store.Post, error)
	Get(postID string) (store.Post, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

// Create validates before touching the store: a rejected post leaves no
// partial state behind.
func (s *service) Create(authorID, content string, media []string) (store.Post, error) {
	if content == "" {
		return store.Post{}, ErrContentEmpty
	}
	if _, ok := s.repo.GetUser(authorID); !ok {
		return store.Post{}, ErrAuthorNotFound
	}
	p := store.Post{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		Media:     media,
		CreatedAt: time.Now().UTC(),
	}
	s.repo.PutPost(p)
	return p, nil
}

func (s *service) Get(postID string) (store.Post, error) {
	p, ok := s.repo.GetPost(postID)
	if !ok {
		return store.Post{}, ErrNotFound
	}
	return p, nil
}
