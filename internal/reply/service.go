package reply

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"news-feed/internal/store"
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrContentEmpty   = errors.New("content cannot be empty")
	ErrAuthorNotFound = errors.New("author not found")
)

type Repository interface {
	GetUser(id string) (store.User, bool)
	GetPost(id string) (store.Post, bool)
	AddReply(rep store.Reply) error
	Replies(postID string) []store.Reply
}

type Service interface {
	Create(authorID, postID, content string) (store.Reply, error)
	ListByPost(postID string) ([]store.Reply, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Create(authorID, postID, content string) (store.Reply, error) {
	if content == "" {
		return store.Reply{}, ErrContentEmpty
	}
	if _, ok := s.repo.GetUser(authorID); !ok {
		return store.Reply{}, ErrAuthorNotFound
	}
	if _, ok := s.repo.GetPost(postID); !ok {
		return store.Reply{}, ErrPostNotFound
	}
	rep := store.Reply{
		ID:        uuid.NewString(),
		PostID:    postID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddReply(rep); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return store.Reply{}, ErrPostNotFound
		}
		return store.Reply{}, err
	}
	return rep, nil
}

func (s *service) ListByPost(postID string) ([]store.Reply, error) {
	if _, ok := s.repo.GetPost(postID); !ok {
		return nil, ErrPostNotFound
	}
	return s.repo.Replies(postID), nil
}
