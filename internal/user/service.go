package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"news-feed/internal/shared/jwt"
	"news-feed/internal/store"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrUsernameEmpty = errors.New("username cannot be empty")
)

type CreatePayload struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Repository interface {
	PutUser(u store.User)
	GetUser(id string) (store.User, bool)
}

type Service interface {
	// Create registers the user and returns a signed token for them.
	Create(p CreatePayload) (store.User, string, error)
	Get(id string) (store.User, error)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

func (s *service) Create(p CreatePayload) (store.User, string, error) {
	if p.Username == "" {
		return store.User{}, "", ErrUsernameEmpty
	}
	u := store.User{
		ID:        uuid.NewString(),
		Username:  p.Username,
		AvatarURL: p.AvatarURL,
		CreatedAt: time.Now().UTC(),
	}
	s.repo.PutUser(u)
	tok, err := jwt.Sign(u.ID)
	if err != nil {
		return store.User{}, "", fmt.Errorf("sign token: %w", err)
	}
	return u, tok, nil
}

func (s *service) Get(id string) (store.User, error) {
	u, ok := s.repo.GetUser(id)
	if !ok {
		return store.User{}, ErrNotFound
	}
	return u, nil
}
