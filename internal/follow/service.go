package follow

import (
	"errors"

	"news-feed/internal/store"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	GetUser(id string) (store.User, bool)
	Follow(followerID, targetID string)
	Unfollow(followerID, targetID string)
	Followers(userID string) []string
	Following(userID string) []string
	IsFollowing(followerID, targetID string) bool
}

type Service interface {
	Follow(followerID, targetID string) error
	Unfollow(followerID, targetID string) error
	Followers(userID string) []string
	Following(userID string) []string
	IsFollowing(followerID, targetID string) bool
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

// Follow links followerID to targetID. Both sides must exist; following
// yourself is allowed and puts your own posts in your feed.
func (s *service) Follow(followerID, targetID string) error {
	if err := s.ensureUser(followerID); err != nil {
		return err
	}
	if err := s.ensureUser(targetID); err != nil {
		return err
	}
	s.repo.Follow(followerID, targetID)
	return nil
}

func (s *service) Unfollow(followerID, targetID string) error {
	if err := s.ensureUser(followerID); err != nil {
		return err
	}
	if err := s.ensureUser(targetID); err != nil {
		return err
	}
	s.repo.Unfollow(followerID, targetID)
	return nil
}

func (s *service) Followers(userID string) []string { return s.repo.Followers(userID) }
func (s *service) Following(userID string) []string { return s.repo.Following(userID) }

func (s *service) IsFollowing(followerID, targetID string) bool {
	return s.repo.IsFollowing(followerID, targetID)
}

func (s *service) ensureUser(id string) error {
	if _, ok := s.repo.GetUser(id); !ok {
		return ErrUserNotFound
	}
	return nil
}
