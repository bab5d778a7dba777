package like

import (
	"errors"

	"news-feed/internal/store"
)

var ErrPostNotFound = errors.New("post not found")

type Repository interface {
	Like(userID, postID string) (bool, error)
	Unlike(userID, postID string) (bool, error)
	HasLiked(userID, postID string) bool
	CountersFor(postID string) store.Counters
}

type Service interface {
	Like(userID, postID string) (int64, error)
	Unlike(userID, postID string) (int64, error)
	Get(postID, userID string) (int64, bool)
}

type service struct{ repo Repository }

func NewService(r Repository) Service { return &service{repo: r} }

// Like records the like and returns the authoritative count afterwards.
// Liking twice changes nothing.
func (s *service) Like(userID, postID string) (int64, error) {
	if _, err := s.repo.Like(userID, postID); err != nil {
		return 0, mapErr(err)
	}
	return s.repo.CountersFor(postID).Likes, nil
}

func (s *service) Unlike(userID, postID string) (int64, error) {
	if _, err := s.repo.Unlike(userID, postID); err != nil {
		return 0, mapErr(err)
	}
	return s.repo.CountersFor(postID).Likes, nil
}

func (s *service) Get(postID, userID string) (int64, bool) {
	return s.repo.CountersFor(postID).Likes, s.repo.HasLiked(userID, postID)
}

func mapErr(err error) error {
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	return err
}
