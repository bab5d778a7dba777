package feed

import (
	"time"

	"news-feed/internal/store"
)

const DefaultLimit = 20

type Repository interface {
	Feed(userID string, limit int) []store.FeedEntry
	GetPost(id string) (store.Post, bool)
	GetUser(id string) (store.User, bool)
	CountersFor(postID string) store.Counters
	HasLiked(userID, postID string) bool
}

// Item is one hydrated feed position: the post, its author summary, live
// counters and the viewer's own like state.
type Item struct {
	PostID     string              `json:"post_id"`
	Content    string              `json:"content"`
	Media      []string            `json:"media,omitempty"`
	Author     store.AuthorSummary `json:"author"`
	CreatedAt  time.Time           `json:"created_at"`
	LikeCount  int64               `json:"like_count"`
	ReplyCount int64               `json:"reply_count"`
	Liked      bool                `json:"liked_by_me"`
}

type Service interface {
	Feed(viewerID string, limit int) []Item
}

type service struct {
	repo         Repository
	defaultLimit int
}

type Option func(*service)

// WithDefaultLimit overrides the page size used when the caller passes a
// non-positive limit.
func WithDefaultLimit(n int) Option {
	return func(s *service) {
		if n > 0 {
			s.defaultLimit = n
		}
	}
}

func NewService(repo Repository, opts ...Option) Service {
	s := &service{repo: repo, defaultLimit: DefaultLimit}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Feed hydrates up to limit entries of the viewer's feed. Entries whose
// post or author no longer resolves are dropped without disturbing the
// order of the rest, so the page may come back shorter than limit. Counts
// are read from the authoritative counters, not the denormalized copies.
func (s *service) Feed(viewerID string, limit int) []Item {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	entries := s.repo.Feed(viewerID, limit)
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		p, ok := s.repo.GetPost(e.PostID)
		if !ok {
			continue
		}
		author, ok := s.repo.GetUser(p.AuthorID)
		if !ok {
			continue
		}
		c := s.repo.CountersFor(p.ID)
		items = append(items, Item{
			PostID:  p.ID,
			Content: p.Content,
			Media:   p.Media,
			Author: store.AuthorSummary{
				ID:        author.ID,
				Username:  author.Username,
				AvatarURL: author.AvatarURL,
			},
			CreatedAt:  p.CreatedAt,
			LikeCount:  c.Likes,
			ReplyCount: c.Replies,
			Liked:      s.repo.HasLiked(viewerID, p.ID),
		})
	}
	return items
}
