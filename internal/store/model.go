package store

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Post struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	Content    string    `json:"content"`
	Media      []string  `json:"media,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	LikeCount  int64     `json:"like_count"`
	ReplyCount int64     `json:"reply_count"`
}

// FeedEntry is one position in a user's precomputed feed. It references the
// post by id only; everything else is resolved at read time.
type FeedEntry struct {
	PostID     string    `json:"post_id"`
	InsertedAt time.Time `json:"inserted_at"`
}

// Counters is the authoritative engagement tally for a post. The LikeCount
// and ReplyCount fields on Post are denormalized copies of it.
type Counters struct {
	Likes   int64 `json:"likes"`
	Replies int64 `json:"replies"`
}

type Reply struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorSummary is the slice of a user embedded in hydrated feed items.
type AuthorSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
