package notification

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"news-feed/internal/store"
)

type Kind string

const KindPost Kind = "post"

type Notification struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Kind      Kind           `json:"kind"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Meta      map[string]any `json:"meta,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Notifier is invoked by fanout workers after a post lands in a follower's
// feed.
type Notifier interface {
	PostPublished(followerID string, post store.Post)
}

// LogNotifier builds the notification record and writes it to the log;
// there is no delivery channel behind it.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) PostPublished(followerID string, post store.Post) {
	note := Notification{
		ID:     uuid.NewString(),
		UserID: followerID,
		Kind:   KindPost,
		Title:  "New post in your feed",
		Body:   snippet(post.Content, 80),
		Meta: map[string]any{
			"post_id":   post.ID,
			"author_id": post.AuthorID,
		},
		CreatedAt: time.Now().UTC(),
	}
	n.log.Debug("notification",
		zap.String("notification_id", note.ID),
		zap.String("user_id", note.UserID),
		zap.String("kind", string(note.Kind)),
		zap.String("title", note.Title),
		zap.String("body", note.Body),
		zap.Any("meta", note.Meta),
	)
}

func snippet(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
