package store

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"
)

const feedShards = 16

// feedShard holds the feeds of the users hashing into it. Entries are kept
// oldest first so appends are O(1); reads walk backwards to serve the feed
// most-recent-first.
type feedShard struct {
	mu     sync.Mutex
	byUser map[string][]FeedEntry
}

func (s *Store) feedShardFor(userID string) *feedShard {
	h := sha256.Sum256([]byte(userID))
	v := binary.BigEndian.Uint32(h[:4]) ^ binary.BigEndian.Uint32(h[4:8])
	return &s.feeds[v%feedShards]
}

// AppendFeedEntry places e at the head of userID's feed. When the feed is
// at capacity the oldest entries are dropped, never the new one, and the
// relative order of survivors is unchanged.
func (s *Store) AppendFeedEntry(userID string, e FeedEntry) error {
	if userID == "" || e.PostID == "" {
		return ErrEmptyID
	}
	sh := s.feedShardFor(userID)
	sh.mu.Lock()
	feed := append(sh.byUser[userID], e)
	if over := len(feed) - s.capacity; over > 0 {
		feed = feed[over:]
	}
	sh.byUser[userID] = feed
	sh.mu.Unlock()
	return nil
}

// Feed returns up to limit entries of userID's feed, most recent first.
// A non-positive limit means no cap. Users without a feed read as empty.
func (s *Store) Feed(userID string, limit int) []FeedEntry {
	sh := s.feedShardFor(userID)
	sh.mu.Lock()
	feed := sh.byUser[userID]
	if limit <= 0 || limit > len(feed) {
		limit = len(feed)
	}
	out := make([]FeedEntry, 0, limit)
	for i := len(feed) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, feed[i])
	}
	sh.mu.Unlock()
	return out
}

// FeedLen reports how many entries userID's feed currently holds.
func (s *Store) FeedLen(userID string) int {
	sh := s.feedShardFor(userID)
	sh.mu.Lock()
	n := len(sh.byUser[userID])
	sh.mu.Unlock()
	return n
}
