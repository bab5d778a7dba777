package store

import (
	"errors"
	"sync"
)

const (
	DefaultFeedCapacity     = 1000
	DefaultHotLikeThreshold = 100
)

var (
	// ErrPostNotFound is returned by engagement mutators when the target
	// post does not exist in the primary table.
	ErrPostNotFound = errors.New("store: post not found")
	// ErrEmptyID is returned when a mutator receives an empty user or
	// post id.
	ErrEmptyID = errors.New("store: empty id")
)

// Store holds every table of the feed engine in process memory. Tables that
// must change together share one lock: a like touches the like set, the
// counters, the denormalized post copy and possibly the hot tier, and either
// all of them see it or none do.
type Store struct {
	capacity     int
	hotThreshold int64

	usersMu sync.RWMutex
	users   map[string]User

	engMu    sync.RWMutex
	posts    map[string]Post
	hot      map[string]Post
	counters map[string]Counters
	likes    map[string]map[string]struct{}
	replies  map[string][]Reply

	followMu  sync.RWMutex
	followers map[string]map[string]struct{}
	following map[string]map[string]struct{}

	feeds [feedShards]feedShard
}

// New builds an empty Store. Non-positive arguments fall back to the
// package defaults.
func New(feedCapacity int, hotLikeThreshold int64) *Store {
	if feedCapacity <= 0 {
		feedCapacity = DefaultFeedCapacity
	}
	if hotLikeThreshold <= 0 {
		hotLikeThreshold = DefaultHotLikeThreshold
	}
	s := &Store{
		capacity:     feedCapacity,
		hotThreshold: hotLikeThreshold,
		users:        make(map[string]User),
		posts:        make(map[string]Post),
		hot:          make(map[string]Post),
		counters:     make(map[string]Counters),
		likes:        make(map[string]map[string]struct{}),
		replies:      make(map[string][]Reply),
		followers:    make(map[string]map[string]struct{}),
		following:    make(map[string]map[string]struct{}),
	}
	for i := range s.feeds {
		s.feeds[i].byUser = make(map[string][]FeedEntry)
	}
	return s
}

// FeedCapacity reports the per-user feed bound the store was built with.
func (s *Store) FeedCapacity() int { return s.capacity }

func (s *Store) PutUser(u User) {
	s.usersMu.Lock()
	s.users[u.ID] = u
	s.usersMu.Unlock()
}

func (s *Store) GetUser(id string) (User, bool) {
	s.usersMu.RLock()
	u, ok := s.users[id]
	s.usersMu.RUnlock()
	return u, ok
}

// PutPost inserts or overwrites a post. A post whose like count exceeds the
// hot threshold is mirrored into the hot tier; an already hot post has its
// hot copy refreshed so both tiers serve the same bytes.
func (s *Store) PutPost(p Post) {
	p.Media = cloneMedia(p.Media)
	s.engMu.Lock()
	s.posts[p.ID] = p
	if _, isHot := s.hot[p.ID]; isHot || p.LikeCount > s.hotThreshold {
		s.hot[p.ID] = p
	}
	s.engMu.Unlock()
}

// GetPost reads the hot tier first and falls back to the primary table.
func (s *Store) GetPost(id string) (Post, bool) {
	s.engMu.RLock()
	p, ok := s.hot[id]
	if !ok {
		p, ok = s.posts[id]
	}
	s.engMu.RUnlock()
	if ok {
		p.Media = cloneMedia(p.Media)
	}
	return p, ok
}

// Like records that userID liked postID. The first like from a user bumps
// the counter, refreshes the denormalized copy and promotes the post into
// the hot tier once the count passes the threshold; repeats are no-ops.
// The bool reports whether the like was newly recorded.
func (s *Store) Like(userID, postID string) (bool, error) {
	if userID == "" || postID == "" {
		return false, ErrEmptyID
	}
	s.engMu.Lock()
	defer s.engMu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return false, ErrPostNotFound
	}
	set := s.likes[postID]
	if set == nil {
		set = make(map[string]struct{})
		s.likes[postID] = set
	}
	if _, dup := set[userID]; dup {
		return false, nil
	}
	set[userID] = struct{}{}
	c := s.counters[postID]
	c.Likes++
	s.counters[postID] = c
	p.LikeCount = c.Likes
	s.posts[postID] = p
	if _, isHot := s.hot[postID]; isHot || c.Likes > s.hotThreshold {
		s.hot[postID] = p
	}
	return true, nil
}

// Unlike removes a previously recorded like. Unliking something never liked
// is a no-op. A hot post stays hot; only its copy is refreshed.
func (s *Store) Unlike(userID, postID string) (bool, error) {
	if userID == "" || postID == "" {
		return false, ErrEmptyID
	}
	s.engMu.Lock()
	defer s.engMu.Unlock()
	p, ok := s.posts[postID]
	if !ok {
		return false, ErrPostNotFound
	}
	set := s.likes[postID]
	if _, has := set[userID]; !has {
		return false, nil
	}
	delete(set, userID)
	c := s.counters[postID]
	if c.Likes > 0 {
		c.Likes--
	}
	s.counters[postID] = c
	p.LikeCount = c.Likes
	s.posts[postID] = p
	if _, isHot := s.hot[postID]; isHot {
		s.hot[postID] = p
	}
	return true, nil
}

func (s *Store) HasLiked(userID, postID string) bool {
	s.engMu.RLock()
	_, ok := s.likes[postID][userID]
	s.engMu.RUnlock()
	return ok
}

// CountersFor returns the authoritative counters for a post. Posts that
// were never engaged with, or do not exist, read as zero.
func (s *Store) CountersFor(postID string) Counters {
	s.engMu.RLock()
	c := s.counters[postID]
	s.engMu.RUnlock()
	return c
}

// AddReply appends a reply and bumps the reply counter in the same critical
// section.
func (s *Store) AddReply(rep Reply) error {
	if rep.PostID == "" {
		return ErrEmptyID
	}
	s.engMu.Lock()
	defer s.engMu.Unlock()
	p, ok := s.posts[rep.PostID]
	if !ok {
		return ErrPostNotFound
	}
	s.replies[rep.PostID] = append(s.replies[rep.PostID], rep)
	c := s.counters[rep.PostID]
	c.Replies++
	s.counters[rep.PostID] = c
	p.ReplyCount = c.Replies
	s.posts[rep.PostID] = p
	if _, isHot := s.hot[rep.PostID]; isHot {
		s.hot[rep.PostID] = p
	}
	return nil
}

// Replies returns the replies to a post in creation order.
func (s *Store) Replies(postID string) []Reply {
	s.engMu.RLock()
	rs := s.replies[postID]
	out := make([]Reply, len(rs))
	copy(out, rs)
	s.engMu.RUnlock()
	return out
}

func cloneMedia(media []string) []string {
	if len(media) == 0 {
		return nil
	}
	out := make([]string, len(media))
	copy(out, media)
	return out
}
