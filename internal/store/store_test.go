package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetUser(t *testing.T) {
	s := New(0, 0)
	u := User{ID: "u1", Username: "alice", CreatedAt: time.Now().UTC()}
	s.PutUser(u)

	got, ok := s.GetUser("u1")
	require.True(t, ok)
	assert.Equal(t, u, got)

	_, ok = s.GetUser("missing")
	assert.False(t, ok)
}

func TestPutGetPost(t *testing.T) {
	s := New(0, 0)
	p := Post{ID: "p1", AuthorID: "u1", Content: "hello", CreatedAt: time.Now().UTC()}
	s.PutPost(p)

	got, ok := s.GetPost("p1")
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = s.GetPost("missing")
	assert.False(t, ok)
}

func TestGetPostReturnsCopy(t *testing.T) {
	s := New(0, 0)
	s.PutPost(Post{ID: "p1", AuthorID: "u1", Content: "hello", Media: []string{"a.jpg"}})

	got, ok := s.GetPost("p1")
	require.True(t, ok)
	got.Media[0] = "tampered.jpg"
	got.Content = "tampered"

	again, ok := s.GetPost("p1")
	require.True(t, ok)
	assert.Equal(t, "hello", again.Content)
	assert.Equal(t, []string{"a.jpg"}, again.Media)
}

func TestLikeIsIdempotent(t *testing.T) {
	s := New(0, 0)
	s.PutPost(Post{ID: "p1", AuthorID: "u1"})

	first, err := s.Like("u2", "p1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := s.Like("u2", "p1")
	require.NoError(t, err)
	assert.False(t, second)

	assert.Equal(t, int64(1), s.CountersFor("p1").Likes)
	assert.True(t, s.HasLiked("u2", "p1"))

	got, _ := s.GetPost("p1")
	assert.Equal(t, int64(1), got.LikeCount)
}

func TestLikeUnknownPost(t *testing.T) {
	s := New(0, 0)
	_, err := s.Like("u1", "nope")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestLikePromotesPastThreshold(t *testing.T) {
	s := New(0, 3)
	s.PutPost(Post{ID: "p1", AuthorID: "u1", Content: "warm"})

	for _, uid := range []string{"a", "b", "c"} {
		_, err := s.Like(uid, "p1")
		require.NoError(t, err)
	}
	_, isHot := s.hot["p1"]
	assert.False(t, isHot, "at the threshold the post must stay cold")

	_, err := s.Like("d", "p1")
	require.NoError(t, err)
	hotCopy, isHot := s.hot["p1"]
	require.True(t, isHot, "crossing the threshold must promote")
	assert.Equal(t, s.posts["p1"], hotCopy)

	got, ok := s.GetPost("p1")
	require.True(t, ok)
	assert.Equal(t, int64(4), got.LikeCount)
	assert.Equal(t, "warm", got.Content)
}

func TestPutPostRefreshesHotCopy(t *testing.T) {
	s := New(0, 1)
	s.PutPost(Post{ID: "p1", AuthorID: "u1", Content: "v1"})
	_, _ = s.Like("a", "p1")
	_, _ = s.Like("b", "p1")
	require.Contains(t, s.hot, "p1")

	updated := s.posts["p1"]
	updated.Content = "v2"
	s.PutPost(updated)

	got, ok := s.GetPost("p1")
	require.True(t, ok)
	assert.Equal(t, "v2", got.Content, "hot reads must not serve a stale copy")
}

func TestUnlike(t *testing.T) {
	s := New(0, 0)
	s.PutPost(Post{ID: "p1", AuthorID: "u1"})
	_, err := s.Like("u2", "p1")
	require.NoError(t, err)

	removed, err := s.Unlike("u2", "p1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, int64(0), s.CountersFor("p1").Likes)
	assert.False(t, s.HasLiked("u2", "p1"))

	removed, err = s.Unlike("u2", "p1")
	require.NoError(t, err)
	assert.False(t, removed, "unliking twice must be a no-op")
	assert.Equal(t, int64(0), s.CountersFor("p1").Likes)

	_, err = s.Unlike("u2", "nope")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestCountersZeroValued(t *testing.T) {
	s := New(0, 0)
	assert.Equal(t, Counters{}, s.CountersFor("never-seen"))
}

func TestAddReply(t *testing.T) {
	s := New(0, 0)
	s.PutPost(Post{ID: "p1", AuthorID: "u1"})

	rep := Reply{ID: "r1", PostID: "p1", AuthorID: "u2", Content: "nice"}
	require.NoError(t, s.AddReply(rep))

	assert.Equal(t, int64(1), s.CountersFor("p1").Replies)
	got, _ := s.GetPost("p1")
	assert.Equal(t, int64(1), got.ReplyCount)
	assert.Equal(t, []Reply{rep}, s.Replies("p1"))

	err := s.AddReply(Reply{ID: "r2", PostID: "nope"})
	assert.ErrorIs(t, err, ErrPostNotFound)
}
