package follow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-feed/internal/store"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetUser(id string) (store.User, bool) {
	args := m.Called(id)
	return args.Get(0).(store.User), args.Bool(1)
}

func (m *MockRepository) Follow(followerID, targetID string) {
	m.Called(followerID, targetID)
}

func (m *MockRepository) Unfollow(followerID, targetID string) {
	m.Called(followerID, targetID)
}

func (m *MockRepository) Followers(userID string) []string {
	args := m.Called(userID)
	return args.Get(0).([]string)
}

func (m *MockRepository) Following(userID string) []string {
	args := m.Called(userID)
	return args.Get(0).([]string)
}

func (m *MockRepository) IsFollowing(followerID, targetID string) bool {
	args := m.Called(followerID, targetID)
	return args.Bool(0)
}

func TestFollow(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUser", "a").Return(store.User{ID: "a"}, true)
	repo.On("GetUser", "b").Return(store.User{ID: "b"}, true)
	repo.On("Follow", "a", "b").Return()

	svc := NewService(repo)
	require.NoError(t, svc.Follow("a", "b"))
	repo.AssertCalled(t, "Follow", "a", "b")
}

func TestFollowRejectsUnknownUsers(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUser", "a").Return(store.User{ID: "a"}, true)
	repo.On("GetUser", "ghost").Return(store.User{}, false)

	svc := NewService(repo)
	assert.ErrorIs(t, svc.Follow("ghost", "a"), ErrUserNotFound)
	assert.ErrorIs(t, svc.Follow("a", "ghost"), ErrUserNotFound)
	repo.AssertNotCalled(t, "Follow", mock.Anything, mock.Anything)
}

func TestSelfFollowAllowed(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUser", "a").Return(store.User{ID: "a"}, true)
	repo.On("Follow", "a", "a").Return()

	svc := NewService(repo)
	require.NoError(t, svc.Follow("a", "a"))
	repo.AssertCalled(t, "Follow", "a", "a")
}

func TestUnfollow(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUser", "a").Return(store.User{ID: "a"}, true)
	repo.On("GetUser", "b").Return(store.User{ID: "b"}, true)
	repo.On("Unfollow", "a", "b").Return()

	svc := NewService(repo)
	require.NoError(t, svc.Unfollow("a", "b"))
	repo.AssertCalled(t, "Unfollow", "a", "b")
}

func TestListsPassThrough(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Followers", "x").Return([]string{"a", "b"})
	repo.On("Following", "x").Return([]string{"c"})
	repo.On("IsFollowing", "a", "x").Return(true)

	svc := NewService(repo)
	assert.Equal(t, []string{"a", "b"}, svc.Followers("x"))
	assert.Equal(t, []string{"c"}, svc.Following("x"))
	assert.True(t, svc.IsFollowing("a", "x"))
}
