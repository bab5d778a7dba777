package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-feed/internal/shared/jwt"
	"news-feed/internal/store"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) PutUser(u store.User) {
	m.Called(u)
}

func (m *MockRepository) GetUser(id string) (store.User, bool) {
	args := m.Called(id)
	return args.Get(0).(store.User), args.Bool(1)
}

func TestCreateUserReturnsUsableToken(t *testing.T) {
	repo := new(MockRepository)
	repo.On("PutUser", mock.AnythingOfType("store.User")).Return()

	svc := NewService(repo)
	u, tok, err := svc.Create(CreatePayload{Username: "alice", AvatarURL: "av.png"})
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "av.png", u.AvatarURL)
	assert.False(t, u.CreatedAt.IsZero())

	uid, err := jwt.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid, "the token subject must be the new user")
	repo.AssertExpectations(t)
}

func TestCreateUserRejectsEmptyUsername(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	_, _, err := svc.Create(CreatePayload{})
	assert.ErrorIs(t, err, ErrUsernameEmpty)
	repo.AssertNotCalled(t, "PutUser", mock.Anything)
}

func TestGetUser(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUser", "u1").Return(store.User{ID: "u1", Username: "alice"}, true)
	repo.On("GetUser", "nope").Return(store.User{}, false)

	svc := NewService(repo)

	u, err := svc.Get("u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	_, err = svc.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}
