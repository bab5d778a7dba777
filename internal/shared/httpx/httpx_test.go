package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-feed/internal/shared/jwt"
)

func TestWrapMapsErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"generic", errors.New("boom"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := Wrap(func(w http.ResponseWriter, r *http.Request) error { return tc.err })
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	var gotUID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := UserFromCtx(r)
		require.NoError(t, err)
		gotUID = uid
	})
	h := AuthMiddleware(inner)

	tok, err := jwt.Sign("u-42")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-42", gotUID)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	h := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("must not reach the handler")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=7&bad=x", nil)
	assert.Equal(t, 7, QueryInt(req, "limit", 20))
	assert.Equal(t, 20, QueryInt(req, "missing", 20))
	assert.Equal(t, 20, QueryInt(req, "bad", 20))
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", BearerToken(req))

	req.Header.Set("Authorization", "Bearer abc")
	assert.Equal(t, "abc", BearerToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "", BearerToken(req))
}
