package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskkeeper/internal/server/auth"
)

func TestRequireAuth_MissingToken(t *testing.T) {
	srv := newTestServer(&fakeUserService{}, &fakeTaskService{})

	handlerRan := false
	protected := srv.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerRan = true
	}))

	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.False(t, handlerRan, "handler must not run without a verified token")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	srv := newTestServer(&fakeUserService{}, &fakeTaskService{})

	protected := srv.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set(AuthHeader, "garbage.token.value")

	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "unauthorized", decodeBody(t, rr)["error"])
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	srv := newTestServer(&fakeUserService{}, &fakeTaskService{})

	expired := auth.NewTokenService([]byte(testSecret), -time.Minute)
	tok, err := expired.Issue("u1", "a@b.com")
	require.NoError(t, err)

	protected := srv.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set(AuthHeader, tok)

	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "token expired", decodeBody(t, rr)["message"])
}

func TestRequireAuth_BindsUserID(t *testing.T) {
	srv := newTestServer(&fakeUserService{}, &fakeTaskService{})

	var gotUserID string
	protected := srv.requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = userID
	}))

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set(AuthHeader, issueToken(t, "user-42", "a@b.com"))

	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-42", gotUserID)
}

func TestUserIDFromContext_AbsentValue(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)
}
