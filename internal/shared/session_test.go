package shared

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*SessionManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionManager(client, "freightdesk_token", time.Hour, false), mr
}

func requestWithCookie(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: "freightdesk_token", Value: token})
	}
	return r
}

func TestIssueAndResolve(t *testing.T) {
	sm, _ := newTestManager(t)
	ctx := context.Background()

	token, err := sm.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := sm.Resolve(ctx, requestWithCookie(token))
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestResolveMissingCookie(t *testing.T) {
	sm, _ := newTestManager(t)

	_, err := sm.Resolve(context.Background(), requestWithCookie(""))
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestResolveExpiredToken(t *testing.T) {
	sm, mr := newTestManager(t)
	ctx := context.Background()

	token, err := sm.Issue(ctx, 7)
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = sm.Resolve(ctx, requestWithCookie(token))
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestRevoke(t *testing.T) {
	sm, _ := newTestManager(t)
	ctx := context.Background()

	token, err := sm.Issue(ctx, 7)
	require.NoError(t, err)

	require.NoError(t, sm.Revoke(ctx, requestWithCookie(token)))

	_, err = sm.Resolve(ctx, requestWithCookie(token))
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSetAndClearCookie(t *testing.T) {
	sm, _ := newTestManager(t)

	rec := httptest.NewRecorder()
	sm.SetCookie(rec, "abc")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	rec = httptest.NewRecorder()
	sm.ClearCookie(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
