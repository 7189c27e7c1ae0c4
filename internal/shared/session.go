package shared

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionManager issues and resolves opaque auth tokens backed by Redis and
// carried in an HttpOnly cookie.
type SessionManager struct {
	client     *redis.Client
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewSessionManager constructs a SessionManager.
func NewSessionManager(client *redis.Client, cookieName string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{client: client, cookieName: cookieName, ttl: ttl, secure: secure}
}

func (sm *SessionManager) redisKey(token string) string {
	return "session:" + token
}

// Issue creates a session token for the user and stores it with TTL.
func (sm *SessionManager) Issue(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	if err := sm.client.Set(ctx, sm.redisKey(token), strconv.FormatInt(userID, 10), sm.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user id behind the request's session cookie. The TTL is
// refreshed on each hit so active sessions slide rather than hard-expire.
func (sm *SessionManager) Resolve(ctx context.Context, r *http.Request) (int64, error) {
	cookie, err := r.Cookie(sm.cookieName)
	if err != nil {
		return 0, ErrSessionExpired
	}
	val, err := sm.client.Get(ctx, sm.redisKey(cookie.Value)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionExpired
		}
		return 0, err
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil || userID <= 0 {
		return 0, ErrSessionExpired
	}
	_ = sm.client.Expire(ctx, sm.redisKey(cookie.Value), sm.ttl).Err()
	return userID, nil
}

// Revoke deletes the session behind the request's cookie, if any.
func (sm *SessionManager) Revoke(ctx context.Context, r *http.Request) error {
	cookie, err := r.Cookie(sm.cookieName)
	if err != nil {
		return nil
	}
	return sm.client.Del(ctx, sm.redisKey(cookie.Value)).Err()
}

// SetCookie writes the session cookie on the response.
func (sm *SessionManager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sm.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sm.ttl / time.Second),
		HttpOnly: true,
		Secure:   sm.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the response.
func (sm *SessionManager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sm.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sm.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
