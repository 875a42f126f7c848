package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/daily-quote/internal/logger"
)

// CookieName is the name of the session cookie.
const CookieName = "dq_session"

// ErrNoSession is returned when the request carries no valid session: the
// cookie is missing, the token signature or expiry is invalid, or the
// server-side session record is gone.
var ErrNoSession = errors.New("no active session")

// KV is the subset of the Redis client used for session state.
// *redis.Client satisfies it.
type KV interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// Flash is a one-shot notice shown to the user on the next rendered page.
type Flash struct {
	Level   string `json:"level"`   // "warning" or "danger"
	Message string `json:"message"` // User-visible text
}

// Manager keeps session state server-side in Redis, keyed by a random
// session ID. The cookie value is a signed JWT carrying only the session ID,
// so a forged or tampered cookie fails before any Redis lookup, and logout
// revokes the session server-side regardless of the cookie's lifetime.
type Manager struct {
	secretKey string
	ttl       time.Duration
	store     KV
}

// New creates a session manager.
func New(store KV, secretKey string, ttl time.Duration) *Manager {
	return &Manager{store: store, secretKey: secretKey, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func flashKey(sessionID string) string {
	return "session:" + sessionID + ":flash"
}

// Create establishes a new authenticated session for the username and returns
// the cookie token.
func (m *Manager) Create(ctx context.Context, username string) (string, error) {
	sessionID := uuid.NewString()

	if err := m.store.Set(ctx, sessionKey(sessionID), username, m.ttl).Err(); err != nil {
		logger.Log.Errorw("failed to store session", "error", err)
		return "", err
	}

	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(m.ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		logger.Log.Errorw("failed to sign session token", "error", err)
		return "", err
	}

	return signed, nil
}

// Resolve validates a cookie token and returns the session ID and username.
// Any failure along the way is reported as ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.secretKey), nil
	})
	if err != nil || !token.Valid {
		return "", "", ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrNoSession
	}
	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", "", ErrNoSession
	}

	username, err := m.store.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", "", ErrNoSession
	}
	if err != nil {
		logger.Log.Errorw("failed to load session", "error", err)
		return "", "", err
	}

	return sessionID, username, nil
}

// Destroy revokes the session server-side. Destroying an unknown session is
// not an error.
func (m *Manager) Destroy(ctx context.Context, sessionID string) error {
	if err := m.store.Del(ctx, sessionKey(sessionID), flashKey(sessionID)).Err(); err != nil {
		logger.Log.Errorw("failed to delete session", "error", err)
		return err
	}
	return nil
}

// AddFlash queues a one-shot notice for the session.
func (m *Manager) AddFlash(ctx context.Context, sessionID, level, message string) error {
	data, err := json.Marshal(Flash{Level: level, Message: message})
	if err != nil {
		return err
	}

	key := flashKey(sessionID)
	if err := m.store.RPush(ctx, key, data).Err(); err != nil {
		logger.Log.Errorw("failed to queue flash", "error", err)
		return err
	}
	// Flashes must not outlive the session itself.
	if err := m.store.Expire(ctx, key, m.ttl).Err(); err != nil {
		logger.Log.Errorw("failed to set flash expiry", "error", err)
	}
	return nil
}

// PopFlashes returns and clears all queued notices for the session.
func (m *Manager) PopFlashes(ctx context.Context, sessionID string) ([]Flash, error) {
	key := flashKey(sessionID)

	raw, err := m.store.LRange(ctx, key, 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Log.Errorw("failed to read flashes", "error", err)
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	if err := m.store.Del(ctx, key).Err(); err != nil {
		logger.Log.Errorw("failed to clear flashes", "error", err)
	}

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}

// TokenFromRequest extracts the session token from the request cookie.
func TokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoSession
	}
	return cookie.Value, nil
}

// SetCookie attaches the session token to the response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the client.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
