package flash

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/student-records/internal/logger"
)

// SessionCookieName is the cookie holding the flash session id.
const SessionCookieName = "flash_sid"

// RedisStore keeps pending messages in Redis, keyed by a session id cookie.
type RedisStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisStore(client redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(sid string) string {
	return "flash:" + sid
}

// Set stores msg under the caller's session, creating the session cookie
// when the request has none.
func (s *RedisStore) Set(w http.ResponseWriter, r *http.Request, msg Message) error {
	sid := sessionID(r)
	if sid == "" {
		sid = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     SessionCookieName,
			Value:    sid,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	data, err := encode(msg)
	if err != nil {
		return err
	}

	err = s.client.Set(r.Context(), key(sid), data, s.ttl).Err()
	logger.Log.Infow("flash stored",
		"key", key(sid),
		"value", string(data),
		"error", err,
	)
	return err
}

// Pop atomically reads and deletes the caller's pending message.
func (s *RedisStore) Pop(w http.ResponseWriter, r *http.Request) (*Message, error) {
	sid := sessionID(r)
	if sid == "" {
		return nil, nil
	}

	val, err := s.client.GetDel(r.Context(), key(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	logger.Log.Infow("flash popped",
		"key", key(sid),
		"value", string(val),
		"error", err,
	)
	if err != nil {
		return nil, err
	}

	return decode(val)
}

// sessionID returns the session id of the request if it is a valid UUID.
func sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return ""
	}
	return c.Value
}
