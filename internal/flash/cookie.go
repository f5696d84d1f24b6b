package flash

import (
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/student-records/internal/logger"
)

// CookieName is the cookie holding the pending message.
const CookieName = "flash"

// CookieStore keeps the pending message in a client cookie.
type CookieStore struct {
	ttl time.Duration
}

func NewCookieStore(ttl time.Duration) *CookieStore {
	return &CookieStore{ttl: ttl}
}

// Set stores msg in the flash cookie.
func (s *CookieStore) Set(w http.ResponseWriter, r *http.Request, msg Message) error {
	data, err := encode(msg)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending message, if any, and clears the cookie.
// A malformed cookie is cleared and treated as no message.
func (s *CookieStore) Pop(w http.ResponseWriter, r *http.Request) (*Message, error) {
	c, err := r.Cookie(CookieName)
	if errors.Is(err, http.ErrNoCookie) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		logger.Log.Warnw("dropping malformed flash cookie", "error", err)
		return nil, nil
	}
	msg, err := decode(data)
	if err != nil {
		logger.Log.Warnw("dropping malformed flash cookie", "error", err)
		return nil, nil
	}
	return msg, nil
}
