package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/student-records/internal/flash"
	"github.com/sbilibin2017/student-records/internal/views"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	r, err := views.New()
	require.NoError(t, err)
	return r
}

func newTestFlashes() *flash.CookieStore {
	return flash.NewCookieStore(time.Minute)
}

// serve runs req through a chi router with the given routes registered.
func serve(register func(r chi.Router), req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	register(r)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func newFormRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// poppedFlash returns the flash message set on rr, or nil.
func poppedFlash(t *testing.T, rr *httptest.ResponseRecorder) *flash.Message {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	msg, err := newTestFlashes().Pop(httptest.NewRecorder(), req)
	require.NoError(t, err)
	return msg
}
