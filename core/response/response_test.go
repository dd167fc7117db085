package response_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keywork/core/response"
)

func TestBuilders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		resp        *response.Response
		status      int
		contentType string
		body        string
	}{
		{"string", response.String("Hello, World!"), http.StatusOK, "text/plain; charset=utf-8", "Hello, World!"},
		{"string_status", response.StringWithStatus("gone", http.StatusGone), http.StatusGone, "text/plain; charset=utf-8", "gone"},
		{"html", response.HTML("<p>x</p>"), http.StatusOK, "text/html; charset=utf-8", "<p>x</p>"},
		{"bytes", response.Bytes([]byte{0x1, 0x2}, "application/octet-stream"), http.StatusOK, "application/octet-stream", "\x01\x02"},
		{"bytes_zero_status", response.BytesWithStatus([]byte("a,b"), "text/csv", 0), http.StatusOK, "text/csv", "a,b"},
		{"json", response.JSON(map[string]int{"n": 1}), http.StatusOK, "application/json; charset=utf-8", "{\"n\":1}\n"},
		{"json_created", response.JSONWithStatus([]int{1}, http.StatusCreated), http.StatusCreated, "application/json; charset=utf-8", "[1]\n"},
		{"no_content", response.NoContent(), http.StatusNoContent, "", ""},
		{"status", response.Status(http.StatusAccepted), http.StatusAccepted, "", ""},
		{"view", response.View(hello("view")), http.StatusOK, "text/html; charset=utf-8", "<h1>Hello view</h1>"},
		{"view_status", response.ViewWithStatus(hello("x"), http.StatusNotFound), http.StatusNotFound, "text/html; charset=utf-8", "<h1>Hello x</h1>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()

			tt.resp.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestJSONWithStatusDefaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNoContent, response.JSONWithStatus(nil, 0).Status())
	assert.Equal(t, http.StatusOK, response.JSONWithStatus("x", 0).Status())
}

func TestViewNilComponent(t *testing.T) {
	t.Parallel()

	assert.Nil(t, response.View(nil))
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		resp   *response.Response
		status int
	}{
		{"default", response.Redirect("/login"), http.StatusFound},
		{"permanent", response.RedirectWithStatus("/login", http.StatusMovedPermanently), http.StatusMovedPermanently},
		{"invalid_status_falls_back", response.RedirectWithStatus("/login", http.StatusOK), http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.status, tt.resp.Status())
			assert.Equal(t, "/login", tt.resp.Header.Get("Location"))
		})
	}
}

func TestWriteSkipsBodyWhenForbidden(t *testing.T) {
	t.Parallel()

	called := false
	r := response.New(http.StatusNotModified, nil, func(context.Context, io.Writer) error {
		called = true
		return nil
	})

	w := httptest.NewRecorder()
	require.NoError(t, r.Write(context.Background(), w))
	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.False(t, called)
}

func TestCloneAndWithStatus(t *testing.T) {
	t.Parallel()

	orig := response.String("x")
	clone := orig.WithStatus(http.StatusTeapot)
	clone.Header.Set("X-Extra", "1")

	assert.Equal(t, http.StatusOK, orig.Status())
	assert.Empty(t, orig.Header.Get("X-Extra"))
	assert.Equal(t, http.StatusTeapot, clone.Status())
	assert.Equal(t, "1", clone.Header.Get("X-Extra"))
}

func TestContinue(t *testing.T) {
	t.Parallel()

	c := response.Continue()
	assert.True(t, response.IsContinue(c))
	assert.False(t, response.IsContinue(nil))
	assert.False(t, response.IsContinue(response.Status(http.StatusNoContent)))
	assert.NotSame(t, c, response.Continue())
}

func TestDecorators(t *testing.T) {
	t.Parallel()

	t.Run("with_headers", func(t *testing.T) {
		t.Parallel()

		orig := response.String("x")
		r := response.WithHeaders(orig, map[string]string{"X-Custom": "v"})

		assert.Equal(t, "v", r.Header.Get("X-Custom"))
		assert.Empty(t, orig.Header.Get("X-Custom"))
		assert.Same(t, orig, response.WithHeaders(orig, nil))
	})

	t.Run("with_cookie", func(t *testing.T) {
		t.Parallel()

		r := response.WithCookie(response.String("x"), &http.Cookie{Name: "sid", Value: "abc", Path: "/"})
		assert.Equal(t, "sid=abc; Path=/", r.Header.Get("Set-Cookie"))
	})

	t.Run("with_cache", func(t *testing.T) {
		t.Parallel()

		r := response.WithCache(response.String("x"), time.Hour)
		assert.Equal(t, "public, max-age=3600", r.Header.Get("Cache-Control"))
		assert.NotEmpty(t, r.Header.Get("Expires"))

		r = response.WithCache(response.String("x"), 0)
		assert.Equal(t, "no-cache, no-store, must-revalidate", r.Header.Get("Cache-Control"))
		assert.Equal(t, "no-cache", r.Header.Get("Pragma"))
	})

	t.Run("nil_response", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, response.WithCache(nil, time.Minute))
		assert.Nil(t, response.WithHeaders(nil, map[string]string{"a": "b"}))
	})
}
