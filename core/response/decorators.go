package response

import (
	"fmt"
	"net/http"
	"time"
)

// WithHeaders returns a copy of the response with the given headers set.
func WithHeaders(r *Response, headers map[string]string) *Response {
	if r == nil || len(headers) == 0 {
		return r
	}
	c := r.Clone()
	for k, v := range headers {
		c.Header.Set(k, v)
	}
	return c
}

// WithCookie returns a copy of the response with a Set-Cookie header added.
func WithCookie(r *Response, cookie *http.Cookie) *Response {
	if r == nil || cookie == nil {
		return r
	}
	if v := cookie.String(); v != "" {
		c := r.Clone()
		c.Header.Add("Set-Cookie", v)
		return c
	}
	return r
}

// WithCache returns a copy of the response with cache control headers.
// If maxAge > 0, sets Cache-Control and Expires headers for caching.
// If maxAge <= 0, sets headers to prevent caching.
func WithCache(r *Response, maxAge time.Duration) *Response {
	if r == nil {
		return nil
	}
	c := r.Clone()
	if maxAge > 0 {
		c.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
		c.Header.Set("Expires", time.Now().Add(maxAge).UTC().Format(http.TimeFormat))
	} else {
		c.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header.Set("Pragma", "no-cache")
		c.Header.Set("Expires", "0")
	}
	return c
}
