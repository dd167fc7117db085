package response

import (
	"net/http"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

// String creates a text/plain response with 200 OK status.
func String(content string) *Response {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus creates a text/plain response with custom status code.
func StringWithStatus(content string, status int) *Response {
	return BytesWithStatus([]byte(content), contentTypeText, status)
}

// HTML creates a text/html response with 200 OK status.
func HTML(content string) *Response {
	return HTMLWithStatus(content, http.StatusOK)
}

// HTMLWithStatus creates a text/html response with custom status code.
func HTMLWithStatus(content string, status int) *Response {
	return BytesWithStatus([]byte(content), contentTypeHTML, status)
}

// Bytes creates a response with custom content type and 200 OK status.
func Bytes(content []byte, contentType string) *Response {
	return BytesWithStatus(content, contentType, http.StatusOK)
}

// BytesWithStatus creates a response with custom content type and status code.
func BytesWithStatus(content []byte, contentType string, status int) *Response {
	if status == 0 {
		status = http.StatusOK
	}
	r := New(status, nil, writeBytes(content))
	if contentType != "" {
		r.Header.Set("Content-Type", contentType)
	}
	return r
}

// NoContent creates a 204 No Content response.
func NoContent() *Response {
	return New(http.StatusNoContent, nil, nil)
}

// Status creates an empty response with the specified status code.
func Status(code int) *Response {
	if code == 0 {
		code = http.StatusOK
	}
	return New(code, nil, nil)
}

// Redirect creates a 302 Found response pointing at url.
func Redirect(url string) *Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectWithStatus creates a redirect with a custom 3xx status code.
func RedirectWithStatus(url string, status int) *Response {
	if status < 300 || status > 399 {
		status = http.StatusFound
	}
	r := New(status, nil, nil)
	r.Header.Set("Location", url)
	return r
}
