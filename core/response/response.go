package response

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"slices"
)

// BodyWriter streams a response body into w. It is invoked once, when the
// response is written, with the request context.
type BodyWriter func(ctx context.Context, w io.Writer) error

// Response is the canonical HTTP response every handler result is coerced into.
// Handlers may build one directly; the router passes it through untouched.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       BodyWriter

	cont bool
}

// New creates a response with the given status, headers and body.
// A nil header is replaced with an empty one.
func New(status int, header http.Header, body BodyWriter) *Response {
	if header == nil {
		header = make(http.Header)
	}
	return &Response{
		StatusCode: status,
		Header:     header,
		Body:       body,
	}
}

// Continue returns the sentinel that tells the router to try the next candidate.
// It is distinguishable from a real 204 via IsContinue.
func Continue() *Response {
	return &Response{StatusCode: http.StatusNoContent, cont: true}
}

// IsContinue reports whether r is the continue sentinel.
func IsContinue(r *Response) bool {
	return r != nil && r.cont
}

// Status returns the status code, defaulting to 200 OK when unset.
func (r *Response) Status() int {
	if r.StatusCode == 0 {
		return http.StatusOK
	}
	return r.StatusCode
}

// Clone returns a copy with its own header map, so headers can be changed
// without affecting the original. The body writer is shared.
func (r *Response) Clone() *Response {
	c := *r
	c.Header = make(http.Header, len(r.Header))
	for k, v := range r.Header {
		c.Header[k] = slices.Clone(v)
	}
	return &c
}

// WithStatus returns a copy of the response with a different status code.
func (r *Response) WithStatus(code int) *Response {
	c := r.Clone()
	c.StatusCode = code
	return c
}

// Write copies headers and status to w and streams the body.
// Statuses that forbid a body (1xx, 204, 304) skip the body writer.
func (r *Response) Write(ctx context.Context, w http.ResponseWriter) error {
	dst := w.Header()
	for k, v := range r.Header {
		dst[k] = slices.Clone(v)
	}

	status := r.Status()
	w.WriteHeader(status)

	if r.Body == nil || !bodyAllowed(status) {
		return nil
	}
	return r.Body(ctx, w)
}

// ServeHTTP implements http.Handler so a response can be served directly.
func (r *Response) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	_ = r.Write(req.Context(), w)
}

// Render renders the body into memory. Useful for tests and for callers that
// need the body as bytes rather than a stream.
func (r *Response) Render(ctx context.Context) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := r.Body(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status < 200:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}

func writeBytes(content []byte) BodyWriter {
	if len(content) == 0 {
		return nil
	}
	return func(_ context.Context, w io.Writer) error {
		_, err := w.Write(content)
		return err
	}
}
