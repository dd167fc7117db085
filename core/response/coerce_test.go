package response_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keywork/core/response"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type label string

// readerError is both an error and a stream; the error check must win.
type readerError struct{ *strings.Reader }

func (readerError) Error() string { return "reader error" }

func hello(name string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Hello "+name+"</h1>")
		return err
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	var nilUser *user

	tests := []struct {
		name  string
		value any
		want  response.Kind
	}{
		{"nil", nil, response.KindEmpty},
		{"typed_nil_response", (*response.Response)(nil), response.KindEmpty},
		{"typed_nil_pointer", nilUser, response.KindEmpty},
		{"response", response.String("ok"), response.KindResponse},
		{"response_value", *response.String("ok"), response.KindResponse},
		{"view", hello("world"), response.KindView},
		{"error", errors.New("boom"), response.KindError},
		{"http_error", response.ErrNotFound, response.KindError},
		{"error_reader", readerError{strings.NewReader("x")}, response.KindError},
		{"map", map[string]any{"a": 1}, response.KindObject},
		{"struct", user{ID: 1}, response.KindObject},
		{"struct_pointer", &user{ID: 1}, response.KindObject},
		{"slice", []string{"a"}, response.KindObject},
		{"array", [2]int{1, 2}, response.KindObject},
		{"document", "<!DOCTYPE html><html></html>", response.KindDocument},
		{"document_lowercase", "<!doctype html><p>x</p>", response.KindDocument},
		{"document_leading_space", "\n  <!DOCTYPE html>", response.KindDocument},
		{"text", "hello", response.KindText},
		{"empty_text", "", response.KindText},
		{"html_fragment_is_text", "<p>hi</p>", response.KindText},
		{"named_string", label("hi"), response.KindText},
		{"bytes", []byte("raw"), response.KindStream},
		{"reader", strings.NewReader("raw"), response.KindStream},
		{"buffer", bytes.NewBufferString("raw"), response.KindStream},
		{"int", 42, response.KindUnsupported},
		{"bool", true, response.KindUnsupported},
		{"func", func() {}, response.KindUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, response.Classify(tt.value))
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "object", response.KindObject.String())
	assert.Equal(t, "stream", response.KindStream.String())
	assert.Equal(t, "kind(200)", response.Kind(200).String())
}

func TestCoerce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("nil_yields_continue", func(t *testing.T) {
		t.Parallel()

		r, err := response.Coerce(nil, response.RenderOptions{})
		require.NoError(t, err)
		assert.True(t, response.IsContinue(r))
		assert.False(t, response.IsContinue(response.NoContent()))
	})

	t.Run("response_is_returned_unchanged", func(t *testing.T) {
		t.Parallel()

		orig := response.StringWithStatus("created", http.StatusCreated)
		r, err := response.Coerce(orig, response.RenderOptions{Status: http.StatusTeapot})
		require.NoError(t, err)
		assert.Same(t, orig, r)

		again, err := response.Coerce(r, response.RenderOptions{})
		require.NoError(t, err)
		assert.Same(t, orig, again)
	})

	t.Run("view", func(t *testing.T) {
		t.Parallel()

		r, err := response.Coerce(hello("world"), response.RenderOptions{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, r.Status())
		assert.Equal(t, "text/html; charset=utf-8", r.Header.Get("Content-Type"))

		body, err := r.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hello world</h1>", string(body))
	})

	t.Run("view_with_doctype", func(t *testing.T) {
		t.Parallel()

		r, err := response.Coerce(hello("doc"), response.RenderOptions{DocType: true})
		require.NoError(t, err)

		body, err := r.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "<!DOCTYPE html><h1>Hello doc</h1>", string(body))
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		r, err := response.Coerce(response.ErrForbidden, response.RenderOptions{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, r.Status())
	})

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		r, err := response.Coerce(user{ID: 7, Name: "Ann"}, response.RenderOptions{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, r.Status())
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))

		body, err := r.Render(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":7,"name":"Ann"}`, string(body))
	})

	t.Run("object_encode_failure", func(t *testing.T) {
		t.Parallel()

		_, err := response.Coerce(map[string]any{"ch": make(chan int)}, response.RenderOptions{})
		require.Error(t, err)
		assert.ErrorIs(t, err, response.ErrEncodeJSON)
	})

	t.Run("document", func(t *testing.T) {
		t.Parallel()

		doc := "<!DOCTYPE html><title>x</title>"
		r, err := response.Coerce(doc, response.RenderOptions{})
		require.NoError(t, err)
		assert.Equal(t, "text/html; charset=utf-8", r.Header.Get("Content-Type"))

		body, err := r.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, doc, string(body))
	})

	t.Run("text_with_status", func(t *testing.T) {
		t.Parallel()

		r, err := response.Coerce("Hello World", response.RenderOptions{Status: http.StatusAccepted})
		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, r.Status())
		assert.Equal(t, "text/plain; charset=utf-8", r.Header.Get("Content-Type"))

		body, err := r.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Hello World", string(body))
	})

	t.Run("named_string", func(t *testing.T) {
		t.Parallel()

		r, err := response.Coerce(label("tag"), response.RenderOptions{})
		require.NoError(t, err)

		body, err := r.Render(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tag", string(body))
	})

	t.Run("stream_fails", func(t *testing.T) {
		t.Parallel()

		_, err := response.Coerce([]byte("raw"), response.RenderOptions{})
		assert.ErrorIs(t, err, response.ErrUnsupportedStream)

		_, err = response.Coerce(strings.NewReader("raw"), response.RenderOptions{})
		assert.ErrorIs(t, err, response.ErrUnsupportedStream)
	})

	t.Run("unsupported_fails", func(t *testing.T) {
		t.Parallel()

		_, err := response.Coerce(3.14, response.RenderOptions{})
		assert.ErrorIs(t, err, response.ErrUnsupportedKind)
	})
}

func TestCoerceIdempotent(t *testing.T) {
	t.Parallel()

	values := []any{
		"text",
		"<!DOCTYPE html>",
		map[string]int{"n": 1},
		hello("x"),
		errors.New("boom"),
	}

	for _, v := range values {
		first, err := response.Coerce(v, response.RenderOptions{})
		require.NoError(t, err)

		second, err := response.Coerce(first, response.RenderOptions{})
		require.NoError(t, err)
		assert.Same(t, first, second)
	}
}

func TestIsDocument(t *testing.T) {
	t.Parallel()

	assert.True(t, response.IsDocument("<!DOCTYPE html>"))
	assert.True(t, response.IsDocument("<!DocType HTML>\n<html>"))
	assert.False(t, response.IsDocument("<!DOCTYPE"))
	assert.False(t, response.IsDocument("<html>"))
}

func TestErrorBodyShape(t *testing.T) {
	t.Parallel()

	r, err := response.Coerce(response.ErrNotFound, response.RenderOptions{})
	require.NoError(t, err)

	body, err := r.Render(context.Background())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, map[string]any{"status": "Not Found", "statusCode": float64(404)}, got)
}
