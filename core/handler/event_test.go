package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keywork/core/execctx"
	"github.com/dmitrymomot/keywork/core/handler"
	"github.com/dmitrymomot/keywork/core/response"
)

type env struct{ Name string }

func TestNewEvent(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/users/42?x=1", nil)
	ev := handler.NewEvent(req, env{Name: "prod"}, nil)

	assert.Equal(t, "/api/users/42", ev.Pathname())
	assert.Equal(t, "/api/users/42", ev.OriginalURL.Path)
	assert.Equal(t, "prod", ev.Env.Name)
	assert.Equal(t, http.MethodGet, ev.Method())
	assert.Empty(t, ev.BasePath)
	assert.NotNil(t, ev.Data)
}

func TestDerive(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/users/42?x=1", nil)
	parent := handler.NewEvent(req, env{}, nil)
	parent.Set("shared", 1)

	child := parent.Derive("/users/42", "/api", map[string]string{"id": "42"})

	assert.Equal(t, "/users/42", child.Pathname())
	assert.Equal(t, "x=1", child.Request.URL.RawQuery)
	assert.Equal(t, "/api", child.BasePath)
	assert.Equal(t, "42", child.Param("id"))

	// The parent keeps its own path and params.
	assert.Equal(t, "/api/users/42", parent.Pathname())
	assert.Empty(t, parent.Param("id"))

	// Data is shared across copies.
	child.Set("from_child", true)
	v, ok := parent.Get("from_child")
	require.True(t, ok)
	assert.Equal(t, true, v)

	n, ok := handler.Value[int](child, "shared")
	require.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = handler.Value[string](child, "shared")
	assert.False(t, ok)
}

func TestDeriveSamePathKeepsRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	parent := handler.NewEvent(req, env{}, nil)
	child := parent.Derive("/", "", nil)

	assert.Same(t, parent.Request, child.Request)
}

func TestWaitUntil(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	exec := execctx.New(req.Context(), 0)
	ev := handler.NewEvent(req, env{}, exec)

	ran := false
	ev.WaitUntil(func(context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, exec.Wait())
	assert.True(t, ran)
}

type compositeStub struct{}

func (compositeStub) Dispatch(*handler.Event[env], handler.Next) *response.Response { return nil }
func (compositeStub) IsRequestHandlerComposite() bool { return true }

func TestIsComposite(t *testing.T) {
	t.Parallel()

	assert.True(t, handler.IsComposite[env](compositeStub{}))
	assert.False(t, handler.IsComposite[env]("nope"))
	assert.False(t, handler.IsComposite[struct{}](compositeStub{}))
}
