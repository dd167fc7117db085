package response_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keywork/core/response"
)

// quotaError declares its own status without depending on HTTPError.
type quotaError struct{}

func (quotaError) Error() string   { return "quota exceeded for tenant 42" }
func (quotaError) StatusCode() int { return http.StatusTooManyRequests }

type badStatusError struct{}

func (badStatusError) Error() string   { return "redirect me" }
func (badStatusError) StatusCode() int { return http.StatusFound }

func decodeErrorBody(t *testing.T, r *response.Response) response.ErrorBody {
	t.Helper()

	body, err := r.Render(context.Background())
	require.NoError(t, err)

	var eb response.ErrorBody
	require.NoError(t, json.Unmarshal(body, &eb))
	return eb
}

func TestFromError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{
			name:       "predefined",
			err:        response.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantText:   "Not Found",
		},
		{
			name:       "custom_message",
			err:        response.ErrForbidden.WithMessage("Members only"),
			wantStatus: http.StatusForbidden,
			wantText:   "Members only",
		},
		{
			name:       "wrapped_http_error",
			err:        fmt.Errorf("load user: %w", response.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantText:   "Unauthorized",
		},
		{
			name:       "foreign_marker",
			err:        quotaError{},
			wantStatus: http.StatusTooManyRequests,
			wantText:   "Too Many Requests",
		},
		{
			name:       "plain_error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantText:   "Internal Server Error",
		},
		{
			name:       "non_error_status",
			err:        badStatusError{},
			wantStatus: http.StatusInternalServerError,
			wantText:   "Internal Server Error",
		},
		{
			name:       "nil",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
			wantText:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := response.FromError(tt.err)
			assert.Equal(t, tt.wantStatus, r.Status())
			assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))

			eb := decodeErrorBody(t, r)
			assert.Equal(t, tt.wantStatus, eb.StatusCode)
			assert.Equal(t, tt.wantText, eb.Status)
		})
	}
}

func TestFromErrorDoesNotLeakDetails(t *testing.T) {
	t.Parallel()

	r := response.FromError(errors.New("boom: password=hunter2"))
	body, err := r.Render(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, string(body), "boom")
	assert.NotContains(t, string(body), "hunter2")

	cause := errors.New("pq: relation missing")
	r = response.FromError(response.ErrServiceUnavailable.WithError(cause))
	body, err = r.Render(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, string(body), "relation")
}

func TestFromErrorWithFallback(t *testing.T) {
	t.Parallel()

	eb := decodeErrorBody(t, response.FromErrorWithFallback(errors.New("x"), "Something broke"))
	assert.Equal(t, "Something broke", eb.Status)
	assert.Equal(t, http.StatusInternalServerError, eb.StatusCode)

	eb = decodeErrorBody(t, response.FromErrorWithFallback(response.ErrConflict, "ignored"))
	assert.Equal(t, "Conflict", eb.Status)
	assert.Equal(t, http.StatusConflict, eb.StatusCode)
}

func TestFromStatus(t *testing.T) {
	t.Parallel()

	r := response.FromStatus(http.StatusNotImplemented)
	assert.Equal(t, http.StatusNotImplemented, r.Status())
	eb := decodeErrorBody(t, r)
	assert.Equal(t, "Not Implemented", eb.Status)

	eb = decodeErrorBody(t, response.FromStatusWithMessage(http.StatusNotFound, "No such page"))
	assert.Equal(t, "No such page", eb.Status)
	assert.Equal(t, http.StatusNotFound, eb.StatusCode)
}

func TestFromPanic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusInternalServerError, response.FromPanic("kaboom").Status())
	assert.Equal(t, http.StatusInternalServerError, response.FromPanic(errors.New("x")).Status())
	assert.Equal(t, http.StatusGone, response.FromPanic(response.ErrGone).Status())
}

func TestHTTPError(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")
	err := response.ErrServiceUnavailable.WithError(cause)

	assert.Equal(t, "Service Unavailable: db down", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.StatusCode())

	// Copies never mutate the predefined values.
	assert.Equal(t, "Service Unavailable", response.ErrServiceUnavailable.Error())
	assert.Equal(t, "Teapot", response.NewHTTPError(http.StatusTeapot, "Teapot").StatusText())
	assert.Equal(t, "I'm a teapot", response.NewHTTPError(http.StatusTeapot, "").Message)
}

func TestClassified(t *testing.T) {
	t.Parallel()

	code, text := response.Classified(response.ErrBadRequest)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Bad Request", text)

	code, text = response.Classified(errors.New("x"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal Server Error", text)
}
