package response

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// JSON creates an application/json response with 200 OK status.
// JSON encoding is performed directly into the writer when the body is written.
func JSON(v any) *Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with custom status code.
// A zero status resolves to 204 for nil data and 200 otherwise.
func JSONWithStatus(v any, status int) *Response {
	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}

	r := New(status, nil, func(_ context.Context, w io.Writer) error {
		return json.NewEncoder(w).Encode(v)
	})
	r.Header.Set("Content-Type", contentTypeJSON)
	return r
}

// encodeJSON marshals v up front so encoding failures surface before any
// status line is written.
func encodeJSON(v any, status int) (*Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return BytesWithStatus(data, contentTypeJSON, status), nil
}
