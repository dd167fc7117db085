package response

import "errors"

var (
	ErrUnsupportedStream = errors.New("cannot infer a content type for a bare stream; wrap it in a *response.Response")
	ErrUnsupportedKind   = errors.New("unsupported response kind")
	ErrEncodeJSON        = errors.New("failed to encode json response")
	ErrRender            = errors.New("view render error")
)
