package response

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// DocType is the document declaration that marks a string as a full HTML document.
const DocType = "<!DOCTYPE html>"

// RenderOptions controls how coerced values and views are rendered.
type RenderOptions struct {
	// Status overrides the 200 OK default for coerced bodies.
	Status int
	// DocType prepends "<!DOCTYPE html>" to rendered views.
	DocType bool
}

func (o RenderOptions) status() int {
	if o.Status == 0 {
		return http.StatusOK
	}
	return o.Status
}

// View creates a streamed HTML response from a templ component with 200 OK status.
// The component is rendered with the request's context when the body is written.
func View(component templ.Component) *Response {
	return ViewWithOptions(component, RenderOptions{})
}

// ViewWithStatus creates a streamed HTML response with custom status code.
func ViewWithStatus(component templ.Component, status int) *Response {
	return ViewWithOptions(component, RenderOptions{Status: status})
}

// ViewWithOptions creates a streamed HTML response using the given render options.
// Returns nil for a nil component.
func ViewWithOptions(component templ.Component, opts RenderOptions) *Response {
	if component == nil {
		return nil
	}

	r := New(opts.status(), nil, func(ctx context.Context, w io.Writer) error {
		if opts.DocType {
			if _, err := io.WriteString(w, DocType); err != nil {
				return err
			}
		}
		if err := component.Render(ctx, w); err != nil {
			return fmt.Errorf("%w: %w", ErrRender, err)
		}
		return nil
	})
	r.Header.Set("Content-Type", contentTypeHTML)
	return r
}
