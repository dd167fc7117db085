package response

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/a-h/templ"
)

// Kind classifies a handler's return value.
type Kind uint8

const (
	// KindEmpty is a nil value: the handler declined and the router tries the next candidate.
	KindEmpty Kind = iota
	// KindResponse is an already canonical *Response.
	KindResponse
	// KindView is a renderable templ component.
	KindView
	// KindError is an error value.
	KindError
	// KindObject is a plain value (map, struct, slice, array or a pointer to one) encoded as JSON.
	KindObject
	// KindDocument is a string starting with the HTML document declaration.
	KindDocument
	// KindText is any other string.
	KindText
	// KindStream is raw bytes or an io.Reader, which carry no content type.
	KindStream
	// KindUnsupported is everything else.
	KindUnsupported
)

var kindNames = [...]string{
	KindEmpty:       "empty",
	KindResponse:    "response",
	KindView:        "view",
	KindError:       "error",
	KindObject:      "object",
	KindDocument:    "document",
	KindText:        "text",
	KindStream:      "stream",
	KindUnsupported: "unsupported",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// Classify reports the kind of a response-like value. Checks run in a fixed
// order and the first match wins: empty, response, view, error, object,
// document, text, stream, unsupported. Streams are never plain objects, even
// when the reader is a struct.
func Classify(v any) Kind {
	switch v := v.(type) {
	case nil:
		return KindEmpty
	case *Response:
		if v == nil {
			return KindEmpty
		}
		return KindResponse
	case Response:
		return KindResponse
	case templ.Component:
		return KindView
	case error:
		return KindError
	case []byte, io.Reader:
		return KindStream
	case string:
		return classifyString(v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return KindEmpty
	}
	if isObject(rv) {
		return KindObject
	}
	if rv.Kind() == reflect.String {
		return classifyString(rv.String())
	}
	return KindUnsupported
}

// Coerce converts a response-like value into a canonical response following
// the order documented on Classify. A nil value yields the Continue sentinel.
// Streams and unsupported kinds fail; the caller decides how to report that.
func Coerce(v any, opts RenderOptions) (*Response, error) {
	switch kind := Classify(v); kind {
	case KindEmpty:
		return Continue(), nil

	case KindResponse:
		if r, ok := v.(*Response); ok {
			return r, nil
		}
		r := v.(Response)
		return &r, nil

	case KindView:
		return ViewWithOptions(v.(templ.Component), opts), nil

	case KindError:
		return FromError(v.(error)), nil

	case KindObject:
		r, err := encodeJSON(v, opts.status())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeJSON, err)
		}
		return r, nil

	case KindDocument:
		return HTMLWithStatus(stringValue(v), opts.status()), nil

	case KindText:
		return StringWithStatus(stringValue(v), opts.status()), nil

	case KindStream:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedStream, v)

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKind, v)
	}
}

func classifyString(s string) Kind {
	if IsDocument(s) {
		return KindDocument
	}
	return KindText
}

// IsDocument reports whether s starts with the HTML document declaration,
// ignoring leading whitespace and letter case.
func IsDocument(s string) bool {
	s = strings.TrimLeft(s, " \t\r\n")
	return len(s) >= len(DocType) && strings.EqualFold(s[:len(DocType)], DocType)
}

func isObject(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Array:
		return true
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Pointer:
		if rv.IsNil() {
			return false
		}
		return isObject(rv.Elem())
	}
	return false
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return reflect.ValueOf(v).String()
}
