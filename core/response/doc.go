// Package response defines the canonical HTTP response used by the router and
// the rules that turn arbitrary handler results into one.
//
// A *Response carries a status code, headers and a lazily evaluated body
// writer. Handlers may build responses with the helpers in this package or
// return any response-like value and let Coerce normalize it:
//
//	nil                      -> Continue() sentinel, try the next route
//	*Response                -> returned as is
//	templ.Component          -> streamed text/html
//	error                    -> {"status": ..., "statusCode": ...} JSON
//	map, struct, slice       -> application/json
//	"<!DOCTYPE html>..."     -> text/html
//	any other string         -> text/plain
//	[]byte, io.Reader        -> ErrUnsupportedStream
//
// # Basic Usage
//
//	func getUser(ev *handler.Event[Env], next handler.Next) any {
//		user, err := repo.Find(ev.Context(), ev.Param("id"))
//		if errors.Is(err, sql.ErrNoRows) {
//			return response.ErrNotFound
//		}
//		if err != nil {
//			return err // 500, details stay in the logs
//		}
//		return user // JSON
//	}
//
// # Errors
//
// Any error type can carry its own status by implementing
//
//	StatusCode() int
//
// and optionally StatusText() string for the public reason. HTTPError
// implements both and the package predefines the common statuses:
//
//	return response.ErrForbidden.WithMessage("Members only")
//
// Errors without the marker are reported as 500 Internal Server Error and
// their text never reaches the client.
//
// # Decorators
//
// WithHeaders, WithCookie and WithCache return modified copies and never
// mutate the response they are given:
//
//	return response.WithCache(response.JSON(items), 5*time.Minute)
package response
