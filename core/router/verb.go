package router

import "strings"

// Verb is an HTTP method the router can dispatch on, plus the synthetic ALL.
type Verb string

const (
	GET     Verb = "GET"
	POST    Verb = "POST"
	PUT     Verb = "PUT"
	PATCH   Verb = "PATCH"
	DELETE  Verb = "DELETE"
	HEAD    Verb = "HEAD"
	OPTIONS Verb = "OPTIONS"

	// ALL matches every verb. Routes registered under ALL are always tried
	// before verb-specific routes.
	ALL Verb = "ALL"
)

// Verbs lists the dispatchable verbs in display order. ALL is not included.
var Verbs = []Verb{GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS}

// ParseVerb maps an HTTP method to a Verb. Methods outside the closed set,
// including ALL itself, are reported as unknown.
func ParseVerb(method string) (Verb, bool) {
	switch v := Verb(strings.ToUpper(method)); v {
	case GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS:
		return v, true
	}
	return "", false
}

// String implements fmt.Stringer.
func (v Verb) String() string {
	return string(v)
}

func (v Verb) valid() bool {
	if v == ALL {
		return true
	}
	_, ok := ParseVerb(string(v))
	return ok
}
