// Package pattern compiles URL path patterns into matchers.
//
// A pattern is made of literal segments, named params (":name" or "{name}",
// optionally "{name:expr}") and an optional trailing wildcard "*". Terminal
// patterns must match the whole pathname (one trailing slash is tolerated);
// prefix patterns, compiled with WithPrefix, match the pattern's own path and
// anything below it, and report the consumed base so callers can compute the
// unmatched remainder:
//
//	p := pattern.MustCompile("/api", pattern.WithPrefix())
//	m, ok := p.Match("/api/users")
//	// ok == true, m.Base == "/api", m.Remaining() == "/users"
//
// Matching is case-sensitive unless WithCaseInsensitive is given. Compile
// errors wrap the sentinel errors declared in this package.
package pattern
