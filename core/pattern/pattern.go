package pattern

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Wildcard is the param key under which a trailing '*' exposes the matched suffix.
const Wildcard = "*"

const (
	baseGroup    = "kwbase"
	paramGroup   = "kwp"
	defaultParam = "[^/]+"
)

// Pattern is a compiled path pattern. It is immutable and safe for concurrent use.
type Pattern struct {
	source          string
	re              *regexp.Regexp
	keys            []string
	groups          []int
	baseIndex       int
	prefix          bool
	wildcard        bool
	caseInsensitive bool
	fromRegexp      bool
}

// Match is the result of matching a pathname against a Pattern.
type Match struct {
	// Params holds named parameters extracted from the pathname. Nil when the
	// pattern declares none.
	Params map[string]string
	// Pathname is the pathname that was matched.
	Pathname string
	// Path is the part of the pathname the pattern matched.
	Path string
	// Base is the prefix consumed by a non-terminal pattern. Terminal patterns
	// never consume anything, so Base is empty for them.
	Base string
}

// Remaining returns the part of the pathname not consumed by the match.
// The result is always rooted; a fully consumed path yields "/".
func (m Match) Remaining() string {
	rest := m.Pathname
	if len(m.Base) <= len(rest) {
		rest = rest[len(m.Base):]
	}
	if rest == "" {
		return "/"
	}
	if rest[0] != '/' {
		return "/" + rest
	}
	return rest
}

// Param returns a matched param by key.
func (m Match) Param(key string) string {
	return m.Params[key]
}

// Compile parses a pattern source into a matcher.
//
// Supported syntax:
//
//	/users            literal segments
//	/users/:id        named param matching one segment
//	/users/{id}       same, brace form
//	/users/{id:[0-9]+} named param with a custom expression
//	/files/*          trailing wildcard, exposed as the "*" param
//	*                 matches every path
func Compile(source string, opts ...Option) (*Pattern, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	src := source
	if src != Wildcard && (src == "" || src[0] != '/') {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidPattern, source)
	}

	wildcard := false
	if cfg.prefix && strings.HasSuffix(src, Wildcard) {
		// A mount at "/api/*" is the same mount point as "/api".
		wildcard = true
		src = strings.TrimSuffix(src, Wildcard)
		if src == "" {
			src = "/"
		}
	}
	if len(src) > 1 && strings.HasSuffix(src, "/") {
		src = src[:len(src)-1]
	} else if src == "/" {
		src = ""
	}

	body, keys, err := translate(src)
	if err != nil {
		return nil, fmt.Errorf("%w: '%s'", err, source)
	}
	if slices.Contains(keys, Wildcard) {
		wildcard = true
	}

	var expr strings.Builder
	if cfg.caseInsensitive {
		expr.WriteString("(?i)")
	}
	expr.WriteString("^")
	switch {
	case cfg.prefix:
		expr.WriteString("(?P<" + baseGroup + ">" + body + ")(?:/|$)")
	case strings.HasSuffix(src, Wildcard):
		expr.WriteString(body + "$")
	default:
		expr.WriteString(body + "/?$")
	}

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("%w: '%s': %w", ErrInvalidRegexp, source, err)
	}

	p := &Pattern{
		source:          source,
		re:              re,
		keys:            keys,
		groups:          make([]int, len(keys)),
		baseIndex:       -1,
		prefix:          cfg.prefix,
		wildcard:        wildcard,
		caseInsensitive: cfg.caseInsensitive,
	}
	for i := range keys {
		p.groups[i] = re.SubexpIndex(paramGroup + strconv.Itoa(i))
	}
	if cfg.prefix {
		p.baseIndex = re.SubexpIndex(baseGroup)
	}

	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(source string, opts ...Option) *Pattern {
	p, err := Compile(source, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// FromRegexp wraps a regular expression as a Pattern. Named groups become params.
// With WithPrefix the match must start at the beginning of the pathname to consume it.
func FromRegexp(re *regexp.Regexp, opts ...Option) *Pattern {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pattern{
		source:     re.String(),
		re:         re,
		baseIndex:  -1,
		prefix:     cfg.prefix,
		fromRegexp: true,
	}
	for i, name := range re.SubexpNames() {
		if name == "" {
			continue
		}
		p.keys = append(p.keys, name)
		p.groups = append(p.groups, i)
	}
	return p
}

// Match matches a pathname. An empty pathname is treated as "/".
func (p *Pattern) Match(pathname string) (Match, bool) {
	if pathname == "" {
		pathname = "/"
	}

	loc := p.re.FindStringSubmatchIndex(pathname)
	if loc == nil {
		return Match{}, false
	}

	m := Match{
		Pathname: pathname,
		Path:     pathname[loc[0]:loc[1]],
	}

	if len(p.keys) > 0 || p.wildcard {
		m.Params = make(map[string]string, len(p.keys)+1)
	}
	for i, key := range p.keys {
		g := p.groups[i]
		if g < 0 || loc[2*g] < 0 {
			continue
		}
		m.Params[key] = pathname[loc[2*g]:loc[2*g+1]]
	}

	if p.prefix {
		switch {
		case p.baseIndex >= 0:
			m.Base = pathname[loc[2*p.baseIndex]:loc[2*p.baseIndex+1]]
		case loc[0] == 0:
			m.Base = strings.TrimSuffix(m.Path, "/")
		}
		if p.wildcard {
			m.Params[Wildcard] = strings.TrimPrefix(m.Remaining(), "/")
		}
	}

	return m, true
}

// Source returns the text the pattern was compiled from.
func (p *Pattern) Source() string {
	return p.source
}

// String implements fmt.Stringer.
func (p *Pattern) String() string {
	return p.source
}

// Keys returns the declared param keys in order of appearance.
func (p *Pattern) Keys() []string {
	return slices.Clone(p.keys)
}

// IsPrefix reports whether the pattern is non-terminal.
func (p *Pattern) IsPrefix() bool {
	return p.prefix
}

// AsPrefix returns a non-terminal variant of p, compiled from the same
// source with the same case sensitivity. Prefix patterns are returned as is.
func (p *Pattern) AsPrefix() (*Pattern, error) {
	if p.prefix {
		return p, nil
	}
	if p.fromRegexp {
		return FromRegexp(p.re, WithPrefix()), nil
	}
	opts := []Option{WithPrefix()}
	if p.caseInsensitive {
		opts = append(opts, WithCaseInsensitive())
	}
	return Compile(p.source, opts...)
}

// IsCaseInsensitive reports whether literal segments ignore letter case.
func (p *Pattern) IsCaseInsensitive() bool {
	return p.caseInsensitive
}

// translate turns pattern source into a regular expression body and the list of param keys.
func translate(src string) (string, []string, error) {
	var (
		b    strings.Builder
		keys []string
	)

	addKey := func(key, expr string) error {
		if slices.Contains(keys, key) {
			return fmt.Errorf("%w '%s'", ErrDuplicateParam, key)
		}
		b.WriteString("(?P<" + paramGroup + strconv.Itoa(len(keys)) + ">" + expr + ")")
		keys = append(keys, key)
		return nil
	}

	for i := 0; i < len(src); {
		switch c := src[i]; c {
		case ':':
			j := i + 1
			for j < len(src) && isNameByte(src[j]) {
				j++
			}
			name := src[i+1 : j]
			if name == "" {
				return "", nil, ErrEmptyParamName
			}
			if err := addKey(name, defaultParam); err != nil {
				return "", nil, err
			}
			i = j

		case '{':
			end, depth := -1, 0
			for j := i; j < len(src); j++ {
				if src[j] == '{' {
					depth++
				} else if src[j] == '}' {
					depth--
					if depth == 0 {
						end = j
						break
					}
				}
			}
			if end < 0 {
				return "", nil, ErrParamDelimiter
			}
			name, expr, _ := strings.Cut(src[i+1:end], ":")
			if name == "" {
				return "", nil, ErrEmptyParamName
			}
			if expr == "" {
				expr = defaultParam
			} else if _, err := regexp.Compile(expr); err != nil {
				return "", nil, fmt.Errorf("%w: %w", ErrInvalidRegexp, err)
			}
			if err := addKey(name, expr); err != nil {
				return "", nil, err
			}
			i = end + 1

		case '*':
			if i != len(src)-1 {
				return "", nil, ErrWildcardPosition
			}
			if err := addKey(Wildcard, ".*"); err != nil {
				return "", nil, err
			}
			i++

		default:
			j := i + 1
			for j < len(src) && !isSpecial(src[j]) {
				j++
			}
			b.WriteString(regexp.QuoteMeta(src[i:j]))
			i = j
		}
	}

	return b.String(), keys, nil
}

func isSpecial(c byte) bool {
	return c == ':' || c == '{' || c == '*'
}

func isNameByte(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
