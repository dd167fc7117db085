package pattern

import "errors"

var (
	ErrInvalidPattern   = errors.New("routing pattern must begin with '/'")
	ErrWildcardPosition = errors.New("wildcard '*' must be the last token in a pattern")
	ErrParamDelimiter   = errors.New("route param closing delimiter '}' is missing")
	ErrEmptyParamName   = errors.New("route param name is empty")
	ErrDuplicateParam   = errors.New("routing pattern contains duplicate param key")
	ErrInvalidRegexp    = errors.New("invalid regexp in route param")
)
