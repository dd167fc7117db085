package pattern

// Option configures pattern compilation.
type Option func(*config)

type config struct {
	prefix          bool
	caseInsensitive bool
}

// WithPrefix compiles a non-terminal pattern. The pattern matches its own path
// and every path below it on a segment boundary, which is what mount points need.
func WithPrefix() Option {
	return func(c *config) {
		c.prefix = true
	}
}

// WithCaseInsensitive makes literal segments match regardless of letter case.
func WithCaseInsensitive() Option {
	return func(c *config) {
		c.caseInsensitive = true
	}
}
