package router

import (
	"slices"

	"github.com/dmitrymomot/keywork/core/pattern"
)

// entry is a single registered route.
type entry[E any] struct {
	verb    Verb
	pattern *pattern.Pattern
	target  Target[E]
}

// candidate is an entry that matched the current request.
type candidate[E any] struct {
	entry *entry[E]
	match pattern.Match
}

// table holds routes per verb in registration order. It is written during
// setup and read without locks while serving.
type table[E any] struct {
	buckets map[Verb][]*entry[E]
}

func newTable[E any]() *table[E] {
	return &table[E]{buckets: make(map[Verb][]*entry[E])}
}

func (t *table[E]) add(e *entry[E]) {
	t.buckets[e.verb] = append(t.buckets[e.verb], e)
}

// routes returns the entries to consider for verb: the ALL bucket first,
// then the verb bucket. HEAD also tries GET routes after its own. The result
// is a fresh slice.
func (t *table[E]) routes(verb Verb) []*entry[E] {
	all := t.buckets[ALL]
	if verb == ALL {
		return slices.Clone(all)
	}
	specific := t.buckets[verb]
	var fallback []*entry[E]
	if verb == HEAD {
		fallback = t.buckets[GET]
	}
	out := make([]*entry[E], 0, len(all)+len(specific)+len(fallback))
	out = append(out, all...)
	out = append(out, specific...)
	return append(out, fallback...)
}

// match returns the ordered candidates for verb whose pattern matches pathname.
func (t *table[E]) match(verb Verb, pathname string) []candidate[E] {
	var out []candidate[E]
	for _, e := range t.routes(verb) {
		if m, ok := e.pattern.Match(pathname); ok {
			out = append(out, candidate[E]{entry: e, match: m})
		}
	}
	return out
}

func (t *table[E]) len() int {
	n := 0
	for _, b := range t.buckets {
		n += len(b)
	}
	return n
}

func (t *table[E]) reset() {
	clear(t.buckets)
}
