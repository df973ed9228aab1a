package chatlist

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Filter matches messages against a glob pattern. The pattern is matched
// case-insensitively against both author and body; a message is visible if
// either matches. An empty Filter matches everything.
type Filter struct {
	pattern string
	matcher glob.Glob
}

// NewFilter compiles a glob pattern into a Filter. Patterns without any
// glob metacharacters are wrapped in wildcards so that plain words act as
// substring filters, matching how users actually type them.
func NewFilter(pattern string) (*Filter, error) {
	if pattern == "" {
		return &Filter{}, nil
	}

	p := strings.ToLower(pattern)
	if !strings.ContainsAny(p, "*?[{") {
		p = "*" + p + "*"
	}

	matcher, err := glob.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("compiling filter pattern %q: %w", pattern, err)
	}
	return &Filter{pattern: pattern, matcher: matcher}, nil
}

// Pattern returns the original pattern the filter was compiled from.
func (f *Filter) Pattern() string {
	if f == nil {
		return ""
	}
	return f.pattern
}

// Matches reports whether the message passes the filter.
func (f *Filter) Matches(m Message) bool {
	if f == nil || f.matcher == nil {
		return true
	}
	return f.matcher.Match(strings.ToLower(m.Author)) ||
		f.matcher.Match(strings.ToLower(m.Body))
}
