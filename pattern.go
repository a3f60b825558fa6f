package valueschema

import (
	"regexp"

	"github.com/cockroachdb/errors"
)

// Pattern is a regular expression matched against the whole input.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// CompilePattern compiles expr with full-string match semantics: "[0-9]+"
// matches "123" but not "12a".
func CompilePattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return Pattern{}, errors.Wrapf(err, "valueschema: invalid pattern %q", expr)
	}
	return Pattern{expr: expr, re: re}, nil
}

// MustPattern is like CompilePattern but panics on an invalid expression.
func MustPattern(expr string) Pattern {
	p, err := CompilePattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the expression as written.
func (p Pattern) String() string { return p.expr }

// Match reports whether p matches all of s. The zero Pattern matches nothing.
func (p Pattern) Match(s string) bool { return p.re != nil && p.re.MatchString(s) }
