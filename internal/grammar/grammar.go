// Package grammar parses the canonical short strings produced by schemas,
// e.g. "decimal(min=0,max=100,precision=5,scale=2)".
//
// Parameter values are not escaped, so a value may itself contain commas
// (a pattern such as "[a,b]") or parentheses. The parser therefore splits the
// parameter list only where an unescaped comma is followed by one of the keys
// the caller declares for that schema name, and treats the final ')' as the
// closing one. A comma after an odd run of backslashes belongs to the value.
package grammar

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrSyntax is returned (wrapped) for text that is not a short string.
var ErrSyntax = errors.New("grammar: invalid short string")

// Param is a single key=value entry in source order.
type Param struct {
	Key   string
	Value string
}

// Term is a parsed short string.
type Term struct {
	Name   string
	Params []Param
}

// Get returns the value for key.
func (s Term) Get(key string) (string, bool) {
	for _, p := range s.Params {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// String renders the term back to "name" or "name(k=v,...)".
func (s Term) String() string {
	if len(s.Params) == 0 {
		return s.Name
	}
	b := &strings.Builder{}
	b.WriteString(s.Name)
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.Key)
		b.WriteByte('=')
		b.WriteString(p.Value)
	}
	b.WriteByte(')')
	return b.String()
}

// KeysFunc reports the parameter keys accepted for a schema name. ok=false
// means the name is unknown.
type KeysFunc func(name string) (keys []string, ok bool)

// Parse parses text into a Term.
func Parse(text string, keysFor KeysFunc) (Term, error) {
	name, body, hasParams := strings.Cut(text, "(")
	if !isIdent(name) {
		return Term{}, errors.Wrapf(ErrSyntax, "bad schema name in %q", text)
	}
	keys, ok := keysFor(name)
	if !ok {
		return Term{}, errors.Wrapf(ErrSyntax, "unknown schema %q", name)
	}
	term := Term{Name: name}
	if !hasParams {
		return term, nil
	}
	if !strings.HasSuffix(body, ")") {
		return Term{}, errors.Wrapf(ErrSyntax, "missing ')' in %q", text)
	}
	body = body[:len(body)-1]
	if body == "" {
		return Term{}, errors.Wrapf(ErrSyntax, "empty parameter list in %q", text)
	}

	seen := map[string]bool{}
	for body != "" {
		key, ok := leadingKey(body, keys)
		if !ok {
			return Term{}, errors.Wrapf(ErrSyntax, "unexpected parameter at %q in %q", body, text)
		}
		if seen[key] {
			return Term{}, errors.Wrapf(ErrSyntax, "duplicate parameter %q in %q", key, text)
		}
		seen[key] = true
		rest := body[len(key)+1:]
		end := nextBoundary(rest, keys)
		term.Params = append(term.Params, Param{Key: key, Value: rest[:end]})
		if end == len(rest) {
			break
		}
		body = rest[end+1:]
	}
	return term, nil
}

// leadingKey returns the declared key that body starts with (followed by '=').
// Longest match wins so that a key that prefixes another is not mistaken.
func leadingKey(body string, keys []string) (string, bool) {
	best := ""
	for _, k := range keys {
		if len(k) > len(best) && strings.HasPrefix(body, k+"=") {
			best = k
		}
	}
	return best, best != ""
}

// nextBoundary returns the index of the first unescaped ',' in s that starts
// a new declared parameter, or len(s).
func nextBoundary(s string, keys []string) int {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == ',':
			if _, ok := leadingKey(s[i+1:], keys); ok {
				return i
			}
		}
	}
	return len(s)
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_'):
		default:
			return false
		}
	}
	return true
}
