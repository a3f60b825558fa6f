package dsl

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// stringBase carries what every string schema shares: identity parse and
// encode, an ordering, and no numeric, integral or date capability.
type stringBase struct{ ord vs.Ordering[string] }

var naturalString = vs.Natural[string]()

func (b stringBase) ordering() vs.Ordering[string] {
	if b.ord == nil {
		return naturalString
	}
	return b.ord
}

// Parse never fails for strings.
func (stringBase) Parse(text string) (string, bool) { return text, true }

func (stringBase) Encode(v string) string { return v }

func (b stringBase) Compare(x, y string) int { return b.ordering().Compare(x, y) }

func (b stringBase) Capabilities() vs.Capabilities[string] {
	return vs.Capabilities[string]{Ordering: b.ordering()}
}

func (stringBase) Converters() vs.Converters[string] { return nil }

// ---------------- DomainString ----------------

// DomainStringSchema restricts strings to a finite set or a pattern.
type DomainStringSchema struct {
	stringBase
	domain vs.Domain[string]
}

var _ vs.Schema[string] = DomainStringSchema{}

// DomainString returns a schema admitting only members of d. An empty set
// admits every string.
func DomainString(d vs.Domain[string]) DomainStringSchema { return DomainStringSchema{domain: d} }

// OneOf is shorthand for DomainString(vs.InSet(values...)).
func OneOf(values ...string) DomainStringSchema { return DomainString(vs.InSet(values...)) }

// Matching is shorthand for DomainString(vs.Matching[string](p)).
func Matching(p vs.Pattern) DomainStringSchema { return DomainString(vs.Matching[string](p)) }

// WithOrdering replaces the lexical ordering used by Compare. It does not
// affect Validate.
func (s DomainStringSchema) WithOrdering(o vs.Ordering[string]) DomainStringSchema {
	s.ord = o
	return s
}

// Domain returns the configured domain.
func (s DomainStringSchema) Domain() vs.Domain[string] { return s.domain }

func (DomainStringSchema) Name() string { return "domainString" }

// ParamString is "pattern=<expr>" for pattern domains and "domain=a|b|c" for
// set domains, members sorted by the schema ordering. Inside a member '\\',
// '|' and ',' are escaped with a backslash. An empty set renders nothing.
func (s DomainStringSchema) ParamString() string {
	if p, ok := s.domain.Pattern(); ok {
		return "pattern=" + p.String()
	}
	members := s.domain.Members()
	if len(members) == 0 {
		return ""
	}
	slices.SortFunc(members, s.ordering().Compare)
	for i, m := range members {
		members[i] = memberEscaper.Replace(m)
	}
	return "domain=" + strings.Join(members, "|")
}

var memberEscaper = strings.NewReplacer(`\`, `\\`, `|`, `\|`, `,`, `\,`)

// SplitMembers reverses the member list of a "domain=" parameter: it splits
// at unescaped '|' and drops the escaping backslashes.
func SplitMembers(text string) []string {
	var (
		out []string
		b   strings.Builder
	)
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == '\\' && i+1 < len(text):
			i++
			b.WriteByte(text[i])
		case c == '|':
			out = append(out, b.String())
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	return append(out, b.String())
}

func (s DomainStringSchema) ShortString() string { return vs.ShortString(s.Name(), s.ParamString()) }

func (s DomainStringSchema) Validate(v string) bool {
	return vs.ValidateDomain[string](s.domain, s, v)
}

func (s DomainStringSchema) Decode(text string) (string, bool) { return vs.Decode[string](s, text) }

func (s DomainStringSchema) Box(v string) (vs.Value[string], bool) { return vs.Box[string](s, v) }

func (s DomainStringSchema) BoxUnsafe(v string) (vs.Value[string], error) {
	return vs.NewValue[string](s, v), nil
}

func (s DomainStringSchema) Explain(v string) vs.Issues {
	return vs.ExplainDomain[string](s.domain, s, v)
}

func (s DomainStringSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "string", Description: s.ShortString()}
	if p, ok := s.domain.Pattern(); ok {
		out.Pattern = "^(?:" + p.String() + ")$"
		return out, nil
	}
	out.Enum = s.domain.Members()
	return out, nil
}

// ---------------- BoundedString ----------------

// BoundedStringSchema admits strings whose length in Unicode code points lies
// in [min, max].
type BoundedStringSchema struct {
	stringBase
	min, max int
}

var _ vs.Schema[string] = BoundedStringSchema{}

// BoundedString returns a schema admitting strings of min..max code points.
// min <= max is not enforced.
func BoundedString(min, max int) BoundedStringSchema {
	return BoundedStringSchema{min: min, max: max}
}

// WithOrdering replaces the lexical ordering used by Compare.
func (s BoundedStringSchema) WithOrdering(o vs.Ordering[string]) BoundedStringSchema {
	s.ord = o
	return s
}

// Limits returns the configured length bounds.
func (s BoundedStringSchema) Limits() (min, max int) { return s.min, s.max }

func (BoundedStringSchema) Name() string { return "boundedString" }

// ParamString is always empty: the bounds are not part of the short string.
func (BoundedStringSchema) ParamString() string { return "" }

func (s BoundedStringSchema) ShortString() string { return vs.ShortString(s.Name(), s.ParamString()) }

func (s BoundedStringSchema) Validate(v string) bool {
	n := utf8.RuneCountInString(v)
	return s.min <= n && n <= s.max
}

func (s BoundedStringSchema) Decode(text string) (string, bool) { return vs.Decode[string](s, text) }

func (s BoundedStringSchema) Box(v string) (vs.Value[string], bool) { return vs.Box[string](s, v) }

func (s BoundedStringSchema) BoxUnsafe(v string) (vs.Value[string], error) {
	return vs.NewValue[string](s, v), nil
}

func (s BoundedStringSchema) Explain(v string) vs.Issues {
	n := utf8.RuneCountInString(v)
	switch {
	case n < s.min:
		return vs.Issues{vs.NewIssue(vs.CodeTooShort, map[string]string{"min": strconv.Itoa(s.min), "got": strconv.Itoa(n)})}
	case n > s.max:
		return vs.Issues{vs.NewIssue(vs.CodeTooLong, map[string]string{"max": strconv.Itoa(s.max), "got": strconv.Itoa(n)})}
	}
	return nil
}

func (s BoundedStringSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{
		Type:        "string",
		Description: s.ShortString(),
		MinLength:   js.Int(s.min),
		MaxLength:   js.Int(s.max),
	}, nil
}
