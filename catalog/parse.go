package catalog

import (
	"math"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/dsl"
	"github.com/reoring/valueschema/internal/grammar"
)

// ErrInvalidSchema is returned (wrapped) when a short string names a known
// schema but one of its parameters cannot be applied.
var ErrInvalidSchema = errors.New("catalog: invalid schema parameter")

var schemaKeys = map[string][]string{
	"decimal":       {"min", "max", "precision", "scale"},
	"double":        {"min", "max", "precision", "scale"},
	"long":          {"min", "max"},
	"date":          {"min", "max"},
	"domainString":  {"domain", "pattern"},
	"boundedString": {"min", "max"},
}

func keysFor(name string) ([]string, bool) {
	k, ok := schemaKeys[name]
	return k, ok
}

// ParseSchema rebuilds a schema from its short string, e.g.
// "decimal(min=0,max=100,precision=5,scale=2)" or "domainString(domain=a|b)".
//
// boundedString never renders its bounds, so "boundedString" alone yields an
// unbounded string schema; "boundedString(min=2,max=5)" is accepted as input
// to set them.
func ParseSchema(text string) (dsl.AnyAdapter, error) {
	term, err := grammar.Parse(text, keysFor)
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	switch term.Name {
	case "decimal":
		return buildDecimal(term)
	case "double":
		return buildDouble(term)
	case "long":
		return buildLong(term)
	case "date":
		return buildDate(term)
	case "domainString":
		return buildDomainString(term)
	case "boundedString":
		return buildBoundedString(term)
	}
	return dsl.AnyAdapter{}, errors.Newf("catalog: no builder for %q", term.Name)
}

// MustParseSchema is like ParseSchema but panics on error.
func MustParseSchema(text string) dsl.AnyAdapter {
	ad, err := ParseSchema(text)
	if err != nil {
		panic(err)
	}
	return ad
}

func invalid(term grammar.Term, key, value string) error {
	return errors.Wrapf(ErrInvalidSchema, "%s: %s=%q", term.Name, key, value)
}

// bound parses the min/max entries of term with parse.
func bound[T any](term grammar.Term, parse func(string) (T, bool)) (vs.Range[T], error) {
	var r vs.Range[T]
	for _, key := range []string{"min", "max"} {
		text, ok := term.Get(key)
		if !ok {
			continue
		}
		v, ok := parse(text)
		if !ok {
			return r, invalid(term, key, text)
		}
		if key == "min" {
			r.Min = vs.Some(v)
		} else {
			r.Max = vs.Some(v)
		}
	}
	return r, nil
}

func digitLimits(term grammar.Term) (vs.Scale, error) {
	var sc vs.Scale
	if text, ok := term.Get("precision"); ok {
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			return sc, invalid(term, "precision", text)
		}
		sc.Precision = vs.Some(n)
	}
	if text, ok := term.Get("scale"); ok {
		n, err := strconv.Atoi(text)
		if err != nil {
			return sc, invalid(term, "scale", text)
		}
		sc.Scale = vs.Some(n)
	}
	return sc, nil
}

func buildDecimal(term grammar.Term) (dsl.AnyAdapter, error) {
	r, err := bound(term, dsl.Decimal().Parse)
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	sc, err := digitLimits(term)
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	return dsl.SchemaOf[*apd.Decimal](dsl.DecimalOf(r, sc)), nil
}

func buildDouble(term grammar.Term) (dsl.AnyAdapter, error) {
	r, err := bound(term, dsl.Double().Parse)
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	sc, err := digitLimits(term)
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	return dsl.SchemaOf[float64](dsl.DoubleOf(r, sc)), nil
}

func buildLong(term grammar.Term) (dsl.AnyAdapter, error) {
	r, err := bound(term, dsl.Long().Parse)
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	return dsl.SchemaOf[int64](dsl.LongOf(r)), nil
}

func buildDate(term grammar.Term) (dsl.AnyAdapter, error) {
	r, err := bound(term, dsl.Date().Parse)
	if err != nil {
		return dsl.AnyAdapter{}, err
	}
	return dsl.SchemaOf[time.Time](dsl.DateOf(r)), nil
}

func buildDomainString(term grammar.Term) (dsl.AnyAdapter, error) {
	set, hasSet := term.Get("domain")
	expr, hasPattern := term.Get("pattern")
	switch {
	case hasSet && hasPattern:
		return dsl.AnyAdapter{}, errors.Wrapf(ErrInvalidSchema, "domainString: domain and pattern are exclusive")
	case hasPattern:
		p, err := vs.CompilePattern(expr)
		if err != nil {
			return dsl.AnyAdapter{}, errors.Mark(err, ErrInvalidSchema)
		}
		return dsl.SchemaOf[string](dsl.Matching(p)), nil
	case hasSet:
		return dsl.SchemaOf[string](dsl.OneOf(dsl.SplitMembers(set)...)), nil
	}
	return dsl.SchemaOf[string](dsl.OneOf()), nil
}

func buildBoundedString(term grammar.Term) (dsl.AnyAdapter, error) {
	limits := [2]int{0, math.MaxInt}
	for i, key := range []string{"min", "max"} {
		text, ok := term.Get(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			return dsl.AnyAdapter{}, invalid(term, key, text)
		}
		limits[i] = n
	}
	return dsl.SchemaOf[string](dsl.BoundedString(limits[0], limits[1])), nil
}
