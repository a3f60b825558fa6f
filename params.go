package valueschema

import (
	"strconv"
	"strings"
)

// Param is one optional labeled entry of a schema's parameter string.
type Param struct {
	Label string
	Value Opt[string]
}

// StringParam is a Param that is present iff value is.
func StringParam(label string, value Opt[string]) Param { return Param{Label: label, Value: value} }

// IntParam renders an optional int parameter.
func IntParam(label string, value Opt[int]) Param {
	n, ok := value.Get()
	if !ok {
		return Param{Label: label}
	}
	return Param{Label: label, Value: Some(strconv.Itoa(n))}
}

// FormatParams renders "min=<enc>,max=<enc>,<label>=<value>,..." skipping
// absent entries. The result carries no parentheses; ShortString adds them.
func FormatParams[T any](enc Encodable[T], r Range[T], extras ...Param) string {
	parts := make([]string, 0, 2+len(extras))
	if v, ok := r.Min.Get(); ok {
		parts = append(parts, "min="+enc.Encode(v))
	}
	if v, ok := r.Max.Get(); ok {
		parts = append(parts, "max="+enc.Encode(v))
	}
	for _, p := range extras {
		if v, ok := p.Value.Get(); ok {
			parts = append(parts, p.Label+"="+v)
		}
	}
	return strings.Join(parts, ",")
}
