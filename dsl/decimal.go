package dsl

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// Integer-part digit limits below which a decimal cannot overflow to
// infinity when converted to float64 or float32.
const (
	float64IntDigits = 309
	float32IntDigits = 39
)

// DecimalSchema is a range+scale schema over arbitrary-precision decimals.
// Builder methods return modified copies; a DecimalSchema is never mutated.
type DecimalSchema struct {
	rng vs.Range[*apd.Decimal]
	sc  vs.Scale
}

var _ vs.Schema[*apd.Decimal] = DecimalSchema{}

// Decimal returns an unconstrained decimal schema.
func Decimal() DecimalSchema { return DecimalSchema{} }

// DecimalOf builds a decimal schema from explicit bounds and digit limits.
func DecimalOf(r vs.Range[*apd.Decimal], sc vs.Scale) DecimalSchema {
	s := DecimalSchema{sc: sc}
	if v, ok := r.Min.Get(); ok {
		s = s.Min(v)
	}
	if v, ok := r.Max.Get(); ok {
		s = s.Max(v)
	}
	return s
}

// Min sets the inclusive lower bound. d is copied.
func (s DecimalSchema) Min(d *apd.Decimal) DecimalSchema {
	s.rng.Min = vs.Some(copyDecimal(d))
	return s
}

// Max sets the inclusive upper bound. d is copied.
func (s DecimalSchema) Max(d *apd.Decimal) DecimalSchema {
	s.rng.Max = vs.Some(copyDecimal(d))
	return s
}

// Precision limits the total number of digits.
func (s DecimalSchema) Precision(n int) DecimalSchema {
	s.sc.Precision = vs.Some(n)
	return s
}

// Scale limits the number of fractional digits.
func (s DecimalSchema) Scale(n int) DecimalSchema {
	s.sc.Scale = vs.Some(n)
	return s
}

// Bounds returns the configured range.
func (s DecimalSchema) Bounds() vs.Range[*apd.Decimal] { return s.rng }

// Digits returns the configured precision and scale.
func (s DecimalSchema) Digits() vs.Scale { return s.sc }

func (DecimalSchema) Name() string { return "decimal" }

func (s DecimalSchema) ParamString() string { return vs.ScaleParams[*apd.Decimal](s, s.rng, s.sc) }

func (s DecimalSchema) ShortString() string { return vs.ShortString(s.Name(), s.ParamString()) }

// Parse accepts finite decimal literals such as "42.13", "-1e5" or "0.00".
func (DecimalSchema) Parse(text string) (*apd.Decimal, bool) {
	d, _, err := apd.NewFromString(text)
	if err != nil || d.Form != apd.Finite {
		return nil, false
	}
	return d, true
}

func (s DecimalSchema) Validate(v *apd.Decimal) bool {
	if v == nil || v.Form != apd.Finite {
		return false
	}
	return vs.ValidateScaled[*apd.Decimal](decimalOrder, s.rng, s.sc, decimalExact, v)
}

func (s DecimalSchema) Decode(text string) (*apd.Decimal, bool) {
	return vs.Decode[*apd.Decimal](s, text)
}

// Encode renders v in apd's scientific-string form, which keeps the exponent
// so that precision and scale survive a round trip.
func (DecimalSchema) Encode(v *apd.Decimal) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func (DecimalSchema) Compare(x, y *apd.Decimal) int { return decimalOrder.Compare(x, y) }

func (s DecimalSchema) Box(v *apd.Decimal) (vs.Value[*apd.Decimal], bool) {
	return vs.Box[*apd.Decimal](s, v)
}

func (s DecimalSchema) BoxUnsafe(v *apd.Decimal) (vs.Value[*apd.Decimal], error) {
	if v == nil {
		return vs.Value[*apd.Decimal]{}, errors.Wrap(vs.ErrNotRepresentable, "decimal: nil")
	}
	if v.Form != apd.Finite {
		return vs.Value[*apd.Decimal]{}, errors.Wrapf(vs.ErrNotRepresentable, "decimal: %s", v.String())
	}
	return vs.NewValue[*apd.Decimal](s, v), nil
}

func (DecimalSchema) Capabilities() vs.Capabilities[*apd.Decimal] {
	return vs.Capabilities[*apd.Decimal]{
		Ordering: decimalOrder,
		Numeric:  vs.NumericFunc[*apd.Decimal](decimalToFloat64),
	}
}

// Converters offers float64 when precision-scale < 309 and float32 when
// precision-scale < 39. Without a precision the integer part is unbounded
// and nothing is offered. An absent scale counts as 0.
func (s DecimalSchema) Converters() vs.Converters[*apd.Decimal] {
	p, ok := s.sc.Precision.Get()
	if !ok {
		return nil
	}
	intDigits := p - s.sc.Scale.OrElse(0)
	var cs vs.Converters[*apd.Decimal]
	if intDigits < float64IntDigits {
		cs = append(cs, vs.Float64Converter(decimalToFloat64))
	}
	if intDigits < float32IntDigits {
		cs = append(cs, vs.Float32Converter(decimalToFloat32))
	}
	return cs
}

func (s DecimalSchema) Explain(v *apd.Decimal) vs.Issues {
	if v == nil || v.Form != apd.Finite {
		return vs.Issues{vs.NewIssue(vs.CodeInvalidValue, nil)}
	}
	return vs.ExplainScaled[*apd.Decimal](decimalOrder, s, s.rng, s.sc, decimalExact, v)
}

func (s DecimalSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "number", Description: s.ShortString()}
	if v, ok := s.rng.Min.Get(); ok {
		out.Minimum = js.Float(decimalToFloat64(v))
	}
	if v, ok := s.rng.Max.Get(); ok {
		out.Maximum = js.Float(decimalToFloat64(v))
	}
	if n, ok := s.sc.Scale.Get(); ok && n >= 0 {
		out.MultipleOf = js.Float(math.Pow10(-n))
	}
	return out, nil
}

// MustDecimal parses a decimal literal and panics when it is malformed.
func MustDecimal(text string) *apd.Decimal {
	d, _, err := apd.NewFromString(text)
	if err != nil {
		panic(errors.Wrapf(err, "dsl: invalid decimal %q", text))
	}
	return d
}

var decimalOrder = vs.OrderingFunc[*apd.Decimal](func(x, y *apd.Decimal) int {
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	case y == nil:
		return 1
	}
	return x.Cmp(y)
})

// decimalExact treats the value itself as the exact decimal form.
func decimalExact(v *apd.Decimal) (*apd.Decimal, bool) {
	return v, v != nil && v.Form == apd.Finite
}

func decimalToFloat64(v *apd.Decimal) float64 {
	if v == nil {
		return math.NaN()
	}
	// Out-of-range magnitudes come back as ±Inf together with an error.
	f, _ := v.Float64()
	return f
}

func decimalToFloat32(v *apd.Decimal) float32 {
	if v == nil {
		return float32(math.NaN())
	}
	f, _ := strconv.ParseFloat(v.String(), 32)
	return float32(f)
}

func copyDecimal(d *apd.Decimal) *apd.Decimal {
	if d == nil {
		return nil
	}
	return new(apd.Decimal).Set(d)
}
