package dsl

import (
	"strconv"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// maxExactFloat64 is 2^53, the largest magnitude below which every int64 is
// exactly representable as float64.
const maxExactFloat64 = 1 << 53

// LongSchema is a range schema over int64.
type LongSchema struct {
	rng vs.Range[int64]
}

var _ vs.Schema[int64] = LongSchema{}

// Long returns an unconstrained long schema.
func Long() LongSchema { return LongSchema{} }

// LongOf builds a long schema from explicit bounds.
func LongOf(r vs.Range[int64]) LongSchema { return LongSchema{rng: r} }

func (s LongSchema) Min(v int64) LongSchema {
	s.rng.Min = vs.Some(v)
	return s
}

func (s LongSchema) Max(v int64) LongSchema {
	s.rng.Max = vs.Some(v)
	return s
}

func (s LongSchema) Bounds() vs.Range[int64] { return s.rng }

func (LongSchema) Name() string { return "long" }

func (s LongSchema) ParamString() string { return vs.FormatParams[int64](s, s.rng) }

func (s LongSchema) ShortString() string { return vs.ShortString(s.Name(), s.ParamString()) }

// Parse accepts base-10 integers in the int64 range.
func (LongSchema) Parse(text string) (int64, bool) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s LongSchema) Validate(v int64) bool { return vs.ValidateRange[int64](longOrder, s.rng, v) }

func (s LongSchema) Decode(text string) (int64, bool) { return vs.Decode[int64](s, text) }

func (LongSchema) Encode(v int64) string { return strconv.FormatInt(v, 10) }

func (LongSchema) Compare(x, y int64) int { return longOrder.Compare(x, y) }

func (s LongSchema) Box(v int64) (vs.Value[int64], bool) { return vs.Box[int64](s, v) }

func (s LongSchema) BoxUnsafe(v int64) (vs.Value[int64], error) { return vs.NewValue[int64](s, v), nil }

func (LongSchema) Capabilities() vs.Capabilities[int64] {
	return vs.Capabilities[int64]{
		Ordering: longOrder,
		Numeric:  vs.NumericFunc[int64](func(v int64) float64 { return float64(v) }),
		Integral: vs.IntegralFunc[int64](func(v int64) int64 { return v }),
	}
}

// Converters always offers int64, and float64 when both bounds lie within
// ±2^53 so that every admitted value converts exactly.
func (s LongSchema) Converters() vs.Converters[int64] {
	cs := vs.Converters[int64]{vs.Int64Converter(func(v int64) int64 { return v })}
	lo, okLo := s.rng.Min.Get()
	hi, okHi := s.rng.Max.Get()
	if okLo && okHi && lo >= -maxExactFloat64 && hi <= maxExactFloat64 {
		cs = append(cs, vs.Float64Converter(func(v int64) float64 { return float64(v) }))
	}
	return cs
}

func (s LongSchema) Explain(v int64) vs.Issues {
	return vs.ExplainRange[int64](longOrder, s, s.rng, v)
}

func (s LongSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "integer", Format: "int64", Description: s.ShortString()}
	if v, ok := s.rng.Min.Get(); ok {
		out.Minimum = js.Float(float64(v))
	}
	if v, ok := s.rng.Max.Get(); ok {
		out.Maximum = js.Float(float64(v))
	}
	return out, nil
}

var longOrder = vs.Natural[int64]()
