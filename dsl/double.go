package dsl

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/cockroachdb/errors"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// DoubleSchema is a range+scale schema over float64. Precision and scale are
// checked on the shortest decimal form that round-trips the float.
type DoubleSchema struct {
	rng vs.Range[float64]
	sc  vs.Scale
}

var _ vs.Schema[float64] = DoubleSchema{}

// Double returns an unconstrained double schema.
func Double() DoubleSchema { return DoubleSchema{} }

// DoubleOf builds a double schema from explicit bounds and digit limits.
func DoubleOf(r vs.Range[float64], sc vs.Scale) DoubleSchema { return DoubleSchema{rng: r, sc: sc} }

func (s DoubleSchema) Min(v float64) DoubleSchema {
	s.rng.Min = vs.Some(v)
	return s
}

func (s DoubleSchema) Max(v float64) DoubleSchema {
	s.rng.Max = vs.Some(v)
	return s
}

func (s DoubleSchema) Precision(n int) DoubleSchema {
	s.sc.Precision = vs.Some(n)
	return s
}

func (s DoubleSchema) Scale(n int) DoubleSchema {
	s.sc.Scale = vs.Some(n)
	return s
}

func (s DoubleSchema) Bounds() vs.Range[float64] { return s.rng }

func (s DoubleSchema) Digits() vs.Scale { return s.sc }

func (DoubleSchema) Name() string { return "double" }

func (s DoubleSchema) ParamString() string { return vs.ScaleParams[float64](s, s.rng, s.sc) }

func (s DoubleSchema) ShortString() string { return vs.ShortString(s.Name(), s.ParamString()) }

// Parse accepts float literals. NaN, infinities and out-of-range literals are
// rejected.
func (DoubleSchema) Parse(text string) (float64, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Validate never admits NaN or infinities.
func (s DoubleSchema) Validate(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return vs.ValidateScaled[float64](doubleOrder, s.rng, s.sc, doubleToDecimal, v)
}

func (s DoubleSchema) Decode(text string) (float64, bool) { return vs.Decode[float64](s, text) }

// Encode renders v like "0.5", "1.0" or "1.0E10": plain notation with at
// least one fractional digit for magnitudes in [1e-3, 1e7), scientific
// notation otherwise.
func (DoubleSchema) Encode(v float64) string { return formatDouble(v) }

func (DoubleSchema) Compare(x, y float64) int { return doubleOrder.Compare(x, y) }

func (s DoubleSchema) Box(v float64) (vs.Value[float64], bool) { return vs.Box[float64](s, v) }

func (s DoubleSchema) BoxUnsafe(v float64) (vs.Value[float64], error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return vs.Value[float64]{}, errors.Wrapf(vs.ErrNotRepresentable, "double: %v", v)
	}
	return vs.NewValue[float64](s, v), nil
}

func (DoubleSchema) Capabilities() vs.Capabilities[float64] {
	return vs.Capabilities[float64]{
		Ordering: doubleOrder,
		Numeric:  vs.NumericFunc[float64](func(v float64) float64 { return v }),
	}
}

// Converters is empty: float64 has no narrower lossless target here.
func (DoubleSchema) Converters() vs.Converters[float64] { return nil }

func (s DoubleSchema) Explain(v float64) vs.Issues {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return vs.Issues{vs.NewIssue(vs.CodeInvalidValue, nil)}
	}
	return vs.ExplainScaled[float64](doubleOrder, s, s.rng, s.sc, doubleToDecimal, v)
}

func (s DoubleSchema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{Type: "number", Format: "double", Description: s.ShortString()}
	if v, ok := s.rng.Min.Get(); ok {
		out.Minimum = js.Float(v)
	}
	if v, ok := s.rng.Max.Get(); ok {
		out.Maximum = js.Float(v)
	}
	return out, nil
}

var doubleOrder = vs.Natural[float64]()

func doubleToDecimal(v float64) (*apd.Decimal, bool) { return vs.Float64ToDecimal(v) }

func formatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); f == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'E', -1, 64), "E")
	if !strings.ContainsRune(mant, '.') {
		mant += ".0"
	}
	e, _ := strconv.Atoi(exp)
	return mant + "E" + strconv.Itoa(e)
}
