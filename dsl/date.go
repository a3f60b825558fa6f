package dsl

import (
	"time"

	"github.com/cockroachdb/errors"

	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// DateLayout is the text form of dates: ISO 8601 calendar dates.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// DateSchema is a range schema over calendar dates, represented as
// time.Time at midnight UTC.
type DateSchema struct {
	rng vs.Range[time.Time]
}

var _ vs.Schema[time.Time] = DateSchema{}

// Date returns an unconstrained date schema.
func Date() DateSchema { return DateSchema{} }

// DateOf builds a date schema from explicit bounds.
func DateOf(r vs.Range[time.Time]) DateSchema { return DateSchema{rng: r} }

func (s DateSchema) Min(v time.Time) DateSchema {
	s.rng.Min = vs.Some(v)
	return s
}

func (s DateSchema) Max(v time.Time) DateSchema {
	s.rng.Max = vs.Some(v)
	return s
}

func (s DateSchema) Bounds() vs.Range[time.Time] { return s.rng }

func (DateSchema) Name() string { return "date" }

func (s DateSchema) ParamString() string { return vs.FormatParams[time.Time](s, s.rng) }

func (s DateSchema) ShortString() string { return vs.ShortString(s.Name(), s.ParamString()) }

// Parse accepts "YYYY-MM-DD".
func (DateSchema) Parse(text string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateLayout, text, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Validate admits only canonical dates (midnight UTC) inside the range.
func (s DateSchema) Validate(v time.Time) bool {
	return isCanonicalDate(v) && vs.ValidateRange[time.Time](dateOrder, s.rng, v)
}

func (s DateSchema) Decode(text string) (time.Time, bool) { return vs.Decode[time.Time](s, text) }

func (DateSchema) Encode(v time.Time) string { return v.Format(DateLayout) }

func (DateSchema) Compare(x, y time.Time) int { return dateOrder.Compare(x, y) }

func (s DateSchema) Box(v time.Time) (vs.Value[time.Time], bool) { return vs.Box[time.Time](s, v) }

func (s DateSchema) BoxUnsafe(v time.Time) (vs.Value[time.Time], error) {
	if !isCanonicalDate(v) {
		return vs.Value[time.Time]{}, errors.Wrapf(vs.ErrNotRepresentable, "date: %s is not midnight UTC", v.Format(time.RFC3339Nano))
	}
	return vs.NewValue[time.Time](s, v), nil
}

func (DateSchema) Capabilities() vs.Capabilities[time.Time] {
	return vs.Capabilities[time.Time]{
		Ordering: dateOrder,
		Date:     func(v time.Time) time.Time { return v },
		Integral: vs.IntegralFunc[time.Time](epochDays),
	}
}

// Converters offers int64 as days since 1970-01-01.
func (DateSchema) Converters() vs.Converters[time.Time] {
	return vs.Converters[time.Time]{vs.Int64Converter(epochDays)}
}

func (s DateSchema) Explain(v time.Time) vs.Issues {
	if !isCanonicalDate(v) {
		return vs.Issues{vs.NewIssue(vs.CodeInvalidValue, nil)}
	}
	return vs.ExplainRange[time.Time](dateOrder, s, s.rng, v)
}

func (s DateSchema) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: "date", Description: s.ShortString()}, nil
}

// MustDate parses "YYYY-MM-DD" and panics when it is malformed.
func MustDate(text string) time.Time {
	t, err := time.ParseInLocation(DateLayout, text, time.UTC)
	if err != nil {
		panic(errors.Wrapf(err, "dsl: invalid date %q", text))
	}
	return t
}

var dateOrder = vs.OrderingFunc[time.Time](func(x, y time.Time) int { return x.Compare(y) })

func isCanonicalDate(v time.Time) bool {
	if v.Location() != time.UTC {
		return false
	}
	h, m, sec := v.Clock()
	return h == 0 && m == 0 && sec == 0 && v.Nanosecond() == 0
}

// epochDays floors toward negative infinity so dates before 1970 count down
// from -1.
func epochDays(v time.Time) int64 {
	u := v.Unix()
	d := u / secondsPerDay
	if u%secondsPerDay < 0 {
		d--
	}
	return d
}
