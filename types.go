package valueschema

import (
	"cmp"
	"time"
)

// Opt is an immutable optional value.
type Opt[T any] struct {
	v  T
	ok bool
}

// Some returns a present Opt holding v.
func Some[T any](v T) Opt[T] { return Opt[T]{v: v, ok: true} }

// None returns an absent Opt.
func None[T any]() Opt[T] { return Opt[T]{} }

// Get returns the held value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.v, o.ok }

// IsSome reports whether a value is present.
func (o Opt[T]) IsSome() bool { return o.ok }

// OrElse returns the held value, or d when absent.
func (o Opt[T]) OrElse(d T) T {
	if o.ok {
		return o.v
	}
	return d
}

// Ordering is a three-way comparator: negative when x < y, zero when equal,
// positive when x > y.
type Ordering[T any] interface {
	Compare(x, y T) int
}

// OrderingFunc adapts a plain function to Ordering.
type OrderingFunc[T any] func(x, y T) int

func (f OrderingFunc[T]) Compare(x, y T) int { return f(x, y) }

// Natural returns the built-in ordering of an ordered type.
func Natural[T cmp.Ordered]() Ordering[T] { return OrderingFunc[T](cmp.Compare[T]) }

// Numeric reports the numeric value of T as a float64.
type Numeric[T any] interface {
	Float64(v T) float64
}

// NumericFunc adapts a plain function to Numeric.
type NumericFunc[T any] func(v T) float64

func (f NumericFunc[T]) Float64(v T) float64 { return f(v) }

// Integral reports the integral value of T.
type Integral[T any] interface {
	Int64(v T) int64
}

// IntegralFunc adapts a plain function to Integral.
type IntegralFunc[T any] func(v T) int64

func (f IntegralFunc[T]) Int64(v T) int64 { return f(v) }

// DateExtractor extracts a date from a value.
type DateExtractor[T any] func(v T) time.Time

// Capabilities bundles what a schema can do with its values besides
// parse/validate/encode. Ordering is mandatory; a nil field means the
// capability is absent.
type Capabilities[T any] struct {
	Ordering Ordering[T]
	Date     DateExtractor[T]
	Numeric  Numeric[T]
	Integral Integral[T]
}

// HasNumeric reports whether the numeric capability is present.
func (c Capabilities[T]) HasNumeric() bool { return c.Numeric != nil }

// HasIntegral reports whether the integral capability is present.
func (c Capabilities[T]) HasIntegral() bool { return c.Integral != nil }

// HasDate reports whether the date capability is present.
func (c Capabilities[T]) HasDate() bool { return c.Date != nil }
