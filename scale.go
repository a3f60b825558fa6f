package valueschema

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Scale limits the digits of a numeric value. Precision is the total number of
// digits and Scale the number of digits after the decimal point; with both set
// the integer part holds at most Precision-Scale digits. precision >= scale is
// not enforced.
type Scale struct {
	Precision Opt[int]
	Scale     Opt[int]
}

// Digits reports the precision and scale of a finite decimal. Precision counts
// every digit of the integer and fractional parts; scale counts fractional
// digits and is never negative. 42.13 has precision 4 and scale 2; 1E+3 has
// precision 4 and scale 0, like 1000.
func Digits(d *apd.Decimal) (precision, scale int) {
	precision = 1
	if d.Coeff.Sign() != 0 {
		precision = int(d.NumDigits())
	}
	if d.Exponent > 0 {
		if d.Coeff.Sign() != 0 {
			precision += int(d.Exponent)
		}
		return precision, 0
	}
	return precision, -int(d.Exponent)
}

// integerDigitsExceeded reports whether a value with precision p and scale s
// has more integer digits than sc allows. With both limits set the integer
// part may hold at most precision-scale digits.
func integerDigitsExceeded(sc Scale, p, s int) (limit int, exceeded bool) {
	maxP, okP := sc.Precision.Get()
	maxS, okS := sc.Scale.Get()
	if !okP || !okS {
		return 0, false
	}
	limit = maxP - maxS
	if limit < 0 {
		limit = 0
	}
	return limit, max(p-s, 0) > limit
}

// ValidateScale reports whether d fits sc. Non-finite decimals never fit.
func ValidateScale(sc Scale, d *apd.Decimal) bool {
	if d == nil || d.Form != apd.Finite {
		return false
	}
	p, s := Digits(d)
	if max, ok := sc.Precision.Get(); ok && p > max {
		return false
	}
	if max, ok := sc.Scale.Get(); ok && s > max {
		return false
	}
	_, exceeded := integerDigitsExceeded(sc, p, s)
	return !exceeded
}

// ExplainScale returns precision/scale issues for d, or nil when d fits.
func ExplainScale(sc Scale, d *apd.Decimal) Issues {
	if d == nil || d.Form != apd.Finite {
		return Issues{NewIssue(CodeInvalidValue, nil)}
	}
	var iss Issues
	p, s := Digits(d)
	if max, ok := sc.Precision.Get(); ok && p > max {
		iss = AppendIssues(iss, NewIssue(CodePrecision, map[string]string{"precision": strconv.Itoa(max), "got": strconv.Itoa(p)}))
	} else if limit, exceeded := integerDigitsExceeded(sc, p, s); exceeded {
		iss = AppendIssues(iss, NewIssue(CodePrecision, map[string]string{"precision": strconv.Itoa(max), "integerDigits": strconv.Itoa(limit), "got": strconv.Itoa(p)}))
	}
	if max, ok := sc.Scale.Get(); ok && s > max {
		iss = AppendIssues(iss, NewIssue(CodeScale, map[string]string{"scale": strconv.Itoa(max), "got": strconv.Itoa(s)}))
	}
	return iss
}

// Float64ToDecimal converts f through its shortest round-tripping decimal
// form. Very large magnitudes keep only the digits float64 carries.
func Float64ToDecimal(f float64) (*apd.Decimal, bool) {
	d := new(apd.Decimal)
	if _, err := d.SetFloat64(f); err != nil {
		return nil, false
	}
	return d, d.Form == apd.Finite
}

// ToDecimal converts a value to an exact decimal for digit counting. It
// reports false when the value has no finite decimal form.
type ToDecimal[T any] func(v T) (*apd.Decimal, bool)

// ValidateScaled is the validation of range+scale schemas: v must lie in r
// and, when sc bounds digits, its decimal form must fit sc.
func ValidateScaled[T any](ord Ordering[T], r Range[T], sc Scale, toDecimal ToDecimal[T], v T) bool {
	if !ValidateRange(ord, r, v) {
		return false
	}
	if !sc.Precision.IsSome() && !sc.Scale.IsSome() {
		return true
	}
	d, ok := toDecimal(v)
	return ok && ValidateScale(sc, d)
}

// ExplainScaled collects range then scale issues for v.
func ExplainScaled[T any](ord Ordering[T], enc Encodable[T], r Range[T], sc Scale, toDecimal ToDecimal[T], v T) Issues {
	iss := ExplainRange(ord, enc, r, v)
	if !sc.Precision.IsSome() && !sc.Scale.IsSome() {
		return iss
	}
	d, ok := toDecimal(v)
	if !ok {
		return AppendIssues(iss, NewIssue(CodeInvalidValue, nil))
	}
	if more := ExplainScale(sc, d); len(more) > 0 {
		iss = AppendIssues(iss, more...)
	}
	return iss
}

// ScaleParams renders min, max, precision and scale in that order.
func ScaleParams[T any](enc Encodable[T], r Range[T], sc Scale) string {
	return FormatParams(enc, r, IntParam("precision", sc.Precision), IntParam("scale", sc.Scale))
}
