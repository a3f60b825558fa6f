package valueschema_test

import (
	"math"
	"testing"

	"github.com/cockroachdb/apd/v3"

	vs "github.com/reoring/valueschema"
)

func dec(t *testing.T, s string) *apd.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestDigits(t *testing.T) {
	cases := []struct {
		in         string
		prec, scal int
	}{
		{"42.13", 4, 2},
		{"123.456", 6, 3},
		{"0", 1, 0},
		{"0.00", 1, 2},
		{"0.01", 1, 2},
		{"1E+3", 4, 0},
		{"1000", 4, 0},
		{"12E+1", 3, 0},
		{"0E+3", 1, 0},
		{"-100", 3, 0},
	}
	for _, tc := range cases {
		p, s := vs.Digits(dec(t, tc.in))
		if p != tc.prec || s != tc.scal {
			t.Fatalf("Digits(%s) = (%d,%d), want (%d,%d)", tc.in, p, s, tc.prec, tc.scal)
		}
	}
}

func TestValidateScale(t *testing.T) {
	sc := vs.Scale{Precision: vs.Some(5), Scale: vs.Some(2)}
	if !vs.ValidateScale(sc, dec(t, "999.99")) {
		t.Fatalf("999.99 fits (5,2)")
	}
	if vs.ValidateScale(sc, dec(t, "9999.99")) {
		t.Fatalf("9999.99 has 6 digits")
	}
	if vs.ValidateScale(sc, dec(t, "1.001")) {
		t.Fatalf("1.001 has scale 3")
	}
	if vs.ValidateScale(sc, dec(t, "1E+40")) || vs.ValidateScale(sc, dec(t, "1234")) {
		t.Fatalf("(5,2) leaves three integer digits")
	}
	if !vs.ValidateScale(vs.Scale{}, dec(t, "123456789.123456789")) {
		t.Fatalf("absent limits admit everything finite")
	}
	nan := dec(t, "NaN")
	if vs.ValidateScale(vs.Scale{}, nan) || vs.ValidateScale(vs.Scale{}, nil) {
		t.Fatalf("non-finite never fits")
	}
	// precision < scale is accepted as configured, not corrected
	odd := vs.Scale{Precision: vs.Some(1), Scale: vs.Some(3)}
	if !vs.ValidateScale(odd, dec(t, "0.005")) || vs.ValidateScale(odd, dec(t, "0.15")) {
		t.Fatalf("precision<scale must be applied literally")
	}
}

func TestFloat64ToDecimal_ShortestForm(t *testing.T) {
	d, ok := vs.Float64ToDecimal(0.1)
	if !ok {
		t.Fatalf("0.1 converts")
	}
	if p, s := vs.Digits(d); p != 1 || s != 1 {
		t.Fatalf("0.1 digits = (%d,%d)", p, s)
	}
	if _, ok := vs.Float64ToDecimal(math.NaN()); ok {
		t.Fatalf("NaN has no decimal form")
	}
	if _, ok := vs.Float64ToDecimal(math.Inf(1)); ok {
		t.Fatalf("Inf has no decimal form")
	}
}

func TestValidateScaled_RangeFirst(t *testing.T) {
	calls := 0
	toDec := func(v float64) (*apd.Decimal, bool) {
		calls++
		return vs.Float64ToDecimal(v)
	}
	ord := vs.Natural[float64]()
	r := vs.Between(0.0, 10.0)
	if !vs.ValidateScaled[float64](ord, r, vs.Scale{}, toDec, 5) || calls != 0 {
		t.Fatalf("no digit limits: no decimal conversion expected")
	}
	sc := vs.Scale{Scale: vs.Some(1)}
	if vs.ValidateScaled[float64](ord, r, sc, toDec, 5.25) {
		t.Fatalf("5.25 has scale 2")
	}
	if vs.ValidateScaled[float64](ord, r, sc, toDec, 11) {
		t.Fatalf("11 is out of range")
	}
	if got := vs.ScaleParams[float64](encFloat{}, r, sc); got != "min=0,max=10,scale=1" {
		t.Fatalf("ScaleParams = %q", got)
	}
}

type encFloat struct{}

func (encFloat) Encode(v float64) string { return apd.New(int64(v), 0).String() }

func TestDomain(t *testing.T) {
	enc := identity{}
	set := vs.InSet("b", "a", "b")
	if got := set.Members(); len(got) != 2 || got[0] != "b" || got[1] != "a" {
		t.Fatalf("members = %v", got)
	}
	if !vs.ValidateDomain[string](set, enc, "a") || vs.ValidateDomain[string](set, enc, "c") {
		t.Fatalf("set membership broken")
	}
	if !vs.InSet[string]().Unrestricted() || !vs.ValidateDomain[string](vs.InSet[string](), enc, "zzz") {
		t.Fatalf("empty set admits everything")
	}
	pat := vs.Matching[string](vs.MustPattern(`a|b`))
	if !vs.ValidateDomain[string](pat, enc, "a") || vs.ValidateDomain[string](pat, enc, "ab") {
		t.Fatalf("alternation must be anchored as a whole")
	}
	if iss := vs.ExplainDomain[string](pat, enc, "c"); len(iss) != 1 || iss[0].Code != vs.CodePattern {
		t.Fatalf("expected pattern issue, got %v", iss)
	}
	if (vs.Pattern{}).Match("") {
		t.Fatalf("zero pattern matches nothing")
	}
}

type identity struct{}

func (identity) Encode(v string) string { return v }
