package dsl_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	vs "github.com/reoring/valueschema"
	g "github.com/reoring/valueschema/dsl"
)

func TestLong_Basic(t *testing.T) {
	s := g.Long().Min(1).Max(10)
	if v, ok := s.Decode("7"); !ok || v != 7 {
		t.Fatalf("expected 7, got %v %v", v, ok)
	}
	for _, in := range []string{"0", "11", "1.5", "x", "99999999999999999999"} {
		if _, ok := s.Decode(in); ok {
			t.Fatalf("expected %q to be rejected", in)
		}
	}
	if got := s.ShortString(); got != "long(min=1,max=10)" {
		t.Fatalf("ShortString() = %q", got)
	}
	if got := g.Long().ShortString(); got != "long" {
		t.Fatalf("ShortString() = %q", got)
	}
}

func TestLong_Converters(t *testing.T) {
	bounded := g.LongOf(vs.Between[int64](-100, 100)).Converters()
	if diff := cmp.Diff([]vs.ConverterKind{vs.ConvertInt64, vs.ConvertFloat64}, bounded.Kinds()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if f, ok := bounded.Float64(42); !ok || f != 42 {
		t.Fatalf("Float64(42) = %v %v", f, ok)
	}
	unbounded := g.Long().Converters()
	if unbounded.Has(vs.ConvertFloat64) || !unbounded.Has(vs.ConvertInt64) {
		t.Fatalf("unbounded long offers int64 only, got %v", unbounded.Kinds())
	}
	caps := g.Long().Capabilities()
	if !caps.HasIntegral() || !caps.HasNumeric() || caps.HasDate() {
		t.Fatalf("long capabilities: numeric and integral")
	}
}

func TestDate_Basic(t *testing.T) {
	s := g.Date().Min(g.MustDate("2020-01-01")).Max(g.MustDate("2020-12-31"))
	v, ok := s.Decode("2020-02-29")
	if !ok || !v.Equal(time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2020-02-29, got %v %v", v, ok)
	}
	for _, in := range []string{"2019-12-31", "2021-01-01", "2020-02-30", "2020/01/01", ""} {
		if _, ok := s.Decode(in); ok {
			t.Fatalf("expected %q to be rejected", in)
		}
	}
	if got := s.ShortString(); got != "date(min=2020-01-01,max=2020-12-31)" {
		t.Fatalf("ShortString() = %q", got)
	}
}

func TestDate_OnlyCanonicalDatesValidate(t *testing.T) {
	s := g.Date()
	noon := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	if s.Validate(noon) {
		t.Fatalf("a time of day is not a date")
	}
	tokyo := time.Date(2020, 1, 1, 0, 0, 0, 0, time.FixedZone("JST", 9*3600))
	if s.Validate(tokyo) {
		t.Fatalf("non-UTC midnight is not canonical")
	}
	if _, ok := s.Box(noon); ok {
		t.Fatalf("noon must not box")
	}
}

func TestDate_EpochDays(t *testing.T) {
	s := g.Date()
	caps := s.Capabilities()
	cases := map[string]int64{
		"1970-01-01": 0,
		"1970-01-02": 1,
		"1969-12-31": -1,
		"2000-01-01": 10957,
	}
	for in, want := range cases {
		v := g.MustDate(in)
		if got := caps.Integral.Int64(v); got != want {
			t.Fatalf("epoch days of %s = %d, want %d", in, got, want)
		}
		if got, ok := s.Converters().Int64(v); !ok || got != want {
			t.Fatalf("converter of %s = %d, want %d", in, got, want)
		}
		if !caps.Date(v).Equal(v) {
			t.Fatalf("date capability must be identity")
		}
	}
}
