package dsl_test

import (
	"math"
	"testing"

	vs "github.com/reoring/valueschema"
	g "github.com/reoring/valueschema/dsl"
)

func TestDouble_UnitInterval(t *testing.T) {
	s := g.Double().Min(0).Max(1)
	if _, ok := s.Decode("1.5"); ok {
		t.Fatalf("1.5 is out of range")
	}
	v, ok := s.Decode("0.5")
	if !ok || v != 0.5 {
		t.Fatalf("expected 0.5, got %v %v", v, ok)
	}
	if got := s.ShortString(); got != "double(min=0.0,max=1.0)" {
		t.Fatalf("ShortString() = %q", got)
	}
}

func TestDouble_ParseRejectsNonFinite(t *testing.T) {
	s := g.Double()
	for _, in := range []string{"NaN", "nan", "Inf", "-Infinity", "1e400", "abc", ""} {
		if _, ok := s.Parse(in); ok {
			t.Fatalf("expected parse failure for %q", in)
		}
	}
	if s.Validate(math.NaN()) || s.Validate(math.Inf(1)) {
		t.Fatalf("validate must reject non-finite values")
	}
}

func TestDouble_Encode(t *testing.T) {
	s := g.Double()
	cases := map[float64]string{
		0:          "0.0",
		1:          "1.0",
		-2.5:       "-2.5",
		0.001:      "0.001",
		1234567:    "1234567.0",
		1e7:        "1.0E7",
		1e10:       "1.0E10",
		1.5e-5:     "1.5E-5",
		-0.0001:    "-1.0E-4",
		123.456789: "123.456789",
	}
	for in, want := range cases {
		if got := s.Encode(in); got != want {
			t.Fatalf("Encode(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestDouble_PrecisionAndScale(t *testing.T) {
	s := g.Double().Precision(3).Scale(1)
	cases := map[string]bool{
		"1.2":   true,
		"12.3":  true,
		"1.23":  false, // scale 2
		"123.4": false, // precision 4
		"0.1":   true,  // shortest form, not the binary expansion
	}
	for in, want := range cases {
		if _, ok := s.Decode(in); ok != want {
			t.Fatalf("Decode(%q) = %v, want %v", in, ok, want)
		}
	}
	if got := s.ShortString(); got != "double(precision=3,scale=1)" {
		t.Fatalf("ShortString() = %q", got)
	}
}

func TestDouble_BoxAndCapabilities(t *testing.T) {
	s := g.Double()
	if _, ok := s.Box(math.NaN()); ok {
		t.Fatalf("NaN must not box")
	}
	if _, err := s.BoxUnsafe(math.Inf(-1)); err == nil {
		t.Fatalf("BoxUnsafe(-Inf) must fail")
	}
	v, ok := s.Box(2.25)
	if !ok || v.Raw() != 2.25 || v.String() != "2.25" {
		t.Fatalf("unexpected box %v %v", v, ok)
	}
	if len(s.Converters()) != 0 {
		t.Fatalf("double offers no converters")
	}
	caps := s.Capabilities()
	if !caps.HasNumeric() || caps.HasIntegral() || caps.HasDate() {
		t.Fatalf("double capabilities: numeric only")
	}
}

func TestDouble_ExplainRange(t *testing.T) {
	s := g.DoubleOf(vs.Between(-1.0, 1.0), vs.Scale{})
	_, err := vs.Check[float64](s, "-3")
	iss, ok := vs.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != vs.CodeTooSmall {
		t.Fatalf("expected too_small, got %v", err)
	}
	if iss[0].Params["min"] != "-1.0" {
		t.Fatalf("min param must be encoded by the schema, got %v", iss[0].Params)
	}
}
