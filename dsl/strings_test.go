package dsl_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	vs "github.com/reoring/valueschema"
	g "github.com/reoring/valueschema/dsl"
)

func TestBoundedString_Lengths(t *testing.T) {
	s := g.BoundedString(2, 5)
	if v, ok := s.Decode("ab"); !ok || v != "ab" {
		t.Fatalf("expected ab, got %q %v", v, ok)
	}
	if _, ok := s.Decode("a"); ok {
		t.Fatalf("a is too short")
	}
	if _, ok := s.Decode("abcdef"); ok {
		t.Fatalf("abcdef is too long")
	}
	// code points, not bytes
	if _, ok := s.Decode("héé"); !ok {
		t.Fatalf("héé has 3 code points")
	}
	if _, ok := s.Decode("日本語です"); !ok {
		t.Fatalf("5 code points must pass")
	}
}

func TestBoundedString_ShortStringOmitsBounds(t *testing.T) {
	if got := g.BoundedString(2, 5).ShortString(); got != "boundedString" {
		t.Fatalf("ShortString() = %q", got)
	}
}

func TestBoundedString_Explain(t *testing.T) {
	s := g.BoundedString(2, 3)
	_, err := vs.Check[string](s, "a")
	if diff := cmp.Diff([]string{vs.CodeTooShort}, issueCodes(err)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	_, err = vs.Check[string](s, "abcd")
	if diff := cmp.Diff([]string{vs.CodeTooLong}, issueCodes(err)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDomainString_Set(t *testing.T) {
	s := g.OneOf("red", "green", "blue")
	if _, ok := s.Decode("yellow"); ok {
		t.Fatalf("yellow is not in the domain")
	}
	if v, ok := s.Decode("red"); !ok || v != "red" {
		t.Fatalf("expected red, got %q %v", v, ok)
	}
	if got := s.ShortString(); got != "domainString(domain=blue|green|red)" {
		t.Fatalf("ShortString() = %q", got)
	}
	_, err := vs.Check[string](s, "yellow")
	if diff := cmp.Diff([]string{vs.CodeInvalidEnum}, issueCodes(err)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDomainString_SetMembersAreEscaped(t *testing.T) {
	s := g.OneOf("a|b", "c", `x\y`, "d,pattern=e")
	want := `domainString(domain=a\|b|c|d\,pattern=e|x\\y)`
	if got := s.ShortString(); got != want {
		t.Fatalf("ShortString() = %q, want %q", got, want)
	}
	got := g.SplitMembers(`a\|b|c|d\,pattern=e|x\\y`)
	if diff := cmp.Diff([]string{"a|b", "c", "d,pattern=e", `x\y`}, got); diff != "" {
		t.Fatalf("SplitMembers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{""}, g.SplitMembers("")); diff != "" {
		t.Fatalf("SplitMembers(\"\") (-want +got):\n%s", diff)
	}
}

func TestDomainString_EmptySetIsUnrestricted(t *testing.T) {
	s := g.DomainString(vs.InSet[string]())
	for _, in := range []string{"", "anything", "red"} {
		if _, ok := s.Decode(in); !ok {
			t.Fatalf("empty domain must admit %q", in)
		}
	}
	if got := s.ShortString(); got != "domainString" {
		t.Fatalf("ShortString() = %q", got)
	}
}

func TestDomainString_PatternIsFullMatch(t *testing.T) {
	s := g.Matching(vs.MustPattern("^[0-9]+$"))
	if _, ok := s.Decode("12a"); ok {
		t.Fatalf("12a must not match")
	}
	if v, ok := s.Decode("123"); !ok || v != "123" {
		t.Fatalf("expected 123, got %q %v", v, ok)
	}

	unanchored := g.Matching(vs.MustPattern("[a-z]+"))
	if _, ok := unanchored.Decode("abc1"); ok {
		t.Fatalf("pattern must match the whole string, not a substring")
	}
	if _, ok := unanchored.Decode("abc"); !ok {
		t.Fatalf("abc must match")
	}
	if got := unanchored.ShortString(); got != "domainString(pattern=[a-z]+)" {
		t.Fatalf("ShortString() = %q", got)
	}
	_, err := vs.Check[string](unanchored, "abc1")
	if diff := cmp.Diff([]string{vs.CodePattern}, issueCodes(err)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDomainString_InvalidPattern(t *testing.T) {
	if _, err := vs.CompilePattern("[a-"); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestDomainString_CustomOrdering(t *testing.T) {
	byLength := vs.OrderingFunc[string](func(x, y string) int {
		if d := len(x) - len(y); d != 0 {
			return d
		}
		return strings.Compare(x, y)
	})
	s := g.OneOf("green", "red", "blue").WithOrdering(byLength)
	if s.Compare("red", "blue") >= 0 {
		t.Fatalf("custom ordering must put red before blue")
	}
	if got := s.ShortString(); got != "domainString(domain=red|blue|green)" {
		t.Fatalf("ShortString() = %q", got)
	}
	// ordering does not change membership
	if _, ok := s.Decode("purple"); ok {
		t.Fatalf("purple is not in the domain")
	}
	if g.OneOf("a").Compare("b", "a") <= 0 {
		t.Fatalf("default ordering is lexical")
	}
}

func TestStringSchemas_Capabilities(t *testing.T) {
	for _, s := range []vs.Schema[string]{g.OneOf("x"), g.BoundedString(0, 1)} {
		caps := s.Capabilities()
		if caps.Ordering == nil || caps.HasNumeric() || caps.HasIntegral() || caps.HasDate() {
			t.Fatalf("%s: strings carry ordering only", s.Name())
		}
		if len(s.Converters()) != 0 {
			t.Fatalf("%s: strings offer no converters", s.Name())
		}
		if got := s.Encode("as-is"); got != "as-is" {
			t.Fatalf("%s: encode must be identity", s.Name())
		}
		if v, ok := s.Parse("any text"); !ok || v != "any text" {
			t.Fatalf("%s: parse must be identity", s.Name())
		}
	}
}

func TestStringSchemas_JSONSchema(t *testing.T) {
	sch, _ := g.OneOf("b", "a").JSONSchema()
	if diff := cmp.Diff([]string{"b", "a"}, sch.Enum); diff != "" {
		t.Fatalf("enum (-want +got):\n%s", diff)
	}
	sch, _ = g.BoundedString(1, 8).JSONSchema()
	if sch.MinLength == nil || *sch.MinLength != 1 || sch.MaxLength == nil || *sch.MaxLength != 8 {
		t.Fatalf("unexpected lengths %#v", sch)
	}
	sch, _ = g.Matching(vs.MustPattern("[0-9]+")).JSONSchema()
	if sch.Pattern != "^(?:[0-9]+)$" {
		t.Fatalf("unexpected pattern %q", sch.Pattern)
	}
}
