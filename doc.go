// Package valueschema provides typed value schemas: composable constraint
// descriptors that, for a primitive type T, can
//
// - Parse a textual representation into a candidate value
// - Validate that value against the declared constraints
// - Encode a value to its canonical text
// - Compare values of T
// - Describe themselves with a short, deterministic string such as
// "decimal(min=0,max=100,precision=5,scale=2)"
//
// Design policy:
// - Keep only the contract and shared helpers in the root package; concrete
// schemas live under dsl/, adapters under codec/, short-string loading under catalog/.
// - Capabilities (ordering, numeric, integral, date) are explicit values bound at
// construction; nothing is resolved by type at runtime.
// - Every schema is immutable and safe for concurrent use.
//
// Typical usage:
//
//	s := dsl.Decimal().Min(dsl.MustDecimal("0")).Max(dsl.MustDecimal("100")).Precision(5).Scale(2)
//	v, ok := s.Decode("42.13")
//	_, err := valueschema.Check[*apd.Decimal](s, "123.456") // Issues{precision}
//	fmt.Println(s.ShortString()) // decimal(min=0,max=100,precision=5,scale=2)
package valueschema
