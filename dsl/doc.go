// Package dsl provides the concrete value schemas of valueschema.
//
// Overview
//   - Decimal()/Double(): range+scale schemas (min, max, precision, scale).
//   - Long()/Date(): range schemas over int64 and calendar dates.
//   - DomainString(d)/OneOf(...)/Matching(p): strings restricted to a set or a pattern.
//   - BoundedString(min, max): strings restricted by length in code points.
//   - SchemaOf[T](s): adapter from Schema[T] to the type-erased AnyAdapter.
//
// Builders return modified copies, so a schema value can be shared freely
// and extended without affecting other holders:
//
//	price := dsl.Decimal().Min(dsl.MustDecimal("0")).Precision(10).Scale(2)
//	capped := price.Max(dsl.MustDecimal("1000"))
//
//	v, ok := capped.Decode("42.13")     // 42.13, true
//	_, ok = capped.Decode("1000.001")   // false
//	capped.ShortString()                // decimal(min=0,max=1000,precision=10,scale=2)
//
// File layout (roles)
//   - decimal.go/double.go: range+scale schemas and converter gating.
//   - long.go/date.go: range schemas with integral and date capabilities.
//   - strings.go: shared string behavior, DomainString and BoundedString.
//   - adapter.go: AnyAdapter.
package dsl
