package dsl

import (
	vs "github.com/reoring/valueschema"
	js "github.com/reoring/valueschema/jsonschema"
)

// AnyAdapter adapts Schema[T] to an any-typed wrapper so that schemas of
// different value types can be stored side by side (for example, one per
// column in a catalog). It keeps the original schema for advanced use.
type AnyAdapter struct {
	name       string
	short      string
	decode     func(string) (any, bool)
	check      func(string) (any, error)
	encode     func(any) (string, bool)
	jsonSchema func() (*js.Schema, error)
	orig       any
}

// anyAdapterFromSchema wraps a strongly typed Schema[T] as AnyAdapter.
func anyAdapterFromSchema[T any](s vs.Schema[T]) AnyAdapter {
	return AnyAdapter{
		name:  s.Name(),
		short: s.ShortString(),
		decode: func(text string) (any, bool) {
			v, ok := s.Decode(text)
			if !ok {
				return nil, false
			}
			return v, true
		},
		check: func(text string) (any, error) {
			v, err := vs.Check[T](s, text)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		encode: func(v any) (string, bool) {
			tv, ok := v.(T)
			if !ok {
				return "", false
			}
			return s.Encode(tv), true
		},
		jsonSchema: s.JSONSchema,
		orig:       s,
	}
}

// SchemaOf converts an arbitrary Schema[T] into an AnyAdapter.
func SchemaOf[T any](s vs.Schema[T]) AnyAdapter { return anyAdapterFromSchema[T](s) }

// Orig returns the original underlying Schema[T].
func (ad AnyAdapter) Orig() any { return ad.orig }

func (ad AnyAdapter) Name() string { return ad.name }

func (ad AnyAdapter) ShortString() string { return ad.short }

// Decode parses and validates text, returning the typed value boxed in any.
func (ad AnyAdapter) Decode(text string) (any, bool) {
	if ad.decode == nil {
		return nil, false
	}
	return ad.decode(text)
}

// Check is like Decode but returns Issues describing the failure.
func (ad AnyAdapter) Check(text string) (any, error) {
	if ad.check == nil {
		return nil, vs.Issues{vs.NewIssue(vs.CodeInvalidValue, nil)}
	}
	return ad.check(text)
}

// Encode renders v when it has the schema's value type.
func (ad AnyAdapter) Encode(v any) (string, bool) {
	if ad.encode == nil {
		return "", false
	}
	return ad.encode(v)
}

func (ad AnyAdapter) JSONSchema() (*js.Schema, error) {
	if ad.jsonSchema == nil {
		return &js.Schema{}, nil
	}
	return ad.jsonSchema()
}
