package valueschema

import (
	"context"

	"github.com/cockroachdb/errors"

	js "github.com/reoring/valueschema/jsonschema"
)

// Parser turns text into a candidate value. It reports false on malformed
// input and never panics.
type Parser[T any] interface {
	Parse(text string) (T, bool)
}

// Validatable is a total predicate over T.
type Validatable[T any] interface {
	Validate(v T) bool
}

// Encodable renders a value as deterministic text. Encode never fails.
type Encodable[T any] interface {
	Encode(v T) string
}

// Orderable compares two values of T.
type Orderable[T any] interface {
	Compare(x, y T) int
}

// Schema is the value-schema contract for one primitive type T.
//
// Implementations are immutable after construction and every method is safe
// to call concurrently.
type Schema[T any] interface {
	Parser[T]
	Validatable[T]
	Encodable[T]
	Orderable[T]

	// Name is the stable identifier of the schema kind, e.g. "decimal".
	Name() string
	// ParamString is the comma-joined key=value fragment, possibly empty.
	ParamString() string
	// ShortString is the canonical identity: name or name(params).
	ShortString() string

	// Decode returns the parsed value only if it also validates.
	Decode(text string) (T, bool)

	// Box pairs v with the schema. Failures are reported as false, never raised.
	Box(v T) (Value[T], bool)
	// BoxUnsafe pairs v with the schema and may fail when v cannot be
	// represented. Callers should prefer Box.
	BoxUnsafe(v T) (Value[T], error)

	Capabilities() Capabilities[T]
	Converters() Converters[T]

	// JSONSchema projects the schema into a JSON Schema representation.
	JSONSchema() (*js.Schema, error)
}

// ParseValidator is the part of Schema that Decode composes.
type ParseValidator[T any] interface {
	Parser[T]
	Validatable[T]
}

// Decode composes Parse and Validate: the parsed value is returned only if it
// also satisfies the schema's constraints.
func Decode[T any](s ParseValidator[T], text string) (T, bool) {
	v, ok := s.Parse(text)
	if !ok || !s.Validate(v) {
		var zero T
		return zero, false
	}
	return v, true
}

// ShortString renders the canonical schema string. Parentheses appear only
// when params is non-empty.
func ShortString(name, params string) string {
	if params == "" {
		return name
	}
	return name + "(" + params + ")"
}

// Box calls s.BoxUnsafe and narrows any failure, including a panic, to false.
func Box[T any](s Schema[T], v T) (out Value[T], ok bool) {
	defer func() {
		if r := recover(); r != nil {
			out, ok = Value[T]{}, false
		}
	}()
	bv, err := s.BoxUnsafe(v)
	if err != nil {
		return Value[T]{}, false
	}
	return bv, true
}

// ErrNotRepresentable is returned by BoxUnsafe when a value cannot be boxed
// by its schema.
var ErrNotRepresentable = errors.New("valueschema: value not representable")

// Is reports whether text decodes under s.
func Is[T any](s ParseValidator[T], text string) bool {
	_, ok := Decode(s, text)
	return ok
}

// Codec performs bidirectional transformation and validation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // A -> B, then validate.
	Encode(ctx context.Context, b B) (A, error) // validate, then B -> A.
}
