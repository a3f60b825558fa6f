// Package codec adapts value schemas into context-aware codecs between a wire
// representation and the schema's value type.
package codec

import (
	"context"

	vs "github.com/reoring/valueschema"
)

// Text returns a Codec[string, T] backed by s. Decode parses and validates the
// text; Encode validates the value and renders its canonical text.
func Text[T any](s vs.Schema[T]) vs.Codec[string, T] {
	return &textCodec[T]{schema: s}
}

type textCodec[T any] struct {
	schema vs.Schema[T]
}

func (c *textCodec[T]) Schema() vs.Schema[T] { return c.schema }

func (c *textCodec[T]) Decode(ctx context.Context, a string) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	return vs.Check(c.schema, a)
}

func (c *textCodec[T]) Encode(ctx context.Context, b T) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if iss := vs.Explain(c.schema, b); len(iss) > 0 {
		return "", iss
	}
	return c.schema.Encode(b), nil
}
