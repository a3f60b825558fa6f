package codec

import (
	"context"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/dsl"
)

// Int64 returns a Codec[int64, T] for schemas that declare an int64
// converter. from maps the wire integer back to a value; it reports false for
// integers with no value.
func Int64[T any](s vs.Schema[T], from func(int64) (T, bool)) vs.Codec[int64, T] {
	return &int64Codec[T]{schema: s, from: from}
}

// EpochDays converts between days since 1970-01-01 and dates of s. Day
// counts beyond what time.Time can hold decode to a parse_error.
func EpochDays(s dsl.DateSchema) vs.Codec[int64, time.Time] {
	days := s.Converters()
	return Int64[time.Time](s, func(n int64) (time.Time, bool) {
		t := time.Unix(0, 0).UTC().AddDate(0, 0, int(n))
		back, ok := days.Int64(t)
		return t, ok && back == n
	})
}

type int64Codec[T any] struct {
	schema vs.Schema[T]
	from   func(int64) (T, bool)
}

func (c *int64Codec[T]) Schema() vs.Schema[T] { return c.schema }

func (c *int64Codec[T]) Decode(ctx context.Context, a int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	v, ok := c.from(a)
	if !ok {
		in := strconv.FormatInt(a, 10)
		return zero, vs.Issues{vs.NewIssue(vs.CodeParseError, map[string]string{"input": in, "schema": c.schema.ShortString()})}
	}
	if iss := vs.Explain(c.schema, v); len(iss) > 0 {
		return zero, iss
	}
	return v, nil
}

func (c *int64Codec[T]) Encode(ctx context.Context, b T) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if iss := vs.Explain(c.schema, b); len(iss) > 0 {
		return 0, iss
	}
	n, ok := c.schema.Converters().Int64(b)
	if !ok {
		return 0, errors.Wrapf(vs.ErrNotRepresentable, "%s has no int64 form", c.schema.ShortString())
	}
	return n, nil
}
