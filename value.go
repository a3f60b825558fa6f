package valueschema

// Value is a raw value paired with the schema that boxed it. The zero Value
// has no schema; it renders empty and sorts first.
type Value[T any] struct {
	raw    T
	schema Schema[T]
}

// NewValue pairs raw with s without validating. It is meant for BoxUnsafe
// implementations.
func NewValue[T any](s Schema[T], raw T) Value[T] { return Value[T]{raw: raw, schema: s} }

// Raw returns the underlying value.
func (v Value[T]) Raw() T { return v.raw }

// Schema returns the schema the value was boxed with.
func (v Value[T]) Schema() Schema[T] { return v.schema }

// String renders the value with its schema's Encode.
func (v Value[T]) String() string {
	if v.schema == nil {
		return ""
	}
	return v.schema.Encode(v.raw)
}

// Compare orders v against o under v's schema. Zero Values sort before any
// boxed value and equal each other.
func (v Value[T]) Compare(o Value[T]) int {
	switch {
	case v.schema == nil && o.schema == nil:
		return 0
	case v.schema == nil:
		return -1
	case o.schema == nil:
		return 1
	}
	return v.schema.Compare(v.raw, o.raw)
}
