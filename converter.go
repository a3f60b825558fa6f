package valueschema

// ConverterKind names the target type of a Converter.
type ConverterKind uint8

const (
	ConvertFloat64 ConverterKind = iota + 1 // "double"
	ConvertFloat32                          // "float"
	ConvertInt64                            // "long"
)

func (k ConverterKind) String() string {
	switch k {
	case ConvertFloat64:
		return "double"
	case ConvertFloat32:
		return "float"
	case ConvertInt64:
		return "long"
	}
	return "unknown"
}

// Converter is a declared, safe mapping from T to another primitive type.
// Exactly one of the typed functions is set, selected by kind.
type Converter[T any] struct {
	kind ConverterKind
	f64  func(T) float64
	f32  func(T) float32
	i64  func(T) int64
}

// Float64Converter declares that values of T can be represented as float64.
func Float64Converter[T any](fn func(T) float64) Converter[T] {
	return Converter[T]{kind: ConvertFloat64, f64: fn}
}

// Float32Converter declares that values of T can be represented as float32.
func Float32Converter[T any](fn func(T) float32) Converter[T] {
	return Converter[T]{kind: ConvertFloat32, f32: fn}
}

// Int64Converter declares that values of T can be represented as int64.
func Int64Converter[T any](fn func(T) int64) Converter[T] {
	return Converter[T]{kind: ConvertInt64, i64: fn}
}

// Kind returns the converter's target.
func (c Converter[T]) Kind() ConverterKind { return c.kind }

// Converters is the set of converters a schema offers. Kinds are unique.
type Converters[T any] []Converter[T]

func (cs Converters[T]) find(k ConverterKind) (Converter[T], bool) {
	for _, c := range cs {
		if c.kind == k {
			return c, true
		}
	}
	return Converter[T]{}, false
}

// Has reports whether a converter of kind k is offered.
func (cs Converters[T]) Has(k ConverterKind) bool {
	_, ok := cs.find(k)
	return ok
}

// Kinds lists the offered kinds in declaration order.
func (cs Converters[T]) Kinds() []ConverterKind {
	out := make([]ConverterKind, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.kind)
	}
	return out
}

// Float64 converts v when a float64 converter is offered.
func (cs Converters[T]) Float64(v T) (float64, bool) {
	c, ok := cs.find(ConvertFloat64)
	if !ok {
		return 0, false
	}
	return c.f64(v), true
}

// Float32 converts v when a float32 converter is offered.
func (cs Converters[T]) Float32(v T) (float32, bool) {
	c, ok := cs.find(ConvertFloat32)
	if !ok {
		return 0, false
	}
	return c.f32(v), true
}

// Int64 converts v when an int64 converter is offered.
func (cs Converters[T]) Int64(v T) (int64, bool) {
	c, ok := cs.find(ConvertInt64)
	if !ok {
		return 0, false
	}
	return c.i64(v), true
}
