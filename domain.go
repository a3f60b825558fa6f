package valueschema

// Domain restricts values either to a finite set or to those whose encoded
// form matches a Pattern. An empty set admits every value.
type Domain[T comparable] struct {
	set     map[T]struct{}
	members []T
	pattern *Pattern
}

// InSet returns a set domain. Duplicates are dropped; declaration order is kept.
func InSet[T comparable](values ...T) Domain[T] {
	d := Domain[T]{set: make(map[T]struct{}, len(values))}
	for _, v := range values {
		if _, dup := d.set[v]; dup {
			continue
		}
		d.set[v] = struct{}{}
		d.members = append(d.members, v)
	}
	return d
}

// Matching returns a pattern domain.
func Matching[T comparable](p Pattern) Domain[T] { return Domain[T]{pattern: &p} }

// Pattern returns the pattern of a pattern domain.
func (d Domain[T]) Pattern() (Pattern, bool) {
	if d.pattern == nil {
		return Pattern{}, false
	}
	return *d.pattern, true
}

// Members returns a copy of the set members in declaration order. It is
// empty for pattern domains.
func (d Domain[T]) Members() []T { return append([]T(nil), d.members...) }

// Unrestricted reports whether d is an empty set domain.
func (d Domain[T]) Unrestricted() bool { return d.pattern == nil && len(d.set) == 0 }

// ValidateDomain reports whether v belongs to d. Patterns are matched against
// enc.Encode(v).
func ValidateDomain[T comparable](d Domain[T], enc Encodable[T], v T) bool {
	if d.pattern != nil {
		return d.pattern.Match(enc.Encode(v))
	}
	if len(d.set) == 0 {
		return true
	}
	_, ok := d.set[v]
	return ok
}

// ExplainDomain returns an invalid_enum or pattern issue, or nil when v
// belongs to d.
func ExplainDomain[T comparable](d Domain[T], enc Encodable[T], v T) Issues {
	if ValidateDomain(d, enc, v) {
		return nil
	}
	if d.pattern != nil {
		return Issues{NewIssue(CodePattern, map[string]string{"pattern": d.pattern.String(), "got": enc.Encode(v)})}
	}
	return Issues{NewIssue(CodeInvalidEnum, map[string]string{"got": enc.Encode(v)})}
}
