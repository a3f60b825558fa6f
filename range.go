package valueschema

// Range holds optional inclusive bounds. min <= max is not enforced; a
// reversed range simply admits nothing.
type Range[T any] struct {
	Min Opt[T]
	Max Opt[T]
}

// Between returns a Range with both bounds present.
func Between[T any](min, max T) Range[T] { return Range[T]{Min: Some(min), Max: Some(max)} }

// ValidateRange reports whether v lies inside r under ord. An absent bound
// leaves that side unbounded.
func ValidateRange[T any](ord Ordering[T], r Range[T], v T) bool {
	if lo, ok := r.Min.Get(); ok && ord.Compare(lo, v) > 0 {
		return false
	}
	if hi, ok := r.Max.Get(); ok && ord.Compare(v, hi) > 0 {
		return false
	}
	return true
}

// ExplainRange returns too_small/too_big issues for v, or nil when v is in range.
func ExplainRange[T any](ord Ordering[T], enc Encodable[T], r Range[T], v T) Issues {
	var iss Issues
	if lo, ok := r.Min.Get(); ok && ord.Compare(lo, v) > 0 {
		iss = AppendIssues(iss, NewIssue(CodeTooSmall, map[string]string{"min": enc.Encode(lo), "got": enc.Encode(v)}))
	}
	if hi, ok := r.Max.Get(); ok && ord.Compare(v, hi) > 0 {
		iss = AppendIssues(iss, NewIssue(CodeTooBig, map[string]string{"max": enc.Encode(hi), "got": enc.Encode(v)}))
	}
	return iss
}
