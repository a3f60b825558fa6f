package valueschema

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeParseError   = "parse_error"
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
	CodePrecision    = "precision"
	CodeScale        = "scale"
	CodeTooShort     = "too_short"
	CodeTooLong      = "too_long"
	CodeInvalidEnum  = "invalid_enum"
	CodePattern      = "pattern"
	CodeInvalidValue = "invalid_value"
	// Record-level codes used by catalog checks.
	CodeUnknownKey = "unknown_key"
	CodeRequired   = "required"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string `json:"path"` // JSON Pointer ("/" for a single value, "/column" in records).
	Code    string `json:"code"` // One of the codes listed above.
	Message string `json:"message"`
	// Params carries structured parameters (e.g., {"min":"0", "got":"-1"})
	// for i18n and observability.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. too_big at /price
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Explainer is implemented by schemas that can say why a value fails Validate.
type Explainer[T any] interface {
	Explain(v T) Issues
}

// Check decodes text like Decode but reports why it failed: a parse_error
// issue for malformed text, or the schema's constraint issues.
func Check[T any](s Schema[T], text string) (T, error) {
	var zero T
	v, ok := s.Parse(text)
	if !ok {
		return zero, Issues{NewIssue(CodeParseError, map[string]string{"input": text, "schema": s.ShortString()})}
	}
	if iss := Explain(s, v); len(iss) > 0 {
		return zero, iss
	}
	return v, nil
}

// Explain returns nil when v validates, otherwise the schema's explanation or
// a generic invalid_value issue.
func Explain[T any](s Schema[T], v T) Issues {
	if s.Validate(v) {
		return nil
	}
	if ex, ok := s.(Explainer[T]); ok {
		if iss := ex.Explain(v); len(iss) > 0 {
			return iss
		}
	}
	return Issues{NewIssue(CodeInvalidValue, map[string]string{"schema": s.ShortString()})}
}
