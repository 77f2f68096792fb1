package schemanode

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeMalformedKeyword = "malformed_keyword"
	CodeInvertedBounds   = "inverted_bounds"
	CodeDuplicateKey     = "duplicate_key"
	CodeParseError       = "parse_error"
	CodeTruncated        = "truncated"
)

var (
	// ErrMalformedKeyword matches (via errors.Is) any construction error where a
	// keyword holds a value of the wrong kind or shape.
	ErrMalformedKeyword = errors.New("schemanode: malformed keyword value")
	// ErrParse matches errors where the input was not a well-formed document.
	ErrParse = errors.New("schemanode: parse error")
)

// Issue represents a single construction problem.
type Issue struct {
	Path    string // JSON Pointer to the offending keyword (for example: /properties/a/required).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: what the keyword expected.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in the input source (-1 when unknown).
	// Params carries structured parameters (e.g., {"keyword":"enum","got":"string"})
	// for i18n and tooling.
	Params map[string]any
}

// Issues is a collection of construction errors that implements error.
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
		// e.g. malformed_keyword at /required: expected array
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Hint != "" {
			fmt.Fprintf(b, ": %s", it.Hint)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Is reports whether any issue corresponds to the target sentinel.
func (iss Issues) Is(target error) bool {
	for _, it := range iss {
		switch {
		case target == ErrMalformedKeyword && (it.Code == CodeMalformedKeyword || it.Code == CodeInvertedBounds):
			return true
		case target == ErrParse && (it.Code == CodeParseError || it.Code == CodeTruncated || it.Code == CodeDuplicateKey):
			return true
		}
	}
	return false
}

// Unwrap exposes the underlying causes so errors.Is/As can reach them.
func (iss Issues) Unwrap() []error {
	var out []error
	for _, it := range iss {
		if it.Cause != nil {
			out = append(out, it.Cause)
		}
	}
	return out
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

// AsIssues extracts Issues from an error using errors.As internally.
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
