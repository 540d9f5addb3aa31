package svgattr

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidName      = "invalid_name"
	CodeInvalidPolicy    = "invalid_policy"
	CodeInvalidLiteral   = "invalid_literal"
	CodeInvalidNumber    = "invalid_number"
	CodeInvalidDelimiter = "invalid_delimiter"
	CodeParseError       = "parse_error"
	// Reference-table registration (groups subpackage)
	CodeDuplicateGroup   = "duplicate_group"
	CodeDuplicateElement = "duplicate_element"
	CodeUnknownGroup     = "unknown_group"
	CodeUnknownElement   = "unknown_element"
)

// Issue represents a single schema-construction or import problem.
//
// Sink I/O failures are never wrapped into an Issue: they are returned raw
// from the exact write call that failed.
type Issue struct {
	Path    string // slash path into the schema or table (for example: /fields/3, /groups/core).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: offending input, remediation hints.
	Cause   error  // Optional: underlying error.
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
		// e.g. invalid_name at /fields/2
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
