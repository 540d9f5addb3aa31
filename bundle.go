package svgattr

import (
	"bytes"
	"io"
	"strconv"
)

var (
	sepSpace   = []byte{' '}
	closeQuote = []byte{'"'}
)

// Bundle is the immutable ordered attribute descriptor table for the owner
// type T, built once at schema-registration time via NewBundle and evaluated
// against a live *T on every write.
type Bundle[T any] struct {
	fields []Field[T]
}

// NewBundle validates the descriptors and returns the bundle. All
// schema-construction problems are reported together as Issues; a bundle is
// never returned alongside an error.
//
// Attribute names are not deduplicated: declaring two descriptors with the
// same name is the schema author's responsibility to avoid.
func NewBundle[T any](fields ...Field[T]) (*Bundle[T], error) {
	var iss Issues
	for i, f := range fields {
		path := "/fields/" + strconv.Itoa(i)
		if f == nil {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidPolicy, Message: "nil field descriptor"})
			continue
		}
		iss = append(iss, f.validate(path)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return &Bundle[T]{fields: append([]Field[T](nil), fields...)}, nil
}

// MustBundle is like NewBundle but panics on construction errors. Intended
// for package-level schema registration.
func MustBundle[T any](fields ...Field[T]) *Bundle[T] {
	b, err := NewBundle(fields...)
	if err != nil {
		panic(err)
	}
	return b
}

// WriteAttributes writes every emitting attribute of t in declaration order,
// separated by single spaces with no leading or trailing space, and reports
// whether anything was written.
//
// Nested bundles are spliced transparently: the output is byte-identical
// whether a given attribute sequence is declared flat or split across nested
// bundles in the same order. Any sink error is returned immediately from the
// failing write; the output may be truncated mid-attribute and should be
// discarded by the caller.
func (b *Bundle[T]) WriteAttributes(t *T, w io.Writer, set WriteSettings) (bool, error) {
	wrote := false
	err := b.writeInto(t, w, set, &wrote)
	return wrote, err
}

// writeInto threads the caller's running wrote-any flag through this
// bundle's fields. Sharing the flag is what keeps the separator rule exact
// across nesting depth.
func (b *Bundle[T]) writeInto(t *T, w io.Writer, set WriteSettings, wrote *bool) error {
	for _, f := range b.fields {
		if err := f.write(t, w, set, wrote); err != nil {
			return err
		}
	}
	return nil
}

// AttributesString renders the bundle through an in-memory sink. The result
// is always valid UTF-8.
func AttributesString[T any](b *Bundle[T], t *T, set WriteSettings) (string, error) {
	var buf bytes.Buffer
	if _, err := b.WriteAttributes(t, &buf, set); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Nested splices a sub-bundle into the parent at its declared position.
// A nil accessor result skips the sub-bundle entirely.
func Nested[T, B any](get func(*T) *B, sub *Bundle[B]) Field[T] {
	return &nested[T, B]{get: get, sub: sub}
}

type nested[T, B any] struct {
	get func(*T) *B
	sub *Bundle[B]
}

func (n *nested[T, B]) validate(path string) Issues {
	var iss Issues
	if n.get == nil {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidPolicy, Message: "nested bundle requires an accessor"})
	}
	if n.sub == nil {
		iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidPolicy, Message: "nested bundle requires a bundle"})
	}
	return iss
}

func (n *nested[T, B]) write(t *T, w io.Writer, set WriteSettings, wrote *bool) error {
	b := n.get(t)
	if b == nil {
		return nil
	}
	return n.sub.writeInto(b, w, set, wrote)
}

// NamedAttribute is a self-describing name/value pair for dynamic attribute
// lists (data-* and non-standard attributes). Both parts are emitted
// verbatim; names and values are runtime data the schema author must keep
// free of markup delimiters.
type NamedAttribute struct {
	Name  string
	Value string
}

// Attrs describes a repeated dynamic attribute list. Every entry emits.
func Attrs[T any](get func(*T) []NamedAttribute) Field[T] {
	return &attrList[T]{get: get}
}

type attrList[T any] struct {
	get func(*T) []NamedAttribute
}

func (l *attrList[T]) validate(path string) Issues {
	if l.get == nil {
		return Issues{Issue{Path: path, Code: CodeInvalidPolicy, Message: "attribute list requires an accessor"}}
	}
	return nil
}

func (l *attrList[T]) write(t *T, w io.Writer, _ WriteSettings, wrote *bool) error {
	for _, a := range l.get(t) {
		if *wrote {
			if _, err := w.Write(sepSpace); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, a.Name); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `="`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, a.Value); err != nil {
			return err
		}
		if _, err := w.Write(closeQuote); err != nil {
			return err
		}
		*wrote = true
	}
	return nil
}
