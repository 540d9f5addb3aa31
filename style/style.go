// Package style provides the per-element style attribute value: an ordered
// CSS declaration list rendered as `name:value` pairs joined by semicolons.
package style

import (
	"io"

	svgattr "github.com/reoring/svgattr"
)

// Declaration is one property declaration. The zero value is an empty
// declaration and is skipped when rendering.
type Declaration struct {
	Name  string
	Value string
}

func (d Declaration) empty() bool { return d.Name == "" && d.Value == "" }

// DeclarationList is an ordered list of declarations.
type DeclarationList struct {
	decls []Declaration
}

// Push appends a property declaration.
func (l *DeclarationList) Push(name, value string) {
	l.decls = append(l.decls, Declaration{Name: name, Value: value})
}

// Declarations returns a copy of the declarations in order.
func (l *DeclarationList) Declarations() []Declaration {
	return append([]Declaration(nil), l.decls...)
}

// WriteValue renders the non-empty declarations as `name:value` joined by
// `;` with no surrounding whitespace. No escaping is applied; names and
// values must not contain `"`.
func (l DeclarationList) WriteValue(w io.Writer, _ svgattr.WriteSettings) error {
	buf := make([]byte, 0, 32*len(l.decls))
	first := true
	for _, d := range l.decls {
		if d.empty() {
			continue
		}
		if !first {
			buf = append(buf, ';')
		}
		buf = append(buf, d.Name...)
		buf = append(buf, ':')
		buf = append(buf, d.Value...)
		first = false
	}
	_, err := w.Write(buf)
	return err
}
