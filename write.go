package svgattr

import (
	"bytes"
	"io"
)

// WriteSettings carries the output configuration for a single write call.
// It is threaded explicitly through every write; there is no global default
// beyond the zero-configuration returned by DefaultWriteSettings.
type WriteSettings struct {
	// Precision is the number of decimal places emitted for numeric values.
	Precision int
}

// DefaultWriteSettings returns the standard settings (four decimal places).
func DefaultWriteSettings() WriteSettings {
	return WriteSettings{Precision: 4}
}

// Value is implemented by types that can render their canonical attribute
// text. Written bytes must be valid UTF-8 so that buffered output can always
// be reinterpreted as a string.
type Value interface {
	WriteValue(w io.Writer, set WriteSettings) error
}

// Text adapts a plain string as an attribute value written verbatim.
//
// The engine performs no quote escaping; a Text containing `"` would produce
// malformed output and is the caller's responsibility to avoid.
type Text string

// WriteValue writes the string verbatim.
func (t Text) WriteValue(w io.Writer, _ WriteSettings) error {
	_, err := io.WriteString(w, string(t))
	return err
}

func (t Text) String() string { return string(t) }

// ValueString renders v through an in-memory sink and returns the result.
func ValueString(v Value, set WriteSettings) (string, error) {
	var buf bytes.Buffer
	if err := v.WriteValue(&buf, set); err != nil {
		return "", err
	}
	return buf.String(), nil
}
