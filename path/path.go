// Package path provides a type safe representation of path data: ordered
// drawing commands with fixed numeric arities, rendered at a configurable
// decimal precision.
package path

import (
	"io"

	svgattr "github.com/reoring/svgattr"
)

// Command identifies a path drawing command kind.
type Command uint8

const (
	Move Command = iota
	Line
	Horizontal
	Vertical
	Cubic
	CubicSmooth
	Quadratic
	QuadraticSmooth
	Elliptical
	Close
)

var commandArity = [...]int{
	Move:            2,
	Line:            2,
	Horizontal:      1,
	Vertical:        1,
	Cubic:           6,
	CubicSmooth:     4,
	Quadratic:       4,
	QuadraticSmooth: 2,
	Elliptical:      7,
	Close:           0,
}

var commandLetters = [...]byte{
	Move:            'M',
	Line:            'L',
	Horizontal:      'H',
	Vertical:        'V',
	Cubic:           'C',
	CubicSmooth:     'S',
	Quadratic:       'Q',
	QuadraticSmooth: 'T',
	Elliptical:      'A',
	Close:           'z',
}

// ArgCount returns the fixed argument arity of the command.
func (c Command) ArgCount() int { return commandArity[c] }

// Letter returns the wire letter for the command: uppercase for absolute,
// lowercase for relative. Close maps to 'z' in both forms.
func (c Command) Letter(relative bool) byte {
	l := commandLetters[c]
	if relative && c != Close {
		l += 'a' - 'A'
	}
	return l
}

// Segment is one path command carrying its full fixed-arity argument list.
// Segments are immutable values; the per-command constructors below are the
// only way to build one, so the arity invariant holds by construction.
// Constructors produce absolute segments; use Relative for the relative form.
type Segment struct {
	relative bool
	command  Command
	args     [7]float64
}

func seg(c Command, args ...float64) Segment {
	s := Segment{command: c}
	copy(s.args[:], args)
	return s
}

// MoveTo moves the position without drawing. When drawn, a fill treats this
// segment like a solid line while a stroke skips it.
func MoveTo(x, y float64) Segment { return seg(Move, x, y) }

// LineTo draws a line segment.
func LineTo(x, y float64) Segment { return seg(Line, x, y) }

// HorizontalTo draws a horizontal line segment.
func HorizontalTo(x float64) Segment { return seg(Horizontal, x) }

// VerticalTo draws a vertical line segment.
func VerticalTo(y float64) Segment { return seg(Vertical, y) }

// CubicTo draws a cubic Bézier curve segment.
func CubicTo(x1, y1, x2, y2, x, y float64) Segment { return seg(Cubic, x1, y1, x2, y2, x, y) }

// CubicSmoothTo draws a cubic Bézier curve segment whose first control point
// is the reflection of the previous segment's second control point.
func CubicSmoothTo(x2, y2, x, y float64) Segment { return seg(CubicSmooth, x2, y2, x, y) }

// QuadraticTo draws a quadratic Bézier curve segment.
func QuadraticTo(x1, y1, x, y float64) Segment { return seg(Quadratic, x1, y1, x, y) }

// QuadraticSmoothTo draws a quadratic Bézier curve segment whose control
// point is the reflection of the previous segment's control point.
func QuadraticSmoothTo(x, y float64) Segment { return seg(QuadraticSmooth, x, y) }

// EllipticalTo draws an elliptical arc segment. largeArc and sweep are the
// arc flags, conventionally 0 or 1.
func EllipticalTo(rx, ry, xAxisRotation, largeArc, sweep, x, y float64) Segment {
	return seg(Elliptical, rx, ry, xAxisRotation, largeArc, sweep, x, y)
}

// ClosePath draws a line segment back to the beginning of the path.
func ClosePath() Segment { return seg(Close) }

// Relative returns the segment in relative coordinates.
func (s Segment) Relative() Segment {
	s.relative = true
	return s
}

// Absolute returns the segment in absolute coordinates.
func (s Segment) Absolute() Segment {
	s.relative = false
	return s
}

// IsRelative reports whether the segment uses relative coordinates.
func (s Segment) IsRelative() bool { return s.relative }

// Command returns the segment's command kind.
func (s Segment) Command() Command { return s.command }

// Args returns a copy of the segment's arguments, sized to the command's
// arity.
func (s Segment) Args() []float64 {
	n := s.command.ArgCount()
	out := make([]float64, n)
	copy(out, s.args[:n])
	return out
}

func (s Segment) append(dst []byte, set svgattr.WriteSettings) []byte {
	dst = append(dst, s.command.Letter(s.relative))
	n := s.command.ArgCount()
	for i := 0; i < n; i++ {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = svgattr.AppendNumber(dst, s.args[i], set)
	}
	return dst
}

// WriteValue renders the command letter followed by its space-separated
// fixed-precision arguments. Close writes only its letter.
func (s Segment) WriteValue(w io.Writer, set svgattr.WriteSettings) error {
	_, err := w.Write(s.append(make([]byte, 0, 96), set))
	return err
}

// Data is an ordered path command sequence. Its rendering is the
// concatenation of each segment's rendering with no separator between
// segments; the command letters delimit them.
type Data []Segment

// WriteValue renders every segment in order.
func (d Data) WriteValue(w io.Writer, set svgattr.WriteSettings) error {
	buf := make([]byte, 0, 16+32*len(d))
	for _, s := range d {
		buf = s.append(buf, set)
	}
	_, err := w.Write(buf)
	return err
}
