package element

import (
	"io"

	svgattr "github.com/reoring/svgattr"
	"github.com/reoring/svgattr/path"
)

// Path is the path element: shape outline data plus the common attribute
// groups.
type Path struct {
	// Conditional processing attributes.
	Conditional ConditionalProcessing
	// Core attributes.
	Core CoreAttributes
	// Events holds graphical event attributes.
	Events GraphicalEvents
	// D specifies the shape of the path.
	D *path.Data
	// PathLength is the author's computation of the total length of the
	// path, in user units.
	PathLength *svgattr.PositiveNumber
}

var pathBundle = svgattr.MustBundle[Path](
	svgattr.Nested(func(p *Path) *ConditionalProcessing { return &p.Conditional }, conditionalBundle),
	svgattr.Nested(func(p *Path) *CoreAttributes { return &p.Core }, coreBundle),
	svgattr.Nested(func(p *Path) *GraphicalEvents { return &p.Events }, eventsBundle),
	svgattr.AttrIfSome("d", func(p *Path) *path.Data { return p.D },
		svgattr.Verbatim[path.Data]()),
	svgattr.AttrIfSome("pathLength", func(p *Path) *svgattr.PositiveNumber { return p.PathLength },
		svgattr.Verbatim[svgattr.PositiveNumber]()),
)

// PathBundle returns the descriptor table for Path.
func PathBundle() *svgattr.Bundle[Path] { return pathBundle }

// WriteAttributes writes the element's emitting attributes.
func (p *Path) WriteAttributes(w io.Writer, set svgattr.WriteSettings) (bool, error) {
	return pathBundle.WriteAttributes(p, w, set)
}

// WriteElement writes the complete self-closing start tag.
func (p *Path) WriteElement(w io.Writer, set svgattr.WriteSettings) error {
	if _, err := io.WriteString(w, "<path "); err != nil {
		return err
	}
	if _, err := p.WriteAttributes(w, set); err != nil {
		return err
	}
	_, err := io.WriteString(w, "/>")
	return err
}
