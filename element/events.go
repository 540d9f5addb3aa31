package element

import (
	"io"

	svgattr "github.com/reoring/svgattr"
)

// GraphicalEvents groups the event attributes accepted by most graphics and
// container elements. All values are free-form script text written verbatim.
type GraphicalEvents struct {
	OnFocusIn   *string
	OnFocusOut  *string
	OnActivate  *string
	OnClick     *string
	OnMouseDown *string
	OnMouseUp   *string
	OnMouseOver *string
	OnMouseMove *string
	OnMouseOut  *string
}

var eventsBundle = svgattr.MustBundle[GraphicalEvents](
	svgattr.AttrIfSome("onfocusin", func(e *GraphicalEvents) *string { return e.OnFocusIn }, rawText),
	svgattr.AttrIfSome("onfocusout", func(e *GraphicalEvents) *string { return e.OnFocusOut }, rawText),
	svgattr.AttrIfSome("onactivate", func(e *GraphicalEvents) *string { return e.OnActivate }, rawText),
	svgattr.AttrIfSome("onclick", func(e *GraphicalEvents) *string { return e.OnClick }, rawText),
	svgattr.AttrIfSome("onmousedown", func(e *GraphicalEvents) *string { return e.OnMouseDown }, rawText),
	svgattr.AttrIfSome("onmouseup", func(e *GraphicalEvents) *string { return e.OnMouseUp }, rawText),
	svgattr.AttrIfSome("onmouseover", func(e *GraphicalEvents) *string { return e.OnMouseOver }, rawText),
	svgattr.AttrIfSome("onmousemove", func(e *GraphicalEvents) *string { return e.OnMouseMove }, rawText),
	svgattr.AttrIfSome("onmouseout", func(e *GraphicalEvents) *string { return e.OnMouseOut }, rawText),
)

// EventsBundle returns the descriptor table for GraphicalEvents.
func EventsBundle() *svgattr.Bundle[GraphicalEvents] { return eventsBundle }

// WriteAttributes writes the group's emitting attributes.
func (e *GraphicalEvents) WriteAttributes(w io.Writer, set svgattr.WriteSettings) (bool, error) {
	return eventsBundle.WriteAttributes(e, w, set)
}
