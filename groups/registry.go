package groups

import (
	svgattr "github.com/reoring/svgattr"
)

// Registry is a validated, immutable view over one reference table. It is
// passed explicitly wherever it is needed; the engine holds no implicit
// registry state.
type Registry struct {
	groups   map[string]Group
	elements map[string]Element
	tags     []string
}

// NewRegistry validates the table and indexes it. Duplicate group names,
// duplicate element tags and references to undeclared groups are all
// reported together; a registry is never returned alongside an error.
func NewRegistry(t *Table) (*Registry, error) {
	var iss svgattr.Issues
	r := &Registry{
		groups:   make(map[string]Group, len(t.Groups)),
		elements: make(map[string]Element, len(t.Elements)),
		tags:     make([]string, 0, len(t.Elements)),
	}
	for _, g := range t.Groups {
		if _, ok := r.groups[g.Name]; ok {
			iss = svgattr.AppendIssues(iss, svgattr.Issue{Path: "/groups/" + g.Name, Code: svgattr.CodeDuplicateGroup, Message: "group declared twice"})
			continue
		}
		r.groups[g.Name] = g
	}
	for _, e := range t.Elements {
		if _, ok := r.elements[e.Tag]; ok {
			iss = svgattr.AppendIssues(iss, svgattr.Issue{Path: "/elements/" + e.Tag, Code: svgattr.CodeDuplicateElement, Message: "element declared twice"})
			continue
		}
		for _, gn := range e.Groups {
			if _, ok := r.groups[gn]; !ok {
				iss = svgattr.AppendIssues(iss, svgattr.Issue{Path: "/elements/" + e.Tag, Code: svgattr.CodeUnknownGroup, Message: "element references undeclared group", Hint: gn})
			}
		}
		r.elements[e.Tag] = e
		r.tags = append(r.tags, e.Tag)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// Group looks up an attribute group by name.
func (r *Registry) Group(name string) (Group, bool) {
	g, ok := r.groups[name]
	return g, ok
}

// Element looks up an element by tag name.
func (r *Registry) Element(tag string) (Element, bool) {
	e, ok := r.elements[tag]
	return e, ok
}

// Tags returns the element tags in table order.
func (r *Registry) Tags() []string {
	return append([]string(nil), r.tags...)
}

// Attributes returns the complete ordered attribute list for an element:
// each referenced group's attributes in group declaration order, then the
// element's own context attributes.
func (r *Registry) Attributes(tag string) ([]Attribute, error) {
	e, ok := r.elements[tag]
	if !ok {
		return nil, svgattr.Issues{svgattr.Issue{Path: "/elements/" + tag, Code: svgattr.CodeUnknownElement, Message: "element not in table"}}
	}
	var out []Attribute
	for _, gn := range e.Groups {
		out = append(out, r.groups[gn].Attributes...)
	}
	return append(out, e.Attributes...), nil
}

// AttributeSet holds the current attribute values for a data-driven
// element, keyed by attribute name. A name that was never set is absent and
// its attribute is omitted from output.
type AttributeSet struct {
	values map[string]string
}

// NewAttributeSet returns an empty set.
func NewAttributeSet() *AttributeSet {
	return &AttributeSet{values: make(map[string]string)}
}

// Set stores a value. Setting an empty string is a real value, not an
// unset; use Unset to remove.
func (s *AttributeSet) Set(name, value string) { s.values[name] = value }

// Unset removes a value.
func (s *AttributeSet) Unset(name string) { delete(s.values, name) }

// Get returns the stored value and whether it was set.
func (s *AttributeSet) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// BundleFor builds the descriptor table for an element: one optional field
// per known attribute, in reference order, emitting only names present in
// the AttributeSet. The bundle is built once and reusable across sets.
func (r *Registry) BundleFor(tag string) (*svgattr.Bundle[AttributeSet], error) {
	attrs, err := r.Attributes(tag)
	if err != nil {
		return nil, err
	}
	fields := make([]svgattr.Field[AttributeSet], 0, len(attrs))
	for _, a := range attrs {
		fields = append(fields, setField(a.Name))
	}
	return svgattr.NewBundle(fields...)
}

func setField(name string) svgattr.Field[AttributeSet] {
	return svgattr.AttrIfSome(name,
		func(s *AttributeSet) *string {
			if v, ok := s.values[name]; ok {
				return &v
			}
			return nil
		},
		svgattr.Transform(func(s string) []byte { return []byte(s) }))
}
