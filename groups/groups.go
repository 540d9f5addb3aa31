// Package groups imports reference attribute-group tables and turns them
// into engine bundles. Tables are produced offline by scraping the
// specification's element index; this package is the runtime face of that
// pipeline: it parses the serialized tables (JSON, YAML or TOML), validates
// them once at registration time, and answers attribute-order queries
// through an explicit Registry object rather than any global cache.
package groups

import (
	"bytes"
	"errors"
	"io"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	svgattr "github.com/reoring/svgattr"
)

// Attribute is one scraped attribute definition.
type Attribute struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	// Type is the scraped value-type expression, when known.
	Type string `json:"type,omitempty" yaml:"type,omitempty" toml:"type,omitempty"`
	// Docs links to the defining section of the specification.
	Docs string `json:"docs,omitempty" yaml:"docs,omitempty" toml:"docs,omitempty"`
}

// Group is a named, ordered attribute group shared by several elements.
type Group struct {
	Name       string      `json:"name" yaml:"name" toml:"name"`
	Attributes []Attribute `json:"attributes" yaml:"attributes" toml:"attributes"`
}

// Element is one scraped element summary: the attribute groups it
// references plus its own context attributes.
type Element struct {
	Tag        string      `json:"tag" yaml:"tag" toml:"tag"`
	Groups     []string    `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty" toml:"attributes,omitempty"`
	HasContent bool        `json:"hasContent,omitempty" yaml:"hasContent,omitempty" toml:"hasContent,omitempty"`
}

// Table is a complete reference table: attribute groups plus the elements
// composed from them.
type Table struct {
	Groups   []Group   `json:"groups" yaml:"groups" toml:"groups"`
	Elements []Element `json:"elements" yaml:"elements" toml:"elements"`
}

// ImportJSON parses a single JSON table document.
func ImportJSON(data []byte) (*Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, svgattr.Issues{svgattr.Issue{Path: "/", Code: svgattr.CodeParseError, Message: "invalid JSON table", Cause: err}}
	}
	return &t, nil
}

// ImportYAML parses a YAML table. Multi-document streams are supported:
// groups and elements from every document are concatenated in stream order.
func ImportYAML(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out Table
	for {
		var t Table
		if err := dec.Decode(&t); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, svgattr.Issues{svgattr.Issue{Path: "/", Code: svgattr.CodeParseError, Message: "invalid YAML table", Cause: err}}
		}
		out.Groups = append(out.Groups, t.Groups...)
		out.Elements = append(out.Elements, t.Elements...)
	}
	return &out, nil
}

// ImportTOML parses a single TOML table document.
func ImportTOML(data []byte) (*Table, error) {
	var t Table
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, svgattr.Issues{svgattr.Issue{Path: "/", Code: svgattr.CodeParseError, Message: "invalid TOML table", Cause: err}}
	}
	return &t, nil
}
