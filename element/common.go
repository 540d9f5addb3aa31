// Package element provides reference attribute-group schemas built on the
// svgattr engine: the common attribute bundles shared by most elements and
// the elements composed from them. Bundles are constructed once at package
// initialization, which is this module's schema-registration time.
package element

import (
	"io"
	"strconv"

	svgattr "github.com/reoring/svgattr"
	"github.com/reoring/svgattr/style"
)

// LanguageTag is a type safe representation of a language tag.
//
// Values should follow RFC 5646. This isn't checked for performance reasons,
// but non-standard tags will cause the attribute to be ignored by most
// software relying on the value, with knock-on effects for localization and
// screen readers.
type LanguageTag string

// WriteValue writes the tag verbatim.
func (t LanguageTag) WriteValue(w io.Writer, _ svgattr.WriteSettings) error {
	_, err := io.WriteString(w, string(t))
	return err
}

// LanguageTagCodec is the delimited-list codec for language tags.
func LanguageTagCodec() svgattr.ValueCodec[LanguageTag] { return languageTagCodec{} }

type languageTagCodec struct{}

func (languageTagCodec) Format(t LanguageTag) string         { return string(t) }
func (languageTagCodec) Parse(s string) (LanguageTag, error) { return LanguageTag(s), nil }

// XMLSpace is the xml:space value specifying whether white space is
// preserved in character data.
type XMLSpace uint8

const (
	SpaceDefault XMLSpace = iota
	SpacePreserve
)

// DataAttr builds a data-* attribute from name and value. The name must not
// carry the "data-" prefix; it is added here.
func DataAttr(name, value string) svgattr.NamedAttribute {
	return svgattr.NamedAttribute{Name: "data-" + name, Value: value}
}

// Classes returns an empty space-delimited class list.
func Classes() *svgattr.DelimitedValues[string] {
	return svgattr.NewDelimited(' ', svgattr.TextCodec())
}

// CoreAttributes groups the attributes common to all elements. Optional
// attributes are pointer-typed; a nil field is simply omitted from output.
type CoreAttributes struct {
	// ID of the element, unique within the document.
	ID *string
	// TabIndex participates in sequential focus navigation.
	TabIndex *int
	// Lang is the primary language for the element's contents (xml:lang).
	Lang *LanguageTag
	// Space controls white space handling (xml:space). The default value is
	// omitted; SpacePreserve renders as xml:space="preserve".
	Space XMLSpace
	// Class names of the element.
	Class *svgattr.DelimitedValues[string]
	// Style holds per-element style rules.
	Style *style.DeclarationList
	// Data holds data-* attributes; build entries with DataAttr.
	Data []svgattr.NamedAttribute
	// Other holds attributes that aren't standard or implemented, including
	// styling properties used as presentation attributes.
	Other []svgattr.NamedAttribute
}

var rawText = svgattr.Transform(func(s string) []byte { return []byte(s) })

var coreBundle = svgattr.MustBundle[CoreAttributes](
	svgattr.AttrIfSome("id", func(c *CoreAttributes) *string { return c.ID }, rawText),
	svgattr.AttrIfSome("tabindex", func(c *CoreAttributes) *int { return c.TabIndex },
		svgattr.Transform(func(i int) []byte { return strconv.AppendInt(nil, int64(i), 10) })),
	svgattr.AttrIfSome("xml:lang", func(c *CoreAttributes) *LanguageTag { return c.Lang },
		svgattr.Verbatim[LanguageTag]()),
	svgattr.AttrIfNotDefault("xml:space", func(c *CoreAttributes) XMLSpace { return c.Space },
		svgattr.Literal[XMLSpace]("preserve")),
	svgattr.AttrIfSome("class", func(c *CoreAttributes) *svgattr.DelimitedValues[string] { return c.Class },
		svgattr.Verbatim[svgattr.DelimitedValues[string]]()),
	svgattr.AttrIfSome("style", func(c *CoreAttributes) *style.DeclarationList { return c.Style },
		svgattr.Verbatim[style.DeclarationList]()),
	svgattr.Attrs(func(c *CoreAttributes) []svgattr.NamedAttribute { return c.Data }),
	svgattr.Attrs(func(c *CoreAttributes) []svgattr.NamedAttribute { return c.Other }),
)

// CoreBundle returns the descriptor table for CoreAttributes.
func CoreBundle() *svgattr.Bundle[CoreAttributes] { return coreBundle }

// WriteAttributes writes the group's emitting attributes.
func (c *CoreAttributes) WriteAttributes(w io.Writer, set svgattr.WriteSettings) (bool, error) {
	return coreBundle.WriteAttributes(c, w, set)
}

// ConditionalProcessing groups the attributes that specify alternate viewing
// depending on user agent capabilities or the user's language.
type ConditionalProcessing struct {
	// RequiredFeatures lists required user agent feature strings.
	RequiredFeatures *svgattr.DelimitedValues[string]
	// RequiredExtensions lists required language extensions as IRI
	// references.
	RequiredExtensions *svgattr.DelimitedValues[string]
	// SystemLanguage lists supported languages.
	SystemLanguage *svgattr.DelimitedValues[LanguageTag]
}

// SystemLanguages returns an empty comma-delimited language tag list.
func SystemLanguages() *svgattr.DelimitedValues[LanguageTag] {
	return svgattr.NewDelimited(',', LanguageTagCodec())
}

var conditionalBundle = svgattr.MustBundle[ConditionalProcessing](
	svgattr.AttrIfSome("requiredFeatures",
		func(c *ConditionalProcessing) *svgattr.DelimitedValues[string] { return c.RequiredFeatures },
		svgattr.Verbatim[svgattr.DelimitedValues[string]]()),
	svgattr.AttrIfSome("requiredExtensions",
		func(c *ConditionalProcessing) *svgattr.DelimitedValues[string] { return c.RequiredExtensions },
		svgattr.Verbatim[svgattr.DelimitedValues[string]]()),
	svgattr.AttrIfSome("systemLanguage",
		func(c *ConditionalProcessing) *svgattr.DelimitedValues[LanguageTag] { return c.SystemLanguage },
		svgattr.Verbatim[svgattr.DelimitedValues[LanguageTag]]()),
)

// ConditionalBundle returns the descriptor table for ConditionalProcessing.
func ConditionalBundle() *svgattr.Bundle[ConditionalProcessing] { return conditionalBundle }

// WriteAttributes writes the group's emitting attributes.
func (c *ConditionalProcessing) WriteAttributes(w io.Writer, set svgattr.WriteSettings) (bool, error) {
	return conditionalBundle.WriteAttributes(c, w, set)
}
