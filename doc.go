package svgattr

// Package svgattr provides:
//
// - Type-safe attribute descriptor tables (presence policy x value policy per
//   field) evaluated by one generic composition function
// - Bundle composition that flattens nested attribute groups into a single
//   correctly-spaced `name="value"` list
// - A generic delimited multi-value container with round-trip-safe mutation
// - Fixed-precision numeric formatting shared by all value types
//
// Design policy:
// - Keep only public APIs in the root package; domain value types live under
//   path/, style/ and element/, and reference-table import under groups/.
// - All schema and policy data is passed by value or reference; there is no
//   package-level mutable state.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	bundle := svgattr.MustBundle[Circle](
//		svgattr.AttrIfSome("id", func(c *Circle) *string { return c.ID },
//			svgattr.Transform(func(s string) []byte { return []byte(s) })),
//		svgattr.Attr("r", func(c *Circle) svgattr.Number { return c.Radius },
//			svgattr.Verbatim[svgattr.Number]()),
//	)
//
//	wrote, err := bundle.WriteAttributes(&circle, w, svgattr.DefaultWriteSettings())
