// Package tikz builds standalone TikZ documents from named points and paths.
//
// # Overview
//
// A [Figure] owns every declared [Node] and [Path] of one document. Nodes
// are registered with [Figure.AddNode], which emits a \coordinate
// declaration and a styled \node marker. Paths start at a registered node
// and are built incrementally with [Path.To], [Path.CurveTo] and
// [Path.Close]:
//
//	f := tikz.NewFigure()
//	a := tikz.NewNode("a", geom.Pt(0, 0), "")
//	b := tikz.NewNode("b", geom.Pt(1, 1), "")
//	f.AddNode(a)
//	f.AddNode(b)
//	f.AddPath(tikz.NewPath(a, "").To(b))
//	doc, err := f.Compile()
//
// # Emission Order
//
// [Figure.Compile] writes, joined by newlines: the preamble, all coordinate
// declarations, all paths, all node markers, and the epilogue. Each group
// keeps registration order, so the same sequence of calls always produces
// byte-identical output.
//
// # Splines
//
// [SplinePath] translates a layout engine's 3k+1 spline control list into a
// path of cubic Bézier steps between two nodes.
//
// # Names
//
// Node names are TikZ coordinate names and are referenced verbatim. Unnamed
// nodes created through [Figure.NewNode] are named v0, v1, ... by a
// per-figure [NameGen].
package tikz
