// Package render groups the output backends of dot2tikz.
//
// There is one backend, [tikz], which emits standalone TikZ documents.
// Backends consume positions that are already computed; they never run a
// layout engine themselves (see the layout package for that).
//
//	f := tikz.NewFigure()
//	a := tikz.NewNode("a", geom.Pt(0, 0), "")
//	b := tikz.NewNode("b", geom.Pt(1, 1), "")
//	_ = f.AddNode(a)
//	_ = f.AddNode(b)
//	f.AddPath(tikz.NewPath(a, "").To(b))
//	doc, err := f.Compile()
//
// [tikz]: github.com/matzehuels/dot2tikz/pkg/render/tikz
package render
