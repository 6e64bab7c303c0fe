// Package convert turns a laid-out graph into a TikZ figure.
//
// Every graph node becomes a named coordinate with a marker drawn at its
// position, and every edge becomes one path from its tail to its head:
//
//	fig, err := convert.ToFigure(ctx, g, convert.Options{})
//	if err != nil {
//	    return err
//	}
//	_, err = fig.WriteTo(os.Stdout)
//
// Nodes and edges are emitted in graph order, so the same input always
// yields the same document.
package convert
