// Package layout runs a Graphviz layout engine in-process.
//
// dot2tikz itself never computes positions; it expects node and edge pos
// attributes to be present. When the input is a plain graph, [Run] hands it
// to one of the Graphviz engines through [github.com/goccy/go-graphviz] and
// returns the laid-out graph as DOT, exactly what "dot -Tdot" would print:
//
//	laidOut, err := layout.Run(ctx, layout.EngineDot, src)
//	if err != nil {
//	    return err
//	}
//	g, err := io.ParseDOT(ctx, laidOut)
package layout
