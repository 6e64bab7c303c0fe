// Package io reads and writes laid-out graphs.
//
// # Overview
//
// dot2tikz consumes graphs whose nodes and edges already carry layout
// positions. Two input formats are supported:
//
//   - DOT, as produced by a layout engine ("dot -Tdot"), parsed with the
//     Graphviz cgraph library via [github.com/goccy/go-graphviz]
//   - JSON, the format documented in the graph package
//
// # Import
//
// Use [ReadDOT] or [ReadJSON] to read from any io.Reader, [ImportDOT] or
// [ImportJSON] for files, or [Read] to dispatch on a format name:
//
//	g, err := io.ReadDOT(ctx, os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Nodes and edges are returned in declaration order for both formats.
//
// # Export
//
// [WriteJSON] and [WriteDOT] write a graph back out; the DOT writer emits
// only the pos attributes, which is enough to feed the result back through
// [ReadDOT]. [ExportJSON] is the file-based convenience wrapper.
package io
