// Package graph defines the laid-out graph that dot2tikz converts.
//
// A [Graph] is the format-neutral view of a layout engine's output: nodes
// carry their pos attribute, edges carry their optional spline pos
// attribute. Position strings are kept verbatim and parsed during
// conversion, so parse errors can name the node or edge they came from.
//
// # Ordering
//
// Nodes and edges are kept in the order they were added. Readers in the io
// package add them in input declaration order, which in turn fixes the
// emission order of the generated document.
//
// # JSON Format
//
// The JSON encoding is:
//
//	{
//	  "name": "G",
//	  "nodes": [
//	    {"id": "a", "pos": "27,90"},
//	    {"id": "b", "pos": "27,18"}
//	  ],
//	  "edges": [
//	    {"from": "a", "to": "b", "pos": "e,27,36.1 27,71.7 27,63.98 27,54.71 27,46.11"}
//	  ]
//	}
//
// The graph is not validated structurally: duplicate IDs and edges to
// unknown nodes are reported later by the figure builder.
package graph
