// Package pkg provides the libraries behind dot2tikz.
//
// # Overview
//
// dot2tikz converts a graph whose nodes and edges already carry layout
// coordinates (the output of "dot -Tdot") into a standalone TikZ document
// that draws the same picture, with edge splines as cubic Bezier curves.
//
// # Architecture
//
// The data flow through dot2tikz:
//
//	DOT or JSON input
//	         ↓
//	    [layout] package (optional: run a Graphviz engine, cached by [cache])
//	         ↓
//	    [io] package (decode into a [graph.Graph])
//	         ↓
//	    [convert] package (nodes → coordinates, edges → paths, via [geom])
//	         ↓
//	    [render/tikz] package (ordered TikZ document)
//
// [pipeline] strings these stages together for the CLI.
//
// # Quick Start
//
//	g, err := io.ReadDOT(ctx, os.Stdin)
//	if err != nil {
//	    return err
//	}
//	fig, err := convert.ToFigure(ctx, g, convert.Options{})
//	if err != nil {
//	    return err
//	}
//	_, err = fig.WriteTo(os.Stdout)
//
// # Supporting Packages
//
// [errors] defines the error codes every layer reports. [config] loads
// TOML defaults for the CLI. [demo] builds a sample drawing without input.
// [observability] exposes hooks around pipeline stages and the cache.
// [buildinfo] carries version information set at link time.
//
// [layout]: github.com/matzehuels/dot2tikz/pkg/layout
// [cache]: github.com/matzehuels/dot2tikz/pkg/cache
// [io]: github.com/matzehuels/dot2tikz/pkg/io
// [graph.Graph]: github.com/matzehuels/dot2tikz/pkg/graph#Graph
// [convert]: github.com/matzehuels/dot2tikz/pkg/convert
// [geom]: github.com/matzehuels/dot2tikz/pkg/geom
// [render/tikz]: github.com/matzehuels/dot2tikz/pkg/render/tikz
// [pipeline]: github.com/matzehuels/dot2tikz/pkg/pipeline
// [errors]: github.com/matzehuels/dot2tikz/pkg/errors
// [config]: github.com/matzehuels/dot2tikz/pkg/config
// [demo]: github.com/matzehuels/dot2tikz/pkg/demo
// [observability]: github.com/matzehuels/dot2tikz/pkg/observability
// [buildinfo]: github.com/matzehuels/dot2tikz/pkg/buildinfo
package pkg
