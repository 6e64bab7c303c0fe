// Package pipeline provides the conversion pipeline shared by every
// dot2tikz command.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout (optional): run a Graphviz engine over the input to fill in
//     node and edge positions. Results are cached.
//  2. Parse: decode the laid-out DOT or JSON into a [graph.Graph].
//  3. Render: build the TikZ figure and compile it to a document.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	result, err := runner.Execute(ctx, input, pipeline.Options{Layout: "dot"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(result.Document)
//
// Each stage can also be run on its own through [Runner.ComputeLayout],
// [Runner.Parse] and [Runner.Render].
package pipeline

import (
	"time"

	"github.com/matzehuels/dot2tikz/pkg/convert"
	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/graph"
	gio "github.com/matzehuels/dot2tikz/pkg/io"
	"github.com/matzehuels/dot2tikz/pkg/layout"
)

// DefaultFormat is the input format assumed when none is given.
const DefaultFormat = gio.FormatDOT

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one conversion.
type Options struct {
	// From is the input format: "dot" (default) or "json".
	From string `json:"from,omitempty"`

	// Layout names a Graphviz engine to run before converting. Empty means
	// the input already carries positions.
	Layout string `json:"layout,omitempty"`

	// Refresh bypasses cached layouts and recomputes them.
	Refresh bool `json:"refresh,omitempty"`

	// Style is passed to the converter unchanged.
	Style convert.Options `json:"style"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the parsed, laid-out graph.
	Graph *graph.Graph

	// Document is the compiled TikZ source without a trailing newline.
	Document string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	PathCount  int
	LayoutTime time.Duration
	ParseTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the laid-out graph came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in empty fields.
func (o *Options) SetDefaults() {
	if o.From == "" {
		o.From = DefaultFormat
	}
}

// Validate applies defaults and checks the enumerated fields.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := gio.ValidateFormat(o.From); err != nil {
		return err
	}
	if o.Layout != "" {
		if err := layout.ValidateEngine(o.Layout); err != nil {
			return err
		}
	}
	return nil
}

// NeedsLayout reports whether a layout engine runs before parsing.
func (o *Options) NeedsLayout() bool {
	return o.Layout != ""
}

func requireInput(data []byte) error {
	if len(data) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "empty input")
	}
	return nil
}
