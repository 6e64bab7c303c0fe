package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dot2tikz/pkg/cache"
	"github.com/matzehuels/dot2tikz/pkg/convert"
	"github.com/matzehuels/dot2tikz/pkg/graph"
	gio "github.com/matzehuels/dot2tikz/pkg/io"
	"github.com/matzehuels/dot2tikz/pkg/layout"
	"github.com/matzehuels/dot2tikz/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete layout → parse → render pipeline over input.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := requireInput(input); err != nil {
		return nil, err
	}

	result := &Result{}

	// Stage 1: Layout
	if opts.NeedsLayout() {
		layoutStart := time.Now()
		laidOut, hit, err := r.ComputeLayoutWithCacheInfo(ctx, input, opts)
		if err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		input = laidOut
		result.Stats.LayoutTime = time.Since(layoutStart)
		result.CacheInfo.LayoutHit = hit

		r.Logger.Debug("computed layout",
			"engine", opts.Layout,
			"cached", hit,
			"duration", result.Stats.LayoutTime)
	}

	// Stage 2: Parse
	parseStart := time.Now()
	format := opts.From
	if opts.NeedsLayout() {
		format = gio.FormatDOT
	}
	g, err := r.Parse(ctx, input, format)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Graph = g
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	r.Logger.Debug("parsed graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.ParseTime)

	// Stage 3: Render
	renderStart := time.Now()
	doc, paths, err := r.Render(ctx, g, opts.Style)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Document = doc
	result.Stats.PathCount = paths
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Debug("rendered document",
		"paths", paths,
		"bytes", len(doc),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// ComputeLayoutWithCacheInfo runs the layout engine named in opts with
// caching and returns cache hit info. JSON input is converted to DOT first.
func (r *Runner) ComputeLayoutWithCacheInfo(ctx context.Context, input []byte, opts Options) ([]byte, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, false, err
	}
	if !opts.NeedsLayout() {
		return input, false, nil
	}

	src, err := r.layoutSource(ctx, input, opts.From)
	if err != nil {
		return nil, false, err
	}
	cacheKey := cache.LayoutKey(opts.Layout, src)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			r.Logger.Debug("layout cache hit", "key", cacheKey)
			observability.Cache().OnCacheHit(ctx, observability.KeyTypeLayout)
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, observability.KeyTypeLayout)
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Layout, len(src))
	start := time.Now()
	laidOut, err := layout.Run(ctx, opts.Layout, src)
	hooks.OnLayoutComplete(ctx, opts.Layout, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, laidOut, cache.TTLLayout); err != nil {
		r.Logger.Warn("layout not cached", "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, observability.KeyTypeLayout, len(laidOut))
	}
	return laidOut, false, nil
}

// ComputeLayout is a convenience wrapper that calls ComputeLayoutWithCacheInfo and discards the cache hit info.
func (r *Runner) ComputeLayout(ctx context.Context, input []byte, opts Options) ([]byte, error) {
	out, _, err := r.ComputeLayoutWithCacheInfo(ctx, input, opts)
	return out, err
}

// Parse decodes input in the given format.
func (r *Runner) Parse(ctx context.Context, input []byte, format string) (*graph.Graph, error) {
	if err := requireInput(input); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, format, len(input))
	start := time.Now()
	g, err := gio.Read(ctx, bytes.NewReader(input), format)
	if err != nil {
		hooks.OnParseComplete(ctx, format, 0, 0, time.Since(start), err)
		return nil, err
	}
	hooks.OnParseComplete(ctx, format, g.NodeCount(), g.EdgeCount(), time.Since(start), nil)
	return g, nil
}

// Render converts g to a TikZ document and reports how many paths it holds.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, style convert.Options) (doc string, paths int, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, g.NodeCount(), g.EdgeCount())
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, paths, time.Since(start), err)
	}()

	f, err := convert.ToFigure(ctx, g, style)
	if err != nil {
		return "", 0, err
	}
	doc, err = f.Compile()
	if err != nil {
		return "", 0, err
	}
	return doc, f.PathCount(), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) layoutSource(ctx context.Context, input []byte, format string) ([]byte, error) {
	if format != gio.FormatJSON {
		return input, nil
	}
	g, err := r.Parse(ctx, input, format)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := gio.WriteDOT(g, &buf); err != nil {
		return nil, fmt.Errorf("convert JSON to DOT: %w", err)
	}
	return buf.Bytes(), nil
}
