package convert

import (
	"context"
	"fmt"

	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/geom"
	"github.com/matzehuels/dot2tikz/pkg/graph"
	"github.com/matzehuels/dot2tikz/pkg/render/tikz"
)

// Options controls how graph elements are styled. Empty fields fall back to
// the tikz package defaults.
type Options struct {
	NodeStyle      string `json:"node_style,omitempty" toml:"node_style"`
	PathStyle      string `json:"path_style,omitempty" toml:"path_style"`
	PictureOptions string `json:"picture_options,omitempty" toml:"picture_options"`
}

// ToFigure builds a figure from g.
//
// Node positions must parse with [geom.ParsePoint]. An edge without a pos
// is drawn as a straight line; otherwise its pos is read with
// [geom.ParseSpline] and translated by [tikz.SplinePath]. Edges that name a
// node missing from g fail with an errors.ErrCodeLookup error.
func ToFigure(ctx context.Context, g *graph.Graph, opts Options) (*tikz.Figure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := tikz.NewFigure()
	f.PictureOptions = opts.PictureOptions

	for _, n := range g.Nodes {
		pos, err := geom.ParsePoint(n.Pos)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
		if err := f.AddNode(tikz.NewNode(n.ID, pos, opts.NodeStyle)); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}

	for _, e := range g.Edges {
		p, err := edgePath(f, e, opts.PathStyle)
		if err != nil {
			return nil, fmt.Errorf("edge %s -> %s: %w", e.From, e.To, err)
		}
		f.AddPath(p)
	}

	return f, nil
}

// Convert is ToFigure followed by [tikz.Figure.Compile].
func Convert(ctx context.Context, g *graph.Graph, opts Options) (string, error) {
	f, err := ToFigure(ctx, g, opts)
	if err != nil {
		return "", err
	}
	return f.Compile()
}

func edgePath(f *tikz.Figure, e graph.Edge, style string) (*tikz.Path, error) {
	from, ok := f.Node(e.From)
	if !ok {
		return nil, errors.New(errors.ErrCodeLookup, "unknown node %q", e.From)
	}
	to, ok := f.Node(e.To)
	if !ok {
		return nil, errors.New(errors.ErrCodeLookup, "unknown node %q", e.To)
	}

	var pts []geom.Point
	if e.Pos != "" {
		sp, err := geom.ParseSpline(e.Pos)
		if err != nil {
			return nil, err
		}
		pts = sp.Points
	}
	return tikz.SplinePath(from, to, pts, style)
}
