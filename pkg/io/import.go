package io

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/graph"
)

// Input formats.
const (
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// ValidFormats is the set of supported input formats.
var ValidFormats = map[string]bool{
	FormatDOT:  true,
	FormatJSON: true,
}

// ValidateFormat checks that format names a supported input format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid input format: %q (must be one of: dot, json)", format)
	}
	return nil
}

// Read decodes a graph from r in the given format.
func Read(ctx context.Context, r io.Reader, format string) (*graph.Graph, error) {
	switch format {
	case FormatDOT, "":
		return ReadDOT(ctx, r)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return nil, ValidateFormat(format)
	}
}

// ReadDOT decodes a DOT graph from r. ReadDOT does not close r.
func ReadDOT(ctx context.Context, r io.Reader) (*graph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return ParseDOT(ctx, data)
}

// ParseDOT decodes DOT source. Node pos attributes are copied verbatim;
// nodes without one get an empty Pos.
func ParseDOT(ctx context.Context, data []byte) (*graph.Graph, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	cg, err := graphviz.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	if cg == nil {
		// cgraph reports some syntax errors only by returning no graph.
		return nil, errors.New(errors.ErrCodeInvalidInput, "parse DOT: no graph in input")
	}
	defer cg.Close()

	return fromCGraph(cg)
}

// ImportDOT reads a DOT file at path.
func ImportDOT(ctx context.Context, path string) (*graph.Graph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadDOT(ctx, f)
}

// ReadJSON decodes a JSON graph from r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var g graph.Graph
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode JSON")
	}
	return &g, nil
}

// ImportJSON reads a JSON graph file at path.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

type declaredEdge struct {
	id   uint64
	edge graph.Edge
}

func fromCGraph(cg *graphviz.Graph) (*graph.Graph, error) {
	name, err := cg.Name()
	if err != nil {
		return nil, fmt.Errorf("graph name: %w", err)
	}
	g := graph.New(name)

	var nodes []*graphviz.Node
	n, err := cg.FirstNode()
	for err == nil && n != nil {
		id, nerr := n.Name()
		if nerr != nil {
			return nil, fmt.Errorf("node name: %w", nerr)
		}
		g.AddNode(graph.Node{ID: id, Pos: n.GetStr("pos")})
		nodes = append(nodes, n)
		n, err = cg.NextNode(n)
	}
	if err != nil {
		return nil, fmt.Errorf("iterate nodes: %w", err)
	}

	// cgraph only walks edges per tail node. Edge IDs are assigned in
	// declaration order, so sorting by ID restores the source order.
	var edges []declaredEdge
	for i, tail := range nodes {
		from := g.Nodes[i].ID
		e, err := cg.FirstOut(tail)
		for err == nil && e != nil {
			head, herr := e.Head()
			if herr != nil {
				return nil, fmt.Errorf("edge from %s: %w", from, herr)
			}
			to, herr := head.Name()
			if herr != nil {
				return nil, fmt.Errorf("edge from %s: %w", from, herr)
			}
			edges = append(edges, declaredEdge{
				id:   uint64(e.Base().Tag().ID()),
				edge: graph.Edge{From: from, To: to, Pos: e.GetStr("pos")},
			})
			e, err = cg.NextOut(e)
		}
		if err != nil {
			return nil, fmt.Errorf("iterate edges of %s: %w", from, err)
		}
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].id < edges[j].id })
	for _, de := range edges {
		g.AddEdge(de.edge)
	}

	return g, nil
}
