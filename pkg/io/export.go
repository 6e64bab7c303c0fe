package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/dot2tikz/pkg/graph"
)

// WriteJSON encodes g as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	out := *g
	if out.Nodes == nil {
		out.Nodes = []graph.Node{}
	}
	if out.Edges == nil {
		out.Edges = []graph.Edge{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}

// WriteDOT writes g as a digraph carrying only pos attributes. Elements
// without a position are written bare, ready for a layout engine.
func WriteDOT(g *graph.Graph, w io.Writer) error {
	name := g.Name
	if name == "" {
		name = "G"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %s {\n", dotQuote(name))
	for _, n := range g.Nodes {
		if n.Pos == "" {
			fmt.Fprintf(&buf, "  %s;\n", dotQuote(n.ID))
			continue
		}
		fmt.Fprintf(&buf, "  %s [pos=%s];\n", dotQuote(n.ID), dotQuote(n.Pos))
	}
	if len(g.Edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range g.Edges {
		if e.Pos == "" {
			fmt.Fprintf(&buf, "  %s -> %s;\n", dotQuote(e.From), dotQuote(e.To))
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s [pos=%s];\n", dotQuote(e.From), dotQuote(e.To), dotQuote(e.Pos))
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())
	return err
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
