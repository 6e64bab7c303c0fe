package io

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/graph"
)

const laidOut = `digraph G {
	graph [bb="0,0,54,108"];
	node [label="\N"];
	a [pos="27,90", width=0.75];
	b [pos="27,18", width=0.75];
	c [pos="80,18"];
	a -> b [pos="e,27,36.104 27,71.697 27,63.983 27,54.712 27,46.112"];
	a -> c;
}
`

func TestReadDOT(t *testing.T) {
	g, err := ReadDOT(context.Background(), strings.NewReader(laidOut))
	if err != nil {
		t.Fatalf("ReadDOT() error: %v", err)
	}

	want := &graph.Graph{
		Name: "G",
		Nodes: []graph.Node{
			{ID: "a", Pos: "27,90"},
			{ID: "b", Pos: "27,18"},
			{ID: "c", Pos: "80,18"},
		},
		Edges: []graph.Edge{
			{From: "a", To: "b", Pos: "e,27,36.104 27,71.697 27,63.983 27,54.712 27,46.112"},
			{From: "a", To: "c"},
		},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("ReadDOT() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDOT_EdgeOrder(t *testing.T) {
	src := `digraph {
  a [pos="0,0"];
  b [pos="1,0"];
  c [pos="2,0"];
  b -> c;
  a -> b;
  c -> a;
  a -> c;
}`
	g, err := ReadDOT(context.Background(), strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadDOT() error: %v", err)
	}

	var got []string
	for _, e := range g.Edges {
		got = append(got, e.From+"->"+e.To)
	}
	want := []string{"b->c", "a->b", "c->a", "a->c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadDOT() edge order mismatch (-want +got):\n%s", diff)
	}
}

func TestReadDOT_Invalid(t *testing.T) {
	_, err := ReadDOT(context.Background(), strings.NewReader(`not valid DOT {{{`))
	if err == nil {
		t.Fatal("ReadDOT() should fail for invalid DOT")
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadDOT() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestReadJSON(t *testing.T) {
	input := `{
  "name": "G",
  "nodes": [{"id": "a", "pos": "0,0"}, {"id": "b", "pos": "1,1"}],
  "edges": [{"from": "a", "to": "b", "pos": "0,0 1,2 2,2 3,0"}]
}`
	g, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("ReadJSON() = %d nodes, %d edges, want 2, 1", g.NodeCount(), g.EdgeCount())
	}
	if g.Edges[0].Pos != "0,0 1,2 2,2 3,0" {
		t.Errorf("edge pos = %q", g.Edges[0].Pos)
	}
}

func TestReadJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `{"nodes": [`},
		{"unknown field", `{"nodes": [], "edges": [], "layout": "dot"}`},
		{"wrong type", `{"nodes": {"a": 1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadJSON(strings.NewReader(tt.input)); !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ReadJSON() error = %v, want %v", err, errors.ErrCodeInvalidInput)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := graph.New("round")
	g.AddNode(graph.Node{ID: "a", Pos: "0,0"})
	g.AddNode(graph.Node{ID: "b", Pos: "1.5,-2"})
	g.AddEdge(graph.Edge{From: "a", To: "b", Pos: "0,0 1,2 2,2 3,0"})
	g.AddEdge(graph.Edge{From: "b", To: "a"})

	path := filepath.Join(t.TempDir(), "g.json")
	if err := ExportJSON(g, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}
	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(graph.New(""), &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"nodes": []`) || !strings.Contains(buf.String(), `"edges": []`) {
		t.Errorf("WriteJSON() should emit empty arrays, got %s", buf.String())
	}
}

func TestWriteDOT(t *testing.T) {
	g := graph.New("")
	g.AddNode(graph.Node{ID: "a", Pos: "0,0"})
	g.AddNode(graph.Node{ID: `say "hi"`, Pos: "1,1"})
	g.AddNode(graph.Node{ID: "bare"})
	g.AddNode(graph.Node{ID: `dir\`})
	g.AddEdge(graph.Edge{From: "a", To: `say "hi"`})
	g.AddEdge(graph.Edge{From: "a", To: "a", Pos: "0,0"})

	var buf bytes.Buffer
	if err := WriteDOT(g, &buf); err != nil {
		t.Fatalf("WriteDOT() error: %v", err)
	}
	dot := buf.String()

	for _, want := range []string{
		`digraph "G" {`,
		`"a" [pos="0,0"];`,
		`"say \"hi\"" [pos="1,1"];`,
		`"a" -> "say \"hi\"";`,
		`"a" -> "a" [pos="0,0"];`,
		`  "bare";`,
		`  "dir\\";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("WriteDOT() output missing %q:\n%s", want, dot)
		}
	}
}

func TestWriteDOT_RoundTrip(t *testing.T) {
	g := graph.New("wheel")
	g.AddNode(graph.Node{ID: "a", Pos: "0,0"})
	g.AddNode(graph.Node{ID: "b", Pos: "3,0"})
	g.AddEdge(graph.Edge{From: "a", To: "b", Pos: "0,0 1,2 2,2 3,0"})

	var buf bytes.Buffer
	if err := WriteDOT(g, &buf); err != nil {
		t.Fatalf("WriteDOT() error: %v", err)
	}
	got, err := ParseDOT(context.Background(), buf.Bytes())
	if err != nil {
		t.Fatalf("ParseDOT() error: %v", err)
	}
	if diff := cmp.Diff(g, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRead(t *testing.T) {
	ctx := context.Background()

	if _, err := Read(ctx, strings.NewReader(laidOut), FormatDOT); err != nil {
		t.Errorf("Read(dot) error: %v", err)
	}
	if _, err := Read(ctx, strings.NewReader(`{"nodes":[],"edges":[]}`), FormatJSON); err != nil {
		t.Errorf("Read(json) error: %v", err)
	}
	if _, err := Read(ctx, strings.NewReader(""), "yaml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Read(yaml) error = %v, want %v", err, errors.ErrCodeInvalidFormat)
	}
}

func TestImportDOT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.dot")
	if err := os.WriteFile(path, []byte(laidOut), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := ImportDOT(context.Background(), path)
	if err != nil {
		t.Fatalf("ImportDOT() error: %v", err)
	}
	if g.NodeCount() != 3 {
		t.Errorf("ImportDOT() nodes = %d, want 3", g.NodeCount())
	}

	_, err = ImportDOT(context.Background(), filepath.Join(dir, "missing.dot"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportDOT(missing) error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}
