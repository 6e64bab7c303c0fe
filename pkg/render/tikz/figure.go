package tikz

import (
	"io"
	"strings"

	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/geom"
)

// Figure is an order-preserving container for the coordinates, paths and
// node markers of one TikZ document. It is not safe for concurrent use.
type Figure struct {
	// PictureOptions is emitted verbatim inside \begin{tikzpicture}[...].
	PictureOptions string

	names       *NameGen
	nodes       map[string]*Node
	coordinates []string
	markers     []string
	paths       []*Path
}

// NewFigure returns an empty figure whose generated names start at v0.
func NewFigure() *Figure {
	return &Figure{
		names: NewNameGen(""),
		nodes: make(map[string]*Node),
	}
}

// NewNode creates a node with a generated name and registers it with
// [Figure.AddNode]. Generated names skip any name already registered.
func (f *Figure) NewNode(pos geom.Point, style string) (*Node, error) {
	name := f.names.Next()
	for f.has(name) {
		name = f.names.Next()
	}
	n := NewNode(name, pos, style)
	if err := f.AddNode(n); err != nil {
		return nil, err
	}
	return n, nil
}

// AddNode registers n and appends its coordinate declaration and its styled
// marker. Names must be unique within the figure.
func (f *Figure) AddNode(n *Node) error {
	if err := f.register(n); err != nil {
		return err
	}
	f.coordinates = append(f.coordinates, n.coordinateCommand())
	f.markers = append(f.markers, n.nodeCommand())
	return nil
}

// AddCoordinate registers n and declares its coordinate without drawing a
// marker. Paths may reference n like any other node.
func (f *Figure) AddCoordinate(n *Node) error {
	if err := f.register(n); err != nil {
		return err
	}
	f.coordinates = append(f.coordinates, n.coordinateCommand())
	return nil
}

// AddPath appends p. References are resolved when the figure is compiled,
// so nodes may be registered after the paths that use them.
func (f *Figure) AddPath(p *Path) {
	f.paths = append(f.paths, p)
}

// Node returns the registered node with the given name.
func (f *Figure) Node(name string) (*Node, bool) {
	n, ok := f.nodes[name]
	return n, ok
}

// NodeCount returns the number of registered nodes and coordinates.
func (f *Figure) NodeCount() int { return len(f.nodes) }

// PathCount returns the number of paths.
func (f *Figure) PathCount() int { return len(f.paths) }

// Compile serializes the figure: preamble, coordinate declarations, paths,
// node markers and epilogue, joined by newlines. It fails with an
// errors.ErrCodeLookup error if a path references an unregistered node.
func (f *Figure) Compile() (string, error) {
	paths := make([]string, len(f.paths))
	for i, p := range f.paths {
		s, err := p.compile(f.has)
		if err != nil {
			return "", err
		}
		paths[i] = s
	}

	pre, post := Preamble(f.PictureOptions), Epilogue()
	lines := make([]string, 0, len(pre)+len(f.coordinates)+len(paths)+len(f.markers)+len(post))
	lines = append(lines, pre...)
	lines = append(lines, f.coordinates...)
	lines = append(lines, paths...)
	lines = append(lines, f.markers...)
	lines = append(lines, post...)
	return strings.Join(lines, "\n"), nil
}

// WriteTo compiles the figure and writes it to w followed by a newline.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	doc, err := f.Compile()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, doc+"\n")
	return int64(n), err
}

// Preamble returns the fixed document header lines.
func Preamble(pictureOptions string) []string {
	return []string{
		`\documentclass[tikz]{standalone}`,
		`\usepackage{tikz}`,
		`\begin{document}`,
		`\begin{tikzpicture}[` + pictureOptions + `]`,
	}
}

// Epilogue returns the fixed document trailer lines.
func Epilogue() []string {
	return []string{
		`\end{tikzpicture}`,
		`\end{document}`,
	}
}

func (f *Figure) register(n *Node) error {
	if n == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil node")
	}
	if err := errors.ValidateName(n.name); err != nil {
		return err
	}
	if f.has(n.name) {
		return errors.New(errors.ErrCodeDuplicate, "node %q already registered", n.name)
	}
	f.nodes[n.name] = n
	return nil
}

func (f *Figure) has(name string) bool {
	_, ok := f.nodes[name]
	return ok
}
