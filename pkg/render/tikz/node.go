package tikz

import (
	"fmt"

	"github.com/matzehuels/dot2tikz/pkg/geom"
)

// DefaultNodeStyle draws a node as a small filled dot.
const DefaultNodeStyle = "draw,circle,fill,radius=0.5pt,scale=0.2"

// Node is a named point. Identity is the name: two nodes with the same name
// refer to the same TikZ coordinate. Nodes are immutable.
type Node struct {
	name  string
	pos   geom.Point
	style string
}

// NewNode creates a node. An empty style selects [DefaultNodeStyle].
func NewNode(name string, pos geom.Point, style string) *Node {
	if style == "" {
		style = DefaultNodeStyle
	}
	return &Node{name: name, pos: pos, style: style}
}

// Name returns the coordinate name.
func (n *Node) Name() string { return n.name }

// Pos returns the node position.
func (n *Node) Pos() geom.Point { return n.pos }

// Style returns the marker style passed through to \node[...].
func (n *Node) Style() string { return n.style }

// String returns the coordinate reference "(name)" used inside paths.
func (n *Node) String() string { return "(" + n.name + ")" }

func (n *Node) coordinateCommand() string {
	return fmt.Sprintf(`\coordinate (%s) at %s;`, n.name, n.pos)
}

func (n *Node) nodeCommand() string {
	return fmt.Sprintf(`\node[%s] at (%s) {};`, n.style, n.name)
}
