package graph

// Graph is a laid-out graph in declaration order.
type Graph struct {
	Name  string `json:"name,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is a graph node with its layout position.
type Node struct {
	ID  string `json:"id"`
	Pos string `json:"pos"` // "x,y"
}

// Edge is a directed edge with an optional spline position.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Pos  string `json:"pos,omitempty"` // "[s,x,y] [e,x,y] x1,y1 ... x3k+1,y3k+1"
}

// New returns an empty graph.
func New(name string) *Graph {
	return &Graph{Name: name}
}

// AddNode appends n.
func (g *Graph) AddNode(n Node) {
	g.Nodes = append(g.Nodes, n)
}

// AddEdge appends e. Endpoints are not checked.
func (g *Graph) AddEdge(e Edge) {
	g.Edges = append(g.Edges, e)
}

// Node returns the first node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }
