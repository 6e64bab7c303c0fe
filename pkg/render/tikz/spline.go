package tikz

import (
	"github.com/matzehuels/dot2tikz/pkg/errors"
	"github.com/matzehuels/dot2tikz/pkg/geom"
)

// SplinePath builds the path for one edge from -> to.
//
// Without control points the path is a single straight step to the
// destination. Otherwise pts must hold 3k+1 points: an anchor followed by k
// groups of three. The path moves to pts[0], then for each group
// (pts[i], pts[i+1], pts[i+2]) at i = 1, 4, 7, ... appends a curve through
// controls pts[i+2] and pts[i] ending at pts[i+1], and finally steps
// straight to the destination node. The control order matches how the
// layout engine serializes spline control and knot points.
//
// A list whose length is not congruent to 1 mod 3 is rejected with an
// errors.ErrCodeMalformedSpline error rather than truncated.
func SplinePath(from, to *Node, pts []geom.Point, style string) (*Path, error) {
	p := NewPath(from, style)
	if len(pts) == 0 {
		return p.To(to), nil
	}
	if len(pts)%3 != 1 {
		return nil, errors.New(errors.ErrCodeMalformedSpline,
			"edge %s -> %s: spline has %d points, want 3k+1", nodeName(from), nodeName(to), len(pts))
	}

	p.To(pts[0])
	for i := 1; i < len(pts); i += 3 {
		p.CurveTo(pts[i+1], pts[i+2], pts[i])
	}
	return p.To(to), nil
}

func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.name
}
